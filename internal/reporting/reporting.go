// Copyright 2023 The Railgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reporting prints the progress of railgen runs.
package reporting

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/railgen-project/railgen/internal/engine"
)

// Report is a closable engine.Report.
type Report interface {
	io.Closer
	engine.Report
}

// Get returns the right reporting implementation based on the current
// environment.
func Get(ctx context.Context) (*MultiReport, error) {
	r := &MultiReport{}
	switch {
	case os.Getenv("GITHUB_RUN_ID") != "":
		// On GitHub Actions. Emits GitHub Workflows commands.
		r.Reporters = append(r.Reporters, &github{out: os.Stdout})
	case os.Getenv("TERM") != "dumb" && isatty.IsTerminal(os.Stderr.Fd()):
		// Active terminal. Colors!
		r.Reporters = append(r.Reporters, &interactive{
			out: colorable.NewColorableStdout(),
		})
	default:
		// Anything else, e.g. redirected output.
		r.Reporters = append(r.Reporters, &basic{out: os.Stdout})
	}
	return r, nil
}

// status is the word printed for a completed diagram.
func status(l engine.Level, err error) string {
	switch {
	case err != nil:
		return "error"
	case l == engine.Nothing || l == engine.Notice:
		return "ok"
	default:
		return string(l)
	}
}

type basic struct {
	out io.Writer
}

func (b *basic) Close() error {
	return nil
}

func (b *basic) EmitFinding(ctx context.Context, diagram string, level engine.Level, message, file string) error {
	if file != "" {
		_, err := fmt.Fprintf(b.out, "[%s/%s] %s: %s\n", diagram, level, file, message)
		return err
	}
	_, err := fmt.Fprintf(b.out, "[%s/%s] %s\n", diagram, level, message)
	return err
}

func (b *basic) Completed(ctx context.Context, diagram, file string, start time.Time, d time.Duration, level engine.Level, err error) {
	if err != nil {
		fmt.Fprintf(b.out, "- %s (%s in %s): %s\n", file, status(level, err), d.Round(time.Millisecond), err)
	} else {
		fmt.Fprintf(b.out, "- %s (%s in %s)\n", file, status(level, err), d.Round(time.Millisecond))
	}
}

// github is the Report implementation when running inside a GitHub Actions
// Workflow.
//
// See https://docs.github.com/en/actions/using-workflows/workflow-commands-for-github-actions
type github struct {
	out io.Writer
}

func (g *github) Close() error {
	return nil
}

func (g *github) EmitFinding(ctx context.Context, diagram string, level engine.Level, message, file string) error {
	if file != "" {
		_, err := fmt.Fprintf(g.out, "::%s file=%s,title=%s::%s\n", level, file, diagram, message)
		return err
	}
	_, err := fmt.Fprintf(g.out, "::%s title=%s::%s\n", level, diagram, message)
	return err
}

func (g *github) Completed(ctx context.Context, diagram, file string, start time.Time, d time.Duration, level engine.Level, err error) {
	if err != nil {
		fmt.Fprintf(g.out, "::error file=%s,title=%s::%s\n", file, diagram, err)
		return
	}
	fmt.Fprintf(g.out, "::debug::%s (%s in %s)\n", file, status(level, err), d.Round(time.Millisecond))
}

type interactive struct {
	out io.Writer
}

func (i *interactive) Close() error {
	return nil
}

func (i *interactive) EmitFinding(ctx context.Context, diagram string, level engine.Level, message, file string) error {
	c := levelColor[level]
	if file != "" {
		_, err := fmt.Fprintf(i.out, "%s[%s%s%s/%s%s%s] %s%s%s: %s\n", reset, fgHiCyan, diagram, reset, c, level, reset, fgHiBlue, file, reset, message)
		return err
	}
	_, err := fmt.Fprintf(i.out, "%s[%s%s%s/%s%s%s] %s\n", reset, fgHiCyan, diagram, reset, c, level, reset, message)
	return err
}

func (i *interactive) Completed(ctx context.Context, diagram, file string, start time.Time, d time.Duration, level engine.Level, err error) {
	if err != nil {
		level = engine.Error
	}
	c := levelColor[level]
	if err != nil {
		fmt.Fprintf(i.out, "%s- %s%s%s (%s in %s): %s%s%s\n", reset, c, file, reset, status(level, err), d.Round(time.Millisecond), bold, err, reset)
	} else {
		fmt.Fprintf(i.out, "%s- %s%s%s %s(%s in %s)%s\n", reset, c, file, reset, faint, status(level, err), d.Round(time.Millisecond), reset)
	}
}

var levelColor = map[engine.Level]ansiCode{
	engine.Notice:  fgGreen,
	engine.Warning: fgYellow,
	engine.Error:   fgRed,
	engine.Nothing: fgGreen,
}
