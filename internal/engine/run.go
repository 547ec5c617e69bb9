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

// Package engine renders the grammar catalog and keeps the generated files
// in sync.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/railgen-project/railgen/internal/grammar"
	"github.com/railgen-project/railgen/internal/railroad"
	flag "github.com/spf13/pflag"
	"go.chromium.org/luci/common/data/stringset"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultOutputDir is where diagrams are written when Options.Dir is not set.
// It is relative to the current working directory.
const DefaultOutputDir = "src/diagrams"

// Level is one of "notice", "warning" or "error".
type Level string

var _ flag.Value = (*Level)(nil)

// Valid Level values.
const (
	Notice  Level = "notice"
	Warning Level = "warning"
	Error   Level = "error"
	Nothing Level = ""
)

func (l *Level) Set(value string) error {
	if !Level(value).isValid() {
		return fmt.Errorf("invalid level value %q", value)
	}
	*l = Level(value)
	return nil
}

func (l *Level) String() string {
	return string(*l)
}

func (l *Level) Type() string {
	return "level"
}

// rank orders levels by severity; Nothing is the lowest.
func (l Level) rank() int {
	switch l {
	case Notice:
		return 1
	case Warning:
		return 2
	case Error:
		return 3
	default:
		return 0
	}
}

func (l Level) max(o Level) Level {
	if o.rank() > l.rank() {
		return o
	}
	return l
}

func (l Level) isValid() bool {
	switch l {
	case Notice, Warning, Error:
		return true
	default:
		return false
	}
}

// Report exposes callbacks that the engine calls while processing diagrams.
type Report interface {
	// EmitFinding reports a problem with an output file. This is not a failure
	// by itself, the caller decides based on the level.
	EmitFinding(ctx context.Context, diagram string, level Level, message, file string) error
	// Completed is called once per diagram when its file was written or
	// verified.
	//
	// It is called with the start time of the rendering, the wall clock
	// duration, the highest level emitted and an error if the diagram could
	// not be processed.
	Completed(ctx context.Context, diagram, file string, start time.Time, d time.Duration, l Level, err error)
}

// Options is the options for Generate(), Check() and Dump().
type Options struct {
	// Report gets notified of every diagram processed.
	//
	// It is required by Generate() and Check(). It is recommended to use
	// reporting.Get() which returns the right implementation based on the
	// environment.
	Report Report
	// Dir is the output directory. Defaults to DefaultOutputDir.
	Dir string
	// Config is the path to a Starlark style file. The built-in style is used
	// when empty.
	Config string
	// Vars overrides individual style variables after Config is loaded.
	Vars map[string]string
	// FailLevel is the lowest finding level that makes Check() return
	// ErrStale. Defaults to Error.
	FailLevel Level
	// Only restricts processing to these diagrams. All diagrams are processed
	// when empty.
	Only []string
}

func (o *Options) dir() string {
	if o.Dir == "" {
		return DefaultOutputDir
	}
	return o.Dir
}

// rendered is a diagram rendered in memory.
type rendered struct {
	name    string
	file    string
	content []byte
	start   time.Time
	d       time.Duration
}

// Generate renders the selected diagrams and writes one <name>.svg file per
// diagram in the output directory.
//
// The output directory must exist. Nothing is written unless every diagram
// rendered successfully; a write failure aborts the run.
func Generate(ctx context.Context, o *Options) error {
	if o.Report == nil {
		return errNoReport
	}
	out, err := renderSelected(ctx, o)
	if err != nil {
		return err
	}
	dir := o.dir()
	for _, r := range out {
		p := filepath.Join(dir, r.file)
		if err := os.WriteFile(p, r.content, 0o644); err != nil {
			o.Report.Completed(ctx, r.name, r.file, r.start, time.Since(r.start), Error, err)
			return fmt.Errorf("failed to write %s: %w", r.name, err)
		}
		log.Printf("wrote %s (%d bytes)", p, len(r.content))
		o.Report.Completed(ctx, r.name, r.file, r.start, time.Since(r.start), Notice, nil)
	}
	return nil
}

// renderSelected loads the style and renders every selected diagram.
func renderSelected(ctx context.Context, o *Options) ([]rendered, error) {
	st, err := loadStyle(o)
	if err != nil {
		return nil, err
	}
	diagrams, err := selectDiagrams(grammar.BuildCatalog(), o.Only)
	if err != nil {
		return nil, err
	}
	return renderAll(ctx, diagrams, st)
}

// selectDiagrams keeps the diagrams named in only, in catalog order.
func selectDiagrams(catalog []grammar.Diagram, only []string) ([]grammar.Diagram, error) {
	if len(only) == 0 {
		return catalog, nil
	}
	want := stringset.NewFromSlice(only...)
	var out []grammar.Diagram
	for _, d := range catalog {
		if want.Del(d.Name) {
			out = append(out, d)
		}
	}
	if want.Len() != 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDiagram, strings.Join(want.ToSortedSlice(), ", "))
	}
	return out, nil
}

// renderAll renders diagrams concurrently. The result is in the same order
// as diagrams.
func renderAll(ctx context.Context, diagrams []grammar.Diagram, st *railroad.Style) ([]rendered, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]rendered, len(diagrams))
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	eg, ctx := errgroup.WithContext(ctx)
	for i := range diagrams {
		i := i
		eg.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			start := time.Now()
			b := buffers.get()
			defer buffers.push(b)
			if err := railroad.Render(b, diagrams[i], st); err != nil {
				return err
			}
			out[i] = rendered{
				name:    diagrams[i].Name,
				file:    diagrams[i].Name + ".svg",
				content: bytes.Clone(b.Bytes()),
				start:   start,
				d:       time.Since(start),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
