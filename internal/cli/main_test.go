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

package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/railgen-project/railgen/internal/engine"
)

func TestMainHelp(t *testing.T) {
	data := []struct {
		args []string
		want string
	}{
		{nil, "Usage of railgen:\n"},
		{[]string{"railgen"}, "Usage of railgen:\n"},
		{[]string{"railgen", "--help"}, "Usage of railgen:\n"},
		{[]string{"railgen", "help"}, "Usage of railgen:\n"},
		{[]string{"railgen", "help", "check"}, "Usage of railgen check:\n"},
		{[]string{"railgen", "generate", "--help"}, "Usage of railgen generate:\n"},
		{[]string{"railgen", "dump", "-h"}, "Usage of railgen dump:\n"},
		{[]string{"railgen", "doc", "--help"}, "Usage of railgen doc:\n"},
	}
	for i, line := range data {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			b := getBuf(t)
			if Main(context.Background(), line.args) == nil {
				t.Fatal("expected error")
			}
			if s := b.String(); !strings.HasPrefix(s, line.want) {
				t.Fatalf("Got:\n%q", s)
			}
		})
	}
}

func TestMainErrors(t *testing.T) {
	data := []struct {
		args []string
		want string
	}{
		{[]string{"railgen", "frobnicate"}, `no such command "frobnicate"`},
		{[]string{"railgen", "list", "foo"}, "unsupported arguments"},
		{[]string{"railgen", "generate", "foo"}, "unsupported arguments"},
		{[]string{"railgen", "dump", "--format", "xml"}, `invalid argument "xml" for "--format" flag: invalid format "xml"`},
		{[]string{"railgen", "check", "--var", "nope"}, `invalid argument "nope" for "--var" flag: must be of the form name=value`},
		{[]string{"railgen", "dump", "--only", "century"}, "no such diagram: century"},
		{[]string{"railgen", "check", "--fail-level", "fatal"}, `invalid argument "fatal" for "--fail-level" flag: invalid level value "fatal"`},
	}
	for i, line := range data {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			getBuf(t)
			err := Main(context.Background(), line.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if s := err.Error(); s != line.want {
				t.Fatalf("Got: %q\nWant: %q", s, line.want)
			}
		})
	}
}

func TestMainGenerateCheck(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	if err := Main(ctx, []string{"railgen", "generate", "-o", dir, "--only", "day,end"}); err != nil {
		t.Fatal(err)
	}
	for _, n := range []string{"day.svg", "end.svg"} {
		if _, err := os.Stat(filepath.Join(dir, n)); err != nil {
			t.Fatal(err)
		}
	}
	if err := Main(ctx, []string{"railgen", "check", "-o", dir, "--only", "day,end"}); err != nil {
		t.Fatal(err)
	}
	if err := Main(ctx, []string{"railgen", "check", "-o", dir, "--only", "day,end", "--var", "stroke_width=3"}); !errors.Is(err, engine.ErrStale) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMainCheckFailLevel(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	if err := Main(ctx, []string{"railgen", "generate", "-o", dir}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "century.svg"), []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Main(ctx, []string{"railgen", "check", "-o", dir}); err != nil {
		t.Fatal(err)
	}
	if err := Main(ctx, []string{"railgen", "check", "-o", dir, "--fail-level", "warning"}); !errors.Is(err, engine.ErrStale) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMainList(t *testing.T) {
	b := getStdout(t)
	if err := Main(context.Background(), []string{"railgen", "list"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 22 || lines[0] != "abbreviated-v1" || lines[21] != "end" {
		t.Fatalf("unexpected output:\n%s", b)
	}

	b.Reset()
	if err := Main(context.Background(), []string{"railgen", "list", "--size"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "\nend 105x24\n") {
		t.Fatalf("unexpected output:\n%s", b)
	}
}

func TestMainVersion(t *testing.T) {
	b := getStdout(t)
	if err := Main(context.Background(), []string{"railgen", "version"}); err != nil {
		t.Fatal(err)
	}
	if want := "railgen v" + engine.Version.String() + "\n"; b.String() != want {
		t.Fatalf("got %q, want %q", b.String(), want)
	}
}

type panicWrite struct{}

func (panicWrite) Write(b []byte) (int, error) {
	panic("unexpected write!")
}

func getBuf(t *testing.T) *bytes.Buffer {
	old := helpOut
	t.Cleanup(func() {
		helpOut = old
	})
	b := &bytes.Buffer{}
	helpOut = b
	return b
}

func getStdout(t *testing.T) *bytes.Buffer {
	old := stdout
	t.Cleanup(func() {
		stdout = old
	})
	b := &bytes.Buffer{}
	stdout = b
	return b
}

func init() {
	helpOut = panicWrite{}
	// Keep reporting deterministic.
	os.Unsetenv("GITHUB_RUN_ID")
}
