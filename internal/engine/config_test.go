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

package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/railgen-project/railgen/doc"
	"github.com/railgen-project/railgen/internal/railroad"
)

func TestLoadStyle_Default(t *testing.T) {
	t.Parallel()
	st, err := LoadStyle("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(railroad.DefaultStyle(), st); diff != "" {
		t.Fatalf("unexpected diff:\n%s", diff)
	}
}

// TestLoadStyle_DefaultConfig makes sure the sample printed by "railgen
// doc" describes the built-in style.
func TestLoadStyle_DefaultConfig(t *testing.T) {
	t.Parallel()
	st, err := parseStyle("default.star", []byte(doc.DefaultConfig), &railroad.Style{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(railroad.DefaultStyle(), st); diff != "" {
		t.Fatalf("unexpected diff:\n%s", diff)
	}
}

func TestLoadStyle(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "style.star")
	src := "" +
		"_base = 3\n" +
		"stroke_width = _base\n" +
		"char_width = 8\n" +
		"arc_radius = 12.5\n" +
		"alignment = \"left\"\n" +
		"diagram_class = \"railroad-diagram\"\n" +
		"print(\"loaded\")\n"
	if err := os.WriteFile(p, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadStyle(p)
	if err != nil {
		t.Fatal(err)
	}
	want := railroad.DefaultStyle()
	want.StrokeWidth = 3
	want.CharWidth = 8
	want.ArcRadius = 12.5
	want.Alignment = railroad.Left
	want.DiagramClass = "railroad-diagram"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected diff:\n%s", diff)
	}
}

func TestLoadStyle_Errors(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		src  string
		want string
	}{
		{
			"unknown",
			"colour = \"red\"\n",
			"style.star: colour: unknown variable",
		},
		{
			"type",
			"stroke_width = 2.5\n",
			"style.star: stroke_width: expected int, got float",
		},
		{
			"string",
			"alignment = 1\n",
			"style.star: alignment: expected string, got int",
		},
		{
			"number",
			"arc_radius = \"big\"\n",
			"style.star: arc_radius: expected number, got string",
		},
		{
			"invalid",
			"alignment = \"justify\"\n",
			"style.star: invalid alignment \"justify\"",
		},
	}
	for _, line := range data {
		line := line
		t.Run(line.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseStyle("style.star", []byte(line.src), railroad.DefaultStyle())
			if err == nil {
				t.Fatal("expected error")
			}
			if diff := cmp.Diff(line.want, err.Error()); diff != "" {
				t.Fatalf("unexpected diff:\n%s", diff)
			}
		})
	}
}

func TestLoadStyle_Syntax(t *testing.T) {
	t.Parallel()
	_, err := parseStyle("style.star", []byte("stroke_width = \n"), railroad.DefaultStyle())
	if err == nil || !strings.HasPrefix(err.Error(), "style.star:1:") {
		t.Fatalf("unexpected error: %v", err)
	}
	var bt BacktraceableError
	if errors.As(err, &bt) {
		t.Fatal("syntax errors have no backtrace")
	}
}

func TestLoadStyle_Backtrace(t *testing.T) {
	t.Parallel()
	src := "" +
		"def width():\n" +
		"  return 1 // 0\n" +
		"stroke_width = width()\n"
	_, err := parseStyle("style.star", []byte(src), railroad.DefaultStyle())
	var bt BacktraceableError
	if !errors.As(err, &bt) {
		t.Fatalf("unexpected error: %v", err)
	}
	got := bt.Backtrace()
	for _, want := range []string{"style.star:3:", "style.star:2:", "in width"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in backtrace:\n%s", want, got)
		}
	}
}

func TestLoadStyle_Missing(t *testing.T) {
	t.Parallel()
	_, err := LoadStyle(filepath.Join(t.TempDir(), "nope.star"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadStyle_Vars(t *testing.T) {
	t.Parallel()
	o := Options{Vars: map[string]string{
		"stroke_width":        "1",
		"alignment":           "right",
		"vertical_separation": "4 * 2.5",
	}}
	got, err := loadStyle(&o)
	if err != nil {
		t.Fatal(err)
	}
	want := railroad.DefaultStyle()
	want.StrokeWidth = 1
	want.Alignment = railroad.Right
	want.VerticalSeparation = 10
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected diff:\n%s", diff)
	}
}

func TestLoadStyle_VarsErrors(t *testing.T) {
	t.Parallel()
	data := []struct {
		vars map[string]string
		want string
	}{
		{
			map[string]string{"stroke_width": "1.5"},
			"var stroke_width: expected int, got float",
		},
		{
			map[string]string{"colour": "red"},
			"var colour: unknown variable",
		},
		{
			map[string]string{"arc_radius": "-1"},
			"arc_radius must be positive, got -1",
		},
	}
	for i, line := range data {
		line := line
		t.Run(line.want, func(t *testing.T) {
			t.Parallel()
			_, err := loadStyle(&Options{Vars: line.vars})
			if err == nil {
				t.Fatalf("#%d: expected error", i)
			}
			if diff := cmp.Diff(line.want, err.Error()); diff != "" {
				t.Fatalf("unexpected diff:\n%s", diff)
			}
		})
	}
}
