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
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/railgen-project/railgen/internal/railroad"
	"go.chromium.org/luci/common/errors"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func starlarkOptions() *syntax.FileOptions {
	return &syntax.FileOptions{
		// Enable not-yet-standard Starlark features.
		Set:       true,
		While:     true,
		Recursion: true,
	}
}

// LoadStyle returns the style described by the Starlark file at path, on top
// of railroad.DefaultStyle().
//
// An empty path returns the default style.
func LoadStyle(path string) (*railroad.Style, error) {
	st := railroad.DefaultStyle()
	if path == "" {
		return st, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseStyle(path, b, st)
}

// loadStyle returns the style for o: the Starlark file o.Config with o.Vars
// applied on top.
func loadStyle(o *Options) (*railroad.Style, error) {
	st, err := LoadStyle(o.Config)
	if err != nil {
		return nil, err
	}
	if len(o.Vars) == 0 {
		return st, nil
	}
	if err := applyVars(st, o.Vars); err != nil {
		return nil, err
	}
	return st, nil
}

// applyVars overrides style fields from key=value pairs passed on the command
// line. A value is evaluated as a Starlark expression and falls back to a
// plain string when it is not one, so both stroke_width=3 and alignment=left
// work.
func applyVars(st *railroad.Style, vars map[string]string) error {
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	th := &starlark.Thread{Name: "vars"}
	var errs errors.MultiError
	for _, k := range names {
		v, err := starlark.EvalOptions(starlarkOptions(), th, "<var>", vars[k], nil)
		if err != nil {
			v = starlark.String(vars[k])
		}
		if err := setStyle(st, k, v); err != nil {
			errs = append(errs, fmt.Errorf("var %s: %w", k, err))
		}
	}
	if len(errs) != 0 {
		return errs
	}
	return st.Validate()
}

func parseStyle(path string, src []byte, st *railroad.Style) (*railroad.Style, error) {
	th := &starlark.Thread{
		Name: path,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("[%s] %s", path, msg)
		},
	}
	globals, err := starlark.ExecFileOptions(starlarkOptions(), th, path, src, nil)
	if err != nil {
		if e, ok := err.(*starlark.EvalError); ok {
			return nil, &evalError{e}
		}
		return nil, err
	}
	names := make([]string, 0, len(globals))
	for k := range globals {
		names = append(names, k)
	}
	sort.Strings(names)
	var errs errors.MultiError
	for _, k := range names {
		if k[0] == '_' {
			continue
		}
		if err := setStyle(st, k, globals[k]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %s: %w", path, k, err))
		}
	}
	if len(errs) != 0 {
		return nil, errs
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}

// setStyle assigns a single Starlark global to the matching style field.
func setStyle(st *railroad.Style, name string, v starlark.Value) error {
	switch name {
	case "stroke_width":
		i, ok := v.(starlark.Int)
		if !ok {
			return fmt.Errorf("expected int, got %s", v.Type())
		}
		n, ok := i.Int64()
		if !ok {
			return fmt.Errorf("%s is out of range", i)
		}
		st.StrokeWidth = int(n)
	case "char_width":
		return setFloat(&st.CharWidth, v)
	case "comment_char_width":
		return setFloat(&st.CommentCharWidth, v)
	case "arc_radius":
		return setFloat(&st.ArcRadius, v)
	case "vertical_separation":
		return setFloat(&st.VerticalSeparation, v)
	case "alignment":
		s, ok := starlark.AsString(v)
		if !ok {
			return fmt.Errorf("expected string, got %s", v.Type())
		}
		st.Alignment = railroad.Alignment(s)
	case "diagram_class":
		s, ok := starlark.AsString(v)
		if !ok {
			return fmt.Errorf("expected string, got %s", v.Type())
		}
		st.DiagramClass = s
	case "css":
		s, ok := starlark.AsString(v)
		if !ok {
			return fmt.Errorf("expected string, got %s", v.Type())
		}
		st.CSS = s
	default:
		return errors.New("unknown variable")
	}
	return nil
}

func setFloat(dst *float64, v starlark.Value) error {
	f, ok := starlark.AsFloat(v)
	if !ok {
		return fmt.Errorf("expected number, got %s", v.Type())
	}
	*dst = f
	return nil
}
