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

package railroad

import (
	"fmt"
	"strings"
	"text/template"

	"go.chromium.org/luci/common/errors"
)

// Alignment controls where an item narrower than its slot is placed.
type Alignment string

// Valid Alignment values.
const (
	Center Alignment = "center"
	Left   Alignment = "left"
	Right  Alignment = "right"
)

// DefaultCSS is the stylesheet template embedded in every diagram. It is
// executed with the Style as data.
const DefaultCSS = `
path {
    stroke-width:{{.StrokeWidth}};
    stroke:#000;
    fill:transparent;
}
text {
    font:13px monospace;
    text-anchor:middle;
}
text.label{
    text-anchor:start;
}
text.comment{
    font:12px monospace;
    opacity:0.8;
}
rect{
    stroke-width:{{.StrokeWidth}};
    stroke:#000;
    fill:transparent;
}
rect.group-box {
    stroke:gray;
    stroke-dasharray:10 5;
    fill:none;
}
`

// Style is the visual configuration of a diagram.
type Style struct {
	// StrokeWidth is the width of lines, in pixels. The diagram gets a
	// padding of half of it, rounded up, and is shifted by half a pixel when
	// it is odd so lines stay crisp.
	StrokeWidth int
	// CharWidth is the width of a character in a terminal.
	CharWidth float64
	// CommentCharWidth is the width of a character in a comment.
	CommentCharWidth float64
	// ArcRadius is the radius of the turns.
	ArcRadius float64
	// VerticalSeparation is the minimum gap between stacked items.
	VerticalSeparation float64
	Alignment          Alignment
	// DiagramClass is set as the class of the svg element when not empty.
	DiagramClass string
	// CSS is a text/template for the embedded stylesheet.
	CSS string
}

// DefaultStyle returns the style used for the format description
// documentation.
func DefaultStyle() *Style {
	return &Style{
		StrokeWidth:        2,
		CharWidth:          7.5,
		CommentCharWidth:   7,
		ArcRadius:          10,
		VerticalSeparation: 8,
		Alignment:          Center,
		CSS:                DefaultCSS,
	}
}

// Validate returns every problem found in s.
func (s *Style) Validate() error {
	var errs errors.MultiError
	if s.StrokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("stroke_width must be positive, got %d", s.StrokeWidth))
	}
	if s.CharWidth <= 0 {
		errs = append(errs, fmt.Errorf("char_width must be positive, got %g", s.CharWidth))
	}
	if s.CommentCharWidth <= 0 {
		errs = append(errs, fmt.Errorf("comment_char_width must be positive, got %g", s.CommentCharWidth))
	}
	if s.ArcRadius <= 0 {
		errs = append(errs, fmt.Errorf("arc_radius must be positive, got %g", s.ArcRadius))
	}
	if s.VerticalSeparation < 0 {
		errs = append(errs, fmt.Errorf("vertical_separation must not be negative, got %g", s.VerticalSeparation))
	}
	switch s.Alignment {
	case Center, Left, Right:
	default:
		errs = append(errs, fmt.Errorf("invalid alignment %q", s.Alignment))
	}
	if _, err := s.stylesheet(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) != 0 {
		return errs
	}
	return nil
}

func (s *Style) stylesheet() (string, error) {
	t, err := template.New("css").Option("missingkey=error").Parse(s.CSS)
	if err != nil {
		return "", fmt.Errorf("css: %w", err)
	}
	var b strings.Builder
	if err := t.Execute(&b, s); err != nil {
		return "", fmt.Errorf("css: %w", err)
	}
	return b.String(), nil
}

// gaps splits the space left around an item of width inner placed in a slot
// of width outer.
func (s *Style) gaps(outer, inner float64) (float64, float64) {
	diff := outer - inner
	switch s.Alignment {
	case Left:
		return 0, diff
	case Right:
		return diff, 0
	default:
		return diff / 2, diff / 2
	}
}
