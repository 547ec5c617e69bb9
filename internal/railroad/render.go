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

// Package railroad lays out grammar fragments as railroad diagrams and
// renders them to SVG.
package railroad

import (
	"bytes"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/railgen-project/railgen/internal/grammar"
)

// Size is the size of a rendered diagram, in pixels.
type Size struct {
	Width  int
	Height int
}

// Measure returns the size Render would produce for d.
func Measure(d grammar.Diagram, st *Style) (Size, error) {
	_, b, err := prepare(d.Root, st)
	if err != nil {
		return Size{}, err
	}
	return outerSize(b, st), nil
}

// Render writes d as a standalone SVG document.
//
// Nothing is written to w if the diagram cannot be laid out.
func Render(w io.Writer, d grammar.Diagram, st *Style) error {
	if err := st.Validate(); err != nil {
		return err
	}
	css, err := st.stylesheet()
	if err != nil {
		return err
	}
	items, b, err := prepare(d.Root, st)
	if err != nil {
		return fmt.Errorf("%s: %w", d.Name, err)
	}
	size := outerSize(b, st)
	pad := padding(st)

	var buf bytes.Buffer
	c := svg.New(&buf)
	attrs := []string{fmt.Sprintf(`viewBox="0 0 %d %d"`, size.Width, size.Height)}
	if st.DiagramClass != "" {
		attrs = append(attrs, fmt.Sprintf(`class=%q`, st.DiagramClass))
	}
	c.Start(size.Width, size.Height, attrs...)
	c.Title(d.Name)
	c.Style("text/css", css)
	if st.StrokeWidth%2 == 1 {
		c.Gtransform("translate(.5 .5)")
	} else {
		c.Group()
	}
	p := &painter{c: c, st: st}
	x, y := pad, pad+b.up
	for _, it := range items {
		e := it.extent()
		if e.needsSpace {
			p.path(x, y).h(10).draw()
			x += 10
		}
		it.format(p, x, y, e.width)
		x += e.width
		y += e.height
		if e.needsSpace {
			p.path(x, y).h(10).draw()
			x += 10
		}
	}
	c.Gend()
	c.End()
	_, err = w.Write(buf.Bytes())
	return err
}

// prepare lays out root between the start and end markers.
func prepare(root grammar.Node, st *Style) ([]item, box, error) {
	body, err := layout(root, st)
	if err != nil {
		return nil, box{}, err
	}
	items := []item{newStart(), body, newEnd()}
	return items, measureRow(items), nil
}

func padding(st *Style) float64 {
	return math.Ceil(float64(st.StrokeWidth) / 2)
}

func outerSize(b box, st *Style) Size {
	pad := padding(st)
	return Size{
		Width:  int(math.Ceil(b.width + pad*2)),
		Height: int(math.Ceil(b.up + b.height + b.down + pad*2)),
	}
}
