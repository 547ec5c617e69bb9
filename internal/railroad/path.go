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
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// painter draws laid out items on an SVG canvas.
type painter struct {
	c  *svg.SVG
	st *Style
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// rect draws a rounded rectangle at float coordinates; svgo's Roundrect only
// takes ints.
func (p *painter) rect(x, y, w, h, r float64) {
	fmt.Fprintf(p.c.Writer, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" />`+"\n",
		num(x), num(y), num(w), num(h), num(r), num(r))
}

// text draws s centered on x by the stylesheet.
func (p *painter) text(x, y float64, s string, attrs ...string) {
	a := ""
	if len(attrs) != 0 {
		a = " " + strings.Join(attrs, " ")
	}
	fmt.Fprintf(p.c.Writer, `<text x="%s" y="%s"%s>`, num(x), num(y), a)
	xml.EscapeText(p.c.Writer, []byte(s))
	io.WriteString(p.c.Writer, "</text>\n")
}

// path starts a new path at x, y. Nothing is written until draw is called.
func (p *painter) path(x, y float64) *pathBuilder {
	b := &pathBuilder{p: p}
	b.d.WriteString("M" + num(x) + " " + num(y))
	return b
}

type pathBuilder struct {
	p *painter
	d strings.Builder
}

func (b *pathBuilder) m(x, y float64) *pathBuilder {
	b.d.WriteString("m" + num(x) + " " + num(y))
	return b
}

func (b *pathBuilder) h(v float64) *pathBuilder {
	b.d.WriteString("h" + num(v))
	return b
}

func (b *pathBuilder) v(v float64) *pathBuilder {
	b.d.WriteString("v" + num(v))
	return b
}

func (b *pathBuilder) right(v float64) *pathBuilder {
	return b.h(math.Max(0, v))
}

func (b *pathBuilder) down(v float64) *pathBuilder {
	return b.v(math.Max(0, v))
}

func (b *pathBuilder) up(v float64) *pathBuilder {
	return b.v(-math.Max(0, v))
}

// arc draws a quarter turn of radius ArcRadius. sweep is a pair of compass
// points, e.g. "ne".
func (b *pathBuilder) arc(sweep string) *pathBuilder {
	r := b.p.st.ArcRadius
	x, y := r, r
	if sweep[0] == 'e' || sweep[1] == 'w' {
		x = -x
	}
	if sweep[0] == 's' || sweep[1] == 'n' {
		y = -y
	}
	cw := "0"
	switch sweep {
	case "ne", "es", "sw", "wn":
		cw = "1"
	}
	b.d.WriteString("a" + num(r) + " " + num(r) + " 0 0 " + cw + " " + num(x) + " " + num(y))
	return b
}

func (b *pathBuilder) draw() {
	b.p.c.Path(b.d.String())
}
