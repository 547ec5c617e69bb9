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
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/railgen-project/railgen/internal/grammar"
)

// box is the extent of a laid out item relative to its entry point. The
// entry is on the left at height 0, the exit on the right at height.
type box struct {
	up, down, height, width float64
	// needsSpace adds a short horizontal line on both sides of the item when
	// it is part of a sequence.
	needsSpace bool
}

type item interface {
	extent() *box
	format(p *painter, x, y, width float64)
}

// layout converts a grammar fragment into measured items.
func layout(n grammar.Node, st *Style) (item, error) {
	switch n := n.(type) {
	case *grammar.Terminal:
		return newTerminal(n.Text, st), nil
	case *grammar.Comment:
		return newComment(n.Text, st), nil
	case *grammar.Skip:
		return &skip{}, nil
	case *grammar.Sequence:
		items, err := layoutAll(n.Items, st)
		if err != nil {
			return nil, err
		}
		return newSequence(items), nil
	case *grammar.Choice:
		items, err := layoutAll(n.Items, st)
		if err != nil {
			return nil, err
		}
		return newChoice(n.Default, items, st)
	case *grammar.Optional:
		i, err := layout(n.Item, st)
		if err != nil {
			return nil, err
		}
		return newOptional(i, n.Skip, st)
	case *grammar.OneOrMore:
		return layoutRepeat(n.Item, n.Repeat, st)
	case *grammar.ZeroOrMore:
		i, err := layoutRepeat(n.Item, n.Repeat, st)
		if err != nil {
			return nil, err
		}
		return newOptional(i, n.Skip, st)
	default:
		return nil, fmt.Errorf("cannot lay out %T", n)
	}
}

func layoutAll(nodes []grammar.Node, st *Style) ([]item, error) {
	if len(nodes) == 0 {
		return nil, errors.New("empty sequence or choice")
	}
	out := make([]item, len(nodes))
	for i, n := range nodes {
		var err error
		if out[i], err = layout(n, st); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func layoutRepeat(n, rep grammar.Node, st *Style) (item, error) {
	i, err := layout(n, st)
	if err != nil {
		return nil, err
	}
	var r item = &skip{}
	if rep != nil {
		if r, err = layout(rep, st); err != nil {
			return nil, err
		}
	}
	return newOneOrMore(i, r, st), nil
}

type terminal struct {
	box
	text string
}

func newTerminal(text string, st *Style) *terminal {
	return &terminal{
		box: box{
			width:      float64(utf8.RuneCountInString(text))*st.CharWidth + 20,
			up:         11,
			down:       11,
			needsSpace: true,
		},
		text: text,
	}
}

func (t *terminal) extent() *box { return &t.box }

func (t *terminal) format(p *painter, x, y, width float64) {
	l, r := p.st.gaps(width, t.width)
	p.c.Group(`class="terminal"`)
	p.path(x, y).h(l).draw()
	p.path(x+l+t.width, y).h(r).draw()
	p.rect(x+l, y-11, t.width, 22, 10)
	p.text(x+l+t.width/2, y+4, t.text)
	p.c.Gend()
}

type comment struct {
	box
	text string
}

func newComment(text string, st *Style) *comment {
	return &comment{
		box: box{
			width:      float64(utf8.RuneCountInString(text))*st.CommentCharWidth + 10,
			up:         8,
			down:       8,
			needsSpace: true,
		},
		text: text,
	}
}

func (c *comment) extent() *box { return &c.box }

func (c *comment) format(p *painter, x, y, width float64) {
	l, r := p.st.gaps(width, c.width)
	p.c.Group(`class="non-terminal"`)
	p.path(x, y).h(l).draw()
	p.path(x+l+c.width, y).h(r).draw()
	p.text(x+l+c.width/2, y+5, c.text, `class="comment"`)
	p.c.Gend()
}

type skip struct {
	box
}

func (s *skip) extent() *box { return &s.box }

func (s *skip) format(p *painter, x, y, width float64) {
	p.path(x, y).right(width).draw()
}

// start and end are the markers at both ends of a diagram.
type start struct {
	box
}

func newStart() *start {
	return &start{box: box{width: 20, up: 10, down: 10}}
}

func (s *start) extent() *box { return &s.box }

func (s *start) format(p *painter, x, y, width float64) {
	p.path(x, y-10).down(20).m(10, -20).down(20).m(-10, -10).right(s.width).draw()
}

type end struct {
	box
}

func newEnd() *end {
	return &end{box: box{width: 20, up: 10, down: 10}}
}

func (e *end) extent() *box { return &e.box }

func (e *end) format(p *painter, x, y, width float64) {
	p.path(x, y).h(20).m(-10, -10).v(20).m(10, -20).v(20).draw()
}

type sequence struct {
	box
	items []item
}

func newSequence(items []item) *sequence {
	s := &sequence{items: items, box: measureRow(items)}
	s.needsSpace = true
	return s
}

// measureRow computes the extent of items laid out left to right.
func measureRow(items []item) box {
	var b box
	for _, i := range items {
		e := i.extent()
		b.width += e.width
		if e.needsSpace {
			b.width += 20
		}
		b.up = math.Max(b.up, e.up-b.height)
		b.height += e.height
		b.down = math.Max(b.down-e.height, e.down)
	}
	if items[0].extent().needsSpace {
		b.width -= 10
	}
	if items[len(items)-1].extent().needsSpace {
		b.width -= 10
	}
	return b
}

func (s *sequence) extent() *box { return &s.box }

func (s *sequence) format(p *painter, x, y, width float64) {
	l, r := p.st.gaps(width, s.width)
	p.path(x, y).h(l).draw()
	p.path(x+l+s.width, y+s.height).h(r).draw()
	x += l
	for i, it := range s.items {
		e := it.extent()
		if e.needsSpace && i > 0 {
			p.path(x, y).h(10).draw()
			x += 10
		}
		it.format(p, x, y, e.width)
		x += e.width
		y += e.height
		if e.needsSpace && i < len(s.items)-1 {
			p.path(x, y).h(10).draw()
			x += 10
		}
	}
}

type choice struct {
	box
	def   int
	items []item
}

func newChoice(def int, items []item, st *Style) (*choice, error) {
	if def < 0 || def >= len(items) {
		return nil, fmt.Errorf("choice default %d out of range", def)
	}
	ar, vs := st.ArcRadius, st.VerticalSeparation
	c := &choice{def: def, items: items}
	for _, i := range items {
		c.width = math.Max(c.width, i.extent().width)
	}
	c.width += ar * 4
	c.up = items[0].extent().up
	c.down = items[len(items)-1].extent().down
	c.height = items[def].extent().height
	for i, it := range items {
		arcs := ar
		if i == def-1 || i == def+1 {
			arcs = ar * 2
		}
		e := it.extent()
		switch {
		case i < def:
			next := items[i+1].extent()
			c.up += math.Max(arcs, e.height+e.down+vs+next.up)
		case i > def:
			prev := items[i-1].extent()
			c.down += math.Max(arcs, e.up+vs+prev.down+prev.height)
		}
	}
	c.down -= items[def].extent().height
	return c, nil
}

func newOptional(i item, bypass bool, st *Style) (*choice, error) {
	def := 1
	if bypass {
		def = 0
	}
	return newChoice(def, []item{&skip{}, i}, st)
}

func (c *choice) extent() *box { return &c.box }

func (c *choice) format(p *painter, x, y, width float64) {
	ar, vs := p.st.ArcRadius, p.st.VerticalSeparation
	l, r := p.st.gaps(width, c.width)
	p.path(x, y).h(l).draw()
	p.path(x+l+c.width, y+c.height).h(r).draw()
	x += l
	inner := c.width - ar*4
	def := c.items[c.def].extent()

	// Branches above the default one, nearest first.
	var dist float64
	for i := c.def - 1; i >= 0; i-- {
		e := c.items[i].extent()
		if i == c.def-1 {
			dist = math.Max(ar*2, def.up+vs+e.down+e.height)
		}
		p.path(x, y).arc("se").up(dist - ar*2).arc("wn").draw()
		c.items[i].format(p, x+ar*2, y-dist, inner)
		p.path(x+ar*2+inner, y-dist+e.height).arc("ne").down(dist - e.height + def.height - ar*2).arc("ws").draw()
		if i > 0 {
			prev := c.items[i-1].extent()
			dist += math.Max(ar, e.up+vs+prev.down+prev.height)
		}
	}

	p.path(x, y).right(ar * 2).draw()
	c.items[c.def].format(p, x+ar*2, y, inner)
	p.path(x+ar*2+inner, y+c.height).right(ar * 2).draw()

	// Branches below the default one.
	for i := c.def + 1; i < len(c.items); i++ {
		e := c.items[i].extent()
		if i == c.def+1 {
			dist = math.Max(ar*2, def.height+def.down+vs+e.up)
		}
		p.path(x, y).arc("ne").down(dist - ar*2).arc("ws").draw()
		c.items[i].format(p, x+ar*2, y+dist, inner)
		p.path(x+ar*2+inner, y+dist+e.height).arc("se").up(dist - ar*2 + e.height - def.height).arc("wn").draw()
		var nextUp float64
		if i+1 < len(c.items) {
			nextUp = c.items[i+1].extent().up
		}
		dist += math.Max(ar, e.height+e.down+vs+nextUp)
	}
}

type oneOrMore struct {
	box
	item item
	rep  item
}

func newOneOrMore(i, rep item, st *Style) *oneOrMore {
	ar, vs := st.ArcRadius, st.VerticalSeparation
	e, re := i.extent(), rep.extent()
	return &oneOrMore{
		box: box{
			width:      math.Max(e.width, re.width) + ar*2,
			height:     e.height,
			up:         e.up,
			down:       math.Max(ar*2, e.down+vs+re.up+re.height+re.down),
			needsSpace: true,
		},
		item: i,
		rep:  rep,
	}
}

func (o *oneOrMore) extent() *box { return &o.box }

func (o *oneOrMore) format(p *painter, x, y, width float64) {
	ar, vs := p.st.ArcRadius, p.st.VerticalSeparation
	l, r := p.st.gaps(width, o.width)
	p.path(x, y).h(l).draw()
	p.path(x+l+o.width, y+o.height).h(r).draw()
	x += l
	e, re := o.item.extent(), o.rep.extent()

	p.path(x, y).right(ar).draw()
	o.item.format(p, x+ar, y, o.width-ar*2)
	p.path(x+o.width-ar, y+o.height).right(ar).draw()

	dist := math.Max(ar*2, e.height+e.down+vs+re.up)
	p.path(x+ar, y).arc("nw").down(dist - ar*2).arc("ws").draw()
	o.rep.format(p, x+ar, y+dist, o.width-ar*2)
	p.path(x+o.width-ar, y+dist+re.height).arc("se").up(dist - ar*2 + re.height - e.height).arc("en").draw()
}
