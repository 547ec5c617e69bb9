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

// Package grammar describes the syntax of format descriptions as trees of
// railroad diagram operators.
package grammar

// Node is one operator of a grammar fragment.
//
// The set of implementations is closed: Terminal, Comment, Skip, Sequence,
// Choice, Optional, ZeroOrMore and OneOrMore.
type Node interface {
	// Kind returns the operator name, e.g. "sequence".
	Kind() string
	// Children returns the direct sub-fragments, in order.
	Children() []Node
}

// Terminal is literal text that must appear as-is.
type Terminal struct {
	Text string
}

// Comment is a placeholder for text described rather than spelled out, like
// "whitespace" or "number > 0".
type Comment struct {
	Text string
}

// Skip is an empty path.
type Skip struct{}

// Sequence is a series of fragments that must all appear in order.
type Sequence struct {
	Items []Node
}

// Choice is a set of alternatives. Default is the index of the branch drawn
// on the main line.
type Choice struct {
	Default int
	Items   []Node
}

// Optional is a fragment that may be omitted.
//
// When Skip is true the main line bypasses Item.
type Optional struct {
	Item Node
	Skip bool
}

// OneOrMore repeats Item at least once. Repeat, when not nil, must appear
// between two occurrences of Item.
type OneOrMore struct {
	Item   Node
	Repeat Node
}

// ZeroOrMore is an Optional OneOrMore.
type ZeroOrMore struct {
	Item   Node
	Repeat Node
	Skip   bool
}

func (*Terminal) Kind() string   { return "terminal" }
func (*Comment) Kind() string    { return "comment" }
func (*Skip) Kind() string       { return "skip" }
func (*Sequence) Kind() string   { return "sequence" }
func (*Choice) Kind() string     { return "choice" }
func (*Optional) Kind() string   { return "optional" }
func (*OneOrMore) Kind() string  { return "one_or_more" }
func (*ZeroOrMore) Kind() string { return "zero_or_more" }

func (*Terminal) Children() []Node   { return nil }
func (*Comment) Children() []Node    { return nil }
func (*Skip) Children() []Node       { return nil }
func (s *Sequence) Children() []Node { return s.Items }
func (c *Choice) Children() []Node   { return c.Items }
func (o *Optional) Children() []Node { return []Node{o.Item} }

func (o *OneOrMore) Children() []Node {
	if o.Repeat == nil {
		return []Node{o.Item}
	}
	return []Node{o.Item, o.Repeat}
}

func (z *ZeroOrMore) Children() []Node {
	if z.Repeat == nil {
		return []Node{z.Item}
	}
	return []Node{z.Item, z.Repeat}
}

// Walk calls fn for n and every node below it, depth first. Children are not
// visited when fn returns false.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}

// Helpers used to assemble fragments.

// T returns a Terminal.
func T(text string) *Terminal {
	return &Terminal{Text: text}
}

// C returns a Comment.
func C(text string) *Comment {
	return &Comment{Text: text}
}

// Seq returns a Sequence.
func Seq(items ...Node) *Sequence {
	return &Sequence{Items: items}
}

// OneOf returns a Choice whose default branch is def.
//
// Panics if def is out of range; fragments are static so this is a
// programming error.
func OneOf(def int, items ...Node) *Choice {
	if def < 0 || def >= len(items) {
		panic("grammar: choice default out of range")
	}
	return &Choice{Default: def, Items: items}
}

// Opt returns an Optional drawn on the main line.
func Opt(item Node) *Optional {
	return &Optional{Item: item}
}

// Many returns a ZeroOrMore drawn on the main line.
func Many(item Node) *ZeroOrMore {
	return &ZeroOrMore{Item: item}
}

// Some returns a OneOrMore without separator.
func Some(item Node) *OneOrMore {
	return &OneOrMore{Item: item}
}
