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

package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// Placeholder reports every offset at which an occurrence of the placeholder
// starting at pos in input can end.
type Placeholder func(input string, pos int) ([]int, error)

// Lexicon gives meaning to Comment nodes when matching.
type Lexicon map[string]Placeholder

// Match reports whether the whole input is accepted by n.
//
// Matching explores every alternative so it is exponential in the worst case;
// it is meant for the short samples found in documentation and tests.
func Match(n Node, input string, lex Lexicon) (bool, error) {
	m := matcher{input: input, lex: lex}
	ends := m.match(n, positions{0})
	if m.err != nil {
		return false, m.err
	}
	return ends.has(len(input)), nil
}

// positions is a sorted set of offsets in the input.
type positions []int

func (p positions) has(i int) bool {
	j := sort.SearchInts(p, i)
	return j < len(p) && p[j] == i
}

func union(sets ...positions) positions {
	seen := map[int]struct{}{}
	var out positions
	for _, s := range sets {
		for _, i := range s {
			if _, ok := seen[i]; !ok {
				seen[i] = struct{}{}
				out = append(out, i)
			}
		}
	}
	sort.Ints(out)
	return out
}

type matcher struct {
	input string
	lex   Lexicon
	err   error
}

func (m *matcher) match(n Node, from positions) positions {
	if len(from) == 0 || m.err != nil {
		return nil
	}
	switch n := n.(type) {
	case *Terminal:
		var out positions
		for _, p := range from {
			if strings.HasPrefix(m.input[p:], n.Text) {
				out = append(out, p+len(n.Text))
			}
		}
		return union(out)
	case *Comment:
		ph := m.lex[n.Text]
		if ph == nil {
			m.err = fmt.Errorf("no placeholder for %q", n.Text)
			return nil
		}
		var out positions
		for _, p := range from {
			ends, err := ph(m.input, p)
			if err != nil {
				m.err = err
				return nil
			}
			out = append(out, ends...)
		}
		return union(out)
	case *Skip:
		return from
	case *Sequence:
		cur := from
		for _, item := range n.Items {
			cur = m.match(item, cur)
		}
		return cur
	case *Choice:
		sets := make([]positions, 0, len(n.Items))
		for _, item := range n.Items {
			sets = append(sets, m.match(item, from))
		}
		return union(sets...)
	case *Optional:
		return union(from, m.match(n.Item, from))
	case *OneOrMore:
		return m.repeat(n.Item, n.Repeat, from)
	case *ZeroOrMore:
		return union(from, m.repeat(n.Item, n.Repeat, from))
	default:
		m.err = fmt.Errorf("unsupported node %T", n)
		return nil
	}
}

// repeat matches item (rep item)*.
func (m *matcher) repeat(item, rep Node, from positions) positions {
	var out positions
	frontier := m.match(item, from)
	for len(frontier) != 0 {
		var fresh positions
		for _, p := range frontier {
			if !out.has(p) {
				fresh = append(fresh, p)
			}
		}
		out = union(out, fresh)
		if rep != nil {
			fresh = m.match(rep, fresh)
		}
		frontier = m.match(item, fresh)
	}
	return out
}

// LexiconV1 describes the first version of format descriptions, where "[["
// is the only escape.
func LexiconV1() Lexicon {
	lex := Lexicon{
		Whitespace:     whitespace,
		Literal:        runOf(func(r byte) bool { return r != '[' }),
		Component:      component,
		PositiveNumber: positiveNumber,
	}
	lex[FormatDescription] = nested(abbreviatedV1(), lex)
	return lex
}

// LexiconV2 describes the second version of format descriptions, where
// brackets and backslashes are escaped with a backslash.
func LexiconV2() Lexicon {
	lex := Lexicon{
		Whitespace:     whitespace,
		Literal:        runOf(func(r byte) bool { return r != '[' && r != ']' && r != '\\' }),
		Component:      component,
		PositiveNumber: positiveNumber,
	}
	lex[FormatDescription] = nested(abbreviatedV2(), lex)
	return lex
}

// LexiconComplete describes the complete form, where nested format
// descriptions are themselves complete.
func LexiconComplete() Lexicon {
	lex := Lexicon{
		Whitespace:     whitespace,
		Literal:        runOf(func(r byte) bool { return r != '[' }),
		Component:      component,
		PositiveNumber: positiveNumber,
	}
	lex[FormatDescription] = nested(complete(Tokens()), lex)
	return lex
}

func isSpace(r byte) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// runOf matches one or more bytes accepted by ok.
func runOf(ok func(byte) bool) Placeholder {
	return func(input string, pos int) ([]int, error) {
		var out []int
		for i := pos; i < len(input) && ok(input[i]); i++ {
			out = append(out, i+1)
		}
		return out, nil
	}
}

var whitespace = runOf(isSpace)

// component is the content of an abbreviated component: no brackets and no
// surrounding whitespace.
func component(input string, pos int) ([]int, error) {
	if pos >= len(input) || isSpace(input[pos]) {
		return nil, nil
	}
	var out []int
	for i := pos; i < len(input) && input[i] != '[' && input[i] != ']'; i++ {
		if !isSpace(input[i]) {
			out = append(out, i+1)
		}
	}
	return out, nil
}

func positiveNumber(input string, pos int) ([]int, error) {
	if pos >= len(input) || input[pos] < '1' || input[pos] > '9' {
		return nil, nil
	}
	var out []int
	for i := pos; i < len(input) && input[i] >= '0' && input[i] <= '9'; i++ {
		out = append(out, i+1)
	}
	return out, nil
}

// nested matches a whole format description described by root.
func nested(root Node, lex Lexicon) Placeholder {
	return func(input string, pos int) ([]int, error) {
		m := matcher{input: input, lex: lex}
		ends := m.match(root, positions{pos})
		if m.err != nil {
			return nil, m.err
		}
		return ends, nil
	}
}
