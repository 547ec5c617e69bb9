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

// Diagram is a named grammar fragment. Name is also the output file stem.
type Diagram struct {
	Name string
	Root Node
}

// Names of the composite diagrams.
const (
	AbbreviatedV1 = "abbreviated-v1"
	AbbreviatedV2 = "abbreviated-v2"
	Complete      = "complete"
)

// BuildCatalog returns every diagram to render.
//
// It always returns freshly allocated, structurally identical trees.
func BuildCatalog() []Diagram {
	tokens := Tokens()
	out := make([]Diagram, 0, len(tokens)+3)
	out = append(out,
		Diagram{Name: AbbreviatedV1, Root: abbreviatedV1()},
		Diagram{Name: AbbreviatedV2, Root: abbreviatedV2()},
		Diagram{Name: Complete, Root: complete(tokens)},
	)
	for _, t := range tokens {
		out = append(out, Diagram{Name: t.Name, Root: t.Fragment()})
	}
	return out
}

// Lookup returns the diagram called name.
func Lookup(catalog []Diagram, name string) (Diagram, bool) {
	for _, d := range catalog {
		if d.Name == name {
			return d, true
		}
	}
	return Diagram{}, false
}

// bracketed returns `[ whitespace? inner whitespace? ]`.
func bracketed(inner Node) Node {
	return Seq(
		T("["),
		Opt(C(Whitespace)),
		inner,
		Opt(C(Whitespace)),
		T("]"),
	)
}

func abbreviatedV1() Node {
	return Many(OneOf(0,
		C(Literal),
		bracketed(C(Component)),
		T("[["),
	))
}

func abbreviatedV2() Node {
	return Many(OneOf(0,
		C(Literal),
		bracketed(C(Component)),
		Seq(T(`\`), OneOf(0, T("["), T("]"), T(`\`))),
	))
}

func complete(tokens []Token) Node {
	bodies := make([]Node, len(tokens))
	for i, t := range tokens {
		bodies[i] = t.Fragment()
	}
	return Many(OneOf(0,
		C(Literal),
		bracketed(OneOf(0, bodies...)),
		T("[["),
	))
}
