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

// Modifier is a key/value option of a component.
type Modifier struct {
	// Key is the modifier name, e.g. "padding".
	Key string
	// Values is the closed, ordered set of accepted values. Values[0] is the
	// default.
	Values []string
	// Placeholder describes a free-form value. It is only set when Values is
	// empty.
	Placeholder string
}

// Default returns the value used when the modifier is omitted, or "" for a
// free-form modifier.
func (m Modifier) Default() string {
	if len(m.Values) == 0 {
		return ""
	}
	return m.Values[0]
}

// Fragment returns `key: value`.
func (m Modifier) Fragment() Node {
	if len(m.Values) == 0 {
		return Seq(T(m.Key+":"), C(m.Placeholder))
	}
	values := make([]Node, len(m.Values))
	for i, v := range m.Values {
		values[i] = T(v)
	}
	return Seq(T(m.Key+":"), OneOf(0, values...))
}

// Token is a component of a format description, like year or hour.
type Token struct {
	Name      string
	Modifiers []Modifier
	// Required means every modifier appears exactly once, in order, instead of
	// being freely repeated.
	Required bool
	// Body overrides the fragment derived from Modifiers. It is used by
	// components that nest other format descriptions.
	Body func() Node
}

// Fragment returns the grammar of the component content, without brackets.
func (t Token) Fragment() Node {
	if t.Body != nil {
		return t.Body()
	}
	if len(t.Modifiers) == 0 {
		return Seq(T(t.Name))
	}
	if t.Required {
		items := []Node{T(t.Name)}
		for _, m := range t.Modifiers {
			items = append(items, C(Whitespace), m.Fragment())
		}
		return Seq(items...)
	}
	mods := make([]Node, len(t.Modifiers))
	for i, m := range t.Modifiers {
		mods[i] = m.Fragment()
	}
	return Seq(T(t.Name), Many(Seq(C(Whitespace), OneOf(0, mods...))))
}

// Placeholder names used in fragments.
const (
	Whitespace        = "whitespace"
	Literal           = "literal"
	Component         = "component"
	FormatDescription = "format_description"
	PositiveNumber    = "number > 0"
)

// Shared modifiers.
var (
	padding       = Modifier{Key: "padding", Values: []string{"zero", "space", "none"}}
	caseSensitive = Modifier{Key: "case_sensitive", Values: []string{"true", "false"}}
	sign          = Modifier{Key: "sign", Values: []string{"automatic", "mandatory"}}
)

// Tokens returns the component definitions, in catalog order.
func Tokens() []Token {
	return []Token{
		{Name: "day", Modifiers: []Modifier{padding}},
		{Name: "month", Modifiers: []Modifier{
			padding,
			{Key: "repr", Values: []string{"numerical", "long", "short"}},
			caseSensitive,
		}},
		{Name: "ordinal", Modifiers: []Modifier{padding}},
		{Name: "weekday", Modifiers: []Modifier{
			{Key: "repr", Values: []string{"long", "short", "sunday", "monday"}},
			{Key: "one_indexed", Values: []string{"true", "false"}},
			caseSensitive,
		}},
		{Name: "week_number", Modifiers: []Modifier{
			padding,
			{Key: "repr", Values: []string{"iso", "sunday", "monday"}},
		}},
		{Name: "year", Modifiers: []Modifier{
			padding,
			{Key: "repr", Values: []string{"full", "last_two"}},
			{Key: "range", Values: []string{"extended", "standard"}},
			{Key: "base", Values: []string{"calendar", "iso_week"}},
			sign,
		}},
		{Name: "hour", Modifiers: []Modifier{
			padding,
			{Key: "repr", Values: []string{"24", "12"}},
		}},
		{Name: "minute", Modifiers: []Modifier{padding}},
		{Name: "period", Modifiers: []Modifier{
			{Key: "case", Values: []string{"lower", "upper"}},
			caseSensitive,
		}},
		{Name: "second", Modifiers: []Modifier{padding}},
		{Name: "subsecond", Modifiers: []Modifier{
			{Key: "digits", Values: []string{"1+", "1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		}},
		{Name: "offset_hour", Modifiers: []Modifier{padding, sign}},
		{Name: "offset_minute", Modifiers: []Modifier{padding}},
		{Name: "offset_second", Modifiers: []Modifier{padding}},
		{Name: "first", Body: firstBody},
		{Name: "optional", Body: optionalBody},
		{Name: "ignore", Required: true, Modifiers: []Modifier{
			{Key: "count", Placeholder: PositiveNumber},
		}},
		{Name: "unix_timestamp", Modifiers: []Modifier{
			{Key: "precision", Values: []string{"second", "millisecond", "microsecond", "nanosecond"}},
			sign,
		}},
		{Name: "end"},
	}
}

func firstBody() Node {
	return Seq(
		T("first"),
		C(Whitespace),
		Some(Seq(T("["), C(FormatDescription), T("]"), Opt(C(Whitespace)))),
	)
}

func optionalBody() Node {
	return Seq(
		T("optional"),
		C(Whitespace),
		T("["),
		C(FormatDescription),
		T("]"),
	)
}
