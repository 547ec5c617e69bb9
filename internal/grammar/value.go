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
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// ToValue converts a fragment into a structured value suitable for JSON,
// textproto or YAML output.
func ToValue(n Node) *structpb.Value {
	f := map[string]*structpb.Value{
		"kind": structpb.NewStringValue(n.Kind()),
	}
	switch n := n.(type) {
	case *Terminal:
		f["text"] = structpb.NewStringValue(n.Text)
	case *Comment:
		f["text"] = structpb.NewStringValue(n.Text)
	case *Sequence:
		f["items"] = toList(n.Items)
	case *Choice:
		f["default"] = structpb.NewNumberValue(float64(n.Default))
		f["items"] = toList(n.Items)
	case *Optional:
		f["item"] = ToValue(n.Item)
		if n.Skip {
			f["skip"] = structpb.NewBoolValue(true)
		}
	case *OneOrMore:
		f["item"] = ToValue(n.Item)
		if n.Repeat != nil {
			f["repeat"] = ToValue(n.Repeat)
		}
	case *ZeroOrMore:
		f["item"] = ToValue(n.Item)
		if n.Repeat != nil {
			f["repeat"] = ToValue(n.Repeat)
		}
		if n.Skip {
			f["skip"] = structpb.NewBoolValue(true)
		}
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: f})
}

func toList(items []Node) *structpb.Value {
	l := &structpb.ListValue{Values: make([]*structpb.Value, len(items))}
	for i, item := range items {
		l.Values[i] = ToValue(item)
	}
	return structpb.NewListValue(l)
}

// fromValue is the reverse of ToValue.
func fromValue(v *structpb.Value) (Node, error) {
	s := v.GetStructValue()
	if s == nil {
		return nil, errors.New("expected a struct")
	}
	f := s.GetFields()
	switch k := f["kind"].GetStringValue(); k {
	case "terminal":
		return &Terminal{Text: f["text"].GetStringValue()}, nil
	case "comment":
		return &Comment{Text: f["text"].GetStringValue()}, nil
	case "skip":
		return &Skip{}, nil
	case "sequence":
		items, err := fromList(f["items"])
		if err != nil {
			return nil, err
		}
		return &Sequence{Items: items}, nil
	case "choice":
		items, err := fromList(f["items"])
		if err != nil {
			return nil, err
		}
		d := int(f["default"].GetNumberValue())
		if d < 0 || d >= len(items) {
			return nil, fmt.Errorf("choice default %d out of range", d)
		}
		return &Choice{Default: d, Items: items}, nil
	case "optional":
		item, err := fromValue(f["item"])
		if err != nil {
			return nil, err
		}
		return &Optional{Item: item, Skip: f["skip"].GetBoolValue()}, nil
	case "one_or_more", "zero_or_more":
		item, err := fromValue(f["item"])
		if err != nil {
			return nil, err
		}
		var rep Node
		if r, ok := f["repeat"]; ok {
			if rep, err = fromValue(r); err != nil {
				return nil, err
			}
		}
		if k == "one_or_more" {
			return &OneOrMore{Item: item, Repeat: rep}, nil
		}
		return &ZeroOrMore{Item: item, Repeat: rep, Skip: f["skip"].GetBoolValue()}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", k)
	}
}

func fromList(v *structpb.Value) ([]Node, error) {
	l := v.GetListValue()
	if l == nil {
		return nil, errors.New("expected a list")
	}
	out := make([]Node, len(l.Values))
	for i, item := range l.Values {
		n, err := fromValue(item)
		if err != nil {
			return nil, fmt.Errorf("item #%d: %w", i+1, err)
		}
		out[i] = n
	}
	return out, nil
}
