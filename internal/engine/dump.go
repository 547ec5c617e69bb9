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
	"context"
	"fmt"
	"io"

	"github.com/railgen-project/railgen/internal/grammar"
	flag "github.com/spf13/pflag"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format for Dump().
type Format string

var _ flag.Value = (*Format)(nil)

// Valid Format values.
const (
	JSON      Format = "json"
	TextProto Format = "textproto"
	YAML      Format = "yaml"
)

func (f *Format) Set(value string) error {
	switch Format(value) {
	case JSON, TextProto, YAML:
		*f = Format(value)
		return nil
	default:
		return fmt.Errorf("invalid format %q", value)
	}
}

func (f *Format) String() string {
	return string(*f)
}

func (f *Format) Type() string {
	return "format"
}

// Catalog returns the selected diagrams as a structured value: a list of
// {name, root} structs.
func Catalog(only []string) (*structpb.Value, error) {
	diagrams, err := selectDiagrams(grammar.BuildCatalog(), only)
	if err != nil {
		return nil, err
	}
	l := &structpb.ListValue{Values: make([]*structpb.Value, len(diagrams))}
	for i, d := range diagrams {
		l.Values[i] = structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"name": structpb.NewStringValue(d.Name),
				"root": grammar.ToValue(d.Root),
			},
		})
	}
	return structpb.NewListValue(l), nil
}

// Dump writes the grammar of the selected diagrams to w.
func Dump(ctx context.Context, w io.Writer, o *Options, f Format) error {
	v, err := Catalog(o.Only)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var b []byte
	switch f {
	case JSON, "":
		b, err = protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(v)
	case TextProto:
		b, err = prototext.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(v)
	case YAML:
		b, err = yaml.Marshal(v.AsInterface())
	default:
		err = fmt.Errorf("invalid format %q", f)
	}
	if err != nil {
		return err
	}
	if _, err = w.Write(b); err != nil {
		return err
	}
	if len(b) != 0 && b[len(b)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
