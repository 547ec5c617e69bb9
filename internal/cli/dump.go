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

package cli

import (
	"context"

	"github.com/railgen-project/railgen/internal/engine"
	flag "github.com/spf13/pflag"
)

type dumpCmd struct {
	only   []string
	format engine.Format
}

func (*dumpCmd) Name() string {
	return "dump"
}

func (*dumpCmd) Description() string {
	return "Print the grammar trees backing the diagrams."
}

func (c *dumpCmd) SetFlags(f *flag.FlagSet) {
	c.format = engine.JSON
	f.StringSliceVar(&c.only, "only", nil, "only print these diagrams")
	f.Var(&c.format, "format", "output format, one of json, textproto or yaml")
}

func (c *dumpCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errUnsupportedArgs
	}
	return engine.Dump(ctx, stdout, &engine.Options{Only: c.only}, c.format)
}
