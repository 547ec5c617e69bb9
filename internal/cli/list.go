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
	"fmt"

	"github.com/railgen-project/railgen/internal/engine"
	"github.com/railgen-project/railgen/internal/grammar"
	"github.com/railgen-project/railgen/internal/railroad"
	flag "github.com/spf13/pflag"
)

type listCmd struct {
	size   bool
	config string
}

func (*listCmd) Name() string {
	return "list"
}

func (*listCmd) Description() string {
	return "Print the name of every diagram."
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.size, "size", false, "also print the size of each diagram in pixels")
	f.StringVar(&c.config, "config", "", "Starlark style file used to compute sizes")
}

func (c *listCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errUnsupportedArgs
	}
	var st *railroad.Style
	if c.size {
		var err error
		if st, err = engine.LoadStyle(c.config); err != nil {
			return err
		}
	}
	for _, d := range grammar.BuildCatalog() {
		if !c.size {
			if _, err := fmt.Fprintln(stdout, d.Name); err != nil {
				return err
			}
			continue
		}
		s, err := railroad.Measure(d, st)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(stdout, "%s %dx%d\n", d.Name, s.Width, s.Height); err != nil {
			return err
		}
	}
	return nil
}
