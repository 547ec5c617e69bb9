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
	"errors"

	"github.com/railgen-project/railgen/internal/engine"
	flag "github.com/spf13/pflag"
)

var errUnsupportedArgs = errors.New("unsupported arguments")

type commandBase struct {
	dir    string
	config string
	only   []string
	vars   varsFlag
}

func (c *commandBase) SetFlags(f *flag.FlagSet) {
	c.vars = varsFlag{}
	f.StringVarP(&c.dir, "out", "o", engine.DefaultOutputDir, "directory holding the generated diagrams")
	f.StringVar(&c.config, "config", "", "Starlark file overriding the default style, see `railgen doc`")
	f.StringSliceVar(&c.only, "only", nil, "only process these diagrams")
	f.Var(&c.vars, "var", "override one style variable, e.g. --var stroke_width=1")
}

func (c *commandBase) options(args []string) (engine.Options, error) {
	if len(args) != 0 {
		return engine.Options{}, errUnsupportedArgs
	}
	return engine.Options{
		Dir:    c.dir,
		Config: c.config,
		Only:   c.only,
		Vars:   c.vars,
	}, nil
}
