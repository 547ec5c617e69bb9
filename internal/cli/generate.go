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
	"github.com/railgen-project/railgen/internal/reporting"
	flag "github.com/spf13/pflag"
)

type generateCmd struct {
	commandBase
}

func (*generateCmd) Name() string {
	return "generate"
}

func (*generateCmd) Description() string {
	return "Write one SVG railroad diagram per grammar rule."
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
}

func (c *generateCmd) Execute(ctx context.Context, args []string) error {
	o, err := c.options(args)
	if err != nil {
		return err
	}
	r, err := reporting.Get(ctx)
	if err != nil {
		return err
	}
	o.Report = r
	err = engine.Generate(ctx, &o)
	if err2 := r.Close(); err == nil {
		err = err2
	}
	return err
}
