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

type checkCmd struct {
	commandBase
	failLevel engine.Level
}

func (*checkCmd) Name() string {
	return "check"
}

func (*checkCmd) Description() string {
	return "Verify the generated diagrams are up to date."
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
	c.failLevel = engine.Error
	f.Var(&c.failLevel, "fail-level", "lowest finding level that fails the check, one of notice, warning or error")
}

func (c *checkCmd) Execute(ctx context.Context, args []string) error {
	o, err := c.options(args)
	if err != nil {
		return err
	}
	r, err := reporting.Get(ctx)
	if err != nil {
		return err
	}
	o.Report = r
	o.FailLevel = c.failLevel
	err = engine.Check(ctx, &o)
	if err2 := r.Close(); err == nil {
		err = err2
	}
	return err
}
