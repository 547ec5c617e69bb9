// Copyright 2023 The Railgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli is the railgen CLI code.
package cli

import (
	"context"
	"io"

	"github.com/railgen-project/railgen/doc"
	flag "github.com/spf13/pflag"
)

type docCmd struct {
}

func (*docCmd) Name() string {
	return "doc"
}

func (*docCmd) Description() string {
	return "Prints out the default style file, with every variable documented.\nUse it as a starting point for --config."
}

func (*docCmd) SetFlags(f *flag.FlagSet) {
}

func (d *docCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errUnsupportedArgs
	}
	_, err := io.WriteString(stdout, doc.DefaultConfig)
	return err
}
