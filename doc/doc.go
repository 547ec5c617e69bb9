// Copyright 2023 The Railgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package doc doesn't implement anything by itself.
//
// It serves as a repository for the user facing configuration sample.
package doc

import _ "embed"

// DefaultConfig is the style configuration matching railroad.DefaultStyle.
//
// It is printed by "railgen config" as a starting point for --config.
//
//go:embed default.star
var DefaultConfig string
