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
	"errors"

	"go.starlark.net/starlark"
)

// ErrStale is returned by Check() when at least one output file is missing
// or out of date.
//
// The details will have been provided via the Report interface.
var ErrStale = errors.New("generated diagrams are out of date")

// ErrUnknownDiagram is returned when a requested diagram is not part of the
// catalog.
var ErrUnknownDiagram = errors.New("no such diagram")

var errNoReport = errors.New("a Report is required")

// BacktraceableError is an error that has a starlark backtrace attached to it.
type BacktraceableError interface {
	error
	// Backtrace returns a user-friendly error message describing the stack
	// of calls that led to this error, along with the error message itself.
	Backtrace() string
}

// evalError is starlark.EvalError raised while evaluating a style file.
type evalError struct {
	*starlark.EvalError
}

// Backtrace returns a user-friendly error message describing the stack
// of calls that led to this error.
func (e *evalError) Backtrace() string {
	c := e.CallStack
	if len(c) > 0 && c[len(c)-1].Pos.Filename() == "<builtin>" {
		c = c[:len(c)-1]
	}
	return c.String()
}

func (e *evalError) Unwrap() error {
	return e.EvalError
}

var _ BacktraceableError = (*evalError)(nil)
