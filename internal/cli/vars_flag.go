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
	"sort"
	"strings"

	flag "github.com/spf13/pflag"
)

// varsFlag collects repeated --var name=value flags.
type varsFlag map[string]string

var _ flag.Value = (*varsFlag)(nil)

func (v varsFlag) String() string {
	names := make([]string, 0, len(v))
	for k := range v {
		names = append(names, k)
	}
	sort.Strings(names)
	for i, k := range names {
		names[i] = k + "=" + v[k]
	}
	return strings.Join(names, ",")
}

func (v varsFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return errors.New("must be of the form name=value")
	}
	if _, ok := v[name]; ok {
		return errors.New("duplicate variable")
	}
	v[name] = value
	return nil
}

func (v varsFlag) Type() string {
	return "name=value"
}
