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
	"fmt"
)

type railgenVersion [3]int

var (
	// Version is the current tool version.
	Version = railgenVersion{0, 2, 0}
)

func (v railgenVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}
