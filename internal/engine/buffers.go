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
	"bytes"
	"fmt"
	"sync"
)

// buffers holds the SVG buffers shared by concurrent renders.
//
// The largest diagrams are a few dozen KiB so start with a few buffers of
// that size.
var buffers = buffersImpl{
	b: map[*bytes.Buffer]struct{}{
		bytes.NewBuffer(make([]byte, 0, 32*1024)): {},
		bytes.NewBuffer(make([]byte, 0, 32*1024)): {},
		bytes.NewBuffer(make([]byte, 0, 32*1024)): {},
	},
}

type buffersImpl struct {
	mu sync.Mutex
	b  map[*bytes.Buffer]struct{}
}

func (i *buffersImpl) get() *bytes.Buffer {
	i.mu.Lock()
	defer i.mu.Unlock()
	for b := range i.b {
		delete(i.b, b)
		return b
	}
	return &bytes.Buffer{}
}

// push returns b to the pool. b must not be used afterward.
func (i *buffersImpl) push(b *bytes.Buffer) {
	b.Reset()
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, ok := i.b[b]; ok {
		panic(fmt.Sprintf("buffer at %p has already been returned to the pool", b))
	}
	i.b[b] = struct{}{}
}
