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

package reporting

func init() {
	// Replace the escape codes with readable markers so expectations stay
	// legible.
	ansiCodeMap = map[ansiCode]string{
		reset:    "<R>",
		bold:     "<B>",
		faint:    "<F>",
		fgRed:    "<Re>",
		fgGreen:  "<G>",
		fgYellow: "<Y>",
		fgHiBlue: "<Hb>",
		fgHiCyan: "<Hc>",
	}
}
