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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	flag "github.com/spf13/pflag"
)

func TestVarsFlag(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		args    []string
		want    varsFlag
		wantStr string
		wantErr string
	}{
		{
			name: "empty",
			args: nil,
			want: nil,
		},
		{
			name:    "one",
			args:    []string{"--var", "stroke_width=1"},
			want:    varsFlag{"stroke_width": "1"},
			wantStr: "stroke_width=1",
		},
		{
			name:    "two",
			args:    []string{"--var", "stroke_width=1", "--var", "alignment=left"},
			want:    varsFlag{"stroke_width": "1", "alignment": "left"},
			wantStr: "alignment=left,stroke_width=1",
		},
		{
			name:    "value with equal sign",
			args:    []string{"--var", "css=a=b"},
			want:    varsFlag{"css": "a=b"},
			wantStr: "css=a=b",
		},
		{
			name:    "empty value",
			args:    []string{"--var", "diagram_class="},
			want:    varsFlag{"diagram_class": ""},
			wantStr: "diagram_class=",
		},
		{
			name:    "empty name",
			args:    []string{"--var", " =y"},
			wantErr: `invalid argument " =y" for "--var" flag: must be of the form name=value`,
		},
		{
			name:    "duplicate",
			args:    []string{"--var", "arc_radius=1", "--var", "arc_radius=2"},
			wantErr: `invalid argument "arc_radius=2" for "--var" flag: duplicate variable`,
		},
		{
			name:    "malformed",
			args:    []string{"--var", "arc_radius"},
			wantErr: `invalid argument "arc_radius" for "--var" flag: must be of the form name=value`,
		},
	}
	for i := range data {
		i := i
		t.Run(data[i].name, func(t *testing.T) {
			t.Parallel()
			v := varsFlag{}
			f := flag.NewFlagSet("test", flag.ContinueOnError)
			f.Var(&v, "var", "")

			err := f.Parse(data[i].args)
			if err != nil {
				if data[i].wantErr == "" {
					t.Fatal(err)
				}
				if diff := cmp.Diff(data[i].wantErr, err.Error()); diff != "" {
					t.Errorf("Unexpected error: %s", diff)
				}
				return
			}
			if data[i].wantErr != "" {
				t.Fatalf("Wanted error %q, got nil", data[i].wantErr)
			}
			if diff := cmp.Diff(data[i].want, v, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("unexpected diff:\n%s", diff)
			}
			if diff := cmp.Diff(data[i].wantStr, v.String()); diff != "" {
				t.Errorf("unexpected diff:\n%s", diff)
			}
		})
	}
}
