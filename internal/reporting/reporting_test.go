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

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/railgen-project/railgen/internal/engine"
)

func TestGet(t *testing.T) {
	r, err := Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Reporters) != 1 {
		t.Fatalf("got %d reporters", len(r.Reporters))
	}
	if _, ok := r.Reporters[0].(*basic); !ok {
		t.Fatalf("unexpected reporter %T", r.Reporters[0])
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
}

// emitAll sends the same sequence of events to r.
func emitAll(t *testing.T, r Report) {
	ctx := context.Background()
	if err := r.EmitFinding(ctx, "day", engine.Error, "file is missing", "day.svg"); err != nil {
		t.Fatal(err)
	}
	if err := r.EmitFinding(ctx, "century", engine.Warning, "file is not generated by railgen", ""); err != nil {
		t.Fatal(err)
	}
	start := time.Now()
	r.Completed(ctx, "month", "month.svg", start, time.Millisecond, engine.Notice, nil)
	r.Completed(ctx, "day", "day.svg", start, 2*time.Millisecond, engine.Error, nil)
	r.Completed(ctx, "year", "year.svg", start, time.Millisecond, engine.Notice, errors.New("disk full"))
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestBasic(t *testing.T) {
	t.Parallel()
	buf := bytes.Buffer{}
	emitAll(t, &basic{out: &buf})
	want := "[day/error] day.svg: file is missing\n" +
		"[century/warning] file is not generated by railgen\n" +
		"- month.svg (ok in 1ms)\n" +
		"- day.svg (error in 2ms)\n" +
		"- year.svg (error in 1ms): disk full\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestGitHub(t *testing.T) {
	t.Parallel()
	buf := bytes.Buffer{}
	emitAll(t, &github{out: &buf})
	want := "::error file=day.svg,title=day::file is missing\n" +
		"::warning title=century::file is not generated by railgen\n" +
		"::debug::month.svg (ok in 1ms)\n" +
		"::debug::day.svg (error in 2ms)\n" +
		"::error file=year.svg,title=year::disk full\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestInteractive(t *testing.T) {
	t.Parallel()
	buf := bytes.Buffer{}
	emitAll(t, &interactive{out: &buf})
	want := "<R>[<Hc>day<R>/<Re>error<R>] <Hb>day.svg<R>: file is missing\n" +
		"<R>[<Hc>century<R>/<Y>warning<R>] file is not generated by railgen\n" +
		"<R>- <G>month.svg<R> <F>(ok in 1ms)<R>\n" +
		"<R>- <Re>day.svg<R> <F>(error in 2ms)<R>\n" +
		"<R>- <Re>year.svg<R> (error in 1ms): <B>disk full<R>\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiReport(t *testing.T) {
	t.Parallel()
	a := bytes.Buffer{}
	b := bytes.Buffer{}
	emitAll(t, &MultiReport{Reporters: []Report{&basic{out: &a}, &basic{out: &b}}})
	if a.Len() == 0 {
		t.Fatal("no output")
	}
	if diff := cmp.Diff(a.String(), b.String()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func init() {
	// Mutate the running environment to make the test deterministic.
	os.Unsetenv("GITHUB_RUN_ID")
	os.Setenv("TERM", "dumb")
}
