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
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/sumdb/dirhash"
)

// Check verifies that the output directory contains up to date diagrams.
//
// Every out of date, missing or unexpected file is reported as a finding.
// Returns ErrStale if at least one finding is at or above o.FailLevel.
func Check(ctx context.Context, o *Options) error {
	if o.Report == nil {
		return errNoReport
	}
	failLevel := o.FailLevel
	if failLevel == Nothing {
		failLevel = Error
	}
	if !failLevel.isValid() {
		return fmt.Errorf("invalid level value %q", string(failLevel))
	}
	out, err := renderSelected(ctx, o)
	if err != nil {
		return err
	}
	dir := o.dir()
	worst := Nothing
	for i := range out {
		r := &out[i]
		l, err := checkFile(ctx, o.Report, dir, r)
		if err != nil {
			o.Report.Completed(ctx, r.name, r.file, r.start, time.Since(r.start), Error, err)
			return err
		}
		worst = worst.max(l)
		o.Report.Completed(ctx, r.name, r.file, r.start, time.Since(r.start), l, nil)
	}
	if len(o.Only) == 0 {
		l, err := reportExtra(ctx, o.Report, dir, out)
		if err != nil {
			return err
		}
		worst = worst.max(l)
	}
	if worst != Nothing && worst.rank() >= failLevel.rank() {
		return ErrStale
	}
	return nil
}

// checkFile compares the h1: digest of r with the one of the file on disk and
// reports a difference as a finding.
func checkFile(ctx context.Context, rep Report, dir string, r *rendered) (Level, error) {
	want, err := dirhash.Hash1([]string{r.file}, func(string) (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(r.content)), nil
	})
	if err != nil {
		return Nothing, err
	}
	got, err := dirhash.Hash1([]string{r.file}, func(string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(dir, r.file))
	})
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Error, rep.EmitFinding(ctx, r.name, Error, "file is missing", r.file)
	case err != nil:
		return Nothing, err
	case got != want:
		log.Printf("%s: expected %s, found %s", r.file, want, got)
		return Error, rep.EmitFinding(ctx, r.name, Error, "file is out of date, run railgen generate", r.file)
	}
	return Nothing, nil
}

// reportExtra emits a warning for every svg file in dir that is not part of
// the catalog.
func reportExtra(ctx context.Context, r Report, dir string, out []rendered) (Level, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Nothing, nil
		}
		return Nothing, err
	}
	known := make(map[string]struct{}, len(out))
	for _, o := range out {
		known[o.file] = struct{}{}
	}
	l := Nothing
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasSuffix(n, ".svg") {
			continue
		}
		if _, ok := known[n]; ok {
			continue
		}
		if err := r.EmitFinding(ctx, strings.TrimSuffix(n, ".svg"), Warning, "file is not generated by railgen", n); err != nil {
			return Nothing, err
		}
		l = Warning
	}
	return l, nil
}
