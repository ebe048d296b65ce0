// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testtext contains test helpers shared by the packages of this
// module.
package testtext // import "github.com/uts46/idna/internal/testtext"

import (
	"flag"
	"testing"

	"github.com/uts46/idna/internal/gen"
)

var long = flag.Bool("long", false,
	"run tests that require fetching data online")

// SkipIfNotLong returns whether long tests should be performed.
func SkipIfNotLong(t *testing.T) {
	if testing.Short() || !(gen.IsLocal() || *long) {
		t.Skip("skipping test to prevent downloading; to run use -long or use -local or UNICODE_DIR to specify a local source")
	}
}

// AllocsPerRun wraps testing.AllocsPerRun.
func AllocsPerRun(runs int, f func()) (avg float64) {
	return testing.AllocsPerRun(runs, f)
}
