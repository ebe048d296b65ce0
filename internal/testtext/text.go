// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testtext

import "testing"

// Run runs a subtest. Names of subtests for conformance data may contain
// arbitrary runes; they are passed verbatim and matched by -run as given.
func Run(t *testing.T, name string, fn func(t *testing.T)) bool {
	t.Helper()
	return t.Run(name, fn)
}
