// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

// Profiles are immutable and may be used from multiple goroutines.
func TestConcurrentUse(t *testing.T) {
	domains := append(append([]string{}, validDomains...), invalidDomains...)
	type result struct {
		ascii, unicode string
		asciiErr       bool
	}
	want := make([]result, len(domains))
	for i, s := range domains {
		a, err := Lookup.ToASCII(s)
		u, _ := Registration.ToUnicode(s)
		want[i] = result{a, u, err != nil}
	}

	var g errgroup.Group
	g.SetLimit(8)
	for n := 0; n < 64; n++ {
		g.Go(func() error {
			for i, s := range domains {
				a, err := Lookup.ToASCII(s)
				u, _ := Registration.ToUnicode(s)
				if got := (result{a, u, err != nil}); got != want[i] {
					return fmt.Errorf("%+q: got %+v; want %+v", s, got, want[i])
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Error(err)
	}
}
