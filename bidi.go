// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"golang.org/x/text/secure/bidirule"
	"golang.org/x/text/unicode/bidi"
)

// checkBidi applies the Bidi Rule to the Unicode form of all labels of a
// Bidi domain name, that is a domain name with at least one RTL label.
// Labels that could not be decoded are skipped.
func (st *state) checkBidi(labels []string) {
	if !isBidiDomain(labels) {
		return
	}
	for _, l := range labels {
		if l != "" && !bidirule.ValidString(l) {
			st.fail(BidiViolation, "B", l)
		}
	}
}

func isBidiDomain(labels []string) bool {
	for _, l := range labels {
		if !ascii(l) && bidirule.DirectionString(l) == bidi.RightToLeft {
			return true
		}
	}
	return false
}
