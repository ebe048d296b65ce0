// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// validateLabel applies the validity criteria of UTS #46 section 4.1 to a
// non-empty label in Unicode form. The domain-wide bidi check is done
// separately in checkBidi.
func (st *state) validateLabel(label string, transitional, decoded bool) {
	if label == "" {
		return
	}
	if (decoded || !st.mapping) && !norm.NFC.IsNormalString(label) {
		st.fail(NotNormalized, "V1", label)
	}
	if st.checkHyphens {
		if hyphens34(label) {
			st.fail(InvalidHyphenPlacement, "V2", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			st.fail(InvalidHyphenPlacement, "V3", label)
		}
	} else if hasACEPrefix(label) {
		st.fail(InvalidHyphenPlacement, "V4", label)
	}
	if decoded && strings.IndexByte(label, '.') >= 0 {
		st.fail(InvalidACELabel, "V5", label)
	}
	if r, _ := utf8.DecodeRuneInString(label); unicode.Is(unicode.M, r) {
		st.fail(LeadingCombiningMark, "V6", label)
	}
	if decoded || !st.mapping {
		for _, r := range label {
			if !st.validRune(r, transitional) {
				st.fail(DisallowedCodepoint, "V7", label)
				break
			}
		}
	}
	if st.checkJoiners {
		st.checkContextJ(label)
	}
	if st.checkContextO {
		st.checkContextRules(label)
	}
}

// hyphens34 reports whether the third and fourth rune of s are hyphens.
func hyphens34(s string) bool {
	n := 0
	for _, r := range s {
		n++
		switch {
		case n < 3:
		case r != '-':
			return false
		case n == 4:
			return true
		}
	}
	return false
}

// validRune reports whether r may appear unchanged in a label.
func (p *Profile) validRune(r rune, transitional bool) bool {
	switch lookup(r).category() {
	case valid:
		return true
	case deviation:
		return !transitional
	case disallowedSTD3Valid:
		return !p.useSTD3Rules
	}
	return false
}
