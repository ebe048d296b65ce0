// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// This file contains the contextual rules of RFC 5892 Appendix A.

const (
	zeroWidthNonJoiner = '\u200C'
	zeroWidthJoiner    = '\u200D'
)

// checkContextJ verifies the rules for ZERO WIDTH NON-JOINER (A.1) and ZERO
// WIDTH JOINER (A.2).
func (st *state) checkContextJ(label string) {
	if !containsJoiner(label) {
		return
	}
	runes := []rune(label)
	for i, r := range runes {
		switch r {
		case zeroWidthNonJoiner:
			if i > 0 && isVirama(runes[i-1]) {
				continue
			}
			if !joinsLeft(runes[:i]) || !joinsRight(runes[i+1:]) {
				st.fail(ContextJViolation, "C1", label)
			}
		case zeroWidthJoiner:
			if i == 0 || !isVirama(runes[i-1]) {
				st.fail(ContextJViolation, "C2", label)
			}
		}
	}
}

func containsJoiner(s string) bool {
	for _, r := range s {
		if r == zeroWidthNonJoiner || r == zeroWidthJoiner {
			return true
		}
	}
	return false
}

// isVirama reports whether r has Canonical_Combining_Class Virama.
func isVirama(r rune) bool {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return norm.NFC.Properties(buf[:n]).CCC() == 9
}

// joinsLeft reports whether before matches
// (Joining_Type:{L,D})(Joining_Type:T)*.
func joinsLeft(before []rune) bool {
	for i := len(before) - 1; i >= 0; i-- {
		switch joiningType(before[i]) {
		case joiningT:
			continue
		case joiningL, joiningD:
			return true
		}
		return false
	}
	return false
}

// joinsRight reports whether after matches
// (Joining_Type:T)*(Joining_Type:{R,D}).
func joinsRight(after []rune) bool {
	for _, r := range after {
		switch joiningType(r) {
		case joiningT:
			continue
		case joiningR, joiningD:
			return true
		}
		return false
	}
	return false
}

type contextBits uint8

const (
	bJapanese contextBits = 1 << iota
	bArabicIndicDigit
	bExtendedArabicIndicDigit
	bMustHaveJapn
)

// checkContextRules verifies the CONTEXTO rules of RFC 5892 Appendix A.3
// through A.9. At most one violation is recorded per label.
func (st *state) checkContextRules(label string) {
	runes := []rune(label)
	var bits contextBits
	ok := true
	for i, r := range runes {
		switch {
		case r == '\u00B7': // MIDDLE DOT
			ok = ok && i > 0 && i+1 < len(runes) && runes[i-1] == 'l' && runes[i+1] == 'l'
		case r == '\u0375': // GREEK LOWER NUMERAL SIGN (KERAIA)
			ok = ok && i+1 < len(runes) && unicode.Is(unicode.Greek, runes[i+1])
		case r == '\u05F3', r == '\u05F4': // HEBREW PUNCTUATION GERESH and GERSHAYIM
			ok = ok && i > 0 && unicode.Is(unicode.Hebrew, runes[i-1])
		case r == '\u30FB': // KATAKANA MIDDLE DOT
			bits |= bMustHaveJapn
		case '\u0660' <= r && r <= '\u0669':
			bits |= bArabicIndicDigit
		case '\u06F0' <= r && r <= '\u06F9':
			bits |= bExtendedArabicIndicDigit
		case unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han):
			bits |= bJapanese
		}
	}
	if bits&bMustHaveJapn != 0 && bits&bJapanese == 0 {
		ok = false
	}
	if bits&bArabicIndicDigit != 0 && bits&bExtendedArabicIndicDigit != 0 {
		ok = false
	}
	if !ok {
		st.fail(ContextOViolation, "CO", label)
	}
}
