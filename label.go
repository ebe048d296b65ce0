// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/uts46/idna/punycode"
)

// acePrefix is the ASCII Compatible Encoding prefix.
const acePrefix = "xn--"

// Limits of RFC 1034 for names in ASCII form, without the root label.
const (
	maxLabelLen  = 63
	maxDomainLen = 253
)

// isSeparator reports whether r is one of the label separators recognized by
// UTS #46: FULL STOP, IDEOGRAPHIC FULL STOP, FULLWIDTH FULL STOP and
// HALFWIDTH IDEOGRAPHIC FULL STOP.
func isSeparator(r rune) bool {
	switch r {
	case '.', '\u3002', '\uFF0E', '\uFF61':
		return true
	}
	return false
}

// splitLabels splits s at label separators. It always returns at least one
// label.
func splitLabels(s string) []string {
	if ascii(s) {
		return strings.Split(s, ".")
	}
	var labels []string
	start := 0
	for i, r := range s {
		if isSeparator(r) {
			labels = append(labels, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(labels, s[start:])
}

// hasACEPrefix reports whether label starts with "xn--" in any case.
func hasACEPrefix(label string) bool {
	return len(label) >= len(acePrefix) && strings.EqualFold(label[:len(acePrefix)], acePrefix)
}

// processLabel converts and validates a single label. It returns the label
// for the output of the conversion and its Unicode form. The Unicode form is
// empty if the label could not be decoded.
func (st *state) processLabel(label string) (out, uni string) {
	if hasACEPrefix(label) {
		u, ok := st.decodeLabel(label)
		if !ok {
			return label, ""
		}
		if st.validate {
			// Decoded labels are always validated nontransitionally.
			st.validateLabel(u, false, true)
		}
		if !st.toASCII {
			return u, u
		}
		if ascii(u) {
			return label, u
		}
		return st.encodeLabel(u), u
	}
	if st.validate {
		st.validateLabel(label, st.transitional, false)
	}
	if st.toASCII && !ascii(label) {
		return st.encodeLabel(label), label
	}
	return label, label
}

// decodeLabel converts an A-label to its Unicode form. It reports false if
// the label cannot be decoded; other problems are recorded with the decoded
// label returned.
func (st *state) decodeLabel(label string) (string, bool) {
	tail := label[len(acePrefix):]
	if !ascii(tail) {
		st.fail(InvalidACELabel, "P4", label)
		return "", false
	}
	u, err := punycode.Decode(tail)
	if err != nil {
		k := PunycodeMalformed
		if errors.Is(err, punycode.ErrOverflow) {
			k = PunycodeOverflow
		}
		st.fail(k, "P4", label)
		return "", false
	}
	if st.validate && ascii(u) {
		// Covers the empty label as well.
		st.fail(InvalidACELabel, "P4", label)
	}
	return u, true
}

func (st *state) encodeLabel(label string) string {
	if st.verifyDNSLength && asciiLen(label) > maxLabelLen {
		// The encoded form cannot fit; checkDNSLength reports it.
		return label
	}
	a, err := punycode.Encode(label)
	if err != nil {
		st.fail(PunycodeOverflow, "A3", label)
		return label
	}
	return acePrefix + a
}
