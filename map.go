// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// simplify resolves the categories whose treatment depends on the options
// to one of valid, mapped, deviation, ignored, or disallowed.
func (p *Profile) simplify(cat category) category {
	switch cat {
	case disallowedSTD3Mapped:
		if p.useSTD3Rules {
			cat = disallowed
		} else {
			cat = mapped
		}
	case disallowedSTD3Valid:
		if p.useSTD3Rules {
			cat = disallowed
		} else {
			cat = valid
		}
	case deviation:
		if !p.transitional {
			cat = valid
		}
	}
	return cat
}

// mapString applies the mapping step of UTS #46 section 4 to s and
// normalizes the result to NFC. Disallowed runes are recorded and passed
// through unchanged.
func (st *state) mapString(s string) string {
	var (
		b    []byte
		k, i int
	)
	for i < len(s) {
		r, sz := utf8.DecodeRuneInString(s[i:])
		start := i
		i += sz
		if r == utf8.RuneError && sz == 1 {
			st.failRune("P1", r)
			b = append(b, s[k:start]...)
			b = append(b, "\ufffd"...)
			k = i
			continue
		}
		v := lookup(r)
		cat := st.simplify(v.category())
		if st.registration && (cat == mapped || cat == ignored) {
			// Registration requires the canonical form.
			st.failRune("P1", r)
			continue
		}
		switch cat {
		case valid:
			continue
		case disallowed:
			code := "P1"
			if c := v.category(); c == disallowedSTD3Valid || c == disallowedSTD3Mapped {
				code = "U1"
			}
			st.failRune(code, r)
			continue
		case mapped, deviation:
			b = append(b, s[k:start]...)
			b = append(b, v.mapping()...)
		case ignored:
			b = append(b, s[k:start]...)
			// drop the rune
		}
		k = i
	}
	if k == 0 {
		// No changes so far.
		if norm.NFC.QuickSpanString(s) == len(s) {
			return s
		}
		if st.registration && !norm.NFC.IsNormalString(s) {
			st.fail(NotNormalized, "V1", "")
		}
		return norm.NFC.String(s)
	}
	b = append(b, s[k:]...)
	if norm.NFC.QuickSpan(b) != len(b) {
		b = norm.NFC.Bytes(b)
	}
	return string(b)
}
