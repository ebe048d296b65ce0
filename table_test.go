// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"testing"
	"unicode/utf8"

	"github.com/uts46/idna/internal/gen"
	"github.com/uts46/idna/internal/testtext"
	"github.com/uts46/idna/internal/ucd"
)

func TestRangesCoverAllRunes(t *testing.T) {
	if got := idnaRanges[0].lo; got != 0 {
		t.Errorf("first range starts at %U; want U+0000", got)
	}
	if got := idnaRanges[len(idnaRanges)-1].hi; got != utf8.MaxRune {
		t.Errorf("last range ends at %U; want %U", got, utf8.MaxRune)
	}
	for i, e := range idnaRanges {
		if e.lo > e.hi {
			t.Errorf("%d: range %U..%U is empty", i, e.lo, e.hi)
		}
		if i > 0 && idnaRanges[i-1].hi+1 != e.lo {
			t.Errorf("%d: range %U..%U does not follow %U", i, e.lo, e.hi, idnaRanges[i-1].hi)
		}
		if hasMapping(e.v.category()) && e.v.index()+1 >= len(mappingIndex) {
			t.Errorf("%U: mapping index %d out of range", e.lo, e.v.index())
		}
	}
	for i := 1; i < len(joiningRanges); i++ {
		if joiningRanges[i-1].hi >= joiningRanges[i].lo {
			t.Errorf("joining range %U..%U overlaps predecessor", joiningRanges[i].lo, joiningRanges[i].hi)
		}
	}
}

func TestLookup(t *testing.T) {
	testCases := []struct {
		r       rune
		cat     category
		mapping string
	}{
		{'a', valid, ""},
		{'-', valid, ""},
		{'A', mapped, "a"},
		{'_', disallowedSTD3Valid, ""},
		{'ß', deviation, "ss"},
		{'ς', deviation, "σ"},
		{'\u200C', deviation, ""},
		{'\u00AD', ignored, ""},
		{'⑴', disallowedSTD3Mapped, "(1)"},
		{'ﬀ', mapped, "ff"},
		{'。', mapped, "."},
		{'\uFFFD', disallowed, ""},
		{0x10FFFF, disallowed, ""},
		{-1, disallowed, ""},
		{0x110000, disallowed, ""},
	}
	for _, tc := range testCases {
		v := lookup(tc.r)
		if got := v.category(); got != tc.cat {
			t.Errorf("%U: category: got %d; want %d", tc.r, got, tc.cat)
		}
		if !hasMapping(tc.cat) {
			continue
		}
		if got := v.mapping(); got != tc.mapping {
			t.Errorf("%U: mapping: got %+q; want %+q", tc.r, got, tc.mapping)
		}
	}
}

func TestJoiningType(t *testing.T) {
	testCases := []struct {
		r    rune
		want joining
	}{
		{'a', joiningNone},
		{'ب', joiningD}, // BEH
		{'ا', joiningR}, // ALEF
		{'ً', joiningT}, // FATHATAN
		{'ꡲ', joiningL}, // PHAGS-PA SUPERFIXED LETTER RA
		{'\u200C', joiningNone},
	}
	for _, tc := range testCases {
		if got := joiningType(tc.r); got != tc.want {
			t.Errorf("%U: got %d; want %d", tc.r, got, tc.want)
		}
	}
}

func TestTables(t *testing.T) {
	testtext.SkipIfNotLong(t)

	ucd.Parse(gen.OpenUnicodeFile("idna", "", "IdnaMappingTable.txt"), func(p *ucd.Parser) {
		r := p.Rune(0)
		x := lookup(r)
		cat := catFromEntry(p)
		if got := x.category(); got != cat {
			t.Errorf("%U:category: got %x; want %x", r, got, cat)
		}
		if !hasMapping(cat) {
			return
		}
		want := string(p.Runes(2))
		if got := x.mapping(); got != want {
			t.Errorf("%U:mapping: got %+q; want %+q", r, got, want)
		}
	})
}
