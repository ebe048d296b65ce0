// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"fmt"
	"testing"
)

func TestContextJ(t *testing.T) {
	testCases := []struct {
		label string
		codes []string
	}{
		{"abc", nil},
		{"ab\u200Cc", []string{"C1"}},
		{"\u200C", []string{"C1"}},
		{"a\u200Dc", []string{"C2"}},
		{"\u200Dabc", []string{"C2"}},

		// Virama before the joiner.
		{"क्\u200Cष", nil},
		{"क्\u200Dष", nil},

		// (L|D) T* ZWNJ T* (R|D)
		{"ب\u200Cب", nil},       // BEH ZWNJ BEH
		{"ب\u064B\u200Cا", nil}, // BEH FATHATAN ZWNJ ALEF
		{"ا\u200Cب", []string{"C1"}},
		{"ب\u200C", []string{"C1"}},
		{"ꡲ\u200Cا", nil},
	}
	for _, tc := range testCases {
		st := &state{Profile: Lookup}
		st.checkContextJ(tc.label)
		var got []string
		for _, v := range st.errs {
			got = append(got, v.Code)
		}
		if fmt.Sprint(got) != fmt.Sprint(tc.codes) {
			t.Errorf("%+q: got %v; want %v", tc.label, got, tc.codes)
		}
	}
}

func TestContextO(t *testing.T) {
	testCases := []struct {
		label string
		ok    bool
	}{
		{"l·l", true},
		{"a·l", false},
		{"l·", false},
		{"·l", false},

		{"͵α", true},
		{"͵a", false},
		{"α͵", false},

		{"א׳", true},
		{"א״", true},
		{"a׳", false},
		{"״", false},

		{"・カ", true},
		{"あ・", true},
		{"日・", true},
		{"a・b", false},

		{"٠١", true},
		{"۰۱", true},
		{"٠۱", false},
	}
	for _, tc := range testCases {
		st := &state{Profile: Registration}
		st.checkContextRules(tc.label)
		if ok := len(st.errs) == 0; ok != tc.ok {
			t.Errorf("%+q: got %v; want %v", tc.label, ok, tc.ok)
		}
	}
}

func TestContextOProfile(t *testing.T) {
	p := New(CheckContextO(true), CheckBidi(false))
	for _, s := range []string{"a·l.cat", "a・b.jp", "٠۱.eg"} {
		if _, err := p.ToASCII(s); !isKind(err, ContextOViolation) {
			t.Errorf("%+q: got error %v; want ContextOViolation", s, err)
		}
		if _, err := Lookup.ToASCII(s); isKind(err, ContextOViolation) {
			t.Errorf("%+q: Lookup reported %v; ContextO is off by default", s, err)
		}
	}
}

func isKind(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Has(k)
}
