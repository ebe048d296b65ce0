// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucd

import (
	"strings"
	"testing"
)

const file = `
# Comments should be skipped
# rune;  mapping; status
0000..0002; disallowed_STD3_valid  # <control-0000>..<control-0002>
0041      ; mapped     ; 0061      # LATIN CAPITAL LETTER A
00DF      ; deviation  ; 0073 0073 # LATIN SMALL LETTER SHARP S

FFFE..FFFF; disallowed
`

func TestExpandRanges(t *testing.T) {
	p := New(strings.NewReader(file))
	var got []rune
	for p.Next() {
		got = append(got, p.Rune(0))
	}
	if err := p.Err(); err != nil {
		t.Fatal(err)
	}
	want := []rune{0, 1, 2, 0x41, 0xDF, 0xFFFE, 0xFFFF}
	if string(got) != string(want) {
		t.Errorf("runes: got %U; want %U", got, want)
	}
}

func TestKeepRanges(t *testing.T) {
	p := New(strings.NewReader(file), KeepRanges)
	type entry struct {
		lo, hi  rune
		status  string
		mapping string
		comment string
	}
	var got []entry
	for p.Next() {
		lo, hi := p.Range(0)
		got = append(got, entry{lo, hi, p.String(1), string(p.Runes(2)), p.Comment()})
	}
	if err := p.Err(); err != nil {
		t.Fatal(err)
	}
	want := []entry{
		{0x0000, 0x0002, "disallowed_STD3_valid", "", "<control-0000>..<control-0002>"},
		{0x0041, 0x0041, "mapped", "a", "LATIN CAPITAL LETTER A"},
		{0x00DF, 0x00DF, "deviation", "ss", "LATIN SMALL LETTER SHARP S"},
		{0xFFFE, 0xFFFF, "disallowed", "", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%d: got %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestCommentHandler(t *testing.T) {
	var comments []string
	p := New(strings.NewReader(file), CommentHandler(func(s string) {
		comments = append(comments, s)
	}))
	for p.Next() {
	}
	if len(comments) != 2 || comments[1] != "rune;  mapping; status" {
		t.Errorf("comments: got %q", comments)
	}
}

func TestBadRune(t *testing.T) {
	p := New(strings.NewReader("0041; mapped; 00ZZ\n"))
	for p.Next() {
		p.Runes(2)
	}
	if p.Err() == nil {
		t.Error("got no error for invalid rune")
	}
}
