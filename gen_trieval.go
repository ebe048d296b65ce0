// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

package main

// info holds the IDNA category of a range of runes in the low bits and, for
// runes with a mapping, the index of that mapping in mappingIndex.
type info uint16

const (
	catMask    = 0x7
	indexShift = 3
)

// category is the IDNA status of a rune as defined in IdnaMappingTable.txt.
// The IDNA2008 annotations NV8 and XV8 are folded into valid.
type category uint16

const (
	valid category = iota
	mapped
	deviation
	ignored
	disallowed
	disallowedSTD3Valid
	disallowedSTD3Mapped
)

// rangeEntry assigns v to the runes lo through hi inclusive.
type rangeEntry struct {
	lo, hi rune
	v      info
}

// joining is the Joining_Type of a rune. Only the types referred to by the
// ContextJ rules of RFC 5892 are distinguished.
type joining uint8

const (
	joiningNone joining = iota
	joiningL
	joiningD
	joiningR
	joiningT
)

type joiningEntry struct {
	lo, hi rune
	t      joining
}
