// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

package main

// This file contains code that is common between the generation code and the
// package's test code.

import (
	"log"

	"github.com/uts46/idna/internal/ucd"
)

func catFromEntry(p *ucd.Parser) (cat category) {
	r := p.Rune(0)
	switch s := p.String(1); s {
	case "valid":
		cat = valid
	case "disallowed":
		cat = disallowed
	case "disallowed_STD3_valid":
		cat = disallowedSTD3Valid
	case "disallowed_STD3_mapped":
		cat = disallowedSTD3Mapped
	case "mapped":
		cat = mapped
	case "deviation":
		cat = deviation
	case "ignored":
		cat = ignored
	default:
		log.Fatalf("%U: Unknown category %q", r, s)
	}
	// The IDNA2008 status (NV8, XV8) only informs about runes that are valid
	// under UTS #46 but not under IDNA2008. They are treated as valid.
	if s := p.String(3); s != "" && cat != valid {
		log.Fatalf(`%U: %s defined for %q/%v; want "valid"`, r, s, p.String(1), cat)
	}
	return cat
}

// hasMapping reports whether entries of category cat carry a mapping.
func hasMapping(cat category) bool {
	switch cat {
	case mapped, deviation, disallowedSTD3Mapped:
		return true
	}
	return false
}

var joinType = map[string]joining{
	"L": joiningL,
	"D": joiningD,
	"T": joiningT,
	"R": joiningR,
}
