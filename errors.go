// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "fmt"

//go:generate stringer -type=Kind

// A Kind classifies a violation of the processing or validity rules of
// UTS #46. Kind implements error, so errors.Is(err, BidiViolation) reports
// whether err contains a violation of that kind.
type Kind int

const (
	// DisallowedCodepoint indicates a rune that may not appear in a label
	// under the active profile.
	DisallowedCodepoint Kind = iota + 1

	// EmptyLabel indicates an empty label or an empty domain name while
	// verifying DNS lengths.
	EmptyLabel

	// LabelTooLong indicates a label of more than 63 bytes in its ASCII form.
	LabelTooLong

	// DomainTooLong indicates a domain name of more than 253 bytes in its
	// ASCII form, not counting a trailing root label.
	DomainTooLong

	// InvalidHyphenPlacement indicates a leading or trailing hyphen, or
	// hyphens in both the third and fourth position.
	InvalidHyphenPlacement

	// LeadingCombiningMark indicates a label that starts with a rune of
	// General_Category Mark.
	LeadingCombiningMark

	// BidiViolation indicates a label that fails the Bidi Rule of RFC 5893 in
	// a domain name that contains right-to-left labels.
	BidiViolation

	// ContextJViolation indicates a zero width joiner or non-joiner in a
	// context not allowed by RFC 5892 Appendix A.1 and A.2.
	ContextJViolation

	// ContextOViolation indicates a rune in a context not allowed by RFC 5892
	// Appendix A.3 through A.9.
	ContextOViolation

	// PunycodeOverflow indicates that a label could not be converted because
	// of integer overflow in the Punycode algorithm.
	PunycodeOverflow

	// PunycodeMalformed indicates an A-label whose Punycode part is invalid.
	PunycodeMalformed

	// InvalidACELabel indicates an A-label that is not in canonical form: it
	// contains non-ASCII runes, decodes to an ASCII-only label, or does not
	// re-encode to itself.
	InvalidACELabel

	// NotNormalized indicates a label that is not in Normalization Form C.
	NotNormalized
)

var kindText = [...]string{
	DisallowedCodepoint:    "disallowed rune",
	EmptyLabel:             "empty label",
	LabelTooLong:           "label too long",
	DomainTooLong:          "domain name too long",
	InvalidHyphenPlacement: "invalid hyphen placement",
	LeadingCombiningMark:   "label starts with a combining mark",
	BidiViolation:          "bidi rule violated",
	ContextJViolation:      "joiner rule violated",
	ContextOViolation:      "contextual rule violated",
	PunycodeOverflow:       "punycode overflow",
	PunycodeMalformed:      "invalid punycode",
	InvalidACELabel:        "invalid A-label",
	NotNormalized:          "label not in NFC",
}

func (k Kind) Error() string {
	return "idna: " + k.text()
}

func (k Kind) text() string {
	if k > 0 && int(k) < len(kindText) {
		return kindText[k]
	}
	return k.String()
}

// A Violation records a single failed rule.
type Violation struct {
	Kind Kind

	// Code is the error code used in the UTS #46 conformance test data, such
	// as "P1", "V3" or "A4_2". Bidi violations are reported as "B".
	Code string

	// Label is the label in which the violation was found. It is empty for
	// violations found while mapping and for domain-level violations.
	Label string

	// Rune is the offending rune for DisallowedCodepoint violations found
	// while mapping.
	Rune rune
}

func (v Violation) Error() string {
	switch {
	case v.Label != "":
		return fmt.Sprintf("idna: invalid label %q: %s", v.Label, v.Kind.text())
	case v.Kind == DisallowedCodepoint:
		return fmt.Sprintf("idna: disallowed rune %U", v.Rune)
	}
	return v.Kind.Error()
}

// An Error is returned by the conversion methods of a Profile. It holds all
// violations found in a domain name, in the order in which they were found.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	switch n := len(e.Violations); n {
	case 0:
		return "idna: invalid domain name"
	case 1:
		return e.Violations[0].Error()
	default:
		return fmt.Sprintf("%v (and %d more errors)", e.Violations[0], n-1)
	}
}

// Is reports whether target is a Kind of which e holds a violation.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && e.Has(k)
}

// Has reports whether e holds a violation of kind k.
func (e *Error) Has(k Kind) bool {
	for _, v := range e.Violations {
		if v.Kind == k {
			return true
		}
	}
	return false
}

// Kinds returns the distinct kinds of violations in e in order of first
// occurrence.
func (e *Error) Kinds() []Kind {
	var kinds []Kind
	for _, v := range e.Violations {
		if !containsKind(kinds, v.Kind) {
			kinds = append(kinds, v.Kind)
		}
	}
	return kinds
}

// Codes returns the distinct conformance codes of the violations in e in
// order of first occurrence.
func (e *Error) Codes() []string {
	var codes []string
	for _, v := range e.Violations {
		if !containsCode(codes, v.Code) {
			codes = append(codes, v.Code)
		}
	}
	return codes
}

func containsKind(a []Kind, k Kind) bool {
	for _, x := range a {
		if x == k {
			return true
		}
	}
	return false
}

func containsCode(a []string, c string) bool {
	for _, x := range a {
		if x == c {
			return true
		}
	}
	return false
}
