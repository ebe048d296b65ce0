// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna_test

import (
	"errors"
	"fmt"

	"github.com/uts46/idna"
)

func ExampleProfile() {
	// Raw Punycode has no restrictions and does no mappings.
	fmt.Println(idna.ToASCII(""))
	fmt.Println(idna.ToASCII("*.GÖPHER.com"))
	fmt.Println(idna.Punycode.ToASCII("*.GÖPHER.com"))

	// Rewrite IDN for lookup.
	fmt.Println(idna.Lookup.ToASCII(""))
	fmt.Println(idna.Lookup.ToASCII("www.GÖPHER.com"))

	// Convert an IDN to ASCII for registration purposes. This changes the
	// encoding, but reports an error if the input was illformed.
	fmt.Println(idna.Registration.ToASCII(""))
	fmt.Println(idna.Registration.ToASCII("www.GÖPHER.com"))

	// Output:
	//
	//
	// *.xn--GPHER-1oa.com <nil>
	//  idna: empty label
	// www.xn--gpher-jua.com <nil>
	//  idna: empty label
	// www.xn--GPHER-1oa.com idna: disallowed rune U+0047 (and 5 more errors)
}

func ExampleNew() {
	var p *idna.Profile

	// The defaults map and validate as Lookup does.
	p = idna.New()
	fmt.Println(p.ToASCII("*.faß.com"))

	// Transitional processing maps deviation runes such as U+00DF.
	p = idna.New(idna.Transitional(true))
	fmt.Println(p.ToASCII("*.faß.com"))

	// Validate for registration. ToUnicode keeps deviation runes.
	p = idna.New(idna.ValidateForRegistration())
	fmt.Println(p.ToUnicode("*.faß.com"))

	// Allow wildcards by disabling the STD3 rules.
	p = idna.New(
		idna.MapForLookup(true),
		idna.Transitional(true),
		idna.UseSTD3Rules(false),
	)
	fmt.Println(p.ToASCII("*.faß.com"))

	// Output:
	// *.xn--fa-hia.com idna: disallowed rune U+002A
	// *.fass.com idna: disallowed rune U+002A
	// *.faß.com idna: disallowed rune U+002A
	// *.fass.com <nil>
}

func ExampleError() {
	_, err := idna.Lookup.ToASCII("-bad.xn--www-b.example")
	fmt.Println(errors.Is(err, idna.InvalidHyphenPlacement))
	fmt.Println(errors.Is(err, idna.BidiViolation))

	var e *idna.Error
	if errors.As(err, &e) {
		for _, k := range e.Kinds() {
			fmt.Println(k.String())
		}
		fmt.Println(e.Codes())
	}

	// Output:
	// true
	// false
	// InvalidHyphenPlacement
	// PunycodeMalformed
	// [V3 P4]
}
