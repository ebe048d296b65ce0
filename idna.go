// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run gen.go gen_trieval.go gen_common.go

// http://www.unicode.org/reports/tr46

// Package idna implements the compatibility processing for Internationalized
// Domain Names defined by UTS (Unicode Technical Standard) #46.
//
// UTS #46 maps a domain name to a canonical form, validates each of its labels
// against the rules of IDNA2008 (RFC 5890 through RFC 5894) and converts
// labels between their Unicode form and their ASCII Compatible Encoding
// (A-label) form using Punycode.
//
// A conversion never stops at the first problem: all labels are processed and
// every violation is reported in an *Error together with a best-effort
// result.
package idna // import "github.com/uts46/idna"

import (
	"strings"
	"unicode/utf8"
)

// A Profile defines the configuration of an IDNA mapper. A Profile is safe
// for concurrent use.
type Profile struct {
	options
}

// An Option configures a Profile at creation time.
type Option func(*options)

type options struct {
	transitional    bool
	useSTD3Rules    bool
	verifyDNSLength bool
	checkHyphens    bool
	checkBidi       bool
	checkJoiners    bool
	checkContextO   bool
	mapping         bool
	registration    bool

	// validate enables the per-label validity criteria. It is only false for
	// the Punycode profile.
	validate bool
}

func getOpts(o ...Option) (res options) {
	res = options{
		useSTD3Rules:    true,
		verifyDNSLength: true,
		checkHyphens:    true,
		checkBidi:       true,
		checkJoiners:    true,
		mapping:         true,
		validate:        true,
	}
	for _, f := range o {
		f(&res)
	}
	return
}

// Transitional sets a Profile to use the Transitional mapping as defined in
// UTS #46, which maps deviation characters such as ß and ς to their IDNA2003
// equivalents.
func Transitional(transitional bool) Option {
	return func(o *options) { o.transitional = transitional }
}

// UseSTD3Rules sets whether ASCII runes other than letters, digits and the
// hyphen are disallowed, as defined in RFC 1123.
func UseSTD3Rules(use bool) Option {
	return func(o *options) { o.useSTD3Rules = use }
}

// VerifyDNSLength sets whether ToASCII verifies that labels and the domain
// name as a whole are within the length limits of DNS. It also rejects empty
// labels other than a trailing root label.
func VerifyDNSLength(verify bool) Option {
	return func(o *options) { o.verifyDNSLength = verify }
}

// CheckHyphens sets whether labels may not start or end with a hyphen and may
// not have hyphens in both the third and fourth position.
func CheckHyphens(check bool) Option {
	return func(o *options) { o.checkHyphens = check }
}

// CheckBidi sets whether the Bidi Rule of RFC 5893 is enforced for domain
// names that contain right-to-left labels.
func CheckBidi(check bool) Option {
	return func(o *options) { o.checkBidi = check }
}

// CheckJoiners sets whether the ContextJ rules of RFC 5892 Appendix A.1 and
// A.2 are enforced for ZERO WIDTH NON-JOINER and ZERO WIDTH JOINER.
func CheckJoiners(check bool) Option {
	return func(o *options) { o.checkJoiners = check }
}

// CheckContextO sets whether the ContextO rules of RFC 5892 Appendix A.3
// through A.9 are enforced.
func CheckContextO(check bool) Option {
	return func(o *options) { o.checkContextO = check }
}

// MapForLookup sets whether input is mapped with the IDNA mapping table and
// normalized to NFC before validation. Without mapping every rune must
// already be valid.
func MapForLookup(m bool) Option {
	return func(o *options) { o.mapping = m }
}

// ValidateForRegistration sets the Profile to accept only domain names that
// are already in their canonical form: any rune that would be changed or
// removed by the mapping is an error.
func ValidateForRegistration() Option {
	return func(o *options) {
		o.registration = true
		o.mapping = true
		o.transitional = false
		o.useSTD3Rules = true
	}
}

// New creates a new Profile. Without options it is equivalent to Lookup.
func New(o ...Option) *Profile {
	return &Profile{getOpts(o...)}
}

var (
	// Lookup is the recommended profile for looking up domain names.
	Lookup *Profile = lookupProfile

	// Display is the recommended profile for displaying domain names. It does
	// not verify DNS lengths.
	Display *Profile = display

	// Registration is the recommended profile for checking whether a given
	// domain name is acceptable for registration.
	Registration *Profile = registration

	// Punycode is a Profile that does raw Punycode processing of labels with
	// no mapping or validation.
	Punycode *Profile = punycodeProfile

	lookupProfile   = New()
	display         = New(VerifyDNSLength(false))
	registration    = New(ValidateForRegistration(), CheckContextO(true))
	punycodeProfile = &Profile{}
)

// String reports a string with a description of the profile for debugging
// purposes. The string format may change with different versions.
func (p *Profile) String() string {
	var s []string
	if p.transitional {
		s = append(s, "Transitional")
	} else {
		s = append(s, "NonTransitional")
	}
	add := func(on bool, name string) {
		if on {
			s = append(s, name)
		}
	}
	add(p.registration, "Registration")
	add(!p.mapping, "NoMapping")
	add(!p.validate, "NoValidation")
	add(p.useSTD3Rules, "UseSTD3Rules")
	add(p.verifyDNSLength, "VerifyDNSLength")
	add(p.checkHyphens, "CheckHyphens")
	add(p.checkBidi, "CheckBidi")
	add(p.checkJoiners, "CheckJoiners")
	add(p.checkContextO, "CheckContextO")
	return strings.Join(s, ":")
}

// ToASCII converts a domain or domain label to its ASCII form using the
// Lookup profile. It returns the empty string if s is not a valid domain name.
// For example, ToASCII("bücher.example.com") is "xn--bcher-kva.example.com",
// and ToASCII("golang") is "golang".
func ToASCII(s string) string {
	a, err := Lookup.ToASCII(s)
	if err != nil {
		return ""
	}
	return a
}

// ToUnicode converts a domain or domain label to its Unicode form using the
// Lookup profile. It returns the empty string if s is not a valid domain
// name. For example, ToUnicode("xn--bcher-kva.example.com") is
// "bücher.example.com", and ToUnicode("golang") is "golang".
func ToUnicode(s string) string {
	u, err := Lookup.ToUnicode(s)
	if err != nil {
		return ""
	}
	return u
}

// ToASCII converts a domain or domain label to its ASCII form. For example,
// ToASCII("bücher.example.com") is "xn--bcher-kva.example.com", and
// ToASCII("golang") is "golang". If an error is encountered it will return an
// *Error and a best-effort result.
func (p *Profile) ToASCII(s string) (string, error) {
	return p.process(s, true)
}

// ToUnicode converts a domain or domain label to its Unicode form. For
// example, ToUnicode("xn--bcher-kva.example.com") is "bücher.example.com",
// and ToUnicode("golang") is "golang". If an error is encountered it will
// return an *Error and a best-effort result.
//
// ToUnicode always uses nontransitional processing and never verifies DNS
// lengths.
func (p *Profile) ToUnicode(s string) (string, error) {
	pp := *p
	pp.transitional = false
	return pp.process(s, false)
}

// state holds the per-call data of a conversion.
type state struct {
	*Profile
	toASCII bool
	errs    []Violation
}

func (st *state) fail(k Kind, code, label string) {
	st.errs = append(st.errs, Violation{Kind: k, Code: code, Label: label})
}

func (st *state) failRune(code string, r rune) {
	st.errs = append(st.errs, Violation{Kind: DisallowedCodepoint, Code: code, Rune: r})
}

func (st *state) err() error {
	if len(st.errs) == 0 {
		return nil
	}
	return &Error{Violations: st.errs}
}

// process implements the algorithm described in section 4 of UTS #46,
// see http://www.unicode.org/reports/tr46.
func (p *Profile) process(s string, toASCII bool) (string, error) {
	st := &state{Profile: p, toASCII: toASCII}
	if p.mapping {
		s = st.mapString(s)
	} else {
		s = st.fixUTF8(s)
	}

	labels := splitLabels(s)
	if p.validate {
		st.checkEmptyLabels(labels)
	}
	uni := make([]string, len(labels))
	for i, label := range labels {
		labels[i], uni[i] = st.processLabel(label)
	}
	if p.validate && p.checkBidi {
		st.checkBidi(uni)
	}
	if toASCII && p.verifyDNSLength {
		st.checkDNSLength(labels)
	}
	return strings.Join(labels, "."), st.err()
}

// fixUTF8 replaces invalid UTF-8 sequences with U+FFFD, reporting each as a
// disallowed rune.
func (st *state) fixUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	b := make([]byte, 0, len(s)+2)
	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && sz == 1 {
			st.failRune("P1", r)
		}
		b = utf8.AppendRune(b, r)
		i += sz
	}
	return string(b)
}

// checkDNSLength verifies the length restrictions of DNS on the ASCII form
// of a domain name. A single trailing empty label denotes the root and is not
// counted.
// trimRoot removes a trailing empty label, which denotes the root.
func trimRoot(labels []string) []string {
	if n := len(labels); n > 1 && labels[n-1] == "" {
		return labels[:n-1]
	}
	return labels
}

// checkEmptyLabels records empty labels other than the root label. A domain
// name without any non-empty label is reported once.
func (st *state) checkEmptyLabels(labels []string) {
	labels = trimRoot(labels)
	label, domain := "X4_2", "X4_2"
	if st.toASCII && st.verifyDNSLength {
		label, domain = "A4_2", "A4_1"
	}
	empty := 0
	for _, l := range labels {
		if l == "" {
			empty++
		}
	}
	switch {
	case empty == len(labels):
		st.fail(EmptyLabel, domain, "")
	case empty > 0:
		for i := 0; i < empty; i++ {
			st.fail(EmptyLabel, label, "")
		}
	}
}

// asciiLen returns the length of the ASCII form of a converted label. Labels
// that were left unencoded because they cannot fit are measured by a lower
// bound of their encoded length.
func asciiLen(l string) int {
	if ascii(l) {
		return len(l)
	}
	n := utf8.RuneCountInString(l)
	if !hasACEPrefix(l) {
		n += len(acePrefix)
	}
	return n
}

func (st *state) checkDNSLength(labels []string) {
	labels = trimRoot(labels)
	total := len(labels) - 1
	for _, l := range labels {
		total += asciiLen(l)
	}
	if total > maxDomainLen {
		st.fail(DomainTooLong, "A4_1", "")
	}
	for _, l := range labels {
		if asciiLen(l) > maxLabelLen {
			st.fail(LabelTooLong, "A4_2", l)
		}
	}
}

func ascii(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
