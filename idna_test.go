// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type convertFunc func(string) (string, error)

// codes returns the conformance codes of err, or nil if err is nil.
func codes(t *testing.T, err error) []string {
	t.Helper()
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is of type %T; want *Error", err, err)
	}
	return e.Codes()
}

func TestConvert(t *testing.T) {
	var (
		lookupA  = Lookup.ToASCII
		lookupU  = Lookup.ToUnicode
		transA   = New(Transitional(true)).ToASCII
		long     = strings.Repeat("a", 64)
		maxLabel = strings.Repeat("a", 63)
		tooLong  = strings.Repeat("é", 70)
		edge     = strings.Repeat("a", 58) + "é"
	)
	testCases := []struct {
		name  string
		f     convertFunc
		in    string
		want  string
		codes []string
	}{
		{"ToASCII", lookupA, "meßagefactory.ca", "xn--meagefactory-m9a.ca", nil},
		{"ToASCII", lookupA, "MEßAGEFACTORY.CA", "xn--meagefactory-m9a.ca", nil},
		{"ToASCII", lookupA, "example.com", "example.com", nil},
		{"ToASCII", lookupA, "example.com.", "example.com.", nil},
		{"ToASCII", lookupA, "bücher.example.com", "xn--bcher-kva.example.com", nil},
		{"ToASCII", lookupA, "Bücher.example.com", "xn--bcher-kva.example.com", nil},
		{"ToASCII", lookupA, "XN--BCHER-KVA.com", "xn--bcher-kva.com", nil},
		{"ToASCII", lookupA, "日本語。ＪＰ", "xn--wgv71a119e.jp", nil},
		{"ToASCII", lookupA, "a。b．c｡d", "a.b.c.d", nil},
		{"ToASCII", lookupA, "abc\u00ad.com", "abc.com", nil},
		{"ToASCII", lookupA, "①.com", "1.com", nil},
		{"ToASCII", lookupA, "ﬀ.com", "ff.com", nil},
		{"ToASCII", lookupA, "ǅ.com", "xn--d-toa.com", nil},
		{"ToASCII", lookupA, "xn--ls8h.la", "xn--ls8h.la", nil},
		{"ToASCII", lookupA, "правительство.рф", "xn--80aealotwbjpid2k.xn--p1ai", nil},
		{"ToASCII", lookupA, "ελληνικά.gr", "xn--hxargifdar.gr", nil},
		{"ToASCII", lookupA, "אב.com", "xn--4dbc.com", nil},
		{"ToASCII", lookupA, maxLabel + ".com", maxLabel + ".com", nil},

		{"ToASCII", lookupA, "", "", []string{"A4_1"}},
		{"ToASCII", lookupA, ".", ".", []string{"A4_1"}},
		{"ToASCII", lookupA, "a..b", "a..b", []string{"A4_2"}},
		{"ToASCII", lookupA, "..a", "..a", []string{"A4_2"}},
		{"ToASCII", lookupA, ".l", ".l", []string{"A4_2"}},
		{"ToASCII", lookupA, "a.", "a.", nil},
		{"ToASCII", lookupA, tooLong + ".com", tooLong + ".com", []string{"A4_2"}},
		{"ToASCII", lookupA, edge, "xn--" + strings.Repeat("a", 58) + "-xdf", []string{"A4_2"}},
		{"ToASCII", lookupA, long + ".com", long + ".com", []string{"A4_2"}},
		{"ToASCII", lookupA, "-abc.com", "-abc.com", []string{"V3"}},
		{"ToASCII", lookupA, "abc-.com", "abc-.com", []string{"V3"}},
		{"ToASCII", lookupA, "ab--c.com", "ab--c.com", []string{"V2"}},
		{"ToASCII", lookupA, "xn--xn---ooa.com", "xn--xn---ooa.com", []string{"V2"}},
		{"ToASCII", lookupA, "a_b.com", "a_b.com", []string{"U1"}},
		{"ToASCII", lookupA, "⑴.com", "xn--8rh.com", []string{"U1"}},
		{"ToASCII", lookupA, "\ufffd.com", "xn--zn7c.com", []string{"P1"}},
		{"ToASCII", lookupA, "xn--www-b.com", "xn--www-b.com", []string{"P4"}},
		{"ToASCII", lookupA, "xn--ab-.com", "xn--ab-.com", []string{"P4"}},
		{"ToASCII", lookupA, "xn--fa-hiaé.de", "xn--fa-hiaé.de", []string{"P4"}},
		{"ToASCII", lookupA, "xn--99999999999", "xn--99999999999", []string{"P4"}},
		{"ToASCII", lookupA, "xn--a.com", "xn--a.com", []string{"V7"}},
		{"ToASCII", lookupA, "xn--a-ecp.ru", "xn--a-ecp.ru", []string{"V7"}},
		{"ToASCII", lookupA, "\u0301abc", "xn--abc-jdc", []string{"V6"}},
		{"ToASCII", lookupA, "ab\u200cc", "xn--abc-bn0a", []string{"C1"}},
		{"ToASCII", lookupA, "a\u200dc", "xn--ac-m1t", []string{"C2"}},
		{"ToASCII", lookupA, "क्\u200cष", "xn--11b2ezcs70k", nil},
		{"ToASCII", lookupA, "क्\u200dष", "xn--11b2ezcw70k", nil},
		{"ToASCII", lookupA, "ب\u200cب", "xn--ngba799q", nil},
		{"ToASCII", lookupA, "1א.com", "xn--1-0hc.com", []string{"B"}},
		{"ToASCII", lookupA, "אב.1abc", "xn--4dbc.1abc", []string{"B"}},
		{"ToASCII", lookupA, "אa.com", "xn--a-zhc.com", []string{"B"}},
		{"ToASCII", lookupA, "a.xn--mgb0j6q", "a.xn--mgb0j6q", []string{"B"}},

		{"Transitional", transA, "faß.de", "fass.de", nil},
		{"Transitional", transA, "meßagefactory.ca", "messagefactory.ca", nil},
		{"Transitional", transA, "ς.com", "xn--4xa.com", nil},
		{"Transitional", transA, "ab\u200cc", "abc", nil},
		{"Transitional", transA, "xn--zca.com", "xn--zca.com", nil},

		{"ToUnicode", lookupU, "xn--meagefactory-m9a.ca", "meßagefactory.ca", nil},
		{"ToUnicode", lookupU, "xn--bcher-kva.example.com", "bücher.example.com", nil},
		{"ToUnicode", lookupU, "XN--BCHER-KVA.com", "bücher.com", nil},
		{"ToUnicode", lookupU, "xn--mller-kva.xn--mller-kva.de", "müller.müller.de", nil},
		{"ToUnicode", lookupU, "xn--ls8h", "\U0001f4a9", nil},
		{"ToUnicode", lookupU, "日本語。ＪＰ", "日本語.jp", nil},
		{"ToUnicode", lookupU, "", "", []string{"X4_2"}},
		{"ToUnicode", lookupU, ".", ".", []string{"X4_2"}},
		{"ToUnicode", lookupU, "a..b", "a..b", []string{"X4_2"}},
		{"ToUnicode", lookupU, ".l", ".l", []string{"X4_2"}},
		{"ToUnicode", lookupU, "\uff0ela", ".la", []string{"X4_2"}},
		{"ToUnicode", lookupU, "a.", "a.", nil},
		{"ToUnicode", lookupU, tooLong, tooLong, nil},
		{"ToUnicode", lookupU, long + ".com", long + ".com", nil},
		{"ToUnicode", lookupU, "xn--ab-.com", "ab.com", []string{"P4"}},
		{"ToUnicode", lookupU, "xn--.com", ".com", []string{"P4"}},
		{"ToUnicode", lookupU, "xn--xn---ooa.com", "xn--ä.com", []string{"V2"}},
		{"ToUnicode", lookupU, "-abc.com", "-abc.com", []string{"V3"}},
		{"ToUnicode", lookupU, "ab\u200cc", "ab\u200cc", []string{"C1"}},
		{"ToUnicode", New(Transitional(true)).ToUnicode, "faß.de", "faß.de", nil},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s/%+q", tc.name, tc.in), func(t *testing.T) {
			got, err := tc.f(tc.in)
			if got != tc.want {
				t.Errorf("got %+q; want %+q", got, tc.want)
			}
			if diff := cmp.Diff(tc.codes, codes(t, err)); diff != "" {
				t.Errorf("codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	testCases := []struct {
		desc  string
		p     *Profile
		f     func(p *Profile) convertFunc
		in    string
		want  string
		codes []string
	}{
		{"CheckHyphens(false)", New(CheckHyphens(false)), toASCII, "-abc.com", "-abc.com", nil},
		{"CheckHyphens(false)", New(CheckHyphens(false)), toASCII, "ab--c.com", "ab--c.com", nil},
		{"CheckHyphens(false)", New(CheckHyphens(false)), toUnicode, "xn--xn---ooa.com", "xn--ä.com", []string{"V4"}},
		{"UseSTD3Rules(false)", New(UseSTD3Rules(false)), toASCII, "a_b.com", "a_b.com", nil},
		{"UseSTD3Rules(false)", New(UseSTD3Rules(false)), toASCII, "⑴.com", "(1).com", nil},
		{"CheckBidi(false)", New(CheckBidi(false)), toASCII, "1א.com", "xn--1-0hc.com", nil},
		{"CheckJoiners(false)", New(CheckJoiners(false)), toASCII, "ab\u200cc", "xn--abc-bn0a", nil},
		{"VerifyDNSLength(false)", New(VerifyDNSLength(false)), toASCII, "a..b", "a..b", []string{"X4_2"}},
		{"VerifyDNSLength(false)", New(VerifyDNSLength(false)), toASCII, "", "", []string{"X4_2"}},
		{"VerifyDNSLength(false)", New(VerifyDNSLength(false)), toASCII, "example.com.", "example.com.", nil},
		{"MapForLookup(false)", New(MapForLookup(false)), toASCII, "bücher.com", "xn--bcher-kva.com", nil},
		{"MapForLookup(false)", New(MapForLookup(false)), toASCII, "Bücher.com", "xn--Bcher-kva.com", []string{"V7"}},
		{"MapForLookup(false)", New(MapForLookup(false)), toASCII, "a\u0308.com", "xn--a-ccb.com", []string{"V1"}},

		{"Display", Display, toASCII, strings.Repeat("a", 64), strings.Repeat("a", 64), nil},
		{"Punycode", Punycode, toASCII, "Bücher.com", "xn--Bcher-kva.com", nil},
		{"Punycode", Punycode, toASCII, "-a_b-..", "-a_b-..", nil},
		{"Punycode", Punycode, toUnicode, "a..b", "a..b", nil},
		{"Punycode", Punycode, toUnicode, "xn--ab-.com", "ab.com", nil},
		{"Punycode", Punycode, toUnicode, "xn--www-b.com", "xn--www-b.com", []string{"P4"}},

		{"Registration", Registration, toASCII, "bücher.com", "xn--bcher-kva.com", nil},
		{"Registration", Registration, toASCII, "Bücher.com", "xn--Bcher-kva.com", []string{"P1"}},
		{"Registration", Registration, toASCII, "abc\u00ad.com", "xn--abc-ifa.com", []string{"P1"}},
		{"Registration", Registration, toASCII, "a\u0308.com", "xn--4ca.com", []string{"V1"}},
		{"Registration", Registration, toASCII, "faß.de", "xn--fa-hia.de", nil},
		{"Registration", Registration, toASCII, "l·l.cat", "xn--ll-0ea.cat", nil},
		{"Registration", Registration, toASCII, "a·l.cat", "xn--al-0ea.cat", []string{"CO"}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s/%+q", tc.desc, tc.in), func(t *testing.T) {
			got, err := tc.f(tc.p)(tc.in)
			if got != tc.want {
				t.Errorf("got %+q; want %+q", got, tc.want)
			}
			if diff := cmp.Diff(tc.codes, codes(t, err)); diff != "" {
				t.Errorf("codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func toASCII(p *Profile) convertFunc   { return p.ToASCII }
func toUnicode(p *Profile) convertFunc { return p.ToUnicode }

func TestPackageFuncs(t *testing.T) {
	testCases := []struct {
		in, ascii, unicode string
	}{
		{"meßagefactory.ca", "xn--meagefactory-m9a.ca", "meßagefactory.ca"},
		{"xn--meagefactory-m9a.ca", "xn--meagefactory-m9a.ca", "meßagefactory.ca"},
		{"example.com", "example.com", "example.com"},
		{"golang", "golang", "golang"},
		{"", "", ""},
		{"a..b", "", ""},
		{".com", "", ""},
		{strings.Repeat("x", 64) + ".com", "", strings.Repeat("x", 64) + ".com"},
		{"-abc.com", "", ""},
		{"abc-.com", "", ""},
		{"1א.com", "", ""},
		{"xn--www-b.com", "", ""},
	}
	for _, tc := range testCases {
		if got := ToASCII(tc.in); got != tc.ascii {
			t.Errorf("ToASCII(%+q) = %+q; want %+q", tc.in, got, tc.ascii)
		}
		if got := ToUnicode(tc.in); got != tc.unicode {
			t.Errorf("ToUnicode(%+q) = %+q; want %+q", tc.in, got, tc.unicode)
		}
	}
}

// Valid domain names without deviation characters round-trip.
func TestRoundTrip(t *testing.T) {
	domains := []string{
		"example.com",
		"bücher.example.com",
		"日本語.jp",
		"правительство.рф",
		"ελληνικά.gr",
		"אב.ישראל",
		"\U0001f4a9.la",
		"क्\u200dष.in",
		"xn--bcher-kva.example",
	}
	for _, d := range domains {
		a, err := Lookup.ToASCII(d)
		if err != nil {
			t.Errorf("%+q: ToASCII: unexpected error %v", d, err)
			continue
		}
		u1, err := Lookup.ToUnicode(a)
		if err != nil {
			t.Errorf("%+q: ToUnicode(ToASCII): unexpected error %v", d, err)
		}
		u2, _ := Lookup.ToUnicode(d)
		if u1 != u2 {
			t.Errorf("%+q: ToUnicode(ToASCII(d)) = %+q; want ToUnicode(d) = %+q", d, u1, u2)
		}
		if aa, err := Lookup.ToASCII(a); aa != a || err != nil {
			t.Errorf("%+q: ToASCII is not idempotent: got %+q, %v; want %+q", d, aa, err, a)
		}
	}
}

// Labels that cannot fit in a DNS label are not encoded when lengths are
// verified.
func TestLongLabel(t *testing.T) {
	long := strings.Repeat("é", 1000)
	got, err := Lookup.ToASCII(long)
	if got != long {
		t.Errorf("Lookup: got %+q; want input unchanged", got)
	}
	if !errors.Is(err, LabelTooLong) {
		t.Errorf("Lookup: got error %v; want LabelTooLong", err)
	}
	got, err = Display.ToASCII(long)
	if !strings.HasPrefix(got, "xn--9ca") || !ascii(got) || err != nil {
		t.Errorf("Display: got %.20q..., %v; want A-label and no error", got, err)
	}
}

func TestErrorAccumulation(t *testing.T) {
	_, err := Lookup.ToASCII("-a.b_c.xn--www-b." + strings.Repeat("z", 64))
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got error %v; want *Error", err)
	}
	wantKinds := []Kind{DisallowedCodepoint, InvalidHyphenPlacement, PunycodeMalformed, LabelTooLong}
	if diff := cmp.Diff(wantKinds, e.Kinds()); diff != "" {
		t.Errorf("Kinds mismatch (-want +got):\n%s", diff)
	}
	wantCodes := []string{"U1", "V3", "P4", "A4_2"}
	if diff := cmp.Diff(wantCodes, e.Codes()); diff != "" {
		t.Errorf("Codes mismatch (-want +got):\n%s", diff)
	}
	for _, k := range wantKinds {
		if !errors.Is(err, k) {
			t.Errorf("errors.Is(err, %v) = false; want true", k)
		}
	}
	if errors.Is(err, BidiViolation) {
		t.Errorf("errors.Is(err, BidiViolation) = true; want false")
	}
	if !strings.HasSuffix(err.Error(), "(and 3 more errors)") {
		t.Errorf("Error() = %q; want suffix %q", err, "(and 3 more errors)")
	}
}

func TestErrorText(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"a:b", "idna: disallowed rune U+003A"},
		{"-abc", `idna: invalid label "-abc": invalid hyphen placement`},
		{"", "idna: empty label"},
	}
	for _, tc := range testCases {
		_, err := Lookup.ToASCII(tc.in)
		if err == nil {
			t.Errorf("%+q: got no error; want %q", tc.in, tc.want)
			continue
		}
		if got := err.Error(); got != tc.want {
			t.Errorf("%+q: got %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestViolationText(t *testing.T) {
	testCases := []struct {
		v    Violation
		want string
	}{
		{Violation{Kind: LabelTooLong, Label: "x"}, `idna: invalid label "x": label too long`},
		{Violation{Kind: Kind(99), Label: "x"}, `idna: invalid label "x": Kind(99)`},
		{Violation{Kind: Kind(0), Label: "x"}, `idna: invalid label "x": Kind(0)`},
		{Violation{Kind: DisallowedCodepoint, Rune: '*'}, "idna: disallowed rune U+002A"},
		{Violation{Kind: Kind(99)}, "idna: Kind(99)"},
	}
	for _, tc := range testCases {
		if got := tc.v.Error(); got != tc.want {
			t.Errorf("%+v: got %q; want %q", tc.v, got, tc.want)
		}
	}
}

func TestKindString(t *testing.T) {
	for k := DisallowedCodepoint; k <= NotNormalized; k++ {
		if s := k.String(); strings.HasPrefix(s, "Kind(") {
			t.Errorf("%d: no name", k)
		}
		if !strings.HasPrefix(k.Error(), "idna: ") {
			t.Errorf("%v: Error() = %q; want prefix %q", k, k.Error(), "idna: ")
		}
	}
	if got, want := Kind(0).String(), "Kind(0)"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestInvalidUTF8(t *testing.T) {
	for _, p := range []*Profile{Lookup, Punycode} {
		got, err := p.ToUnicode("a\xffb.com")
		if want := "a\ufffdb.com"; got != want {
			t.Errorf("%v: got %+q; want %+q", p, got, want)
		}
		if !errors.Is(err, DisallowedCodepoint) {
			t.Errorf("%v: got error %v; want DisallowedCodepoint", p, err)
		}
	}
}

func TestString(t *testing.T) {
	testCases := []struct {
		p    *Profile
		want string
	}{
		{Lookup, "NonTransitional:UseSTD3Rules:VerifyDNSLength:CheckHyphens:CheckBidi:CheckJoiners"},
		{Display, "NonTransitional:UseSTD3Rules:CheckHyphens:CheckBidi:CheckJoiners"},
		{Registration, "NonTransitional:Registration:UseSTD3Rules:VerifyDNSLength:CheckHyphens:CheckBidi:CheckJoiners:CheckContextO"},
		{Punycode, "NonTransitional:NoMapping:NoValidation"},
		{New(Transitional(true), UseSTD3Rules(false)), "Transitional:VerifyDNSLength:CheckHyphens:CheckBidi:CheckJoiners"},
	}
	for _, tc := range testCases {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("got %q; want %q", got, tc.want)
		}
	}
}

func TestSplitLabels(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{".", []string{"", ""}},
		{"a.b", []string{"a", "b"}},
		{"a。b．c｡d", []string{"a", "b", "c", "d"}},
		{"日本。jp.", []string{"日本", "jp", ""}},
	}
	for _, tc := range testCases {
		if diff := cmp.Diff(tc.want, splitLabels(tc.in)); diff != "" {
			t.Errorf("%+q: mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestHyphens34(t *testing.T) {
	testCases := []struct {
		in   string
		want bool
	}{
		{"ab--c", true},
		{"xn--", true},
		{"ab-c", false},
		{"a--b", false},
		{"éé--", true},
		{"ab-", false},
	}
	for _, tc := range testCases {
		if got := hyphens34(tc.in); got != tc.want {
			t.Errorf("%+q: got %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestASCIIAllocs(t *testing.T) {
	if n := testing.AllocsPerRun(100, func() { Lookup.ToASCII("www.example.com") }); n > 5 {
		t.Errorf("got %f allocs; want <= 5", n)
	}
}

func BenchmarkProfile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Lookup.ToASCII("www.ñandú.com")
	}
}

func BenchmarkASCII(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Lookup.ToASCII("www.example.com")
	}
}
