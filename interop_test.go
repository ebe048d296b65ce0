// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"testing"

	"github.com/miekg/dns"
	netidna "golang.org/x/net/idna"
	"golang.org/x/text/width"
)

var validDomains = []string{
	"example.com",
	"example.com.",
	"www.Example.COM",
	"bücher.example.com",
	"Bücher.example.com",
	"XN--BCHER-KVA.com",
	"meßagefactory.ca",
	"日本語。ＪＰ",
	"правительство.рф",
	"ελληνικά.gr",
	"münchen.de",
	"☃.net",
	"①.com",
	"ﬀ.com",
	"xn--ls8h.la",
	"אב.com",
}

var invalidDomains = []string{
	"-abc.com",
	"abc-.com",
	"ab--c.com",
	"a_b.com",
	"a b.com",
	"xn--www-b.com",
	"xn--a.com",
	"ab\u200Cc.com",
	"a\u200Dc.com",
	"\u0301abc.com",
}

// The Lookup profile of golang.org/x/net/idna is non-transitional and does
// not verify DNS lengths, which corresponds to Display.
func TestXNetLookup(t *testing.T) {
	for _, s := range validDomains {
		want, err := netidna.Lookup.ToASCII(s)
		if err != nil {
			t.Fatalf("%+q: x/net: unexpected error %v", s, err)
		}
		got, err := Display.ToASCII(s)
		if got != want || err != nil {
			t.Errorf("ToASCII(%+q) = %+q, %v; want %+q, nil", s, got, err, want)
		}

		want, _ = netidna.Lookup.ToUnicode(s)
		if got, _ := Display.ToUnicode(s); got != want {
			t.Errorf("ToUnicode(%+q) = %+q; want %+q", s, got, want)
		}
	}
	for _, s := range invalidDomains {
		if _, err := netidna.Lookup.ToASCII(s); err == nil {
			t.Fatalf("%+q: x/net: expected error", s)
		}
		if got, err := Display.ToASCII(s); err == nil {
			t.Errorf("ToASCII(%+q) = %+q; want error", s, got)
		}
	}
}

func TestDNSName(t *testing.T) {
	for _, s := range validDomains {
		a, err := Lookup.ToASCII(s)
		if err != nil {
			t.Errorf("%+q: unexpected error %v", s, err)
			continue
		}
		if _, ok := dns.IsDomainName(a); !ok {
			t.Errorf("%+q: ToASCII result %+q is not a valid DNS name", s, a)
		}
		if !ascii(a) {
			t.Errorf("%+q: ToASCII result %+q is not ASCII", s, a)
		}
		if fqdn := dns.Fqdn(a); dns.CountLabel(fqdn) != len(splitLabels(a))-boolInt(a[len(a)-1] == '.') {
			t.Errorf("%+q: label count of %+q differs from split", s, a)
		}
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestFullWidth(t *testing.T) {
	for _, s := range []string{"example.com", "golang.org", "xn--bcher-kva.example"} {
		wide := width.Widen.String(s)
		if wide == s {
			t.Fatalf("%+q: Widen did not change input", s)
		}
		got, err := Lookup.ToASCII(wide)
		if got != s || err != nil {
			t.Errorf("ToASCII(%+q) = %+q, %v; want %+q, nil", wide, got, err, s)
		}
	}
}
