// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/uts46/idna/internal/gen"
	"github.com/uts46/idna/internal/testtext"
	"github.com/uts46/idna/internal/ucd"
)

func TestConformance(t *testing.T) {
	testtext.SkipIfNotLong(t)

	r := gen.OpenUnicodeFile("idna", "", "IdnaTestV2.txt")
	defer r.Close()

	p := ucd.New(r, ucd.KeepRanges)
	transitional := New(Transitional(true))
	nonTransitional := New()
	for p.Next() {
		var (
			src          = def(unescape(p.String(0)), "")
			toUnicode    = def(unescape(p.String(1)), src)
			toUnicodeErr = p.String(2)
			toASCIIN     = def(unescape(p.String(3)), toUnicode)
			toASCIINErr  = def(p.String(4), toUnicodeErr)
			toASCIIT     = def(unescape(p.String(5)), toASCIIN)
			toASCIITErr  = def(p.String(6), toASCIINErr)
		)
		doTest(t, nonTransitional.ToUnicode, "ToUnicode", src, toUnicode, toUnicodeErr)
		doTest(t, nonTransitional.ToASCII, "ToASCII:N", src, toASCIIN, toASCIINErr)
		doTest(t, transitional.ToASCII, "ToASCII:T", src, toASCIIT, toASCIITErr)
	}
	if err := p.Err(); err != nil {
		t.Fatal(err)
	}
}

func doTest(t *testing.T, f convertFunc, name, src, want, status string) {
	codes := statusCodes(status)
	if skipStatus(codes, want) {
		return
	}
	testtext.Run(t, fmt.Sprintf("%s/%+q", name, src), func(t *testing.T) {
		got, err := f(src)
		wantErr := len(codes) > 0
		if gotErr := err != nil; gotErr != wantErr {
			t.Errorf("got error %v; want %v (%s)", err, wantErr, status)
		}
		if !wantErr && got != want {
			t.Errorf("got %+q; want %+q", got, want)
		}
	})
}

// statusCodes returns the error codes of a status field such as
// "[V3, A4_2]".
func statusCodes(status string) []string {
	var codes []string
	for _, c := range strings.Split(strings.Trim(status, "[]"), ",") {
		if c = strings.TrimSpace(c); c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}

// skipStatus reports whether a test expects an A4 error for a domain name
// that ends with the root label, which is allowed.
func skipStatus(codes []string, want string) bool {
	if !strings.HasSuffix(want, ".") {
		return false
	}
	for _, c := range codes {
		if strings.HasPrefix(c, "A4") {
			return true
		}
	}
	return false
}

func def(field, fallback string) string {
	if field == "" {
		return fallback
	}
	if field == `""` {
		return ""
	}
	return field
}

var escapeRE = regexp.MustCompile(`\\x\{([0-9A-Fa-f]+)\}`)

func unescape(s string) string {
	s = escapeRE.ReplaceAllStringFunc(s, func(m string) string {
		x, _ := strconv.ParseUint(m[3:len(m)-1], 16, 32)
		return string(rune(x))
	})
	s, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		panic(err)
	}
	return s
}
