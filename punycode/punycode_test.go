// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package punycode

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

// Sample strings from RFC 3492 section 7.1.
var rfcSamples = []struct {
	name    string
	decoded string
	encoded string
}{{
	"(A) Arabic (Egyptian)",
	"ليهمابتكلموشعربي؟",
	"egbpdaj6bu4bxfgehfvwxn",
}, {
	"(B) Chinese (simplified)",
	"他们为什么不说中文",
	"ihqwcrb4cv8a8dqg056pqjye",
}, {
	"(C) Chinese (traditional)",
	"他們爲什麽不說中文",
	"ihqwctvzc91f659drss3x8bo0yb",
}, {
	"(D) Czech",
	"Pročprostěnemluvíčesky",
	"Proprostnemluvesky-uyb24dma41a",
}, {
	"(E) Hebrew",
	"למההםפשוטלאמדבריםעברית",
	"4dbcagdahymbxekheh6e0a7fei0b",
}, {
	"(F) Hindi (Devanagari)",
	"यहलोगहिन्दीक्योंनहींबोलसकतेहैं",
	"i1baa7eci9glrd9b2ae1bj0hfcgg6iyaf8o0a1dig0cd",
}, {
	"(G) Japanese (kanji and hiragana)",
	"なぜみんな日本語を話してくれないのか",
	"n8jok5ay5dzabd5bym9f0cm5685rrjetr6pdxa",
}, {
	"(H) Korean (Hangul syllables)",
	"세계의모든사람들이한국어를이해한다면얼마나좋을까",
	"989aomsvi5e83db1d2a355cv1e0vak1dwrv93d5xbh15a0dt30a5jpsd879ccm6fea98c",
}, {
	"(I) Russian (Cyrillic)",
	"почемужеонинеговорятпорусски",
	"b1abfaaepdrnnbgefbadotcwatmq2g4l",
}, {
	"(J) Spanish",
	"PorquénopuedensimplementehablarenEspañol",
	"PorqunopuedensimplementehablarenEspaol-fmd56a",
}, {
	"(K) Vietnamese",
	"TạisaohọkhôngthểchỉnóitiếngViệt",
	"TisaohkhngthchnitingVit-kjcr8268qyxafd2f1b9g",
}, {
	"(L) 3<nen>B<gumi><kinpachi><sensei>",
	"3年B組金八先生",
	"3B-ww4c5e180e575a65lsy2b",
}, {
	"(M) <amuro><namie>-with-SUPER-MONKEYS",
	"安室奈美恵-with-SUPER-MONKEYS",
	"-with-SUPER-MONKEYS-pc58ag80a8qai00g7n9n",
}, {
	"(N) Hello-Another-Way-<sorezore><no><basho>",
	"Hello-Another-Way-それぞれの場所",
	"Hello-Another-Way--fc4qua05auwb3674vfr0b",
}, {
	"(O) <hitotsu><yane><no><shita>2",
	"ひとつ屋根の下2",
	"2-u9tlzr9756bt3uc0v",
}, {
	"(P) Maji<de>Koi<suru>5<byou><mae>",
	"MajiでKoiする5秒前",
	"MajiKoi5-783gue6qz075azm5e",
}, {
	"(Q) <pafii>de<runba>",
	"パフィーdeルンバ",
	"de-jg4avhby1noc0d",
}, {
	"(R) <sono><supiido><de>",
	"そのスピードで",
	"d9juau41awczczp",
}, {
	"(S) -> $1.00 <-",
	"-> $1.00 <-",
	"-> $1.00 <--",
}}

func TestEncode(t *testing.T) {
	for _, tc := range rfcSamples {
		got, err := Encode(tc.decoded)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.encoded {
			t.Errorf("%s: got %+q; want %+q", tc.name, got, tc.encoded)
		}
	}
}

func TestDecode(t *testing.T) {
	for _, tc := range rfcSamples {
		got, err := Decode(tc.encoded)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.decoded {
			t.Errorf("%s: got %+q; want %+q", tc.name, got, tc.decoded)
		}
	}
}

func TestDecodeCaseInsensitive(t *testing.T) {
	// The RFC lists sample (I) with a mixed-case annotation.
	got, err := Decode("b1abfaaepdrnnbgefbaDotcwatmq2g4l")
	if err != nil {
		t.Fatal(err)
	}
	if want := rfcSamples[8].decoded; got != want {
		t.Errorf("got %+q; want %+q", got, want)
	}
	got, err = Decode("MEAGEFACTORY-M9A")
	if err != nil {
		t.Fatal(err)
	}
	if want := "MEßAGEFACTORY"; got != want {
		t.Errorf("got %+q; want %+q", got, want)
	}
}

func TestRunes(t *testing.T) {
	in := []rune("bücher")
	enc, err := EncodeRunes(in)
	if err != nil {
		t.Fatal(err)
	}
	if enc != "bcher-kva" {
		t.Errorf("EncodeRunes: got %+q; want %+q", enc, "bcher-kva")
	}
	out, err := DecodeRunes(enc)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != string(in) {
		t.Errorf("DecodeRunes: got %+q; want %+q", string(out), string(in))
	}
}

func TestSimple(t *testing.T) {
	for _, tc := range []struct {
		decoded, encoded string
	}{
		{"", ""},
		{"a", "a-"},
		{"a-", "a--"},
		{"-", "--"},
		{"\u0080", "a"},
		{"ß", "zca"},
		{"meßagefactory", "meagefactory-m9a"},
		{"日本語", "wgv71a119e"},
		{"\U0010FFFF", "dn32g"},
	} {
		enc, err := Encode(tc.decoded)
		if err != nil || enc != tc.encoded {
			t.Errorf("Encode(%+q): got %+q, %v; want %+q", tc.decoded, enc, err, tc.encoded)
		}
		dec, err := Decode(tc.encoded)
		if err != nil || dec != tc.decoded {
			t.Errorf("Decode(%+q): got %+q, %v; want %+q", tc.encoded, dec, err, tc.decoded)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		in     string
		want   error
		offset int
	}{
		{"9", ErrMalformed, 1},          // truncated generalized integer
		{"a-b", ErrMalformed, 3},        // truncated after basic code points
		{"ß", ErrMalformed, 0},          // not a digit
		{"ab!", ErrMalformed, 2},        // not a digit
		{"é-abc", ErrMalformed, 0},      // non-basic code point before delimiter
		{"99999a", ErrMalformed, 6},     // beyond U+10FFFF
		{"99999999999", ErrOverflow, 7}, // i overflows
		{"99999999", ErrOverflow, 7},    // i overflows
		{"abc-9999999999", ErrOverflow, 11},
	} {
		_, err := Decode(tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("Decode(%+q): got error %v; want %v", tc.in, err, tc.want)
			continue
		}
		var perr *Error
		if !errors.As(err, &perr) {
			t.Errorf("Decode(%+q): error %T is not an *Error", tc.in, err)
			continue
		}
		if perr.Offset != tc.offset || perr.Input != tc.in {
			t.Errorf("Decode(%+q): got offset %d in %+q; want %d", tc.in, perr.Offset, perr.Input, tc.offset)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	long := strings.Repeat("a", 2000) + "\U0010FFFF"
	if _, err := Encode(long); !errors.Is(err, ErrOverflow) {
		t.Errorf("Encode(long): got %v; want %v", err, ErrOverflow)
	}
	if _, err := Encode("ab\xffc"); !errors.Is(err, ErrMalformed) {
		t.Errorf("Encode(invalid UTF-8): got %v; want %v", err, ErrMalformed)
	}
	for _, r := range []rune{-1, 0xD800, 0xDFFF, utf8.MaxRune + 1} {
		if _, err := EncodeRunes([]rune{'a', r}); !errors.Is(err, ErrMalformed) {
			t.Errorf("EncodeRunes(%U): got %v; want %v", r, err, ErrMalformed)
		}
	}
}

func TestAdapt(t *testing.T) {
	for _, tc := range []struct {
		delta, numPoints int32
		first            bool
		want             int32
	}{
		{0, 1, true, 0},
		{0, 1, false, 0},
		{700, 1, true, 1},
		{455, 1, false, 33},
		{1000000, 10, true, 55},
	} {
		if got := adapt(tc.delta, tc.numPoints, tc.first); got != tc.want {
			t.Errorf("adapt(%d, %d, %v): got %d; want %d", tc.delta, tc.numPoints, tc.first, got, tc.want)
		}
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, tc := range rfcSamples {
		f.Add(tc.decoded)
	}
	f.Fuzz(func(t *testing.T, s string) {
		enc, err := Encode(s)
		if err != nil {
			return
		}
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(Encode(%+q)) = %v", s, err)
		}
		if dec != s {
			t.Errorf("Decode(Encode(%+q)): got %+q", s, dec)
		}
	})
}

func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, tc := range rfcSamples {
			Encode(tc.decoded)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, tc := range rfcSamples {
			Decode(tc.encoded)
		}
	}
}
