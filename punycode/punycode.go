// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package punycode implements the Punycode encoding defined in RFC 3492.
//
// Punycode is the instance of the Bootstring algorithm used to represent
// Unicode labels of internationalized domain names in the restricted
// letter-digit-hyphen alphabet of the DNS. This package converts single
// labels; it does not add or remove the "xn--" ACE prefix.
package punycode // import "github.com/uts46/idna/punycode"

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Bootstring parameters for Punycode, see RFC 3492 section 5.
const (
	base        int32 = 36
	damp        int32 = 700
	initialBias int32 = 72
	initialN    int32 = 128
	skew        int32 = 38
	tmax        int32 = 26
	tmin        int32 = 1

	delimiter = '-'

	maxInt32 int32 = math.MaxInt32
)

var (
	// ErrOverflow indicates that the input requires integers wider than 32
	// bits to be processed.
	ErrOverflow = errors.New("punycode: overflow")

	// ErrMalformed indicates that the input is not a valid Punycode string or,
	// when encoding, not a valid sequence of Unicode scalar values.
	ErrMalformed = errors.New("punycode: malformed input")
)

// An Error describes a failure to encode or decode a string. It wraps either
// ErrOverflow or ErrMalformed.
type Error struct {
	Err   error
	Input string
	// Offset is the byte offset in Input at which decoding failed or, for
	// encoding, the number of code points handled before the failure.
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d of %+q", e.Err, e.Offset, e.Input)
}

func (e *Error) Unwrap() error { return e.Err }

func overflow(s string, pos int) error {
	return &Error{Err: ErrOverflow, Input: s, Offset: pos}
}

func malformed(s string, pos int) error {
	return &Error{Err: ErrMalformed, Input: s, Offset: pos}
}

// Decode decodes the Punycode string s. Basic code points before the last
// delimiter are copied verbatim; digits are case-insensitive.
func Decode(s string) (string, error) {
	output, err := decode(s)
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// DecodeRunes is like Decode but returns the decoded code points.
func DecodeRunes(s string) ([]rune, error) {
	return decode(s)
}

func decode(s string) ([]rune, error) {
	pos := 0
	output := make([]rune, 0, len(s))
	if b := strings.LastIndexByte(s, delimiter); b >= 0 {
		for i := 0; i < b; i++ {
			c := s[i]
			if c >= utf8.RuneSelf {
				return nil, malformed(s, i)
			}
			output = append(output, rune(c))
		}
		pos = b + 1
	}
	i, n, bias := int32(0), initialN, initialBias
	for pos < len(s) {
		oldI, w := i, int32(1)
		for k := base; ; k += base {
			if pos == len(s) {
				return nil, malformed(s, pos)
			}
			digit, ok := decodeDigit(s[pos])
			if !ok {
				return nil, malformed(s, pos)
			}
			if digit > (maxInt32-i)/w {
				return nil, overflow(s, pos)
			}
			pos++
			i += digit * w
			t := threshold(k, bias)
			if digit < t {
				break
			}
			if w > maxInt32/(base-t) {
				return nil, overflow(s, pos)
			}
			w *= base - t
		}
		x := int32(len(output) + 1)
		bias = adapt(i-oldI, x, oldI == 0)
		if i/x > maxInt32-n {
			return nil, overflow(s, pos)
		}
		n += i / x
		i %= x
		if n > utf8.MaxRune || 0xD800 <= n && n <= 0xDFFF {
			return nil, malformed(s, pos)
		}
		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = n
		i++
	}
	return output, nil
}

// Encode returns the Punycode encoding of s. Basic code points are copied in
// their original case. It fails if s is not valid UTF-8.
func Encode(s string) (string, error) {
	if !utf8.ValidString(s) {
		for i := 0; i < len(s); {
			r, sz := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && sz == 1 {
				return "", malformed(s, i)
			}
			i += sz
		}
	}
	return EncodeRunes([]rune(s))
}

// EncodeRunes returns the Punycode encoding of the code points in input.
func EncodeRunes(input []rune) (string, error) {
	output := make([]byte, 0, len(input)+len(input)/2+1)
	for i, r := range input {
		switch {
		case r < 0 || r > utf8.MaxRune || 0xD800 <= r && r <= 0xDFFF:
			return "", malformed(string(input), i)
		case r < utf8.RuneSelf:
			output = append(output, byte(r))
		}
	}
	b := len(output)
	h := b
	if b > 0 {
		output = append(output, delimiter)
	}
	n, delta, bias := initialN, int32(0), initialBias
	for h < len(input) {
		m := maxInt32
		for _, r := range input {
			if r >= n && r < m {
				m = r
			}
		}
		if m-n > (maxInt32-delta)/int32(h+1) {
			return "", overflow(string(input), h)
		}
		delta += (m - n) * int32(h+1)
		n = m
		for _, r := range input {
			if r < n {
				if delta == maxInt32 {
					return "", overflow(string(input), h)
				}
				delta++
				continue
			}
			if r > n {
				continue
			}
			q := delta
			for k := base; ; k += base {
				t := threshold(k, bias)
				if q < t {
					break
				}
				output = append(output, encodeDigit(t+(q-t)%(base-t)))
				q = (q - t) / (base - t)
			}
			output = append(output, encodeDigit(q))
			bias = adapt(delta, int32(h+1), h == b)
			delta = 0
			h++
		}
		if delta == maxInt32 {
			return "", overflow(string(input), h)
		}
		delta++
		n++
	}
	return string(output), nil
}

// adapt is the bias adaptation function of RFC 3492 section 6.1.
func adapt(delta, numPoints int32, firstTime bool) int32 {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := int32(0)
	for delta > ((base-tmin)*tmax)/2 {
		delta /= base - tmin
		k += base
	}
	return k + (base-tmin+1)*delta/(delta+skew)
}

// threshold returns k - bias clamped to [tmin, tmax].
func threshold(k, bias int32) int32 {
	t := k - bias
	switch {
	case t < tmin:
		return tmin
	case t > tmax:
		return tmax
	}
	return t
}

func decodeDigit(c byte) (digit int32, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return int32(c - ('0' - 26)), true
	case 'A' <= c && c <= 'Z':
		return int32(c - 'A'), true
	case 'a' <= c && c <= 'z':
		return int32(c - 'a'), true
	}
	return 0, false
}

func encodeDigit(digit int32) byte {
	switch {
	case 0 <= digit && digit < 26:
		return byte(digit + 'a')
	case 26 <= digit && digit < 36:
		return byte(digit + ('0' - 26))
	}
	panic("punycode: internal error: digit out of range")
}
