// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"strconv"
	"strings"
	"testing"
)

func TestWriteString(t *testing.T) {
	long := strings.Repeat("a", 50)
	testCases := []struct {
		prefix string
		in     string
		want   string
	}{
		{"", "abc", `"abc"`},
		{"", "é\U0001F4A9", `"\u00e9\U0001f4a9"`},
		{"", long, `"` + long + `"`},
		{"const x = ", long, "const x = \"\" +\n\"" + long + `"`},
		{"", strings.Repeat("é", 30), `"` + strings.Repeat(`\u00e9`, 12) + "\" +\n\"" + strings.Repeat(`\u00e9`, 12) + "\" +\n\"" + strings.Repeat(`\u00e9`, 6) + `"`},
	}
	for _, tc := range testCases {
		w := NewCodeWriter()
		w.printf("%s", tc.prefix)
		w.WriteString(tc.in)
		if got := w.buf.String(); got != tc.want {
			t.Errorf("%+q: got %s; want %s", tc.in, got, tc.want)
		}
	}
}

func TestWriteArray(t *testing.T) {
	w := NewCodeWriter()
	w.WriteComment("x holds\nsome numbers.")
	w.WriteArray("x", "uint8", 3, 1, strconv.Itoa)
	w.WriteConst("c", "ab")

	want := "\n\n// x holds\n// some numbers.\n" +
		"// Size: 3 bytes, 3 elements\nvar x = [3]uint8{\n0,\n1,\n2,\n}\n" +
		"\n\n// Size: 2 bytes\nconst c = \"ab\"\n"
	if got := w.buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	if w.Size != 5 {
		t.Errorf("Size: got %d; want 5", w.Size)
	}
}
