// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"sort"
	"unicode/utf8"
)

// asciiInfo caches the lookups for the ASCII range, which covers the bulk of
// real-world input.
var asciiInfo [utf8.RuneSelf]info

func init() {
	for r := rune(0); r < utf8.RuneSelf; r++ {
		asciiInfo[r] = search(r)
	}
}

// lookup returns the IDNA info of r. Values that are not Unicode scalar
// values are disallowed.
func lookup(r rune) info {
	if 0 <= r && r < utf8.RuneSelf {
		return asciiInfo[r]
	}
	if r < 0 || r > utf8.MaxRune {
		return info(disallowed)
	}
	return search(r)
}

func search(r rune) info {
	i := sort.Search(len(idnaRanges), func(i int) bool {
		return idnaRanges[i].hi >= r
	})
	return idnaRanges[i].v
}

func (c info) category() category {
	return category(c & catMask)
}

func (c info) index() int {
	return int(c >> indexShift)
}

// mapping returns the replacement of a rune with category mapped, deviation,
// or disallowedSTD3Mapped.
func (c info) mapping() string {
	i := c.index()
	return mappings[mappingIndex[i]:mappingIndex[i+1]]
}

// joiningType reports the Joining_Type of r.
func joiningType(r rune) joining {
	i := sort.Search(len(joiningRanges), func(i int) bool {
		return joiningRanges[i].hi >= r
	})
	if i < len(joiningRanges) && joiningRanges[i].lo <= r {
		return joiningRanges[i].t
	}
	return joiningNone
}
