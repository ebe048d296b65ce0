// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// This program generates the tables of the idna package from
// IdnaMappingTable.txt and DerivedJoiningType.txt.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/uts46/idna/internal/gen"
	"github.com/uts46/idna/internal/ucd"
)

var outputFile = flag.String("output", "tables.go", "output file for generated tables")

func main() {
	gen.Init()

	// Both files are fetched concurrently as they may need to be downloaded.
	var idnaData, joiningData []byte
	var g errgroup.Group
	g.Go(func() (err error) {
		idnaData, err = readAll(gen.OpenUnicodeFile("idna", "", "IdnaMappingTable.txt"))
		return err
	})
	g.Go(func() (err error) {
		joiningData, err = readAll(gen.OpenUCDFile("extracted/DerivedJoiningType.txt"))
		return err
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("Could not read Unicode data: %v", err)
	}

	w := gen.NewCodeWriter()
	gen.WriteUnicodeVersion(w)
	genMappingTable(w, idnaData)
	genJoiningTable(w, joiningData)
	w.WriteGoFile(*outputFile, "idna")

	gen.Repackage("gen_trieval.go", "trieval.go", "idna")
	gen.Repackage("gen_common.go", "common_test.go", "idna")
}

func readAll(r io.ReadCloser) ([]byte, error) {
	defer r.Close()
	return io.ReadAll(r)
}

type entry struct {
	lo, hi  rune
	cat     category
	mapping string
}

func genMappingTable(w *gen.CodeWriter, data []byte) {
	var entries []entry
	p := ucd.New(bytes.NewReader(data), ucd.KeepRanges)
	for p.Next() {
		lo, hi := p.Range(0)
		e := entry{lo: lo, hi: hi, cat: catFromEntry(p)}
		if hasMapping(e.cat) {
			e.mapping = string(p.Runes(2))
		}
		if n := len(entries); n > 0 {
			last := &entries[n-1]
			if last.hi+1 != lo {
				log.Fatalf("%U: gap after %U", lo, last.hi)
			}
			if last.cat == e.cat && last.mapping == e.mapping {
				last.hi = hi
				continue
			}
		} else if lo != 0 {
			log.Fatalf("table does not start at U+0000")
		}
		entries = append(entries, e)
	}
	if err := p.Err(); err != nil {
		log.Fatal(err)
	}
	if hi := entries[len(entries)-1].hi; hi != 0x10FFFF {
		log.Fatalf("table ends at %U", hi)
	}

	// Deduplicate the mappings. Index 0 is the empty mapping.
	index := map[string]int{"": 0}
	blob := ""
	offsets := []int{0, 0}
	for _, e := range entries {
		if _, ok := index[e.mapping]; ok || !hasMapping(e.cat) {
			continue
		}
		index[e.mapping] = len(offsets) - 1
		blob += e.mapping
		offsets = append(offsets, len(blob))
	}
	if len(offsets) > 1<<(16-indexShift) {
		log.Fatalf("too many mappings for info: %d", len(offsets))
	}
	if len(blob) >= 1<<16 {
		log.Fatalf("mapping data too large for uint16 offsets: %d", len(blob))
	}

	w.WriteComment(`
	idnaRanges holds the IDNA status of every rune. Entries are sorted and
	cover U+0000..U+10FFFF without gaps. The info value holds the category
	and, for mapped runes, an index into mappingIndex.`)
	w.WriteArray("idnaRanges", "rangeEntry", len(entries), 12, func(i int) string {
		e := entries[i]
		v := info(e.cat) | info(index[e.mapping])<<indexShift
		return fmt.Sprintf("{0x%04X, 0x%04X, 0x%04x}", e.lo, e.hi, v)
	})

	w.WriteComment(`
	mappingIndex holds the offsets into mappings of each mapping. Mapping i
	is mappings[mappingIndex[i]:mappingIndex[i+1]].`)
	w.WriteArray("mappingIndex", "uint16", len(offsets), 2, func(i int) string {
		return fmt.Sprintf("0x%04x", offsets[i])
	})

	w.WriteComment(`
	mappings holds the replacement strings of mapped, deviation and
	disallowed_STD3_mapped runes.`)
	w.WriteConst("mappings", blob)
}

func genJoiningTable(w *gen.CodeWriter, data []byte) {
	type joiningRange struct {
		lo, hi rune
		t      joining
	}
	var ranges []joiningRange
	p := ucd.New(bytes.NewReader(data), ucd.KeepRanges)
	for p.Next() {
		t, ok := joinType[p.String(1)]
		if !ok {
			// Joining_Type U and C are not used by the ContextJ rules.
			continue
		}
		lo, hi := p.Range(0)
		ranges = append(ranges, joiningRange{lo, hi, t})
	}
	if err := p.Err(); err != nil {
		log.Fatal(err)
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].lo < ranges[j].lo })
	merged := ranges[:0]
	for _, r := range ranges {
		if n := len(merged); n > 0 && merged[n-1].t == r.t && merged[n-1].hi+1 == r.lo {
			merged[n-1].hi = r.hi
			continue
		}
		merged = append(merged, r)
	}

	names := map[joining]string{
		joiningL: "joiningL",
		joiningD: "joiningD",
		joiningR: "joiningR",
		joiningT: "joiningT",
	}
	w.WriteComment(`joiningRanges holds the runes with Joining_Type L, D, R or T.`)
	w.WriteArray("joiningRanges", "joiningEntry", len(merged), 12, func(i int) string {
		r := merged[i]
		return fmt.Sprintf("{0x%04X, 0x%04X, %s}", r.lo, r.hi, names[r.t])
	})
}
