// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"fmt"
	"hash"
	"hash/fnv"
	"io"
	"strings"
)

// This file contains utilities for generating code.

// CodeWriter is a utility for writing structured code. It computes the content
// hash and size of written content. It ensures there are newlines between
// written code blocks.
type CodeWriter struct {
	buf  bytes.Buffer
	Size int
	Hash hash.Hash32 // content hash
	// For comments we skip the usual one-line separator if they are followed by
	// a code block.
	skipSep bool
}

func (w *CodeWriter) Write(p []byte) (n int, err error) {
	return w.buf.Write(p)
}

// NewCodeWriter returns a new CodeWriter.
func NewCodeWriter() *CodeWriter {
	return &CodeWriter{Hash: fnv.New32()}
}

// WriteGoFile appends the buffer with the total size of all created structures
// and writes it as a Go file to the given file with the given package name.
func (w *CodeWriter) WriteGoFile(filename, pkg string) {
	sz := w.Size
	w.WriteComment("Total table size %d bytes (%dKiB); checksum: %X\n", sz, sz/1024, w.Hash.Sum32())
	WriteGoFile(filename, pkg, w.buf.Bytes())
	w.buf.Reset()
}

func (w *CodeWriter) printf(f string, x ...interface{}) {
	fmt.Fprintf(w, f, x...)
}

func (w *CodeWriter) insertSep() {
	if w.skipSep {
		w.skipSep = false
		return
	}
	// Use at least two newlines to ensure a blank space between the previous
	// block. WriteGoFile will remove extraneous newlines.
	w.printf("\n\n")
}

// WriteComment writes a comment block. All line starts are prefixed with "//".
// Initial empty lines are gobbled. The indentation for the first line is
// stripped from consecutive lines.
func (w *CodeWriter) WriteComment(comment string, args ...interface{}) {
	s := fmt.Sprintf(comment, args...)
	s = strings.Trim(s, "\n")

	w.printf("\n\n// ")
	w.skipSep = true

	// strip first indent level.
	sep := "\n"
	for ; len(s) > 0 && (s[0] == '\t' || s[0] == ' '); s = s[1:] {
		sep += s[:1]
	}

	strings.NewReplacer(sep, "\n// ", "\n", "\n// ").WriteString(w, s)

	w.printf("\n")
}

// WriteSizeInfo writes a size comment for a block and adds size to the total.
// If n is not negative it is reported as the number of elements.
func (w *CodeWriter) WriteSizeInfo(size, n int) {
	if n >= 0 {
		w.printf("// Size: %d bytes, %d elements\n", size, n)
	} else {
		w.printf("// Size: %d bytes\n", size)
	}
	w.Size += size
}

// WriteConst writes a string constant of the given name and value.
func (w *CodeWriter) WriteConst(name, s string) {
	w.insertSep()
	w.WriteSizeInfo(len(s), -1)
	w.printf("const %s = ", name)
	w.WriteString(s)
	w.printf("\n")
}

// WriteArray writes a fixed-size array variable. Each element is written on a
// line of its own by calling elem with the element index.
func (w *CodeWriter) WriteArray(name, typ string, n, elemSize int, elem func(i int) string) {
	w.insertSep()
	w.WriteSizeInfo(n*elemSize, n)
	w.printf("var %s = [%d]%s{\n", name, n, typ)
	for i := 0; i < n; i++ {
		w.printf("%s,\n", elem(i))
	}
	w.printf("}\n")
}

// WriteString writes a string literal. Runes outside the ASCII range are
// escaped so that the generated file is plain ASCII.
func (w *CodeWriter) WriteString(s string) {
	io.WriteString(w.Hash, s) // content hash

	const maxInline = 40
	if len(s) <= maxInline {
		w.printf("%+q", s)
		return
	}

	// We will render the string as a multi-line string.
	const maxWidth = 80 - 4 - len(`"`) - len(`" +`)

	// Print "" +\n, if a string does not start on its own line.
	b := w.buf.Bytes()
	if p := len(bytes.TrimRight(b, " \t")); p > 0 && b[p-1] != '\n' {
		w.printf("\"\" +\n")
	}

	w.printf(`"`)
	n := maxWidth
	for _, r := range s {
		out := string(r)
		switch {
		case r == '"' || r == '\\':
			out = `\` + out
		case r < ' ' || r == 0x7f:
			out = fmt.Sprintf("\\x%02x", r)
		case r > 0xffff:
			out = fmt.Sprintf("\\U%08x", r)
		case r > 0x7f:
			out = fmt.Sprintf("\\u%04x", r)
		}
		if n -= len(out); n < 0 {
			w.printf("\" +\n\"")
			n = maxWidth - len(out)
		}
		w.printf("%s", out)
	}
	w.printf(`"`)
}
