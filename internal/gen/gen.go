// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen contains common code for the table generators and the tests
// that verify generated tables against the Unicode data files.
//
// This package defines command line flags that are common to the generation
// tools. The flags allow for specifying the Unicode version in the public
// Unicode data repository (https://www.unicode.org/Public).
//
// A local Unicode data mirror can be set through the flag -local or the
// environment variable UNICODE_DIR. The former takes precedence. The local
// directory should follow the same structure as the public repository.
package gen // import "github.com/uts46/idna/internal/gen"

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sync"
)

var (
	url = flag.String("url",
		"https://www.unicode.org/Public",
		"URL of Unicode database directory")
	unicodeVersion = flag.String("unicode",
		getEnv("UNICODE_VERSION", "15.1.0"),
		"unicode version to use")
	localDir = flag.String("local",
		os.Getenv("UNICODE_DIR"),
		"directory containing a local mirror of the Unicode data; downloaded files are stored here")
)

func getEnv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// Init performs common initialization for a gen command. It parses the flags
// and sets up the standard logging parameters.
func Init() {
	log.SetPrefix("")
	log.SetFlags(log.Lshortfile)
	flag.Parse()
}

const header = `// Code generated by running "go generate" in github.com/uts46/idna. DO NOT EDIT.

`

// UnicodeVersion reports the requested Unicode version.
func UnicodeVersion() string {
	return *unicodeVersion
}

// IsLocal reports whether data files are available locally.
func IsLocal() bool {
	if *localDir == "" {
		return false
	}
	_, err := os.Stat(*localDir)
	return err == nil
}

// OpenUCDFile opens the requested UCD file. The file is specified relative to
// the ucd directory of the requested Unicode version. It will call log.Fatal
// if there are any errors.
func OpenUCDFile(file string) io.ReadCloser {
	return openUnicode(path.Join(*unicodeVersion, "ucd", file))
}

// OpenUnicodeFile opens the requested file of the requested category from the
// root of the Unicode data archive. If version is "", it will use the default
// Unicode version. It will call log.Fatal if there are any errors.
func OpenUnicodeFile(category, version, file string) io.ReadCloser {
	if version == "" {
		version = UnicodeVersion()
	}
	return openUnicode(path.Join(category, version, file))
}

const permissions = 0755

// dirMutex serializes the creation of directories in the local mirror, as
// files may be opened concurrently.
var dirMutex sync.Mutex

func openUnicode(p string) io.ReadCloser {
	if *localDir == "" {
		return get(*url, p)
	}
	file := filepath.Join(*localDir, filepath.FromSlash(p))
	if f, err := os.Open(file); err == nil {
		return f
	}
	r := get(*url, p)
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		log.Fatalf("Could not download file: %v", err)
	}
	dirMutex.Lock()
	defer dirMutex.Unlock()
	os.MkdirAll(filepath.Dir(file), permissions)
	if err := os.WriteFile(file, b, permissions); err != nil {
		log.Fatalf("Could not create file: %v", err)
	}
	return io.NopCloser(bytes.NewReader(b))
}

func get(root, p string) io.ReadCloser {
	url := root + "/" + p
	log.Printf("Fetching %s", url)
	resp, err := http.Get(url)
	if err != nil {
		log.Fatalf("HTTP GET: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Bad GET status for %q: %q", url, resp.Status)
	}
	return resp.Body
}

// WriteUnicodeVersion writes a constant for the Unicode version from which the
// tables are generated.
func WriteUnicodeVersion(w io.Writer) {
	fmt.Fprintf(w, "// UnicodeVersion is the Unicode version from which the tables in this package are derived.\n")
	fmt.Fprintf(w, "const UnicodeVersion = %q\n\n", UnicodeVersion())
}

// WriteGoFile prepends a standard file comment and package statement to the
// given bytes, applies gofmt, and writes them to a file with the given name.
// It will call log.Fatal if there are any errors.
func WriteGoFile(filename, pkg string, b []byte) {
	w, err := os.Create(filename)
	if err != nil {
		log.Fatalf("Could not create file %s: %v", filename, err)
	}
	defer w.Close()
	if _, err = WriteGo(w, pkg, b); err != nil {
		log.Fatalf("Error writing file %s: %v", filename, err)
	}
}

// WriteGo prepends a standard file comment and package statement to the given
// bytes, applies gofmt, and writes them to w.
func WriteGo(w io.Writer, pkg string, b []byte) (n int, err error) {
	src := []byte(header)
	src = append(src, fmt.Sprintf("package %s\n\n", pkg)...)
	src = append(src, b...)
	formatted, err := format.Source(src)
	if err != nil {
		// Print the generated code even in case of an error so that the
		// returned error can be meaningfully interpreted.
		n, _ = w.Write(src)
		return n, err
	}
	return w.Write(formatted)
}

// Repackage rewrites a Go file from belonging to package main to belonging to
// the given package.
func Repackage(inFile, outFile, pkg string) {
	src, err := os.ReadFile(inFile)
	if err != nil {
		log.Fatalf("reading %s: %v", inFile, err)
	}
	const toDelete = "package main\n\n"
	i := bytes.Index(src, []byte(toDelete))
	if i < 0 {
		log.Fatalf("Could not find %q in %s.", toDelete, inFile)
	}
	w := &bytes.Buffer{}
	w.Write(src[i+len(toDelete):])
	WriteGoFile(outFile, pkg, w.Bytes())
}
