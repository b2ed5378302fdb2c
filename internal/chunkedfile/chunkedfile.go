// Copyright 2024 The tzoffset Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunkedfile splits Starlark test scripts into independently
// executed chunks and checks that errors occur where they are expected.
//
// Chunks are separated by lines consisting of "---". A line may end in a
// comment of the form
//
//	### "regexp"
//
// meaning that executing the chunk must fail on that line with an error
// matching the quoted Go regular expression. For example:
//
//	tz.fixed_offset(86400) ### "range \(-86400, 86400\)"
//	---
//	assert.eq(str(tz.utc), "UTC")
//
// After executing a chunk the client reports each error with GotError
// and finally calls Done, which reports expected errors that never came.
package chunkedfile // import "github.com/tzoffset/tzoffset/internal/chunkedfile"

import (
	"os"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

const separator = "---"

// A Chunk is a portion of a source file together with the errors
// it is expected to produce, keyed by line number.
type Chunk struct {
	// Source is padded with leading newlines so that line numbers
	// reported by the interpreter are those of the whole file.
	Source   string
	filename string
	report   Reporter
	wantErrs map[int]*regexp.Regexp
}

// Reporter is implemented by *testing.T.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// Read reads and splits the named file. Problems with the file or its
// expectations are reported to report.
func Read(filename string, report Reporter) []Chunk {
	data, err := os.ReadFile(filename)
	if err != nil {
		report.Errorf("%s", err)
		return nil
	}
	eol := "\n"
	if runtime.GOOS == "windows" {
		eol = "\r\n"
	}
	return readBytes(filename, data, report, eol)
}

func readBytes(filename string, data []byte, report Reporter, eol string) []Chunk {
	var chunks []Chunk
	linenum := 1
	for _, text := range strings.Split(string(data), eol+separator+eol) {
		chunk := Chunk{
			Source:   strings.Repeat("\n", linenum-1) + text,
			filename: filename,
			report:   report,
			wantErrs: make(map[int]*regexp.Regexp),
		}
		for _, line := range strings.Split(text, "\n") {
			if i := strings.Index(line, "###"); i >= 0 {
				chunk.expect(linenum, strings.TrimSpace(line[i+len("###"):]))
			}
			linenum++
		}
		linenum++ // separator
		chunks = append(chunks, chunk)
	}
	return chunks
}

func (chunk *Chunk) expect(linenum int, quoted string) {
	pattern, err := strconv.Unquote(quoted)
	if err != nil {
		chunk.report.Errorf("\n%s:%d: not a quoted regexp: %s", chunk.filename, linenum, quoted)
		return
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		chunk.report.Errorf("\n%s:%d: %v", chunk.filename, linenum, err)
		return
	}
	chunk.wantErrs[linenum] = rx
}

// GotError records an error reported by the interpreter at linenum.
// Errors that were not expected, or that do not match the expected
// pattern, are reported.
func (chunk *Chunk) GotError(linenum int, msg string) {
	rx, ok := chunk.wantErrs[linenum]
	if !ok {
		chunk.report.Errorf("\n%s:%d: unexpected error: %v", chunk.filename, linenum, msg)
		return
	}
	delete(chunk.wantErrs, linenum)
	if !rx.MatchString(msg) {
		chunk.report.Errorf("\n%s:%d: error %q does not match pattern %q", chunk.filename, linenum, msg, rx)
	}
}

// Done reports every expected error for which GotError was not called.
func (chunk *Chunk) Done() {
	for linenum, rx := range chunk.wantErrs {
		chunk.report.Errorf("\n%s:%d: expected error matching %q", chunk.filename, linenum, rx)
	}
}
