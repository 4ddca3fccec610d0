// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package corpus reads input word lists and reads and writes processed
// corpora. Both formats are line-based with whitespace-separated fields.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/petar-djukic/go-syllab/pkg/types"
)

const (
	inputFields     = 2
	processedFields = 6
)

// Entry is one line of an input corpus: a word and its phonetic form(s).
type Entry struct {
	Line     int    // Line number (1-based)
	Word     string // Orthographic form
	Phonetic string // Phonetic form; alternatives separated by ';'
}

// ProcessedEntry is one line of a processed corpus.
type ProcessedEntry struct {
	Line          int
	Word          string
	WordVC        string
	Phonetic      string
	PhoneticVC    string
	Syllabified   string
	SyllabifiedVC string
}

// Read parses an input corpus. Blank lines are skipped; any other line must
// have exactly two fields or a MalformedInputLineError is returned.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry
	err := scanLines(r, inputFields, func(line int, fields []string) {
		entries = append(entries, Entry{Line: line, Word: fields[0], Phonetic: fields[1]})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ReadProcessed parses a processed corpus with six fields per line.
func ReadProcessed(r io.Reader) ([]ProcessedEntry, error) {
	var entries []ProcessedEntry
	err := scanLines(r, processedFields, func(line int, f []string) {
		entries = append(entries, ProcessedEntry{
			Line:          line,
			Word:          f[0],
			WordVC:        f[1],
			Phonetic:      f[2],
			PhoneticVC:    f[3],
			Syllabified:   f[4],
			SyllabifiedVC: f[5],
		})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// scanLines calls fn for every non-blank line with exactly want fields.
func scanLines(r io.Reader, want int, fn func(line int, fields []string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		text := scanner.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != want {
			return &types.MalformedInputLineError{Line: lineNum, Want: want, Fields: len(fields), Text: text}
		}
		fn(lineNum, fields)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading corpus: %w", err)
	}
	return nil
}
