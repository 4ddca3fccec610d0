// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package table

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/petar-djukic/go-syllab/pkg/types"
)

//go:embed data/*.txt
var defaults embed.FS

const (
	defaultLettersFile  = "data/letters_text.txt"
	defaultPhonemesFile = "data/letters_phon.txt"
	defaultScaleFile    = "data/sonority.txt"
)

// Paths names the three table files. An empty path selects the embedded
// French default for that table.
type Paths struct {
	Letters  string // Orthographic letters: <C|V|N> <letters...>
	Phonemes string // Phonetic symbols: <C|V> <macroClass> <symbols...>
	Scale    string // Sonority scale: <macroClass> <rank>
}

// Default returns the embedded French tables.
func Default() (*Table, error) {
	return LoadFiles(Paths{})
}

// LoadFiles reads and validates all three tables. Any malformed row fails
// the whole load.
func LoadFiles(p Paths) (*Table, error) {
	var letters, phonemes map[string]types.Symbol
	var scale Scale

	err := withSource(p.Letters, defaultLettersFile, func(name string, r io.Reader) error {
		var err error
		letters, err = LoadLetters(name, r)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = withSource(p.Phonemes, defaultPhonemesFile, func(name string, r io.Reader) error {
		var err error
		phonemes, err = LoadPhonemes(name, r)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = withSource(p.Scale, defaultScaleFile, func(name string, r io.Reader) error {
		var err error
		scale, err = LoadScale(name, r)
		return err
	})
	if err != nil {
		return nil, err
	}

	return New(letters, phonemes, scale)
}

// LoadLetters parses an orthographic letter table.
func LoadLetters(name string, r io.Reader) (map[string]types.Symbol, error) {
	letters := make(map[string]types.Symbol)
	err := readRows(name, r, func(line int, fields []string) error {
		if len(fields) < 2 {
			return rowError(name, line, "expected <kind> <letters>")
		}
		kind, ok := parseKind(fields[0], true)
		if !ok {
			return rowError(name, line, fmt.Sprintf("unknown kind %q", fields[0]))
		}
		for _, text := range symbolsOf(fields[1:]) {
			if err := define(letters, types.Symbol{Text: text, Kind: kind}, name, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return letters, nil
}

// LoadPhonemes parses a phonetic symbol table. Ranks are left at zero; New
// fills them in from the scale.
func LoadPhonemes(name string, r io.Reader) (map[string]types.Symbol, error) {
	phonemes := make(map[string]types.Symbol)
	err := readRows(name, r, func(line int, fields []string) error {
		if len(fields) < 3 {
			return rowError(name, line, "expected <kind> <macroClass> <symbols>")
		}
		kind, ok := parseKind(fields[0], false)
		if !ok {
			return rowError(name, line, fmt.Sprintf("unknown kind %q", fields[0]))
		}
		class, ok := types.ParseMacroClass(fields[1])
		if !ok {
			return rowError(name, line, fmt.Sprintf("unknown macro-class %q", fields[1]))
		}
		if (kind == types.Vowel) != (class == types.VowelClass) {
			return rowError(name, line, fmt.Sprintf("kind %s does not match macro-class %s", fields[0], class))
		}
		for _, text := range symbolsOf(fields[2:]) {
			if err := define(phonemes, types.Symbol{Text: text, Kind: kind, Class: class}, name, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return phonemes, nil
}

// LoadScale parses a sonority scale. Completeness and ordering are checked
// by Scale.Validate when the table is built.
func LoadScale(name string, r io.Reader) (Scale, error) {
	scale := make(Scale)
	err := readRows(name, r, func(line int, fields []string) error {
		if len(fields) != 2 {
			return rowError(name, line, "expected <macroClass> <rank>")
		}
		class, ok := types.ParseMacroClass(fields[0])
		if !ok {
			return rowError(name, line, fmt.Sprintf("unknown macro-class %q", fields[0]))
		}
		rank, err := strconv.Atoi(fields[1])
		if err != nil {
			return rowError(name, line, fmt.Sprintf("rank %q is not an integer", fields[1]))
		}
		if prev, dup := scale[class]; dup && prev != rank {
			return rowError(name, line, fmt.Sprintf("%s already ranked %d", class, prev))
		}
		scale[class] = rank
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scale, nil
}

// readRows calls fn with the whitespace-separated fields of every
// non-blank, non-comment line.
func readRows(name string, r io.Reader, fn func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineNum, strings.Fields(line)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

// withSource opens path, or the embedded default when path is empty.
func withSource(path, fallback string, fn func(name string, r io.Reader) error) error {
	if path == "" {
		f, err := defaults.Open(fallback)
		if err != nil {
			return err
		}
		defer f.Close()
		return fn(fallback, f)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(path, f)
}

// symbolsOf splits the symbol fields of a row into clusters.
func symbolsOf(fields []string) []string {
	return Clusters(norm.NFC.String(strings.Join(fields, "")))
}

// define adds sym, rejecting a redefinition with different data.
func define(m map[string]types.Symbol, sym types.Symbol, name string, line int) error {
	if prev, ok := m[sym.Text]; ok && prev != sym {
		return rowError(name, line, fmt.Sprintf("symbol %q redefined", sym.Text))
	}
	m[sym.Text] = sym
	return nil
}

func parseKind(s string, allowLiteral bool) (types.Kind, bool) {
	switch strings.ToUpper(s) {
	case "C":
		return types.Consonant, true
	case "V":
		return types.Vowel, true
	case "N":
		return types.Literal, allowLiteral
	default:
		return 0, false
	}
}

func rowError(name string, line int, reason string) error {
	return &types.MalformedTableRowError{File: name, Line: line, Reason: reason}
}
