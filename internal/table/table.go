// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package table holds the classification tables that map orthographic
// letters and phonetic symbols to their kind, macro-class and sonority rank.
// A Table is read-only once built and may be shared between goroutines.
package table

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/petar-djukic/go-syllab/pkg/types"
)

// Table is the pair of classification mappings plus the sonority scale used
// to rank phonetic symbols.
type Table struct {
	letters  map[string]types.Symbol
	phonemes map[string]types.Symbol
	scale    Scale
}

// New builds a Table from parsed letter and phoneme entries. Phoneme ranks
// are taken from the scale, which must pass Validate.
func New(letters, phonemes map[string]types.Symbol, scale Scale) (*Table, error) {
	if err := scale.Validate(); err != nil {
		return nil, err
	}

	t := &Table{
		letters:  make(map[string]types.Symbol, len(letters)),
		phonemes: make(map[string]types.Symbol, len(phonemes)),
		scale:    scale.clone(),
	}
	for text, sym := range letters {
		t.letters[text] = sym
	}
	for text, sym := range phonemes {
		if sym.Kind == types.Literal {
			return nil, fmt.Errorf("phonetic symbol %q cannot be a literal", text)
		}
		sym.Rank = t.scale.Rank(sym.Class)
		t.phonemes[text] = sym
	}
	return t, nil
}

// Lookup returns the classified symbol for text in the selected alphabet.
// Orthographic lookups are case-insensitive.
func (t *Table) Lookup(text string, alphabet types.Alphabet) (types.Symbol, error) {
	text = norm.NFC.String(text)
	if alphabet == types.Orthographic {
		text = lower(text)
	}
	sym, ok := t.mapping(alphabet)[text]
	if !ok {
		return types.Symbol{}, &types.UnknownSymbolError{Symbol: text, Alphabet: alphabet}
	}
	return sym, nil
}

// Tokenize splits s into symbols and classifies each one. The first symbol
// missing from the table stops tokenization with an UnknownSymbolError.
func (t *Table) Tokenize(s string, alphabet types.Alphabet) ([]types.Symbol, error) {
	s = norm.NFC.String(s)
	if alphabet == types.Orthographic {
		s = lower(s)
	}

	m := t.mapping(alphabet)
	clusters := Clusters(s)
	out := make([]types.Symbol, 0, len(clusters))
	for _, c := range clusters {
		sym, ok := m[c]
		if !ok {
			return nil, &types.UnknownSymbolError{Symbol: c, Alphabet: alphabet, Word: s}
		}
		out = append(out, sym)
	}
	return out, nil
}

// Scale returns a copy of the table's sonority scale.
func (t *Table) Scale() Scale {
	return t.scale.clone()
}

// Len returns the number of symbols defined for the alphabet.
func (t *Table) Len(alphabet types.Alphabet) int {
	return len(t.mapping(alphabet))
}

// Symbols returns every symbol of the alphabet ordered by sonority rank,
// then by text.
func (t *Table) Symbols(alphabet types.Alphabet) []types.Symbol {
	m := t.mapping(alphabet)
	result := make([]types.Symbol, 0, len(m))
	for _, sym := range m {
		result = append(result, sym)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Kind != result[j].Kind {
			return result[i].Kind < result[j].Kind
		}
		if result[i].Rank != result[j].Rank {
			return result[i].Rank < result[j].Rank
		}
		return result[i].Text < result[j].Text
	})
	return result
}

func (t *Table) mapping(alphabet types.Alphabet) map[string]types.Symbol {
	if alphabet == types.Phonetic {
		return t.phonemes
	}
	return t.letters
}

// Clusters splits an NFC string into symbols: one base rune followed by any
// combining marks, so "ɛ̃" is a single symbol.
func Clusters(s string) []string {
	var out []string
	var cur strings.Builder
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) && cur.Len() > 0 {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// lower folds case with French rules. A Caser keeps state, so one is made
// per call.
func lower(s string) string {
	return cases.Lower(language.French).String(s)
}
