// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package syllable splits phonetic symbol sequences into syllables using
// the sonority sequencing principle. Every vowel is a nucleus; the
// consonants between two nuclei are divided at the sonority dip.
package syllable

import (
	"strings"

	"github.com/petar-djukic/go-syllab/pkg/types"
)

// Boundaries returns the positions at which a new syllable starts, in
// ascending order. Position 0 is never included. A sequence with fewer than
// two vowels has no boundaries.
func Boundaries(symbols []types.Symbol) []int {
	var nuclei []int
	for i, s := range symbols {
		if s.IsVowel() {
			nuclei = append(nuclei, i)
		}
	}
	if len(nuclei) < 2 {
		return nil
	}

	cuts := make([]int, 0, len(nuclei)-1)
	for k := 1; k < len(nuclei); k++ {
		cuts = append(cuts, boundary(symbols, nuclei[k-1], nuclei[k]))
	}
	return cuts
}

// boundary places the cut between the nuclei at prev and next.
//
// No consonants: the second vowel starts the syllable. One consonant: it is
// the onset of the second syllable. Two or more: the cut goes right after
// the least sonorous consonant, taking the last one on ties, unless that
// consonant is the final one of the run, in which case it alone is the
// onset.
func boundary(symbols []types.Symbol, prev, next int) int {
	switch next - prev - 1 {
	case 0:
		return next
	case 1:
		return prev + 1
	}

	dip := prev + 1
	for i := prev + 2; i < next; i++ {
		if symbols[i].Rank <= symbols[dip].Rank {
			dip = i
		}
	}
	if dip == next-1 {
		return next - 1
	}
	return dip + 1
}

// Split cuts symbols into syllables at Boundaries. Leading consonants belong
// to the first syllable and trailing consonants to the last. An empty input
// yields no syllables; a non-empty input without vowels yields one.
//
// The returned syllables share the input's backing array but have their
// capacity capped, so appending to one never overwrites the next.
func Split(symbols []types.Symbol) [][]types.Symbol {
	if len(symbols) == 0 {
		return nil
	}

	cuts := Boundaries(symbols)
	syllables := make([][]types.Symbol, 0, len(cuts)+1)
	start := 0
	for _, cut := range cuts {
		syllables = append(syllables, symbols[start:cut:cut])
		start = cut
	}
	syllables = append(syllables, symbols[start:len(symbols):len(symbols)])
	return syllables
}

// Join renders syllables as text with sep between consecutive syllables.
func Join(syllables [][]types.Symbol, sep string) string {
	parts := make([]string, len(syllables))
	for i, syl := range syllables {
		parts[i] = types.Texts(syl)
	}
	return strings.Join(parts, sep)
}
