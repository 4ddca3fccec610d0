// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package vc transcribes classified symbol sequences into C/V strings.
package vc

import (
	"strings"

	"github.com/petar-djukic/go-syllab/pkg/types"
)

// Transcribe returns one output unit per symbol, in order: "C" for
// consonants, "V" for vowels and the literal text for literal symbols.
func Transcribe(symbols []types.Symbol) string {
	var b strings.Builder
	b.Grow(len(symbols))
	for _, s := range symbols {
		b.WriteString(s.VC())
	}
	return b.String()
}

// TranscribeSyllables transcribes each syllable and joins them with sep, so
// the boundary separator keeps its position in the output.
func TranscribeSyllables(syllables [][]types.Symbol, sep string) string {
	parts := make([]string, len(syllables))
	for i, syl := range syllables {
		parts[i] = Transcribe(syl)
	}
	return strings.Join(parts, sep)
}
