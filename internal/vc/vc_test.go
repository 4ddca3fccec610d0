// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package vc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petar-djukic/go-syllab/pkg/types"
)

func c(text string) types.Symbol { return types.Symbol{Text: text, Kind: types.Consonant} }
func v(text string) types.Symbol { return types.Symbol{Text: text, Kind: types.Vowel} }
func lit(text string) types.Symbol { return types.Symbol{Text: text, Kind: types.Literal} }

func TestTranscribe(t *testing.T) {
	tests := []struct {
		name    string
		symbols []types.Symbol
		want    string
	}{
		{"empty", nil, ""},
		{"abEs", []types.Symbol{v("a"), c("b"), v("E"), c("s")}, "VCVC"},
		{"consonants only", []types.Symbol{c("p"), c("s"), c("t")}, "CCC"},
		{"literal passes through", []types.Symbol{c("l"), lit("'"), v("a")}, "C'V"},
		{"multi-rune symbol is one unit", []types.Symbol{c("b"), v("ɛ̃")}, "CV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transcribe(tt.symbols)
			assert.Equal(t, tt.want, got)

			// Without literals the output has one rune per symbol and
			// position i is V iff symbol i is a vowel.
			if !strings.ContainsAny(got, "'") {
				assert.Len(t, got, len(tt.symbols))
				for i, s := range tt.symbols {
					assert.Equal(t, s.Kind == types.Vowel, got[i] == 'V')
				}
			}
		})
	}
}

func TestTranscribeSyllables(t *testing.T) {
	tests := []struct {
		name      string
		syllables [][]types.Symbol
		want      string
	}{
		{"none", nil, ""},
		{"single", [][]types.Symbol{{c("p"), c("s"), c("t")}}, "CCC"},
		{"a-bEs", [][]types.Symbol{{v("a")}, {c("b"), v("E"), c("s")}}, "V-CVC"},
		{"adjacent vowels", [][]types.Symbol{{c("k"), v("a")}, {v("o")}, {c("s")}}, "CV-V-C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranscribeSyllables(tt.syllables, types.SyllableSeparator)
			assert.Equal(t, tt.want, got)

			var flat []types.Symbol
			for _, syl := range tt.syllables {
				flat = append(flat, syl...)
			}
			assert.Equal(t, Transcribe(flat), strings.ReplaceAll(got, types.SyllableSeparator, ""))
		})
	}
}
