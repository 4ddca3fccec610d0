// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMacroClass_IsObstruent(t *testing.T) {
	tests := []struct {
		class MacroClass
		want  bool
	}{
		{StopUnvoiced, true},
		{StopVoiced, true},
		{FricativeUnvoiced, true},
		{FricativeVoiced, true},
		{Nasal, false},
		{Liquid, false},
		{SemiVowel, false},
		{VowelClass, false},
		{NoClass, false},
	}
	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.class.IsObstruent())
		})
	}
}

func TestWordRecord_SyllableCount(t *testing.T) {
	syl := func(texts ...string) []Symbol {
		out := make([]Symbol, len(texts))
		for i, s := range texts {
			out[i] = Symbol{Text: s}
		}
		return out
	}

	rec := WordRecord{Word: "poêle", Pronunciations: []Pronunciation{
		{Syllables: [][]Symbol{syl("p", "w", "a", "l")}},
		{Syllables: [][]Symbol{syl("p", "w", "ɛ"), syl("l", "ə")}},
	}}
	assert.Equal(t, 3, rec.SyllableCount())
	assert.Zero(t, (&WordRecord{}).SyllableCount())
}
