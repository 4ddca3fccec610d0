// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syllable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-syllab/internal/table"
	"github.com/petar-djukic/go-syllab/pkg/types"
)

func tokenize(t *testing.T, phon string) []types.Symbol {
	t.Helper()
	tbl, err := table.Default()
	require.NoError(t, err)
	syms, err := tbl.Tokenize(phon, types.Phonetic)
	require.NoError(t, err)
	return syms
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		phon  string
		want  string
		count int
	}{
		{"single intervocalic consonant", "abEs", "a-bEs", 2},
		{"no vowels", "pst", "pst", 1},
		{"adjacent vowels", "kao", "ka-o", 2},
		{"three adjacent vowels", "aia", "a-i-a", 3},
		{"single vowel", "a", "a", 1},
		{"leading cluster stays in first syllable", "stRik", "stRik", 1},
		{"trailing cluster stays in last syllable", "katabsk", "ka-tabsk", 2},
		{"dip is last consonant", "paRtiR", "paR-tiR", 2},
		{"dip is first consonant", "apRe", "ap-Re", 2},
		{"three consonants falling then rising", "aRbR°", "aRb-R°", 2},
		{"tie takes last minimum", "ekstRa", "ekst-Ra", 2},
		{"tie at run end folds to one-consonant onset", "akpa", "ak-pa", 2},
		{"nasal vowel symbol", "ɑ̃fɑ̃", "ɑ̃-fɑ̃", 2},
		{"glide after stop", "pwal", "pwal", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syms := tokenize(t, tt.phon)
			syllables := Split(syms)
			assert.Len(t, syllables, tt.count)
			assert.Equal(t, tt.want, Join(syllables, types.SyllableSeparator))
		})
	}
}

func TestSplit_Empty(t *testing.T) {
	assert.Empty(t, Split(nil))
	assert.Empty(t, Boundaries(nil))
	assert.Equal(t, "", Join(nil, types.SyllableSeparator))
}

func TestSplit_ThreeConsonantDipUsesConfiguredRanks(t *testing.T) {
	// Ranks strictly fall to the middle consonant, then rise.
	syms := []types.Symbol{
		{Text: "a", Kind: types.Vowel, Rank: 10},
		{Text: "x", Kind: types.Consonant, Rank: 5},
		{Text: "y", Kind: types.Consonant, Rank: 1},
		{Text: "z", Kind: types.Consonant, Rank: 3},
		{Text: "o", Kind: types.Vowel, Rank: 10},
	}
	assert.Equal(t, []int{3}, Boundaries(syms))

	// Moving the minimum to the first consonant moves the cut with it.
	syms[1].Rank = 0
	assert.Equal(t, []int{2}, Boundaries(syms))
}

func TestSplit_AppendDoesNotClobber(t *testing.T) {
	syms := tokenize(t, "abEs")
	syllables := Split(syms)
	require.Len(t, syllables, 2)

	_ = append(syllables[0], types.Symbol{Text: "z"})
	assert.Equal(t, "bEs", types.Texts(syllables[1]))
}

var propertyWords = []string{
	"abEs", "paRtiR", "apRe", "aRbR°", "maRʃe", "kaRtabl°", "pwal", "tRwa",
	"eʁetik", "pst", "kao", "ɛ̃pɔʁtɑ̃", "ʒɑ̃dam", "ɔtɔmɔbil",
}

func TestSplit_Properties(t *testing.T) {
	for _, phon := range propertyWords {
		t.Run(phon, func(t *testing.T) {
			syms := tokenize(t, phon)
			syllables := Split(syms)

			// Lossless.
			assert.Equal(t, types.Texts(syms), Join(syllables, ""))

			var vowels int
			for _, s := range syms {
				if s.IsVowel() {
					vowels++
				}
			}
			if vowels == 0 {
				assert.Len(t, syllables, 1)
			} else {
				assert.Len(t, syllables, vowels)
			}

			for _, syl := range syllables {
				require.NotEmpty(t, syl)
				assertSonoritySequencing(t, syl)
			}
		})
	}
}

// assertSonoritySequencing checks that sonority does not fall from the
// syllable start to its nucleus and does not rise after it.
func assertSonoritySequencing(t *testing.T, syl []types.Symbol) {
	t.Helper()
	nucleus := -1
	for i, s := range syl {
		if s.IsVowel() {
			nucleus = i
			break
		}
	}
	if nucleus < 0 {
		return
	}
	for i := 1; i <= nucleus; i++ {
		assert.LessOrEqual(t, syl[i-1].Rank, syl[i].Rank, "onset of %q", types.Texts(syl))
	}
	for i := nucleus + 1; i < len(syl); i++ {
		assert.GreaterOrEqual(t, syl[i-1].Rank, syl[i].Rank, "coda of %q", types.Texts(syl))
	}
}
