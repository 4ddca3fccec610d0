// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package stats

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-syllab/internal/syllable"
	"github.com/petar-djukic/go-syllab/internal/table"
	"github.com/petar-djukic/go-syllab/pkg/types"
)

// buildRecords syllabifies each phonetic form with the default tables.
func buildRecords(t *testing.T, phons ...string) []types.WordRecord {
	t.Helper()
	tbl, err := table.Default()
	require.NoError(t, err)

	records := make([]types.WordRecord, len(phons))
	for i, phon := range phons {
		syms, err := tbl.Tokenize(phon, types.Phonetic)
		require.NoError(t, err)
		records[i] = types.WordRecord{
			Word: phon,
			Pronunciations: []types.Pronunciation{{
				Phonetic:  syms,
				Syllables: syllable.Split(syms),
			}},
		}
	}
	return records
}

func TestTally_TopOrdersByCountThenFirstSeen(t *testing.T) {
	tally := NewTally()
	for _, k := range []string{"b", "a", "c", "a", "b", "d", "c", "e"} {
		tally.Add(k)
	}

	top := tally.Top(0)
	assert.Equal(t, []types.ShapeCount{
		{Shape: "b", Count: 2},
		{Shape: "a", Count: 2},
		{Shape: "c", Count: 2},
		{Shape: "d", Count: 1},
		{Shape: "e", Count: 1},
	}, top)
	assert.Equal(t, 8, tally.Total())
	assert.Equal(t, 5, tally.Distinct())
	assert.Len(t, tally.Top(2), 2)
	assert.Equal(t, 0, tally.Count("z"))
}

func TestTally_MergeMatchesSequentialPass(t *testing.T) {
	keys := []string{"x", "y", "x", "z", "w", "y", "v", "z", "x"}

	whole := NewTally()
	for _, k := range keys {
		whole.Add(k)
	}

	left, right := NewTally(), NewTally()
	for _, k := range keys[:4] {
		left.Add(k)
	}
	for _, k := range keys[4:] {
		right.Add(k)
	}
	merged := NewTally()
	merged.Merge(left)
	merged.Merge(right)

	assert.Equal(t, whole.Top(0), merged.Top(0))
	assert.Equal(t, whole.Total(), merged.Total())
}

func TestAnalyze_RepeatedShapeRanksFirst(t *testing.T) {
	records := buildRecords(t,
		"ba", "pa", "ti", "ba", "fa", "si", "ma", "ba", "ni", "la",
		"Ri", "ba", "ja", "wi", "va", "zi", "a", "ba", "o", "al",
	)
	require.Len(t, records, 20)

	result, err := (&Analyzer{}).Analyze(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 20, result.Words)

	want := map[types.ShapeKind]string{
		types.ShapeCV:    "CV",
		types.ShapeClass: "BV",
		types.ShapePhon:  "ba",
	}
	for kind, shape := range want {
		ranking := result.Ranking(kind)
		require.NotNil(t, ranking, kind.String())
		assert.Equal(t, shape, ranking.Top[0].Shape, kind.String())
		assert.Equal(t, 20, ranking.Total)
	}
	assert.Equal(t, 5, result.Ranking(types.ShapePhon).Top[0].Count)
	assert.Equal(t, 5, result.Ranking(types.ShapeClass).Top[0].Count)
	assert.Equal(t, 17, result.Ranking(types.ShapeCV).Top[0].Count)
}

func TestAnalyze_TopBoundAndOrdering(t *testing.T) {
	consonants := []string{"p", "t", "k", "b", "d", "g", "f", "s", "v", "z", "m", "n", "l", "R", "j", "w"}
	var phons []string
	for i, c := range consonants {
		// Repeat counts cycle through 1..4, so the ranking must reorder.
		for n := 0; n <= i%4; n++ {
			phons = append(phons, c+"a")
		}
		phons = append(phons, c+"i")
	}
	records := buildRecords(t, phons...)

	result, err := (&Analyzer{}).Analyze(context.Background(), records)
	require.NoError(t, err)

	for _, ranking := range result.Rankings {
		assert.LessOrEqual(t, len(ranking.Top), 15, ranking.Kind.String())
		for i := 1; i < len(ranking.Top); i++ {
			assert.GreaterOrEqual(t, ranking.Top[i-1].Count, ranking.Top[i].Count)
		}
	}

	phon := result.Ranking(types.ShapePhon)
	assert.Equal(t, 32, phon.Distinct)
	assert.Len(t, phon.Top, 15)
	// "ba", "sa", "na" and "wa" all occur four times; "ba" is seen first.
	assert.Equal(t, types.ShapeCount{Shape: "ba", Count: 4}, phon.Top[0])
	assert.Equal(t, types.ShapeCount{Shape: "sa", Count: 4}, phon.Top[1])
}

func TestAnalyze_SmallVocabulary(t *testing.T) {
	records := buildRecords(t, "abEs", "abEs")

	result, err := (&Analyzer{TopN: 15}).Analyze(context.Background(), records)
	require.NoError(t, err)

	phon := result.Ranking(types.ShapePhon)
	assert.Equal(t, []types.ShapeCount{{Shape: "a", Count: 2}, {Shape: "bEs", Count: 2}}, phon.Top)
	assert.Equal(t, []types.ShapeCount{{Shape: "V", Count: 2}, {Shape: "CVC", Count: 2}}, result.Ranking(types.ShapeCV).Top)
	assert.Equal(t, []types.ShapeCount{{Shape: "V", Count: 2}, {Shape: "BVF", Count: 2}}, result.Ranking(types.ShapeClass).Top)
}

func TestAnalyze_Empty(t *testing.T) {
	result, err := (&Analyzer{}).Analyze(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Rankings, 3)
	for _, r := range result.Rankings {
		assert.Empty(t, r.Top)
		assert.Zero(t, r.Total)
	}
}

func TestAnalyze_ParallelMatchesSequential(t *testing.T) {
	var phons []string
	for i := 0; i < 3000; i++ {
		phons = append(phons, []string{"abEs", "paRtiR", "ekstRa", "tRwa", "kao"}[i%5])
		if i%97 == 0 {
			phons = append(phons, fmt.Sprintf("%sa", []string{"m", "n", "l"}[i%3]))
		}
	}
	records := buildRecords(t, phons...)

	seq, err := (&Analyzer{Workers: 1}).Analyze(context.Background(), records)
	require.NoError(t, err)
	par, err := (&Analyzer{Workers: 4}).Analyze(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestAnalyze_Canceled(t *testing.T) {
	records := buildRecords(t, "abEs")
	many := make([]types.WordRecord, 0, 4096)
	for i := 0; i < 4096; i++ {
		many = append(many, records[0])
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Analyzer{Workers: 4}).Analyze(ctx, many)
	assert.ErrorIs(t, err, context.Canceled)
}
