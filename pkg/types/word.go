// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

const (
	SyllableSeparator      = "-" // Between syllables in syllabified fields
	PronunciationSeparator = ";" // Between alternative pronunciations
)

// Pronunciation holds one phonetic form of a word and its syllabification.
type Pronunciation struct {
	Phonetic    []Symbol   // Phonetic symbols in order
	PhoneticVC  string     // C/V transcription of Phonetic
	Syllables   [][]Symbol // Phonetic split into non-empty syllables
	SyllablesVC string     // C/V transcription with syllable separators
}

// WordRecord is the processed form of one input line. It is built once and
// never modified afterwards.
type WordRecord struct {
	Word           string          // Orthographic form as read
	Letters        []Symbol        // Classified orthographic symbols
	WordVC         string          // C/V transcription of Letters
	Pronunciations []Pronunciation // One per ';'-separated phonetic form
}

// SyllableCount returns the number of syllables across all pronunciations.
func (w *WordRecord) SyllableCount() int {
	n := 0
	for _, p := range w.Pronunciations {
		n += len(p.Syllables)
	}
	return n
}
