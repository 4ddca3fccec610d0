// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pipeline turns corpus lines into WordRecords: classification,
// C/V transcription and syllabification of every word, with a worker pool
// for whole corpora.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/petar-djukic/go-syllab/internal/corpus"
	"github.com/petar-djukic/go-syllab/internal/syllable"
	"github.com/petar-djukic/go-syllab/internal/table"
	"github.com/petar-djukic/go-syllab/internal/vc"
	"github.com/petar-djukic/go-syllab/pkg/types"
)

var (
	// ErrEmptyPronunciation is returned for a phonetic field with an empty
	// ';'-separated alternative.
	ErrEmptyPronunciation = errors.New("empty pronunciation")

	// ErrEmptySyllable is returned when a processed line has an empty
	// syllable between separators.
	ErrEmptySyllable = errors.New("empty syllable")

	// ErrInconsistentRecord is returned when a processed line's syllabified
	// field does not spell its phonetic field, or its C/V field does not
	// match the syllabified field under the active table.
	ErrInconsistentRecord = errors.New("inconsistent processed record")
)

// Processor builds WordRecords from words. It holds only the read-only
// table, so one Processor may be used from many goroutines.
type Processor struct {
	table *table.Table
}

// NewProcessor creates a Processor backed by tbl.
func NewProcessor(tbl *table.Table) *Processor {
	return &Processor{table: tbl}
}

// Process classifies and syllabifies one word. Each ';'-separated
// alternative of phonetic becomes one Pronunciation.
func (p *Processor) Process(word, phonetic string) (*types.WordRecord, error) {
	rec, err := p.word(word)
	if err != nil {
		return nil, err
	}

	for _, alt := range strings.Split(phonetic, types.PronunciationSeparator) {
		if alt == "" {
			return nil, fmt.Errorf("%w in %q", ErrEmptyPronunciation, phonetic)
		}
		syms, err := p.table.Tokenize(alt, types.Phonetic)
		if err != nil {
			return nil, err
		}
		syllables := syllable.Split(syms)
		rec.Pronunciations = append(rec.Pronunciations, types.Pronunciation{
			Phonetic:    syms,
			PhoneticVC:  vc.Transcribe(syms),
			Syllables:   syllables,
			SyllablesVC: vc.TranscribeSyllables(syllables, types.SyllableSeparator),
		})
	}
	return rec, nil
}

// FromProcessed rebuilds a WordRecord from a processed-corpus line, keeping
// the syllable boundaries it was written with. The syllabified field must
// spell the phonetic field and match its own C/V field.
func (p *Processor) FromProcessed(e corpus.ProcessedEntry) (*types.WordRecord, error) {
	rec, err := p.word(e.Word)
	if err != nil {
		return nil, err
	}

	for _, alt := range strings.Split(e.Syllabified, types.PronunciationSeparator) {
		if alt == "" {
			return nil, fmt.Errorf("%w in %q", ErrEmptyPronunciation, e.Syllabified)
		}

		var phon []types.Symbol
		var syllables [][]types.Symbol
		for _, part := range strings.Split(alt, types.SyllableSeparator) {
			if part == "" {
				return nil, fmt.Errorf("%w in %q", ErrEmptySyllable, alt)
			}
			syms, err := p.table.Tokenize(part, types.Phonetic)
			if err != nil {
				return nil, err
			}
			syllables = append(syllables, syms)
			phon = append(phon, syms...)
		}

		rec.Pronunciations = append(rec.Pronunciations, types.Pronunciation{
			Phonetic:    phon,
			PhoneticVC:  vc.Transcribe(phon),
			Syllables:   syllables,
			SyllablesVC: vc.TranscribeSyllables(syllables, types.SyllableSeparator),
		})
	}

	var phon, vcs []string
	for _, pr := range rec.Pronunciations {
		phon = append(phon, types.Texts(pr.Phonetic))
		vcs = append(vcs, pr.SyllablesVC)
	}
	if joined := strings.Join(phon, types.PronunciationSeparator); joined != norm.NFC.String(e.Phonetic) {
		return nil, fmt.Errorf("%w: %s does not spell %s", ErrInconsistentRecord, e.Syllabified, e.Phonetic)
	}
	if joined := strings.Join(vcs, types.PronunciationSeparator); joined != e.SyllabifiedVC {
		return nil, fmt.Errorf("%w: %s is %s, file says %s", ErrInconsistentRecord, e.Syllabified, joined, e.SyllabifiedVC)
	}
	return rec, nil
}

// word classifies the orthographic form.
func (p *Processor) word(word string) (*types.WordRecord, error) {
	letters, err := p.table.Tokenize(word, types.Orthographic)
	if err != nil {
		return nil, err
	}
	return &types.WordRecord{
		Word:    word,
		Letters: letters,
		WordVC:  vc.Transcribe(letters),
	}, nil
}
