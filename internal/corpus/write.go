// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/petar-djukic/go-syllab/internal/syllable"
	"github.com/petar-djukic/go-syllab/pkg/types"
)

// Format renders a record as one processed-corpus line without the trailing
// newline:
//
//	letters letters_VC phonetic phonetic_VC syllabified syllabified_VC
//
// Alternative pronunciations are joined with ';' in the last four fields.
func Format(rec *types.WordRecord) string {
	n := len(rec.Pronunciations)
	phon := make([]string, n)
	phonVC := make([]string, n)
	syll := make([]string, n)
	syllVC := make([]string, n)
	for i, p := range rec.Pronunciations {
		phon[i] = types.Texts(p.Phonetic)
		phonVC[i] = p.PhoneticVC
		syll[i] = syllable.Join(p.Syllables, types.SyllableSeparator)
		syllVC[i] = p.SyllablesVC
	}

	return strings.Join([]string{
		rec.Word,
		rec.WordVC,
		strings.Join(phon, types.PronunciationSeparator),
		strings.Join(phonVC, types.PronunciationSeparator),
		strings.Join(syll, types.PronunciationSeparator),
		strings.Join(syllVC, types.PronunciationSeparator),
	}, " ")
}

// Write writes one Format line per record, in order.
func Write(w io.Writer, records []types.WordRecord) error {
	bw := bufio.NewWriter(w)
	for i := range records {
		if _, err := fmt.Fprintln(bw, Format(&records[i])); err != nil {
			return fmt.Errorf("writing corpus: %w", err)
		}
	}
	return bw.Flush()
}
