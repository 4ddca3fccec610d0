// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// UnknownSymbolError reports a symbol that has no entry in the selected
// classification table. It is never recovered by guessing a class.
type UnknownSymbolError struct {
	Symbol   string   // Offending symbol
	Alphabet Alphabet // Table that was searched
	Word     string   // Word being classified (empty if unknown)
}

func (e *UnknownSymbolError) Error() string {
	if e.Word == "" {
		return fmt.Sprintf("unknown %s symbol %q", e.Alphabet, e.Symbol)
	}
	return fmt.Sprintf("unknown %s symbol %q in %q", e.Alphabet, e.Symbol, e.Word)
}

// MalformedInputLineError reports a corpus line with the wrong number of
// whitespace-separated fields.
type MalformedInputLineError struct {
	Line   int    // Line number (1-based)
	Want   int    // Expected field count
	Fields int    // Field count found
	Text   string // Raw line
}

func (e *MalformedInputLineError) Error() string {
	return fmt.Sprintf("line %d: expected %d whitespace-separated fields, got %d", e.Line, e.Want, e.Fields)
}

// MalformedTableRowError reports a classification-table row that cannot be
// loaded. Loading stops at the first such row.
type MalformedTableRowError struct {
	File   string // Table name or path
	Line   int    // Line number (1-based)
	Reason string // What went wrong
}

func (e *MalformedTableRowError) Error() string {
	return fmt.Sprintf("%s line %d: %s", e.File, e.Line, e.Reason)
}
