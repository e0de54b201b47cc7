// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package klap

import (
	"errors"
	"fmt"

	"github.com/openchoreo/klap/internal/grammar"
)

// ParseError reports input that does not match the grammar. It is the only error kind
// returned by the parse functions; length, character and separator problems differ only in
// position and expectation.
type ParseError struct {
	// What names what was being parsed, e.g. "key" or "labels".
	What  string
	Input string

	// Offset is the byte offset of the failure; Line and Column are 1-based.
	Offset int
	Line   int
	Column int
	// Expected lists what would have been accepted at Offset.
	Expected []string

	err error
}

func newParseError(what, input string, err error) *ParseError {
	pe := &ParseError{What: what, Input: input, err: err}
	var gerr *grammar.Error
	if errors.As(err, &gerr) {
		pe.Offset = gerr.Pos.Offset
		pe.Line = gerr.Pos.Line
		pe.Column = gerr.Pos.Column
		pe.Expected = gerr.Expected
	}
	return pe
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.What, e.Input, e.err)
}

// Unwrap returns the grammar diagnostic.
func (e *ParseError) Unwrap() error {
	return e.err
}
