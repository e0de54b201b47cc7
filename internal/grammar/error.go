// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Position locates a byte offset in the input. Line and Column are 1-based; Column counts
// runes from the start of the line.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Column)
}

// PositionOf computes the position of offset in input.
func PositionOf(input string, offset int) Position {
	offset = min(max(offset, 0), len(input))
	before := input[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Position{
		Offset: offset,
		Line:   line,
		Column: utf8.RuneCountInString(before[lineStart:]) + 1,
	}
}

// Error is a parse failure at a position, with what would have been accepted there.
type Error struct {
	Pos      Position
	Expected []string
	// Found describes the input at Pos: a quoted character or "end of input".
	Found string
}

func newError(input string, offset int, expected []string) *Error {
	found := "end of input"
	if offset < len(input) {
		r, _ := utf8.DecodeRuneInString(input[offset:])
		found = fmt.Sprintf("%q", r)
	}
	return &Error{
		Pos:      PositionOf(input, offset),
		Expected: slices.Clone(expected),
		Found:    found,
	}
}

func (e *Error) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s: unexpected %s", e.Pos, e.Found)
	}
	return fmt.Sprintf("%s: expected %s, got %s", e.Pos, joinAlternatives(e.Expected), e.Found)
}

func joinAlternatives(items []string) string {
	switch len(items) {
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

