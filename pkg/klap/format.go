// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package klap

import (
	"fmt"
	"strings"
)

// ListFormat selects one of the list parsers by name.
type ListFormat string

const (
	// FormatEither accepts comma separated or whitespace separated "key:value" lists.
	FormatEither ListFormat = "either"
	// FormatCSV accepts comma separated "key:value" lists.
	FormatCSV ListFormat = "csv"
	// FormatWSV accepts whitespace separated "key:value" lists.
	FormatWSV ListFormat = "wsv"
	// FormatEnv accepts whitespace separated "key=value" lists.
	FormatEnv ListFormat = "env"
)

// ListFormats lists every supported format, default first.
var ListFormats = []ListFormat{FormatEither, FormatCSV, FormatWSV, FormatEnv}

// ListFormatNames returns the names of ListFormats.
func ListFormatNames() []string {
	names := make([]string, len(ListFormats))
	for i, f := range ListFormats {
		names[i] = string(f)
	}
	return names
}

// ParseListFormat resolves a format name. The empty name selects FormatEither.
func ParseListFormat(name string) (ListFormat, error) {
	if name == "" {
		return FormatEither, nil
	}
	for _, f := range ListFormats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown list format %q, expected one of: %s", name, strings.Join(ListFormatNames(), ", "))
}

// Parse runs the list parser for f on s.
func (f ListFormat) Parse(s string) (Labels, error) {
	switch f {
	case FormatEither, "":
		return ParseLabelsEither(s)
	case FormatCSV:
		return ParseLabelsCSV(s)
	case FormatWSV:
		return ParseLabelsWSV(s)
	case FormatEnv:
		return ParseLabels(s)
	default:
		return nil, fmt.Errorf("unknown list format %q", string(f))
	}
}
