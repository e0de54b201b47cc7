// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package output prints command results as text, YAML or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Printer writes results in one format.
type Printer struct {
	w      io.Writer
	format string
}

// NewPrinter returns a printer for format, which is "text", "yaml" or "json".
func NewPrinter(w io.Writer, format string) *Printer {
	return &Printer{w: w, format: format}
}

// Print writes data as YAML or JSON, or calls text for the text format.
func (p *Printer) Print(data any, text func(w io.Writer) error) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return text(p.w)
	default:
		return fmt.Errorf("unsupported output format %q", p.format)
	}
}

// Lines returns a text function printing one line per item.
func Lines[T fmt.Stringer](items []T) func(io.Writer) error {
	return func(w io.Writer) error {
		for _, item := range items {
			if _, err := fmt.Fprintln(w, item.String()); err != nil {
				return err
			}
		}
		return nil
	}
}
