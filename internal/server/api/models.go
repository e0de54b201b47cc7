// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "github.com/openchoreo/klap/pkg/klap"

// Kinds of input accepted by the parse endpoint.
const (
	KindKey        = "key"
	KindValue      = "value"
	KindLabel      = "label"
	KindLabels     = "labels"
	KindAnnotation = "annotation"
)

// Formats of a single label.
const (
	FormatEq    = "eq"
	FormatColon = "colon"
)

// Error codes.
const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeInvalidInput = "INVALID_INPUT"
)

// ParseRequest is the body of POST /api/v1/parse.
type ParseRequest struct {
	Kind string `json:"kind" validate:"required,oneof=key value label labels annotation"`
	// Format is eq or colon for a label and either, csv, wsv or env for labels. Other kinds
	// take no format.
	Format string `json:"format,omitempty" validate:"omitempty,oneof=eq colon either csv wsv env"`
	Input  string `json:"input"`
}

// Response wraps every JSON reply.
type Response struct {
	Success bool          `json:"success"`
	Data    any           `json:"data,omitempty"`
	Error   string        `json:"error,omitempty"`
	Code    string        `json:"code,omitempty"`
	Details *ErrorDetails `json:"details,omitempty"`
}

// ErrorDetails locates a parse failure in the input.
type ErrorDetails struct {
	Offset   int      `json:"offset"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Expected []string `json:"expected,omitempty"`
}

// KeyResult is the data of a parsed key.
type KeyResult struct {
	Key    string `json:"key"`
	Prefix string `json:"prefix,omitempty"`
	Name   string `json:"name"`
}

// ValueResult is the data of a parsed label value.
type ValueResult struct {
	Value klap.LabelValue `json:"value"`
}

// LabelsResult is the data of a parsed label list. Map applies last-write-wins to duplicates.
type LabelsResult struct {
	Labels klap.Labels   `json:"labels"`
	Map    klap.LabelMap `json:"map"`
}

func newKeyResult(k klap.Key) KeyResult {
	r := KeyResult{Key: k.String(), Name: k.Name().String()}
	if p, ok := k.Prefix(); ok {
		r.Prefix = p.String()
	}
	return r
}
