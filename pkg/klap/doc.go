// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package klap parses and validates Kubernetes label and annotation keys and values.
//
// A key is an optional DNS subdomain prefix followed by "/" and a mandatory name:
//
//	app.kubernetes.io/name
//	tier
//
// Every value type in this package is created by a successful parse and is immutable
// afterwards. Parsing is anchored: the whole input must match, and the first problem aborts
// the call with a *ParseError pointing at the offending position.
//
// Lists of labels can be written comma separated ("a:1,b:2"), whitespace or newline separated
// ("a:1 b:2"), or in either of those styles (ParseLabelsEither), which rejects inputs that mix
// both separators.
package klap
