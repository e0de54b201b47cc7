// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package grammar is a small parsing-expression-grammar engine.
//
// Grammars are built from terminals (Lit, Class, EOI) and combinators (Seq, Choice,
// ZeroOrMore, OneOrMore, Optional, Length). Named rules produce nodes in the parse tree and
// are reported in diagnostics. Parse anchors the top-level rule at the end of the input, so a
// match that leaves trailing characters is a failure.
//
// Diagnostics follow the furthest-failure convention: the error points at the deepest offset
// where any alternative failed, listing what each alternative expected there.
package grammar
