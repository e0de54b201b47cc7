// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package klap

import "github.com/openchoreo/klap/internal/grammar"

const (
	// MaxDNSLabelLength is the maximum length of one dot-separated label of a key prefix.
	MaxDNSLabelLength = 63
	// MaxKeyPrefixLength is the maximum length of a key prefix, dots included.
	MaxKeyPrefixLength = 255
	// MaxNameLength is the maximum length of a key name and of a non-empty label value.
	MaxNameLength = 63
)

func isAlnum(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

func isNameSeparator(b byte) bool {
	return b == '-' || b == '.' || b == '_'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isAny(byte) bool {
	return true
}

var (
	alnum    = grammar.Class("alphanumeric character", isAlnum)
	hyphen   = grammar.Class(`"-"`, func(b byte) bool { return b == '-' })
	nameSep  = grammar.Class(`"-", "." or "_"`, isNameSeparator)
	space    = grammar.Class("whitespace", isSpace)
	anything = grammar.Class("any character", isAny)

	// Interior runs of separators must be followed by an alphanumeric, so names never end on
	// a separator and PEG greediness never has to give characters back.
	dnsLabel = grammar.Atomic("DNS label", grammar.Length(
		grammar.Seq(alnum, grammar.ZeroOrMore(grammar.Seq(grammar.ZeroOrMore(hyphen), alnum))),
		1, MaxDNSLabelLength))
	qualifiedName = grammar.Seq(alnum, grammar.ZeroOrMore(grammar.Seq(grammar.ZeroOrMore(nameSep), alnum)))

	keyPrefixRule = grammar.Atomic("key prefix", grammar.Length(
		grammar.Seq(dnsLabel, grammar.ZeroOrMore(grammar.Seq(grammar.Lit("."), dnsLabel))),
		1, MaxKeyPrefixLength))
	keyNameRule    = grammar.Atomic("key name", grammar.Length(qualifiedName, 1, MaxNameLength))
	labelValueRule = grammar.Atomic("label value", grammar.Length(qualifiedName, 1, MaxNameLength))

	keyRule = grammar.NewRule("key", grammar.Seq(
		grammar.Optional(grammar.Seq(keyPrefixRule, grammar.Lit("/"))),
		keyNameRule,
	))

	// An explicit separator with nothing after it is kept in the tree as an empty value node.
	valueRule = grammar.NewRule("value", grammar.Optional(labelValueRule))

	labelEqRule    = grammar.NewRule("label", grammar.Seq(keyRule, grammar.Optional(grammar.Seq(grammar.Lit("="), valueRule))))
	labelColonRule = grammar.NewRule("label", grammar.Seq(keyRule, grammar.Optional(grammar.Seq(grammar.Lit(":"), valueRule))))

	whitespace = grammar.Silent("whitespace", grammar.OneOrMore(space))

	labelsEnvRule = grammar.NewRule("labels", grammar.Seq(
		grammar.Optional(whitespace),
		labelEqRule,
		grammar.ZeroOrMore(grammar.Seq(whitespace, labelEqRule)),
		grammar.Optional(whitespace),
	))
	labelsCSVRule = grammar.NewRule("labels", grammar.Seq(
		labelColonRule,
		grammar.ZeroOrMore(grammar.Seq(grammar.Lit(","), labelColonRule)),
	))
	labelsWSVRule = grammar.NewRule("labels", grammar.Seq(
		grammar.Optional(whitespace),
		labelColonRule,
		grammar.ZeroOrMore(grammar.Seq(whitespace, labelColonRule)),
		grammar.Optional(whitespace),
	))
	// Each alternative is anchored on its own, so an input that is only partially comma
	// separated falls through to the whitespace form instead of committing to the first.
	labelsEitherRule = grammar.NewRule("labels", grammar.Choice(
		grammar.Seq(labelsCSVRule, grammar.EOI()),
		grammar.Seq(labelsWSVRule, grammar.EOI()),
	))

	annotationValueRule = grammar.NewRule("annotation value", grammar.ZeroOrMore(anything))
	annotationRule      = grammar.NewRule("annotation", grammar.Seq(keyRule, grammar.Optional(grammar.Seq(grammar.Lit("="), annotationValueRule))))

	// Top-level entry points. grammar.Parse anchors each of them at the end of input.
	keyPrefixWhole  = grammar.NewRule("key prefix", keyPrefixRule)
	keyNameWhole    = grammar.NewRule("key name", keyNameRule)
	labelValueWhole = grammar.NewRule("label value", grammar.Optional(labelValueRule))
)
