// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import "slices"

type parser struct {
	input string

	// furthest is the deepest offset at which a reported expectation failed; expected holds
	// what was expected there.
	furthest int
	expected []string
	quiet    int
}

type mark struct {
	furthest int
	n        int
}

func (p *parser) mark() mark {
	return mark{furthest: p.furthest, n: len(p.expected)}
}

// expect records that desc was expected at pos.
func (p *parser) expect(pos int, desc string) {
	if p.quiet > 0 {
		return
	}
	switch {
	case pos > p.furthest:
		p.furthest = pos
		p.expected = append(p.expected[:0], desc)
	case pos == p.furthest && !slices.Contains(p.expected, desc):
		p.expected = append(p.expected, desc)
	}
}

// fold records a failed rule at its start offset, replacing whatever its sub-expressions
// recorded at that same offset.
func (p *parser) fold(pos int, name string, m mark) {
	if p.quiet > 0 || pos < p.furthest {
		return
	}
	if pos > p.furthest {
		p.furthest = pos
		p.expected = append(p.expected[:0], name)
		return
	}
	// furthest never decreases, so entries at pos recorded before the rule started are
	// exactly the first m.n when the mark was already at pos.
	if m.furthest == pos {
		p.expected = p.expected[:m.n]
	} else {
		p.expected = p.expected[:0]
	}
	if !slices.Contains(p.expected, name) {
		p.expected = append(p.expected, name)
	}
}

// Parse matches r against the whole of input. The returned node spans the entire input.
// On failure the error is a *Error positioned at the furthest failure.
func Parse(r *Rule, input string) (*Node, error) {
	p := &parser{input: input}
	end, nodes, ok := Seq(r, EOI()).match(p, 0)
	if !ok {
		return nil, newError(input, p.furthest, p.expected)
	}
	if len(nodes) == 1 && nodes[0].Rule == r {
		return nodes[0], nil
	}
	return &Node{Rule: r, Start: 0, End: end, Text: input, Children: nodes}, nil
}
