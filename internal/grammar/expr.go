// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"fmt"
	"strings"
)

// Expr is a parsing expression. Implementations return the offset after the match, the nodes
// produced by named rules inside the match, and whether the expression matched at pos.
type Expr interface {
	match(p *parser, pos int) (int, []*Node, bool)
}

type literal struct {
	text string
	desc string
}

// Lit matches the exact string s.
func Lit(s string) Expr {
	return &literal{text: s, desc: fmt.Sprintf("%q", s)}
}

func (l *literal) match(p *parser, pos int) (int, []*Node, bool) {
	if strings.HasPrefix(p.input[pos:], l.text) {
		return pos + len(l.text), nil, true
	}
	p.expect(pos, l.desc)
	return pos, nil, false
}

type class struct {
	desc string
	fn   func(byte) bool
}

// Class matches a single byte accepted by fn. desc names the class in diagnostics.
func Class(desc string, fn func(byte) bool) Expr {
	return &class{desc: desc, fn: fn}
}

func (c *class) match(p *parser, pos int) (int, []*Node, bool) {
	if pos < len(p.input) && c.fn(p.input[pos]) {
		return pos + 1, nil, true
	}
	p.expect(pos, c.desc)
	return pos, nil, false
}

type eoi struct{}

// EOI matches only at the end of the input.
func EOI() Expr {
	return eoi{}
}

func (eoi) match(p *parser, pos int) (int, []*Node, bool) {
	if pos == len(p.input) {
		return pos, nil, true
	}
	p.expect(pos, "end of input")
	return pos, nil, false
}

type sequence []Expr

// Seq matches each expression in order.
func Seq(exprs ...Expr) Expr {
	return sequence(exprs)
}

func (s sequence) match(p *parser, pos int) (int, []*Node, bool) {
	var nodes []*Node
	cur := pos
	for _, e := range s {
		end, children, ok := e.match(p, cur)
		if !ok {
			return pos, nil, false
		}
		nodes = append(nodes, children...)
		cur = end
	}
	return cur, nodes, true
}

type choice []Expr

// Choice is PEG ordered choice: the first alternative that matches wins and later
// alternatives are never tried.
func Choice(exprs ...Expr) Expr {
	return choice(exprs)
}

func (c choice) match(p *parser, pos int) (int, []*Node, bool) {
	for _, e := range c {
		if end, nodes, ok := e.match(p, pos); ok {
			return end, nodes, true
		}
	}
	return pos, nil, false
}

type repeat struct {
	expr Expr
	min  int
}

// ZeroOrMore greedily matches e as many times as possible.
func ZeroOrMore(e Expr) Expr {
	return &repeat{expr: e}
}

// OneOrMore greedily matches e at least once.
func OneOrMore(e Expr) Expr {
	return &repeat{expr: e, min: 1}
}

func (r *repeat) match(p *parser, pos int) (int, []*Node, bool) {
	var nodes []*Node
	cur := pos
	for n := 0; ; n++ {
		end, children, ok := r.expr.match(p, cur)
		if !ok || end == cur {
			if n < r.min {
				return pos, nil, false
			}
			return cur, nodes, true
		}
		nodes = append(nodes, children...)
		cur = end
	}
}

type optional struct {
	expr Expr
}

// Optional matches e or nothing.
func Optional(e Expr) Expr {
	return &optional{expr: e}
}

func (o *optional) match(p *parser, pos int) (int, []*Node, bool) {
	if end, nodes, ok := o.expr.match(p, pos); ok {
		return end, nodes, true
	}
	return pos, nil, true
}

type length struct {
	expr     Expr
	min, max int
}

// Length matches e and then fails unless the match spans between min and max bytes,
// inclusive. The failure itself is not reported; the enclosing rule is.
func Length(e Expr, min, max int) Expr {
	return &length{expr: e, min: min, max: max}
}

func (l *length) match(p *parser, pos int) (int, []*Node, bool) {
	end, nodes, ok := l.expr.match(p, pos)
	if !ok {
		return pos, nil, false
	}
	if n := end - pos; n < l.min || n > l.max {
		return pos, nil, false
	}
	return end, nodes, true
}
