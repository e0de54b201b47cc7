// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

// Rule is a named parsing expression. It is itself an Expr, so rules compose into larger
// rules.
type Rule struct {
	name   string
	expr   Expr
	silent bool
	atomic bool
}

// NewRule returns a rule that produces a node for its match and is reported by name when it
// fails. Expectations recorded by sub-expressions at the rule's own start offset are replaced
// by the rule name.
func NewRule(name string, e Expr) *Rule {
	return &Rule{name: name, expr: e}
}

// Atomic returns a token-level rule: failures inside it are never reported individually, only
// the rule as a whole.
func Atomic(name string, e Expr) *Rule {
	return &Rule{name: name, expr: e, atomic: true}
}

// Silent returns a rule that produces no node and is never reported. Nodes of named rules
// inside it are passed through to the parent.
func Silent(name string, e Expr) *Rule {
	return &Rule{name: name, expr: e, silent: true}
}

// Name returns the name used in diagnostics.
func (r *Rule) Name() string {
	return r.name
}

func (r *Rule) String() string {
	return r.name
}

func (r *Rule) match(p *parser, pos int) (int, []*Node, bool) {
	m := p.mark()
	if r.atomic {
		p.quiet++
	}
	end, children, ok := r.expr.match(p, pos)
	if r.atomic {
		p.quiet--
	}
	if !ok {
		if !r.silent {
			p.fold(pos, r.name, m)
		}
		return pos, nil, false
	}
	if r.silent {
		return end, children, true
	}
	return end, []*Node{{
		Rule:     r,
		Start:    pos,
		End:      end,
		Text:     p.input[pos:end],
		Children: children,
	}}, true
}
