// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

// Node is a match of a named rule. Text is exactly the consumed input input[Start:End].
type Node struct {
	Rule     *Rule
	Start    int
	End      int
	Text     string
	Children []*Node
}

// Is reports whether n was produced by r.
func (n *Node) Is(r *Rule) bool {
	return n != nil && n.Rule == r
}

// Child returns the first direct child produced by r, or nil.
func (n *Node) Child(r *Rule) *Node {
	for _, c := range n.Children {
		if c.Rule == r {
			return c
		}
	}
	return nil
}

// Find returns every node produced by r in n's subtree, in input order. The search does not
// descend into matching nodes.
func (n *Node) Find(r *Rule) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			if c.Rule == r {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return out
}
