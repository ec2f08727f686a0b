package tree

import (
	"sort"

	"github.com/katalvlaran/pairtree/pair"
	"github.com/katalvlaran/pairtree/report"
)

// Build ingests pairs in order into a fresh Tree, then determines the root.
// The returned Report folds every per-pair violation and, when more than one
// node is parentless, MultipleRoots. root is nil when no unique root exists
// (including the empty input).
func Build(pairs []pair.Pair) (t *Tree, root *Node, rep report.Report) {
	t = New(len(pairs))
	for _, p := range pairs {
		rep = rep.Merge(t.Add(p))
	}

	root, rootRep := t.Root()
	if rootRep.Worst() != report.None {
		t.violations = append(t.violations, Violation{Index: -1, Code: rootRep.Worst()})
	}

	return t, root, rep.Merge(rootRep)
}

// Add ingests one parent→child pair and returns the violations it caused.
// A rejected pair leaves the tree as it was, except for the parent node,
// which stays registered.
func (t *Tree) Add(p pair.Pair) report.Report {
	index := t.added
	t.added++

	var rep report.Report
	note := func(c report.Code) {
		rep = rep.With(c)
		t.violations = append(t.violations, Violation{Index: index, Pair: p, Code: c})
	}

	// 1) Resolve the parent, checking its existing children first.
	parent, existing := t.nodes[p.Parent]
	if existing {
		switch {
		case hasChild(parent, p.Child):
			note(report.DuplicatePair)
		case parent.Left != nil && parent.Right != nil:
			note(report.TooManyChildren)
		}
	} else {
		parent = &Node{Value: p.Parent}
		t.nodes[p.Parent] = parent
	}

	// 2) A child that already has a parent is never re-parented.
	if _, ok := t.nodes[p.Child]; ok {
		if _, hasParent := t.parents[p.Child]; hasParent {
			note(report.CycleDetected)

			return rep
		}
	}

	// 3) Link tentatively so the ancestor walk sees the new edge.
	child, known := t.nodes[p.Child]
	if !known {
		child = &Node{Value: p.Child}
	}
	prev, hadPrev := t.parents[p.Child]
	t.parents[p.Child] = p.Parent

	// 4) Child already above the parent: the edge would close a cycle.
	if t.isAncestor(p.Child, p.Parent) {
		if hadPrev {
			t.parents[p.Child] = prev
		} else {
			delete(t.parents, p.Child)
		}
		note(report.CycleDetected)

		return rep
	}

	// 5) Attach: Left first, Right only if empty, then keep Left < Right.
	if parent.Left == nil {
		parent.Left = child
	} else if parent.Right == nil {
		parent.Right = child
	}
	if parent.Right != nil && parent.Left.Value > parent.Right.Value {
		parent.Left, parent.Right = parent.Right, parent.Left
	}
	if !known {
		t.nodes[p.Child] = child
	}

	return rep
}

// Root returns the unique parentless node.
// With more than one candidate it returns nil and a MultipleRoots report;
// an empty tree yields nil and an empty report.
func (t *Tree) Root() (*Node, report.Report) {
	var (
		root  *Node
		count int
	)
	for v, n := range t.nodes {
		if _, ok := t.parents[v]; !ok {
			root = n
			count++
		}
	}
	if count > 1 {
		return nil, report.Of(report.MultipleRoots)
	}

	return root, report.Report{}
}

// Roots lists every parentless symbol in ascending order.
func (t *Tree) Roots() []pair.Symbol {
	var out []pair.Symbol
	for v := range t.nodes {
		if _, ok := t.parents[v]; !ok {
			out = append(out, v)
		}
	}
	sortSymbols(out)

	return out
}

// Node returns the registered node for v.
func (t *Tree) Node(v pair.Symbol) (*Node, bool) {
	n, ok := t.nodes[v]

	return n, ok
}

// Parent returns the parent symbol of v, if v has one.
func (t *Tree) Parent(v pair.Symbol) (pair.Symbol, bool) {
	p, ok := t.parents[v]

	return p, ok
}

// Len returns the number of registered nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Symbols returns every registered symbol in ascending order.
func (t *Tree) Symbols() []pair.Symbol {
	out := make([]pair.Symbol, 0, len(t.nodes))
	for v := range t.nodes {
		out = append(out, v)
	}
	sortSymbols(out)

	return out
}

// Violations returns the recorded violations in processing order.
func (t *Tree) Violations() []Violation {
	return append([]Violation(nil), t.violations...)
}

// isAncestor walks upward from start's parent and reports whether target is
// found on the way. The walk is bounded by the tree height: the side table
// is acyclic apart from the tentative edge, which is only reached through target.
func (t *Tree) isAncestor(target, start pair.Symbol) bool {
	cur, ok := t.parents[start]
	for ok {
		if cur == target {
			return true
		}
		cur, ok = t.parents[cur]
	}

	return false
}

func hasChild(n *Node, v pair.Symbol) bool {
	return (n.Left != nil && n.Left.Value == v) || (n.Right != nil && n.Right.Value == v)
}

func sortSymbols(s []pair.Symbol) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
