package tree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pairtree/pair"
	"github.com/katalvlaran/pairtree/report"
)

var (
	// ErrNilRoot is returned when Walk is called with a nil root.
	ErrNilRoot = errors.New("tree: root is nil")

	// ErrMalformedSerialization indicates Parse input that no tree serializes to.
	ErrMalformedSerialization = errors.New("tree: malformed serialization")
)

// Node is one tree vertex. A node exclusively owns its children.
// When both children are present, Left.Value < Right.Value.
type Node struct {
	Value pair.Symbol
	Left  *Node
	Right *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is the node registry built from a pair list.
//
// nodes holds every symbol seen as a parent or as an accepted child.
// parents maps child → parent and is the only record of upward links.
type Tree struct {
	nodes      map[pair.Symbol]*Node
	parents    map[pair.Symbol]pair.Symbol
	violations []Violation
	added      int
}

// New returns an empty Tree. sizeHint pre-sizes the registry, typically
// to the number of pairs about to be added.
func New(sizeHint int) *Tree {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Tree{
		nodes:   make(map[pair.Symbol]*Node, sizeHint),
		parents: make(map[pair.Symbol]pair.Symbol, sizeHint),
	}
}

// Violation records one rule broken while building.
// Index is the zero-based position of the offending pair, or -1 for
// violations of the finished tree (MultipleRoots).
type Violation struct {
	Index int
	Pair  pair.Pair
	Code  report.Code
}

// String renders v for diagnostics, e.g. `pair 2 (A,D): E3 report: too many children`.
func (v Violation) String() string {
	if v.Index < 0 {
		return fmt.Sprintf("tree: %s %v", v.Code, v.Code.Err())
	}

	return fmt.Sprintf("pair %d %s: %s %v", v.Index, v.Pair, v.Code, v.Code.Err())
}

// WalkOption configures Walk.
type WalkOption func(*WalkOptions)

// WalkOptions holds the hooks and limits of a Walk.
type WalkOptions struct {
	// OnVisit, if non-nil, runs when a node is entered (pre-order).
	// Returning an error aborts the walk.
	OnVisit func(n *Node, depth int) error

	// OnExit, if non-nil, runs after both subtrees are done (post-order).
	// Returning an error aborts the walk.
	OnExit func(n *Node, depth int) error

	// MaxDepth, if non-negative, stops descent below that depth.
	// Depth 0 is the root alone. Default is -1 (no limit).
	MaxDepth int
}

// DefaultWalkOptions returns options with no hooks and no depth limit.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{MaxDepth: -1}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(n *Node, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(n *Node, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits the walk to nodes at depth <= limit.
func WithMaxDepth(limit int) WalkOption {
	return func(o *WalkOptions) {
		o.MaxDepth = limit
	}
}

// WalkResult captures what a Walk saw.
type WalkResult struct {
	// Order lists symbols in the order they finished (post-order).
	Order []pair.Symbol

	// Depth maps each visited symbol to its distance from the root.
	Depth map[pair.Symbol]int

	// Height is the largest depth reached; 0 for a lone root.
	Height int
}
