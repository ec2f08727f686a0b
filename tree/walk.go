package tree

import (
	"fmt"

	"github.com/katalvlaran/pairtree/pair"
)

// walker carries the state of one Walk.
type walker struct {
	opts WalkOptions
	res  *WalkResult
}

// Walk performs a depth-first walk from root, visiting Left before Right.
// OnVisit runs pre-order, OnExit post-order; a hook error aborts the walk
// and is returned wrapped, together with the partial result.
func Walk(root *Node, opts ...WalkOption) (*WalkResult, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	wopts := DefaultWalkOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	w := &walker{
		opts: wopts,
		res:  &WalkResult{Depth: make(map[pair.Symbol]int)},
	}
	if err := w.visit(root, 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

func (w *walker) visit(n *Node, depth int) error {
	if n == nil {
		return nil
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Depth[n.Value] = depth
	if depth > w.res.Height {
		w.res.Height = depth
	}

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n, depth); err != nil {
			return fmt.Errorf("tree: OnVisit hook for %q: %w", n.Value, err)
		}
	}

	if err := w.visit(n.Left, depth+1); err != nil {
		return err
	}
	if err := w.visit(n.Right, depth+1); err != nil {
		return err
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(n, depth); err != nil {
			return fmt.Errorf("tree: OnExit hook for %q: %w", n.Value, err)
		}
	}
	w.res.Order = append(w.res.Order, n.Value)

	return nil
}
