// Package tree assembles parent→child symbol pairs into a binary tree,
// enforcing the structural rules of the pair format, and renders the
// finished tree in its canonical nested-bracket form.
//
// What:
//
//   - Tree: node registry plus a child→parent side table. Nodes own their
//     children (Left, Right); the parent link is a non-owning lookup in the
//     side table, used only for the ancestor walk and root determination.
//   - Add: ingests one pair and returns the violations it produced as a
//     report.Report. Pairs must be fed in input order: which violation is
//     reported can depend on it.
//   - Build: Add over a whole pair list, then root determination, folding
//     every per-pair Report into one verdict.
//   - Walk: pre-order depth-first walk with pre-/post-order hooks.
//   - Serialize / Parse: canonical text form "(A(B)(C))" and its inverse.
//
// Per-pair rules, in order:
//
//  1. Existing parent: child already Left/Right → DuplicatePair; otherwise
//     both slots taken → TooManyChildren. Processing continues either way.
//  2. Child already has a parent → CycleDetected, pair rejected.
//  3. Child is tentatively linked under the parent.
//  4. Child is an ancestor of the parent → CycleDetected, link rolled back.
//  5. Child fills Left, else fills an empty Right; Left.Value < Right.Value
//     is restored by swapping.
//
// Complexity:
//
//   - Add:       O(h) for the ancestor walk (h = current tree height), else O(1).
//   - Root:      O(V).
//   - Walk:      O(V), recursion depth h.
//   - Serialize: O(V); Parse: O(len(text)).
//
// Errors:
//
//   - ErrNilRoot                 Walk called without a root.
//   - ErrMalformedSerialization  Parse input is not a valid serialization.
//   - hook errors                propagated from OnVisit or OnExit.
package tree
