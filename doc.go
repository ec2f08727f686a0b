// Package pairtree turns a line of parent→child letter pairs into a binary
// tree, validates it against a fixed set of structural rules, and prints
// either the canonical nested-bracket form of the tree or the code of the
// most severe violation.
//
// Example:
//
//	(A,B) (A,C) (C,D)  →  (A(B)(C(D)))
//	(A,B) (B,A)        →  E4
//
// Violation codes, most severe first:
//
//	E1 invalid input      malformed token or line (fatal, stops at once)
//	E2 duplicate pair     the same parent→child pair twice
//	E3 too many children  a third distinct child for one parent
//	E4 cycle detected     a second parent, or a child that is an ancestor
//	E5 multiple roots     more than one parentless node
//
// Layout:
//
//	pair/         — line and token grammar, symbol pairs
//	report/       — violation codes, severity ordering, sentinel errors
//	tree/         — tree building, root determination, walk, serialize/parse
//	validate/     — the end-to-end pipeline producing one output line
//	cmd/pairtree/ — stdin/stdout command with an interactive mode
//
//	go install github.com/katalvlaran/pairtree/cmd/pairtree@latest
package pairtree
