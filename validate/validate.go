// Package validate runs the whole pair-list pipeline on one input line:
// extraction → tree building → root determination → serialization →
// verdict selection.
//
// Output contract:
//
//   - A fatal InvalidInput anywhere short-circuits the pipeline; Output is "E1".
//   - Otherwise, if any recoverable violation was recorded, Output is the
//     code of the most severe one ("E2".."E5").
//   - Otherwise Output is the serialization of the unique root.
//
// Exactly one of a code or a serialization is produced, never both.
package validate

import (
	"github.com/katalvlaran/pairtree/pair"
	"github.com/katalvlaran/pairtree/report"
	"github.com/katalvlaran/pairtree/tree"
)

// Result is the outcome of one Run.
type Result struct {
	// Output is the single line to print: a code or a serialization.
	Output string

	// Code is the verdict; None when Output is a serialization.
	Code report.Code

	// Err is the fatal error when Code is InvalidInput, nil otherwise.
	Err error

	// Tree is the built registry; nil when extraction failed.
	Tree *tree.Tree

	// Root is the unique root, or nil.
	Root *tree.Node
}

// Violations returns the violations recorded while building, if any.
func (r Result) Violations() []tree.Violation {
	if r.Tree == nil {
		return nil
	}

	return r.Tree.Violations()
}

// Run validates input and returns the full Result.
func Run(input string) Result {
	pairs, err := pair.ExtractAll(input)
	if err != nil {
		code := report.CodeOf(err)

		return Result{Output: code.String(), Code: code, Err: err}
	}

	t, root, rep := tree.Build(pairs)
	res := Result{Tree: t, Root: root, Code: rep.Worst()}
	if code, failed := rep.Occurred(); failed {
		res.Output = code
		return res
	}
	res.Output = tree.Serialize(root)

	return res
}

// Build validates input and returns only the line to print.
func Build(input string) string {
	return Run(input).Output
}
