// Package report classifies the structural violations a pair list can
// contain and folds them into a single, severity-ordered verdict.
//
// What:
//
//   - Code: one value per violation class, printed as "E1".."E5".
//   - Report: an immutable accumulator holding the most severe Code seen.
//     Report.With never downgrades; folding a less severe Code is a no-op.
//   - Sentinel errors: one per Code, so that callers can carry a violation
//     as a Go error and recover its Code with CodeOf.
//
// Severity (most → least severe):
//
//	InvalidInput (E1) > DuplicatePair (E2) > TooManyChildren (E3) >
//	CycleDetected (E4) > MultipleRoots (E5)
//
// Propagation:
//
//   - InvalidInput is fatal. It is never folded into a Report; producers
//     return an error wrapping ErrInvalidInput and the pipeline stops.
//   - Every other Code is recoverable: it is folded into a Report and
//     processing continues, so a later, more severe violation still wins.
//
// Complexity:
//
//   - With, Merge, Occurred, CodeOf: O(1).
package report
