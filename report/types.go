// SPDX-License-Identifier: MIT
// Package: pairtree/report
//
// types.go — violation codes, severity ordering and sentinel errors.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is
//     or CodeOf, never on error strings.
//   • Producers attach context with %w wrapping (see errors.go).

package report

import (
	"errors"
	"strconv"
)

// Code identifies one class of structural violation.
// Lower non-zero values are more severe; the zero value None means no violation.
type Code uint8

const (
	None            Code = iota // None: no violation recorded.
	InvalidInput                // InvalidInput: malformed token or overall input (fatal).
	DuplicatePair               // DuplicatePair: the same parent→child pair registered twice.
	TooManyChildren             // TooManyChildren: a third distinct child for a full node.
	CycleDetected               // CycleDetected: re-parenting or a back-edge to an ancestor.
	MultipleRoots               // MultipleRoots: more than one parentless node after building.
)

// Sentinel errors, one per Code.
var (
	// ErrInvalidInput indicates a malformed pair token or a malformed input line.
	ErrInvalidInput = errors.New("report: invalid input")

	// ErrDuplicatePair indicates a parent→child relationship seen twice.
	ErrDuplicatePair = errors.New("report: duplicate pair")

	// ErrTooManyChildren indicates a third distinct child for a node that already has two.
	ErrTooManyChildren = errors.New("report: too many children")

	// ErrCycleDetected indicates an assignment that would re-parent a node or close a cycle.
	ErrCycleDetected = errors.New("report: cycle detected")

	// ErrMultipleRoots indicates more than one parentless node after all pairs were processed.
	ErrMultipleRoots = errors.New("report: multiple roots")
)

// sentinels maps each non-None Code to its sentinel error.
var sentinels = [...]error{
	InvalidInput:    ErrInvalidInput,
	DuplicatePair:   ErrDuplicatePair,
	TooManyChildren: ErrTooManyChildren,
	CycleDetected:   ErrCycleDetected,
	MultipleRoots:   ErrMultipleRoots,
}

// Valid reports whether c is one of the five violation codes.
func (c Code) Valid() bool {
	return c >= InvalidInput && c <= MultipleRoots
}

// String returns the textual code ("E1".."E5"), or "" for None.
// Unknown values render as "E?<n>" so they never collide with real codes.
func (c Code) String() string {
	if c == None {
		return ""
	}
	if !c.Valid() {
		return "E?" + strconv.Itoa(int(c))
	}

	return "E" + strconv.Itoa(int(c))
}

// MoreSevere reports whether c outranks other.
// Any valid code outranks None; None never outranks anything.
func (c Code) MoreSevere(other Code) bool {
	if !c.Valid() {
		return false
	}
	if !other.Valid() {
		return true
	}

	return c < other
}

// Err returns the sentinel error for c, or nil for None and unknown values.
func (c Code) Err() error {
	if !c.Valid() {
		return nil
	}

	return sentinels[c]
}

// CodeOf recovers the Code carried by err (possibly wrapped).
// Returns None for nil and for errors that wrap no sentinel.
func CodeOf(err error) Code {
	if err == nil {
		return None
	}
	for c := InvalidInput; c <= MultipleRoots; c++ {
		if errors.Is(err, sentinels[c]) {
			return c
		}
	}

	return None
}
