package report

import "fmt"

// Report accumulates the single most severe recoverable violation.
// The zero value is an empty report. Report is a value type: With and
// Merge return a new Report and never mutate the receiver.
type Report struct {
	worst Code
}

// Of returns a Report holding code c (or an empty one for None).
func Of(c Code) Report {
	return Report{}.With(c)
}

// With folds c into r and returns the result.
// A code that does not outrank the current one leaves r unchanged.
func (r Report) With(c Code) Report {
	if c.MoreSevere(r.worst) {
		r.worst = c
	}

	return r
}

// Merge folds other into r and returns the result.
func (r Report) Merge(other Report) Report {
	return r.With(other.worst)
}

// Worst returns the most severe Code recorded so far (None if empty).
func (r Report) Worst() Code {
	return r.worst
}

// Occurred reports whether any violation was recorded and, if so, its textual code.
func (r Report) Occurred() (string, bool) {
	if r.worst == None {
		return "", false
	}

	return r.worst.String(), true
}

// Err returns the sentinel error for the worst recorded violation, or nil.
func (r Report) Err() error {
	return r.worst.Err()
}

// String renders the worst code, or "ok" when nothing was recorded.
func (r Report) String() string {
	if s, ok := r.Occurred(); ok {
		return s
	}

	return "ok"
}

// Invalidf returns an error wrapping ErrInvalidInput with a formatted reason.
// It is the only way the fatal class is produced.
//
// Example: Invalidf("token %d %q: shape mismatch", i, tok)
// → "report: invalid input: token 0 \"(A,1)\": shape mismatch".
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
