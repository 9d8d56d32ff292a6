package tracker

import (
	"errors"

	"github.com/marcus/contrast/internal/color"
)

var errNotEvaluated = errors.New("not evaluated")

// Tracker remembers the last contrast verdict and recomputes it only when
// its inputs change. The zero value is ready to use and reports false.
//
// Invalid colors do not overwrite the verdict: the previous result stays
// in place until a valid pair arrives.
type Tracker struct {
	inputs    color.Query
	hasInputs bool

	verdict   bool
	evaluated bool
	result    color.Result
	err       error
}

// Set records new inputs and returns the current verdict.
func (t *Tracker) Set(q color.Query) bool {
	if t.hasInputs && q == t.inputs {
		return t.verdict
	}
	t.inputs = q
	t.hasInputs = true

	res, err := color.Check(q)
	t.err = err
	if errors.Is(err, color.ErrInvalidColor) {
		return t.verdict
	}

	// Format mismatches still run, and land on "not passing".
	t.evaluated = true
	t.result = res
	t.verdict = err == nil && res.Pass
	return t.verdict
}

// Verdict returns the last computed verdict.
func (t *Tracker) Verdict() bool {
	return t.verdict
}

// Evaluated reports whether any input pair has been evaluated yet.
func (t *Tracker) Evaluated() bool {
	return t.evaluated
}

// Inputs returns the most recent inputs passed to Set.
func (t *Tracker) Inputs() color.Query {
	return t.inputs
}

// Last returns the result behind the current verdict and the error from
// the most recent Set, if any.
func (t *Tracker) Last() (color.Result, error) {
	if !t.hasInputs {
		return color.Result{}, errNotEvaluated
	}
	return t.result, t.err
}
