package checking

import (
	"fmt"
	"strings"
)

// An Outcome classifies the result of checking one property.
type Outcome int

const (
	// Pass: no counterexample within the trial budget.
	Pass Outcome = iota
	// Fail: the property returned false for the witness.
	Fail
	// ExecutionError: evaluating the property on the witness panicked,
	// so the property could not be evaluated.
	ExecutionError
)

// A Verdict is the structured outcome of checking one property.
// It is produced once per check and immutable afterwards.
type Verdict struct {
	Outcome Outcome

	// Trials is the number of trials executed. For Fail and
	// ExecutionError it is the 1-based index of the failing trial.
	Trials int

	// Exhausted is true when the enumerable argument space ran out
	// before the trial budget.
	Exhausted bool

	// Witness is the argument tuple that falsified the property.
	// Nil for Pass.
	Witness []any

	// Condition carries the recovered panic value for ExecutionError.
	Condition any
}

// OK reports whether the property held for all executed trials.
func (v Verdict) OK() bool {
	return v.Outcome == Pass
}

// Response returns the result as a boolean plus a description,
// including the witnessing argument tuple on failure.
func (v Verdict) Response() (bool, string) {
	switch v.Outcome {
	case Pass:
		suffix := ""
		if v.Exhausted {
			suffix = " (exhausted)"
		}
		return true, fmt.Sprintf("passed %d tests%s", v.Trials, suffix)
	case Fail:
		return false, fmt.Sprintf("falsifiable after %d tests: (%s)", v.Trials, formatArgs(v.Witness))
	default:
		return false, fmt.Sprintf("exception after %d tests: (%s) raised '%v'", v.Trials, formatArgs(v.Witness), v.Condition)
	}
}

func formatArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%#v", a)
	}
	return strings.Join(parts, ", ")
}
