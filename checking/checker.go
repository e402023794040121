// Package checking runs properties against enumerated argument tuples
// and produces verdicts.
package checking

import (
	"enumcheck/registry"
	"enumcheck/tiers"
)

// DefaultMaxTrials is the trial budget used when none is configured.
const DefaultMaxTrials = 360

// A Checker resolves property parameter types through a registry and
// evaluates properties over the enumerated argument tuples.
type Checker struct {
	reg       *registry.Registry
	maxTrials int
}

// An Option configures a Checker.
type Option interface {
	checkerOption()
}

type maxTrialsOption struct {
	n int
}

func (maxTrialsOption) checkerOption() {}

// MaxTrials bounds the number of argument tuples tried per property.
func MaxTrials(n int) Option {
	return maxTrialsOption{n: n}
}

func NewChecker(reg *registry.Registry, opts ...Option) *Checker {
	c := &Checker{
		reg:       reg,
		maxTrials: DefaultMaxTrials,
	}
	for _, opt := range opts {
		switch t := opt.(type) {
		case maxTrialsOption:
			c.maxTrials = t.n
		}
	}
	return c
}

// Check evaluates the property over argument tuples in tier order.
//
// The first tuple for which evaluation returns false stops the check
// with a Fail verdict carrying the 1-based trial index and the
// witness. A panic during evaluation stops the check with an
// ExecutionError verdict carrying the recovered condition. If the
// tuple space is exhausted or the budget is reached, the verdict is
// Pass with the number of trials executed.
//
// A non-nil error means the property's parameter types could not be
// resolved; no trials were executed.
func (c *Checker) Check(p Property) (Verdict, error) {
	args := make([]tiers.Enumerator[any], len(p.Params))
	for i, param := range p.Params {
		e, err := c.reg.Resolve(param.Type)
		if err != nil {
			return Verdict{}, err
		}
		args[i] = e
	}
	return c.run(p, tiers.TupleOf(args...)), nil
}

func (c *Checker) run(p Property, e tiers.Enumerator[[]any]) Verdict {
	trials := 0
	s := e.Tiers()
	// The tier bound guards enumerations whose tail is all empty
	// tiers, which would otherwise never fill the trial budget.
	for pulled := 0; s != nil && pulled < c.maxTrials; pulled++ {
		var tier tiers.Tier[[]any]
		tier, s = s()
		for _, tuple := range tier {
			trials++
			outcome, condition := evaluate(p, tuple)
			switch outcome {
			case trialFalse:
				return Verdict{Outcome: Fail, Trials: trials, Witness: tuple}
			case trialPanic:
				return Verdict{Outcome: ExecutionError, Trials: trials, Witness: tuple, Condition: condition}
			}
			if trials == c.maxTrials {
				return Verdict{Outcome: Pass, Trials: trials}
			}
		}
	}
	return Verdict{Outcome: Pass, Trials: trials, Exhausted: true}
}

type trialOutcome int

const (
	trialTrue trialOutcome = iota
	trialFalse
	trialSkipped
	trialPanic
)

func evaluate(p Property, tuple []any) (outcome trialOutcome, condition any) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(preconditionUnmatched); ok {
				outcome = trialSkipped
				return
			}
			outcome = trialPanic
			condition = r
		}
	}()
	if !p.Eval(tuple) {
		return trialFalse, nil
	}
	return trialTrue, nil
}
