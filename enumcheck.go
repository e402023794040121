// Package enumcheck is an enumerative property-based testing engine:
// argument values are generated systematically in order of increasing
// structural size and a property is evaluated on each until a
// counterexample is found or a trial budget is reached. Because
// generation is size-ascending, the first counterexample found is a
// smallest one.
package enumcheck

import (
	"enumcheck/checking"
	"enumcheck/registry"
	"enumcheck/runner"
	"enumcheck/tiers"
	"enumcheck/typedesc"
)

// std is the process-wide default registry, used by the package-level
// convenience functions. Callers wanting isolated state build their
// own registry.Registry and checking.Checker instead.
var std = registry.New()

// DefaultRegistry returns the process-wide registry used by Check and
// Holds when no registry option is given.
func DefaultRegistry() *registry.Registry {
	return std
}

// Register associates a type descriptor with a ready enumerator on
// the default registry.
func Register(d typedesc.Desc, e tiers.Enumerator[any]) error {
	return std.Register(d, e)
}

// RegisterType associates a type descriptor with its constructors on
// the default registry.
func RegisterType(d typedesc.Desc, cons ...registry.Constructor) error {
	return std.RegisterType(d, cons...)
}

// Check checks a single property, reports the result on standard
// output and returns whether the property held.
func Check(p checking.Property, opts ...Option) bool {
	cfg := newConfig(opts)
	r := runner.New(cfg.checker(), cfg.runnerOptions(true)...)
	return r.Run(p).OK()
}

// Holds checks a single property silently and returns whether it held
// for the configured number of trials.
func Holds(p checking.Property, opts ...Option) bool {
	cfg := newConfig(opts)
	c := cfg.checker()
	v, err := c.Check(p)
	if err != nil {
		return false
	}
	return v.OK()
}

// Run checks a suite of properties, reports the results and returns
// the summary.
func Run(props []checking.Property, opts ...Option) runner.Summary {
	cfg := newConfig(opts)
	r := runner.New(cfg.checker(), cfg.runnerOptions(false)...)
	return r.Run(props...)
}
