package checking

import (
	"strconv"

	"enumcheck/typedesc"
)

// A Param is one typed parameter slot of a property.
type Param struct {
	Name string
	Type typedesc.Desc
}

// A Property is a boolean-valued function over typed parameters,
// described explicitly so that the engine never inspects source-level
// type metadata. A Property is read-only once built.
type Property struct {
	// Name identifies the property in verdicts and reports.
	Name string

	// Params are the ordered parameter slots. Their descriptors are
	// resolved through the registry when the property is checked.
	Params []Param

	// Eval evaluates the property on one argument tuple, one value
	// per parameter in order. Values carry the erased representations
	// produced by the registry (for example []any for slices).
	Eval func(args []any) bool
}

// NewProperty builds a property descriptor from a name, parameter
// type descriptors and an evaluation function. Parameters are named
// positionally.
func NewProperty(name string, types []typedesc.Desc, eval func(args []any) bool) Property {
	params := make([]Param, len(types))
	for i, d := range types {
		params[i] = Param{Name: paramName(i), Type: d}
	}
	return Property{Name: name, Params: params, Eval: eval}
}

func paramName(i int) string {
	names := []string{"x", "y", "z"}
	if i < len(names) {
		return names[i]
	}
	return names[0] + strconv.Itoa(i)
}

// Prop1 builds a one-parameter property from a typed function.
// The type parameter must match the runtime representation the
// registry produces for the descriptor.
func Prop1[A any](name string, a typedesc.Desc, f func(A) bool) Property {
	return NewProperty(name, []typedesc.Desc{a}, func(args []any) bool {
		return f(args[0].(A))
	})
}

// Prop2 builds a two-parameter property from a typed function.
func Prop2[A, B any](name string, a, b typedesc.Desc, f func(A, B) bool) Property {
	return NewProperty(name, []typedesc.Desc{a, b}, func(args []any) bool {
		return f(args[0].(A), args[1].(B))
	})
}

// Prop3 builds a three-parameter property from a typed function.
func Prop3[A, B, C any](name string, a, b, c typedesc.Desc, f func(A, B, C) bool) Property {
	return NewProperty(name, []typedesc.Desc{a, b, c}, func(args []any) bool {
		return f(args[0].(A), args[1].(B), args[2].(C))
	})
}

type preconditionUnmatched struct{}

// Precondition aborts the current trial when ok is false.
// The trial counts toward the budget but is neither a pass nor a
// failure. It must only be called from inside a property's Eval.
func Precondition(ok bool) {
	if !ok {
		panic(preconditionUnmatched{})
	}
}
