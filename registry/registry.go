// Package registry maps type descriptors to enumerators.
//
// Atomic types and generic containers resolve through built-in rules;
// user-defined types are registered either as a ready enumerator or as
// a list of constructors whose argument types the registry resolves
// lazily, which is what makes self-referential types work.
package registry

import (
	"sync"

	"enumcheck/tiers"
	"enumcheck/typedesc"
)

// A Constructor describes one way of building a value of a registered
// type from component values.
type Constructor struct {
	// Make builds the value from one argument per entry of Args.
	Make func(args []any) any

	// Args are the descriptors of the constructor's argument types.
	// They are resolved on first tier pull, not at registration time,
	// so they may refer to the type being registered.
	Args []typedesc.Desc

	// Cost is the wrapping cost of the constructor. Zero means the
	// default of 1; use NoCost for a free constructor.
	Cost int
}

// NoCost marks a constructor that adds no cost of its own.
const NoCost = -1

func (c Constructor) cost() int {
	switch {
	case c.Cost == NoCost:
		return 0
	case c.Cost == 0:
		return 1
	default:
		return c.Cost
	}
}

// A Registry resolves type descriptors to enumerators.
//
// Registration is expected to happen in a single-threaded setup phase.
// Resolution is safe for concurrent use afterwards; enumerators handed
// out are immutable and may be consumed from any number of goroutines.
type Registry struct {
	strict bool

	mu      sync.Mutex
	entries map[string]entry
	cache   map[string]tiers.Enumerator[any]
}

type entry struct {
	enum tiers.Enumerator[any]
	cons []Constructor
	spec bool
}

// An Option configures a Registry.
type Option interface {
	registryOption()
}

type strictOption struct{}

func (strictOption) registryOption() {}

// Strict makes re-registration of an already registered type an error
// instead of an overwrite.
func Strict() Option {
	return strictOption{}
}

func New(opts ...Option) *Registry {
	r := &Registry{
		entries: map[string]entry{},
		cache:   map[string]tiers.Enumerator[any]{},
	}
	for _, opt := range opts {
		switch opt.(type) {
		case strictOption:
			r.strict = true
		}
	}
	return r
}

// Register associates d with a ready enumerator.
// Re-registration overwrites unless the registry is strict.
// Tiers already produced are immutable, and a directly registered
// enumerator resolved before the change keeps enumerating its old
// tiers. Container and constructor enumerations look their components
// up again on each fresh cursor, so a new cursor sees the change.
func (r *Registry) Register(d typedesc.Desc, e tiers.Enumerator[any]) error {
	return r.insert(d, entry{enum: e})
}

// RegisterType associates d with a list of constructors.
// The resulting enumeration is the sum of the constructors in the
// given order, each lifted over the product of its argument
// enumerations at its wrapping cost. A type with no constructors is
// empty.
func (r *Registry) RegisterType(d typedesc.Desc, cons ...Constructor) error {
	return r.insert(d, entry{cons: cons, spec: true})
}

func (r *Registry) insert(d typedesc.Desc, e entry) error {
	key := d.Key()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; ok && r.strict {
		return &ConflictError{Desc: d}
	}
	r.entries[key] = e
	delete(r.cache, key)
	return nil
}

// Reset drops all registrations and cached resolutions.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = map[string]entry{}
	r.cache = map[string]tiers.Enumerator[any]{}
}

// Resolve finds or builds the enumerator for d.
//
// Resolution order: an explicit registration for the exact descriptor,
// then the built-in rule for atomic types, then the structural rule
// for generic containers applied to the recursively resolved component
// types. The result is cached per descriptor key.
func (r *Registry) Resolve(d typedesc.Desc) (tiers.Enumerator[any], error) {
	e, err := r.resolve(d)
	if err != nil {
		return tiers.Enumerator[any]{}, err
	}
	if err := r.verify(d, map[string]bool{}); err != nil {
		return tiers.Enumerator[any]{}, err
	}
	return e, nil
}

func (r *Registry) resolve(d typedesc.Desc) (tiers.Enumerator[any], error) {
	key := d.Key()
	r.mu.Lock()
	if e, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return e, nil
	}
	ent, registered := r.entries[key]
	r.mu.Unlock()

	var e tiers.Enumerator[any]
	switch {
	case registered && !ent.spec:
		e = ent.enum
	case registered:
		e = r.lower(ent.cons)
	default:
		var ok bool
		e, ok = r.builtin(d)
		if !ok {
			return tiers.Enumerator[any]{}, &ResolutionError{Desc: d}
		}
	}

	r.mu.Lock()
	r.cache[key] = e
	r.mu.Unlock()
	return e, nil
}

// lower turns a constructor list into a Sum of Cons pipelines whose
// argument enumerations are deferred registry lookups.
func (r *Registry) lower(cons []Constructor) tiers.Enumerator[any] {
	alts := make([]tiers.Enumerator[any], len(cons))
	for i, c := range cons {
		args := make([]tiers.Enumerator[any], len(c.Args))
		for j, ad := range c.Args {
			args[j] = r.deferred(ad)
		}
		alts[i] = tiers.ConsN(c.Make, c.cost(), args...)
	}
	return tiers.Sum(alts...)
}

// deferred is an enumerator whose underlying enumeration is looked up
// on first tier pull. An unresolvable component enumerates nothing
// here; Resolve reports it through verify instead.
func (r *Registry) deferred(d typedesc.Desc) tiers.Enumerator[any] {
	return tiers.Lazy(func() tiers.Enumerator[any] {
		e, err := r.resolve(d)
		if err != nil {
			return tiers.Empty[any]()
		}
		return e
	})
}

// builtin applies the built-in rules for atomic types and generic
// containers. Containers enumerate erased representations: slices and
// set samples as []any, associations as []tiers.Pair[any, any],
// optionals as tiers.Option[any] and tuples as []any.
func (r *Registry) builtin(d typedesc.Desc) (tiers.Enumerator[any], bool) {
	switch d.Kind() {
	case typedesc.KindBool:
		return tiers.Erase(tiers.Booleans()), true
	case typedesc.KindInt:
		return tiers.Erase(tiers.Integers[int]()), true
	case typedesc.KindFloat:
		return tiers.Erase(tiers.Floats()), true
	case typedesc.KindRune:
		return tiers.Erase(tiers.Runes()), true
	case typedesc.KindByte:
		return tiers.Erase(tiers.Bytes()), true
	case typedesc.KindString:
		return tiers.Erase(tiers.Strings()), true
	case typedesc.KindUnit:
		return tiers.Erase(tiers.Unit()), true
	case typedesc.KindSlice:
		return tiers.Erase(tiers.Slices(r.deferred(d.Elems()[0]))), true
	case typedesc.KindSet:
		return tiers.Erase(tiers.SetSamples(r.deferred(d.Elems()[0]))), true
	case typedesc.KindMap:
		keys := r.deferred(d.Elems()[0])
		vals := r.deferred(d.Elems()[1])
		return tiers.Erase(tiers.AssocSamples(keys, vals)), true
	case typedesc.KindOptional:
		return tiers.Erase(tiers.Optionals(r.deferred(d.Elems()[0]))), true
	case typedesc.KindTuple:
		elems := make([]tiers.Enumerator[any], len(d.Elems()))
		for i, ed := range d.Elems() {
			elems[i] = r.deferred(ed)
		}
		return tiers.Erase(tiers.TupleOf(elems...)), true
	}
	return tiers.Enumerator[any]{}, false
}

// verify checks that every component descriptor reachable from d has a
// registration or a built-in rule, without materializing any tiers.
// The visited set terminates the walk on self-referential types.
func (r *Registry) verify(d typedesc.Desc, visited map[string]bool) error {
	key := d.Key()
	if visited[key] {
		return nil
	}
	visited[key] = true

	r.mu.Lock()
	ent, registered := r.entries[key]
	r.mu.Unlock()

	if registered {
		if !ent.spec {
			return nil
		}
		for _, c := range ent.cons {
			for _, ad := range c.Args {
				if err := r.verify(ad, visited); err != nil {
					return &ResolutionError{Desc: d, Cause: err}
				}
			}
		}
		return nil
	}

	switch d.Kind() {
	case typedesc.KindBool, typedesc.KindInt, typedesc.KindFloat,
		typedesc.KindRune, typedesc.KindByte, typedesc.KindString,
		typedesc.KindUnit:
		return nil
	case typedesc.KindSlice, typedesc.KindSet, typedesc.KindMap,
		typedesc.KindOptional, typedesc.KindTuple:
		for _, ed := range d.Elems() {
			if err := r.verify(ed, visited); err != nil {
				return &ResolutionError{Desc: d, Cause: err}
			}
		}
		return nil
	}
	return &ResolutionError{Desc: d}
}
