package tiers

// A Tier holds all values of one cost, in a fixed deterministic order.
// The order within a tier determines which counterexample is reported
// when several candidates share the same cost.
type Tier[V any] []V

// A Stream is a lazy cursor over the tiers of an enumeration.
// The tier at index i holds the values of cost i.
//
// Pulling a stream does not advance it: the pull returns the head tier
// together with a stream for the remaining tiers, so a Stream value can
// be shared and re-pulled freely. A nil Stream has no more tiers.
// Pulling the same Stream value twice yields equal results.
type Stream[V any] func() (Tier[V], Stream[V])

// An Enumerator produces the tiers of test values for one type.
// Each call to Tiers returns an independent cursor and enumerating
// twice yields identical tiers.
type Enumerator[V any] struct {
	tiers func() Stream[V]
}

// New creates an enumerator from a stream constructor.
// The constructor must return an equivalent stream on every call.
func New[V any](tiers func() Stream[V]) Enumerator[V] {
	return Enumerator[V]{tiers: tiers}
}

// Tiers returns a fresh cursor positioned at tier 0.
func (e Enumerator[V]) Tiers() Stream[V] {
	return e.tiers()
}

// Take flattens the enumeration in tier order and
// returns up to n leading values.
func (e Enumerator[V]) Take(n int) []V {
	out := make([]V, 0, n)
	for s := e.Tiers(); s != nil && len(out) < n; {
		var tier Tier[V]
		tier, s = s()
		for _, v := range tier {
			if len(out) == n {
				break
			}
			out = append(out, v)
		}
	}
	return out
}

// TakeTiers returns up to n leading tiers of the enumeration.
func (e Enumerator[V]) TakeTiers(n int) []Tier[V] {
	out := make([]Tier[V], 0, n)
	for s := e.Tiers(); s != nil && len(out) < n; {
		var tier Tier[V]
		tier, s = s()
		out = append(out, tier)
	}
	return out
}

// Lazy defers the construction of the underlying enumerator until a
// tier is actually pulled. This is what breaks the cycle when building
// enumerations of self-referential types: the reference to the type
// being defined is looked up on first pull, not while its own
// enumerator is still under construction.
func Lazy[V any](f func() Enumerator[V]) Enumerator[V] {
	return New(func() Stream[V] {
		return func() (Tier[V], Stream[V]) {
			s := f().Tiers()
			if s == nil {
				return nil, nil
			}
			return s()
		}
	})
}

// Erase converts a typed enumerator into an enumerator of any,
// preserving tier structure and order.
func Erase[V any](e Enumerator[V]) Enumerator[any] {
	return Map(e, func(v V) any { return v })
}

// prependTier returns a stream with head tier t followed by s.
func prependTier[V any](t Tier[V], s Stream[V]) Stream[V] {
	return func() (Tier[V], Stream[V]) {
		return t, s
	}
}

// delayStream shifts every tier of s up by n cost units
// by prefixing n empty tiers. Negative n is treated as zero.
func delayStream[V any](n int, s Stream[V]) Stream[V] {
	if s == nil {
		return nil
	}
	for ; n > 0; n-- {
		s = prependTier(nil, s)
	}
	return s
}
