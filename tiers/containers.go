package tiers

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Slices enumerates ordered sequences of values from e.
// A sequence costs the sum of its element costs plus one per element,
// so tier k is finite even though both the length and the element
// space are unbounded.
func Slices[V any](e Enumerator[V]) Enumerator[[]V] {
	var mk func() Stream[[]V]
	mk = func() Stream[[]V] {
		return func() (Tier[[]V], Stream[[]V]) {
			rest := productStream(e.Tiers(), mk(), prependElem[V])
			return Tier[[]V]{{}}, rest
		}
	}
	return New(mk)
}

func prependElem[V any](x V, xs []V) []V {
	out := make([]V, 0, len(xs)+1)
	out = append(out, x)
	return append(out, xs...)
}

// An Option is an optional value: either absent or a value of type V.
type Option[V any] struct {
	OK  bool
	Val V
}

func None[V any]() Option[V] {
	return Option[V]{}
}

func Some[V any](v V) Option[V] {
	return Option[V]{OK: true, Val: v}
}

// Optionals enumerates the absent value at cost 0 and Some(x) at
// cost(x)+1.
func Optionals[V any](e Enumerator[V]) Enumerator[Option[V]] {
	return Sum(Cons0(None[V]()), Cons1(e, Some[V]))
}

// SetSamples enumerates collections of distinct values from e,
// represented as slices in ascending enumeration position.
// Distinctness is by position in the enumeration, not by value
// comparison, so no ordering on V is required. A sample costs the sum
// of its element costs plus one per element, like Slices.
func SetSamples[V any](e Enumerator[V]) Enumerator[[]V] {
	return New(func() Stream[[]V] {
		return setsStream(e.Tiers())
	})
}

// Sets enumerates distinct-element collections as set values.
func Sets[V comparable](e Enumerator[V]) Enumerator[mapset.Set[V]] {
	return Map(SetSamples(e), func(xs []V) mapset.Set[V] {
		return mapset.NewThreadUnsafeSet(xs...)
	})
}

// AssocSamples enumerates associations from distinct keys to values,
// represented as key/value pair slices in ascending key position.
// Key distinctness is by enumeration position. An association costs
// the sum of its key and value costs plus one per entry.
func AssocSamples[K, V any](keys Enumerator[K], vals Enumerator[V]) Enumerator[[]Pair[K, V]] {
	return New(func() Stream[[]Pair[K, V]] {
		return assocStream(keys.Tiers(), vals.Tiers)
	})
}

// Maps enumerates associations as map values.
func Maps[K comparable, V any](keys Enumerator[K], vals Enumerator[V]) Enumerator[map[K]V] {
	return Map(AssocSamples(keys, vals), func(kvs []Pair[K, V]) map[K]V {
		out := make(map[K]V, len(kvs))
		for _, kv := range kvs {
			out[kv.Fst] = kv.Snd
		}
		return out
	})
}

// A choice is one element of an enumeration paired with the stream of
// the elements strictly after it, kept at their original costs.
type choice[V any] struct {
	value V
	rest  Stream[V]
}

// choicesStream enumerates every element of s at its own cost,
// each paired with its suffix stream.
func choicesStream[V any](s Stream[V]) Stream[choice[V]] {
	var at func(s Stream[V], cost int) Stream[choice[V]]
	at = func(s Stream[V], cost int) Stream[choice[V]] {
		if s == nil {
			return nil
		}
		return func() (Tier[choice[V]], Stream[choice[V]]) {
			tier, rest := s()
			out := make(Tier[choice[V]], len(tier))
			for p := range tier {
				suffix := rest
				if p+1 < len(tier) {
					suffix = prependTier(tier[p+1:], rest)
				} else if rest != nil {
					suffix = prependTier(nil, rest)
				}
				if suffix != nil {
					// Keep later elements at their original cost.
					suffix = delayStream(cost, suffix)
				}
				out[p] = choice[V]{value: tier[p], rest: suffix}
			}
			return out, at(rest, cost+1)
		}
	}
	return at(s, 0)
}

// setsStream enumerates distinct samples: the empty sample at cost 0,
// then for every choice of a least element, that element consed onto a
// sample of strictly later elements at one extra cost unit.
func setsStream[V any](s Stream[V]) Stream[[]V] {
	rest := flatMapStream(choicesStream(s), func(c choice[V]) Stream[[]V] {
		grown := mapStream(setsStream(c.rest), func(xs []V) []V {
			return prependElem(c.value, xs)
		})
		return delayStream(1, grown)
	})
	return prependTier(Tier[[]V]{{}}, rest)
}

// assocStream is setsStream with a value drawn alongside every key.
func assocStream[K, V any](keys Stream[K], vals func() Stream[V]) Stream[[]Pair[K, V]] {
	rest := flatMapStream(choicesStream(keys), func(c choice[K]) Stream[[]Pair[K, V]] {
		grown := productStream(vals(), assocStream(c.rest, vals), func(v V, kvs []Pair[K, V]) []Pair[K, V] {
			return prependElem(Pair[K, V]{Fst: c.value, Snd: v}, kvs)
		})
		return delayStream(1, grown)
	})
	return prependTier(Tier[[]Pair[K, V]]{{}}, rest)
}

// flatMapStream substitutes a stream for every element of s and sums
// the results aligned by cost: an element of cost i contributes the
// tier k-i of its substituted stream to tier k of the result, ordered
// by i ascending and then by in-tier position.
func flatMapStream[A, B any](s Stream[A], f func(A) Stream[B]) Stream[B] {
	st := flatMapState[A, B]{f: f, src: s}
	return st.stream()
}

type flatMapState[A, B any] struct {
	f       func(A) Stream[B]
	src     Stream[A]
	cursors []Stream[B]
}

func (st flatMapState[A, B]) stream() Stream[B] {
	if st.src == nil {
		live := false
		for _, c := range st.cursors {
			if c != nil {
				live = true
				break
			}
		}
		if !live {
			return nil
		}
	}
	return func() (Tier[B], Stream[B]) {
		next := st
		cursors := make([]Stream[B], len(next.cursors), len(next.cursors)+4)
		copy(cursors, next.cursors)
		if next.src != nil {
			var tier Tier[A]
			tier, next.src = next.src()
			for _, x := range tier {
				cursors = append(cursors, next.f(x))
			}
		}
		var out Tier[B]
		for i, c := range cursors {
			if c == nil {
				continue
			}
			tier, rest := c()
			out = append(out, tier...)
			cursors[i] = rest
		}
		next.cursors = cursors
		return out, next.stream()
	}
}
