package tiers

import "golang.org/x/exp/constraints"

// Alphabet is the canonical rune order used by Runes and Strings.
const Alphabet = "abcdefghijklmnopqrstuvwxyz 0123456789"

// Empty is the enumerator of a type with no values. It has no tiers.
func Empty[V any]() Enumerator[V] {
	return New(func() Stream[V] { return nil })
}

// FromChoices enumerates the given values in a single tier of cost 0.
func FromChoices[V any](choices ...V) Enumerator[V] {
	tier := Tier[V](choices)
	return New(func() Stream[V] {
		return prependTier(tier, nil)
	})
}

// FromValues enumerates the given values one per tier:
// earlier values are considered smaller than later ones.
func FromValues[V any](values ...V) Enumerator[V] {
	return New(func() Stream[V] {
		var from func(i int) Stream[V]
		from = func(i int) Stream[V] {
			if i == len(values) {
				return nil
			}
			return func() (Tier[V], Stream[V]) {
				return Tier[V]{values[i]}, from(i + 1)
			}
		}
		return from(0)
	})
}

// Booleans enumerates false and true in a single tier.
func Booleans() Enumerator[bool] {
	return FromChoices(false, true)
}

// Unit enumerates the single struct{} value.
func Unit() Enumerator[struct{}] {
	return FromChoices(struct{}{})
}

// Integers enumerates signed integers outward from zero:
// tier 0 holds 0 and tier i holds i followed by -i.
func Integers[V constraints.Signed]() Enumerator[V] {
	return New(func() Stream[V] {
		var from func(i V) Stream[V]
		from = func(i V) Stream[V] {
			return func() (Tier[V], Stream[V]) {
				if i == 0 {
					return Tier[V]{0}, from(1)
				}
				return Tier[V]{i, -i}, from(i + 1)
			}
		}
		return from(0)
	})
}

// fusc is EWD 570's function. Consecutive quotients
// fusc(n)/fusc(n+1) walk the Calkin-Wilf sequence, which visits every
// positive rational exactly once, in lowest terms.
func fusc(n uint64) uint64 {
	a, b := uint64(1), uint64(0)
	for n != 0 {
		if n%2 == 0 {
			a += b
		} else {
			b += a
		}
		n /= 2
	}
	return b
}

// Floats enumerates float64 values outward from zero:
// tier 0 holds 0 and tier k holds the k-th positive rational of the
// Calkin-Wilf sequence followed by its negation.
func Floats() Enumerator[float64] {
	return New(func() Stream[float64] {
		var from func(n uint64) Stream[float64]
		from = func(n uint64) Stream[float64] {
			return func() (Tier[float64], Stream[float64]) {
				q := float64(fusc(n)) / float64(fusc(n + 1))
				return Tier[float64]{q, -q}, from(n + 1)
			}
		}
		return prependTier(Tier[float64]{0}, from(1))
	})
}

// PositiveFloats enumerates the positive rationals alone, one per
// tier in Calkin-Wilf order. Registering it (or a zero-prefixed
// variant) over Float restricts numeric enumeration the way Naturals
// does for Int.
func PositiveFloats() Enumerator[float64] {
	return New(func() Stream[float64] {
		var from func(n uint64) Stream[float64]
		from = func(n uint64) Stream[float64] {
			return func() (Tier[float64], Stream[float64]) {
				return Tier[float64]{float64(fusc(n)) / float64(fusc(n + 1))}, from(n + 1)
			}
		}
		return from(1)
	})
}

// Naturals enumerates non-negative integers, one per tier.
func Naturals[V constraints.Integer]() Enumerator[V] {
	return New(func() Stream[V] {
		var from func(i V) Stream[V]
		from = func(i V) Stream[V] {
			return func() (Tier[V], Stream[V]) {
				return Tier[V]{i}, from(i + 1)
			}
		}
		return from(0)
	})
}

// Runes enumerates the canonical alphabet, one rune per tier.
func Runes() Enumerator[rune] {
	return FromValues([]rune(Alphabet)...)
}

// Bytes enumerates all byte values in a single tier of cost 0.
func Bytes() Enumerator[byte] {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	return FromChoices(all...)
}

// Strings enumerates strings over the canonical alphabet,
// in the cost order of the underlying rune slices.
func Strings() Enumerator[string] {
	return Map(Slices(Runes()), func(rs []rune) string {
		return string(rs)
	})
}
