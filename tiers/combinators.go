package tiers

// A Pair is the element type produced by Product.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Map applies f to every enumerated value, preserving tier structure.
func Map[A, B any](e Enumerator[A], f func(A) B) Enumerator[B] {
	return New(func() Stream[B] {
		return mapStream(e.Tiers(), f)
	})
}

func mapStream[A, B any](s Stream[A], f func(A) B) Stream[B] {
	if s == nil {
		return nil
	}
	return func() (Tier[B], Stream[B]) {
		tier, rest := s()
		out := make(Tier[B], len(tier))
		for i, v := range tier {
			out[i] = f(v)
		}
		return out, mapStream(rest, f)
	}
}

// Delay shifts every tier of e up by n cost units.
// A negative n is normalized to zero.
// This is how constructor wrapping cost is expressed:
// Delay(Map(e, f), 1) enumerates f(x) at cost(x)+1.
func Delay[V any](e Enumerator[V], n int) Enumerator[V] {
	return New(func() Stream[V] {
		return delayStream(n, e.Tiers())
	})
}

// Filter keeps only values matching keep.
// Tier indices are preserved, so filtered tiers may be empty.
func Filter[V any](e Enumerator[V], keep func(V) bool) Enumerator[V] {
	return New(func() Stream[V] {
		var walk func(s Stream[V]) Stream[V]
		walk = func(s Stream[V]) Stream[V] {
			if s == nil {
				return nil
			}
			return func() (Tier[V], Stream[V]) {
				tier, rest := s()
				out := make(Tier[V], 0, len(tier))
				for _, v := range tier {
					if keep(v) {
						out = append(out, v)
					}
				}
				return out, walk(rest)
			}
		}
		return walk(e.Tiers())
	})
}

// Sum combines same-typed enumerations:
// tier k of the sum is tier k of each operand concatenated in argument
// order. The sum ends when all operands have ended; shorter operands
// contribute nothing past their end.
func Sum[V any](es ...Enumerator[V]) Enumerator[V] {
	return New(func() Stream[V] {
		ss := make([]Stream[V], len(es))
		for i, e := range es {
			ss[i] = e.Tiers()
		}
		return sumStream(ss)
	})
}

func sumStream[V any](ss []Stream[V]) Stream[V] {
	live := false
	for _, s := range ss {
		if s != nil {
			live = true
			break
		}
	}
	if !live {
		return nil
	}
	return func() (Tier[V], Stream[V]) {
		var out Tier[V]
		rest := make([]Stream[V], len(ss))
		for i, s := range ss {
			if s == nil {
				continue
			}
			tier, next := s()
			out = append(out, tier...)
			rest[i] = next
		}
		return out, sumStream(rest)
	}
}

// Product enumerates all pairs of values from a and b.
// Tier k of the product holds, for each split i+j=k in increasing i,
// every pair of an a-value of cost i with a b-value of cost j,
// with a as the outer loop and b as the inner loop.
// Every pair of finite-cost values therefore appears at a finite tier,
// even when both operands are infinite.
func Product[A, B any](a Enumerator[A], b Enumerator[B]) Enumerator[Pair[A, B]] {
	return ProductWith(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{Fst: x, Snd: y}
	})
}

// ProductWith is Product with the pairing function replaced by f.
func ProductWith[A, B, C any](a Enumerator[A], b Enumerator[B], f func(A, B) C) Enumerator[C] {
	return New(func() Stream[C] {
		return productStream(a.Tiers(), b.Tiers(), f)
	})
}

// productStream drives the diagonalization of two tier streams.
// It accumulates the tiers consumed so far from both operands;
// once both operands are exhausted it ends as soon as the diagonal
// passes the sum of their last tier indices, and it ends immediately
// when either operand turns out to hold no values at all.
func productStream[A, B, C any](sa Stream[A], sb Stream[B], f func(A, B) C) Stream[C] {
	st := prodState[A, B, C]{f: f, sa: sa, sb: sb}
	return st.stream()
}

type prodState[A, B, C any] struct {
	f  func(A, B) C
	as []Tier[A]
	bs []Tier[B]
	sa Stream[A]
	sb Stream[B]
	k  int
}

func (st prodState[A, B, C]) stream() Stream[C] {
	if st.done() {
		return nil
	}
	return func() (Tier[C], Stream[C]) {
		next := st
		if next.sa != nil {
			var tier Tier[A]
			tier, next.sa = next.sa()
			next.as = append(next.as[:len(next.as):len(next.as)], tier)
		}
		if next.sb != nil {
			var tier Tier[B]
			tier, next.sb = next.sb()
			next.bs = append(next.bs[:len(next.bs):len(next.bs)], tier)
		}
		var out Tier[C]
		for i := 0; i <= next.k; i++ {
			j := next.k - i
			if i >= len(next.as) || j >= len(next.bs) {
				continue
			}
			for _, x := range next.as[i] {
				for _, y := range next.bs[j] {
					out = append(out, next.f(x, y))
				}
			}
		}
		next.k++
		return out, next.stream()
	}
}

func (st prodState[A, B, C]) done() bool {
	if st.sa == nil && countElems(st.as) == 0 {
		return true
	}
	if st.sb == nil && countElems(st.bs) == 0 {
		return true
	}
	return st.sa == nil && st.sb == nil && st.k > len(st.as)+len(st.bs)-2
}

func countElems[V any](tiers []Tier[V]) int {
	n := 0
	for _, t := range tiers {
		n += len(t)
	}
	return n
}

// Cons0 enumerates a single constant constructor at cost 0.
func Cons0[V any](v V) Enumerator[V] {
	return FromChoices(v)
}

// Cons1 lifts a one-argument constructor over an enumeration:
// f(x) is enumerated at cost(x)+1, the extra unit being the cost of
// the constructor itself.
func Cons1[A, V any](a Enumerator[A], f func(A) V) Enumerator[V] {
	return Delay(Map(a, f), 1)
}

// Cons2 lifts a two-argument constructor over the product of two
// enumerations, at cost(x)+cost(y)+1.
func Cons2[A, B, V any](a Enumerator[A], b Enumerator[B], f func(A, B) V) Enumerator[V] {
	return Delay(ProductWith(a, b, f), 1)
}

// Cons3 lifts a three-argument constructor, at the summed argument
// cost plus one.
func Cons3[A, B, C, V any](a Enumerator[A], b Enumerator[B], c Enumerator[C], f func(A, B, C) V) Enumerator[V] {
	return Delay(ProductWith(a, Product(b, c), func(x A, yz Pair[B, C]) V {
		return f(x, yz.Fst, yz.Snd)
	}), 1)
}

// TupleOf enumerates fixed-arity tuples drawn from the given erased
// enumerations, diagonalized like Product. The empty product is a
// single empty tuple at cost 0.
func TupleOf(es ...Enumerator[any]) Enumerator[[]any] {
	if len(es) == 0 {
		return FromChoices([]any{})
	}
	rest := TupleOf(es[1:]...)
	return ProductWith(es[0], rest, func(x any, xs []any) []any {
		out := make([]any, 0, len(xs)+1)
		out = append(out, x)
		return append(out, xs...)
	})
}

// ConsN lifts an erased constructor over the tuple of its argument
// enumerations, shifted by the constructor cost.
func ConsN(f func([]any) any, cost int, args ...Enumerator[any]) Enumerator[any] {
	return Delay(Map(TupleOf(args...), f), cost)
}
