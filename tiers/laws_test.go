package tiers

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// The combinator laws hold for every tier index, not just the small
// prefixes pinned in the table tests, so they are checked here over
// randomly drawn indices and offsets.

func TestProductTierSizeLaw(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("product tier size is the convolution of operand tier sizes", prop.ForAll(
		func(k int) bool {
			a := Integers[int]()
			b := Naturals[int]()
			as := a.TakeTiers(k + 1)
			bs := b.TakeTiers(k + 1)
			want := 0
			for i := 0; i <= k; i++ {
				want += len(as[i]) * len(bs[k-i])
			}
			got := Product(a, b).TakeTiers(k + 1)
			return len(got[k]) == want
		},
		gen.IntRange(0, 12),
	))

	properties.TestingRun(t)
}

func TestSumTierLaw(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("sum tier k is tier k of a followed by tier k of b", prop.ForAll(
		func(k int) bool {
			a := Integers[int]()
			b := Naturals[int]()
			got := Sum(a, b).TakeTiers(k + 1)[k]
			as := a.TakeTiers(k + 1)[k]
			bs := b.TakeTiers(k + 1)[k]
			if len(got) != len(as)+len(bs) {
				return false
			}
			for i, x := range as {
				if got[i] != x {
					return false
				}
			}
			for i, x := range bs {
				if got[len(as)+i] != x {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 12),
	))

	properties.TestingRun(t)
}

func TestDelayTierLaw(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("delayed tier k is empty below the offset and tier k-offset above", prop.ForAll(
		func(k, offset int) bool {
			e := Integers[int]()
			got := Delay(e, offset).TakeTiers(k + 1)[k]
			if k < offset {
				return len(got) == 0
			}
			want := e.TakeTiers(k - offset + 1)[k-offset]
			if len(got) != len(want) {
				return false
			}
			for i, x := range want {
				if got[i] != x {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 12),
		gen.IntRange(0, 6),
	))

	properties.TestingRun(t)
}

func TestSetSampleCostLaw(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a sample in tier k has element costs plus size equal to k", prop.ForAll(
		func(k int) bool {
			got := SetSamples(Integers[int]()).TakeTiers(k + 1)[k]
			for _, xs := range got {
				cost := len(xs)
				for _, x := range xs {
					if x < 0 {
						cost -= x
					} else {
						cost += x
					}
				}
				if cost != k {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 9),
	))

	properties.TestingRun(t)
}
