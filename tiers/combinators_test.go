package tiers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProductIntBool(t *testing.T) {
	got := Product(Integers[int](), Booleans()).Take(6)
	want := []Pair[int, bool]{
		{0, false}, {0, true},
		{1, false}, {1, true}, {-1, false}, {-1, true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected product (-want +got):\n%s", diff)
	}
}

// Tier k of a product must hold exactly the pairs whose costs sum to
// k, with no duplicates and no omissions, and A as the outer loop.
func TestProductCompleteness(t *testing.T) {
	a := Integers[int]()
	b := Naturals[int]()
	const depth = 8

	got := Product(a, b).TakeTiers(depth)
	as := a.TakeTiers(depth)
	bs := b.TakeTiers(depth)
	for k := 0; k < depth; k++ {
		var want Tier[Pair[int, int]]
		for i := 0; i <= k; i++ {
			j := k - i
			if i >= len(as) || j >= len(bs) {
				continue
			}
			for _, x := range as[i] {
				for _, y := range bs[j] {
					want = append(want, Pair[int, int]{x, y})
				}
			}
		}
		if diff := cmp.Diff(want, got[k]); diff != "" {
			t.Errorf("unexpected product tier %v (-want +got):\n%s", k, diff)
		}
	}
}

func TestProductOfFiniteEnumeratorsEnds(t *testing.T) {
	e := Product(Booleans(), FromValues(0, 1))
	tiers := e.TakeTiers(10)
	if len(tiers) != 2 {
		t.Fatalf("expected 2 product tiers. Got %v", len(tiers))
	}
	total := 0
	for _, tier := range tiers {
		total += len(tier)
	}
	if total != 4 {
		t.Errorf("expected 4 pairs in total. Got %v", total)
	}
}

// A product over an empty operand is the empty enumeration and must
// return promptly even when the other operand is infinite.
func TestProductWithEmptyOperand(t *testing.T) {
	if s := Product(Empty[int](), Integers[int]()).Tiers(); s != nil {
		t.Errorf("expected empty product stream for empty left operand")
	}
	if s := Product(Integers[int](), Empty[int]()).Tiers(); s != nil {
		t.Errorf("expected empty product stream for empty right operand")
	}
}

// Tier k of a sum is tier k of each operand concatenated in argument
// order, preserving each operand's internal order.
func TestSumPrecedence(t *testing.T) {
	a := Integers[int]()
	b := Naturals[int]()
	const depth = 6

	got := Sum(a, b).TakeTiers(depth)
	as := a.TakeTiers(depth)
	bs := b.TakeTiers(depth)
	for k := 0; k < depth; k++ {
		want := append(append(Tier[int]{}, as[k]...), bs[k]...)
		if diff := cmp.Diff(want, got[k]); diff != "" {
			t.Errorf("unexpected sum tier %v (-want +got):\n%s", k, diff)
		}
	}
}

func TestSumPastShorterOperand(t *testing.T) {
	// An infinite operand shaped like the integers, so the finite
	// boolean operand runs out first.
	pad := Map(Integers[int](), func(int) bool { return false })
	got := Sum(Booleans(), pad).TakeTiers(3)
	want := []Tier[bool]{{false, true, false}, {false, false}, {false, false}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected sum tiers (-want +got):\n%s", diff)
	}
}

func TestMapPreservesTiers(t *testing.T) {
	got := Map(Integers[int](), func(x int) int { return x * 2 }).TakeTiers(3)
	want := []Tier[int]{{0}, {2, -2}, {4, -4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected mapped tiers (-want +got):\n%s", diff)
	}
}

// Delay(e, n) at tier k is empty for k < n and tier k-n of e
// otherwise; a negative offset behaves as zero.
func TestDelayOffsetLaw(t *testing.T) {
	e := Integers[int]()
	for _, offset := range []int{0, 1, 3} {
		delayed := Delay(e, offset).TakeTiers(6)
		base := e.TakeTiers(6)
		for k := 0; k < 6; k++ {
			var want Tier[int]
			if k >= offset {
				want = base[k-offset]
			}
			if diff := cmp.Diff(want, delayed[k], cmp.Comparer(eqIntTier)); diff != "" {
				t.Errorf("offset %v: unexpected tier %v (-want +got):\n%s", offset, k, diff)
			}
		}
	}
	neg := Delay(e, -2).TakeTiers(3)
	if diff := cmp.Diff(e.TakeTiers(3), neg); diff != "" {
		t.Errorf("negative offset not normalized (-want +got):\n%s", diff)
	}
}

func eqIntTier(a, b Tier[int]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterKeepsTierIndices(t *testing.T) {
	evens := Filter(Integers[int](), func(x int) bool { return x%2 == 0 })
	got := evens.TakeTiers(4)
	want := []Tier[int]{{0}, {}, {2, -2}, {}}
	if diff := cmp.Diff(want, got, cmp.Comparer(eqIntTier)); diff != "" {
		t.Errorf("unexpected filtered tiers (-want +got):\n%s", diff)
	}
}

func TestConsCosts(t *testing.T) {
	type box struct{ v int }
	e := Cons1(Integers[int](), func(x int) box { return box{v: x} })
	got := e.TakeTiers(3)
	want := []Tier[box]{{}, {{v: 0}}, {{v: 1}, {v: -1}}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(box{}), cmp.Comparer(func(a, b Tier[box]) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	})); diff != "" {
		t.Errorf("unexpected cons1 tiers (-want +got):\n%s", diff)
	}

	pairs := Cons2(Booleans(), Booleans(), func(a, b bool) [2]bool { return [2]bool{a, b} })
	gotPairs := pairs.Take(10)
	wantPairs := [][2]bool{
		{false, false}, {false, true}, {true, false}, {true, true},
	}
	if diff := cmp.Diff(wantPairs, gotPairs, cmp.Comparer(func(a, b [2]bool) bool { return a == b })); diff != "" {
		t.Errorf("unexpected cons2 values (-want +got):\n%s", diff)
	}
}

func TestTupleOfZeroArity(t *testing.T) {
	got := TupleOf().TakeTiers(3)
	if len(got) != 1 || len(got[0]) != 1 || len(got[0][0]) != 0 {
		t.Fatalf("expected a single empty tuple. Got %v", got)
	}
}

func TestTupleOfThreeIntegers(t *testing.T) {
	e := TupleOf(
		Erase(Integers[int]()),
		Erase(Integers[int]()),
		Erase(Integers[int]()),
	)
	got := e.Take(7)
	want := [][]any{
		{0, 0, 0},
		{0, 0, 1}, {0, 0, -1}, {0, 1, 0}, {0, -1, 0}, {1, 0, 0}, {-1, 0, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected tuples (-want +got):\n%s", diff)
	}
}

func TestConsNOffset(t *testing.T) {
	sum := ConsN(func(args []any) any {
		return args[0].(int) + args[1].(int)
	}, 1, Erase(Integers[int]()), Erase(Integers[int]()))
	got := sum.TakeTiers(3)
	if len(got[0]) != 0 {
		t.Errorf("expected empty tier below the constructor cost. Got %v", got[0])
	}
	if diff := cmp.Diff(Tier[any]{0}, got[1]); diff != "" {
		t.Errorf("unexpected tier 1 (-want +got):\n%s", diff)
	}
}
