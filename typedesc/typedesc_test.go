package typedesc

import "testing"

func TestKeys(t *testing.T) {
	tests := []struct {
		desc Desc
		key  string
	}{
		{Bool(), "bool"},
		{Int(), "int"},
		{Float(), "float64"},
		{Rune(), "rune"},
		{Byte(), "byte"},
		{String(), "string"},
		{Unit(), "unit"},
		{Named("Tree"), "Tree"},
		{SliceOf(Int()), "[]int"},
		{SliceOf(SliceOf(Bool())), "[][]bool"},
		{SetOf(Int()), "set[int]"},
		{MapOf(Int(), Bool()), "map[int]bool"},
		{OptionalOf(Named("Point")), "optional[Point]"},
		{TupleOf(), "()"},
		{TupleOf(Int(), Bool(), SliceOf(Int())), "(int,bool,[]int)"},
		{Desc{}, "invalid"},
	}
	for _, test := range tests {
		if got := test.desc.Key(); got != test.key {
			t.Errorf("unexpected key for %v. Got %q. Expected %q", test.desc.Kind(), got, test.key)
		}
	}
}

// Structurally equal descriptors must produce equal keys and
// structurally different ones different keys.
func TestKeyStability(t *testing.T) {
	a := MapOf(SliceOf(Int()), SetOf(Bool()))
	b := MapOf(SliceOf(Int()), SetOf(Bool()))
	if a.Key() != b.Key() {
		t.Errorf("equal descriptors produced different keys: %q and %q", a.Key(), b.Key())
	}
	c := MapOf(SliceOf(Bool()), SetOf(Bool()))
	if a.Key() == c.Key() {
		t.Errorf("different descriptors share the key %q", a.Key())
	}
}

func TestElems(t *testing.T) {
	d := MapOf(Int(), Bool())
	if len(d.Elems()) != 2 {
		t.Fatalf("expected 2 contained descriptors. Got %v", len(d.Elems()))
	}
	if d.Elems()[0].Kind() != KindInt || d.Elems()[1].Kind() != KindBool {
		t.Errorf("unexpected contained descriptors: %v", d.Elems())
	}
}
