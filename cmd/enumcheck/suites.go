package main

import (
	"sort"

	"enumcheck/checking"
	"enumcheck/registry"
	"enumcheck/typedesc"
)

// The demo suites exercise the engine over built-in and user
// registered types. Slices of int arrive as []any through the erased
// registry representation.

func ints(xs []any) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = x.(int)
	}
	return out
}

func sortedCopy(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)
	return out
}

func isSorted(xs []int) bool {
	return sort.IntsAreSorted(xs)
}

var intSlice = typedesc.SliceOf(typedesc.Int())

func sortSuite() []checking.Property {
	return []checking.Property{
		checking.Prop1("prop_sorted_twice", intSlice, func(xs []any) bool {
			once := sortedCopy(ints(xs))
			twice := sortedCopy(once)
			return isSorted(once) && equalInts(once, twice)
		}),
		checking.Prop1("prop_sorted_len", intSlice, func(xs []any) bool {
			return len(sortedCopy(ints(xs))) == len(xs)
		}),
		// Intentionally false: not every slice arrives sorted.
		checking.Prop1("prop_sorted_wrong", intSlice, func(xs []any) bool {
			return isSorted(ints(xs))
		}),
	}
}

func equalInts(a, b []int) bool {
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

func arithSuite() []checking.Property {
	intT := typedesc.Int()
	return []checking.Property{
		checking.Prop2("prop_add_commutes", intT, intT, func(x, y int) bool {
			return x+y == y+x
		}),
		checking.Prop3("prop_add_associates", intT, intT, intT, func(x, y, z int) bool {
			return (x+y)+z == x+(y+z)
		}),
		// Intentionally false at x=0, y=0.
		checking.Prop2("prop_add_increases", intT, intT, func(x, y int) bool {
			return x+y > x
		}),
	}
}

// Point is a two-field constructor type registered with the engine.
type Point struct {
	X, Y int
}

var pointDesc = typedesc.Named("Point")

func registerPoint(reg *registry.Registry) error {
	return reg.RegisterType(pointDesc, registry.Constructor{
		Make: func(args []any) any {
			return Point{X: args[0].(int), Y: args[1].(int)}
		},
		Args: []typedesc.Desc{typedesc.Int(), typedesc.Int()},
	})
}

func pointSuite() []checking.Property {
	return []checking.Property{
		checking.Prop1("prop_point_mirror", pointDesc, func(p Point) bool {
			m := Point{X: p.Y, Y: p.X}
			return Point{X: m.Y, Y: m.X} == p
		}),
	}
}

// Tree is a self-referential type: a leaf or a node with two subtrees.
type Tree struct {
	Value       int
	Left, Right *Tree
}

var treeDesc = typedesc.Named("Tree")

func registerTree(reg *registry.Registry) error {
	return reg.RegisterType(treeDesc,
		registry.Constructor{
			Make: func(args []any) any { return (*Tree)(nil) },
		},
		registry.Constructor{
			Make: func(args []any) any {
				return &Tree{
					Value: args[0].(int),
					Left:  args[1].(*Tree),
					Right: args[2].(*Tree),
				}
			},
			Args: []typedesc.Desc{typedesc.Int(), treeDesc, treeDesc},
		},
	)
}

func (t *Tree) size() int {
	if t == nil {
		return 0
	}
	return 1 + t.Left.size() + t.Right.size()
}

func (t *Tree) mirror() *Tree {
	if t == nil {
		return nil
	}
	return &Tree{Value: t.Value, Left: t.Right.mirror(), Right: t.Left.mirror()}
}

func treeSuite() []checking.Property {
	return []checking.Property{
		checking.Prop1("prop_mirror_size", treeDesc, func(t *Tree) bool {
			return t.mirror().size() == t.size()
		}),
		checking.Prop1("prop_mirror_involution", treeDesc, func(t *Tree) bool {
			return equalTrees(t.mirror().mirror(), t)
		}),
	}
}

func equalTrees(a, b *Tree) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value == b.Value && equalTrees(a.Left, b.Left) && equalTrees(a.Right, b.Right)
}

// Void has no constructors: every property over it holds vacuously.
var voidDesc = typedesc.Named("Void")

func registerVoid(reg *registry.Registry) error {
	return reg.RegisterType(voidDesc)
}

func voidSuite() []checking.Property {
	return []checking.Property{
		checking.NewProperty("prop_vacuous", []typedesc.Desc{voidDesc}, func(args []any) bool {
			return false
		}),
	}
}
