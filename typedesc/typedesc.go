package typedesc

import "strings"

// Kind discriminates the variants of a type descriptor.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Atomic types
	KindBool
	KindInt
	KindFloat
	KindRune
	KindByte
	KindString
	KindUnit

	// A user-registered named type
	KindNamed

	// Generic containers. The contained types are in Elems.
	KindSlice
	KindSet
	KindMap
	KindOptional
	KindTuple
)

// A Desc is a structural description of a type.
// It is an immutable value; two descriptors describe the same type
// exactly when their Keys are equal.
type Desc struct {
	kind  Kind
	name  string
	elems []Desc
}

func Bool() Desc   { return Desc{kind: KindBool} }
func Int() Desc    { return Desc{kind: KindInt} }
func Float() Desc  { return Desc{kind: KindFloat} }
func Rune() Desc   { return Desc{kind: KindRune} }
func Byte() Desc   { return Desc{kind: KindByte} }
func String() Desc { return Desc{kind: KindString} }
func Unit() Desc   { return Desc{kind: KindUnit} }

// Named describes a user-registered type identified by name.
func Named(name string) Desc {
	return Desc{kind: KindNamed, name: name}
}

// SliceOf describes an ordered sequence of elem values.
func SliceOf(elem Desc) Desc {
	return Desc{kind: KindSlice, elems: []Desc{elem}}
}

// SetOf describes a collection of distinct elem values.
func SetOf(elem Desc) Desc {
	return Desc{kind: KindSet, elems: []Desc{elem}}
}

// MapOf describes an association from distinct key values to val values.
func MapOf(key, val Desc) Desc {
	return Desc{kind: KindMap, elems: []Desc{key, val}}
}

// OptionalOf describes an elem value that may be absent.
func OptionalOf(elem Desc) Desc {
	return Desc{kind: KindOptional, elems: []Desc{elem}}
}

// TupleOf describes a fixed-arity tuple of the given types.
func TupleOf(elems ...Desc) Desc {
	return Desc{kind: KindTuple, elems: elems}
}

func (d Desc) Kind() Kind { return d.kind }

// Name returns the type name of a KindNamed descriptor and "" otherwise.
func (d Desc) Name() string { return d.name }

// Elems returns the contained type descriptors of a container descriptor.
func (d Desc) Elems() []Desc { return d.elems }

// Key returns a canonical encoding of the descriptor,
// stable across processes and usable as a map key.
func (d Desc) Key() string {
	switch d.kind {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float64"
	case KindRune:
		return "rune"
	case KindByte:
		return "byte"
	case KindString:
		return "string"
	case KindUnit:
		return "unit"
	case KindNamed:
		return d.name
	case KindSlice:
		return "[]" + d.elems[0].Key()
	case KindSet:
		return "set[" + d.elems[0].Key() + "]"
	case KindMap:
		return "map[" + d.elems[0].Key() + "]" + d.elems[1].Key()
	case KindOptional:
		return "optional[" + d.elems[0].Key() + "]"
	case KindTuple:
		keys := make([]string, len(d.elems))
		for i, e := range d.elems {
			keys[i] = e.Key()
		}
		return "(" + strings.Join(keys, ",") + ")"
	}
	return "invalid"
}

func (d Desc) String() string {
	return d.Key()
}
