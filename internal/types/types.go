// Package types implements the Type sum-variant: primitive, pointer, array,
// structure, union, class, typealias, and function types, with structural
// equality and interned primitive singletons.
package types

import (
	"strconv"
	"strings"
)

// Kind tags the concrete variant of a Type. Every pass that switches on Type
// must handle every Kind; Go does not check type switches for
// exhaustiveness, so adding a new one means revisiting each switch by hand.
type Kind int

const (
	KindPrimitive Kind = iota
	KindPointer
	KindArray
	KindStructure
	KindUnion
	KindClass
	KindTypealias
	KindFunction
)

// PrimitiveKind enumerates the primitive kinds.
type PrimitiveKind int

const (
	NullT PrimitiveKind = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Void
)

var primitiveNames = map[PrimitiveKind]string{
	NullT: "null_t", Bool: "bool",
	Int8: "int8", Int16: "int16", Int32: "int32", Int64: "int64",
	Uint8: "uint8", Uint16: "uint16", Uint32: "uint32", Uint64: "uint64",
	Float32: "float32", Float64: "float64", Void: "void",
}

// Type is the common interface implemented by every type variant.
type Type interface {
	Kind() Kind
	String() string
	// Equals reports structural equality, not identity.
	Equals(other Type) bool
}

// PrimitiveType is a singleton per PrimitiveKind (primitive instances are
// interned); never construct one directly, use Primitive(kind).
type PrimitiveType struct {
	kind PrimitiveKind
}

func (p *PrimitiveType) Kind() Kind { return KindPrimitive }
func (p *PrimitiveType) String() string { return primitiveNames[p.kind] }
func (p *PrimitiveType) PrimitiveKind() PrimitiveKind { return p.kind }
func (p *PrimitiveType) Equals(other Type) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o.kind == p.kind
}

var primitiveSingletons = func() map[PrimitiveKind]*PrimitiveType {
	m := make(map[PrimitiveKind]*PrimitiveType, len(primitiveNames))
	for k := range primitiveNames {
		m[k] = &PrimitiveType{kind: k}
	}
	return m
}()

// Primitive returns the single shared Type value for kind.
func Primitive(kind PrimitiveKind) *PrimitiveType { return primitiveSingletons[kind] }

// Exported singletons mirror the built-in scope's entries, kept as real
// values here rather than deprecated globals.
var (
	NullType = Primitive(NullT)
	BoolType = Primitive(Bool)
	Int8Type = Primitive(Int8)
	Int16Type = Primitive(Int16)
	Int32Type = Primitive(Int32)
	Int64Type = Primitive(Int64)
	Uint8Type = Primitive(Uint8)
	Uint16Type = Primitive(Uint16)
	Uint32Type = Primitive(Uint32)
	Uint64Type = Primitive(Uint64)
	Float32Type = Primitive(Float32)
	Float64Type = Primitive(Float64)
	VoidType = Primitive(Void)
)

// PointerType is `base*`.
type PointerType struct{ Base Type }

func (p *PointerType) Kind() Kind { return KindPointer }
func (p *PointerType) String() string { return p.Base.String() + "*" }
func (p *PointerType) Equals(other Type) bool {
	o, ok := other.(*PointerType)
	return ok && p.Base.Equals(o.Base)
}

// ArrayType is `base[Size]`. Size is -1 when the array's extent is not yet a
// known constant (e.g. before the constant check pass folds a symbolic size
// expression, or when that expression is not constant).
type ArrayType struct {
	Base Type
	Size int
}

func (a *ArrayType) Kind() Kind { return KindArray }
func (a *ArrayType) String() string {
	if a.Size < 0 {
		return a.Base.String() + "[]"
	}
	return a.Base.String() + "[" + strconv.Itoa(a.Size) + "]"
}
func (a *ArrayType) Equals(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && a.Size == o.Size && a.Base.Equals(o.Base)
}

// NamedType is the shared shape of Structure/Union/Class: nominal typing by
// name, so two NamedTypes are equal iff their kind and name match.
type NamedType struct {
	kind Kind
	Name string
}

func (n *NamedType) Kind() Kind { return n.kind }
func (n *NamedType) String() string { return n.Name }
func (n *NamedType) Equals(other Type) bool {
	o, ok := other.(*NamedType)
	return ok && o.kind == n.kind && o.Name == n.Name
}

func NewStructure(name string) *NamedType { return &NamedType{kind: KindStructure, Name: name} }
func NewUnion(name string) *NamedType { return &NamedType{kind: KindUnion, Name: name} }
func NewClass(name string) *NamedType { return &NamedType{kind: KindClass, Name: name} }

// TypealiasType names an alias declared with `type Name = ...;`. Underlying
// is nil until alias resolution fills it in.
type TypealiasType struct {
	Name string
	Underlying Type
}

func (t *TypealiasType) Kind() Kind { return KindTypealias }
func (t *TypealiasType) String() string {
	if t.Underlying == nil {
		return t.Name
	}
	return t.Name
}
func (t *TypealiasType) Equals(other Type) bool {
	o, ok := other.(*TypealiasType)
	return ok && o.Name == t.Name
}

// Unalias follows a chain of type aliases down to its first non-alias
// underlying type, or nil if the chain is incomplete (cycle or unresolved).
func Unalias(t Type) Type {
	seen := map[string]bool{}
	for {
		alias, ok := t.(*TypealiasType)
		if !ok {
			return t
		}
		if seen[alias.Name] || alias.Underlying == nil {
			return nil
		}
		seen[alias.Name] = true
		t = alias.Underlying
	}
}

// FunctionType is structurally typed by parameter and return types.
type FunctionType struct {
	Params []Type
	Ret Type
}

func (f *FunctionType) Kind() Kind { return KindFunction }
func (f *FunctionType) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") -> ")
	if f.Ret != nil {
		sb.WriteString(f.Ret.String())
	} else {
		sb.WriteString("void")
	}
	return sb.String()
}
func (f *FunctionType) Equals(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || len(f.Params) != len(o.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equals(o.Params[i]) {
			return false
		}
	}
	if (f.Ret == nil) != (o.Ret == nil) {
		return false
	}
	return f.Ret == nil || f.Ret.Equals(o.Ret)
}

// Predicates used throughout expression typing's conversion and operator rules.

func IsIntegral(t Type) bool {
	p, ok := t.(*PrimitiveType)
	if !ok {
		return false
	}
	switch p.kind {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

func IsUnsigned(t Type) bool {
	p, ok := t.(*PrimitiveType)
	if !ok {
		return false
	}
	switch p.kind {
	case Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

func IsSigned(t Type) bool {
	p, ok := t.(*PrimitiveType)
	if !ok {
		return false
	}
	switch p.kind {
	case Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

func IsFloat(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && (p.kind == Float32 || p.kind == Float64)
}

func IsNumeric(t Type) bool { return IsIntegral(t) || IsFloat(t) }

func IsBool(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.kind == Bool
}

func IsVoid(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.kind == Void
}

func IsPointer(t Type) bool {
	_, ok := t.(*PointerType)
	return ok
}

// integralRank orders integrals for the "lower rank promotes to higher rank"
// rule, ascending by bit width within each signedness.
var integralRank = map[PrimitiveKind]int{
	Int8: 0, Int16: 1, Int32: 2, Int64: 3,
	Uint8: 0, Uint16: 1, Uint32: 2, Uint64: 3,
}

// Rank returns the integral rank of t, or -1 if t is not an integral primitive.
func Rank(t Type) int {
	p, ok := t.(*PrimitiveType)
	if !ok {
		return -1
	}
	r, ok := integralRank[p.kind]
	if !ok {
		return -1
	}
	return r
}
