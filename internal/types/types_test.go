package types

import "testing"

func TestPrimitiveSingletons(t *testing.T) {
	tests := []struct {
		typ Type
		expected string
	}{
		{BoolType, "bool"},
		{Int8Type, "int8"},
		{Int16Type, "int16"},
		{Int32Type, "int32"},
		{Int64Type, "int64"},
		{Uint8Type, "uint8"},
		{Uint16Type, "uint16"},
		{Uint32Type, "uint32"},
		{Uint64Type, "uint64"},
		{Float32Type, "float32"},
		{Float64Type, "float64"},
		{VoidType, "void"},
		{NullType, "null_t"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if tt.typ.String() != tt.expected {
				t.Errorf("String = %v, want %v", tt.typ.String(), tt.expected)
			}
			if tt.typ.Kind() != KindPrimitive {
				t.Errorf("Kind = %v, want KindPrimitive", tt.typ.Kind())
			}
		})
	}
}

func TestPrimitiveIsInterned(t *testing.T) {
	if Primitive(Int32) != Int32Type {
		t.Error("Primitive(Int32) should return the same pointer as Int32Type")
	}
	if Primitive(Int32) == Primitive(Int64) {
		t.Error("Primitive(Int32) and Primitive(Int64) must be distinct")
	}
}

func TestPrimitiveEquals(t *testing.T) {
	if !Int32Type.Equals(Primitive(Int32)) {
		t.Error("Int32Type should equal Primitive(Int32)")
	}
	if Int32Type.Equals(Int64Type) {
		t.Error("Int32Type should not equal Int64Type")
	}
	if Int32Type.Equals(&PointerType{Base: Int32Type}) {
		t.Error("a primitive should never equal a pointer")
	}
}

func TestPointerType(t *testing.T) {
	p := &PointerType{Base: Int32Type}
	if p.String() != "int32*" {
		t.Errorf("String = %v, want int32*", p.String())
	}
	if p.Kind() != KindPointer {
		t.Errorf("Kind = %v, want KindPointer", p.Kind())
	}
	if !p.Equals(&PointerType{Base: Int32Type}) {
		t.Error("two pointers to the same base should be equal")
	}
	if p.Equals(&PointerType{Base: Int64Type}) {
		t.Error("pointers to different bases should not be equal")
	}
}

func TestArrayType(t *testing.T) {
	t.Run("sized", func(t *testing.T) {
		a := &ArrayType{Base: Int8Type, Size: 4}
		if a.String() != "int8[4]" {
			t.Errorf("String = %v, want int8[4]", a.String())
		}
		if !a.Equals(&ArrayType{Base: Int8Type, Size: 4}) {
			t.Error("same base and size should be equal")
		}
		if a.Equals(&ArrayType{Base: Int8Type, Size: 5}) {
			t.Error("different sizes should not be equal")
		}
	})

	t.Run("unresolved size", func(t *testing.T) {
		a := &ArrayType{Base: Int8Type, Size: -1}
		if a.String() != "int8[]" {
			t.Errorf("String = %v, want int8[]", a.String())
		}
	})
}

func TestNamedTypes(t *testing.T) {
	s1 := NewStructure("Point")
	s2 := NewStructure("Point")
	u := NewUnion("Point")
	c := NewClass("Point")

	if !s1.Equals(s2) {
		t.Error("two structures with the same name should be equal")
	}
	if s1.Equals(u) {
		t.Error("a structure should never equal a union of the same name")
	}
	if s1.Equals(c) {
		t.Error("a structure should never equal a class of the same name")
	}
	if s1.String() != "Point" {
		t.Errorf("String = %v, want Point", s1.String())
	}
}

func TestTypealiasUnalias(t *testing.T) {
	t.Run("chain resolves", func(t *testing.T) {
		a := &TypealiasType{Name: "A", Underlying: Int32Type}
		b := &TypealiasType{Name: "B", Underlying: a}
		if got := Unalias(b); got != Int32Type {
			t.Errorf("Unalias(B) = %v, want Int32Type", got)
		}
	})

	t.Run("unresolved underlying", func(t *testing.T) {
		a := &TypealiasType{Name: "A"}
		if got := Unalias(a); got != nil {
			t.Errorf("Unalias(A) = %v, want nil", got)
		}
	})

	t.Run("cycle", func(t *testing.T) {
		a := &TypealiasType{Name: "A"}
		b := &TypealiasType{Name: "B", Underlying: a}
		a.Underlying = b
		if got := Unalias(a); got != nil {
			t.Errorf("Unalias(A) = %v, want nil for a cyclic chain", got)
		}
	})

	t.Run("non-alias passes through", func(t *testing.T) {
		if got := Unalias(Int32Type); got != Int32Type {
			t.Errorf("Unalias(Int32Type) = %v, want Int32Type", got)
		}
	})
}

func TestFunctionTypeString(t *testing.T) {
	ft := &FunctionType{Params: []Type{Int32Type, Float64Type}, Ret: BoolType}
	if ft.String() != "(int32, float64) -> bool" {
		t.Errorf("String = %v, want (int32, float64) -> bool", ft.String())
	}

	proc := &FunctionType{Params: []Type{Int32Type}}
	if proc.String() != "(int32) -> void" {
		t.Errorf("String = %v, want (int32) -> void", proc.String())
	}
}

func TestFunctionTypeEquals(t *testing.T) {
	a := &FunctionType{Params: []Type{Int32Type}, Ret: BoolType}
	b := &FunctionType{Params: []Type{Int32Type}, Ret: BoolType}
	c := &FunctionType{Params: []Type{Int64Type}, Ret: BoolType}
	d := &FunctionType{Params: []Type{Int32Type}}

	if !a.Equals(b) {
		t.Error("structurally identical function types should be equal")
	}
	if a.Equals(c) {
		t.Error("different parameter types should not be equal")
	}
	if a.Equals(d) {
		t.Error("a function and a procedure should not be equal")
	}
	if a.Equals(Int32Type) {
		t.Error("a function type should not equal a primitive")
	}
}

func TestIntegralPredicates(t *testing.T) {
	signed := []Type{Int8Type, Int16Type, Int32Type, Int64Type}
	unsigned := []Type{Uint8Type, Uint16Type, Uint32Type, Uint64Type}

	for _, s := range signed {
		if !IsIntegral(s) || !IsSigned(s) || IsUnsigned(s) {
			t.Errorf("%v should be signed integral, not unsigned", s)
		}
	}
	for _, u := range unsigned {
		if !IsIntegral(u) || !IsUnsigned(u) || IsSigned(u) {
			t.Errorf("%v should be unsigned integral, not signed", u)
		}
	}
	if IsIntegral(Float32Type) || IsIntegral(BoolType) {
		t.Error("floats and bools should never be integral")
	}
}

func TestFloatBoolVoidPointerPredicates(t *testing.T) {
	if !IsFloat(Float32Type) || !IsFloat(Float64Type) {
		t.Error("Float32Type and Float64Type should be IsFloat")
	}
	if IsFloat(Int32Type) {
		t.Error("Int32Type should not be IsFloat")
	}
	if !IsBool(BoolType) || IsBool(Int8Type) {
		t.Error("IsBool should only hold for BoolType")
	}
	if !IsVoid(VoidType) || IsVoid(Int8Type) {
		t.Error("IsVoid should only hold for VoidType")
	}
	if !IsPointer(&PointerType{Base: Int8Type}) || IsPointer(Int8Type) {
		t.Error("IsPointer should only hold for *PointerType")
	}
	if !IsNumeric(Int32Type) || !IsNumeric(Float64Type) || IsNumeric(BoolType) {
		t.Error("IsNumeric should hold for integrals and floats only")
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		typ Type
		rank int
	}{
		{Int8Type, 0}, {Uint8Type, 0},
		{Int16Type, 1}, {Uint16Type, 1},
		{Int32Type, 2}, {Uint32Type, 2},
		{Int64Type, 3}, {Uint64Type, 3},
		{Float32Type, -1}, {BoolType, -1},
	}
	for _, tt := range tests {
		if got := Rank(tt.typ); got != tt.rank {
			t.Errorf("Rank(%v) = %d, want %d", tt.typ, got, tt.rank)
		}
	}
	if Rank(Int32Type) >= Rank(Int64Type) {
		t.Error("Int32Type should rank lower than Int64Type")
	}
}
