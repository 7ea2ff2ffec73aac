package types

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Atomic is a single, non-union type. A Union is made of several Atomic
type Atomic interface {
	fmt.Stringer
	Hash() uint64
	atomicType()
}

var (
	_ Atomic = TNull{}
	_ Atomic = TInt{}
	_ Atomic = TFloat{}
	_ Atomic = TString{}
	_ Atomic = TBool{}
	_ Atomic = TTrue{}
	_ Atomic = TFalse{}
	_ Atomic = TMixed{}
	_ Atomic = TObject{}
	_ Atomic = TNamedObject{}
	_ Atomic = TGenericObject{}
	_ Atomic = TKeyedArray{}
	_ Atomic = TArray{}
	_ Atomic = TTemplateParam{}
)

func hashOf(kind string, parts ...uint64) uint64 {
	h := fnv.New64a()
	arr := []byte(kind)
	for _, part := range parts {
		arr = binary.LittleEndian.AppendUint64(arr, part)
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

type TNull struct{}

func (TNull) atomicType()    {}
func (TNull) String() string { return "null" }
func (t TNull) Hash() uint64 { return hashOf(t.String()) }

type TInt struct{}

func (TInt) atomicType()    {}
func (TInt) String() string { return "int" }
func (t TInt) Hash() uint64 { return hashOf(t.String()) }

type TFloat struct{}

func (TFloat) atomicType()    {}
func (TFloat) String() string { return "float" }
func (t TFloat) Hash() uint64 { return hashOf(t.String()) }

type TString struct{}

func (TString) atomicType()    {}
func (TString) String() string { return "string" }
func (t TString) Hash() uint64 { return hashOf(t.String()) }

type TBool struct{}

func (TBool) atomicType()    {}
func (TBool) String() string { return "bool" }
func (t TBool) Hash() uint64 { return hashOf(t.String()) }

type TTrue struct{}

func (TTrue) atomicType()    {}
func (TTrue) String() string { return "true" }
func (t TTrue) Hash() uint64 { return hashOf(t.String()) }

type TFalse struct{}

func (TFalse) atomicType()    {}
func (TFalse) String() string { return "false" }
func (t TFalse) Hash() uint64 { return hashOf(t.String()) }

// TMixed is the top type. NonNull is set once null has been ruled out
type TMixed struct {
	NonNull bool
}

func (TMixed) atomicType() {}
func (t TMixed) String() string {
	if t.NonNull {
		return "non-null-mixed"
	}
	return "mixed"
}
func (t TMixed) Hash() uint64 { return hashOf(t.String()) }

// TObject is any object, of unknown class
type TObject struct{}

func (TObject) atomicType()    {}
func (TObject) String() string { return "object" }
func (t TObject) Hash() uint64 { return hashOf(t.String()) }

// TNamedObject is an instance of class Name without type parameters
type TNamedObject struct {
	Name string
}

func (TNamedObject) atomicType()      {}
func (t TNamedObject) String() string { return t.Name }
func (t TNamedObject) Hash() uint64   { return hashOf("TNamedObject", hashString(strings.ToLower(t.Name))) }

// TGenericObject is an instance of a class with type parameters, like ArrayList<int>
type TGenericObject struct {
	Name   string
	Params []*Union
}

func (TGenericObject) atomicType() {}
func (t TGenericObject) String() string {
	return t.Name + "<" + joinUnions(t.Params) + ">"
}
func (t TGenericObject) Hash() uint64 {
	return hashOf("TGenericObject", append([]uint64{hashString(strings.ToLower(t.Name))}, hashUnions(t.Params)...)...)
}

// WithParams returns a copy of t parametrised by params
func (t TGenericObject) WithParams(params ...*Union) TGenericObject {
	return TGenericObject{Name: t.Name, Params: params}
}

// TKeyedArray is an array of known shape. When IsList is set, keys are 0..len(Items)-1
type TKeyedArray struct {
	Items  []*Union
	IsList bool
}

func (TKeyedArray) atomicType() {}
func (t TKeyedArray) String() string {
	if t.IsList {
		return "list{" + joinUnions(t.Items) + "}"
	}
	return "array{" + joinUnions(t.Items) + "}"
}
func (t TKeyedArray) Hash() uint64 {
	kind := "array"
	if t.IsList {
		kind = "list"
	}
	return hashOf("TKeyedArray", append([]uint64{hashString(kind)}, hashUnions(t.Items)...)...)
}

// TArray is a generic array<Key, Value>
type TArray struct {
	Key   *Union
	Value *Union
}

func (TArray) atomicType() {}
func (t TArray) String() string {
	return "array<" + t.Key.String() + ", " + t.Value.String() + ">"
}
func (t TArray) Hash() uint64 { return hashOf("TArray", t.Key.Hash(), t.Value.Hash()) }

// TTemplateParam is an unsubstituted template parameter of a class, like TV in ArrayList<TV>
type TTemplateParam struct {
	Name string
	As   *Union
}

func (TTemplateParam) atomicType()      {}
func (t TTemplateParam) String() string { return t.Name }
func (t TTemplateParam) Hash() uint64   { return hashOf("TTemplateParam", hashString(t.Name)) }

func joinUnions(unions []*Union) string {
	strs := make([]string, len(unions))
	for i, u := range unions {
		strs[i] = u.String()
	}
	return strings.Join(strs, ", ")
}

func hashUnions(unions []*Union) []uint64 {
	hashes := make([]uint64, len(unions))
	for i, u := range unions {
		hashes[i] = u.Hash()
	}
	return hashes
}
