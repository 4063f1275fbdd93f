// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package is describes kinds of runtime values, tests values against such
// descriptions, and provides type checked references to object properties.
//
//	ok, err := is.Matches([]interface{}{is.String, is.Null}, value)
//
//	ref := is.MustNewRef(is.UInt, account, "Balance")
//	err := ref.Set(-5) // Expected a value that is: uint; got int
package is

import (
	"math/big"
	"reflect"
)

// Descriptor describes a set of accepted values. A descriptor is one of
//
//   - a Tag, or the name of a tag as a plain string,
//   - one of the wrapper types such as NumberType,
//   - the raw values true (truthy), false (falsey), nil (null) and Unset,
//   - any other reflect.Type, matched nominally,
//   - a union, written as a slice, an array or a *Set of descriptors.
type Descriptor interface{}

// Tag is a named descriptor.
type Tag string

const (
	Any      Tag = "any"
	String   Tag = "string"
	Number   Tag = "number"
	Boolean  Tag = "boolean"
	BigInt   Tag = "bigint"
	Symbol   Tag = "symbol"
	Function Tag = "function"
	Object   Tag = "object"

	Undefined Tag = "undefined"
	Null      Tag = "null"
	Nullish   Tag = "nullish"

	NaN    Tag = "NaN"
	Finite Tag = "finite"
	Int    Tag = "int"
	UInt   Tag = "uint"

	Truthy Tag = "truthy"
	Falsey Tag = "falsey"

	Iterable Tag = "iterable"

	// Type matches values which are themselves descriptors.
	Type Tag = "type"
)

var knownTags = map[Tag]bool{
	Any:       true,
	String:    true,
	Number:    true,
	Boolean:   true,
	BigInt:    true,
	Symbol:    true,
	Function:  true,
	Object:    true,
	Undefined: true,
	Null:      true,
	Nullish:   true,
	NaN:       true,
	Finite:    true,
	Int:       true,
	UInt:      true,
	Truthy:    true,
	Falsey:    true,
	Iterable:  true,
	Type:      true,
}

// Wrapper types. Each stands for the tag of the same name, and prints with
// a capitalized name.
var (
	StringType   = reflect.TypeOf("")
	NumberType   = reflect.TypeOf(float64(0))
	BooleanType  = reflect.TypeOf(false)
	BigIntType   = reflect.TypeOf((*big.Int)(nil))
	SymbolType   = reflect.TypeOf((*Token)(nil))
	FunctionType = reflect.TypeOf((*func())(nil)).Elem()
	ObjectType   = reflect.TypeOf((*interface{})(nil)).Elem()

	// IterableType is the iteration protocol marker.
	IterableType = reflect.TypeOf((*Iterator)(nil)).Elem()

	// DescriptorType is the descriptor of descriptors, equivalent to Type.
	DescriptorType = reflect.TypeOf((*Descriptor)(nil)).Elem()

	// SequenceType is the root of ordered sequences. It matches any slice
	// or array, whatever its element type.
	SequenceType = reflect.TypeOf([]interface{}(nil))
)

type wrapper struct {
	tag  Tag
	name string
}

var wrappers = map[reflect.Type]wrapper{
	StringType:     {String, "String"},
	NumberType:     {Number, "Number"},
	BooleanType:    {Boolean, "Boolean"},
	BigIntType:     {BigInt, "BigInt"},
	SymbolType:     {Symbol, "Symbol"},
	FunctionType:   {Function, "Function"},
	ObjectType:     {Object, "Object"},
	IterableType:   {Iterable, "iterable"},
	DescriptorType: {Type, "Descriptor"},
}

// nodeKind discriminates the shapes a descriptor can take.
type nodeKind int

const (
	kTag nodeKind = iota
	kUnion
	kSequence
	kNominal
)

// node is the shallow, normalized form of a descriptor. Union members are
// kept as written, and only normalized when visited.
type node struct {
	kind    nodeKind
	tag     Tag
	name    string
	typ     reflect.Type
	members []interface{}
}

// parse normalizes the outermost layer of typ.
func parse(typ Descriptor) (node, error) {
	switch d := typ.(type) {
	case nil:
		return node{kind: kTag, tag: Null, name: string(Null)}, nil
	case undefined:
		return node{kind: kTag, tag: Undefined, name: string(Undefined)}, nil
	case bool:
		if d {
			return node{kind: kTag, tag: Truthy, name: string(Truthy)}, nil
		}
		return node{kind: kTag, tag: Falsey, name: string(Falsey)}, nil
	case Tag:
		return parseName(string(d))
	case string:
		return parseName(d)
	case *Set:
		return node{kind: kUnion, members: d.Members()}, nil
	case reflect.Type:
		if w, ok := wrappers[d]; ok {
			return node{kind: kTag, tag: w.tag, name: w.name}, nil
		}
		if d == SequenceType {
			return node{kind: kSequence, typ: d, name: "Array"}, nil
		}
		return node{kind: kNominal, typ: d, name: typeName(d)}, nil
	}

	rv := reflect.ValueOf(typ)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		members := make([]interface{}, rv.Len())
		for i := range members {
			members[i] = rv.Index(i).Interface()
		}
		return node{kind: kUnion, members: members}, nil
	}
	return node{}, &MalformedError{Cause: NotDescriptor, Value: typ}
}

func parseName(name string) (node, error) {
	tag := Tag(name)
	if !knownTags[tag] {
		return node{}, &MalformedError{Cause: UnknownName, Value: name}
	}
	return node{kind: kTag, tag: tag, name: name}, nil
}

// typeName is the display name of a nominal type. Predeclared types such as
// int are qualified, so that they never print as the tag of the same name.
func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		if t.PkgPath() == "" {
			return "builtin." + name
		}
		return name
	}
	switch t.Kind() {
	case reflect.Ptr:
		return "*" + typeName(t.Elem())
	case reflect.Struct, reflect.Func, reflect.Interface:
		return "Anonymous"
	}
	return t.String()
}
