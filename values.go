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

package is

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
)

// Unset is the undefined value, returned when reading a property which is
// not present. It is distinct from nil, the null value.
var Unset = undefined{}

type undefined struct{}

func (undefined) String() string {
	return "undefined"
}

// Token is a unique token, the symbol primitive. Tokens are compared by
// identity; two tokens with the same name are different.
type Token struct {
	name string
}

func NewToken(name string) *Token {
	return &Token{name}
}

func (t *Token) Name() string {
	return t.name
}

func (t *Token) String() string {
	return fmt.Sprintf("Symbol(%s)", t.name)
}

// Iterator is implemented by values exposing their own traversal. Values
// implementing it match Iterable, as do arrays, slices, maps, strings and
// channels.
type Iterator interface {
	// Iterate calls yield for each element, until yield returns false.
	Iterate(yield func(element interface{}) bool)
}

// Properties is implemented by objects which manage their own properties,
// and is preferred over reflection when a Ref reads or writes.
type Properties interface {
	// Property returns the value of the property key, and whether it is
	// present.
	Property(key string) (interface{}, bool)

	// SetProperty sets the property key to value.
	SetProperty(key string, value interface{}) error
}

// primitiveTag returns the primitive kind of value, if value is a
// primitive. Only builtin types are primitives; a named type such as
// `type Celsius float64` is an object.
func primitiveTag(value interface{}) (Tag, bool) {
	switch value.(type) {
	case nil:
		return Null, true
	case undefined:
		return Undefined, true
	case string:
		return String, true
	case bool:
		return Boolean, true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return Number, true
	case *big.Int:
		return BigInt, true
	case *Token:
		return Symbol, true
	}
	if reflect.TypeOf(value).Kind() == reflect.Func {
		return Function, true
	}
	return "", false
}

// boxedTag returns the primitive kind underlying a named basic type.
func boxedTag(value interface{}) (Tag, bool) {
	if value == nil {
		return "", false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.String:
		return String, true
	case reflect.Bool:
		return Boolean, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number, true
	}
	return "", false
}

func isNullish(value interface{}) bool {
	return value == nil || value == Unset
}

// isObject reports whether value is an object. Functions are objects.
func isObject(value interface{}) bool {
	tag, ok := primitiveTag(value)
	return !ok || tag == Function
}

// toFloat converts a primitive number to a float64.
func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int, int8, int16, int32, int64:
		return float64(reflect.ValueOf(v).Int()), true
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return float64(reflect.ValueOf(v).Uint()), true
	}
	return 0, false
}

// numericTag refines a primitive number into NaN, Int or Number. Infinite
// values are Number.
func numericTag(value interface{}) (Tag, bool) {
	f, ok := toFloat(value)
	switch {
	case !ok:
		return "", false
	case math.IsNaN(f):
		return NaN, true
	case !math.IsInf(f, 0) && f == math.Trunc(f):
		return Int, true
	default:
		return Number, true
	}
}

func isFinite(value interface{}) bool {
	f, ok := toFloat(value)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil, undefined:
		return false
	case *big.Int:
		return v != nil && v.Sign() != 0
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() != 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

func iterable(value interface{}) bool {
	if isNullish(value) {
		return false
	}
	if _, ok := value.(Iterator); ok {
		return true
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Array, reflect.Slice, reflect.Map, reflect.String, reflect.Chan:
		return true
	}
	return false
}

// isSequence reports whether value is a slice or an array, whatever its
// element type.
func isSequence(value interface{}) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Array, reflect.Slice:
		return true
	}
	return false
}

func instanceOf(value interface{}, typ reflect.Type) bool {
	if value == nil {
		return false
	}
	return reflect.TypeOf(value).AssignableTo(typ)
}

// Classify returns the most specific descriptor of value: nil is Null,
// Unset is Undefined, primitives map to their kind, and every other value
// to its own type.
func Classify(value interface{}) Descriptor {
	if tag, ok := primitiveTag(value); ok {
		return tag
	}
	return reflect.TypeOf(value)
}

// Describe returns a display name for the kind of value. Numbers are
// further distinguished as "NaN", "int" or "number".
func Describe(value interface{}) string {
	kind := Classify(value)
	if kind == Number {
		tag, _ := numericTag(value)
		return string(tag)
	}
	name, err := Stringify(kind)
	if err != nil {
		panic(fmt.Sprintf("unexpected %s", err))
	}
	return name
}
