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
	"errors"
	"reflect"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *Zuite) TestStringify() {
	cases := []struct {
		typ      Descriptor
		expected string
	}{
		{Any, "any"},
		{"finite", "finite"},
		{Type, "type"},
		{UInt, "uint"},
		{true, "truthy"},
		{false, "falsey"},
		{nil, "null"},
		{Unset, "undefined"},
		{StringType, "String"},
		{NumberType, "Number"},
		{BooleanType, "Boolean"},
		{BigIntType, "BigInt"},
		{SymbolType, "Symbol"},
		{FunctionType, "Function"},
		{ObjectType, "Object"},
		{IterableType, "iterable"},
		{DescriptorType, "Descriptor"},
		{SequenceType, "Array"},
		{reflect.TypeOf(time.Time{}), "Time"},
		{reflect.TypeOf(&account{}), "*account"},
		{reflect.TypeOf(celsius(0)), "celsius"},
		{reflect.TypeOf(struct{}{}), "Anonymous"},
		{reflect.TypeOf(map[string]int{}), "map[string]int"},
		{reflect.TypeOf(0), "builtin.int"},
		{reflect.TypeOf(uint(0)), "builtin.uint"},
		{reflect.TypeOf((*int)(nil)), "*builtin.int"},
		{reflect.TypeOf((*error)(nil)).Elem(), "builtin.error"},
		{ObserverType, "Observer"},
		{[]interface{}{String, Null}, "<string | null>"},
		{[]interface{}{String, String}, "<string | string>"},
		{[]Tag{Int, NaN}, "<int | NaN>"},
		{[2]Descriptor{NumberType, Unset}, "<Number | undefined>"},
		{NewSet(String, String, Int), "<string | int>"},
		{[]interface{}{}, "<>"},
		{
			[]interface{}{String, []interface{}{Number, NewSet(Null, Unset)}},
			"<string | number | null | undefined>",
		},
	}
	for _, ex := range cases {
		actual, err := Stringify(ex.typ)
		if assert.NoError(s.T(), err, ex.expected) {
			assert.Equal(s.T(), ex.expected, actual)
		}
	}
}

func (s *Zuite) TestStringify_isStable() {
	for tag := range knownTags {
		printed := MustStringify(tag)
		require.Equal(s.T(), string(tag), printed)
		for _, value := range values {
			assert.Equal(s.T(), MustMatch(tag, value), MustMatch(printed, value), "%s %v", tag, value)
		}
	}
}

func (s *Zuite) TestStringify_predeclaredTypes() {
	// a nominal int must not print as, nor mean, the int tag
	for _, typ := range []reflect.Type{reflect.TypeOf(0), reflect.TypeOf(uint(0))} {
		printed := MustStringify(typ)
		require.False(s.T(), knownTags[Tag(printed)], printed)
		require.False(s.T(), IsDescriptor(printed), printed)
	}
	require.False(s.T(), MustMatch(reflect.TypeOf(0), 3.0))
	require.True(s.T(), MustMatch(Int, 3.0))
}

func (s *Zuite) TestStringify_malformed() {
	cases := []struct {
		typ      Descriptor
		cause    Cause
		expected string
	}{
		{"bogus", UnknownName, `unknown type name "bogus"`},
		{Tag("Number"), UnknownName, `unknown type name "Number"`},
		{5, NotDescriptor, `not a type descriptor: 5 (int)`},
		{map[string]int{}, NotDescriptor, `not a type descriptor: map[] (map[string]int)`},
		{[]interface{}{String, 5}, NotDescriptor, `not a type descriptor: 5 (int)`},
		{NewSet(Int, "nope"), UnknownName, `unknown type name "nope"`},
	}
	for _, ex := range cases {
		_, err := Stringify(ex.typ)
		require.Error(s.T(), err, ex.expected)
		assert.Equal(s.T(), ex.expected, err.Error())
		assert.True(s.T(), errors.Is(err, ErrMalformedDescriptor))

		var malformed *MalformedError
		require.True(s.T(), errors.As(err, &malformed))
		assert.Equal(s.T(), ex.cause, malformed.Cause)
	}
}

func (s *Zuite) TestIsDescriptor() {
	for tag := range knownTags {
		assert.True(s.T(), IsDescriptor(tag), string(tag))
		assert.True(s.T(), IsDescriptor(string(tag)), string(tag))
	}
	for typ := range wrappers {
		assert.True(s.T(), IsDescriptor(typ), typ.String())
	}

	valid := []Descriptor{
		true,
		false,
		nil,
		Unset,
		SequenceType,
		reflect.TypeOf(time.Time{}),
		reflect.TypeOf(func(int) string { return "" }),
		[]interface{}{},
		[]interface{}{Int, Null},
		[]interface{}{Int, []interface{}{String, NewSet(Unset)}},
		[]Tag{Int, String},
		NewSet(),
		NewSet(Int, reflect.TypeOf(account{})),
	}
	for _, typ := range valid {
		assert.True(s.T(), IsDescriptor(typ), "%v", typ)
	}

	invalid := []interface{}{
		5,
		3.5,
		"bogus",
		"",
		account{},
		&account{},
		map[string]int{},
		noop,
		[]int{1},
		[]interface{}{Int, 5},
		[]interface{}{Int, []interface{}{"bogus"}},
		NewSet(Int, 5),
	}
	for _, value := range invalid {
		assert.False(s.T(), IsDescriptor(value), "%v", value)
	}
}
