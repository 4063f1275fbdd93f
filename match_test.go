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
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *Zuite) TestMatches() {
	stringer := reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	cases := []struct {
		typ      Descriptor
		value    interface{}
		expected bool
	}{
		// primitive kinds, and their wrapper types
		{String, "x", true},
		{String, nickname("alice"), true},
		{String, 5, false},
		{StringType, "x", true},
		{StringType, nickname("alice"), true},
		{Number, 3, true},
		{Number, 3.5, true},
		{Number, nan, true},
		{Number, celsius(1), true},
		{Number, "3", false},
		{Number, big.NewInt(3), false},
		{NumberType, uint16(3), true},
		{NumberType, "3", false},
		{Boolean, false, true},
		{Boolean, 0, false},
		{BooleanType, true, true},
		{BigInt, big.NewInt(1), true},
		{BigInt, 1, false},
		{BigIntType, big.NewInt(1), true},
		{Symbol, token, true},
		{Symbol, "token", false},
		{SymbolType, token, true},
		{Function, noop, true},
		{Function, Observer(nil), true},
		{Function, "noop", false},
		{FunctionType, func(int) {}, true},

		// objects
		{Object, &account{}, true},
		{Object, []int{}, true},
		{Object, celsius(1), true},
		{Object, noop, true},
		{Object, nil, false},
		{Object, Unset, false},
		{Object, "x", false},
		{Object, 3, false},
		{ObjectType, map[string]int{}, true},
		{ObjectType, 3, false},

		// refined numbers
		{NaN, nan, true},
		{NaN, 3, false},
		{NaN, "NaN", false},
		{Finite, 3, true},
		{Finite, 3.5, true},
		{Finite, inf, false},
		{Finite, nan, false},
		{Finite, "3", false},
		{Int, 3, true},
		{Int, 3.0, true},
		{Int, -3, true},
		{Int, 3.5, false},
		{Int, nan, false},
		{Int, inf, false},
		{Int, celsius(3), false},
		{UInt, 3, true},
		{UInt, 0, true},
		{UInt, uint8(7), true},
		{UInt, -3, false},
		{UInt, 2.5, false},

		// undefined and null
		{Undefined, Unset, true},
		{Undefined, nil, false},
		{Unset, Unset, true},
		{Unset, nil, false},
		{Null, nil, true},
		{Null, Unset, false},
		{nil, nil, true},
		{nil, 0, false},
		{Nullish, nil, true},
		{Nullish, Unset, true},
		{Nullish, 0, false},
		{Nullish, "", false},
		{Nullish, false, false},

		// truthiness
		{Truthy, 1, true},
		{Truthy, "x", true},
		{Truthy, []int{}, true},
		{Truthy, 0, false},
		{Truthy, nil, false},
		{Falsey, "", true},
		{Falsey, nan, true},
		{Falsey, Unset, true},
		{Falsey, 1, false},
		{true, 1, true},
		{true, 0, false},
		{false, 0, true},
		{false, 1, false},

		// iterables
		{Iterable, "abc", true},
		{Iterable, []int{}, true},
		{Iterable, [2]int{}, true},
		{Iterable, map[string]int{}, true},
		{Iterable, make(chan int), true},
		{Iterable, countdown(2), true},
		{Iterable, 3, false},
		{Iterable, nil, false},
		{Iterable, Unset, false},
		{Iterable, &account{}, false},
		{IterableType, countdown(2), true},
		{IterableType, 3, false},

		// descriptors
		{Type, String, true},
		{Type, "number", true},
		{Type, []interface{}{Int, Null}, true},
		{Type, reflect.TypeOf(0), true},
		{Type, nil, true},
		{Type, 5, false},
		{Type, "bogus", false},
		{Type, []interface{}{Int, 5}, false},
		{DescriptorType, Int, true},
		{DescriptorType, 5, false},

		// sequences
		{SequenceType, []int{}, true},
		{SequenceType, [2]string{}, true},
		{SequenceType, []interface{}{}, true},
		{SequenceType, "abc", false},
		{SequenceType, map[string]int{}, false},
		{SequenceType, nil, false},

		// nominal types
		{reflect.TypeOf(account{}), account{}, true},
		{reflect.TypeOf(account{}), &account{}, false},
		{reflect.TypeOf(&account{}), &account{}, true},
		{reflect.TypeOf(time.Time{}), time.Now(), true},
		{reflect.TypeOf(celsius(0)), celsius(3), true},
		{reflect.TypeOf(celsius(0)), 3.0, false},
		{reflect.TypeOf([]int{}), []int{}, true},
		{reflect.TypeOf([]int{}), []string{}, false},
		{stringer, token, true},
		{stringer, Unset, true},
		{stringer, 3, false},
		{stringer, nil, false},

		// unions
		{[]interface{}{Int, Null}, 3, true},
		{[]interface{}{Int, Null}, nil, true},
		{[]interface{}{Int, Null}, "x", false},
		{[]Tag{String, Int}, 3, true},
		{NewSet(Null, Int), nil, true},
		{NewSet(Null, Int), 3.5, false},
		{[]interface{}{Int, []interface{}{String, Null}}, nil, true},
		{[]interface{}{}, 3, false},
		{[]interface{}{String, "bogus"}, "x", true},
	}
	for _, ex := range cases {
		actual, err := Matches(ex.typ, ex.value)
		if assert.NoError(s.T(), err, "%v %v", ex.typ, ex.value) {
			assert.Equal(s.T(), ex.expected, actual, "%v %v", ex.typ, ex.value)
		}
	}
}

func (s *Zuite) TestMatches_any() {
	for _, value := range values {
		assert.True(s.T(), MustMatch(Any, value), "%v", value)
	}
}

func (s *Zuite) TestMatches_nullish() {
	for _, value := range values {
		expected := value == nil || value == Unset
		assert.Equal(s.T(), expected, MustMatch(Nullish, value), "%v", value)
	}
}

func (s *Zuite) TestMatches_unionIsDisjunction() {
	typs := []Descriptor{
		String,
		Int,
		Null,
		Truthy,
		Iterable,
		reflect.TypeOf(&account{}),
		[]interface{}{NaN, Unset},
	}
	for _, d1 := range typs {
		for _, d2 := range typs {
			for _, value := range values {
				expected := MustMatch(d1, value) || MustMatch(d2, value)
				actual := MustMatch([]interface{}{d1, d2}, value)
				assert.Equal(s.T(), expected, actual, "%v %v %v", d1, d2, value)
			}
		}
	}
}

func (s *Zuite) TestMatches_malformed() {
	cases := []struct {
		typ   Descriptor
		value interface{}
		cause Cause
	}{
		{"bogus", 1, UnknownName},
		{Tag("nope"), 1, UnknownName},
		{5, 1, NotDescriptor},
		{&account{}, 1, NotDescriptor},
		{[]interface{}{String, "bogus"}, 3, UnknownName},
		{[]interface{}{String, 5}, 3, NotDescriptor},
	}
	for _, ex := range cases {
		_, err := Matches(ex.typ, ex.value)
		require.Error(s.T(), err)
		assert.True(s.T(), errors.Is(err, ErrMalformedDescriptor))

		var malformed *MalformedError
		require.True(s.T(), errors.As(err, &malformed))
		assert.Equal(s.T(), ex.cause, malformed.Cause)
	}

	require.Panics(s.T(), func() {
		MustMatch("bogus", 1)
	})
}
