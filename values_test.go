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
	"math/big"
	"reflect"
	"time"

	"github.com/stretchr/testify/assert"
)

func (s *Zuite) TestClassify() {
	now := time.Now()
	cases := []struct {
		value    interface{}
		expected Descriptor
	}{
		{nil, Null},
		{Unset, Undefined},
		{"x", String},
		{3, Number},
		{uint8(3), Number},
		{3.5, Number},
		{nan, Number},
		{true, Boolean},
		{big.NewInt(3), BigInt},
		{token, Symbol},
		{noop, Function},
		{Observer(nil), Function},
		{&account{}, reflect.TypeOf(&account{})},
		{account{}, reflect.TypeOf(account{})},
		{celsius(3), reflect.TypeOf(celsius(0))},
		{now, reflect.TypeOf(now)},
		{[]int{}, reflect.TypeOf([]int{})},
	}
	for _, ex := range cases {
		assert.Equal(s.T(), ex.expected, Classify(ex.value), "%v", ex.value)
	}
}

func (s *Zuite) TestClassify_isMatched() {
	for _, value := range values {
		ok, err := Matches(Classify(value), value)
		if assert.NoError(s.T(), err) {
			assert.True(s.T(), ok, "%v", value)
		}
	}
}

func (s *Zuite) TestDescribe() {
	cases := []struct {
		value    interface{}
		expected string
	}{
		{nan, "NaN"},
		{3, "int"},
		{3.0, "int"},
		{-0.0, "int"},
		{3.5, "number"},
		{inf, "number"},
		{float32(1.5), "number"},
		{uint64(1 << 60), "int"},
		{"x", "string"},
		{true, "boolean"},
		{nil, "null"},
		{Unset, "undefined"},
		{big.NewInt(3), "bigint"},
		{token, "symbol"},
		{noop, "function"},
		{&account{}, "*account"},
		{celsius(1), "celsius"},
		{[]int{}, "[]int"},
		{struct{}{}, "Anonymous"},
	}
	for _, ex := range cases {
		assert.Equal(s.T(), ex.expected, Describe(ex.value), "%v", ex.value)
	}
}

func (s *Zuite) TestTruthy() {
	falsey := []interface{}{
		nil,
		Unset,
		false,
		0,
		uint(0),
		0.0,
		nan,
		"",
		big.NewInt(0),
		(*big.Int)(nil),
		celsius(0),
		nickname(""),
	}
	for _, value := range falsey {
		assert.False(s.T(), truthy(value), "%v", value)
	}

	truthies := []interface{}{
		true,
		1,
		-1,
		0.5,
		inf,
		"0",
		big.NewInt(-1),
		token,
		noop,
		[]int{},
		map[string]int{},
		account{},
		celsius(-1),
	}
	for _, value := range truthies {
		assert.True(s.T(), truthy(value), "%v", value)
	}
}

func (s *Zuite) TestToken() {
	a, b := NewToken("a"), NewToken("a")
	assert.NotSame(s.T(), a, b)
	assert.Equal(s.T(), "a", a.Name())
	assert.Equal(s.T(), "Symbol(a)", a.String())
	assert.Equal(s.T(), "undefined", Unset.String())
}
