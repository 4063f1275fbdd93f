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

// DefaultPrefix starts the message of mismatches reported by Assert.
const DefaultPrefix = "Expected a value that is"

// Assert returns value as is when it matches typ, and a *MismatchError
// otherwise. The descriptor is checked first, and a malformed descriptor
// yields a *MalformedError even if value would have matched.
func Assert(typ Descriptor, value interface{}) (interface{}, error) {
	return AssertPrefix(DefaultPrefix, typ, value)
}

// AssertPrefix is like Assert, with prefix starting mismatch messages.
func AssertPrefix(prefix string, typ Descriptor, value interface{}) (interface{}, error) {
	if err := validate(typ); err != nil {
		return nil, err
	}
	ok, err := Matches(typ, value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, mismatch(prefix, typ, value)
	}
	return value, nil
}

// MustAssert is like Assert, but panics instead of returning an error.
func MustAssert(typ Descriptor, value interface{}) interface{} {
	value, err := Assert(typ, value)
	if err != nil {
		panic(err)
	}
	return value
}

func mismatch(prefix string, typ Descriptor, value interface{}) *MismatchError {
	return &MismatchError{
		Prefix:   prefix,
		Expected: MustStringify(typ),
		Actual:   Describe(value),
		Value:    value,
	}
}
