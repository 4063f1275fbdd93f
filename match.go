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
)

// Matches reports whether value is described by typ. Union members are
// tried in order and evaluation stops at the first match, so members after
// it are never inspected. A malformed descriptor yields a *MalformedError.
func Matches(typ Descriptor, value interface{}) (bool, error) {
	n, err := parse(typ)
	if err != nil {
		return false, err
	}

	switch n.kind {
	case kTag:
		return matchTag(n.tag, value), nil
	case kUnion:
		for _, member := range n.members {
			ok, err := Matches(member, value)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case kSequence:
		return isSequence(value), nil
	case kNominal:
		return instanceOf(value, n.typ), nil
	default:
		panic(fmt.Sprintf("unknown node kind %d", n.kind))
	}
}

// MustMatch is like Matches, but panics on a malformed descriptor.
func MustMatch(typ Descriptor, value interface{}) bool {
	ok, err := Matches(typ, value)
	if err != nil {
		panic(err)
	}
	return ok
}

func matchTag(tag Tag, value interface{}) bool {
	switch tag {
	case Type:
		return IsDescriptor(value)
	case Any:
		return true
	case Falsey:
		return !truthy(value)
	case Truthy:
		return truthy(value)
	case Nullish:
		return isNullish(value)
	case NaN:
		kind, ok := numericTag(value)
		return ok && kind == NaN
	case Finite:
		return isFinite(value)
	case Int:
		kind, ok := numericTag(value)
		return ok && kind == Int
	case UInt:
		kind, ok := numericTag(value)
		if !ok || kind != Int {
			return false
		}
		f, _ := toFloat(value)
		return f >= 0
	case Undefined:
		return value == Unset
	case Null:
		return value == nil
	case String, Number, Boolean, BigInt, Symbol, Function:
		if kind, ok := primitiveTag(value); ok {
			return kind == tag
		}
		kind, ok := boxedTag(value)
		return ok && kind == tag
	case Object:
		return isObject(value)
	case Iterable:
		return iterable(value)
	default:
		panic(fmt.Sprintf("unknown tag %s", tag))
	}
}
