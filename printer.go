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
	"bytes"
)

// Stringify renders typ. Tags render as their name, wrapper types with a
// capitalized name, and nominal types as their type name, or "Anonymous"
// for unnamed structs, funcs and interfaces. Unions are flattened and
// render as <a | b | c>, keeping duplicates.
func Stringify(typ Descriptor) (string, error) {
	n, err := parse(typ)
	if err != nil {
		return "", err
	}
	if n.kind != kUnion {
		return n.name, nil
	}

	var (
		notFirst bool
		b        bytes.Buffer
	)
	b.WriteRune('<')
	err = flatten(n.members, func(member node) {
		if notFirst {
			b.WriteString(" | ")
		}
		notFirst = true
		b.WriteString(member.name)
	})
	if err != nil {
		return "", err
	}
	b.WriteRune('>')
	return b.String(), nil
}

// MustStringify is like Stringify, but panics on a malformed descriptor.
func MustStringify(typ Descriptor) string {
	s, err := Stringify(typ)
	if err != nil {
		panic(err)
	}
	return s
}

// flatten visits the leaves of a union, in order.
func flatten(members []interface{}, visit func(member node)) error {
	for _, member := range members {
		n, err := parse(member)
		if err != nil {
			return err
		}
		if n.kind == kUnion {
			if err := flatten(n.members, visit); err != nil {
				return err
			}
			continue
		}
		visit(n)
	}
	return nil
}
