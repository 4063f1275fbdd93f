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
	"reflect"
)

// Set is a union written as a set: members are kept once, in insertion
// order. Only leaf descriptors are deduplicated. Unions and other values,
// such as slices, are never considered duplicates.
type Set struct {
	members []interface{}
	seen    map[interface{}]bool
}

func NewSet(members ...interface{}) *Set {
	s := &Set{
		seen: make(map[interface{}]bool),
	}
	for _, member := range members {
		s.Add(member)
	}
	return s
}

// Add adds member to the set, and returns the set.
func (s *Set) Add(member interface{}) *Set {
	if s.seen == nil {
		s.seen = make(map[interface{}]bool)
	}
	if hashable(member) {
		if s.seen[member] {
			return s
		}
		s.seen[member] = true
	}
	s.members = append(s.members, member)
	return s
}

func (s *Set) Has(member interface{}) bool {
	if s == nil {
		return false
	}
	if hashable(member) {
		return s.seen[member]
	}
	for _, m := range s.members {
		if reflect.DeepEqual(m, member) {
			return true
		}
	}
	return false
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// Members returns a copy of the members, in insertion order.
func (s *Set) Members() []interface{} {
	if s == nil {
		return nil
	}
	members := make([]interface{}, len(s.members))
	copy(members, s.members)
	return members
}

// hashable reports whether value is a descriptor leaf, safe to use as a map
// key. Anything else, comparable or not, is found by a scan.
func hashable(value interface{}) bool {
	switch value.(type) {
	case nil, Tag, string, bool, undefined, reflect.Type:
		return true
	}
	return false
}
