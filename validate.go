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

// IsDescriptor reports whether value is a well-formed descriptor. Any
// reflect.Type is accepted as a nominal type.
func IsDescriptor(value interface{}) bool {
	return validate(value) == nil
}

// validate returns the first malformed part of typ, walking unions depth
// first.
func validate(typ Descriptor) error {
	n, err := parse(typ)
	if err != nil {
		return err
	}
	if n.kind == kUnion {
		for _, member := range n.members {
			if err := validate(member); err != nil {
				return err
			}
		}
	}
	return nil
}
