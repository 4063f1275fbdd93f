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

package istesting

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/homelight/is"
)

// wrapperNames maps printed names of wrapper types back to the types.
var wrapperNames = map[string]is.Descriptor{
	"String":     is.StringType,
	"Number":     is.NumberType,
	"Boolean":    is.BooleanType,
	"BigInt":     is.BigIntType,
	"Symbol":     is.SymbolType,
	"Function":   is.FunctionType,
	"Object":     is.ObjectType,
	"Descriptor": is.DescriptorType,
	"Array":      is.SequenceType,
	"Observer":   is.ObserverType,
}

// ParseDescriptor reads a descriptor written the way is.Stringify prints
// it, e.g. `<int | null>`. Names which are neither tags nor wrapper types
// are kept as strings, and rejected when the descriptor is used.
func ParseDescriptor(input string) (is.Descriptor, error) {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "<") {
		if !strings.HasSuffix(input, ">") {
			return nil, fmt.Errorf("%s: unterminated union", input)
		}
		parts, err := splitUnion(input[1 : len(input)-1])
		if err != nil {
			return nil, fmt.Errorf("%s: %s", input, err)
		}
		members := make([]interface{}, 0, len(parts))
		for _, part := range parts {
			member, err := ParseDescriptor(part)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		}
		return members, nil
	}
	if input == "" {
		return nil, fmt.Errorf("missing descriptor")
	}
	if typ, ok := wrapperNames[input]; ok {
		return typ, nil
	}
	return is.Tag(input), nil
}

// splitUnion splits the members of a union on top level bars.
func splitUnion(input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range input {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced >")
			}
		case '|':
			if depth == 0 {
				parts = append(parts, input[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced <")
	}
	return append(parts, input[start:]), nil
}

// splitDescriptor splits a descriptor off the front of input, and returns
// the descriptor text and the remainder.
func splitDescriptor(input string) (string, string, error) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "<") {
		parts := strings.SplitN(input, " ", 2)
		if len(parts) == 1 {
			return parts[0], "", nil
		}
		return parts[0], strings.TrimSpace(parts[1]), nil
	}
	depth := 0
	for i, r := range input {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return input[:i+1], strings.TrimSpace(input[i+1:]), nil
			}
		}
	}
	return "", "", fmt.Errorf("%s: unterminated union", input)
}

// ParseLiteral reads a value written in YAML flow syntax, e.g. `3`, `"x"`,
// `[1, 2]` or `{a: 1}`. The words `undefined` and `NaN` stand for is.Unset
// and a NaN.
func ParseLiteral(input string) (interface{}, error) {
	switch strings.TrimSpace(input) {
	case "":
		return nil, fmt.Errorf("missing value")
	case "undefined":
		return is.Unset, nil
	case "NaN":
		return math.NaN(), nil
	}
	var value interface{}
	if err := yaml.Unmarshal([]byte(input), &value); err != nil {
		return nil, fmt.Errorf("unreadable value %s: %s", input, err)
	}
	return value, nil
}
