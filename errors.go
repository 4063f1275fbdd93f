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
)

// Sentinel errors. Every error returned by this package wraps one of them,
// and can be tested with errors.Is.
var (
	ErrMalformedDescriptor = errors.New("malformed descriptor")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrInvalidBinding      = errors.New("invalid binding")
)

// Cause tells why a descriptor is malformed.
type Cause int

const (
	// UnknownName is the cause when a string is not the name of a tag.
	UnknownName Cause = iota

	// NotDescriptor is the cause when a value is neither a tag, a type,
	// nor a union.
	NotDescriptor
)

// MalformedError reports a descriptor which is not well formed.
type MalformedError struct {
	Cause Cause
	Value interface{}
}

func (e *MalformedError) Error() string {
	switch e.Cause {
	case UnknownName:
		return fmt.Sprintf("unknown type name %q", e.Value)
	default:
		return fmt.Sprintf("not a type descriptor: %v (%T)", e.Value, e.Value)
	}
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformedDescriptor
}

// MismatchError reports a value which does not match a descriptor.
type MismatchError struct {
	// Prefix starts the message, DefaultPrefix unless specified.
	Prefix string

	// Expected is the rendered descriptor.
	Expected string

	// Actual is the rendered kind of Value.
	Actual string

	// Value is the offending value.
	Value interface{}
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %s; got %s", e.Prefix, e.Expected, e.Actual)
}

func (e *MismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// BindingError reports a Ref which cannot be bound to, read from, or
// written to its object.
type BindingError struct {
	Object   interface{}
	Property string
	Reason   string
}

func (e *BindingError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("cannot bind to %s: %s", Describe(e.Object), e.Reason)
	}
	return fmt.Sprintf("cannot bind to %s[%s]: %s", Describe(e.Object), e.Property, e.Reason)
}

func (e *BindingError) Unwrap() error {
	return ErrInvalidBinding
}
