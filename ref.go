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
	"encoding/json"
	"fmt"
	"reflect"
)

// Ref is a type checked reference to a property of an object. The property
// is checked against the ref's descriptor on every read and every write,
// and observers are notified of every successful write.
//
// A Ref does not copy its object, nor does it synchronize access to it: it
// must not be used concurrently with other writers of the object.
type Ref struct {
	// typ holds the descriptor, validated at construction
	typ Descriptor

	// object holds the bound object
	object interface{}

	property  string
	observers []Observer
}

// Observer is called with the new value after each successful write. An
// error stops the notification of subsequent observers, and is returned to
// the writer.
type Observer func(value interface{}) error

// ObserverType is the type of observers.
var ObserverType = reflect.TypeOf(Observer(nil))

// NewRef creates a reference to the property of object, checked against
// typ. The property itself is not checked until read.
func NewRef(typ Descriptor, object interface{}, property string) (*Ref, error) {
	if err := validate(typ); err != nil {
		return nil, err
	}
	ref := &Ref{
		typ:      typ,
		property: property,
	}
	if err := ref.SetObject(object); err != nil {
		return nil, err
	}
	return ref, nil
}

func MustNewRef(typ Descriptor, object interface{}, property string) *Ref {
	ref, err := NewRef(typ, object, property)
	if err != nil {
		panic(err)
	}
	return ref
}

// Optional returns object when it is already a *Ref, and nil when object is
// nil or Unset. Otherwise, it creates a new reference as NewRef does.
func Optional(typ Descriptor, object interface{}, property string) (*Ref, error) {
	if ref, ok := object.(*Ref); ok {
		// TODO: check that the descriptor of ref is compatible with typ,
		// the existing ref is currently returned whatever its descriptor.
		return ref, nil
	}
	if isNullish(object) {
		return nil, nil
	}
	return NewRef(typ, object, property)
}

func (ref *Ref) Type() Descriptor {
	return ref.typ
}

func (ref *Ref) Object() interface{} {
	return ref.object
}

// SetObject binds the reference to object, which must be an object rather
// than a primitive. The property is not checked until the next read.
func (ref *Ref) SetObject(object interface{}) error {
	if !isObject(object) {
		return &BindingError{
			Object: object,
			Reason: fmt.Sprintf("%s: %s; got %s", DefaultPrefix, Object, Describe(object)),
		}
	}
	ref.object = object
	return nil
}

func (ref *Ref) Property() string {
	return ref.property
}

// value returns the current value of the property, unchecked.
func (ref *Ref) value() (interface{}, error) {
	return getProperty(ref.object, ref.property)
}

// Get returns the current value of the property, failing with a
// *MismatchError if it does not match the descriptor.
func (ref *Ref) Get() (interface{}, error) {
	value, err := ref.value()
	if err != nil {
		return nil, err
	}
	return Assert(ref.typ, value)
}

func (ref *Ref) MustGet() interface{} {
	value, err := ref.Get()
	if err != nil {
		panic(err)
	}
	return value
}

// Set writes value to the property, then notifies observers in the order
// they were registered. When value does not match the descriptor, the
// property is left untouched and no observer is notified.
func (ref *Ref) Set(value interface{}) error {
	if _, err := Assert(ref.typ, value); err != nil {
		return err
	}
	if err := setProperty(ref.object, ref.property, value); err != nil {
		return err
	}
	for _, observer := range ref.observers {
		if err := observer(value); err != nil {
			return err
		}
	}
	return nil
}

// Is reports whether the current value of the property, unchecked against
// the ref's own descriptor, matches typ. Multiple descriptors are matched
// as a union.
func (ref *Ref) Is(typ ...Descriptor) (bool, error) {
	value, err := ref.value()
	if err != nil {
		return false, err
	}
	return Matches(union(typ), value)
}

// Assert is like Is, but returns the current value or a *MismatchError.
func (ref *Ref) Assert(typ ...Descriptor) (interface{}, error) {
	value, err := ref.value()
	if err != nil {
		return nil, err
	}
	return Assert(union(typ), value)
}

// Observe registers callback, which must be a non-nil Observer, and returns
// the reference. Observers cannot be removed.
func (ref *Ref) Observe(callback interface{}) (*Ref, error) {
	if _, err := Assert(ObserverType, callback); err != nil {
		return nil, err
	}
	if reflect.ValueOf(callback).IsNil() {
		return nil, mismatch(DefaultPrefix, ObserverType, callback)
	}
	var observer Observer
	switch fn := callback.(type) {
	case Observer:
		observer = fn
	case func(interface{}) error:
		observer = fn
	default:
		panic(fmt.Sprintf("unexpected observer %T", callback))
	}
	ref.observers = append(ref.observers, observer)
	return ref, nil
}

// String renders the reference as *type[property] = value.
func (ref *Ref) String() string {
	var rendered string
	if value, err := ref.value(); err != nil {
		rendered = fmt.Sprintf("<%s>", err)
	} else {
		rendered = render(value)
	}
	return fmt.Sprintf("*%s[%s] = %s", MustStringify(ref.typ), ref.property, rendered)
}

func union(typ []Descriptor) Descriptor {
	if len(typ) == 1 {
		return typ[0]
	}
	members := make([]interface{}, len(typ))
	for i := range typ {
		members[i] = typ[i]
	}
	return members
}

// render prefers the JSON form of values implementing json.Marshaler.
func render(value interface{}) string {
	if value == nil {
		return "null"
	}
	if m, ok := value.(json.Marshaler); ok {
		if b, err := m.MarshalJSON(); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(value)
}
