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
	"reflect"
)

// getProperty reads the property key of object. Missing properties read as
// Unset.
func getProperty(object interface{}, key string) (interface{}, error) {
	if props, ok := object.(Properties); ok {
		value, ok := props.Property(key)
		if !ok {
			return Unset, nil
		}
		return value, nil
	}

	rv := reflect.ValueOf(object)
	switch rv.Kind() {
	case reflect.Map:
		k, err := mapKey(object, rv, key)
		if err != nil {
			return nil, err
		}
		value := rv.MapIndex(k)
		if !value.IsValid() {
			return Unset, nil
		}
		return value.Interface(), nil
	case reflect.Ptr:
		if rv.IsNil() {
			return nil, &BindingError{object, key, "nil pointer"}
		}
		if rv.Elem().Kind() != reflect.Struct {
			return Unset, nil
		}
		rv = rv.Elem()
		fallthrough
	case reflect.Struct:
		field, ok := rv.Type().FieldByName(key)
		if !ok {
			return Unset, nil
		}
		if field.PkgPath != "" {
			return nil, &BindingError{object, key, "unexported field"}
		}
		fv, err := rv.FieldByIndexErr(field.Index)
		if err != nil {
			return nil, &BindingError{object, key, "nil embedded pointer"}
		}
		return fv.Interface(), nil
	default:
		return Unset, nil
	}
}

// setProperty writes the property key of object. Writing Unset removes the
// property, or zeroes it when it cannot be removed.
func setProperty(object interface{}, key string, value interface{}) error {
	if props, ok := object.(Properties); ok {
		return props.SetProperty(key, value)
	}

	rv := reflect.ValueOf(object)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return &BindingError{object, key, "nil map"}
		}
		k, err := mapKey(object, rv, key)
		if err != nil {
			return err
		}
		if value == Unset {
			rv.SetMapIndex(k, reflect.Value{})
			return nil
		}
		v, err := assignable(object, key, value, rv.Type().Elem())
		if err != nil {
			return err
		}
		rv.SetMapIndex(k, v)
		return nil
	case reflect.Ptr:
		if rv.IsNil() {
			return &BindingError{object, key, "nil pointer"}
		}
		if rv.Elem().Kind() != reflect.Struct {
			return &BindingError{object, key, "no such property"}
		}
		sv := rv.Elem()
		field, ok := sv.Type().FieldByName(key)
		if !ok {
			return &BindingError{object, key, "no such field"}
		}
		if field.PkgPath != "" {
			return &BindingError{object, key, "unexported field"}
		}
		// promoted fields cannot be reached through a nil embedded pointer
		fv, err := sv.FieldByIndexErr(field.Index)
		if err != nil {
			return &BindingError{object, key, "nil embedded pointer"}
		}
		if value == Unset {
			fv.Set(reflect.Zero(field.Type))
			return nil
		}
		v, err := assignable(object, key, value, field.Type)
		if err != nil {
			return err
		}
		fv.Set(v)
		return nil
	case reflect.Struct:
		return &BindingError{object, key, "struct is not addressable, bind to a pointer"}
	default:
		return &BindingError{object, key, "no such property"}
	}
}

func mapKey(object interface{}, rv reflect.Value, key string) (reflect.Value, error) {
	var (
		keyType = rv.Type().Key()
		k       = reflect.ValueOf(key)
	)
	switch {
	case k.Type().AssignableTo(keyType):
		return k, nil
	case keyType.Kind() == reflect.String:
		return k.Convert(keyType), nil
	}
	return reflect.Value{}, &BindingError{object, key, fmt.Sprintf("map keys are %s", keyType)}
}

func assignable(object interface{}, key string, value interface{}, typ reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch typ.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(typ), nil
		}
	} else if rv := reflect.ValueOf(value); rv.Type().AssignableTo(typ) {
		return rv, nil
	}
	return reflect.Value{}, &BindingError{object, key, fmt.Sprintf("cannot hold %s", Describe(value))}
}
