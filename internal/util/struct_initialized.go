package util

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsStructInitialized returns an error naming the first nil pointer, interface,
// map or slice field of the given struct. Used by readiness probes.
func IsStructInitialized(s interface{}) error {
	v := reflect.Indirect(reflect.ValueOf(s))

	if v.Kind() != reflect.Struct {
		return errors.New("not a struct")
	}

	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)

		switch field.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if field.IsNil() {
				return errors.Errorf("field %q is not initialized", t.Field(i).Name)
			}
		default:
			// value types are always considered initialized
		}
	}

	return nil
}
