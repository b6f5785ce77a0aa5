package shared

import (
	"reflect"
	"strings"
)

// TransformFields converts the set fields of an update request into a map keyed
// by their json names. Nil pointers and zero values are treated as unset.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}

	typ := val.Type()
	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName, _, _ := strings.Cut(typ.Field(index).Tag.Get("json"), ",")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}
