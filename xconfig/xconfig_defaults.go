package xconfig

import (
	"fmt"
	"reflect"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

func validateConfigPointer(config interface{}) (reflect.Value, error) {
	configValue := reflect.ValueOf(config)
	if configValue.Kind() != reflect.Ptr || configValue.IsNil() {
		return reflect.Value{}, fmt.Errorf("config must be a non-nil pointer")
	}

	configElem := configValue.Elem()
	if configElem.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("config must point to a struct, got %s", configElem.Kind())
	}

	return configElem, nil
}

func applyDefaultTagsRecursive(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if value := fieldType.Tag.Get("default"); value != "" && field.IsZero() {
			if err := setValueFromString(field, value); err != nil {
				return fmt.Errorf("field %s: %w", fieldType.Name, err)
			}
		}

		if field.Kind() == reflect.Struct && field.Type() != durationType {
			if err := applyDefaultTagsRecursive(field); err != nil {
				return err
			}
		}
	}

	return nil
}

// callDefaultMethodsRecursive calls Default() on every addressable struct,
// outermost first, so nested Default() methods win for their own fields.
func callDefaultMethodsRecursive(v reflect.Value) {
	if method := v.Addr().MethodByName("Default"); method.IsValid() && method.Type().NumIn() == 0 {
		method.Call(nil)
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.CanSet() && field.Kind() == reflect.Struct {
			callDefaultMethodsRecursive(field)
		}
	}
}
