package xconfig

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
)

func camelToSnake(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i < len(runes)-1 && unicode.IsLower(runes[i+1])

			if !prevUpper || nextLower {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

// envName picks the variable suffix for a field: env tag, then yaml, then
// json, then the snake_case field name.
func envName(fieldType reflect.StructField) string {
	for _, tag := range []string{"env", "yaml", "json"} {
		value := fieldType.Tag.Get(tag)
		if value != "" && value != "-" {
			return strings.Split(value, ",")[0]
		}
		if value == "-" {
			return ""
		}
	}

	return camelToSnake(fieldType.Name)
}

func loadFromEnv(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		name := envName(fieldType)
		if name == "" {
			continue
		}

		envKey := strings.ToUpper(prefix + "_" + name)

		if field.Kind() == reflect.Struct && field.Type() != durationType {
			if err := loadFromEnv(field, envKey); err != nil {
				return err
			}
			continue
		}

		envValue, ok := os.LookupEnv(envKey)
		if !ok || envValue == "" {
			continue
		}

		if err := setValueFromString(field, envValue); err != nil {
			return fmt.Errorf("%s: %w", envKey, err)
		}
	}

	return nil
}

func setValueFromString(elem reflect.Value, value string) error {
	if elem.Type() == durationType {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value %q", value)
		}
		elem.SetInt(int64(duration))
		return nil
	}

	switch elem.Kind() {
	case reflect.String:
		elem.SetString(value)
	case reflect.Bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value %q", value)
		}
		elem.SetBool(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil || elem.OverflowInt(val) {
			return fmt.Errorf("invalid integer value %q", value)
		}
		elem.SetInt(val)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil || elem.OverflowUint(val) {
			return fmt.Errorf("invalid unsigned integer value %q", value)
		}
		elem.SetUint(val)
	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		elem.SetFloat(val)
	case reflect.Slice:
		if elem.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", elem.Type())
		}
		var parts []string
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		elem.Set(reflect.ValueOf(parts).Convert(elem.Type()))
	default:
		return fmt.Errorf("unsupported type %s", elem.Kind())
	}

	return nil
}
