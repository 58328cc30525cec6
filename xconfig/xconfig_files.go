package xconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type codec struct {
	tag       string
	unmarshal func([]byte, interface{}) error
	marshal   func(interface{}) ([]byte, error)
}

var (
	jsonCodec = codec{tag: "json", unmarshal: json.Unmarshal, marshal: json.Marshal}
	tomlCodec = codec{tag: "toml", unmarshal: toml.Unmarshal, marshal: toml.Marshal}
)

func loadFromFile(config interface{}, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return unmarshalWithDurations(data, config, jsonCodec)
	case ".toml":
		return unmarshalWithDurations(data, config, tomlCodec)
	case ".yaml", ".yml":
		// yaml.v3 decodes duration strings natively.
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported file extension %s for file %s", ext, filename)
	}
}

// unmarshalWithDurations rewrites duration strings such as "5s" into
// nanosecond integers before decoding, for formats that lack native support.
func unmarshalWithDurations(data []byte, config interface{}, c codec) error {
	var rawData map[string]interface{}
	if err := c.unmarshal(data, &rawData); err != nil {
		return err
	}

	if err := processDurationFields(rawData, reflect.ValueOf(config).Elem(), c.tag); err != nil {
		return err
	}

	processedData, err := c.marshal(rawData)
	if err != nil {
		return fmt.Errorf("failed to marshal processed data: %w", err)
	}

	return c.unmarshal(processedData, config)
}

func processDurationFields(data map[string]interface{}, configValue reflect.Value, tag string) error {
	configType := configValue.Type()

	for i := 0; i < configValue.NumField(); i++ {
		field := configValue.Field(i)
		fieldType := configType.Field(i)

		if !fieldType.IsExported() {
			continue
		}

		name := tagName(fieldType, tag)
		if name == "" || name == "-" {
			continue
		}

		fieldData, exists := data[name]
		if !exists {
			continue
		}

		switch {
		case field.Type() == durationType:
			if strVal, ok := fieldData.(string); ok {
				duration, err := time.ParseDuration(strVal)
				if err != nil {
					return fmt.Errorf("invalid duration value %q for field %s: %w", strVal, fieldType.Name, err)
				}
				data[name] = int64(duration)
			}
		case field.Kind() == reflect.Struct:
			if nested, ok := fieldData.(map[string]interface{}); ok {
				if err := processDurationFields(nested, field, tag); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func tagName(fieldType reflect.StructField, tag string) string {
	if value := fieldType.Tag.Get(tag); value != "" {
		return strings.Split(value, ",")[0]
	}
	return fieldType.Name
}
