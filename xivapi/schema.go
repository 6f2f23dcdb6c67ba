package xivapi

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Decode parses a response body into dest. Malformed JSON is a *ParseError.
// A missing or null required field, or a value that does not fit the
// destination type, is a *SchemaMismatchError. Unknown fields are ignored.
func Decode(data []byte, dest any) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("xivapi: decode destination must be a non-nil pointer, got %T", dest)
	}

	raw, err := parseRaw(data)
	if err != nil {
		return &ParseError{Err: err}
	}

	if err := checkValue(rv.Type().Elem(), raw, ""); err != nil {
		return err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &SchemaMismatchError{Path: typeErr.Field, Reason: typeErr.Error()}
		}
		return &ParseError{Err: err}
	}
	return nil
}

// Encode serializes a model back to its wire form. Nil required slices and
// maps are written as [] and {} so that Decode accepts the result; nil
// pointers are written as null. v itself is not modified.
func Encode(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return json.Marshal(v)
	}
	return json.Marshal(withEmptyCollections(rv).Interface())
}

// withEmptyCollections returns a copy of v in which every nil slice or map
// reachable through structs, non-nil pointers and elements is replaced by an
// empty one.
func withEmptyCollections(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(withEmptyCollections(v.Elem()))
		return out

	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			out.Field(i).Set(withEmptyCollections(v.Field(i)))
		}
		return out

	case reflect.Slice:
		if v.IsNil() {
			return reflect.MakeSlice(v.Type(), 0, 0)
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(withEmptyCollections(v.Index(i)))
		}
		return out

	case reflect.Map:
		if v.IsNil() {
			return reflect.MakeMap(v.Type())
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), withEmptyCollections(iter.Value()))
		}
		return out
	}
	return v
}

func parseRaw(data []byte) (any, error) {
	if !json.Valid(data) {
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return nil, errors.New("invalid JSON document")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// checkValue validates raw against t. raw is never nil here: callers handle
// absence and null before descending.
func checkValue(t reflect.Type, raw any, path string) error {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := raw.(map[string]any)
		if !ok {
			return mismatch(path, "expected object, got %s", jsonKind(raw))
		}
		return checkStruct(t, obj, path)

	case reflect.Slice:
		arr, ok := raw.([]any)
		if !ok {
			return mismatch(path, "expected array, got %s", jsonKind(raw))
		}
		for i, elem := range arr {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			if elem == nil {
				if t.Elem().Kind() == reflect.Pointer {
					continue
				}
				return mismatch(elemPath, "null element")
			}
			if err := checkValue(t.Elem(), elem, elemPath); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		obj, ok := raw.(map[string]any)
		if !ok {
			return mismatch(path, "expected object, got %s", jsonKind(raw))
		}
		for key, elem := range obj {
			elemPath := fmt.Sprintf("%s[%s]", path, key)
			if err := checkMapKey(t.Key(), key, elemPath); err != nil {
				return err
			}
			if elem == nil {
				if t.Elem().Kind() == reflect.Pointer {
					continue
				}
				return mismatch(elemPath, "null value")
			}
			if err := checkValue(t.Elem(), elem, elemPath); err != nil {
				return err
			}
		}
		return nil

	case reflect.String:
		if _, ok := raw.(string); !ok {
			return mismatch(path, "expected string, got %s", jsonKind(raw))
		}
		return nil

	case reflect.Bool:
		if _, ok := raw.(bool); !ok {
			return mismatch(path, "expected boolean, got %s", jsonKind(raw))
		}
		return nil

	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		num, ok := raw.(json.Number)
		if !ok {
			return mismatch(path, "expected number, got %s", jsonKind(raw))
		}
		return checkUint(t, string(num), path)

	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		num, ok := raw.(json.Number)
		if !ok {
			return mismatch(path, "expected number, got %s", jsonKind(raw))
		}
		if _, err := strconv.ParseInt(string(num), 10, t.Bits()); err != nil {
			return mismatch(path, "%s does not fit %s", num, t.Kind())
		}
		return nil

	case reflect.Float32, reflect.Float64:
		if _, ok := raw.(json.Number); !ok {
			return mismatch(path, "expected number, got %s", jsonKind(raw))
		}
		return nil

	case reflect.Interface:
		return nil
	}

	return mismatch(path, "unsupported field type %s", t)
}

func checkStruct(t reflect.Type, obj map[string]any, path string) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, ok := wireName(field)
		if !ok {
			continue
		}

		fieldPath := name
		if path != "" {
			fieldPath = path + "." + name
		}

		value, present := obj[name]
		if !present || value == nil {
			if field.Type.Kind() == reflect.Pointer {
				continue
			}
			if !present {
				return mismatch(fieldPath, "required field is missing")
			}
			return mismatch(fieldPath, "required field is null")
		}

		if err := checkValue(field.Type, value, fieldPath); err != nil {
			return err
		}
	}
	return nil
}

// wireName returns the json tag name of field. Fields tagged "-" are skipped.
func wireName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, true
}

func checkUint(t reflect.Type, num, path string) error {
	v, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return mismatch(path, "%s is not an unsigned integer", num)
	}
	if limit := uintMax(t.Bits()); v > limit {
		return mismatch(path, "%s overflows %s", num, t.Kind())
	}
	return nil
}

func checkMapKey(t reflect.Type, key, path string) error {
	switch t.Kind() {
	case reflect.String:
		return nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		if err := checkUint(t, key, path); err != nil {
			return mismatch(path, "map key %q is not a valid %s", key, t.Kind())
		}
		return nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		if _, err := strconv.ParseInt(key, 10, t.Bits()); err != nil {
			return mismatch(path, "map key %q is not a valid %s", key, t.Kind())
		}
		return nil
	}
	return mismatch(path, "unsupported map key type %s", t)
}

func uintMax(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(bits) - 1
}

func jsonKind(raw any) string {
	switch raw.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", raw)
}

func mismatch(path, format string, args ...any) *SchemaMismatchError {
	return &SchemaMismatchError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
