// Package params provides small helpers to read loosely typed
// parameter maps (as decoded from YAML) and to copy set values onto
// option structs.
package params

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrMissing is returned if a required parameter is absent or nil.
	ErrMissing = errors.New("params: missing value")

	// ErrType is returned if a parameter has an unexpected type.
	ErrType = errors.New("params: wrong type")

	// ErrNilTarget is returned by SetNonZero for a nil destination.
	ErrNilTarget = errors.New("params: nil target")
)

// Get returns the value stored under key in m. It fails with ErrMissing
// if the key is absent or its value is nil and with ErrType if the
// value is not a T.
func Get[T any](m map[string]any, key string) (T, error) {
	var zero T
	v, ok := m[key]
	if !ok || v == nil {
		return zero, fmt.Errorf("%w: %q", ErrMissing, key)
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, want %T", ErrType, key, v, zero)
	}
	return t, nil
}

// Lookup works like Get but returns def if key is absent or nil.
func Lookup[T any](m map[string]any, key string, def T) (T, error) {
	if v, ok := m[key]; !ok || v == nil {
		return def, nil
	}
	return Get[T](m, key)
}

// Float returns the numeric value stored under key. All Go integer and
// float types are accepted.
func Float(m map[string]any, key string) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %q", ErrMissing, key)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	}
	return 0, fmt.Errorf("%w: %q is %T, want a number", ErrType, key, v)
}

// LookupFloat is like Float but returns def if key is absent or nil.
func LookupFloat(m map[string]any, key string, def float64) (float64, error) {
	if v, ok := m[key]; !ok || v == nil {
		return def, nil
	}
	return Float(m, key)
}

// SetNonZero sets the exported fields of the struct dst points to from
// values. Nil and zero values are skipped so that only explicitly set
// values override what is already in dst. Keys match field names
// ignoring case and underscores, so "font_size" sets FontSize.
func SetNonZero(dst any, values map[string]any) error {
	if dst == nil {
		return ErrNilTarget
	}
	ptr := reflect.ValueOf(dst)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return ErrNilTarget
	}
	target := ptr.Elem()
	if target.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T is not a pointer to a struct", ErrType, dst)
	}

	for name, v := range values {
		if v == nil {
			continue
		}
		val := reflect.ValueOf(v)
		if val.IsZero() {
			continue
		}
		key := strings.ReplaceAll(name, "_", "")
		field := target.FieldByNameFunc(func(f string) bool {
			return strings.EqualFold(f, key)
		})
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("params: %T has no settable field %q", dst, name)
		}
		if !val.Type().AssignableTo(field.Type()) {
			if !convertible(val, field) {
				return fmt.Errorf("%w: field %q is %s, got %T",
					ErrType, name, field.Type(), v)
			}
			val = val.Convert(field.Type())
		}
		field.Set(val)
	}
	return nil
}

// convertible reports whether v may be converted to the type of f.
// Numbers convert among each other, everything else needs equal kinds.
func convertible(v, f reflect.Value) bool {
	if !v.Type().ConvertibleTo(f.Type()) {
		return false
	}
	return v.Kind() == f.Kind() || (isNumber(v.Kind()) && isNumber(f.Kind()))
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
