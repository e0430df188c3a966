// Package jsonx converts values to and from JSON text.
package jsonx

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Encode returns JSON text for v.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to encode %T: %w", v, err)
	}
	return string(data), nil
}

// Decode parses text onto a copy of proto and returns it. Fields absent from
// text keep prototype values. When proto is a pointer or a map, the copy gets
// its own pointee or map (one level deep), so proto is never modified.
func Decode[T any](proto T, text string) (T, error) {
	out := shallowCopy(proto)
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("unable to decode %T: %w", proto, err)
	}
	return out, nil
}

func shallowCopy[T any](v T) T {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return v
		}
		cp := reflect.New(rv.Type().Elem())
		cp.Elem().Set(rv.Elem())
		rv.Set(cp)
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		for it := rv.MapRange(); it.Next(); {
			cp.SetMapIndex(it.Key(), it.Value())
		}
		rv.Set(cp)
	}
	return v
}
