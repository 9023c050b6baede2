// Package optional tracks whether a JSON field was present in a request body,
// which lets PUT handlers tell "omitted" apart from "set to null".
package optional

import (
	"bytes"
	"encoding/json"
)

type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(b, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// HasValue reports a present, non-null field.
func (f Field[T]) HasValue() bool {
	return f.Set && !f.Null
}

// Ptr returns nil for omitted or null fields.
func (f Field[T]) Ptr() *T {
	if !f.HasValue() {
		return nil
	}
	v := f.Value
	return &v
}

// NullIf turns a present value into an explicit null when isEmpty reports true,
// matching forms that submit "" or 0 to clear a field.
func (f Field[T]) NullIf(isEmpty func(T) bool) Field[T] {
	if f.HasValue() && isEmpty(f.Value) {
		return Null[T]()
	}
	return f
}
