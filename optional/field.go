// Package optional provides Field, a value that is absent, null or set.
//
// Model structs tag Field members with `json:",omitzero"` so that an absent
// field is left out of the encoded payload while an explicit null is still
// sent for fields declared nullable.
package optional

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type state uint8

const (
	absent state = iota
	null
	present
)

// Field holds an optional, possibly nullable value. The zero Field is absent.
type Field[T any] struct {
	value T
	state state
}

// Of returns a Field holding v
func Of[T any](v T) Field[T] {
	return Field[T]{value: v, state: present}
}

// Null returns an explicit null Field
func Null[T any]() Field[T] {
	return Field[T]{state: null}
}

// Absent returns a Field with no value
func Absent[T any]() Field[T] {
	return Field[T]{}
}

// FromPtr converts a pointer into a Field: nil becomes absent.
func FromPtr[T any](v *T) Field[T] {
	if v == nil {
		return Absent[T]()
	}
	return Of(*v)
}

// IsAbsent reports whether the field was not set
func (f Field[T]) IsAbsent() bool { return f.state == absent }

// IsNull reports whether the field is an explicit null
func (f Field[T]) IsNull() bool { return f.state == null }

// IsPresent reports whether the field holds a value
func (f Field[T]) IsPresent() bool { return f.state == present }

// IsZero reports whether the field is absent. encoding/json uses it for omitzero.
func (f Field[T]) IsZero() bool { return f.state == absent }

// Get returns the value and whether one is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == present
}

// OrElse returns the value, or def when absent or null.
func (f Field[T]) OrElse(def T) T {
	if f.state == present {
		return f.value
	}
	return def
}

// String implements fmt.Stringer
func (f Field[T]) String() string {
	switch f.state {
	case null:
		return "null"
	case present:
		return fmt.Sprint(f.value)
	default:
		return "<absent>"
	}
}

// MarshalJSON encodes the value, or null for both null and absent fields.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != present {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON is only invoked when the key is present in the payload.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.value = zero
		f.state = null
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.value = v
	f.state = present
	return nil
}
