package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FieldError reports a required field that is missing or invalid.
type FieldError struct {
	Model  string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Model, e.Field, e.Reason)
}

func missing(model, field string) *FieldError {
	return &FieldError{Model: model, Field: field, Reason: "required field is missing"}
}

// decodeRequired unmarshals data into v after checking that every required
// key is present and not null.
func decodeRequired(data []byte, v any, model string, required ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s: %w", model, err)
	}

	for _, name := range required {
		value, ok := raw[name]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return missing(model, name)
		}
	}

	return json.Unmarshal(data, v)
}

func requireString(model, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return missing(model, field)
	}
	return nil
}
