package validation

import (
	"bytes"
	"encoding/json"
)

// Validator provides common validation utilities over raw JSON fields.
// Payload fields are kept as json.RawMessage so that type violations
// (a number where a string belongs) are still observable after decoding.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsAbsentOrNull reports whether the field was omitted or set to JSON null.
func (v *Validator) IsAbsentOrNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// AsString decodes the field as a JSON string.
func (v *Validator) AsString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// AsBool decodes the field as a JSON boolean.
func (v *Validator) AsBool(raw json.RawMessage) (bool, bool) {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, false
	}
	return b, true
}
