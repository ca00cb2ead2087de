package models

import (
	"encoding/json"
	"fmt"
	"io"
)

const secretMask = "**********"

// Secret holds a value that must not leak through logs, responses or equality checks.
// The zero-length array of funcs makes Secret non-comparable, so `a == b` does not compile;
// the only way to get the value out is Reveal.
type Secret struct {
	_     [0]func()
	value string
}

// NewSecret wraps a plain value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Reveal returns the wrapped value.
func (s Secret) Reveal() string {
	return s.value
}

// IsZero reports whether nothing was submitted.
func (s Secret) IsZero() bool {
	return s.value == ""
}

// String returns a fixed mask, or an empty string for an empty secret.
func (s Secret) String() string {
	if s.value == "" {
		return ""
	}
	return secretMask
}

// GoString masks %#v.
func (s Secret) GoString() string {
	return "models.Secret(" + s.String() + ")"
}

// Format masks every fmt verb, including the ones that bypass String.
func (s Secret) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, s.GoString())
		return
	}
	_, _ = io.WriteString(f, s.String())
}

// MarshalJSON writes the mask, never the value.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts a JSON string. null leaves the secret empty.
func (s *Secret) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		s.value = ""
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.value = v
	return nil
}
