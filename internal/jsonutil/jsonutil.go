// Package jsonutil provides shared helpers for decoding JSON API payloads
// with error context attached.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeWithContext decodes a single JSON value from r into v and wraps any
// error with the provided context message.
func DecodeWithContext(r io.Reader, v any, context string) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeArray decodes a JSON array from r. An empty array yields a non-nil
// empty slice; a JSON null yields nil.
func DecodeArray[T any](r io.Reader, context string) ([]T, error) {
	var entries []T
	if err := DecodeWithContext(r, &entries, context); err != nil {
		return nil, err
	}
	return entries, nil
}

// Encode writes v as JSON followed by a newline.
func Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
