// Package testing provides test utilities for jam.
package testing

import (
	"errors"

	"github.com/zoobzio/jam"
)

// SampleValue returns a document exercising every kind in the JSON value
// model. Numbers are float64 and objects map[string]any so the result
// compares cleanly against a decoded round trip.
func SampleValue() map[string]any {
	return map[string]any{
		"null":   nil,
		"bool":   true,
		"number": 1.25,
		"string": "héllo/world",
		"seq":    []any{"a", "b", 3.5},
		"map":    map[string]any{"nested": map[string]any{"deep": false}},
	}
}

// SampleJSON returns JSON text that decodes to SampleValue.
func SampleJSON() []byte {
	return []byte(`{
		"null": null,
		"bool": true,
		"number": 1.25,
		"string": "héllo/world",
		"seq": ["a", "b", 3.5],
		"map": {"nested": {"deep": false}}
	}`)
}

// ErrCodec is the error reported by FailingCodec.
var ErrCodec = errors.New("codec failure injected for testing")

// FailingCodec reports ErrCodec from every call, for exercising error paths.
type FailingCodec struct{}

// ContentType returns a placeholder MIME type.
func (c *FailingCodec) ContentType() string {
	return "application/x-fail"
}

// Marshal always fails.
func (c *FailingCodec) Marshal(_ any, _ jam.EncodeFlag) ([]byte, error) {
	return nil, ErrCodec
}

// Unmarshal always fails.
func (c *FailingCodec) Unmarshal(_ []byte, _ any, _ jam.DecodeFlag) error {
	return ErrCodec
}
