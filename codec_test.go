package jam

import (
	"errors"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	c := JSON()
	if c == nil {
		t.Error("JSON() should return non-nil codec")
	}
}

func TestJSONCodec_ContentType(t *testing.T) {
	c := JSON()
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
	}
}

func TestJSONCodec_MarshalUnmarshal(t *testing.T) {
	c := JSON()

	type testStruct struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	original := testStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original, 0)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if strings.HasSuffix(string(data), "\n") {
		t.Error("Marshal() output should not carry a trailing newline")
	}

	var restored testStruct
	if err := c.Unmarshal(data, &restored, 0); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestJSONCodec_MarshalNil(t *testing.T) {
	c := JSON()

	data, err := c.Marshal(nil, 0)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null")
	}
}

func TestJSONCodec_EscapeHTML(t *testing.T) {
	c := JSON()

	data, err := c.Marshal("<b>", 0)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), `\u003c`) {
		t.Errorf("Marshal() without flags = %q, want HTML-escaped output", data)
	}
	if strings.Contains(string(data), "<") {
		t.Errorf("Marshal() without flags = %q, should not contain a literal '<'", data)
	}

	data, err = c.Marshal("<b>", EncodeUnescapedUnicode)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"<b>"` {
		t.Errorf("Marshal() with unescape flag = %q, want %q", data, `"<b>"`)
	}
}

func TestJSONCodec_UnmarshalInvalid(t *testing.T) {
	c := JSON()

	var v any
	if err := c.Unmarshal([]byte("invalid json"), &v, 0); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestJSONCodec_UnmarshalTrailing(t *testing.T) {
	c := JSON()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "clean value", input: `{"a":1}`, wantErr: false},
		{name: "trailing whitespace ok", input: "{\"a\":1}\n\t ", wantErr: false},
		{name: "trailing value rejected", input: `{"a":1}{"b":2}`, wantErr: true},
		{name: "trailing garbage rejected", input: `1 garbage`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v any
			err := c.Unmarshal([]byte(tt.input), &v, 0)
			if tt.wantErr && err == nil {
				t.Error("Unmarshal() should reject trailing data")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unmarshal() error: %v", err)
			}
		})
	}
}

func TestJSONCodec_ErrorsNotWrapped(t *testing.T) {
	// The codec reports raw errors; typed wrapping happens a layer up.
	c := JSON()

	var v any
	err := c.Unmarshal([]byte("{bad"), &v, 0)
	if err == nil {
		t.Fatal("Unmarshal() should fail")
	}
	if errors.Is(err, ErrDecode) {
		t.Error("codec errors should not already carry ErrDecode")
	}
}
