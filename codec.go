package jam

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-json"
)

// Codec translates between JSON text and native values. Implementations
// must honor the encode and decode flags that apply at the text level;
// value-level flags are handled before the codec runs.
type Codec interface {
	// ContentType returns the MIME type for this codec.
	ContentType() string

	// Marshal encodes v into JSON text.
	Marshal(v any, flags EncodeFlag) ([]byte, error)

	// Unmarshal decodes data into v. Trailing non-whitespace after the
	// top-level value is an error.
	Unmarshal(data []byte, v any, flags DecodeFlag) error
}

// jsonCodec is the default Codec, built on goccy/go-json.
type jsonCodec struct{}

// JSON returns the default JSON codec.
func JSON() Codec {
	return &jsonCodec{}
}

var defaultCodec Codec = &jsonCodec{}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON text without a trailing newline.
func (c *jsonCodec) Marshal(v any, flags EncodeFlag) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// The codec only escapes '<', '>', '&' and '/' in HTML-safe mode, so
	// both unescape flags resolve to turning that mode off.
	if flags&(EncodeUnescapedSlashes|EncodeUnescapedUnicode) != 0 {
		enc.SetEscapeHTML(false)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Unmarshal decodes JSON text into v.
func (c *jsonCodec) Unmarshal(data []byte, v any, flags DecodeFlag) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if flags&DecodeUseNumber != 0 {
		dec.UseNumber()
	}
	if err := dec.Decode(v); err != nil {
		return err
	}
	// The decoder stops at the end of the first value; anything left over
	// besides whitespace is malformed input.
	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}
