// Package jam provides JSON encode/decode and whole-file helpers with
// defaulted options and explicit, typed failures.
//
// The package wraps an underlying JSON codec and the filesystem behind four
// operations: decode JSON text into a native value, encode a native value
// into JSON text, read-and-decode a JSON file, and encode-and-write a JSON
// file. Every failure surfaces as a typed error carrying the underlying
// codec or OS description plus either the file path or a truncated preview
// of the offending input.
//
// # Basic Usage
//
//	// Decode JSON text into the dynamic value model.
//	v, err := jam.Decode(ctx, []byte(`{"name":"demo","count":3}`))
//
//	// Encode with the default flag bundle.
//	data, err := jam.Encode(ctx, v)
//
//	// Read and decode a JSON file.
//	cfg, err := jam.GetContents(ctx, "config.json")
//
//	// Encode and write a JSON file, overwriting any existing content.
//	err = jam.PutContents(ctx, "state.json", v)
//
// Objects decode into map[string]any via Decode and GetContents. To decode
// into a concrete struct instead, use DecodeInto or GetContentsInto:
//
//	var cfg Config
//	err := jam.GetContentsInto(ctx, "config.json", &cfg)
//
// # Default Encode Flags
//
// When no WithEncodeFlags option is supplied, Encode and PutContents apply
// DefaultEncodeFlags: empty sequences encode as {}, oversized integers
// encode as strings, slashes and multi-byte text are emitted literally, and
// floats with a zero fractional part keep their decimal point. Supplying
// WithEncodeFlags replaces the bundle entirely, even with zero flags:
//
//	// Default bundle.
//	jam.Encode(ctx, v)
//
//	// Exactly these flags, nothing added.
//	jam.Encode(ctx, v, jam.WithEncodeFlags(jam.EncodeUnescapedUnicode))
//
//	// Explicitly no flags.
//	jam.Encode(ctx, v, jam.WithEncodeFlags(0))
//
// # Errors
//
// The four error kinds are DecodeError, EncodeError, FileReadError and
// FileWriteError. Each unwraps to a sentinel (ErrDecode, ErrEncode,
// ErrFileRead, ErrFileWrite) for errors.Is checks:
//
//	if _, err := jam.GetContents(ctx, path); errors.Is(err, jam.ErrFileRead) {
//	    // file missing or unreadable
//	}
//
// # Codec
//
// The underlying codec defaults to JSON() and can be swapped per call with
// WithCodec, which is primarily useful for tests and alternate JSON
// implementations.
//
// # Observability
//
// Each operation emits capitan start/complete signals carrying content type,
// payload size, duration, file path where relevant, and the error on
// failure.
package jam

// EncodeFlag controls how values are rendered as JSON text.
// Flags combine as a bit set.
type EncodeFlag uint

const (
	// EncodeForceObject renders an empty sequence as {} rather than [].
	// A sequence with no elements has no distinguishing keys, so callers
	// that round-trip through dynamically typed stores see a mapping.
	EncodeForceObject EncodeFlag = 1 << iota

	// EncodeBigIntAsString renders integers outside ±2^53 as JSON strings,
	// since they cannot round-trip losslessly through a 64-bit float.
	EncodeBigIntAsString

	// EncodeUnescapedSlashes emits '/' literally instead of '\/'.
	EncodeUnescapedSlashes

	// EncodeUnescapedUnicode emits multi-byte text as literal UTF-8
	// instead of \uXXXX escapes.
	EncodeUnescapedUnicode

	// EncodePreserveZeroFraction keeps the decimal point on floats whose
	// fractional part is zero, so 2.0 does not decode back as an integer.
	EncodePreserveZeroFraction
)

// DefaultEncodeFlags is the bundle applied when no WithEncodeFlags option
// is supplied.
const DefaultEncodeFlags = EncodeForceObject |
	EncodeBigIntAsString |
	EncodeUnescapedSlashes |
	EncodeUnescapedUnicode |
	EncodePreserveZeroFraction

// DecodeFlag controls how JSON text is decoded into values.
// Flags combine as a bit set.
type DecodeFlag uint

const (
	// DecodeUseNumber decodes numbers as json.Number instead of float64,
	// preserving the original literal.
	DecodeUseNumber DecodeFlag = 1 << iota
)

// DefaultMaxDepth is the container nesting limit applied when no
// WithMaxDepth option is supplied.
const DefaultMaxDepth = 512

// config holds per-call settings resolved from options.
type config struct {
	encodeFlags    EncodeFlag
	encodeFlagsSet bool
	decodeFlags    DecodeFlag
	maxDepth       int
	codec          Codec
}

// Option configures a single jam operation.
type Option func(*config)

// WithEncodeFlags sets the encode flags exactly as given, replacing the
// default bundle. WithEncodeFlags(0) means explicitly no flags; omitting
// the option entirely means DefaultEncodeFlags.
func WithEncodeFlags(flags EncodeFlag) Option {
	return func(c *config) {
		c.encodeFlags = flags
		c.encodeFlagsSet = true
	}
}

// WithDecodeFlags sets the decode flags.
func WithDecodeFlags(flags DecodeFlag) Option {
	return func(c *config) {
		c.decodeFlags = flags
	}
}

// WithMaxDepth sets the container nesting limit for both encode and decode.
// Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth >= 1 {
			c.maxDepth = depth
		}
	}
}

// WithCodec swaps the underlying codec for this call.
func WithCodec(codec Codec) Option {
	return func(c *config) {
		if codec != nil {
			c.codec = codec
		}
	}
}

// newConfig resolves options against defaults.
func newConfig(opts []Option) *config {
	cfg := &config{
		maxDepth: DefaultMaxDepth,
		codec:    defaultCodec,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.encodeFlagsSet {
		cfg.encodeFlags = DefaultEncodeFlags
	}
	return cfg
}
