package jam

import (
	"context"
	"time"
)

// Decode parses JSON text into the dynamic value model: objects become
// map[string]any, arrays []any, numbers float64 (or json.Number under
// DecodeUseNumber). Failure yields a DecodeError carrying the codec's
// description and a truncated preview of the input.
func Decode(ctx context.Context, data []byte, opts ...Option) (any, error) {
	cfg := newConfig(opts)

	start := time.Now()
	emitDecodeStart(ctx, cfg.codec.ContentType(), len(data))

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, cfg.codec.ContentType(), len(data), time.Since(start), retErr)
	}()

	v, err := decodeValue(data, cfg, "")
	if err != nil {
		retErr = err
		return nil, retErr
	}
	return v, nil
}

// DecodeInto parses JSON text into a caller-supplied value, typically a
// pointer to a struct. Use this instead of Decode when the target shape is
// known ahead of time.
func DecodeInto(ctx context.Context, data []byte, v any, opts ...Option) error {
	cfg := newConfig(opts)

	start := time.Now()
	emitDecodeStart(ctx, cfg.codec.ContentType(), len(data))

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, cfg.codec.ContentType(), len(data), time.Since(start), retErr)
	}()

	retErr = decodeInto(data, v, cfg, "")
	return retErr
}

// Encode renders a value as JSON text, applying DefaultEncodeFlags unless
// WithEncodeFlags says otherwise. Failure yields an EncodeError carrying the
// codec's description and a truncated debug rendering of the value.
func Encode(ctx context.Context, v any, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)

	start := time.Now()
	emitEncodeStart(ctx, cfg.codec.ContentType())

	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(ctx, cfg.codec.ContentType(), len(retData), time.Since(start), retErr)
	}()

	retData, retErr = encodeValue(v, cfg)
	return retData, retErr
}

// decodeValue decodes into the dynamic value model.
func decodeValue(data []byte, cfg *config, path string) (any, error) {
	var v any
	if err := decodeInto(data, &v, cfg, path); err != nil {
		return nil, err
	}
	return v, nil
}

// decodeInto guards nesting depth, then runs the codec. The codec call and
// its error check are a single local operation; nothing runs between them.
func decodeInto(data []byte, v any, cfg *config, path string) error {
	if depthExceeded(data, cfg.maxDepth) {
		return newDecodeError(errDepthExceeded(cfg.maxDepth), data, path)
	}
	if err := cfg.codec.Unmarshal(data, v, cfg.decodeFlags); err != nil {
		return newDecodeError(err, data, path)
	}
	return nil
}

// encodeValue normalizes the value per the encode flags, then runs the codec.
func encodeValue(v any, cfg *config) ([]byte, error) {
	norm, err := normalize(v, cfg.encodeFlags, cfg.maxDepth)
	if err != nil {
		return nil, newEncodeError(err, v)
	}
	data, err := cfg.codec.Marshal(norm, cfg.encodeFlags)
	if err != nil {
		return nil, newEncodeError(err, v)
	}
	return data, nil
}
