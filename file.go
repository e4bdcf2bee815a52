package jam

import (
	"context"
	"os"
	"time"
)

// GetContents reads the file at path and decodes it into the dynamic value
// model. Read failures of any kind yield a FileReadError naming the path;
// decode failures yield a DecodeError naming the path instead of an input
// preview.
func GetContents(ctx context.Context, path string, opts ...Option) (any, error) {
	cfg := newConfig(opts)

	start := time.Now()
	emitReadStart(ctx, cfg.codec.ContentType(), path)

	var retErr error
	var size int
	defer func() {
		emitReadComplete(ctx, cfg.codec.ContentType(), path, size, time.Since(start), retErr)
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		retErr = newFileReadError(path, err)
		return nil, retErr
	}
	size = len(data)

	v, err := decodeValue(data, cfg, path)
	if err != nil {
		retErr = err
		return nil, retErr
	}
	return v, nil
}

// GetContentsInto reads the file at path and decodes it into a
// caller-supplied value, typically a pointer to a struct.
func GetContentsInto(ctx context.Context, path string, v any, opts ...Option) error {
	cfg := newConfig(opts)

	start := time.Now()
	emitReadStart(ctx, cfg.codec.ContentType(), path)

	var retErr error
	var size int
	defer func() {
		emitReadComplete(ctx, cfg.codec.ContentType(), path, size, time.Since(start), retErr)
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		retErr = newFileReadError(path, err)
		return retErr
	}
	size = len(data)

	retErr = decodeInto(data, v, cfg, path)
	return retErr
}

// PutContents encodes a value and writes the JSON text to path, fully
// overwriting any existing file. Encode failures propagate as EncodeError;
// write failures yield a FileWriteError naming the path. The write is a
// plain whole-file write with no atomic replacement and no locking.
func PutContents(ctx context.Context, path string, v any, opts ...Option) error {
	cfg := newConfig(opts)

	start := time.Now()
	emitWriteStart(ctx, cfg.codec.ContentType(), path)

	var retErr error
	var size int
	defer func() {
		emitWriteComplete(ctx, cfg.codec.ContentType(), path, size, time.Since(start), retErr)
	}()

	data, err := encodeValue(v, cfg)
	if err != nil {
		retErr = err
		return retErr
	}
	size = len(data)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		retErr = newFileWriteError(path, err)
		return retErr
	}
	return nil
}
