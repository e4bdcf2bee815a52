package jam

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for jam events.
var (
	SignalDecodeStart    = capitan.NewSignal("jam.decode.start", "Decode operation beginning")
	SignalDecodeComplete = capitan.NewSignal("jam.decode.complete", "Decode operation finished")
	SignalEncodeStart    = capitan.NewSignal("jam.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("jam.encode.complete", "Encode operation finished")
	SignalReadStart      = capitan.NewSignal("jam.read.start", "File read operation beginning")
	SignalReadComplete   = capitan.NewSignal("jam.read.complete", "File read operation finished")
	SignalWriteStart     = capitan.NewSignal("jam.write.start", "File write operation beginning")
	SignalWriteComplete  = capitan.NewSignal("jam.write.complete", "File write operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyPath        = capitan.NewStringKey("path")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitDecodeStart emits an event when a decode begins.
func emitDecodeStart(ctx context.Context, contentType string, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when a decode finishes.
func emitDecodeComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
	}
	capitan.Emit(ctx, SignalDecodeComplete, fields...)
}

// emitEncodeStart emits an event when an encode begins.
func emitEncodeStart(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
	)
}

// emitEncodeComplete emits an event when an encode finishes.
func emitEncodeComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
	}
	capitan.Emit(ctx, SignalEncodeComplete, fields...)
}

// emitReadStart emits an event when a file read begins.
func emitReadStart(ctx context.Context, contentType, path string) {
	capitan.Emit(ctx, SignalReadStart,
		KeyContentType.Field(contentType),
		KeyPath.Field(path),
	)
}

// emitReadComplete emits an event when a file read finishes.
func emitReadComplete(ctx context.Context, contentType, path string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyPath.Field(path),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
	}
	capitan.Emit(ctx, SignalReadComplete, fields...)
}

// emitWriteStart emits an event when a file write begins.
func emitWriteStart(ctx context.Context, contentType, path string) {
	capitan.Emit(ctx, SignalWriteStart,
		KeyContentType.Field(contentType),
		KeyPath.Field(path),
	)
}

// emitWriteComplete emits an event when a file write finishes.
func emitWriteComplete(ctx context.Context, contentType, path string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyPath.Field(path),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
	}
	capitan.Emit(ctx, SignalWriteComplete, fields...)
}
