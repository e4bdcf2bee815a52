package jam

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error kinds.
var (
	// ErrDecode indicates the codec rejected JSON input.
	ErrDecode = errors.New("decode failed")

	// ErrEncode indicates the codec could not render a value as JSON.
	ErrEncode = errors.New("encode failed")

	// ErrFileRead indicates a JSON file could not be read.
	ErrFileRead = errors.New("file read failed")

	// ErrFileWrite indicates a JSON file could not be written.
	ErrFileWrite = errors.New("file write failed")
)

// DecodeError reports a failure to decode JSON text into a value.
// Preview holds a truncated rendering of the offending input; Path is set
// instead when the input came from a file.
type DecodeError struct {
	Err     error  // ErrDecode
	Cause   error  // underlying codec error
	Preview string // truncated offending input
	Path    string // source file, when decoding file contents
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %v (file %s)", e.Err.Error(), e.Cause, e.Path)
	}
	return fmt.Sprintf("%s: %v (input: %s)", e.Err.Error(), e.Cause, e.Preview)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a failure to render a value as JSON text.
// Value holds a truncated debug rendering of the offending value.
type EncodeError struct {
	Err   error  // ErrEncode
	Cause error  // underlying codec error
	Value string // truncated debug rendering of the input
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s: %v (value: %s)", e.Err.Error(), e.Cause, e.Value)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// FileReadError reports a failure to read a JSON file. Missing files,
// permission problems and I/O errors are not distinguished.
type FileReadError struct {
	Err   error  // ErrFileRead
	Path  string // file that could not be read
	Cause error  // underlying OS error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Err.Error(), e.Path, e.Cause)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// FileWriteError reports a failure to write a JSON file.
type FileWriteError struct {
	Err   error  // ErrFileWrite
	Path  string // file that could not be written
	Cause error  // underlying OS error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Err.Error(), e.Path, e.Cause)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}

// newDecodeError wraps a codec failure. When path is empty the error carries
// a truncated preview of the input; otherwise it names the source file.
func newDecodeError(cause error, input []byte, path string) error {
	if path != "" {
		return &DecodeError{Err: ErrDecode, Cause: cause, Path: path}
	}
	preview, _ := truncate(string(input), previewLimit, previewMarker)
	return &DecodeError{Err: ErrDecode, Cause: cause, Preview: preview}
}

// newEncodeError wraps a codec failure with a truncated rendering of the
// offending value.
func newEncodeError(cause error, v any) error {
	value, _ := truncate(fmt.Sprintf("%+v", v), previewLimit, previewMarker)
	return &EncodeError{Err: ErrEncode, Cause: cause, Value: value}
}

// newFileReadError wraps an OS read failure.
func newFileReadError(path string, cause error) error {
	return &FileReadError{Err: ErrFileRead, Path: path, Cause: cause}
}

// newFileWriteError wraps an OS write failure.
func newFileWriteError(path string, cause error) error {
	return &FileWriteError{Err: ErrFileWrite, Path: path, Cause: cause}
}
