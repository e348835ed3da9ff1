// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

import "fmt"

// Sentinel errors for the zero-payload kinds of the error taxonomy.
var (
	// ErrUnsupportedAny reports that the decoder was asked to deduce a
	// value's shape from the stream. abcode is schema-driven on both ends;
	// there is no provision for self-describing decode.
	ErrUnsupportedAny = fmt.Errorf("abcode: any-typed decode is not supported")

	// ErrPrematureEOF reports that the transport ended before the schema's
	// next demand was satisfied.
	ErrPrematureEOF = fmt.Errorf("abcode: transport ended before the expected data")

	// ErrDisconnected reports that a cross-goroutine queue closed while the
	// peer still had work to do.
	ErrDisconnected = fmt.Errorf("abcode: streaming peer disconnected")

	// ErrSkipNotAllowed reports that the visitor attempted to omit a struct
	// field. The wire format has no provision for omitted fields.
	ErrSkipNotAllowed = fmt.Errorf("abcode: skipping fields is not allowed")
)

// ExpectedEOFError reports that hard_eof was requested and the decoder
// finished but the transport still had bytes left.
type ExpectedEOFError struct {
	Byte byte
}

func (e *ExpectedEOFError) Error() string {
	return fmt.Sprintf("abcode: expected end of input, found byte 0x%02x", e.Byte)
}

// ExcessiveSizeError reports that a length prefix or platform-sized integer
// exceeds the host's address-size range.
type ExcessiveSizeError struct {
	Value uint64
}

func (e *ExcessiveSizeError) Error() string {
	return fmt.Sprintf("abcode: size %d is too big for this machine", e.Value)
}

// ExcessiveSizeDiffError is the signed counterpart of ExcessiveSizeError,
// for platform-sized signed integers.
type ExcessiveSizeDiffError struct {
	Value int64
}

func (e *ExcessiveSizeDiffError) Error() string {
	return fmt.Sprintf("abcode: size difference %d is too big in magnitude for this machine", e.Value)
}

// InvalidCodePointError reports that a char payload is not a Unicode scalar
// value (it is a surrogate, or out of range).
type InvalidCodePointError struct {
	Value uint32
}

func (e *InvalidCodePointError) Error() string {
	return fmt.Sprintf("abcode: code point %#x is not a valid Unicode scalar value", e.Value)
}

// UTF8Error reports that a text-string payload failed UTF-8 validation.
type UTF8Error struct {
	Cause error
}

func (e *UTF8Error) Error() string { return fmt.Sprintf("abcode: invalid utf-8: %v", e.Cause) }
func (e *UTF8Error) Unwrap() error { return e.Cause }

// IOError wraps a failure from the underlying async transport.
type IOError struct {
	Cause error
}

func (e *IOError) Error() string { return fmt.Sprintf("abcode: i/o error: %v", e.Cause) }
func (e *IOError) Unwrap() error { return e.Cause }

// CustomError is surfaced by an Encodable/Decodable implementation from
// caller code, mirroring serde::ser::Error::custom / serde::de::Error::custom
// in the reference implementation.
type CustomError struct {
	Message string
}

func (e *CustomError) Error() string { return e.Message }

// Customf builds a CustomError with a formatted message.
func Customf(format string, args ...any) error {
	return &CustomError{Message: fmt.Sprintf(format, args...)}
}
