// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

import (
	"math"

	"go.distrib.dev/abcode/internal/varwidth"
)

// Sink is the write-side capability the Encoder drives. Concrete
// implementations are BufferSink (synchronous, in-memory) and StreamSink
// (channel-backed, for the streaming session).
//
// BeginVar/AdvanceVar/EndVar bracket a variable-sized container (sequence
// or map) whose element count may or may not be known up front: hint is nil
// for "unknown ahead of time", matching an unsized Go iterator or generator
// that a caller wants to stream without first counting it.
type Sink interface {
	// WriteRaw writes len(p) bytes verbatim.
	WriteRaw(p []byte) error

	// BeginVar starts a variable-sized container. hint == nil means the
	// element count is not known yet and will be back-patched (BufferSink)
	// or computed by buffering (StreamSink) once EndVar is reached.
	BeginVar(hint *uint64) error

	// AdvanceVar signals that one more element is about to be written
	// inside the most recently begun container.
	AdvanceVar() error

	// EndVar closes the most recently begun container.
	EndVar() error
}

// WriteBool writes a single byte, 0 or 1.
func WriteBool(s Sink, v bool) error {
	if v {
		return s.WriteRaw([]byte{1})
	}
	return s.WriteRaw([]byte{0})
}

// WriteU8 writes an unsigned 8-bit integer.
func WriteU8(s Sink, v uint8) error { return s.WriteRaw([]byte{v}) }

// WriteI8 writes a signed 8-bit integer.
func WriteI8(s Sink, v int8) error { return s.WriteRaw([]byte{byte(v)}) }

// WriteU16 writes a little-endian unsigned 16-bit integer.
func WriteU16(s Sink, v uint16) error {
	var b [2]byte
	putWord(b[:], v)
	return s.WriteRaw(b[:])
}

// WriteI16 writes a little-endian signed 16-bit integer.
func WriteI16(s Sink, v int16) error { return WriteU16(s, uint16(v)) }

// WriteU32 writes a little-endian unsigned 32-bit integer.
func WriteU32(s Sink, v uint32) error {
	var b [4]byte
	putWord(b[:], v)
	return s.WriteRaw(b[:])
}

// WriteI32 writes a little-endian signed 32-bit integer.
func WriteI32(s Sink, v int32) error { return WriteU32(s, uint32(v)) }

// WriteU64 writes a little-endian unsigned 64-bit integer.
func WriteU64(s Sink, v uint64) error {
	var b [8]byte
	putWord(b[:], v)
	return s.WriteRaw(b[:])
}

// WriteI64 writes a little-endian signed 64-bit integer.
func WriteI64(s Sink, v int64) error { return WriteU64(s, uint64(v)) }

// WriteU128 writes a little-endian unsigned 128-bit integer.
func WriteU128(s Sink, v Uint128) error {
	b := v.bytesLE()
	return s.WriteRaw(b[:])
}

// WriteI128 writes a little-endian signed 128-bit integer.
func WriteI128(s Sink, v Int128) error {
	b := v.bytesLE()
	return s.WriteRaw(b[:])
}

// WriteLen widens a host-native length/count to the wire's 64-bit unsigned
// representation. Widening never overflows, since v is already
// native-width; a negative v fails with ExcessiveSizeDiffError.
func WriteLen(s Sink, v int) error {
	if v < 0 {
		return &ExcessiveSizeDiffError{Value: int64(v)}
	}
	return WriteU64(s, uint64(v))
}

// WriteF32 writes a little-endian IEEE-754 single-precision float.
func WriteF32(s Sink, v float32) error { return WriteU32(s, math.Float32bits(v)) }

// WriteF64 writes a little-endian IEEE-754 double-precision float.
func WriteF64(s Sink, v float64) error { return WriteU64(s, math.Float64bits(v)) }

// WriteChar writes a Unicode scalar value widened to 32 bits. It does not
// validate v: a rune holding a surrogate or an out-of-range value is written
// as is, and only ReadChar rejects it on decode.
func WriteChar(s Sink, v rune) error { return WriteU32(s, uint32(v)) }

// WriteBytes writes a 64-bit length prefix followed by the raw bytes.
func WriteBytes(s Sink, v []byte) error {
	if err := WriteLen(s, len(v)); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}
	return s.WriteRaw(v)
}

// WriteString writes a 64-bit length prefix followed by the UTF-8 bytes.
func WriteString(s Sink, v string) error { return WriteBytes(s, []byte(v)) }

// checkFitsUint fails with ExcessiveSizeError when a length read off the
// wire does not fit the host's uint; ReadLen uses it before the length is
// used to size a slice.
func checkFitsUint(v uint64) error {
	if !varwidth.FitsUint(v) {
		return &ExcessiveSizeError{Value: v}
	}
	return nil
}
