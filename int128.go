// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

import "golang.org/x/exp/constraints"

// Uint128 is an unsigned 128-bit integer represented as two 64-bit words,
// matching the wire layout directly: Lo occupies wire bytes 0..8 (least
// significant), Hi occupies wire bytes 8..16 (most significant).
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Int128 is the signed counterpart of Uint128. Hi is interpreted as a
// two's-complement signed word; its top bit is the value's sign.
type Int128 struct {
	Lo uint64
	Hi int64
}

func putWord[T constraints.Unsigned](b []byte, v T) {
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
}

func wordFrom[T constraints.Unsigned](b []byte) T {
	var v T
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | T(b[i])
	}
	return v
}

func (v Uint128) bytesLE() [16]byte {
	var b [16]byte
	putWord(b[0:8], v.Lo)
	putWord(b[8:16], v.Hi)
	return b
}

func uint128FromLE(b [16]byte) Uint128 {
	return Uint128{Lo: wordFrom[uint64](b[0:8]), Hi: wordFrom[uint64](b[8:16])}
}

func (v Int128) bytesLE() [16]byte {
	var b [16]byte
	putWord(b[0:8], v.Lo)
	putWord(b[8:16], uint64(v.Hi))
	return b
}

func int128FromLE(b [16]byte) Int128 {
	return Int128{Lo: wordFrom[uint64](b[0:8]), Hi: int64(wordFrom[uint64](b[8:16]))}
}
