// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package varwidth answers "does this 64-bit wire value fit the host's
// native int width" without per-architecture build tags.
//
// The teacher package (code.hybscloud.com/framer) carries an internal/bo
// package that picks a byte order per architecture via build constraints.
// abcode's wire format is unconditionally little-endian (spec.md §3), so
// byte-order selection has no home here; this package repurposes the same
// "one small per-host fact, isolated in internal/" shape for the one
// platform fact abcode does need: the bit width of the host's int/uint.
package varwidth

import "math/bits"

// Bits is the width, in bits, of the host's int/uint type.
const Bits = bits.UintSize

// FitsUint reports whether a 64-bit unsigned wire value fits in the host's
// uint without truncation.
func FitsUint(v uint64) bool {
	if Bits >= 64 {
		return true
	}
	return v <= ^uint64(0)>>(64-Bits)
}
