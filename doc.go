// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package abcode is a schema-driven binary serialization codec.
//
// Semantics and design:
//   - Symmetric: a value encoded by the Encoder is recovered identically by
//     the Decoder, for the same statically-known shape. There is no
//     self-describing "decode whatever is next" mode — the consumer must
//     know the target shape (implement Decodable) ahead of time.
//   - Driver-agnostic: the same wire bytes come out whether the traversal
//     runs against an in-memory BufferSink/BufferSource or against a
//     channel-backed StreamSink/StreamSource fed by a goroutine reading or
//     writing an io.Reader/io.Writer.
//   - Non-goals: no type tags or field names on the wire, no schema
//     evolution, no endianness negotiation, no compression, no encryption,
//     no zero-copy borrowed decoding.
//
// Wire format: every fixed-width integer and float is little-endian, natural
// width. Booleans are one byte, 0 or 1 (decode treats any non-zero as true).
// char is a 32-bit little-endian Unicode scalar value. Length prefixes and
// platform-sized integers are normalized to 64-bit little-endian unsigned.
// Variant discriminators are 32-bit little-endian unsigned, assigned by
// declaration order (0-based). Optionals are one tag byte (0 absent,
// non-zero present) followed by the payload when present. Sequences, maps,
// byte strings and text strings carry a 64-bit length prefix followed by
// that many elements (maps: key then value, in iteration order). Tuples,
// tuple-structs and named structs carry no length prefix: field payloads are
// concatenated in declaration order. Sum variants are a 32-bit discriminator
// followed by the variant's payload using the unit/newtype/tuple/struct
// rules above — no length prefix, even for tuple/struct variants. Unit and
// unit-structs are zero bytes.
package abcode
