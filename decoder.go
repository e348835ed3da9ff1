// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

// Decodable is implemented by a value that can reconstruct itself from a
// Decoder. The dual of Encodable; see its doc for why abcode defines this
// instead of depending on a reflective deserialization framework.
type Decodable interface {
	DecodeAB(d *Decoder) error
}

// Decoder drives a Source from a sequence of visitor-shaped events: the
// dual of Encoder, one method per shape in spec.md §4.4.
type Decoder struct {
	source Source
}

// NewDecoder returns a Decoder reading from source.
func NewDecoder(source Source) *Decoder { return &Decoder{source: source} }

// Source returns the underlying Source.
func (d *Decoder) Source() Source { return d.source }

func (d *Decoder) DecodeBool() (bool, error)    { return ReadBool(d.source) }
func (d *Decoder) DecodeU8() (uint8, error)     { return ReadU8(d.source) }
func (d *Decoder) DecodeI8() (int8, error)      { return ReadI8(d.source) }
func (d *Decoder) DecodeU16() (uint16, error)   { return ReadU16(d.source) }
func (d *Decoder) DecodeI16() (int16, error)    { return ReadI16(d.source) }
func (d *Decoder) DecodeU32() (uint32, error)   { return ReadU32(d.source) }
func (d *Decoder) DecodeI32() (int32, error)    { return ReadI32(d.source) }
func (d *Decoder) DecodeU64() (uint64, error)   { return ReadU64(d.source) }
func (d *Decoder) DecodeI64() (int64, error)    { return ReadI64(d.source) }
func (d *Decoder) DecodeU128() (Uint128, error) { return ReadU128(d.source) }
func (d *Decoder) DecodeI128() (Int128, error)  { return ReadI128(d.source) }
func (d *Decoder) DecodeF32() (float32, error)  { return ReadF32(d.source) }
func (d *Decoder) DecodeF64() (float64, error)  { return ReadF64(d.source) }
func (d *Decoder) DecodeChar() (rune, error)    { return ReadChar(d.source) }
func (d *Decoder) DecodeBytes() ([]byte, error) { return ReadBytes(d.source) }
func (d *Decoder) DecodeString() (string, error) { return ReadString(d.source) }

// DecodeLen reads a 64-bit wire length, narrowed to the host's int.
func (d *Decoder) DecodeLen() (int, error) { return ReadLen(d.source) }

// DecodeOptional reads the presence tag; if present, it invokes some to
// decode the payload.
func (d *Decoder) DecodeOptional(some func(*Decoder) error) (present bool, err error) {
	tag, err := ReadU8(d.source)
	if err != nil {
		return false, err
	}
	if tag == 0 {
		return false, nil
	}
	if err := some(d); err != nil {
		return false, err
	}
	return true, nil
}

// DecodeUnit reads nothing: units and unit-structs occupy zero bytes.
func (d *Decoder) DecodeUnit() error { return nil }

// DecodeNewtype recurses into inner with no framing.
func (d *Decoder) DecodeNewtype(inner Decodable) error { return inner.DecodeAB(d) }

// DecodeSeqLen reads a sequence's or map's 64-bit length prefix. The caller
// must then decode exactly that many elements (map: that many key/value
// pairs).
func (d *Decoder) DecodeSeqLen() (int, error) { return d.DecodeLen() }

// DecodeMapLen is an alias of DecodeSeqLen for readability at call sites.
func (d *Decoder) DecodeMapLen() (int, error) { return d.DecodeLen() }

// DecodeVariant reads a sum's 32-bit discriminator.
func (d *Decoder) DecodeVariant() (uint32, error) { return d.DecodeU32() }

// DecodeAny always fails: abcode is schema-driven on both ends and has no
// provision for deducing a value's shape from the stream.
func (d *Decoder) DecodeAny() (any, error) { return nil, ErrUnsupportedAny }

// DecodeIgnoredAny always fails, for the same reason as DecodeAny.
func (d *Decoder) DecodeIgnoredAny() error { return ErrUnsupportedAny }
