// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

// Encodable is implemented by a value that knows how to visit itself
// through an Encoder's events. This is abcode's stand-in for the "visitor
// framework" the spec treats as an external collaborator (SPEC_FULL.md §1):
// instead of a reflection-driven derive macro, the value's own EncodeAB
// method plays the role of the visitor, the way generated
// Marshal/MarshalVT methods do for protobuf or sonic in this codebase's
// sibling examples.
type Encodable interface {
	EncodeAB(e *Encoder) error
}

// EncodableFunc adapts a plain function to Encodable.
type EncodableFunc func(e *Encoder) error

// EncodeAB implements Encodable.
func (f EncodableFunc) EncodeAB(e *Encoder) error { return f(e) }

// Encoder drives a Sink from a sequence of visitor-shaped events: one
// method per primitive/compound/sum shape in spec.md §4.3.
type Encoder struct {
	sink Sink
}

// NewEncoder returns an Encoder writing to sink.
func NewEncoder(sink Sink) *Encoder { return &Encoder{sink: sink} }

// Sink returns the underlying Sink, for helpers that need to bypass the
// Encoder (e.g. to call WriteRaw directly).
func (e *Encoder) Sink() Sink { return e.sink }

func (e *Encoder) EncodeBool(v bool) error    { return WriteBool(e.sink, v) }
func (e *Encoder) EncodeU8(v uint8) error     { return WriteU8(e.sink, v) }
func (e *Encoder) EncodeI8(v int8) error      { return WriteI8(e.sink, v) }
func (e *Encoder) EncodeU16(v uint16) error   { return WriteU16(e.sink, v) }
func (e *Encoder) EncodeI16(v int16) error    { return WriteI16(e.sink, v) }
func (e *Encoder) EncodeU32(v uint32) error   { return WriteU32(e.sink, v) }
func (e *Encoder) EncodeI32(v int32) error    { return WriteI32(e.sink, v) }
func (e *Encoder) EncodeU64(v uint64) error   { return WriteU64(e.sink, v) }
func (e *Encoder) EncodeI64(v int64) error    { return WriteI64(e.sink, v) }
func (e *Encoder) EncodeU128(v Uint128) error { return WriteU128(e.sink, v) }
func (e *Encoder) EncodeI128(v Int128) error  { return WriteI128(e.sink, v) }
func (e *Encoder) EncodeF32(v float32) error  { return WriteF32(e.sink, v) }
func (e *Encoder) EncodeF64(v float64) error  { return WriteF64(e.sink, v) }
func (e *Encoder) EncodeChar(v rune) error    { return WriteChar(e.sink, v) }
func (e *Encoder) EncodeBytes(v []byte) error { return WriteBytes(e.sink, v) }
func (e *Encoder) EncodeString(v string) error { return WriteString(e.sink, v) }

// EncodeLen widens a host-native length to the wire's 64-bit representation,
// for callers building their own framing on top of Sink directly.
func (e *Encoder) EncodeLen(n int) error { return WriteLen(e.sink, n) }

// EncodeOptional writes the absent tag when present is false; otherwise it
// writes the present tag and invokes some to encode the payload.
func (e *Encoder) EncodeOptional(present bool, some func(*Encoder) error) error {
	if !present {
		return WriteU8(e.sink, 0)
	}
	if err := WriteU8(e.sink, 1); err != nil {
		return err
	}
	return some(e)
}

// EncodeUnit writes nothing: units and unit-structs occupy zero bytes.
func (e *Encoder) EncodeUnit() error { return nil }

// EncodeNewtype recurses on the wrapped value with no framing.
func (e *Encoder) EncodeNewtype(inner Encodable) error { return inner.EncodeAB(e) }

// BeginSeq/AdvanceSeq/EndSeq bracket a sequence or map. hint is nil for an
// unknown-length container (spec.md §4.5 "Rationale"): the underlying Sink
// decides whether that means back-patching (BufferSink) or buffering
// (StreamSink), transparently to the caller.
func (e *Encoder) BeginSeq(hint *uint64) error { return e.sink.BeginVar(hint) }
func (e *Encoder) AdvanceSeq() error            { return e.sink.AdvanceVar() }
func (e *Encoder) EndSeq() error                { return e.sink.EndVar() }

// EncodeSeq is a convenience for the common case of a known-length slice:
// it begins a sequence with hint=n, calls each(i) for i in [0,n), and ends
// the sequence.
func (e *Encoder) EncodeSeq(n int, each func(i int) error) error {
	hint := uint64(n)
	if err := e.BeginSeq(&hint); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := e.AdvanceSeq(); err != nil {
			return err
		}
		if err := each(i); err != nil {
			return err
		}
	}
	return e.EndSeq()
}

// EncodeSeqUnknown encodes a sequence whose length is not known up front.
// next is pulled repeatedly; it returns ok=false once exhausted. This
// demonstrates the length-hint invariance property: the wire bytes are
// identical to EncodeSeq's for the same elements, whether or not the
// producer could count them ahead of time (spec.md §4.5 "Rationale":
// generators, iterators that are not sized).
func (e *Encoder) EncodeSeqUnknown(next func() (elem Encodable, ok bool, err error)) error {
	if err := e.BeginSeq(nil); err != nil {
		return err
	}
	for {
		elem, ok, err := next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := e.AdvanceSeq(); err != nil {
			return err
		}
		if err := elem.EncodeAB(e); err != nil {
			return err
		}
	}
	return e.EndSeq()
}

// EncodeMap begins a map with a known length, calling each(i) to encode the
// i'th key then value pair.
func (e *Encoder) EncodeMap(n int, each func(i int) error) error {
	return e.EncodeSeq(n, each)
}

// EncodeUnitVariant writes a sum's 32-bit discriminator for a unit variant.
func (e *Encoder) EncodeUnitVariant(discriminant uint32) error {
	return WriteU32(e.sink, discriminant)
}

// EncodeNewtypeVariant writes the discriminator then recurses on payload.
func (e *Encoder) EncodeNewtypeVariant(discriminant uint32, payload Encodable) error {
	if err := WriteU32(e.sink, discriminant); err != nil {
		return err
	}
	return payload.EncodeAB(e)
}

// EncodeTupleVariant writes the discriminator then invokes fields to encode
// each field of the tuple variant in declaration order.
func (e *Encoder) EncodeTupleVariant(discriminant uint32, fields func(*Encoder) error) error {
	if err := WriteU32(e.sink, discriminant); err != nil {
		return err
	}
	return fields(e)
}

// EncodeStructVariant writes the discriminator then invokes fields to
// encode each field of the struct variant in declaration order.
func (e *Encoder) EncodeStructVariant(discriminant uint32, fields func(*Encoder) error) error {
	return e.EncodeTupleVariant(discriminant, fields)
}

// EncodeSkipField always fails: the wire format has no provision for
// omitted struct fields.
func (e *Encoder) EncodeSkipField() error { return ErrSkipNotAllowed }
