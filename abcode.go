// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

import (
	"context"
	"io"
)

// EncodeToBytes encodes v into a freshly allocated byte slice using a
// BufferSink.
func EncodeToBytes(v Encodable) ([]byte, error) {
	sink := NewBufferSink()
	if err := v.EncodeAB(NewEncoder(sink)); err != nil {
		return nil, err
	}
	return sink.Bytes(), nil
}

// EncodeInto encodes v, appending its wire bytes onto *buf in place.
func EncodeInto(buf *[]byte, v Encodable) error {
	sink := NewBufferSinkOnto(buf)
	if err := v.EncodeAB(NewEncoder(sink)); err != nil {
		return err
	}
	*buf = sink.Bytes()
	return nil
}

// DecodeFromBytes decodes v from b using a BufferSource. When hardEOF is
// true, any bytes left in b once v's traversal completes are rejected.
func DecodeFromBytes(b []byte, v Decodable, hardEOF bool) error {
	src := NewBufferSource(b)
	if err := v.DecodeAB(NewDecoder(src)); err != nil {
		return err
	}
	if hardEOF {
		return src.EnsureEOF()
	}
	return nil
}

// EncodeAsync encodes v to w using DefaultConfig's queue depths and batch
// size. See Config.EncodeAsync for the full streaming contract.
func EncodeAsync(ctx context.Context, w io.Writer, v Encodable) error {
	return DefaultConfig().EncodeAsync(ctx, w, v)
}

// DecodeAsync decodes v from r using DefaultConfig's queue depths. See
// Config.DecodeAsync for the full streaming contract.
func DecodeAsync(ctx context.Context, r io.Reader, v Decodable) error {
	return DefaultConfig().DecodeAsync(ctx, r, v)
}
