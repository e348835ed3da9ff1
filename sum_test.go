// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.distrib.dev/abcode"
)

// Shape is a Foo/Bar/Baz tagged sum: a unit variant, a newtype variant, and
// a struct variant, assigned discriminants by declaration order.
type Shape interface {
	abcode.Encodable
	isShape()
}

type Foo struct{}

type Bar struct{ V int32 }

type Baz struct {
	A int32
	B string
}

func (Foo) isShape() {}
func (Bar) isShape() {}
func (Baz) isShape() {}

func (Foo) EncodeAB(e *abcode.Encoder) error { return e.EncodeUnitVariant(0) }

func (b Bar) EncodeAB(e *abcode.Encoder) error {
	return e.EncodeNewtypeVariant(1, i32Val(b.V))
}

func (b Baz) EncodeAB(e *abcode.Encoder) error {
	return e.EncodeStructVariant(2, func(e *abcode.Encoder) error {
		if err := e.EncodeI32(b.A); err != nil {
			return err
		}
		return e.EncodeString(b.B)
	})
}

type i32Val int32

func (v i32Val) EncodeAB(e *abcode.Encoder) error { return e.EncodeI32(int32(v)) }

func decodeShape(d *abcode.Decoder) (Shape, error) {
	discriminant, err := d.DecodeVariant()
	if err != nil {
		return nil, err
	}
	switch discriminant {
	case 0:
		return Foo{}, nil
	case 1:
		v, err := d.DecodeI32()
		if err != nil {
			return nil, err
		}
		return Bar{V: v}, nil
	case 2:
		a, err := d.DecodeI32()
		if err != nil {
			return nil, err
		}
		b, err := d.DecodeString()
		if err != nil {
			return nil, err
		}
		return Baz{A: a, B: b}, nil
	default:
		return nil, abcode.Customf("unknown Shape discriminant %d", discriminant)
	}
}

func TestSumVariantRoundTrip(t *testing.T) {
	cases := []Shape{
		Foo{},
		Bar{V: -7},
		Baz{A: 1002003004, B: "corner"},
	}
	for _, c := range cases {
		b, err := abcode.EncodeToBytes(c)
		require.NoError(t, err)

		got, err := decodeShape(abcode.NewDecoder(abcode.NewBufferSource(b)))
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
}

func TestSumVariantDiscriminantIsFourBytes(t *testing.T) {
	b, err := abcode.EncodeToBytes(Foo{})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0}, b)
}
