// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"go.distrib.dev/abcode"
)

func TestHardEOFRejectsTrailingBytes(t *testing.T) {
	b, err := abcode.EncodeToBytes(i16Val(7))
	require.NoError(t, err)
	b = append(b, 0xAB)

	var got i16DecodeTarget
	err = abcode.DecodeFromBytes(b, &got, true)

	var eof *abcode.ExpectedEOFError
	require.ErrorAs(t, err, &eof)
	require.Equal(t, byte(0xAB), eof.Byte)
}

func TestSoftEOFAcceptsTrailingBytes(t *testing.T) {
	b, err := abcode.EncodeToBytes(i16Val(7))
	require.NoError(t, err)
	b = append(b, 0xAB)

	var got i16DecodeTarget
	require.NoError(t, abcode.DecodeFromBytes(b, &got, false))
	require.Equal(t, int16(7), int16(got))
}

func TestRejectsShortInput(t *testing.T) {
	b, err := abcode.EncodeToBytes(i16Val(7))
	require.NoError(t, err)
	b = b[:1]

	var got i16DecodeTarget
	err = abcode.DecodeFromBytes(b, &got, false)
	require.ErrorIs(t, err, abcode.ErrPrematureEOF)
}

func TestStreamingHardEOFRejectsTrailingBytes(t *testing.T) {
	b, err := abcode.EncodeToBytes(i16Val(7))
	require.NoError(t, err)
	b = append(b, 0xAB)

	cfg, err := abcode.NewConfig(abcode.WithHardEOF())
	require.NoError(t, err)

	var got i16DecodeTarget
	err = cfg.DecodeAsync(context.Background(), bytes.NewReader(b), &got)

	var eof *abcode.ExpectedEOFError
	require.ErrorAs(t, err, &eof)
	require.Equal(t, byte(0xAB), eof.Byte)
}

func TestStreamingRejectsShortInput(t *testing.T) {
	b, err := abcode.EncodeToBytes(i16Val(7))
	require.NoError(t, err)
	b = b[:1]

	var got i16DecodeTarget
	err = abcode.DecodeAsync(context.Background(), bytes.NewReader(b), &got)
	require.ErrorIs(t, err, abcode.ErrPrematureEOF)
}

type i16DecodeTarget int16

func (v *i16DecodeTarget) DecodeAB(d *abcode.Decoder) error {
	got, err := d.DecodeI16()
	if err != nil {
		return err
	}
	*v = i16DecodeTarget(got)
	return nil
}
