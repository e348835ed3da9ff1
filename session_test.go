// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"go.distrib.dev/abcode"
)

// TestStreamingRoundTripSmallQueueDepths exercises the backpressure-heavy
// configuration (queue depth 1 everywhere, write batch size 3) across a
// payload many times larger than a single queue slot, verifying no bytes
// are dropped or reordered under backpressure.
func TestStreamingRoundTripSmallQueueDepths(t *testing.T) {
	rows := make([]int32, 500)
	for i := range rows {
		rows[i] = int32(i*31 - 7000)
	}

	cfg, err := abcode.NewConfig(
		abcode.WithRequestQueueDepth(1),
		abcode.WithResponseQueueDepth(1),
		abcode.WithWriteQueueDepth(1),
		abcode.WithWriteBatchSize(3),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cfg.EncodeAsync(context.Background(), &buf, intRow(rows)))

	var got intRow
	require.NoError(t, cfg.DecodeAsync(context.Background(), bytes.NewReader(buf.Bytes()), decodeFunc(func(d *abcode.Decoder) error {
		n, err := d.DecodeSeqLen()
		if err != nil {
			return err
		}
		got = make(intRow, n)
		for i := 0; i < n; i++ {
			v, err := d.DecodeI32()
			if err != nil {
				return err
			}
			got[i] = v
		}
		return nil
	})))

	require.Equal(t, intRow(rows), got)
}

// TestManagerTracksConcurrentSessions runs several encode sessions
// concurrently through a shared Manager and checks its bookkeeping settles
// back to zero once every session has finished.
func TestManagerTracksConcurrentSessions(t *testing.T) {
	mgr := abcode.NewManager()
	cfg := abcode.DefaultConfig()

	const n = 8
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			var buf bytes.Buffer
			err := mgr.EncodeAsync(context.Background(), cfg, &buf, i16Val(int16(i)))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 0, mgr.Active())
	require.Empty(t, mgr.Sessions())
}

// TestEncodeAsyncPropagatesPanic verifies a panicking Encodable's panic
// surfaces to the caller of EncodeAsync rather than being swallowed by the
// traversal goroutine.
func TestEncodeAsyncPropagatesPanic(t *testing.T) {
	var buf bytes.Buffer
	require.Panics(t, func() {
		_ = abcode.EncodeAsync(context.Background(), &buf, abcode.EncodableFunc(func(e *abcode.Encoder) error {
			panic("boom")
		}))
	})
}
