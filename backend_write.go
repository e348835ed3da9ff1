// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

import (
	"context"
	"errors"
	"io"
	"runtime"

	"code.hybscloud.com/iox"
	"github.com/valyala/bytebufferpool"
)

// runWriteBackend drains in, batching chunks into a pooled buffer until at
// least batchSize bytes are pending and then writing them to w in writes of
// at most batchSize bytes each, until in is closed or ctx is cancelled. It reports the first write error (if any) on errOut and
// always closes done so StreamSink.send can stop blocking on a dead writer.
//
// Retrying on iox.ErrWouldBlock mirrors framer's non-blocking-first read/write
// loop (see code.hybscloud.com/iox and its framer.ErrWouldBlock re-export):
// a transport that cannot accept bytes right now is not a failure, just a
// signal to yield and try again.
func runWriteBackend(ctx context.Context, w io.Writer, in <-chan writeChunk, batchSize int, done chan<- struct{}, errOut chan<- error) {
	defer close(done)

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	flush := func() error {
		if bb.Len() == 0 {
			return nil
		}
		p := bb.Bytes()
		for len(p) > 0 {
			n := min(len(p), batchSize)
			if err := writeAllRetrying(ctx, w, p[:n]); err != nil {
				return err
			}
			p = p[n:]
		}
		bb.Reset()
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			errOut <- ctx.Err()
			return
		case chunk, ok := <-in:
			if !ok {
				if err := flush(); err != nil {
					errOut <- err
					return
				}
				errOut <- nil
				return
			}
			if _, err := bb.Write(chunk.data); err != nil {
				errOut <- err
				return
			}
			if bb.Len() >= batchSize {
				if err := flush(); err != nil {
					errOut <- err
					return
				}
			}
		}
	}
}

// writeAllRetrying writes p to w in full, retrying the remainder whenever w
// reports iox.ErrWouldBlock instead of treating it as terminal.
func writeAllRetrying(ctx context.Context, w io.Writer, p []byte) error {
	for len(p) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := w.Write(p)
		p = p[n:]
		if err == nil {
			continue
		}
		if errors.Is(err, iox.ErrWouldBlock) {
			runtime.Gosched()
			continue
		}
		return &IOError{Cause: err}
	}
	return nil
}
