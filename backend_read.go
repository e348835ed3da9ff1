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
)

// runReadBackend services pullRequests from reqIn by reading exactly n bytes
// from r, looping over partial reads, until reqIn is closed (the traversal
// finished) or ctx is cancelled. When hardEOF is set, it performs a final
// one-byte probe read after the request channel closes: a transport that
// still has bytes to offer violates the "no trailing data" invariant and is
// reported as ExpectedEOFError.
func runReadBackend(ctx context.Context, r io.Reader, reqIn <-chan pullRequest, respOut chan<- pullResponse, hardEOF bool, done chan<- struct{}, errOut chan<- error) {
	defer close(done)
	defer close(respOut)

	for {
		select {
		case <-ctx.Done():
			errOut <- ctx.Err()
			return
		case req, ok := <-reqIn:
			if !ok {
				errOut <- finalProbe(ctx, r, hardEOF)
				return
			}
			data, err := readFullRetrying(ctx, r, req.n)
			select {
			case respOut <- pullResponse{data: data, err: err}:
			case <-ctx.Done():
				errOut <- ctx.Err()
				return
			}
			if err != nil {
				errOut <- err
				return
			}
		}
	}
}

// readFullRetrying reads exactly n bytes from r, retrying on
// iox.ErrWouldBlock and translating a short read terminated by io.EOF into
// ErrPrematureEOF.
func readFullRetrying(ctx context.Context, r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	got := 0
	for got < n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rn, err := r.Read(buf[got:])
		got += rn
		if err == nil {
			continue
		}
		if errors.Is(err, iox.ErrWouldBlock) {
			runtime.Gosched()
			continue
		}
		if errors.Is(err, io.EOF) {
			if got < n {
				return nil, ErrPrematureEOF
			}
			return buf, nil
		}
		return nil, &IOError{Cause: err}
	}
	return buf, nil
}

// finalProbe reads one more byte once the traversal has stopped asking for
// data. A clean io.EOF confirms the stream ended exactly where decoding
// stopped; anything else means trailing bytes remain.
func finalProbe(ctx context.Context, r io.Reader, hardEOF bool) error {
	if !hardEOF {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var b [1]byte
	n, err := r.Read(b[:])
	if n > 0 {
		return &ExpectedEOFError{Byte: b[0]}
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	if errors.Is(err, iox.ErrWouldBlock) {
		return nil
	}
	return &IOError{Cause: err}
}
