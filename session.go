// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
)

// traversalResult carries the outcome of running an Encodable/Decodable's
// traversal on its own goroutine: either a normal error return, or a
// recovered panic to be re-raised on the caller's goroutine once the
// backend has been joined. This mirrors the reference implementation's use
// of spawn_blocking + panic::resume_unwind: a panic inside the visitor must
// not vanish into an unobserved goroutine, but it also must not fire before
// the I/O backend has been given a chance to shut down cleanly.
type traversalResult struct {
	err   error
	panic any
}

func goTraversal(fn func() error) <-chan traversalResult {
	ch := make(chan traversalResult, 1)
	go func() {
		var res traversalResult
		defer func() {
			if r := recover(); r != nil {
				res.panic = r
			}
			ch <- res
		}()
		res.err = fn()
	}()
	return ch
}

// EncodeAsync runs v's traversal on its own goroutine against a StreamSink
// backed by a write backend goroutine writing to w, per c's queue depths and
// batch size. It blocks until both goroutines have finished.
func (c Config) EncodeAsync(ctx context.Context, w io.Writer, v Encodable) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	writeCh := make(chan writeChunk, c.WriteQueueDepth)
	doneWrite := make(chan struct{})
	errWrite := make(chan error, 1)
	go runWriteBackend(ctx, w, writeCh, c.WriteBatchSize, doneWrite, errWrite)

	sink := newStreamSink(writeCh, doneWrite)
	resCh := goTraversal(func() error {
		return v.EncodeAB(NewEncoder(sink))
	})

	res := <-resCh
	close(writeCh)
	werr := <-errWrite

	if res.panic != nil {
		panic(res.panic)
	}
	if werr != nil {
		return werr
	}
	return res.err
}

// DecodeAsync runs v's traversal on its own goroutine against a StreamSource
// backed by a read backend goroutine reading from r, per c's queue depths
// and HardEOF setting. It blocks until both goroutines have finished.
func (c Config) DecodeAsync(ctx context.Context, r io.Reader, v Decodable) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reqCh := make(chan pullRequest, c.RequestQueueDepth)
	respCh := make(chan pullResponse, c.ResponseQueueDepth)
	doneRead := make(chan struct{})
	errRead := make(chan error, 1)
	go runReadBackend(ctx, r, reqCh, respCh, c.HardEOF, doneRead, errRead)

	source := newStreamSource(reqCh, respCh, doneRead)
	resCh := goTraversal(func() error {
		return v.DecodeAB(NewDecoder(source))
	})

	res := <-resCh
	close(reqCh)
	rerr := <-errRead

	if res.panic != nil {
		panic(res.panic)
	}
	if rerr != nil {
		return rerr
	}
	return res.err
}

// SessionKind distinguishes an encode session from a decode session in a
// Manager's bookkeeping.
type SessionKind int

const (
	SessionEncode SessionKind = iota
	SessionDecode
)

// Session describes one in-flight streaming session tracked by a Manager.
type Session struct {
	ID   uint64
	Kind SessionKind
}

// Manager tracks concurrently in-flight streaming sessions. A zero Manager
// is not usable; construct one with NewManager. Manager is safe for
// concurrent use: xsync.Map is built for exactly this access pattern, many
// goroutines registering and deregistering short-lived entries under
// contention, the same role it plays as a reflection-result cache in this
// codebase's sibling examples.
type Manager struct {
	sessions *xsync.Map[uint64, *Session]
	nextID   atomic.Uint64
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{sessions: xsync.NewMap[uint64, *Session]()}
}

// EncodeAsync runs cfg.EncodeAsync under a Session tracked by m for the
// duration of the call.
func (m *Manager) EncodeAsync(ctx context.Context, cfg Config, w io.Writer, v Encodable) error {
	id := m.nextID.Add(1)
	m.sessions.Store(id, &Session{ID: id, Kind: SessionEncode})
	defer m.sessions.Delete(id)
	return cfg.EncodeAsync(ctx, w, v)
}

// DecodeAsync runs cfg.DecodeAsync under a Session tracked by m for the
// duration of the call.
func (m *Manager) DecodeAsync(ctx context.Context, cfg Config, r io.Reader, v Decodable) error {
	id := m.nextID.Add(1)
	m.sessions.Store(id, &Session{ID: id, Kind: SessionDecode})
	defer m.sessions.Delete(id)
	return cfg.DecodeAsync(ctx, r, v)
}

// Active returns the number of sessions currently in flight.
func (m *Manager) Active() int {
	n := 0
	m.sessions.Range(func(uint64, *Session) bool {
		n++
		return true
	})
	return n
}

// Sessions returns a snapshot of the currently in-flight sessions.
func (m *Manager) Sessions() []Session {
	out := make([]Session, 0, m.Active())
	m.sessions.Range(func(_ uint64, s *Session) bool {
		out = append(out, *s)
		return true
	})
	return out
}
