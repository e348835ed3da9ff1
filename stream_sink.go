// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

// streamSinkMode mirrors the reference ChannelSinkMultiplexing enum: a
// StreamSink is either forwarding bytes directly to the queue (Channel) or
// accumulating them in an internal BufferSink until an unknown-length
// sequence's true length is known (Buffer).
type streamSinkMode int

const (
	sinkModeChannel streamSinkMode = iota
	sinkModeBuffer
)

// StreamSink is a channel-backed Sink: the synchronous face of a streaming
// encode session. WriteRaw/BeginVar/AdvanceVar/EndVar calls made from the
// traversal goroutine turn into writeChunk messages consumed by the write
// backend goroutine.
//
// In Buffer mode, bytes accumulate in an internal BufferSink instead of
// going to the queue, because the outermost unknown-length sequence's final
// element count is not known until its EndVar — only then can its length
// prefix be written. Nested begin/end pairs (sequences inside the
// unknown-length one) delegate straight into that internal BufferSink,
// which already knows how to back-patch its own nested placeholders;
// depth tracks how many of those nested frames are currently open so EndVar
// knows when it has reached the outermost boundary that must flush.
type StreamSink struct {
	out  chan<- writeChunk
	done <-chan struct{}

	mode       streamSinkMode
	fallback   *BufferSink
	outerCount uint64
	depth      int
}

func newStreamSink(out chan<- writeChunk, done <-chan struct{}) *StreamSink {
	return &StreamSink{out: out, done: done, mode: sinkModeChannel}
}

// send pushes raw bytes straight to the outbound queue, bypassing Buffer
// mode. It is used both by WriteRaw in Channel mode and internally by
// BeginVar/EndVar to emit length prefixes that must never be captured by
// the fallback buffer.
func (s *StreamSink) send(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	buf := append([]byte(nil), p...)
	select {
	case s.out <- writeChunk{data: buf}:
		return nil
	case <-s.done:
		return ErrDisconnected
	}
}

// WriteRaw implements Sink.
func (s *StreamSink) WriteRaw(p []byte) error {
	if s.mode == sinkModeBuffer {
		return s.fallback.WriteRaw(p)
	}
	return s.send(p)
}

// BeginVar implements Sink.
func (s *StreamSink) BeginVar(hint *uint64) error {
	if s.mode == sinkModeChannel {
		if hint != nil {
			var lb [8]byte
			putWord(lb[:], *hint)
			return s.send(lb[:])
		}
		s.mode = sinkModeBuffer
		s.fallback = NewBufferSink()
		s.outerCount = 0
		s.depth = 0
		return nil
	}

	s.depth++
	return s.fallback.BeginVar(hint)
}

// AdvanceVar implements Sink.
func (s *StreamSink) AdvanceVar() error {
	if s.mode != sinkModeBuffer {
		return nil
	}
	if s.depth == 0 {
		s.outerCount++
		return nil
	}
	// Nested unknown-length sequences also need their own running count
	// tracked; the fallback BufferSink's own routine stack already knows
	// whether its current frame is Resolved (no-op) or Resolving
	// (increment), so delegating here keeps doubly-nested generators
	// correct without any extra bookkeeping in StreamSink itself.
	return s.fallback.AdvanceVar()
}

// EndVar implements Sink.
func (s *StreamSink) EndVar() error {
	if s.mode != sinkModeBuffer {
		return nil
	}
	if s.depth == 0 {
		var lb [8]byte
		putWord(lb[:], s.outerCount)
		if err := s.send(lb[:]); err != nil {
			return err
		}
		if err := s.send(s.fallback.Bytes()); err != nil {
			return err
		}
		s.mode = sinkModeChannel
		s.fallback = nil
		return nil
	}
	s.depth--
	return s.fallback.EndVar()
}
