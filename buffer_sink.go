// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

// routineFrame is the Buffer Sink's per-container bookkeeping: a tagged
// union with two states, ported directly from the reference
// BufferSinkRoutine enum (spec.md §4.5 / §9 "implement as a tagged
// variant... do not use hidden reference graphs").
//
// Resolved (resolving == false): the container's length was known at
// BeginVar time and already written; seqs counts how many nested Resolved
// begins have piled onto this frame without pushing a new one.
//
// Resolving (resolving == true): the container's length was not known at
// BeginVar time. cursor is the byte offset of the zero placeholder written
// at BeginVar, size is the running element count, back-patched into cursor
// at EndVar.
type routineFrame struct {
	resolving bool
	seqs      uint64
	cursor    int
	size      uint64
}

// BufferSink is a synchronous, in-memory Sink. It owns a growable byte
// buffer and a write cursor that may sit mid-buffer (while back-patching an
// earlier length placeholder) or at the end (while appending normally).
type BufferSink struct {
	buf     []byte
	cursor  int
	current routineFrame
	parents []routineFrame
}

// NewBufferSink returns an empty BufferSink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

// NewBufferSinkOnto returns a BufferSink that resumes writing after the
// current contents of *buf. The sink keeps its own copy of the slice header:
// *buf is not updated as the sink grows, and the result is read back with
// Bytes (EncodeInto stores it into *buf).
func NewBufferSinkOnto(buf *[]byte) *BufferSink {
	return &BufferSink{buf: *buf, cursor: len(*buf)}
}

// Bytes returns the accumulated buffer. The slice aliases the sink's
// internal storage and must not be retained across further writes.
func (b *BufferSink) Bytes() []byte { return b.buf }

// Len returns the number of bytes written so far.
func (b *BufferSink) Len() int { return len(b.buf) }

// Reset empties the buffer and cursor, ready for reuse. It does not reset
// routine-stack state; callers should only Reset between independent
// top-level encodes (spec.md invariant: "when no traversal is in progress,
// the routine stack is empty and the cursor equals the buffer length").
func (b *BufferSink) Reset() {
	b.buf = b.buf[:0]
	b.cursor = 0
}

// WriteRaw splits the write at the buffer's current end: the portion up to
// the end overwrites bytes at the cursor (back-patching), the remainder
// extends the buffer. This is the mechanism that lets EndVar rewrite a
// length placeholder after the fact.
func (b *BufferSink) WriteRaw(p []byte) error {
	overlap := len(b.buf) - b.cursor
	if overlap > len(p) {
		overlap = len(p)
	}
	copy(b.buf[b.cursor:b.cursor+overlap], p[:overlap])
	rest := p[overlap:]
	if len(rest) == 0 {
		b.cursor += overlap
		return nil
	}
	b.buf = append(b.buf, rest...)
	b.cursor = len(b.buf)
	return nil
}

func (b *BufferSink) pushResolved(n uint64) error {
	if err := WriteU64(b, n); err != nil {
		return err
	}
	if b.current.resolving {
		b.parents = append(b.parents, b.current)
		b.current = routineFrame{seqs: 1}
	} else {
		b.current.seqs++
	}
	return nil
}

func (b *BufferSink) pushResolving() error {
	if b.current.resolving || b.current.seqs != 0 {
		b.parents = append(b.parents, b.current)
	}
	b.current = routineFrame{resolving: true, cursor: b.cursor}
	return WriteU64(b, 0)
}

// BeginVar starts a variable-sized container. hint == nil means the length
// is not known yet; a zero placeholder is written now and back-patched at
// EndVar.
func (b *BufferSink) BeginVar(hint *uint64) error {
	if hint != nil {
		return b.pushResolved(*hint)
	}
	return b.pushResolving()
}

// AdvanceVar increments the running element count of the innermost
// Resolving frame; it is a no-op for a Resolved frame, whose count was
// already committed to the wire at BeginVar.
func (b *BufferSink) AdvanceVar() error {
	if b.current.resolving {
		b.current.size++
	}
	return nil
}

// EndVar closes the most recently begun container. For a Resolving frame
// this seeks back to the placeholder, writes the final count, and restores
// the cursor; for a Resolved frame it decrements (and eventually pops) the
// open-count.
func (b *BufferSink) EndVar() error {
	if !b.current.resolving {
		if b.current.seqs == 1 {
			b.popParent()
			return nil
		}
		if b.current.seqs > 0 {
			b.current.seqs--
		}
		return nil
	}

	saved := b.cursor
	finalSize := b.current.size
	placeholder := b.current.cursor
	b.popParent()

	b.cursor = placeholder
	if err := WriteU64(b, finalSize); err != nil {
		return err
	}
	b.cursor = saved
	return nil
}

func (b *BufferSink) popParent() {
	if len(b.parents) == 0 {
		b.current = routineFrame{}
		return
	}
	b.current = b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]
}
