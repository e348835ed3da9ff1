// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

import "testing"

// TestBufferSinkIdleInvariant checks spec.md's invariant: when no traversal
// is in progress, the routine stack is empty and the cursor equals the
// buffer length.
func TestBufferSinkIdleInvariant(t *testing.T) {
	s := NewBufferSink()

	hint := uint64(3)
	if err := s.BeginVar(&hint); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := s.AdvanceVar(); err != nil {
			t.Fatal(err)
		}
		if err := WriteU8(s, byte(i)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.EndVar(); err != nil {
		t.Fatal(err)
	}

	if len(s.parents) != 0 {
		t.Fatalf("parents stack not empty: %v", s.parents)
	}
	if s.current != (routineFrame{}) {
		t.Fatalf("current frame not reset: %+v", s.current)
	}
	if s.cursor != len(s.buf) {
		t.Fatalf("cursor %d != buffer length %d", s.cursor, len(s.buf))
	}
}

// TestBufferSinkUnknownLengthBackpatch verifies the back-patch path for a
// sequence whose length is not known up front: the placeholder written at
// BeginVar must be overwritten with the true count at EndVar, and the
// remaining bytes must not move.
func TestBufferSinkUnknownLengthBackpatch(t *testing.T) {
	s := NewBufferSink()

	if err := s.BeginVar(nil); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := s.AdvanceVar(); err != nil {
			t.Fatal(err)
		}
		if err := WriteU8(s, byte(i)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.EndVar(); err != nil {
		t.Fatal(err)
	}

	want := []byte{5, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4}
	got := s.Bytes()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %#x want %#x", i, got[i], want[i])
		}
	}
}

// TestBufferSinkNestedKnownLengthSeqsCounter exercises a Resolved frame's
// seqs bookkeeping: several known-length sibling sequences nested at the
// same level must not pop each other prematurely.
func TestBufferSinkNestedKnownLengthSeqsCounter(t *testing.T) {
	s := NewBufferSink()

	outer := uint64(2)
	if err := s.BeginVar(&outer); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := s.AdvanceVar(); err != nil {
			t.Fatal(err)
		}
		inner := uint64(1)
		if err := s.BeginVar(&inner); err != nil {
			t.Fatal(err)
		}
		if err := s.AdvanceVar(); err != nil {
			t.Fatal(err)
		}
		if err := WriteU8(s, byte(i)); err != nil {
			t.Fatal(err)
		}
		if err := s.EndVar(); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.EndVar(); err != nil {
		t.Fatal(err)
	}

	if s.current != (routineFrame{}) {
		t.Fatalf("current frame not reset: %+v", s.current)
	}
	if len(s.parents) != 0 {
		t.Fatalf("parents stack not empty: %v", s.parents)
	}
}
