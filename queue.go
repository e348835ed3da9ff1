// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

// pullRequest is sent by StreamSource to the read backend: "give me exactly
// n bytes". The request queue element stays a plain int (not a byte) since
// it only ever carries a size, not payload.
type pullRequest struct {
	n int
}

// pullResponse is sent by the read backend back to StreamSource: either
// exactly the requested number of bytes, or an error. Per spec.md's open
// question (§9), the queue element is widened from a single byte to a
// chunk for throughput; semantics are unchanged.
type pullResponse struct {
	data []byte
	err  error
}

// writeChunk is one batch of bytes flowing from StreamSink to the write
// backend. Widened from a single byte for the same reason as pullResponse.
type writeChunk struct {
	data []byte
}
