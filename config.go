// Copyright 2026 The abcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package abcode

import "fmt"

// ConfigError reports an invalid Config option.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

// Config configures a streaming encode/decode session. The zero Config is
// not valid: use DefaultConfig or NewConfig.
type Config struct {
	// HardEOF rejects trailing bytes at the end of a buffer decode, and
	// rejects any byte the read backend observes after the synchronous
	// traversal has finished asking for data.
	HardEOF bool

	// RequestQueueDepth bounds the read backend's pull-request queue.
	RequestQueueDepth int

	// ResponseQueueDepth bounds the read backend's response queue.
	ResponseQueueDepth int

	// WriteBatchSize is the maximum number of bytes the write backend
	// passes to the transport in a single write. Must be >= 1.
	WriteBatchSize int

	// WriteQueueDepth bounds the write backend's inbound byte-chunk queue.
	WriteQueueDepth int
}

// DefaultConfig mirrors the reference implementation's defaults: small
// channel depths (backpressure-heavy by default) and a conservative write
// batch size.
func DefaultConfig() Config {
	return Config{
		HardEOF:            false,
		RequestQueueDepth:  1,
		ResponseQueueDepth: 1,
		WriteBatchSize:     64,
		WriteQueueDepth:    64,
	}
}

// ConfigOption mutates a Config under construction.
type ConfigOption func(*Config) error

// NewConfig builds a Config starting from DefaultConfig and applying opts in
// order, failing fast on the first invalid option.
func NewConfig(opts ...ConfigOption) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return Config{}, err
		}
	}
	return c, nil
}

// WithHardEOF enables HardEOF.
func WithHardEOF() ConfigOption {
	return func(c *Config) error { c.HardEOF = true; return nil }
}

// WithRequestQueueDepth sets RequestQueueDepth.
func WithRequestQueueDepth(n int) ConfigOption {
	return func(c *Config) error { c.RequestQueueDepth = n; return nil }
}

// WithResponseQueueDepth sets ResponseQueueDepth.
func WithResponseQueueDepth(n int) ConfigOption {
	return func(c *Config) error { c.ResponseQueueDepth = n; return nil }
}

// WithWriteBatchSize sets WriteBatchSize. n must be >= 1.
func WithWriteBatchSize(n int) ConfigOption {
	return func(c *Config) error {
		if n < 1 {
			return &ConfigError{msg: fmt.Sprintf("abcode: write batch size %d is too low", n)}
		}
		c.WriteBatchSize = n
		return nil
	}
}

// WithWriteQueueDepth sets WriteQueueDepth.
func WithWriteQueueDepth(n int) ConfigOption {
	return func(c *Config) error { c.WriteQueueDepth = n; return nil }
}
