// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package host provides the pure Go native backend.
//
// The host backend builds matrix objects the same way a foreign numeric
// library would, holding buffer addresses rather than Go references, and
// can evaluate them for inspection.
//
// Example:
//
//	backend := host.New(host.DefaultConfig())
//	c := compiler.New(backend, compiler.DefaultConfig())
//	h, err := c.Compile(expr)
//	values, err := backend.Materialize(h.Ptr())
package host

import (
	"github.com/born-ml/lazymat/compiler"
	internalhost "github.com/born-ml/lazymat/internal/backend/host"
)

// Backend is the host implementation of compiler.Backend.
type Backend = internalhost.Backend

// Config controls host evaluation.
type Config = internalhost.Config

// Compile-time check that Backend implements compiler.Backend.
var _ compiler.Backend = (*Backend)(nil)

// New creates a host backend.
func New(cfg Config) *Backend {
	return internalhost.New(cfg)
}

// DefaultConfig returns the default host configuration.
func DefaultConfig() Config {
	return internalhost.DefaultConfig()
}
