// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package compiler turns lazy matrix expressions into native handles.
//
// # Overview
//
// Compile walks an expression depth-first. Leaves (dense arrays and sparse
// containers) become native matrix objects over the caller's own memory;
// every node becomes one native constructor call over its compiled children.
// The result is a Handle: the native pointer plus the set of Go objects whose
// memory the native object still refers to. Keeping the Handle reachable
// keeps that memory alive.
//
// # Basic Usage
//
//	backend := host.New(host.DefaultConfig())
//	c := compiler.New(backend, compiler.DefaultConfig())
//
//	a, _ := tensor.FromSlice([]float64{1, -2, 3, -4}, tensor.Shape{2, 2})
//	h, err := c.Compile(&lazy.Unary{Child: a, Op: lazy.OpAbs})
//	if err != nil {
//	    var unsupported *compiler.UnsupportedTypeError
//	    if errors.As(err, &unsupported) { ... }
//	}
//
// # Errors
//
//   - UnsupportedTypeError: an input outside the closed set of expression types
//   - UnsupportedOperationError: a node whose parameters cannot be compiled
//   - BackendError: the native backend rejected a constructor call
package compiler

import (
	"github.com/born-ml/lazymat/internal/compiler"
	"github.com/born-ml/lazymat/internal/native"
)

// Backend is the native constructor surface the compiler drives.
type Backend = native.Backend

// Ptr is an opaque reference to a native matrix object.
type Ptr = native.Ptr

// Compiler types.
type (
	Compiler = compiler.Compiler
	Config   = compiler.Config
	Handle   = compiler.Handle
)

// Error types.
type (
	UnsupportedTypeError      = compiler.UnsupportedTypeError
	UnsupportedOperationError = compiler.UnsupportedOperationError
	BackendError              = compiler.BackendError
)

// Sentinel errors.
var (
	ErrBackend = compiler.ErrBackend
	ErrNullPtr = native.ErrNullPtr
)

// New creates a compiler that drives backend.
func New(backend Backend, cfg Config) *Compiler {
	return compiler.New(backend, cfg)
}

// DefaultConfig returns the default compiler configuration.
func DefaultConfig() Config {
	return compiler.DefaultConfig()
}
