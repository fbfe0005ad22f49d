// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package lazy provides deferred matrix operations.
//
// Nodes describe an operation without running it. A tree of nodes over
// tensor arrays and sparse containers is turned into a native object by the
// compiler package.
//
// Example:
//
//	expr := &lazy.Round{
//	    Child: &lazy.Subset{
//	        Child: &lazy.Transpose{Child: a},
//	        Rows:  lazy.Slice{Start: 0, Stop: 2},
//	    },
//	}
package lazy

import (
	"github.com/born-ml/lazymat/internal/lazy"
)

// Node types.
type (
	Unary     = lazy.Unary
	UnaryArg  = lazy.UnaryArg
	Subset    = lazy.Subset
	Combine   = lazy.Combine
	Transpose = lazy.Transpose
	Binary    = lazy.Binary
	Round     = lazy.Round
)

// Selector types.
type (
	Selector   = lazy.Selector
	All        = lazy.All
	Indices    = lazy.Indices
	Mask       = lazy.Mask
	Slice      = lazy.Slice
	IndexError = lazy.IndexError
)

// End is a Slice bound meaning "to the end of the dimension".
const End = lazy.End

// Operation tags.
const (
	OpAbs   = lazy.OpAbs
	OpNeg   = lazy.OpNeg
	OpRound = lazy.OpRound
	OpFloor = lazy.OpFloor
	OpCeil  = lazy.OpCeil
	OpSqrt  = lazy.OpSqrt
	OpExp   = lazy.OpExp
	OpLog   = lazy.OpLog
	OpSin   = lazy.OpSin
	OpCos   = lazy.OpCos
	OpSign  = lazy.OpSign

	OpAdd = lazy.OpAdd
	OpSub = lazy.OpSub
	OpMul = lazy.OpMul
	OpDiv = lazy.OpDiv
	OpPow = lazy.OpPow
	OpMax = lazy.OpMax
	OpMin = lazy.OpMin
)
