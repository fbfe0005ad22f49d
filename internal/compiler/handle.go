package compiler

import (
	"fmt"
	"runtime"

	"github.com/born-ml/lazymat/internal/native"
	"github.com/born-ml/lazymat/internal/tensor"
)

// anchorSet is an ordered, duplicate-free list of objects that must stay
// reachable while a native pointer is in use. Identity decides duplicates:
// every anchor is a pointer, so two branches that share a seed hold it once.
//
// A set is never modified after it is attached to a Handle; union and with
// always build a new one.
type anchorSet struct {
	items []any
	index map[any]struct{}
}

func newAnchors(items ...any) anchorSet {
	var s anchorSet
	return s.with(items...)
}

// with returns a copy of s extended by items.
func (s anchorSet) with(items ...any) anchorSet {
	out := anchorSet{
		items: make([]any, 0, len(s.items)+len(items)),
		index: make(map[any]struct{}, len(s.items)+len(items)),
	}
	out.add(s.items...)
	out.add(items...)
	return out
}

// union returns the anchors of every set, in order of first appearance.
func union(sets ...anchorSet) anchorSet {
	n := 0
	for _, s := range sets {
		n += len(s.items)
	}
	out := anchorSet{
		items: make([]any, 0, n),
		index: make(map[any]struct{}, n),
	}
	for _, s := range sets {
		out.add(s.items...)
	}
	return out
}

func (s *anchorSet) add(items ...any) {
	for _, it := range items {
		if _, ok := s.index[it]; ok {
			continue
		}
		s.index[it] = struct{}{}
		s.items = append(s.items, it)
	}
}

// Handle is a compiled matrix: a native pointer together with every host
// object the pointer depends on.
//
// Handles are immutable. The native object is released by a finalizer once
// the Handle itself becomes unreachable; parents built from it keep their
// own references to the native object and to its anchors.
type Handle struct {
	ptr     native.Ptr
	shape   tensor.Shape
	anchors anchorSet
	backend native.Backend
}

func newHandle(backend native.Backend, ptr native.Ptr, shape tensor.Shape, anchors anchorSet) *Handle {
	h := &Handle{
		ptr:     ptr,
		shape:   shape,
		anchors: anchors,
		backend: backend,
	}

	// Release the native object when garbage collected
	runtime.SetFinalizer(h, func(h *Handle) {
		h.backend.Release(h.ptr)
	})

	return h
}

// Ptr returns the native pointer.
func (h *Handle) Ptr() native.Ptr {
	return h.ptr
}

// Shape returns the (rows, cols) shape of the compiled matrix.
func (h *Handle) Shape() tensor.Shape {
	return h.shape.Clone()
}

// Rows returns the number of rows.
func (h *Handle) Rows() int {
	return h.shape[0]
}

// Cols returns the number of columns.
func (h *Handle) Cols() int {
	return h.shape[1]
}

// Anchors returns a copy of the objects kept alive for this handle, in the
// order they were first anchored.
func (h *Handle) Anchors() []any {
	return append([]any(nil), h.anchors.items...)
}

// NumAnchors returns the number of anchored objects.
func (h *Handle) NumAnchors() int {
	return len(h.anchors.items)
}

// Anchored reports whether obj is anchored by h.
func (h *Handle) Anchored(obj any) bool {
	_, ok := h.anchors.index[obj]
	return ok
}

// String returns a short description of the handle.
func (h *Handle) String() string {
	return fmt.Sprintf("Handle(%#x, shape=%v, anchors=%d)", uintptr(h.ptr), h.shape, len(h.anchors.items))
}
