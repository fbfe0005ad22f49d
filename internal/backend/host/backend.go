// Package host implements a pure Go native backend.
//
// The host backend stands in for a foreign numeric library: it hands out
// opaque pointers, remembers buffer arguments by address only, and validates
// its inputs the way a native library would. It can evaluate any object it
// built, which makes it the reference backend for tests and tools.
package host

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/born-ml/lazymat/internal/native"
	"github.com/born-ml/lazymat/internal/parallel"
	"github.com/born-ml/lazymat/internal/tensor"
)

// Config controls how the host backend evaluates matrices.
type Config struct {
	Parallel parallel.Config // Loop parallelism for Materialize.
}

// DefaultConfig returns the default host configuration.
func DefaultConfig() Config {
	return Config{
		Parallel: parallel.DefaultConfig(),
	}
}

// Backend is the host implementation of native.Backend. It is safe for
// concurrent use.
type Backend struct {
	cfg Config

	mu      sync.Mutex
	objects map[native.Ptr]matrix
	next    native.Ptr
}

// Compile-time check that Backend implements native.Backend.
var _ native.Backend = (*Backend)(nil)

// New creates a host backend.
func New(cfg Config) *Backend {
	return &Backend{
		cfg:     cfg,
		objects: make(map[native.Ptr]matrix),
	}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "host"
}

func (b *Backend) register(m matrix) native.Ptr {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	b.objects[b.next] = m
	return b.next
}

func (b *Backend) lookup(p native.Ptr) (matrix, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.objects[p]
	if !ok {
		return nil, fmt.Errorf("host: unknown pointer %#x", uintptr(p))
	}
	return m, nil
}

// NewDense implements native.Backend.
func (b *Backend) NewDense(rows, cols int, dtype string, data unsafe.Pointer, rowMajor bool) (native.Ptr, error) {
	if rows < 0 || cols < 0 {
		return 0, fmt.Errorf("host: dense: invalid shape (%d, %d)", rows, cols)
	}
	r, err := newRegion(data, dtype, rows*cols)
	if err != nil {
		return 0, fmt.Errorf("host: dense: %w", err)
	}
	return b.register(&dense{rows: rows, cols: cols, data: r, rowMajor: rowMajor}), nil
}

// NewSparse implements native.Backend.
func (b *Backend) NewSparse(rows, cols, nnz int,
	data unsafe.Pointer, dataType string,
	indices unsafe.Pointer, indexType string,
	indptr unsafe.Pointer, rowMajor bool,
) (native.Ptr, error) {
	if rows < 0 || cols < 0 || nnz < 0 {
		return 0, fmt.Errorf("host: sparse: invalid shape (%d, %d) with %d values", rows, cols, nnz)
	}
	major, minor := rows, cols
	if !rowMajor {
		major, minor = cols, rows
	}

	m := &compressed{rows: rows, cols: cols, rowMajor: rowMajor}
	var err error
	if m.data, err = newRegion(data, dataType, nnz); err != nil {
		return 0, fmt.Errorf("host: sparse data: %w", err)
	}
	if m.indices, err = newRegion(indices, indexType, nnz); err != nil {
		return 0, fmt.Errorf("host: sparse indices: %w", err)
	}
	if !m.indices.dtype.IsInteger() {
		return 0, fmt.Errorf("host: sparse indices: %s is not an index type", m.indices.dtype)
	}
	if m.indptr, err = newRegion(indptr, tensor.Uint64.String(), major+1); err != nil {
		return 0, fmt.Errorf("host: sparse indptr: %w", err)
	}

	if m.indptr.index(0) != 0 || m.indptr.index(major) != nnz {
		return 0, fmt.Errorf("host: sparse: indptr must run from 0 to %d", nnz)
	}
	for a := 0; a < major; a++ {
		lo, hi := m.indptr.index(a), m.indptr.index(a+1)
		if hi < lo {
			return 0, fmt.Errorf("host: sparse: indptr decreases at %d", a)
		}
		for p := lo; p < hi; p++ {
			if idx := m.indices.index(p); idx < 0 || idx >= minor {
				return 0, fmt.Errorf("host: sparse: index %d out of range [0, %d)", idx, minor)
			}
		}
	}
	return b.register(m), nil
}

// NewUnary implements native.Backend.
func (b *Backend) NewUnary(child native.Ptr, op string) (native.Ptr, error) {
	fn, ok := unaryOps[op]
	if !ok {
		return 0, fmt.Errorf("host: unknown unary op %q", op)
	}
	c, err := b.lookup(child)
	if err != nil {
		return 0, err
	}
	return b.register(&unary{child: c, op: op, fn: fn}), nil
}

// NewUnaryScalar implements native.Backend.
func (b *Backend) NewUnaryScalar(child native.Ptr, value float64, isRight bool, op string) (native.Ptr, error) {
	fn, ok := binaryOps[op]
	if !ok {
		return 0, fmt.Errorf("host: unknown binary op %q", op)
	}
	c, err := b.lookup(child)
	if err != nil {
		return 0, err
	}
	return b.register(&scalarOp{child: c, op: op, value: value, isRight: isRight, fn: withOperand(fn, isRight)}), nil
}

// NewUnaryVector implements native.Backend.
func (b *Backend) NewUnaryVector(child native.Ptr, vec unsafe.Pointer, n int, op string, isRight bool, axis int) (native.Ptr, error) {
	fn, ok := binaryOps[op]
	if !ok {
		return 0, fmt.Errorf("host: unknown binary op %q", op)
	}
	c, err := b.lookup(child)
	if err != nil {
		return 0, err
	}
	want, err := axisLength(c, axis)
	if err != nil {
		return 0, err
	}
	if n != want {
		return 0, fmt.Errorf("host: vector of length %d does not match axis %d of length %d", n, axis, want)
	}
	r, err := newRegion(vec, tensor.Float64.String(), n)
	if err != nil {
		return 0, err
	}
	return b.register(&vectorOp{child: c, op: op, vec: r, isRight: isRight, axis: axis, fn: withOperand(fn, isRight)}), nil
}

// NewSubset implements native.Backend.
func (b *Backend) NewSubset(child native.Ptr, indices unsafe.Pointer, n int, axis int) (native.Ptr, error) {
	c, err := b.lookup(child)
	if err != nil {
		return 0, err
	}
	limit, err := axisLength(c, axis)
	if err != nil {
		return 0, err
	}
	r, err := newRegion(indices, tensor.Uint64.String(), n)
	if err != nil {
		return 0, err
	}
	for k := 0; k < n; k++ {
		if idx := r.index(k); idx < 0 || idx >= limit {
			return 0, fmt.Errorf("host: subset index %d out of range [0, %d)", idx, limit)
		}
	}
	return b.register(&subset{child: c, indices: r, axis: axis}), nil
}

// NewCombine implements native.Backend.
func (b *Backend) NewCombine(children unsafe.Pointer, count int, axis int) (native.Ptr, error) {
	if count < 1 || children == nil {
		return 0, fmt.Errorf("host: combine needs at least one child")
	}
	if axis != 0 && axis != 1 {
		return 0, fmt.Errorf("host: combine axis must be 0 or 1, got %d", axis)
	}
	ptrs := unsafe.Slice((*native.Ptr)(children), count)

	parts := make([]matrix, count)
	for i, p := range ptrs {
		c, err := b.lookup(p)
		if err != nil {
			return 0, err
		}
		parts[i] = c
	}

	rows, cols := parts[0].dims()
	for i, c := range parts[1:] {
		r, k := c.dims()
		if (axis == 0 && k != cols) || (axis == 1 && r != rows) {
			return 0, fmt.Errorf("host: combine child %d has shape (%d, %d), incompatible with (%d, %d) along axis %d",
				i+1, r, k, rows, cols, axis)
		}
	}
	return b.register(&combine{children: parts, axis: axis}), nil
}

// NewTranspose implements native.Backend.
func (b *Backend) NewTranspose(child native.Ptr) (native.Ptr, error) {
	c, err := b.lookup(child)
	if err != nil {
		return 0, err
	}
	return b.register(&transpose{child: c}), nil
}

// NewBinary implements native.Backend.
func (b *Backend) NewBinary(left, right native.Ptr, op string) (native.Ptr, error) {
	fn, ok := binaryOps[op]
	if !ok {
		return 0, fmt.Errorf("host: unknown binary op %q", op)
	}
	l, err := b.lookup(left)
	if err != nil {
		return 0, err
	}
	r, err := b.lookup(right)
	if err != nil {
		return 0, err
	}
	lr, lc := l.dims()
	rr, rc := r.dims()
	if lr != rr || lc != rc {
		return 0, fmt.Errorf("host: %s: shapes (%d, %d) and (%d, %d) differ", op, lr, lc, rr, rc)
	}
	return b.register(&binary{left: l, right: r, op: op, fn: fn}), nil
}

// Release implements native.Backend. Releasing an unknown pointer is a no-op.
func (b *Backend) Release(p native.Ptr) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, p)
}

// Live returns the number of objects that have not been released.
func (b *Backend) Live() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.objects)
}

// Shape returns the dimensions of the object behind p.
func (b *Backend) Shape(p native.Ptr) (rows, cols int, err error) {
	m, err := b.lookup(p)
	if err != nil {
		return 0, 0, err
	}
	rows, cols = m.dims()
	return rows, cols, nil
}

// Describe returns a structural description of the object behind p,
// for example "round(dense(2x3,float64,C))".
func (b *Backend) Describe(p native.Ptr) (string, error) {
	m, err := b.lookup(p)
	if err != nil {
		return "", err
	}
	return m.describe(), nil
}

// Materialize evaluates the object behind p into a row-major float64 slice.
// Every buffer the object was built from must still be reachable.
func (b *Backend) Materialize(p native.Ptr) ([]float64, error) {
	m, err := b.lookup(p)
	if err != nil {
		return nil, err
	}
	return m.eval(b.cfg.Parallel), nil
}

func axisLength(m matrix, axis int) (int, error) {
	rows, cols := m.dims()
	switch axis {
	case 0:
		return rows, nil
	case 1:
		return cols, nil
	default:
		return 0, fmt.Errorf("host: axis must be 0 or 1, got %d", axis)
	}
}
