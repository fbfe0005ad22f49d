package host

import (
	"fmt"
	"strings"

	"github.com/born-ml/lazymat/internal/parallel"
)

// matrix is a node of the host backend's object graph. Nodes refer to their
// inputs directly, so releasing an input's Ptr never invalidates a node
// built on top of it.
type matrix interface {
	dims() (rows, cols int)
	eval(cfg parallel.Config) []float64 // row-major
	describe() string
}

type dense struct {
	rows, cols int
	data       region
	rowMajor   bool
}

func (m *dense) dims() (int, int) { return m.rows, m.cols }

func (m *dense) eval(cfg parallel.Config) []float64 {
	out := make([]float64, m.rows*m.cols)
	parallel.ForGrid(m.rows, m.cols, func(i, j int) {
		k := j*m.rows + i
		if m.rowMajor {
			k = i*m.cols + j
		}
		out[i*m.cols+j] = m.data.float(k)
	}, cfg)
	return out
}

func (m *dense) describe() string {
	order := "F"
	if m.rowMajor {
		order = "C"
	}
	return fmt.Sprintf("dense(%dx%d,%s,%s)", m.rows, m.cols, m.data.dtype, order)
}

type compressed struct {
	rows, cols int
	data       region
	indices    region
	indptr     region // uint64
	rowMajor   bool
}

func (m *compressed) dims() (int, int) { return m.rows, m.cols }

// eval sums duplicate entries, as scipy does when densifying.
func (m *compressed) eval(_ parallel.Config) []float64 {
	out := make([]float64, m.rows*m.cols)
	major := m.indptr.n - 1
	for a := 0; a < major; a++ {
		for p := m.indptr.index(a); p < m.indptr.index(a+1); p++ {
			b := m.indices.index(p)
			if m.rowMajor {
				out[a*m.cols+b] += m.data.float(p)
			} else {
				out[b*m.cols+a] += m.data.float(p)
			}
		}
	}
	return out
}

func (m *compressed) describe() string {
	kind := "csc"
	if m.rowMajor {
		kind = "csr"
	}
	return fmt.Sprintf("%s(%dx%d,nnz=%d,%s,%s)", kind, m.rows, m.cols, m.data.n, m.data.dtype, m.indices.dtype)
}

type unary struct {
	child matrix
	op    string
	fn    func(float64) float64
}

func (m *unary) dims() (int, int) { return m.child.dims() }

func (m *unary) eval(cfg parallel.Config) []float64 {
	out := m.child.eval(cfg)
	parallel.For(len(out), func(k int) {
		out[k] = m.fn(out[k])
	}, cfg)
	return out
}

func (m *unary) describe() string {
	return fmt.Sprintf("%s(%s)", m.op, m.child.describe())
}

type scalarOp struct {
	child   matrix
	op      string
	value   float64
	isRight bool
	fn      func(x, v float64) float64
}

func (m *scalarOp) dims() (int, int) { return m.child.dims() }

func (m *scalarOp) eval(cfg parallel.Config) []float64 {
	out := m.child.eval(cfg)
	parallel.For(len(out), func(k int) {
		out[k] = m.fn(out[k], m.value)
	}, cfg)
	return out
}

func (m *scalarOp) describe() string {
	if m.isRight {
		return fmt.Sprintf("%s(%s,%g)", m.op, m.child.describe(), m.value)
	}
	return fmt.Sprintf("%s(%g,%s)", m.op, m.value, m.child.describe())
}

// vectorOp applies fn against vec: along axis 0 vec[i] pairs with row i,
// along axis 1 vec[j] pairs with column j.
type vectorOp struct {
	child   matrix
	op      string
	vec     region // float64
	isRight bool
	axis    int
	fn      func(x, v float64) float64
}

func (m *vectorOp) dims() (int, int) { return m.child.dims() }

func (m *vectorOp) eval(cfg parallel.Config) []float64 {
	rows, cols := m.child.dims()
	out := m.child.eval(cfg)
	parallel.ForGrid(rows, cols, func(i, j int) {
		k := j
		if m.axis == 0 {
			k = i
		}
		out[i*cols+j] = m.fn(out[i*cols+j], m.vec.float(k))
	}, cfg)
	return out
}

func (m *vectorOp) describe() string {
	side := "left"
	if m.isRight {
		side = "right"
	}
	return fmt.Sprintf("%s(%s,vec[%d],axis=%d,%s)", m.op, m.child.describe(), m.vec.n, m.axis, side)
}

type subset struct {
	child   matrix
	indices region // uint64
	axis    int
}

func (m *subset) dims() (int, int) {
	rows, cols := m.child.dims()
	if m.axis == 0 {
		return m.indices.n, cols
	}
	return rows, m.indices.n
}

func (m *subset) eval(cfg parallel.Config) []float64 {
	_, srcCols := m.child.dims()
	src := m.child.eval(cfg)
	rows, cols := m.dims()
	out := make([]float64, rows*cols)
	parallel.ForGrid(rows, cols, func(i, j int) {
		si, sj := i, j
		if m.axis == 0 {
			si = m.indices.index(i)
		} else {
			sj = m.indices.index(j)
		}
		out[i*cols+j] = src[si*srcCols+sj]
	}, cfg)
	return out
}

func (m *subset) describe() string {
	return fmt.Sprintf("subset(%s,axis=%d,n=%d)", m.child.describe(), m.axis, m.indices.n)
}

type combine struct {
	children []matrix
	axis     int
}

func (m *combine) dims() (int, int) {
	rows, cols := m.children[0].dims()
	for _, c := range m.children[1:] {
		r, k := c.dims()
		if m.axis == 0 {
			rows += r
		} else {
			cols += k
		}
	}
	return rows, cols
}

func (m *combine) eval(cfg parallel.Config) []float64 {
	rows, cols := m.dims()
	out := make([]float64, rows*cols)
	offset := 0
	for _, c := range m.children {
		r, k := c.dims()
		part := c.eval(cfg)
		for i := 0; i < r; i++ {
			for j := 0; j < k; j++ {
				if m.axis == 0 {
					out[(offset+i)*cols+j] = part[i*k+j]
				} else {
					out[i*cols+offset+j] = part[i*k+j]
				}
			}
		}
		if m.axis == 0 {
			offset += r
		} else {
			offset += k
		}
	}
	return out
}

func (m *combine) describe() string {
	parts := make([]string, len(m.children))
	for i, c := range m.children {
		parts[i] = c.describe()
	}
	return fmt.Sprintf("combine(axis=%d,%s)", m.axis, strings.Join(parts, ","))
}

type transpose struct {
	child matrix
}

func (m *transpose) dims() (int, int) {
	rows, cols := m.child.dims()
	return cols, rows
}

func (m *transpose) eval(cfg parallel.Config) []float64 {
	srcRows, srcCols := m.child.dims()
	src := m.child.eval(cfg)
	out := make([]float64, len(src))
	parallel.ForGrid(srcCols, srcRows, func(i, j int) {
		out[i*srcRows+j] = src[j*srcCols+i]
	}, cfg)
	return out
}

func (m *transpose) describe() string {
	return fmt.Sprintf("transpose(%s)", m.child.describe())
}

type binary struct {
	left, right matrix
	op          string
	fn          func(a, b float64) float64
}

func (m *binary) dims() (int, int) { return m.left.dims() }

func (m *binary) eval(cfg parallel.Config) []float64 {
	out := m.left.eval(cfg)
	rhs := m.right.eval(cfg)
	parallel.For(len(out), func(k int) {
		out[k] = m.fn(out[k], rhs[k])
	}, cfg)
	return out
}

func (m *binary) describe() string {
	return fmt.Sprintf("%s(%s,%s)", m.op, m.left.describe(), m.right.describe())
}
