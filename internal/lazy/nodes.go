// Package lazy defines deferred matrix operations.
//
// A node records an operation without performing it. Children may be seeds
// (*tensor.Array, sparse containers), other nodes, or handles that were
// compiled earlier; the compiler resolves them depth-first.
package lazy

// Common operation tags understood by native backends.
const (
	OpAbs   = "abs"
	OpNeg   = "neg"
	OpRound = "round"
	OpFloor = "floor"
	OpCeil  = "ceil"
	OpSqrt  = "sqrt"
	OpExp   = "exp"
	OpLog   = "log"
	OpSin   = "sin"
	OpCos   = "cos"
	OpSign  = "sign"

	OpAdd = "add"
	OpSub = "sub"
	OpMul = "mul"
	OpDiv = "div"
	OpPow = "pow"
	OpMax = "max"
	OpMin = "min"
)

// Unary applies an elementwise operation that preserves shape.
type Unary struct {
	Child any
	Op    string
}

// UnaryArg applies a binary operation between Child and Arg.
//
// Arg is either a scalar (any Go integer or float kind) or a vector
// (*tensor.Array with one dimension, or a []float64, []float32, []int,
// []int32 or []int64 slice). A vector is broadcast along Axis. When IsRight
// is true Arg is the right-hand operand: Child op Arg.
type UnaryArg struct {
	Child   any
	Op      string
	Arg     any
	IsRight bool
	Axis    int
}

// Subset selects rows and columns of Child. A nil selector means All.
type Subset struct {
	Child any
	Rows  Selector
	Cols  Selector
}

// Combine concatenates Children along Axis.
type Combine struct {
	Children []any
	Axis     int
}

// Transpose permutes the axes of Child. Only [0 1] and [1 0] are meaningful
// for matrices.
type Transpose struct {
	Child any
	Axes  []int
}

// Binary applies an elementwise operation between two matrices of equal shape.
type Binary struct {
	Left  any
	Right any
	Op    string
}

// Round rounds Child to Decimals places.
type Round struct {
	Child    any
	Decimals int
}
