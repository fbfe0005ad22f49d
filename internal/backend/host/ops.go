package host

import "math"

var unaryOps = map[string]func(x float64) float64{
	"abs":   math.Abs,
	"neg":   func(x float64) float64 { return -x },
	"round": math.RoundToEven,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"sqrt":  math.Sqrt,
	"exp":   math.Exp,
	"log":   math.Log,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"sign": func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return x
		}
	},
}

var binaryOps = map[string]func(a, b float64) float64{
	"add": func(a, b float64) float64 { return a + b },
	"sub": func(a, b float64) float64 { return a - b },
	"mul": func(a, b float64) float64 { return a * b },
	"div": func(a, b float64) float64 { return a / b },
	"pow": math.Pow,
	"max": math.Max,
	"min": math.Min,
}

// withOperand orders a binary op around a fixed operand v.
// isRight means v is the right-hand side: x op v.
func withOperand(f func(a, b float64) float64, isRight bool) func(x, v float64) float64 {
	if isRight {
		return f
	}
	return func(x, v float64) float64 { return f(v, x) }
}
