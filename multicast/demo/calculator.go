package demo

import (
	"fmt"

	"github.com/krew-solutions/multicast-go/multicast/delegate"
)

// Operands carries the two inputs of a binary arithmetic delegate.
type Operands struct {
	Left  int
	Right int
}

// BinaryOp is the custom delegate type of the arithmetic walk-through.
// Free functions (Multiply), closures (MakeAccumulator) and func
// literals all coerce to it.
type BinaryOp = delegate.Delegate[Operands, int]

var ErrDivideByZero = fmt.Errorf("demo: divide by zero")

func Add(o Operands) (int, error) {
	return o.Left + o.Right, nil
}

func Multiply(o Operands) (int, error) {
	return o.Left * o.Right, nil
}

func Subtract(o Operands) (int, error) {
	return o.Left - o.Right, nil
}

func Divide(o Operands) (int, error) {
	if o.Right == 0 {
		return 0, ErrDivideByZero
	}
	return o.Left / o.Right, nil
}

// MakeAccumulator returns a delegate closing over a running total.
func MakeAccumulator() delegate.Func[int, int] {
	total := 0
	return func(n int) (int, error) {
		total += n
		return total, nil
	}
}
