package calc

import (
	"errors"
	"fmt"
)

// 支持的运算
const (
	OpAdd = "add"
	OpSub = "sub"
	OpMul = "mul"
	OpDiv = "div"
)

var ErrDivideByZero = errors.New("除数不能为零")

// Calculate 对两个数执行指定运算
func Calculate(a, b float64, op string) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("无效的运算: %q (可选: add, sub, mul, div)", op)
	}
}
