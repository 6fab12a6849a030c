package calc

import (
	"errors"
	"testing"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		a, b     float64
		op       string
		expected float64
	}{
		{3, 2, OpAdd, 5},
		{3, 2, OpSub, 1},
		{3, 2, OpMul, 6},
		{3, 2, OpDiv, 1.5},
		{-4, 0.5, OpMul, -2},
	}

	for _, c := range cases {
		result, err := Calculate(c.a, c.b, c.op)
		if err != nil {
			t.Errorf("Calculate(%v, %v, %q) error = %v", c.a, c.b, c.op, err)
			continue
		}
		if result != c.expected {
			t.Errorf("Calculate(%v, %v, %q) = %v, expected %v", c.a, c.b, c.op, result, c.expected)
		}
	}
}

func TestCalculate_DivideByZero(t *testing.T) {
	_, err := Calculate(1, 0, OpDiv)
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("Expected ErrDivideByZero, got %v", err)
	}
}

func TestCalculate_UnknownOperation(t *testing.T) {
	if _, err := Calculate(1, 2, "pow"); err == nil {
		t.Error("Expected error for unknown operation")
	}
}
