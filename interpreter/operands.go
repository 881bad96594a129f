package interpreter

import (
	"fmt"

	"github.com/tsawler/pdfreplay/core"
)

// numbers reads exactly n numeric operands
func numbers(operands []core.Object, n int) ([]float64, error) {
	if len(operands) != n {
		return nil, fmt.Errorf("expected %d operands, got %d", n, len(operands))
	}
	return numeric(operands)
}

// numeric converts every operand to a number
func numeric(operands []core.Object) ([]float64, error) {
	v := make([]float64, len(operands))
	for i, obj := range operands {
		f, ok := core.ToFloat(obj)
		if !ok {
			return nil, fmt.Errorf("operand %d: expected number, got %s", i, typeName(obj))
		}
		v[i] = f
	}
	return v, nil
}

// nameOperand reads a single name operand
func nameOperand(operands []core.Object) (string, error) {
	if len(operands) != 1 {
		return "", fmt.Errorf("expected 1 operand, got %d", len(operands))
	}
	n, ok := operands[0].(core.Name)
	if !ok {
		return "", fmt.Errorf("operand 0: expected name, got %s", typeName(operands[0]))
	}
	return string(n), nil
}

// stringOperand reads a string operand at index i
func stringOperand(operands []core.Object, i int) (core.String, error) {
	s, ok := operands[i].(core.String)
	if !ok {
		return "", fmt.Errorf("operand %d: expected string, got %s", i, typeName(operands[i]))
	}
	return s, nil
}

func typeName(obj core.Object) string {
	if obj == nil {
		return "nothing"
	}
	return obj.Type().String()
}
