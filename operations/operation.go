package operations

import (
	"errors"
	"fmt"

	"github.com/reusee/taicalc/taicalc"
)

// Operation is a menu entry computing directly on pre-parsed operands.
type Operation struct {
	Key     string
	Name    string
	Prompts []string
	Apply   func(args []float64) (Result, error)
}

type Result struct {
	Expression string
	Value      float64
}

var (
	ErrDivisionByZero     = errors.New("division by zero")
	ErrNegativeRadicand   = errors.New("cannot take square root of negative number")
	ErrNotNaturalNumber   = errors.New("factorial requires a non-negative integer")
	ErrWrongOperandNumber = errors.New("wrong number of operands")
)

// Call checks the operand count before applying the operation.
func (o Operation) Call(args ...float64) (Result, error) {
	if len(args) != len(o.Prompts) {
		return Result{}, fmt.Errorf("%s: %w: want %d, got %d", o.Name, ErrWrongOperandNumber, len(o.Prompts), len(args))
	}
	return o.Apply(args)
}

func binary(key, name, format string, op taicalc.Op) Operation {
	return Operation{
		Key:     key,
		Name:    name,
		Prompts: []string{"Enter first number", "Enter second number"},
		Apply: func(args []float64) (Result, error) {
			a, b := args[0], args[1]
			value, err := taicalc.Apply(op, a, b)
			if err != nil {
				return Result{}, err
			}
			return Result{
				Expression: fmt.Sprintf(format, taicalc.FormatOperand(a), taicalc.FormatOperand(b)),
				Value:      value,
			}, nil
		},
	}
}
