package operations

import (
	"fmt"
	"math"
	"math/big"

	"github.com/reusee/taicalc/taicalc"
)

var (
	Add = binary("1", "Add", "%s + %s", taicalc.OpAdd)

	Subtract = binary("2", "Subtract", "%s - %s", taicalc.OpSub)

	Multiply = binary("3", "Multiply", "%s * %s", taicalc.OpMul)

	Divide = Operation{
		Key:     "4",
		Name:    "Divide",
		Prompts: []string{"Enter first number", "Enter second number"},
		Apply: func(args []float64) (Result, error) {
			if args[1] == 0 {
				return Result{}, ErrDivisionByZero
			}
			return binary("4", "Divide", "%s / %s", taicalc.OpDiv).Apply(args)
		},
	}

	Power = Operation{
		Key:     "5",
		Name:    "Power (x^y)",
		Prompts: []string{"Enter base", "Enter exponent"},
		Apply:   binary("5", "Power", "%s ^ %s", taicalc.OpPow).Apply,
	}

	SquareRoot = Operation{
		Key:     "6",
		Name:    "Square Root",
		Prompts: []string{"Enter number"},
		Apply: func(args []float64) (Result, error) {
			a := args[0]
			if a < 0 {
				return Result{}, ErrNegativeRadicand
			}
			return Result{
				Expression: fmt.Sprintf("sqrt(%s)", taicalc.FormatOperand(a)),
				Value:      math.Sqrt(a),
			}, nil
		},
	}

	Percentage = Operation{
		Key:     "7",
		Name:    "Percentage",
		Prompts: []string{"Enter number", "Enter percentage"},
		Apply: func(args []float64) (Result, error) {
			a, b := args[0], args[1]
			product, err := taicalc.Apply(taicalc.OpMul, a, b)
			if err != nil {
				return Result{}, err
			}
			value, err := taicalc.Apply(taicalc.OpDiv, product, 100)
			if err != nil {
				return Result{}, err
			}
			return Result{
				Expression: fmt.Sprintf("%s%% of %s", taicalc.FormatOperand(b), taicalc.FormatOperand(a)),
				Value:      value,
			}, nil
		},
	}

	Factorial = Operation{
		Key:     "8",
		Name:    "Factorial",
		Prompts: []string{"Enter a non-negative integer"},
		Apply: func(args []float64) (Result, error) {
			a := args[0]
			if a < 0 || a != math.Trunc(a) {
				return Result{}, ErrNotNaturalNumber
			}
			expr := taicalc.FormatResult(a) + "!"
			if a > maxFactorial {
				return Result{}, fmt.Errorf("%s: %w", expr, taicalc.ErrOverflow)
			}
			// nearest float64 to the exact product
			value, _ := new(big.Float).SetInt(new(big.Int).MulRange(1, int64(a))).Float64()
			return Result{
				Expression: expr,
				Value:      value,
			}, nil
		},
	}
)

// 171! exceeds float64
const maxFactorial = 170

var All = []Operation{
	Add,
	Subtract,
	Multiply,
	Divide,
	Power,
	SquareRoot,
	Percentage,
	Factorial,
}

func Lookup(key string) (Operation, bool) {
	for _, op := range All {
		if op.Key == key {
			return op, true
		}
	}
	return Operation{}, false
}
