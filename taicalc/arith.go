package taicalc

import (
	"math"
)

type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpFloorDiv
	OpMod
	OpPow
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpFloorDiv:
		return "//"
	case OpMod:
		return "%"
	case OpPow:
		return "**"
	}
	return "?"
}

// Apply computes a op b with the error semantics of the evaluator.
func Apply(op Op, a, b float64) (float64, error) {
	switch op {

	case OpAdd:
		return checkResult(a+b, a, b)

	case OpSub:
		return checkResult(a-b, a, b)

	case OpMul:
		return checkResult(a*b, a, b)

	case OpDiv:
		if b == 0 {
			return 0, newError(KindDivisionByZero, "")
		}
		return checkResult(a/b, a, b)

	case OpFloorDiv:
		if b == 0 {
			return 0, newError(KindDivisionByZero, "")
		}
		div, _ := divmod(a, b)
		return checkResult(div, a, b)

	case OpMod:
		if b == 0 {
			return 0, newError(KindDivisionByZero, "")
		}
		_, mod := divmod(a, b)
		return mod, nil

	case OpPow:
		return power(a, b)

	}
	return 0, typeError("unsupported operator %v", op)
}

// divmod computes floored quotient and modulo, the modulo takes the sign of b.
func divmod(a, b float64) (div, mod float64) {
	mod = math.Mod(a, b)
	div = (a - mod) / b
	if mod != 0 {
		if (b < 0) != (mod < 0) {
			mod += b
			div -= 1
		}
	} else {
		mod = math.Copysign(0, b)
	}
	if div != 0 {
		floor := math.Floor(div)
		if div-floor > 0.5 {
			floor += 1
		}
		div = floor
	} else {
		div = math.Copysign(0, a/b)
	}
	return
}

func power(base, exp float64) (float64, error) {
	if base == 0 && exp < 0 {
		return 0, newError(KindDivisionByZero, "0.0 cannot be raised to a negative power")
	}
	if base < 0 && !isIntegral(exp) {
		return 0, newError(KindMathDomain, "negative number cannot be raised to a fractional power")
	}
	return checkResult(math.Pow(base, exp), base, exp)
}
