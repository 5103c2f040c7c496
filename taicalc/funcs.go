package taicalc

import (
	"math"
	"math/big"
	"strconv"
)

func checked(fn func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		return checkResult(fn(x), x)
	}
}

// checkResult maps a non-finite result of finite operands to a typed error.
func checkResult(result float64, operands ...float64) (float64, error) {
	for _, operand := range operands {
		if math.IsInf(operand, 0) || math.IsNaN(operand) {
			return result, nil
		}
	}
	if math.IsNaN(result) {
		return 0, newError(KindMathDomain, "")
	}
	if math.IsInf(result, 0) {
		return 0, newError(KindOverflow, "")
	}
	return result, nil
}

func sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, newError(KindMathDomain, "")
	}
	return math.Sqrt(x), nil
}

func log(args []float64) (float64, error) {
	x := args[0]
	if x <= 0 {
		return 0, newError(KindMathDomain, "")
	}
	if len(args) == 1 {
		return math.Log(x), nil
	}
	base := args[1]
	if base <= 0 {
		return 0, newError(KindMathDomain, "")
	}
	if base == 1 {
		return 0, newError(KindDivisionByZero, "")
	}
	return math.Log(x) / math.Log(base), nil
}

func log10(x float64) (float64, error) {
	if x <= 0 {
		return 0, newError(KindMathDomain, "")
	}
	return math.Log10(x), nil
}

func isIntegral(x float64) bool {
	return !math.IsInf(x, 0) && x == math.Trunc(x)
}

func round(args []float64) (float64, error) {
	x := args[0]
	if len(args) == 1 {
		return math.RoundToEven(x), nil
	}
	if !isIntegral(args[1]) {
		return 0, typeError("round() ndigits must be an integer")
	}
	ndigits := args[1]
	switch {
	case ndigits > 323:
		return x, nil
	case ndigits < -308:
		return math.Copysign(0, x), nil
	case ndigits >= 0:
		// strconv rounds the exact binary value half to even
		ret, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', int(ndigits), 64), 64)
		if err != nil {
			return 0, newError(KindOverflow, "")
		}
		return ret, nil
	}
	p := math.Pow10(int(-ndigits))
	return checkResult(math.RoundToEven(x/p)*p, x)
}

func pow(args []float64) (float64, error) {
	if len(args) == 2 {
		return Apply(OpPow, args[0], args[1])
	}
	for _, arg := range args {
		if !isIntegral(arg) {
			return 0, typeError("pow() 3rd argument not allowed unless all arguments are integers")
		}
	}
	base := toBigInt(args[0])
	exp := toBigInt(args[1])
	mod := toBigInt(args[2])
	if mod.Sign() == 0 {
		return 0, newError(KindMathDomain, "pow() 3rd argument cannot be 0")
	}
	abs := new(big.Int).Abs(mod)
	base.Mod(base, abs)
	if exp.Sign() < 0 {
		inverse := new(big.Int).ModInverse(base, abs)
		if inverse == nil {
			return 0, newError(KindMathDomain, "base is not invertible for the given modulus")
		}
		base = inverse
		exp.Neg(exp)
	}
	result := new(big.Int).Exp(base, exp, abs)
	if mod.Sign() < 0 && result.Sign() != 0 {
		result.Add(result, mod)
	}
	ret, _ := new(big.Float).SetInt(result).Float64()
	return ret, nil
}

func toBigInt(x float64) *big.Int {
	ret, _ := big.NewFloat(x).Int(nil)
	return ret
}
