package taicalc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatResult prints integral values as exact integers without a fractional
// part, and other values in shortest round-trip form.
func FormatResult(v float64) string {
	if v == 0 {
		return "0"
	}
	if isIntegral(v) {
		return new(big.Float).SetFloat64(v).Text('f', 0)
	}
	return FormatOperand(v)
}

// FormatOperand prints a float the way operands are echoed back: always with a
// fractional part or an exponent.
func FormatOperand(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}

	ret := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(ret, ".") {
		ret += ".0"
	}
	return ret
}
