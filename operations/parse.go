package operations

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidNumber = errors.New("invalid number")

// ParseOperand reads a decimal float the way a number prompt accepts it:
// surrounding spaces, a sign, underscores between digits and an exponent are
// allowed. Infinities, NaN and values beyond float64 are rejected.
func ParseOperand(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if !isDecimal(str) {
		return 0, ErrInvalidNumber
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(str, "_", ""), 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return v, nil
}

func isDecimal(str string) bool {
	i := 0
	if i < len(str) && (str[i] == '+' || str[i] == '-') {
		i++
	}
	intDigits := digits(str[i:])
	if intDigits < 0 {
		return false
	}
	i += intDigits
	fracDigits := 0
	if i < len(str) && str[i] == '.' {
		i++
		fracDigits = digits(str[i:])
		if fracDigits < 0 {
			return false
		}
		i += fracDigits
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}
	if i < len(str) && (str[i] == 'e' || str[i] == 'E') {
		i++
		if i < len(str) && (str[i] == '+' || str[i] == '-') {
			i++
		}
		expDigits := digits(str[i:])
		if expDigits <= 0 {
			return false
		}
		i += expDigits
	}
	return i == len(str)
}

// digits returns the length of the leading digit run, or -1 if an underscore
// is not surrounded by digits.
func digits(str string) int {
	n := 0
	for n < len(str) {
		c := str[n]
		if c >= '0' && c <= '9' {
			n++
			continue
		}
		if c == '_' {
			if n == 0 || n+1 >= len(str) || str[n+1] < '0' || str[n+1] > '9' {
				return -1
			}
			n++
			continue
		}
		break
	}
	return n
}
