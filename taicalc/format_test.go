package taicalc

import (
	"math"
	"testing"
)

func TestFormatResult(t *testing.T) {
	for _, c := range []struct {
		value    float64
		expected string
	}{
		{4, "4"},
		{1024, "1024"},
		{-3, "-3"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{0.5, "0.5"},
		{2.5, "2.5"},
		{1.0 / 3, "0.3333333333333333"},
		{math.Pi, "3.141592653589793"},
		{1e20, "100000000000000000000"},
		{math.Pow(2, 70), "1180591620717411303424"},
		{1e-5, "1e-05"},
		{math.Inf(1), "inf"},
	} {
		if got := FormatResult(c.value); got != c.expected {
			t.Fatalf("%v: got %s", c.value, got)
		}
	}
}

func TestFormatOperand(t *testing.T) {
	for _, c := range []struct {
		value    float64
		expected string
	}{
		{2, "2.0"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.5e300, "1.5e+300"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{123456789.125, "123456789.125"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	} {
		if got := FormatOperand(c.value); got != c.expected {
			t.Fatalf("%v: got %s", c.value, got)
		}
	}
}
