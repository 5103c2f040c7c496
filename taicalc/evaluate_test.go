package taicalc

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func closeTo(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-12*max(1, math.Abs(a), math.Abs(b))
}

func TestEvaluate(t *testing.T) {
	for _, c := range []struct {
		expr     string
		expected float64
	}{
		{"2+2", 4},
		{"2^10", 1024},
		{"sqrt(16)", 4},
		{"sin(0)", 0},
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"10-4-3", 3},
		{"100/10/5", 2},
		{"7/2", 3.5},
		{"7//2", 3},
		{"-7//2", -4},
		{"7.5//2", 3},
		{"1//0.1", 9},
		{"7%3", 1},
		{"-7%3", 2},
		{"7%-3", -2},
		{"10%3.5", 3},
		{"2**3**2", 512},
		{"2^3^2", 512},
		{"-2**2", -4},
		{"(-2)**2", 4},
		{"2**-1", 0.5},
		{"2 ^ 3", 8},
		{"-8**(1/3)", -2},
		{"+-+3", -3},
		{"--3", 3},
		{"pi", math.Pi},
		{"e", math.E},
		{"2*pi", 2 * math.Pi},
		{"cos(0)", 1},
		{"tan(0)", 0},
		{"sin(pi/2)", 1},
		{"log(e)", 1},
		{"log(8, 2)", 3},
		{"log10(1000)", 3},
		{"abs(-3.5)", 3.5},
		{"round(2.5)", 2},
		{"round(3.5)", 4},
		{"round(-2.5)", -2},
		{"round(2.675, 2)", 2.67},
		{"round(1234, -2)", 1200},
		{"round(1250, -2)", 1200},
		{"pow(2, 10)", 1024},
		{"pow(2, 10, 1000)", 24},
		{"pow(3, -1, 7)", 5},
		{"pow(2, 3, -5)", -2},
		{"pow(-2, 3, 5)", 2},
		{"floor(2.7)", 2},
		{"floor(-2.5)", -3},
		{"ceil(2.1)", 3},
		{"1e3", 1000},
		{"1.5e-3", 0.0015},
		{"2e+2", 200},
		{".5+.5", 1},
		{"5.", 5},
		{"00", 0},
		{"0x1f", 31},
		{"0b101", 5},
		{"0o17", 15},
		{" 2 + 3 ", 5},
		{"sqrt(4,)", 2},
		{"sqrt(sqrt(16))", 2},
		{"e^0", 1},
		{"0^0", 1},
		{"1e-400", 0},
	} {
		got, err := Evaluate(c.expr)
		if err != nil {
			t.Fatalf("%s: %v", c.expr, err)
		}
		if !closeTo(got, c.expected) {
			t.Fatalf("%s: expected %v, got %v", c.expr, c.expected, got)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	for _, c := range []struct {
		expr string
		kind ErrorKind
	}{
		// syntax
		{"", KindSyntax},
		{"   ", KindSyntax},
		{"2+", KindSyntax},
		{"(1+2", KindSyntax},
		{"1+2)", KindSyntax},
		{"2 3", KindSyntax},
		{"sqrt 4", KindSyntax},
		{"2pi", KindSyntax},
		{"1e", KindSyntax},
		{"1,2", KindSyntax},
		{"sqrt(", KindSyntax},
		{"()", KindSyntax},
		{"2**", KindSyntax},
		{"2^^3", KindSyntax},
		{"2*^3", KindSyntax},
		{"1..2", KindSyntax},
		{"1.2.3", KindSyntax},
		{"007", KindSyntax},
		{"0x", KindSyntax},
		{"pi.real", KindSyntax},
		{"(sqrt)(4)", KindSyntax},
		{"sqrt(4)(2)", KindSyntax},
		{"foo +", KindSyntax},

		// division by zero
		{"1/0", KindDivisionByZero},
		{"1//0", KindDivisionByZero},
		{"1%0", KindDivisionByZero},
		{"1/(1-1)", KindDivisionByZero},
		{"0**-1", KindDivisionByZero},
		{"0^-1", KindDivisionByZero},
		{"pow(0, -1)", KindDivisionByZero},
		{"log(2, 1)", KindDivisionByZero},

		// domain
		{"sqrt(-1)", KindMathDomain},
		{"log(0)", KindMathDomain},
		{"log(-1)", KindMathDomain},
		{"log10(0)", KindMathDomain},
		{"log(2, 0)", KindMathDomain},
		{"(-8)**(1/3)", KindMathDomain},
		{"pow(2, 3, 0)", KindMathDomain},
		{"pow(2, -1, 4)", KindMathDomain},

		// overflow
		{"10.0**400", KindOverflow},
		{"2^10000", KindOverflow},
		{"1e400", KindOverflow},
		{"1e308*10", KindOverflow},
		{"-1e308-1e308", KindOverflow},

		// type
		{"sqrt(1, 2)", KindType},
		{"sqrt()", KindType},
		{"pi(2)", KindType},
		{"sqrt + 1", KindType},
		{"sqrt", KindType},
		{"round(2.5, 0.5)", KindType},
		{"pow(2)", KindType},
		{"pow(2.5, 2, 3)", KindType},
		{"log(1, 2, 3)", KindType},
	} {
		_, err := Evaluate(c.expr)
		if err == nil {
			t.Fatalf("%q: should fail", c.expr)
		}
		if kind := KindOf(err); kind != c.kind {
			t.Fatalf("%q: expected %v, got %v: %v", c.expr, c.kind, kind, err)
		}
	}
}

func TestErrorSentinels(t *testing.T) {
	for expr, target := range map[string]error{
		"a_b":      ErrForbiddenCharacter,
		"open(1)":  ErrDisallowedIdentifier,
		"(":        ErrSyntax,
		"1/0":      ErrDivisionByZero,
		"sqrt(-1)": ErrMathDomain,
		"9^999":    ErrOverflow,
		"sqrt()":   ErrType,
	} {
		_, err := Evaluate(expr)
		if !errors.Is(err, target) {
			t.Fatalf("%s: got %v", expr, err)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	for expr, expected := range map[string]string{
		"__import__('os')": "forbidden character: _",
		"2\t+2":            `forbidden character: '\t'`,
		"open(1)":          "use of 'open' is not allowed",
		"1/0":              "division by zero",
		"sqrt(-1)":         "math domain error",
		"2^10000":          "numerical result out of range",
		"sqrt(1, 2)":       "sqrt() takes 1 argument (2 given)",
		"log()":            "log() takes 1 to 2 arguments (0 given)",
		"pi(1)":            "'pi' is not callable",
		"2^3)":             "invalid syntax: unexpected ')' at column 4",
		"(1":               "invalid syntax: '(' was never closed at column 1",
	} {
		_, err := Evaluate(expr)
		if err == nil {
			t.Fatalf("%q: should fail", expr)
		}
		if err.Error() != expected {
			t.Fatalf("%q: got %q", expr, err.Error())
		}
	}
}

func TestStepOrder(t *testing.T) {
	// identifiers are checked before anything is evaluated
	for _, expr := range []string{
		"sqrt(-1) + x",
		"1/0 + x",
		"x + 1/0",
		"foo(1/0)",
	} {
		_, err := Evaluate(expr)
		if KindOf(err) != KindDisallowedIdentifier {
			t.Fatalf("%s: got %v", expr, err)
		}
	}

	// characters are checked before parsing
	_, err := Evaluate("(((_")
	if KindOf(err) != KindForbiddenCharacter {
		t.Fatalf("got %v", err)
	}

	// arguments are evaluated before arity and callability
	for _, expr := range []string{
		"sqrt(1/0, 2)",
		"pi(1/0)",
	} {
		_, err := Evaluate(expr)
		if KindOf(err) != KindDivisionByZero {
			t.Fatalf("%s: got %v", expr, err)
		}
	}
}

func TestNesting(t *testing.T) {
	ok := strings.Repeat("(", 200) + "1" + strings.Repeat(")", 200)
	if v, err := Evaluate(ok); err != nil || v != 1 {
		t.Fatalf("got %v %v", v, err)
	}

	deep := strings.Repeat("(", 201) + "1" + strings.Repeat(")", 201)
	_, err := Evaluate(deep)
	if KindOf(err) != KindSyntax || !strings.Contains(err.Error(), "too many nested parentheses") {
		t.Fatalf("got %v", err)
	}

	_, err = Evaluate(strings.Repeat("-", 5000) + "1")
	if KindOf(err) != KindSyntax || !strings.Contains(err.Error(), "too deeply nested") {
		t.Fatalf("got %v", err)
	}

	long := "1" + strings.Repeat("+1", 10000)
	if v, err := Evaluate(long); err != nil || v != 10001 {
		t.Fatalf("got %v %v", v, err)
	}
}

func TestPurity(t *testing.T) {
	names := strings.Join(SymbolNames(), ",")
	for _, expr := range []string{
		"2+2",
		"sqrt(16) * pi",
		"open(1)",
		"1/0",
	} {
		v1, err1 := Evaluate(expr)
		v2, err2 := Evaluate(expr)
		if v1 != v2 {
			t.Fatalf("%s: %v != %v", expr, v1, v2)
		}
		if (err1 == nil) != (err2 == nil) || err1 != nil && err1.Error() != err2.Error() {
			t.Fatalf("%s: %v != %v", expr, err1, err2)
		}
	}
	if got := strings.Join(SymbolNames(), ","); got != names {
		t.Fatalf("got %s", got)
	}
	if sym, ok := LookupSymbol("pi"); !ok || sym.Value != math.Pi {
		t.Fatalf("got %v", sym)
	}
}

func TestCompileAndEval(t *testing.T) {
	expr, err := Compile("sqrt(x) + pi * sqrt(y) + x")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(expr.Names(), " "); got != "sqrt x pi y" {
		t.Fatalf("got %s", got)
	}
	_, err = expr.Eval()
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if e.Kind != KindDisallowedIdentifier || e.Name != "x" || e.Pos != 5 {
		t.Fatalf("got %+v", e)
	}

	expr, err = Compile("2^10")
	if err != nil {
		t.Fatal(err)
	}
	if expr.Source != "2^10" {
		t.Fatalf("got %s", expr.Source)
	}
	bin, ok := expr.Root.(*BinaryOp)
	if !ok || bin.Op != OpPow || bin.Pos != 1 {
		t.Fatalf("got %#v", expr.Root)
	}
	for i := 0; i < 3; i++ {
		v, err := expr.Eval()
		if err != nil {
			t.Fatal(err)
		}
		if v != 1024 {
			t.Fatalf("got %v", v)
		}
	}
}
