package taicalc

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
)

type Symbol struct {
	Name string

	// constant
	Value float64

	// function
	Func    func(args []float64) (float64, error)
	MinArgs int
	MaxArgs int
}

func (s Symbol) IsFunc() bool {
	return s.Func != nil
}

func (s Symbol) checkArity(n int) error {
	if n >= s.MinArgs && n <= s.MaxArgs {
		return nil
	}
	want := pluralArgs(s.MinArgs)
	if s.MaxArgs != s.MinArgs {
		want = fmt.Sprintf("%d to %s", s.MinArgs, pluralArgs(s.MaxArgs))
	}
	return typeError("%s() takes %s (%d given)", s.Name, want, n)
}

func pluralArgs(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return fmt.Sprintf("%d arguments", n)
}

func constant(name string, value float64) Symbol {
	return Symbol{
		Name:  name,
		Value: value,
	}
}

func function(name string, minArgs, maxArgs int, fn func(args []float64) (float64, error)) Symbol {
	return Symbol{
		Name:    name,
		Func:    fn,
		MinArgs: minArgs,
		MaxArgs: maxArgs,
	}
}

func unary(name string, fn func(x float64) (float64, error)) Symbol {
	return function(name, 1, 1, func(args []float64) (float64, error) {
		return fn(args[0])
	})
}

var symbols = func() map[string]Symbol {
	list := []Symbol{
		constant("pi", math.Pi),
		constant("e", math.E),
		unary("sin", checked(math.Sin)),
		unary("cos", checked(math.Cos)),
		unary("tan", checked(math.Tan)),
		unary("sqrt", sqrt),
		function("log", 1, 2, log),
		unary("log10", log10),
		unary("abs", checked(math.Abs)),
		function("round", 1, 2, round),
		function("pow", 2, 3, pow),
		unary("floor", checked(math.Floor)),
		unary("ceil", checked(math.Ceil)),
	}
	ret := make(map[string]Symbol, len(list))
	for _, sym := range list {
		ret[sym.Name] = sym
	}
	return ret
}()

func LookupSymbol(name string) (Symbol, bool) {
	sym, ok := symbols[name]
	return sym, ok
}

// SymbolNames returns the sorted names of the symbol table.
func SymbolNames() []string {
	names := lo.Keys(symbols)
	slices.Sort(names)
	return names
}
