package main

import (
	"fmt"
	"io"

	"github.com/reusee/taicalc/taicalc"
)

// evalExpressions prints each expression with its value, stopping at the first
// failure.
func evalExpressions(w io.Writer, exprs []string) error {
	for _, expr := range exprs {
		value, err := taicalc.Evaluate(expr)
		if err != nil {
			return fmt.Errorf("%s: %w", expr, err)
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", expr, taicalc.FormatResult(value)); err != nil {
			return err
		}
	}
	return nil
}

func printSymbols(w io.Writer) {
	for _, name := range taicalc.SymbolNames() {
		symbol, _ := taicalc.LookupSymbol(name)
		if symbol.IsFunc() {
			fmt.Fprintf(w, "%s()\n", name)
		} else {
			fmt.Fprintf(w, "%s = %s\n", name, taicalc.FormatOperand(symbol.Value))
		}
	}
}
