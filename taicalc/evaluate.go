package taicalc

// Evaluate computes the value of a single-line arithmetic expression.
// Identifiers resolve only against the fixed symbol table. Every failure is an
// *Error.
func Evaluate(raw string) (float64, error) {
	expr, err := Compile(raw)
	if err != nil {
		return 0, err
	}
	return expr.Eval()
}

// Eval checks every identifier against the symbol table, then walks the tree.
func (e *Expr) Eval() (float64, error) {
	if err := e.checkNames(); err != nil {
		return 0, err
	}
	return eval(e.Root)
}

func eval(node Node) (float64, error) {
	switch n := node.(type) {

	case *Number:
		return n.Value, nil

	case *Ident:
		sym, ok := symbols[n.Name]
		if !ok {
			return 0, &Error{
				Kind: KindDisallowedIdentifier,
				Pos:  n.Pos,
				Name: n.Name,
			}
		}
		if sym.IsFunc() {
			return 0, withPos(typeError("'%s' is a function, not a number", n.Name), n.Pos)
		}
		return sym.Value, nil

	case *UnaryOp:
		x, err := eval(n.Operand)
		if err != nil {
			return 0, err
		}
		if n.Op == '-' {
			return -x, nil
		}
		return x, nil

	case *BinaryOp:
		a, err := eval(n.Left)
		if err != nil {
			return 0, err
		}
		b, err := eval(n.Right)
		if err != nil {
			return 0, err
		}
		ret, err := Apply(n.Op, a, b)
		if err != nil {
			return 0, withPos(err, n.Pos)
		}
		return ret, nil

	case *Call:
		sym, ok := symbols[n.Func.Name]
		if !ok {
			return 0, &Error{
				Kind: KindDisallowedIdentifier,
				Pos:  n.Func.Pos,
				Name: n.Func.Name,
			}
		}
		args := make([]float64, 0, len(n.Args))
		for _, arg := range n.Args {
			v, err := eval(arg)
			if err != nil {
				return 0, err
			}
			args = append(args, v)
		}
		if !sym.IsFunc() {
			return 0, withPos(typeError("'%s' is not callable", n.Func.Name), n.Pos)
		}
		if err := sym.checkArity(len(args)); err != nil {
			return 0, withPos(err, n.Pos)
		}
		ret, err := sym.Func(args)
		if err != nil {
			return 0, withPos(err, n.Pos)
		}
		return ret, nil

	}

	return 0, typeError("unknown node %T", node)
}

func withPos(err error, pos int) error {
	if e, ok := err.(*Error); ok && e.Pos < 0 {
		e.Pos = pos
	}
	return err
}
