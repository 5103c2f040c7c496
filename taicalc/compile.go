package taicalc

// Expr is a compiled expression. It holds no reference to shared state.
type Expr struct {
	Source string
	Root   Node
}

// Compile scans the characters of raw, rewrites the caret operator and parses
// the result as a single expression.
func Compile(raw string) (*Expr, error) {
	if err := scanCharacters(raw); err != nil {
		return nil, err
	}
	source, offsets := normalize(raw)
	p := &parser{
		tokenizer: NewTokenizer(source, offsets),
	}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Expr{
		Source: raw,
		Root:   root,
	}, nil
}

// Names returns the identifiers referenced by the expression in source order,
// without duplicates.
func (e *Expr) Names() (ret []string) {
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			ret = append(ret, name)
		}
	}
	walk(e.Root, func(node Node) bool {
		switch n := node.(type) {
		case *Ident:
			add(n.Name)
		case *Call:
			add(n.Func.Name)
		}
		return true
	})
	return
}

func (e *Expr) checkNames() error {
	var err error
	walk(e.Root, func(node Node) bool {
		var ident *Ident
		switch n := node.(type) {
		case *Ident:
			ident = n
		case *Call:
			ident = &n.Func
		default:
			return true
		}
		if _, ok := symbols[ident.Name]; !ok {
			err = &Error{
				Kind: KindDisallowedIdentifier,
				Pos:  ident.Pos,
				Name: ident.Name,
			}
			return false
		}
		return true
	})
	return err
}
