package taicalc

type Node interface {
	Position() int
}

type Number struct {
	Value float64
	Text  string
	Pos   int
}

type Ident struct {
	Name string
	Pos  int
}

type UnaryOp struct {
	// Op is '+' or '-'
	Op      byte
	Operand Node
	Pos     int
}

type BinaryOp struct {
	Op    Op
	Left  Node
	Right Node
	Pos   int
}

type Call struct {
	Func Ident
	Args []Node
	Pos  int
}

func (n *Number) Position() int   { return n.Pos }
func (n *Ident) Position() int    { return n.Pos }
func (n *UnaryOp) Position() int  { return n.Pos }
func (n *BinaryOp) Position() int { return n.Pos }
func (n *Call) Position() int     { return n.Pos }

// walk visits nodes in source order, stopping when fn returns false.
func walk(node Node, fn func(Node) bool) bool {
	if !fn(node) {
		return false
	}
	switch n := node.(type) {
	case *UnaryOp:
		return walk(n.Operand, fn)
	case *BinaryOp:
		return walk(n.Left, fn) && walk(n.Right, fn)
	case *Call:
		for _, arg := range n.Args {
			if !walk(arg, fn) {
				return false
			}
		}
	}
	return true
}
