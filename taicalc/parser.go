package taicalc

const (
	maxParenLevel = 200
	maxDepth      = 1000
)

type parser struct {
	tokenizer *Tokenizer
	parens    int
	depth     int
}

func (p *parser) current() (*Token, error) {
	return p.tokenizer.Current()
}

func (p *parser) parse() (Node, error) {
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, syntaxError(tok.Pos, "unexpected %s", tok.describe())
	}
	return node, nil
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.current()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenOperator || tok.Text != "+" && tok.Text != "-" {
			return left, nil
		}
		p.tokenizer.Consume()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		op := OpAdd
		if tok.Text == "-" {
			op = OpSub
		}
		left = &BinaryOp{
			Op:    op,
			Left:  left,
			Right: right,
			Pos:   tok.Pos,
		}
	}
}

var termOps = map[string]Op{
	"*":  OpMul,
	"/":  OpDiv,
	"//": OpFloorDiv,
	"%":  OpMod,
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.current()
		if err != nil {
			return nil, err
		}
		op, ok := termOps[tok.Text]
		if tok.Kind != TokenOperator || !ok {
			return left, nil
		}
		p.tokenizer.Consume()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Op:    op,
			Left:  left,
			Right: right,
			Pos:   tok.Pos,
		}
	}
}

func (p *parser) parseUnary() (Node, error) {
	p.depth++
	defer func() {
		p.depth--
	}()

	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	if p.depth > maxDepth {
		return nil, syntaxError(tok.Pos, "expression too deeply nested")
	}
	if tok.Kind == TokenOperator && (tok.Text == "+" || tok.Text == "-") {
		p.tokenizer.Consume()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{
			Op:      tok.Text[0],
			Operand: operand,
			Pos:     tok.Pos,
		}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	tok, err := p.current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenOperator || tok.Text != "**" {
		return base, nil
	}
	p.tokenizer.Consume()
	// right associative, and the exponent may carry its own sign
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &BinaryOp{
		Op:    OpPow,
		Left:  base,
		Right: exp,
		Pos:   tok.Pos,
	}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	tok, err := p.current()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {

	case TokenNumber:
		p.tokenizer.Consume()
		return &Number{
			Value: tok.Value,
			Text:  tok.Text,
			Pos:   tok.Pos,
		}, nil

	case TokenIdentifier:
		p.tokenizer.Consume()
		ident := Ident{
			Name: tok.Text,
			Pos:  tok.Pos,
		}
		next, err := p.current()
		if err != nil {
			return nil, err
		}
		if next.Kind != TokenLParen {
			return &ident, nil
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &Call{
			Func: ident,
			Args: args,
			Pos:  tok.Pos,
		}, nil

	case TokenLParen:
		if err := p.openParen(tok); err != nil {
			return nil, err
		}
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.closeParen(tok); err != nil {
			return nil, err
		}
		return node, nil

	}

	return nil, syntaxError(tok.Pos, "unexpected %s", tok.describe())
}

func (p *parser) parseArgs() (args []Node, err error) {
	open, err := p.current()
	if err != nil {
		return nil, err
	}
	if err := p.openParen(open); err != nil {
		return nil, err
	}
	for {
		tok, err := p.current()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenRParen {
			break
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		tok, err = p.current()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenComma {
			break
		}
		p.tokenizer.Consume()
	}
	if err := p.closeParen(open); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) openParen(tok *Token) error {
	p.parens++
	if p.parens > maxParenLevel {
		return syntaxError(tok.Pos, "too many nested parentheses")
	}
	p.tokenizer.Consume()
	return nil
}

func (p *parser) closeParen(open *Token) error {
	tok, err := p.current()
	if err != nil {
		return err
	}
	if tok.Kind != TokenRParen {
		if tok.Kind == TokenEOF {
			return syntaxError(open.Pos, "'(' was never closed")
		}
		return syntaxError(tok.Pos, "unexpected %s", tok.describe())
	}
	p.tokenizer.Consume()
	p.parens--
	return nil
}
