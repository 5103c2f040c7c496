package taicalc

type Token struct {
	Kind  TokenKind
	Text  string
	Value float64
	Pos   int
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenNumber
	TokenIdentifier
	TokenOperator
	TokenLParen
	TokenRParen
	TokenComma
)

func (t Token) describe() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenNumber:
		return "number " + t.Text
	case TokenIdentifier:
		return "identifier " + t.Text
	}
	return "'" + t.Text + "'"
}
