package taicalc

import (
	"errors"
	"math"
	"math/big"
	"strconv"
)

// Tokenizer splits a normalized expression. It expects input that already
// passed the character scan, so every byte is ASCII.
type Tokenizer struct {
	source  string
	offsets []int
	pos     int
	current *Token
}

func NewTokenizer(source string, offsets []int) *Tokenizer {
	return &Tokenizer{
		source:  source,
		offsets: offsets,
	}
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

// rawPos maps a position in the normalized source back to the raw input.
func (t *Tokenizer) rawPos(pos int) int {
	if t.offsets == nil {
		return pos
	}
	if pos < len(t.offsets) {
		return t.offsets[pos]
	}
	if len(t.offsets) > 0 {
		return t.offsets[len(t.offsets)-1] + 1
	}
	return 0
}

func (t *Tokenizer) peekByte(offset int) byte {
	if t.pos+offset < len(t.source) {
		return t.source[t.pos+offset]
	}
	return 0
}

func (t *Tokenizer) parseNext() (*Token, error) {
	for t.pos < len(t.source) && t.source[t.pos] == ' ' {
		t.pos++
	}
	start := t.pos
	if start >= len(t.source) {
		return &Token{Kind: TokenEOF, Pos: t.rawPos(start)}, nil
	}

	c := t.source[start]
	switch {

	case isDigit(c) || c == '.' && isDigit(t.peekByte(1)):
		return t.parseNumber()

	case isLower(c):
		t.pos++
		for t.pos < len(t.source) && (isLower(t.source[t.pos]) || isDigit(t.source[t.pos])) {
			t.pos++
		}
		return t.token(TokenIdentifier, start), nil

	case c == '*' || c == '/':
		t.pos++
		if t.peekByte(0) == c {
			t.pos++
		}
		return t.token(TokenOperator, start), nil

	case c == '+' || c == '-' || c == '%':
		t.pos++
		return t.token(TokenOperator, start), nil

	case c == '(':
		t.pos++
		return t.token(TokenLParen, start), nil

	case c == ')':
		t.pos++
		return t.token(TokenRParen, start), nil

	case c == ',':
		t.pos++
		return t.token(TokenComma, start), nil

	}

	return nil, syntaxError(t.rawPos(start), "unexpected '%c'", c)
}

func (t *Tokenizer) token(kind TokenKind, start int) *Token {
	return &Token{
		Kind: kind,
		Text: t.source[start:t.pos],
		Pos:  t.rawPos(start),
	}
}

func (t *Tokenizer) parseNumber() (*Token, error) {
	start := t.pos

	if t.source[start] == '0' && isPrefix(t.peekByte(1)) {
		return t.parsePrefixedInteger()
	}

	isFloat := false
	t.skipDigits()
	if t.peekByte(0) == '.' {
		isFloat = true
		t.pos++
		t.skipDigits()
	}
	if t.peekByte(0) == 'e' {
		next := t.peekByte(1)
		if isDigit(next) || (next == '+' || next == '-') && isDigit(t.peekByte(2)) {
			isFloat = true
			t.pos += 2
			t.skipDigits()
		}
	}
	if isLower(t.peekByte(0)) {
		return nil, syntaxError(t.rawPos(start), "invalid decimal literal")
	}

	text := t.source[start:t.pos]
	if !isFloat && len(text) > 1 && text[0] == '0' {
		for i := 1; i < len(text); i++ {
			if text[i] != '0' {
				return nil, syntaxError(t.rawPos(start), "leading zeros in decimal integer literals are not permitted")
			}
		}
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return nil, syntaxError(t.rawPos(start), "invalid decimal literal")
		}
		if math.IsInf(value, 0) {
			return nil, &Error{
				Kind:   KindOverflow,
				Pos:    t.rawPos(start),
				Detail: "literal " + text,
			}
		}
	}

	ret := t.token(TokenNumber, start)
	ret.Value = value
	return ret, nil
}

func (t *Tokenizer) parsePrefixedInteger() (*Token, error) {
	start := t.pos
	t.pos += 2
	for t.pos < len(t.source) && (isDigit(t.source[t.pos]) || isLower(t.source[t.pos])) {
		t.pos++
	}
	text := t.source[start:t.pos]
	i, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return nil, syntaxError(t.rawPos(start), "invalid integer literal %s", text)
	}
	value, accuracy := new(big.Float).SetInt(i).Float64()
	if math.IsInf(value, 0) && accuracy != big.Exact {
		return nil, &Error{
			Kind:   KindOverflow,
			Pos:    t.rawPos(start),
			Detail: "literal " + text,
		}
	}
	ret := t.token(TokenNumber, start)
	ret.Value = value
	return ret, nil
}

func (t *Tokenizer) skipDigits() {
	for t.pos < len(t.source) && isDigit(t.source[t.pos]) {
		t.pos++
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isPrefix(c byte) bool {
	return c == 'x' || c == 'o' || c == 'b'
}
