package taicalc

import (
	"errors"
	"fmt"
	"unicode"
)

type ErrorKind uint8

const (
	KindForbiddenCharacter ErrorKind = iota + 1
	KindDisallowedIdentifier
	KindSyntax
	KindDivisionByZero
	KindMathDomain
	KindOverflow
	KindType
)

var (
	ErrForbiddenCharacter   = errors.New("forbidden character")
	ErrDisallowedIdentifier = errors.New("disallowed identifier")
	ErrSyntax               = errors.New("invalid syntax")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrMathDomain           = errors.New("math domain error")
	ErrOverflow             = errors.New("numerical result out of range")
	ErrType                 = errors.New("type error")
)

var kindErrors = map[ErrorKind]error{
	KindForbiddenCharacter:   ErrForbiddenCharacter,
	KindDisallowedIdentifier: ErrDisallowedIdentifier,
	KindSyntax:               ErrSyntax,
	KindDivisionByZero:       ErrDivisionByZero,
	KindMathDomain:           ErrMathDomain,
	KindOverflow:             ErrOverflow,
	KindType:                 ErrType,
}

func (k ErrorKind) String() string {
	switch k {
	case KindForbiddenCharacter:
		return "ForbiddenCharacter"
	case KindDisallowedIdentifier:
		return "DisallowedIdentifier"
	case KindSyntax:
		return "SyntaxError"
	case KindDivisionByZero:
		return "DivisionByZero"
	case KindMathDomain:
		return "MathDomainError"
	case KindOverflow:
		return "Overflow"
	case KindType:
		return "TypeError"
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is the only error type returned by Compile, Evaluate and Apply.
type Error struct {
	Kind ErrorKind
	// Pos is the byte offset in the raw input, -1 when the failure has no position
	Pos    int
	Char   rune
	Name   string
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {

	case KindForbiddenCharacter:
		if unicode.IsGraphic(e.Char) {
			return fmt.Sprintf("forbidden character: %c", e.Char)
		}
		return fmt.Sprintf("forbidden character: %q", e.Char)

	case KindDisallowedIdentifier:
		return fmt.Sprintf("use of '%s' is not allowed", e.Name)

	case KindSyntax:
		msg := ErrSyntax.Error()
		if e.Detail != "" {
			msg += ": " + e.Detail
		}
		if e.Pos >= 0 {
			msg += fmt.Sprintf(" at column %d", e.Pos+1)
		}
		return msg

	case KindType:
		return e.Detail

	}

	msg := e.Unwrap().Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error {
	if err, ok := kindErrors[e.Kind]; ok {
		return err
	}
	return nil
}

func newError(kind ErrorKind, detail string) *Error {
	return &Error{
		Kind:   kind,
		Pos:    -1,
		Detail: detail,
	}
}

func syntaxError(pos int, format string, args ...any) *Error {
	return &Error{
		Kind:   KindSyntax,
		Pos:    pos,
		Detail: fmt.Sprintf(format, args...),
	}
}

func typeError(format string, args ...any) *Error {
	return newError(KindType, fmt.Sprintf(format, args...))
}

// KindOf reports the kind of err, or zero if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
