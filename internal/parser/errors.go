package parser

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/lox/internal/token"
	"github.com/takoeight0821/lox/internal/utils"
)

// ErrorKind classifies a parse failure. Each kind is itself an error,
// so errors.Is(err, ExpectedExpression) works on any wrapped *Error.
type ErrorKind int

const (
	ExpectedExpression ErrorKind = iota
	ExpectedClosingParen
	ExpectedEnd
	// CursorOutOfBounds means the parser indexed outside the token stream.
	// It signals a defect or a stream without EOF, never a syntax error in the source.
	CursorOutOfBounds
)

func (k ErrorKind) Error() string {
	switch k {
	case ExpectedExpression:
		return "Expect expression."
	case ExpectedClosingParen:
		return "Expect ')' after expression."
	case ExpectedEnd:
		return "Expect end of expression."
	case CursorOutOfBounds:
		return "cursor out of bounds"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ErrCursorOutOfBounds is wrapped by every CursorOutOfBounds error.
var ErrCursorOutOfBounds = errors.New("parser cursor out of bounds")

type Error struct {
	Kind  ErrorKind
	Where token.Token
}

func (e *Error) Error() string {
	return utils.ErrorAt{Where: e.Where, Err: e.Kind}.Error()
}

// Line is the source line of the offending token.
func (e *Error) Line() int {
	return e.Where.Line
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// InternalError reports a parser defect.
type InternalError struct {
	Index int
	Len   int
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%v: index %d, %d tokens", ErrCursorOutOfBounds, e.Index, e.Len)
}

func (e *InternalError) Unwrap() []error {
	return []error{CursorOutOfBounds, ErrCursorOutOfBounds}
}

func outOfBounds(index, length int) error {
	return &InternalError{Index: index, Len: length}
}
