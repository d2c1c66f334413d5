package lexer

import (
	"fmt"
	"strings"
)

type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota
	UnterminatedString
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnterminatedString:
		return "UnterminatedString"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Message is the human readable diagnostic for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case UnexpectedCharacter:
		return "Unexpected character."
	case UnterminatedString:
		return "Unterminated string."
	default:
		return "Unknown error."
	}
}

// Error is a single scan diagnostic.
// Symbol is the offending character, or the partially scanned text of an unterminated string.
type Error struct {
	Kind   ErrorKind
	Line   int
	Symbol string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s %q", e.Line, e.Kind.Message(), e.Symbol)
}

// ErrorList collects scan errors in source order.
type ErrorList []*Error

func (l *ErrorList) Add(err *Error) {
	*l = append(*l, err)
}

// Err returns nil for an empty list so callers can compare against nil.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, err := range l {
		errs[i] = err
	}
	return errs
}
