package ast

import (
	"fmt"

	"github.com/takoeight0821/lox/internal/token"
)

// AST

// Expr is one of *Literal, *Unary, *Binary or *Grouping.
// The set is closed: the unexported method keeps other packages from adding variants,
// so a Visitor can handle every expression.
type Expr interface {
	fmt.Stringer
	Base() token.Token
	expr()
}

type nilValue struct{}

func (nilValue) String() string {
	return "nil"
}

// Nil is the value of the `nil` literal.
// A Literal whose Value is Go nil has no decoded value at all.
var Nil fmt.Stringer = nilValue{}

// Literal is a constant. Value is a string, float64, bool, Nil, or nil.
type Literal struct {
	Token token.Token
	Value any
}

func (l Literal) String() string {
	return Print(&l)
}

func (l *Literal) Base() token.Token {
	return l.Token
}

func (*Literal) expr() {}

var _ Expr = &Literal{}

type Unary struct {
	Op    token.Token
	Right Expr
}

func (u Unary) String() string {
	return Print(&u)
}

func (u *Unary) Base() token.Token {
	return u.Op
}

func (*Unary) expr() {}

var _ Expr = &Unary{}

type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (b Binary) String() string {
	return Print(&b)
}

func (b *Binary) Base() token.Token {
	return b.Op
}

func (*Binary) expr() {}

var _ Expr = &Binary{}

type Grouping struct {
	Expr Expr
}

func (g Grouping) String() string {
	return Print(&g)
}

func (g *Grouping) Base() token.Token {
	return g.Expr.Base()
}

func (*Grouping) expr() {}

var _ Expr = &Grouping{}

// Children returns the direct subexpressions of e, left to right.
func Children(e Expr) []Expr {
	switch e := e.(type) {
	case *Unary:
		return []Expr{e.Right}
	case *Binary:
		return []Expr{e.Left, e.Right}
	case *Grouping:
		return []Expr{e.Expr}
	default:
		return nil
	}
}

// Universe returns e and all of its descendants in depth-first order.
// Children come before their parent.
func Universe(e Expr) []Expr {
	var nodes []Expr
	for _, child := range Children(e) {
		nodes = append(nodes, Universe(child)...)
	}
	return append(nodes, e)
}
