package ast

import "log"

// Visitor is an operation over expressions with one method per variant.
// New operations implement Visitor; the expression types never change.
type Visitor[T any] interface {
	VisitLiteral(*Literal) T
	VisitUnary(*Unary) T
	VisitBinary(*Binary) T
	VisitGrouping(*Grouping) T
}

// Accept calls the method of v that matches the dynamic type of e.
func Accept[T any](e Expr, v Visitor[T]) T {
	switch e := e.(type) {
	case *Literal:
		return v.VisitLiteral(e)
	case *Unary:
		return v.VisitUnary(e)
	case *Binary:
		return v.VisitBinary(e)
	case *Grouping:
		return v.VisitGrouping(e)
	default:
		log.Panicf("invalid expression %T", e)
		panic("unreachable")
	}
}
