package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer renders an expression in fully parenthesized prefix form, e.g. (+ 1 (* 2 3)).
type Printer struct{}

var _ Visitor[string] = Printer{}

func Print(e Expr) string {
	return Accept[string](e, Printer{})
}

func (p Printer) VisitLiteral(l *Literal) string {
	switch v := l.Value.(type) {
	case nil, nilValue:
		return "nil"
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func (p Printer) VisitUnary(u *Unary) string {
	return p.parenthesize(u.Op.Lexeme, u.Right)
}

func (p Printer) VisitBinary(b *Binary) string {
	return p.parenthesize(b.Op.Lexeme, b.Left, b.Right)
}

func (p Printer) VisitGrouping(g *Grouping) string {
	return p.parenthesize("group", g.Expr)
}

func (p Printer) parenthesize(head string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(head)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(Accept[string](e, p))
	}
	b.WriteString(")")
	return b.String()
}
