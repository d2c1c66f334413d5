package ast_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/lox/internal/ast"
	"github.com/takoeight0821/lox/internal/token"
)

func op(kind token.TokenKind, lexeme string) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: 1}
}

func num(v float64) *ast.Literal {
	return &ast.Literal{Token: token.Token{Kind: token.NUMBER, Lexeme: fmt.Sprint(v), Line: 1, Literal: v}, Value: v}
}

// -123 * (45.67)
func sample() ast.Expr {
	return &ast.Binary{
		Left:  &ast.Unary{Op: op(token.MINUS, "-"), Right: num(123)},
		Op:    op(token.STAR, "*"),
		Right: &ast.Grouping{Expr: num(45.67)},
	}
}

func TestPrint(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expr     ast.Expr
		expected string
	}{
		{sample(), "(* (- 123) (group 45.67))"},
		{num(1), "1"},
		{num(2.5), "2.5"},
		{&ast.Literal{Token: op(token.STRING, `"hi there"`), Value: "hi there"}, "hi there"},
		{&ast.Literal{Token: op(token.TRUE, "true"), Value: true}, "true"},
		{&ast.Literal{Token: op(token.FALSE, "false"), Value: false}, "false"},
		{&ast.Literal{Token: op(token.NIL, "nil"), Value: ast.Nil}, "nil"},
		{&ast.Literal{Token: op(token.IDENT, "x")}, "nil"},
		{&ast.Unary{Op: op(token.BANG, "!"), Right: &ast.Unary{Op: op(token.BANG, "!"), Right: num(0)}}, "(! (! 0))"},
	}

	for _, tt := range tests {
		if actual := ast.Print(tt.expr); actual != tt.expected {
			t.Errorf("Print returned %q, expected %q", actual, tt.expected)
		}
		if actual := tt.expr.String(); actual != tt.expected {
			t.Errorf("String returned %q, expected %q", actual, tt.expected)
		}
	}
}

func TestPrintIsDeterministic(t *testing.T) {
	t.Parallel()
	e := sample()
	if first, second := ast.Print(e), ast.Print(e); first != second {
		t.Errorf("Print is not deterministic: %q != %q", first, second)
	}
}

func TestNilIsDistinctFromAbsent(t *testing.T) {
	t.Parallel()
	lit := &ast.Literal{Token: op(token.NIL, "nil"), Value: ast.Nil}
	absent := &ast.Literal{Token: op(token.IDENT, "x")}
	if lit.Value == absent.Value {
		t.Errorf("nil literal and absent value compare equal")
	}
	if lit.Value != ast.Nil {
		t.Errorf("nil literal value = %v, expected ast.Nil", lit.Value)
	}
}

// rpn is an operation defined outside the package, rendering reverse Polish notation.
type rpn struct{}

func (r rpn) VisitLiteral(l *ast.Literal) string {
	return ast.Printer{}.VisitLiteral(l)
}

func (r rpn) VisitUnary(u *ast.Unary) string {
	if u.Op.Kind == token.MINUS {
		return ast.Accept[string](u.Right, r) + " neg"
	}
	return ast.Accept[string](u.Right, r) + " " + u.Op.Lexeme
}

func (r rpn) VisitBinary(b *ast.Binary) string {
	return strings.Join([]string{ast.Accept[string](b.Left, r), ast.Accept[string](b.Right, r), b.Op.Lexeme}, " ")
}

func (r rpn) VisitGrouping(g *ast.Grouping) string {
	return ast.Accept[string](g.Expr, r)
}

// depth counts the height of the tree.
type depth struct{}

func (d depth) VisitLiteral(*ast.Literal) int { return 1 }
func (d depth) VisitUnary(u *ast.Unary) int   { return 1 + ast.Accept[int](u.Right, d) }
func (d depth) VisitBinary(b *ast.Binary) int {
	return 1 + max(ast.Accept[int](b.Left, d), ast.Accept[int](b.Right, d))
}
func (d depth) VisitGrouping(g *ast.Grouping) int { return 1 + ast.Accept[int](g.Expr, d) }

func TestExternalVisitors(t *testing.T) {
	t.Parallel()
	e := sample()
	if actual := ast.Accept[string](e, rpn{}); actual != "123 neg 45.67 *" {
		t.Errorf("rpn returned %q", actual)
	}
	if actual := ast.Accept[int](e, depth{}); actual != 3 {
		t.Errorf("depth returned %d, expected 3", actual)
	}
}

func TestUniverse(t *testing.T) {
	t.Parallel()
	e := sample()
	var printed []string
	for _, n := range ast.Universe(e) {
		printed = append(printed, n.String())
	}
	expected := []string{
		"123",
		"(- 123)",
		"45.67",
		"(group 45.67)",
		"(* (- 123) (group 45.67))",
	}
	if diff := cmp.Diff(expected, printed); diff != "" {
		t.Errorf("Universe mismatch (-want +got):\n%s", diff)
	}

	// Every node is owned by exactly one parent.
	seen := map[ast.Expr]bool{}
	for _, n := range ast.Universe(e) {
		if seen[n] {
			t.Errorf("node %v appears twice", n)
		}
		seen[n] = true
	}
}

func TestBase(t *testing.T) {
	t.Parallel()
	e := sample()
	if base := e.Base(); base.Kind != token.STAR {
		t.Errorf("Base returned %v, expected the operator", base)
	}
	g := &ast.Grouping{Expr: num(7)}
	if base := g.Base(); base.Kind != token.NUMBER {
		t.Errorf("Base returned %v, expected the inner literal", base)
	}
}

func TestConcurrentReaders(t *testing.T) {
	t.Parallel()
	e := sample()
	expected := ast.Print(e)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = ast.Print(e)
		}()
	}
	wg.Wait()

	for i, actual := range results {
		if actual != expected {
			t.Errorf("reader %d printed %q, expected %q", i, actual, expected)
		}
	}
}
