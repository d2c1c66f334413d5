// Package parser is a recursive-descent parser for Lox expressions.
package parser

import (
	"github.com/takoeight0821/lox/internal/ast"
	"github.com/takoeight0821/lox/internal/token"
)

type Parser struct {
	tokens  []token.Token
	current int
}

// NewParser returns a parser over tokens, which must end with an EOF token.
func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens, 0}
}

// ParseExpr parses a single expression that spans the whole token stream.
// On failure it returns a nil expression and an *Error.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	p.current = 0
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.IsAtEnd() {
		return nil, p.errorAt(ExpectedEnd)
	}
	return expr, nil
}

// expression = equality ;
func (p *Parser) expression() (ast.Expr, error) {
	return p.equality()
}

// equality = comparison (("!=" | "==") comparison)* ;
func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssoc(p.comparison, token.BANGEQUAL, token.EQUALEQUAL)
}

// comparison = term (("<" | "<=" | ">" | ">=") term)* ;
func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssoc(p.term, token.LESS, token.LESSEQUAL, token.GREATER, token.GREATEREQUAL)
}

// term = factor (("+" | "-") factor)* ;
func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssoc(p.factor, token.PLUS, token.MINUS)
}

// factor = unary (("*" | "/") unary)* ;
func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssoc(p.unary, token.STAR, token.SLASH)
}

// leftAssoc parses operand (op operand)* and folds the operators to the left,
// so 1 - 2 - 3 becomes (- (- 1 2) 3).
func (p *Parser) leftAssoc(operand func() (ast.Expr, error), ops ...token.TokenKind) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok, err := p.match(ops...)
		if err != nil {
			return nil, err
		}
		if !ok {
			return expr, nil
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
}

// unary = ("!" | "-") unary | primary ;
func (p *Parser) unary() (ast.Expr, error) {
	op, ok, err := p.match(token.BANG, token.MINUS)
	if err != nil {
		return nil, err
	}
	if !ok {
		return p.primary()
	}
	right, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Op: op, Right: right}, nil
}

// primary = NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")" ;
func (p *Parser) primary() (ast.Expr, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case token.NUMBER, token.STRING:
		p.advance()
		return &ast.Literal{Token: t, Value: t.Literal}, nil
	case token.TRUE:
		p.advance()
		return &ast.Literal{Token: t, Value: true}, nil
	case token.FALSE:
		p.advance()
		return &ast.Literal{Token: t, Value: false}, nil
	case token.NIL:
		p.advance()
		return &ast.Literal{Token: t, Value: ast.Nil}, nil
	case token.LEFTPAREN:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHTPAREN, ExpectedClosingParen); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expr: expr}, nil
	default:
		return nil, p.errorAt(ExpectedExpression)
	}
}

func (p *Parser) errorAt(kind ErrorKind) error {
	t, err := p.peek()
	if err != nil {
		return err
	}
	return &Error{Kind: kind, Where: t}
}

// peek returns the current token without consuming it.
func (p Parser) peek() (token.Token, error) {
	if p.current < 0 || p.current >= len(p.tokens) {
		return token.Token{}, outOfBounds(p.current, len(p.tokens))
	}
	return p.tokens[p.current], nil
}

// previous returns the most recently consumed token.
func (p Parser) previous() (token.Token, error) {
	i := p.current - 1
	if i < 0 || i >= len(p.tokens) {
		return token.Token{}, outOfBounds(i, len(p.tokens))
	}
	return p.tokens[i], nil
}

// advance consumes the current token. It never moves past EOF.
func (p *Parser) advance() {
	if !p.IsAtEnd() {
		p.current++
	}
}

// IsAtEnd reports whether the cursor is on the EOF token.
// A stream without EOF counts as ended once the cursor leaves it.
func (p Parser) IsAtEnd() bool {
	t, err := p.peek()
	return err != nil || t.Kind == token.EOF
}

// match consumes the current token if it has one of kinds and returns it.
func (p *Parser) match(kinds ...token.TokenKind) (token.Token, bool, error) {
	t, err := p.peek()
	if err != nil {
		return token.Token{}, false, err
	}
	for _, kind := range kinds {
		if t.Kind == kind {
			p.advance()
			t, err := p.previous()
			return t, err == nil, err
		}
	}
	return token.Token{}, false, nil
}

func (p *Parser) consume(kind token.TokenKind, onMissing ErrorKind) (token.Token, error) {
	t, ok, err := p.match(kind)
	if err != nil {
		return token.Token{}, err
	}
	if !ok {
		return token.Token{}, p.errorAt(onMissing)
	}
	return t, nil
}
