// Package lexer turns Lox source text into a token stream.
package lexer

import (
	"strconv"
	"unicode"

	"github.com/takoeight0821/lox/internal/token"
)

// Lex scans the whole source.
// It never stops at the first problem: every unexpected character and unterminated string
// is recorded, and the returned error is either nil or a non-empty ErrorList in source order.
// The token slice always ends with an EOF token whose lexeme is empty.
func Lex(source string) ([]token.Token, error) {
	l := lexer{
		source:  []rune(source),
		tokens:  []token.Token{},
		start:   0,
		current: 0,
		line:    1,
	}

	for !l.isAtEnd() {
		l.scanToken()
	}

	l.tokens = append(l.tokens, token.Token{Kind: token.EOF, Lexeme: "", Line: l.line, Literal: nil})
	return l.tokens, l.errs.Err()
}

type lexer struct {
	source []rune
	tokens []token.Token
	errs   ErrorList

	start   int // start of current lexeme
	current int // current position in source
	line    int // current line number
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	return l.source[l.current]
}

func (l lexer) peekNext() rune {
	if l.current+1 >= len(l.source) {
		return '\x00'
	}
	return l.source[l.current+1]
}

func (l *lexer) advance() rune {
	l.current++
	return l.source[l.current-1]
}

// match consumes the next character only if it is expected.
func (l *lexer) match(expected rune) bool {
	if l.peek() != expected || l.isAtEnd() {
		return false
	}
	l.current++
	return true
}

func (l *lexer) addToken(kind token.TokenKind, literal any) {
	text := string(l.source[l.start:l.current])
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: text, Line: l.line, Literal: literal})
}

func (l *lexer) report(kind ErrorKind, symbol string) {
	l.errs.Add(&Error{Kind: kind, Line: l.line, Symbol: symbol})
}

func (l *lexer) scanToken() {
	l.start = l.current
	c := l.advance()
	switch c {
	case ' ', '\r', '\t':
		// ignore whitespace
	case '\n':
		l.line++
	case '!':
		l.addToken(l.either('=', token.BANGEQUAL, token.BANG), nil)
	case '=':
		l.addToken(l.either('=', token.EQUALEQUAL, token.EQUAL), nil)
	case '<':
		l.addToken(l.either('=', token.LESSEQUAL, token.LESS), nil)
	case '>':
		l.addToken(l.either('=', token.GREATEREQUAL, token.GREATER), nil)
	case '/':
		switch {
		case l.match('/'):
			l.lineComment()
		case l.match('*'):
			l.blockComment()
		default:
			l.addToken(token.SLASH, nil)
		}
	case '"':
		l.string()
	default:
		if k, ok := singleChars[c]; ok {
			l.addToken(k, nil)
			return
		}
		if isDigit(c) {
			l.number()
			return
		}
		if isAlpha(c) {
			l.identifier()
			return
		}
		l.report(UnexpectedCharacter, string(c))
	}
}

// either returns two if the next character is next (consuming it), one otherwise.
func (l *lexer) either(next rune, two, one token.TokenKind) token.TokenKind {
	if l.match(next) {
		return two
	}
	return one
}

func (l *lexer) lineComment() {
	for l.peek() != '\n' && !l.isAtEnd() {
		l.advance()
	}
}

// blockComment skips a /* */ comment. Comments nest: every inner "/*" must be
// closed by its own "*/" before the outer comment ends.
// An unterminated comment runs to the end of input without a diagnostic.
func (l *lexer) blockComment() {
	depth := 1
	for depth > 0 && !l.isAtEnd() {
		switch c := l.advance(); {
		case c == '\n':
			l.line++
		case c == '/' && l.peek() == '*':
			l.advance()
			depth++
		case c == '*' && l.peek() == '/':
			l.advance()
			depth--
		}
	}
}

func (l *lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.report(UnterminatedString, string(l.source[l.start:l.current]))
		return
	}

	// closing "
	l.advance()

	value := string(l.source[l.start+1 : l.current-1])
	l.addToken(token.STRING, value)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	// A trailing "." belongs to the next token.
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	// The lexeme is digits with at most one inner dot, so parsing cannot fail.
	value, _ := strconv.ParseFloat(string(l.source[l.start:l.current]), 64)
	l.addToken(token.NUMBER, value)
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func (l *lexer) identifier() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	value := string(l.source[l.start:l.current])

	if k, ok := keywords[value]; ok {
		l.addToken(k, nil)
	} else {
		l.addToken(token.IDENT, nil)
	}
}

var keywords = map[string]token.TokenKind{
	"and":    token.AND,
	"class":  token.CLASS,
	"else":   token.ELSE,
	"false":  token.FALSE,
	"for":    token.FOR,
	"fun":    token.FUN,
	"if":     token.IF,
	"nil":    token.NIL,
	"or":     token.OR,
	"print":  token.PRINT,
	"return": token.RETURN,
	"super":  token.SUPER,
	"this":   token.THIS,
	"true":   token.TRUE,
	"var":    token.VAR,
	"while":  token.WHILE,
}

// These characters always form a token on their own.
var singleChars = map[rune]token.TokenKind{
	'(': token.LEFTPAREN,
	')': token.RIGHTPAREN,
	'{': token.LEFTBRACE,
	'}': token.RIGHTBRACE,
	',': token.COMMA,
	'.': token.DOT,
	'-': token.MINUS,
	'+': token.PLUS,
	';': token.SEMICOLON,
	'*': token.STAR,
}
