package driver

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/takoeight0821/lox/internal/ast"
	"github.com/takoeight0821/lox/internal/lexer"
	"github.com/takoeight0821/lox/internal/parser"
	"github.com/takoeight0821/lox/internal/token"
)

// Runner connects the lexer and the parser.
type Runner struct {
	logger *slog.Logger
}

func NewRunner() *Runner {
	return &Runner{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger sets the logger used for stage tracing.
func (r *Runner) WithLogger(logger *slog.Logger) *Runner {
	r.logger = logger
	return r
}

// Lex scans the source. Scan errors are wrapped with the "lex" stage;
// the tokens are returned even when the error is non-nil.
func (r *Runner) Lex(source string) ([]token.Token, error) {
	tokens, err := lexer.Lex(source)
	r.logger.Debug("lex", "tokens", len(tokens), "failed", err != nil)
	if err != nil {
		return tokens, fmt.Errorf("lex: %w", err)
	}
	return tokens, nil
}

// RunSource scans and parses the source as a single expression.
// The parser does not run over a token stream that has scan errors.
func (r *Runner) RunSource(source string) (ast.Expr, error) {
	tokens, err := r.Lex(source)
	if err != nil {
		return nil, err
	}

	expr, err := parser.NewParser(tokens).ParseExpr()
	if err != nil {
		r.logger.Debug("parse", "error", err)
		return nil, fmt.Errorf("parse: %w", err)
	}
	r.logger.Debug("parse", "nodes", len(ast.Universe(expr)))

	return expr, nil
}
