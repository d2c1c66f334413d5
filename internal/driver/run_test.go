package driver_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/takoeight0821/lox/internal/driver"
	"github.com/takoeight0821/lox/internal/lexer"
	"github.com/takoeight0821/lox/internal/parser"
)

func TestRunSource(t *testing.T) {
	t.Parallel()
	expr, err := driver.NewRunner().RunSource("1 + 2 * 3")
	if err != nil {
		t.Fatalf("RunSource returned error: %v", err)
	}
	if actual := expr.String(); actual != "(+ 1 (* 2 3))" {
		t.Errorf("RunSource returned %s", actual)
	}
}

func TestScanErrorsStopParsing(t *testing.T) {
	t.Parallel()
	expr, err := driver.NewRunner().RunSource("1 + @")
	if expr != nil {
		t.Errorf("RunSource returned a tree with scan errors: %v", expr)
	}

	var list lexer.ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("RunSource returned %v, expected scan errors", err)
	}
	if len(list) != 1 || list[0].Kind != lexer.UnexpectedCharacter {
		t.Errorf("unexpected scan errors: %v", list)
	}
	if !strings.HasPrefix(err.Error(), "lex: ") {
		t.Errorf("error %q is not wrapped with the lex stage", err)
	}
}

func TestParseErrorIsWrapped(t *testing.T) {
	t.Parallel()
	_, err := driver.NewRunner().RunSource("(1 + 2")
	if !errors.Is(err, parser.ExpectedClosingParen) {
		t.Fatalf("RunSource returned %v, expected ExpectedClosingParen", err)
	}
	var perr *parser.Error
	if !errors.As(err, &perr) || perr.Line() != 1 {
		t.Errorf("expected a parse error on line 1, got %v", err)
	}
	if err.Error() != "parse: line 1 at end: Expect ')' after expression." {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestLexKeepsTokensOnError(t *testing.T) {
	t.Parallel()
	tokens, err := driver.NewRunner().Lex("1 # 2")
	if err == nil {
		t.Fatal("Lex returned no error")
	}
	if len(tokens) != 3 {
		t.Errorf("Lex returned %d tokens, expected 3", len(tokens))
	}
}

func TestLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, err := driver.NewRunner().WithLogger(logger).RunSource("-1"); err != nil {
		t.Fatalf("RunSource returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "msg=lex tokens=3") || !strings.Contains(out, "msg=parse nodes=2") {
		t.Errorf("unexpected log output:\n%s", out)
	}
}
