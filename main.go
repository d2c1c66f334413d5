package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/takoeight0821/lox/internal/config"
	"github.com/takoeight0821/lox/internal/driver"
	"github.com/takoeight0821/lox/internal/lexer"
	"github.com/takoeight0821/lox/internal/token"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	inputPath  string
	configPath string
	mode       string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	const inputUsage = "input file path"
	var opts options

	cmd := &cobra.Command{
		Use:           "lox [file]",
		Short:         "Scan and parse Lox expressions",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.inputPath = args[0]
			}
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			if cmd.Flags().Changed("mode") {
				cfg.Mode = opts.mode
			}
			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			s := newSession(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.verbose)
			if opts.inputPath == "" {
				err = s.runPrompt()
			} else {
				err = s.runFile(opts.inputPath)
			}
			if err != nil {
				s.report(err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.inputPath, "input", "i", "", inputUsage)
	cmd.Flags().StringVar(&opts.configPath, "config", config.Path(), "config file path")
	cmd.Flags().StringVar(&opts.mode, "mode", config.ModeAST, "output: ast or tokens")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log each stage")

	return cmd
}

type session struct {
	cfg    config.Config
	runner *driver.Runner
	out    io.Writer
	errOut io.Writer
	errFmt lipgloss.Style
}

func newSession(cfg config.Config, out, errOut io.Writer, verbose bool) *session {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	errFmt := lipgloss.NewStyle()
	if cfg.Color {
		errFmt = errFmt.Foreground(lipgloss.Color("9")).Bold(true)
	}

	return &session{
		cfg:    cfg,
		runner: driver.NewRunner().WithLogger(logger),
		out:    out,
		errOut: errOut,
		errFmt: errFmt,
	}
}

// run prints the tokens or the tree of one source text.
func (s *session) run(source string) error {
	if s.cfg.Mode == config.ModeTokens {
		tokens, err := s.runner.Lex(source)
		printTokens(s.out, tokens)
		return err
	}

	expr, err := s.runner.RunSource(source)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, expr)
	return nil
}

func printTokens(w io.Writer, tokens []token.Token) {
	for _, t := range tokens {
		fmt.Fprintln(w, t)
	}
}

// report prints every error in err on its own line.
func (s *session) report(err error) {
	var errs []error
	var list lexer.ErrorList
	if errors.As(err, &list) {
		errs = list.Unwrap()
	} else {
		errs = []error{err}
	}
	for _, err := range errs {
		fmt.Fprintln(s.errOut, s.errFmt.Render("Error: "+err.Error()))
	}
}

func (s *session) runPrompt() error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(s.cfg.History), os.ModePerm); err != nil {
			fmt.Fprintln(s.errOut, err)
		}
		if f, err := os.Create(s.cfg.History); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(s.errOut, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(s.cfg.History); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(s.errOut, err)
		}
	}

	for {
		input, err := line.Prompt(s.cfg.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		line.AppendHistory(input)
		if err := s.run(input); err != nil {
			s.report(err)
		}
	}
}

func (s *session) runFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.run(string(bytes))
}
