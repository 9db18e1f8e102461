// Package repl implements an interactive read-eval-print loop.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Xovval/diy-lang/pkg/environ"
	"github.com/Xovval/diy-lang/pkg/eval"
	"github.com/Xovval/diy-lang/pkg/parser"
	"github.com/chzyer/readline"
)

// DefaultPrompt is used when Options.Prompt is empty.
const DefaultPrompt = "> "

// LineReader reads input lines.  *readline.Instance implements LineReader.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

var _ LineReader = (*readline.Instance)(nil)

// Options configure a repl session.  Zero values are replaced with defaults:
// os.Stdout and os.Stderr for output, a new Evaluator writing to Out, and a
// fresh environment containing the prelude.
type Options struct {
	Prompt      string
	HistoryFile string
	Out         io.Writer
	Err         io.Writer
	Evaluator   *eval.Evaluator
	Env         *environ.Environ
}

func (opts *Options) init() error {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Evaluator == nil {
		ev, err := eval.New(eval.WithStdout(opts.Out))
		if err != nil {
			return err
		}
		opts.Evaluator = ev
	}
	if opts.Env == nil {
		opts.Env = environ.New(nil, nil)
		err := eval.LoadPrelude(opts.Evaluator, opts.Env)
		if err != nil {
			return err
		}
	}
	return nil
}

// RunRepl runs a repl on the terminal until the user ends input.
func RunRepl(opts Options) error {
	err := opts.init()
	if err != nil {
		return err
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       opts.Prompt,
		HistoryFile:  opts.HistoryFile,
		AutoComplete: &completer{env: opts.Env},
		Stdout:       opts.Out,
		Stderr:       opts.Err,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	return Run(rl, opts)
}

// Run evaluates expressions read from rl and prints their values until rl
// returns io.EOF.  Input that ends inside an expression is continued on the
// following lines.  An interrupt discards pending input.
func Run(rl LineReader, opts Options) error {
	err := opts.init()
	if err != nil {
		return err
	}
	rl.SetPrompt(opts.Prompt)
	contPrompt := strings.Repeat(" ", utf8.RuneCountInString(opts.Prompt))

	var buf string
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buf = ""
			rl.SetPrompt(opts.Prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if buf != "" {
			line = buf + "\n" + line
			buf = ""
			rl.SetPrompt(opts.Prompt)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		exprs, err := parser.ParseString("", line)
		if errors.Is(err, parser.ErrIncomplete) {
			buf = line
			rl.SetPrompt(contPrompt)
			continue
		}
		if err != nil {
			errln(opts.Err, err)
			continue
		}
		for _, expr := range exprs {
			v, err := opts.Evaluator.Eval(expr, opts.Env)
			if err != nil {
				errln(opts.Err, err)
				break
			}
			fmt.Fprintln(opts.Out, v)
		}
	}
}

// errln prints err followed by its stack trace, if it has one.
func errln(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	var trace *eval.TraceError
	if errors.As(err, &trace) {
		trace.Stack.DebugPrint(w)
	}
}
