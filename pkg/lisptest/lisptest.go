// Package lisptest runs table-driven DIY Lang tests.
package lisptest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/Xovval/diy-lang/pkg/environ"
	"github.com/Xovval/diy-lang/pkg/eval"
	"github.com/Xovval/diy-lang/pkg/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially in one environment.  Result is the printed value of Expr, or
// the error message when evaluation fails.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// Runner is a test runner.
type Runner struct {
	// Loader initializes each test environment.  When Loader is nil
	// environments start empty.
	Loader func(ev *eval.Evaluator, env *environ.Environ) error
	// Configs are applied to each test's evaluator.
	Configs []eval.Config
}

// NewEnv returns a fresh evaluator and global environment.  Output of print
// forms is collected in the returned buffer.
func (r *Runner) NewEnv() (*eval.Evaluator, *environ.Environ, *bytes.Buffer, error) {
	var out bytes.Buffer
	configs := append([]eval.Config{eval.WithStdout(&out)}, r.Configs...)
	ev, err := eval.New(configs...)
	if err != nil {
		return nil, nil, nil, err
	}
	env := environ.New(nil, nil)
	if r.Loader != nil {
		err = r.Loader(ev, env)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize environment: %w", err)
		}
	}
	return ev, env, &out, nil
}

// RunTestSuite runs each TestSequence in tests on isolated environments.
func (r *Runner) RunTestSuite(t *testing.T, tests TestSuite) {
	t.Helper()
	for i, test := range tests {
		ev, env, _, err := r.NewEnv()
		if err != nil {
			t.Fatalf("test %d %q: %v", i, test.Name, err)
		}
		for j, expr := range test.TestSequence {
			v, err := parser.Parse(expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			var result string
			v, err = ev.Eval(v, env)
			if err != nil {
				result = err.Error()
			} else {
				result = v.String()
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

// RunTestSuite runs tests with a Runner that loads nothing.
func RunTestSuite(t *testing.T, tests TestSuite) {
	t.Helper()
	(&Runner{}).RunTestSuite(t, tests)
}
