package eval

import (
	"fmt"
	"io"
)

// DefaultMaxDepth is the evaluation depth allowed when an Evaluator is not
// configured with WithMaximumDepth.
const DefaultMaxDepth = 10000

// Config is a function that configures an Evaluator.
type Config func(ev *Evaluator) error

// WithMaximumDepth returns a Config that limits the nesting depth of
// evaluation to n.  Exceeding the limit fails with a
// lisp.StackExhaustedError instead of exhausting the host stack.
func WithMaximumDepth(n int) Config {
	return func(ev *Evaluator) error {
		if n < 1 {
			return fmt.Errorf("invalid maximum depth: %d", n)
		}
		ev.maxDepth = n
		return nil
	}
}

// WithPrinter returns a Config that makes the print form hand values to p.
func WithPrinter(p Printer) Config {
	return func(ev *Evaluator) error {
		if p == nil {
			return fmt.Errorf("nil printer")
		}
		ev.printer = p
		return nil
	}
}

// WithStdout returns a Config that makes the print form write to w instead
// of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return WithPrinter(&WriterPrinter{W: w})
}
