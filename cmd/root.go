// Package cmd implements the diy command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Xovval/diy-lang/pkg/environ"
	"github.com/Xovval/diy-lang/pkg/eval"
	"github.com/spf13/cobra"
)

// errReported is returned by commands that already printed their failure.
var errReported = errors.New("failed")

type rootOptions struct {
	maxDepth  int
	noPrelude bool
}

// newEnv returns an evaluator whose print form writes to out, and a global
// environment.
func (o *rootOptions) newEnv(out io.Writer) (*eval.Evaluator, *environ.Environ, error) {
	ev, err := eval.New(
		eval.WithMaximumDepth(o.maxDepth),
		eval.WithStdout(out),
	)
	if err != nil {
		return nil, nil, err
	}
	env := environ.New(nil, nil)
	if !o.noPrelude {
		err = eval.LoadPrelude(ev, env)
		if err != nil {
			return nil, nil, err
		}
	}
	return ev, env, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "diy",
		Short:         "DIY Lang interpreter",
		Long:          `An interpreter for DIY Lang, a small lisp with lexically scoped closures.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().IntVar(&opts.maxDepth, "max-depth", eval.DefaultMaxDepth,
		"Maximum evaluation depth before failing with a stack exhausted error")
	rootCmd.PersistentFlags().BoolVar(&opts.noPrelude, "no-prelude", false,
		"Do not define the standard library functions")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newReplCmd(opts))
	return rootCmd
}

// Execute runs the diy command and exits the process with status 1 on
// failure.
func Execute() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		}
		os.Exit(1)
	}
}
