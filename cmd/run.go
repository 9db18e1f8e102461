package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Xovval/diy-lang/pkg/eval"
	"github.com/Xovval/diy-lang/pkg/lisp"
	"github.com/Xovval/diy-lang/pkg/parser"
	"github.com/spf13/cobra"
)

type runOptions struct {
	*rootOptions
	expression bool
	print      bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: root}
	// runCmd represents the run command
	runCmd := &cobra.Command{
		Use:   "run [flags] FILE|EXPR...",
		Short: "Run lisp code",
		Long: `Run lisp code supplied via the command line or files.  All arguments are
evaluated in order in one global environment.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&opts.expression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&opts.print, "print", "p", false,
		"Print expression values to stdout")
	return runCmd
}

func (o *runOptions) run(stdout, stderr io.Writer, args []string) error {
	ev, env, err := o.newEnv(stdout)
	if err != nil {
		return err
	}
	for _, arg := range args {
		exprs, err := o.readExpressions(arg)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return errReported
		}
		for _, expr := range exprs {
			v, err := ev.Eval(expr, env)
			if err != nil {
				printError(stderr, err)
				return errReported
			}
			if o.print {
				fmt.Fprintln(stdout, v)
			}
		}
	}
	return nil
}

func (o *runOptions) readExpressions(arg string) ([]lisp.LVal, error) {
	if o.expression {
		return parser.ParseString("", arg)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.ParseProgram(arg, f)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	var trace *eval.TraceError
	if errors.As(err, &trace) {
		trace.Stack.DebugPrint(w)
	}
}
