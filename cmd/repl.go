package cmd

import (
	"github.com/Xovval/diy-lang/repl"
	"github.com/spf13/cobra"
)

func newReplCmd(root *rootOptions) *cobra.Command {
	var prompt, history string
	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, env, err := root.newEnv(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return repl.RunRepl(repl.Options{
				Prompt:      prompt,
				HistoryFile: history,
				Out:         cmd.OutOrStdout(),
				Err:         cmd.ErrOrStderr(),
				Evaluator:   ev,
				Env:         env,
			})
		},
	}
	replCmd.Flags().StringVar(&prompt, "prompt", repl.DefaultPrompt, "Input prompt")
	replCmd.Flags().StringVar(&history, "history", "", "File used to persist input history")
	return replCmd
}
