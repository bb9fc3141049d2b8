package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kiereneinar/windowscan/registry"
	"github.com/kiereneinar/windowscan/runner"
)

func newSolveCmd(a *app) *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:   "solve <problem>",
		Short: "Solve one problem with inline arguments.",
		Long: "`solve minimum-window-substring --args '{s: ADOBECODEBANC, t: ABC}'` " +
			"runs one solver. Arguments are YAML or JSON.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := registry.ParseArgs(rawArgs)
			if err != nil {
				return err
			}

			name := args[0]
			a.logger.Debug("Solving", zap.String("problem", name), zap.String("args", rawArgs))
			out, err := a.registry.Solve(name, node)
			if err != nil {
				return err
			}

			res := runner.Result{Case: name, Problem: name, Output: out}
			return runner.Encode(cmd.OutOrStdout(), a.cfg.Output.Format, []runner.Result{res})
		},
	}
	cmd.Flags().StringVarP(&rawArgs, "args", "a", "", "problem arguments as YAML or JSON")
	return cmd
}
