package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kiereneinar/windowscan/runner"
)

var errCasesFailed = errors.New("one or more cases failed")

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <case-file>...",
		Short: "Run every case in one or more YAML case files.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cases []runner.Case
			for _, path := range args {
				c, err := runner.LoadFile(path)
				if err != nil {
					return err
				}
				cases = append(cases, c...)
			}

			results := runner.New(a.registry, a.logger).Run(cases)

			if err := runner.Encode(cmd.OutOrStdout(), a.cfg.Output.Format, results); err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Failed() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(results), errCasesFailed)
			}
			return nil
		},
	}
}
