package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE|DIR...",
		Short: "Validate characters and report every rule violation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chars, err := a.load(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			invalid := 0
			for _, c := range chars {
				if len(chars) > 1 {
					fmt.Fprintf(out, "== %s ==\n", c.Name)
				}
				col := c.Check(a.logger)
				valid, err := col.Report(out)
				if err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				if !valid {
					invalid++
					continue
				}
				fmt.Fprintf(out, "%s: valid, %d refresh available\n", c.Name, c.AvailableRefresh())
			}
			if invalid > 0 {
				return &ExitError{Code: ExitInvalid}
			}
			return nil
		},
	}
}
