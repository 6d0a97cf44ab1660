package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harkonenbade/jadepunk/internal/render"
)

func (a *app) newSheetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet FILE",
		Short: "Print the validation report followed by the character sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chars, err := a.load(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			e, err := render.New(a.cfg.Output.Format, out)
			if err != nil {
				return err
			}
			for _, c := range chars {
				if _, err := c.Check(a.logger).Report(out); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				c.Render(e)
			}
			if err := e.Err(); err != nil {
				return fmt.Errorf("writing sheet: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "", "Render engine (see 'jadepunk formats')")
	return cmd
}
