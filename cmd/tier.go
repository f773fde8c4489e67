package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kilianp07/genrel/core/model"
	"github.com/kilianp07/genrel/core/tier"
)

func newTierCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "tier [availability]",
		Short: "Classify an availability percentage",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list || len(args) == 0 {
				for _, th := range tier.Thresholds() {
					if _, err := fmt.Fprintf(out, "%s\t>= %g %%\n", th.Level, th.MinPct); err != nil {
						return err
					}
				}
				return nil
			}
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: availability %q is not a number", model.ErrInvalidParameter, args[0])
			}
			_, err = fmt.Fprintln(out, tier.Classify(v))
			return err
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print the tier thresholds")
	return cmd
}
