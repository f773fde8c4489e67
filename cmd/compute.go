package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/genrel/core/reliability"
	"github.com/kilianp07/genrel/core/tier"
)

type computeOptions struct {
	required    int
	installed   int
	reliability float64
	outageHours float64
}

func newComputeCmd(root *rootOptions) *cobra.Command {
	opts := &computeOptions{}
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Evaluate the availability of a single configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := root.load(); err != nil {
				return err
			}
			avail, err := reliability.ComputeAvailability(opts.required, opts.installed, opts.reliability, opts.outageHours)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "availability: %.6f %%\ntier: %s\n", avail, tier.Classify(avail))
			return err
		},
	}
	cmd.Flags().IntVar(&opts.required, "k", 0, "units required to meet peak demand")
	cmd.Flags().IntVar(&opts.installed, "n", 0, "units installed")
	cmd.Flags().Float64Var(&opts.reliability, "reliability", 0, "unit reliability in percent (0-100)")
	cmd.Flags().Float64Var(&opts.outageHours, "outage-hours", 0, "scheduled outage hours per unit and year")
	for _, f := range []string{"k", "n", "reliability", "outage-hours"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
