package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/genrel/app"
	"github.com/kilianp07/genrel/core/grid"
	"github.com/kilianp07/genrel/core/model"
	"github.com/kilianp07/genrel/infra/logger"
	"github.com/kilianp07/genrel/infra/prompt"
)

type sweepOptions struct {
	demand      float64
	reliability float64
	outageHours float64
}

func newSweepCmd(root *rootOptions) *cobra.Command {
	opts := &sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the 24 case sizing study and publish the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, root, opts)
		},
	}
	cmd.Flags().Float64Var(&opts.demand, "demand", 0, "facility peak load in kW")
	cmd.Flags().Float64Var(&opts.reliability, "reliability", 0, "unit reliability in percent (0-100)")
	cmd.Flags().Float64Var(&opts.outageHours, "outage-hours", 0, "scheduled outage hours per unit and year")
	return cmd
}

// inputs merges the configured study with the flags that were set.
func (o *sweepOptions) inputs(cmd *cobra.Command, base model.Inputs) (model.Inputs, error) {
	in := base
	if cmd.Flags().Changed("demand") {
		if err := model.ValidateDemand(o.demand); err != nil {
			return in, fmt.Errorf("--demand: %w", err)
		}
		in.DemandKW = o.demand
	}
	if cmd.Flags().Changed("reliability") {
		if err := model.ValidateReliability(o.reliability); err != nil {
			return in, fmt.Errorf("--reliability: %w", err)
		}
		in.UnitReliabilityPct = o.reliability
	}
	if cmd.Flags().Changed("outage-hours") {
		if err := grid.ValidateOutageHours(o.outageHours); err != nil {
			return in, fmt.Errorf("--outage-hours: %w", err)
		}
		in.ScheduledOutageHrs = o.outageHours
	}
	return in, nil
}

func complete(in model.Inputs) bool {
	return in.DemandKW != 0 && in.UnitReliabilityPct != 0 && in.ScheduledOutageHrs != 0
}

func runSweep(cmd *cobra.Command, root *rootOptions, opts *sweepOptions) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := root.load()
	if err != nil {
		return err
	}
	in, err := opts.inputs(cmd, cfg.Study.Inputs())
	if err != nil {
		return err
	}
	if !complete(in) {
		in, err = prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()).Inputs(ctx, in)
		if err != nil {
			return fmt.Errorf("inputs: %w", err)
		}
	}

	svc, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	_, err = svc.Run(ctx, in)
	return err
}
