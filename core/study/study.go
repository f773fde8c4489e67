// Package study runs the availability pipeline: generate the sizing grid,
// annotate each case with its availability, then with its tier.
package study

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/genrel/core/grid"
	"github.com/kilianp07/genrel/core/logger"
	"github.com/kilianp07/genrel/core/model"
	"github.com/kilianp07/genrel/core/reliability"
	"github.com/kilianp07/genrel/core/tier"
)

// Runner executes studies.
type Runner struct {
	log logger.Logger
	now func() time.Time
	id  func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock overrides the clock used to stamp runs.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// WithIDGenerator overrides the run ID generator.
func WithIDGenerator(id func() string) Option {
	return func(r *Runner) { r.id = id }
}

// NewRunner returns a Runner logging through log. A nil logger discards output.
func NewRunner(log logger.Logger, opts ...Option) *Runner {
	if log == nil {
		log = logger.NopLogger{}
	}
	r := &Runner{log: log, now: time.Now, id: uuid.NewString}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run generates and annotates the grid for in. Either the full table is
// returned or an error, never a partial table.
func (r *Runner) Run(ctx context.Context, in model.Inputs) (model.Run, error) {
	table, err := grid.Generate(in)
	if err != nil {
		return model.Run{}, err
	}
	if err := r.Annotate(ctx, table); err != nil {
		return model.Run{}, err
	}
	run := model.Run{ID: r.id(), CreatedAt: r.now().UTC(), Inputs: in, Cases: table}
	r.log.Infow("study complete", summary(run))
	return run, nil
}

// Annotate fills SystemAvailability and TierLevel on every case in place.
// On error the table must be discarded.
func (r *Runner) Annotate(ctx context.Context, table model.Table) error {
	for i := range table {
		if err := ctx.Err(); err != nil {
			return err
		}
		c := &table[i]
		avail, err := reliability.ComputeAvailability(c.UnitsRequired, c.UnitsInstalled, c.UnitReliabilityPct, c.ScheduledOutageHrs)
		if err != nil {
			return fmt.Errorf("case %s n=%d: %w", c.SizingCase, c.UnitsInstalled, err)
		}
		c.SystemAvailability = avail
		c.TierLevel = tier.Classify(avail)
		r.log.Debugw("case evaluated", map[string]any{
			"sizing_case":         c.SizingCase,
			"units_installed":     c.UnitsInstalled,
			"system_capacity_kW":  c.SystemCapacityKW,
			"system_availability": c.SystemAvailability,
			"tier_level":          c.TierLevel.String(),
		})
	}
	return nil
}

func summary(run model.Run) map[string]any {
	fields := map[string]any{
		"run_id": run.ID,
		"cases":  len(run.Cases),
	}
	for _, lvl := range model.TierLevels {
		fields[lvl.String()] = len(run.Cases.ByTier(lvl))
	}
	return fields
}
