// Package app wires configuration, the study pipeline and the report sinks.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/kilianp07/genrel/app/plugins"
	"github.com/kilianp07/genrel/config"
	"github.com/kilianp07/genrel/core/model"
	"github.com/kilianp07/genrel/core/report"
	"github.com/kilianp07/genrel/core/study"
	"github.com/kilianp07/genrel/infra/console"
	"github.com/kilianp07/genrel/infra/logger"
)

// Service runs studies and hands them to the configured sinks.
type Service struct {
	runner  *study.Runner
	sink    report.Sink
	console io.Writer
	log     logger.Logger
}

// New creates a Service from the configuration. Console output goes to out
// unless disabled in the configuration; a nil out disables it too. Loggers
// use whatever logger.Setup configured last.
func New(cfg *config.Config, out io.Writer, opts ...study.Option) (*Service, error) {
	sinkCfgs := cfg.Report.Sinks
	if len(sinkCfgs) == 0 {
		sinkCfgs = plugins.DefaultSinks()
	}
	sink, err := report.NewSinks(sinkCfgs)
	if err != nil {
		return nil, fmt.Errorf("report sinks: %w", err)
	}
	svc := &Service{
		runner: study.NewRunner(logger.New("study"), opts...),
		sink:   sink,
		log:    logger.New("service"),
	}
	if cfg.Report.ConsoleEnabled() {
		svc.console = out
	}
	return svc, nil
}

// Run executes the study for in and publishes it. Nothing is published when
// the study fails.
func (s *Service) Run(ctx context.Context, in model.Inputs) (model.Run, error) {
	run, err := s.runner.Run(ctx, in)
	if err != nil {
		return model.Run{}, err
	}
	if s.console != nil {
		if err := console.Render(s.console, run); err != nil {
			return run, fmt.Errorf("console: %w", err)
		}
	}
	if err := s.sink.Publish(ctx, run); err != nil {
		return run, fmt.Errorf("publish: %w", err)
	}
	s.log.Infof("run %s published", run.ID)
	return run, nil
}

// Close releases resources held by the sinks.
func (s *Service) Close() error {
	if c, ok := s.sink.(report.Closer); ok {
		return c.Close()
	}
	return nil
}
