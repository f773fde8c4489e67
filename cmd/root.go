// Package cmd implements the genrel command line.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/genrel/config"
	"github.com/kilianp07/genrel/infra/logger"
)

// Version is set at build time with -ldflags "-X github.com/kilianp07/genrel/cmd.Version=...".
var Version = "dev"

type rootOptions struct {
	cfgPath  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "genrel",
		Short:         "Availability study of redundant generation units",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", "", "configuration file (yaml or json)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newSweepCmd(opts),
		newComputeCmd(opts),
		newTierCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI.
func Execute() error { return newRootCmd().Execute() }

// load reads the configuration and applies the command line overrides.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.logLevel != "" {
		cfg.Log.Level = strings.ToLower(o.logLevel)
		if err := cfg.Log.Validate(); err != nil {
			return nil, err
		}
	}
	if err := logger.Setup(cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}
