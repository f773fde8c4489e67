package config

import (
	"fmt"

	"github.com/kilianp07/genrel/core/report"
)

// ReportConfig lists the sinks receiving each finished study.
type ReportConfig struct {
	Sinks []report.SinkConfig `json:"sinks"`
	// Console toggles the result table on stdout.
	Console *bool `json:"console"`
}

// SetDefaults applies sane defaults.
func (c *ReportConfig) SetDefaults() {
	if c.Console == nil {
		on := true
		c.Console = &on
	}
}

// Validate checks every sink has a type.
func (c ReportConfig) Validate() error {
	for i, s := range c.Sinks {
		if s.Type == "" {
			return fmt.Errorf("report.sinks[%d]: type is required", i)
		}
	}
	return nil
}

// ConsoleEnabled reports whether the table is printed.
func (c ReportConfig) ConsoleEnabled() bool {
	return c.Console == nil || *c.Console
}
