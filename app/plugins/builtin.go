// Package plugins registers the built-in report sinks. Import it for its side
// effects.
package plugins

import (
	"context"

	"github.com/kilianp07/genrel/core/model"
	"github.com/kilianp07/genrel/core/report"
	"github.com/kilianp07/genrel/infra/logger"
	"github.com/kilianp07/genrel/infra/metrics"
	"github.com/kilianp07/genrel/infra/mqtt"
	"github.com/kilianp07/genrel/infra/plot"
	"github.com/kilianp07/genrel/pkg/export"
)

// Default output locations, relative to the working directory.
const (
	DefaultCSVPath  = "outputs/results.csv"
	DefaultJSONPath = "outputs/results.json"
	DefaultPlotDir  = "outputs"
)

// DefaultSinks is used when the configuration lists no sink.
func DefaultSinks() []report.SinkConfig {
	return []report.SinkConfig{{Type: "csv"}, {Type: "plots"}}
}

func init() {
	mustRegister("nop", func(map[string]any) (report.Sink, error) {
		return report.NopSink{}, nil
	})

	mustRegister("csv", func(conf map[string]any) (report.Sink, error) {
		var c struct {
			Path string `json:"path"`
		}
		if err := report.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Path == "" {
			c.Path = DefaultCSVPath
		}
		log := logger.New("csv-sink")
		return report.SinkFunc(func(_ context.Context, run model.Run) error {
			if err := export.WriteCSVFile(c.Path, run.Cases); err != nil {
				return err
			}
			log.Infof("results written to %s", c.Path)
			return nil
		}), nil
	})

	mustRegister("json", func(conf map[string]any) (report.Sink, error) {
		var c struct {
			Path string `json:"path"`
		}
		if err := report.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Path == "" {
			c.Path = DefaultJSONPath
		}
		return report.SinkFunc(func(_ context.Context, run model.Run) error {
			return export.WriteJSONFile(c.Path, run)
		}), nil
	})

	mustRegister("plots", func(conf map[string]any) (report.Sink, error) {
		var c struct {
			Dir string `json:"dir"`
		}
		if err := report.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Dir == "" {
			c.Dir = DefaultPlotDir
		}
		log := logger.New("plot-sink")
		return report.SinkFunc(func(_ context.Context, run model.Run) error {
			paths, err := plot.Render(c.Dir, run)
			if err != nil {
				return err
			}
			log.Infof("charts written: %v", paths)
			return nil
		}), nil
	})

	mustRegister("prometheus", func(conf map[string]any) (report.Sink, error) {
		var c metrics.PromConfig
		if err := report.Decode(conf, &c); err != nil {
			return nil, err
		}
		sink, err := metrics.NewPromSink(c)
		if err != nil {
			return nil, err
		}
		return sink, nil
	})

	mustRegister("influx", func(conf map[string]any) (report.Sink, error) {
		var c metrics.InfluxConfig
		if err := report.Decode(conf, &c); err != nil {
			return nil, err
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return metrics.NewInfluxSinkWithFallback(c), nil
	})

	mustRegister("mqtt", func(conf map[string]any) (report.Sink, error) {
		var c mqtt.Config
		if err := report.Decode(conf, &c); err != nil {
			return nil, err
		}
		pub, err := mqtt.NewPublisher(c)
		if err != nil {
			return nil, err
		}
		return pub, nil
	})
}

func mustRegister(name string, f report.Factory) {
	if err := report.Register(name, f); err != nil {
		panic(err)
	}
}
