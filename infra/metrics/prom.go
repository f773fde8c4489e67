package metrics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/kilianp07/genrel/core/model"
)

// PromConfig selects where the study gauges are exported. A CLI run is too
// short lived to be scraped, so gauges are written to a node-exporter
// textfile and/or pushed to a Pushgateway.
type PromConfig struct {
	TextfilePath   string `json:"textfile_path"`
	PushgatewayURL string `json:"pushgateway_url"`
	Job            string `json:"job"`
}

// SetDefaults applies sane defaults.
func (c *PromConfig) SetDefaults() {
	if c.Job == "" {
		c.Job = "genrel"
	}
}

// Validate requires at least one export target.
func (c PromConfig) Validate() error {
	if c.TextfilePath == "" && c.PushgatewayURL == "" {
		return fmt.Errorf("prometheus sink requires textfile_path or pushgateway_url")
	}
	return nil
}

// PromSink records study results in Prometheus gauges.
type PromSink struct {
	cfg          PromConfig
	gatherer     prometheus.Gatherer
	availability *prometheus.GaugeVec
	capacity     *prometheus.GaugeVec
	tiers        *prometheus.GaugeVec
	timestamp    prometheus.Gauge
}

// NewPromSink registers study metrics on a dedicated registry.
func NewPromSink(cfg PromConfig) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.NewRegistry())
}

// NewPromSinkWithRegistry registers metrics on the provided registry.
// If the collectors are already registered, the existing ones are reused.
func NewPromSinkWithRegistry(cfg PromConfig, reg *prometheus.Registry) (*PromSink, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	availability := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "genrel_system_availability_percent",
		Help: "Expected annual system availability of a sizing case",
	}, []string{"sizing_case", "units_required", "units_installed", "tier_level"})
	capacity := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "genrel_system_capacity_kw",
		Help: "Installed system capacity of a sizing case",
	}, []string{"sizing_case", "units_installed"})
	tiers := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "genrel_cases_by_tier",
		Help: "Number of sizing cases reaching each tier level",
	}, []string{"tier_level"})
	timestamp := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "genrel_study_timestamp_seconds",
		Help: "Unix time of the last published study",
	})

	var err error
	if availability, err = registerOrReuse(reg, availability); err != nil {
		return nil, err
	}
	if capacity, err = registerOrReuse(reg, capacity); err != nil {
		return nil, err
	}
	if tiers, err = registerOrReuse(reg, tiers); err != nil {
		return nil, err
	}
	if timestamp, err = registerOrReuse(reg, timestamp); err != nil {
		return nil, err
	}
	return &PromSink{
		cfg:          cfg,
		gatherer:     reg,
		availability: availability,
		capacity:     capacity,
		tiers:        tiers,
		timestamp:    timestamp,
	}, nil
}

func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}

// Publish replaces the gauges with the run and exports them.
func (s *PromSink) Publish(ctx context.Context, run model.Run) error {
	s.availability.Reset()
	s.capacity.Reset()
	s.tiers.Reset()
	for _, lvl := range model.TierLevels {
		s.tiers.WithLabelValues(lvl.String()).Set(0)
	}
	for _, c := range run.Cases {
		k, n := strconv.Itoa(c.UnitsRequired), strconv.Itoa(c.UnitsInstalled)
		s.availability.WithLabelValues(c.SizingCase, k, n, c.TierLevel.String()).Set(c.SystemAvailability)
		s.capacity.WithLabelValues(c.SizingCase, n).Set(c.SystemCapacityKW)
		s.tiers.WithLabelValues(c.TierLevel.String()).Inc()
	}
	s.timestamp.Set(float64(run.CreatedAt.Unix()))

	if s.cfg.TextfilePath != "" {
		if err := prometheus.WriteToTextfile(s.cfg.TextfilePath, s.gatherer); err != nil {
			return fmt.Errorf("write textfile: %w", err)
		}
	}
	if s.cfg.PushgatewayURL != "" {
		if err := push.New(s.cfg.PushgatewayURL, s.cfg.Job).Gatherer(s.gatherer).PushContext(ctx); err != nil {
			return fmt.Errorf("push metrics: %w", err)
		}
	}
	return nil
}
