package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/kilianp07/genrel/core/model"
	"github.com/kilianp07/genrel/core/report"
	"github.com/kilianp07/genrel/infra/logger"
)

// InfluxConfig locates the InfluxDB v2 bucket receiving study results.
type InfluxConfig struct {
	URL         string        `json:"url"`
	Token       string        `json:"token"`
	Org         string        `json:"org"`
	Bucket      string        `json:"bucket"`
	Measurement string        `json:"measurement"`
	Timeout     time.Duration `json:"timeout"`
}

// SetDefaults applies sane defaults.
func (c *InfluxConfig) SetDefaults() {
	if c.Measurement == "" {
		c.Measurement = "availability_case"
	}
	if c.Timeout == 0 {
		c.Timeout = 5 * time.Second
	}
}

// Validate checks mandatory fields.
func (c InfluxConfig) Validate() error {
	if c.URL == "" || c.Org == "" || c.Bucket == "" {
		return fmt.Errorf("influx sink requires url, org and bucket")
	}
	return nil
}

// InfluxSink writes one point per study case to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client      influxdb2.Client
	writeAPI    api.WriteAPIBlocking
	measurement string
	timeout     time.Duration
	log         logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg InfluxConfig) *InfluxSink {
	cfg.SetDefaults()
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	return &InfluxSink{
		client:      client,
		writeAPI:    client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		measurement: cfg.Measurement,
		timeout:     cfg.Timeout,
		log:         logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// if the health check fails, so an unreachable database never fails a study.
func NewInfluxSinkWithFallback(cfg InfluxConfig) report.Sink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), sink.timeout)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return report.NopSink{}
	}
	return sink
}

// Publish writes every case of the run, tagged with the run ID.
func (s *InfluxSink) Publish(ctx context.Context, run model.Run) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout*time.Duration(max(len(run.Cases), 1)))
	defer cancel()
	for _, c := range run.Cases {
		if err := s.writeAPI.WritePoint(ctx, s.casePoint(run, c)); err != nil {
			return fmt.Errorf("influx write %s n=%d: %w", c.SizingCase, c.UnitsInstalled, err)
		}
	}
	s.log.Infof("wrote %d cases for run %s", len(run.Cases), run.ID)
	return nil
}

func (s *InfluxSink) casePoint(run model.Run, c model.Case) *write.Point {
	return write.NewPointWithMeasurement(s.measurement).
		AddTag("run_id", run.ID).
		AddTag("sizing_case", c.SizingCase).
		AddTag("units_installed", strconv.Itoa(c.UnitsInstalled)).
		AddTag("tier_level", c.TierLevel.String()).
		AddField("demand_kw", c.DemandKW).
		AddField("unit_capacity_kw", c.UnitCapacityKW).
		AddField("units_required", c.UnitsRequired).
		AddField("unit_reliability_pct", c.UnitReliabilityPct).
		AddField("unit_scheduled_outage_hrs", c.ScheduledOutageHrs).
		AddField("system_capacity_kw", c.SystemCapacityKW).
		AddField("redundant_units", c.RedundantUnits).
		AddField("system_availability", c.SystemAvailability).
		SetTime(run.CreatedAt)
}

// Close releases the underlying client resources.
func (s *InfluxSink) Close() error {
	s.client.Close()
	return nil
}
