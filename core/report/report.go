// Package report defines how a finished study leaves the core. Sinks receive
// the whole annotated run at once; the core knows nothing about files,
// brokers or charts.
package report

import (
	"context"
	"errors"

	"github.com/kilianp07/genrel/core/model"
)

// Sink publishes a finished run.
type Sink interface {
	Publish(ctx context.Context, run model.Run) error
}

// Closer is implemented by sinks holding connections.
type Closer interface {
	Close() error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, run model.Run) error

// Publish calls f.
func (f SinkFunc) Publish(ctx context.Context, run model.Run) error { return f(ctx, run) }

// NopSink drops every run.
type NopSink struct{}

// Publish implements Sink.
func (NopSink) Publish(context.Context, model.Run) error { return nil }

// MultiSink fans a run out to several sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// Publish forwards the run to every sink in order, returning the first error
// encountered.
func (m *MultiSink) Publish(ctx context.Context, run model.Run) error {
	for _, s := range m.Sinks {
		if err := s.Publish(ctx, run); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink implementing Closer and joins their errors.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.Sinks {
		if c, ok := s.(Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
