package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/genrel/core/model"
)

type closingSink struct {
	published int
	closed    bool
	err       error
}

func (s *closingSink) Publish(context.Context, model.Run) error {
	s.published++
	return s.err
}

func (s *closingSink) Close() error {
	s.closed = true
	return nil
}

func TestMultiSink_Publish(t *testing.T) {
	a, b := &closingSink{}, &closingSink{}
	m := NewMultiSink(a, b)
	require.NoError(t, m.Publish(context.Background(), model.Run{ID: "r"}))
	assert.Equal(t, 1, a.published)
	assert.Equal(t, 1, b.published)

	a.err = errors.New("boom")
	assert.EqualError(t, m.Publish(context.Background(), model.Run{}), "boom")
	assert.Equal(t, 1, b.published)

	require.NoError(t, m.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestRegistry(t *testing.T) {
	var got struct {
		Path    string        `json:"path"`
		Timeout time.Duration `json:"timeout"`
		QoS     int           `json:"qos"`
	}
	require.NoError(t, Register("test-registry", func(conf map[string]any) (Sink, error) {
		if err := Decode(conf, &got); err != nil {
			return nil, err
		}
		return &closingSink{}, nil
	}))
	assert.Error(t, Register("test-registry", func(map[string]any) (Sink, error) { return NopSink{}, nil }))
	assert.Error(t, Register("test-nil", nil))
	assert.Contains(t, Registered(), "test-registry")

	s, err := New(SinkConfig{Type: "test-registry", Conf: map[string]any{"path": "out.csv", "timeout": "2s", "qos": "1"}})
	require.NoError(t, err)
	assert.IsType(t, &closingSink{}, s)
	assert.Equal(t, "out.csv", got.Path)
	assert.Equal(t, 2*time.Second, got.Timeout)
	assert.Equal(t, 1, got.QoS)

	_, err = New(SinkConfig{Type: "missing"})
	assert.Error(t, err)
}

func TestNewSinks(t *testing.T) {
	s, err := NewSinks(nil)
	require.NoError(t, err)
	assert.IsType(t, NopSink{}, s)

	require.NoError(t, Register("test-multi", func(map[string]any) (Sink, error) { return &closingSink{}, nil }))
	s, err = NewSinks([]SinkConfig{{Type: "test-multi"}})
	require.NoError(t, err)
	assert.IsType(t, &closingSink{}, s)

	s, err = NewSinks([]SinkConfig{{Type: "test-multi"}, {Type: "test-multi"}})
	require.NoError(t, err)
	m, ok := s.(*MultiSink)
	require.True(t, ok)
	assert.Len(t, m.Sinks, 2)

	_, err = NewSinks([]SinkConfig{{Type: "test-multi"}, {Type: "missing"}})
	assert.Error(t, err)
}

func TestSinkFunc(t *testing.T) {
	var seen string
	f := SinkFunc(func(_ context.Context, run model.Run) error {
		seen = run.ID
		return nil
	})
	require.NoError(t, f.Publish(context.Background(), model.Run{ID: "abc"}))
	assert.Equal(t, "abc", seen)
}
