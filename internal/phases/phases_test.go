package phases_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zibibbo-zibibbi/rainfall/internal/phases"
)

// TestRecorder_Time verifies the phase histogram and the debug line.
func TestRecorder_Time(t *testing.T) {
	reg := prometheus.NewRegistry()
	var buf bytes.Buffer
	rec := phases.NewRecorder(reg, log.NewLogfmtLogger(&buf))

	called := false
	d := rec.Time(phases.Creation, func() {
		called = true
		time.Sleep(time.Millisecond)
	})
	rec.Time(phases.Draining, func() {})
	rec.Time(phases.Draining, func() {})

	assert.True(t, called)
	assert.GreaterOrEqual(t, d, time.Millisecond)
	assert.Contains(t, buf.String(), "phase=creation")

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]uint64{}
	for _, mf := range families {
		if mf.GetName() != "rainfall_phase_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "phase" {
					counts[lp.GetValue()] = m.GetHistogram().GetSampleCount()
				}
			}
		}
	}
	assert.Equal(t, map[string]uint64{phases.Creation: 1, phases.Draining: 2}, counts)
}

// TestRecorder_Observe verifies the result gauges and run counter.
func TestRecorder_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := phases.NewRecorder(reg, nil)

	rec.Observe(12, 6)
	rec.Observe(3, 3)

	n, err := testutil.GatherAndCount(reg, "rainfall_runs_total", "rainfall_water_retained", "rainfall_columns")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetGauge() != nil:
				values[mf.GetName()] = m.GetGauge().GetValue()
			case m.GetCounter() != nil:
				values[mf.GetName()] = m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, 3.0, values["rainfall_columns"])
	assert.Equal(t, 3.0, values["rainfall_water_retained"])
	assert.Equal(t, 2.0, values["rainfall_runs_total"])
}

// TestNewRecorder_Unregistered verifies a nil registerer is allowed.
func TestNewRecorder_Unregistered(t *testing.T) {
	rec := phases.NewRecorder(nil, nil)
	assert.NotPanics(t, func() {
		rec.Time(phases.Verify, func() {})
		rec.Observe(1, 0)
	})
}
