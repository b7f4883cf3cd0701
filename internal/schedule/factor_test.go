package schedule

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quiet discards log output in tests.
func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFactor_IntervalDecay(t *testing.T) {
	s, err := NewFactor(FactorConfig{
		Rate:     1.0,
		Interval: 10,
		Factor:   0.5,
		Floor:    0.01,
		Logger:   quiet(),
	})
	require.NoError(t, err)

	steps := []struct {
		update int
		want   float64
	}{
		{0, 1.0},
		{5, 1.0},
		{10, 1.0}, // boundary not yet crossed: crossing requires update > interval
		{11, 0.5},
		{20, 0.5},
		{21, 0.25},
		{31, 0.125}, // two crossings in one call
	}
	for _, tc := range steps {
		got, err := s.Rate(tc.update)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "update %d", tc.update)
	}
}

func TestFactor_FloorClamp(t *testing.T) {
	s, err := NewFactor(FactorConfig{
		Rate:     1.0,
		Interval: 10,
		Factor:   0.5,
		Floor:    0.01,
		Logger:   quiet(),
	})
	require.NoError(t, err)

	// 0.5^7 = 0.0078125 < 0.01, so the rate clamps after the 7th crossing.
	for update := 0; update <= 200; update++ {
		got, err := s.Rate(update)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 0.01, "update %d", update)
	}
	got, err := s.Rate(200)
	require.NoError(t, err)
	assert.Equal(t, 0.01, got)
	assert.Equal(t, PhaseFloored, s.Phase())
}

func TestFactor_FloorLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s, err := NewFactor(FactorConfig{
		Rate:     1.0,
		Interval: 10,
		Factor:   0.5,
		Floor:    0.01,
		Logger:   logger,
	})
	require.NoError(t, err)

	for update := 0; update <= 500; update++ {
		_, err := s.Rate(update)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "learning rate floored"))
}

func TestFactor_SlowStart(t *testing.T) {
	s, err := NewFactor(FactorConfig{
		Rate:      1.0,
		Interval:  10,
		Factor:    0.5,
		Floor:     0.01,
		SlowStart: 3,
		Logger:    quiet(),
	})
	require.NoError(t, err)

	// Inside the window every call returns the cached override Rate*Factor.
	for update := 0; update <= 3; update++ {
		got, err := s.Rate(update)
		require.NoError(t, err)
		assert.Equal(t, 0.5, got, "update %d", update)
		assert.Equal(t, PhaseSlowStart, s.Phase())
	}

	// Past the window the base schedule takes over, unaffected by the
	// override: interval 10 has not been crossed yet.
	got, err := s.Rate(4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
	assert.Equal(t, PhaseSteadyDecay, s.Phase())

	got, err = s.Rate(11)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)
}

func TestFactor_CounterRegression(t *testing.T) {
	s, err := NewFactor(FactorConfig{Rate: 1.0, Interval: 10, Factor: 0.5, Logger: quiet()})
	require.NoError(t, err)

	_, err = s.Rate(5)
	require.NoError(t, err)

	// Repeating the previous counter is legal.
	_, err = s.Rate(5)
	require.NoError(t, err)

	// Going backwards is not.
	_, err = s.Rate(3)
	assert.ErrorIs(t, err, ErrCounterRegressed)

	_, err = s.Rate(-1)
	assert.ErrorIs(t, err, ErrCounterRegressed)

	// The instance stays usable at or past the highest observed counter.
	got, err := s.Rate(5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestFactor_ConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  FactorConfig
	}{
		{"zero interval", FactorConfig{Rate: 1.0}},
		{"negative interval", FactorConfig{Rate: 1.0, Interval: -2}},
		{"factor above one", FactorConfig{Rate: 1.0, Interval: 10, Factor: 1.5}},
		{"negative factor", FactorConfig{Rate: 1.0, Interval: 10, Factor: -0.5}},
		{"negative rate", FactorConfig{Rate: -1.0, Interval: 10, Factor: 0.5}},
		{"negative floor", FactorConfig{Rate: 1.0, Interval: 10, Factor: 0.5, Floor: -1}},
		{"slow start at interval", FactorConfig{Rate: 1.0, Interval: 10, Factor: 0.5, SlowStart: 10}},
		{"slow start past interval", FactorConfig{Rate: 1.0, Interval: 10, Factor: 0.5, SlowStart: 15}},
		{"negative slow start", FactorConfig{Rate: 1.0, Interval: 10, Factor: 0.5, SlowStart: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFactor(tc.cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestFactor_Defaults(t *testing.T) {
	s, err := NewFactor(FactorConfig{Interval: 5, Logger: quiet()})
	require.NoError(t, err)

	// Default rate 0.01 and default factor 1.0: the rate never moves.
	got, err := s.Rate(100)
	require.NoError(t, err)
	assert.Equal(t, 0.01, got)
}

func TestFactor_JSONRoundTrip(t *testing.T) {
	s, err := NewFactor(FactorConfig{
		Rate:      1.0,
		Interval:  10,
		Factor:    0.5,
		Floor:     0.01,
		SlowStart: 3,
		Logger:    quiet(),
	})
	require.NoError(t, err)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var restored Factor
	require.NoError(t, json.Unmarshal(data, &restored))

	// The restored scheduler resumes mid-run through checkpoint replay.
	want, err := s.Rate(31)
	require.NoError(t, err)
	got, err := restored.Rate(31)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
