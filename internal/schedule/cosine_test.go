package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_Endpoints(t *testing.T) {
	s, err := NewCosine(CosineConfig{
		MaxRate:   1.0,
		MinRate:   0.1,
		MaxUpdate: 100,
		Logger:    quiet(),
	})
	require.NoError(t, err)

	got, err := s.Rate(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = s.Rate(50)
	require.NoError(t, err)
	assert.InDelta(t, 0.55, got, 1e-12) // halfway: (max+min)/2

	got, err = s.Rate(100)
	require.NoError(t, err)
	assert.Equal(t, 0.1, got)

	// Past the horizon the rate stays at the minimum.
	got, err = s.Rate(10_000)
	require.NoError(t, err)
	assert.Equal(t, 0.1, got)
}

func TestCosine_Monotone(t *testing.T) {
	s, err := NewCosine(CosineConfig{MaxRate: 1.0, MaxUpdate: 64, Logger: quiet()})
	require.NoError(t, err)

	prev := 2.0
	for update := 0; update <= 64; update++ {
		got, err := s.Rate(update)
		require.NoError(t, err)
		assert.Less(t, got, prev, "update %d", update)
		prev = got
	}
}

func TestCosine_CounterRegression(t *testing.T) {
	s, err := NewCosine(CosineConfig{MaxRate: 1.0, MaxUpdate: 10, Logger: quiet()})
	require.NoError(t, err)

	_, err = s.Rate(7)
	require.NoError(t, err)
	_, err = s.Rate(6)
	assert.ErrorIs(t, err, ErrCounterRegressed)
}

func TestCosine_ConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  CosineConfig
	}{
		{"zero horizon", CosineConfig{MaxRate: 1.0}},
		{"negative min", CosineConfig{MaxRate: 1.0, MinRate: -0.1, MaxUpdate: 10}},
		{"max below min", CosineConfig{MaxRate: 0.1, MinRate: 0.5, MaxUpdate: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCosine(tc.cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestCosine_JSONRoundTrip(t *testing.T) {
	s, err := NewCosine(CosineConfig{MaxRate: 1.0, MinRate: 0.1, MaxUpdate: 100, Logger: quiet()})
	require.NoError(t, err)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var restored Cosine
	require.NoError(t, json.Unmarshal(data, &restored))

	want, err := s.Rate(33)
	require.NoError(t, err)
	got, err := restored.Rate(33)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
