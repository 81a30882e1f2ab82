package pacing

import (
	"context"
	"testing"
	"time"

	"station-reassignment-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed_WaitsInterval(t *testing.T) {
	p := NewFixed(20 * time.Millisecond)

	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFixed_CancelledContext(t *testing.T) {
	p := NewFixed(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenBucket_BurstThenThrottle(t *testing.T) {
	p := NewTokenBucket(30*time.Millisecond, 2)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, p.Wait(ctx))
	require.NoError(t, p.Wait(ctx))
	assert.Less(t, time.Since(start), 30*time.Millisecond)

	require.NoError(t, p.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestTokenBucket_StartChargesFirstDispatch(t *testing.T) {
	p := NewTokenBucket(30*time.Millisecond, 1)
	p.Start()

	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestNone(t *testing.T) {
	assert.NoError(t, None{}.Wait(context.Background()))
}

func TestNew(t *testing.T) {
	tests := []struct {
		mode string
		want Pacer
	}{
		{"", &Fixed{Interval: time.Second}},
		{ModeFixed, &Fixed{Interval: time.Second}},
		{ModeNone, None{}},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			p, err := New(tt.mode, time.Second, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}

	p, err := New(ModeTokenBucket, time.Second, 3)
	require.NoError(t, err)
	assert.IsType(t, &TokenBucket{}, p)

	_, err = New("jitter", time.Second, 1)
	assert.ErrorIs(t, err, my_errors.ErrUnknownPacing)

	for _, interval := range []time.Duration{0, -time.Second} {
		_, err = New(ModeFixed, interval, 1)
		assert.ErrorIs(t, err, my_errors.ErrInvalidPacingInterval)
	}

	p, err = New(ModeNone, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, None{}, p)
}
