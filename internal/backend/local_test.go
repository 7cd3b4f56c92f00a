package backend

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestLocal_CurrentTime(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 5, 0, time.UTC)
	l := NewLocal(LocalOptions{Now: fixedClock(now), Log: zerolog.Nop()})

	text, err := l.CurrentTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14 12:00:05", text)
}

func TestLocal_NotificationPreferenceRoundtrip(t *testing.T) {
	l := NewLocal(LocalOptions{Log: zerolog.Nop()})
	ctx := context.Background()

	enabled, err := l.NotificationEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, l.SetNotificationEnabled(ctx, true))
	enabled, err = l.NotificationEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestLocal_DemoOnlyWeather(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 1, 0, 0, time.UTC) // minute 1 -> Cloudy
	l := NewLocal(LocalOptions{DemoOnly: true, Now: fixedClock(now), Log: zerolog.Nop()})
	ctx := context.Background()

	info, err := l.Weather(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cloudy", info.Description)

	demo, err := l.DemoWeather(ctx)
	require.NoError(t, err)
	assert.Equal(t, info, demo)
}
