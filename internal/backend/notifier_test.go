package backend

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend records notification sends for the interval notifier tests.
type stubBackend struct {
	mu       sync.Mutex
	timeText string
	timeErr  error
	enabled  bool
	sends    []string
}

func (s *stubBackend) CurrentTime(ctx context.Context) (string, error) {
	return s.timeText, s.timeErr
}

func (s *stubBackend) Weather(ctx context.Context) (WeatherInfo, error) {
	return WeatherInfo{}, nil
}

func (s *stubBackend) DemoWeather(ctx context.Context) (WeatherInfo, error) {
	return WeatherInfo{}, nil
}

func (s *stubBackend) SendNotification(ctx context.Context, title, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sends = append(s.sends, body)
	return nil
}

func (s *stubBackend) NotificationEnabled(ctx context.Context) (bool, error) {
	return s.enabled, nil
}

func (s *stubBackend) SetNotificationEnabled(ctx context.Context, enabled bool) error {
	s.enabled = enabled
	return nil
}

func TestWaitUntilBoundary(t *testing.T) {
	period := 5 * time.Minute
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			name: "mid interval",
			now:  time.Date(2026, 3, 14, 12, 2, 30, 0, time.UTC),
			want: 2*time.Minute + 30*time.Second,
		},
		{
			name: "just past a boundary",
			now:  time.Date(2026, 3, 14, 12, 5, 1, 0, time.UTC),
			want: 4*time.Minute + 59*time.Second,
		},
		{
			name: "exactly on a boundary waits a full period",
			now:  time.Date(2026, 3, 14, 12, 10, 0, 0, time.UTC),
			want: 5 * time.Minute,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, waitUntilBoundary(tt.now, period))
		})
	}
}

func TestWaitUntilBoundary_Floor(t *testing.T) {
	// A wait shorter than a second is clamped so the loop can never spin.
	now := time.Date(2026, 3, 14, 12, 4, 59, int(900*time.Millisecond), time.UTC)
	assert.Equal(t, time.Second, waitUntilBoundary(now, 5*time.Minute))
}

func TestIntervalNotifier_Notify(t *testing.T) {
	b := &stubBackend{timeText: "2026-03-14 12:05:00"}
	n := NewIntervalNotifier(b, 0, zerolog.Nop())

	n.notify(context.Background())
	require.Len(t, b.sends, 1)
	assert.Equal(t, "The time is now 2026-03-14 12:05:00", b.sends[0])
}

func TestIntervalNotifier_NotifySkippedOnTimeFailure(t *testing.T) {
	b := &stubBackend{timeErr: errors.New("backend down")}
	n := NewIntervalNotifier(b, 0, zerolog.Nop())

	n.notify(context.Background())
	assert.Empty(t, b.sends)
}

func TestIntervalNotifier_RunStopsOnCancel(t *testing.T) {
	b := &stubBackend{enabled: true}
	n := NewIntervalNotifier(b, 0, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		n.Run(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return promptly once the context is cancelled")
	}
	assert.Empty(t, b.sends, "no notification may fire after cancellation")
}

func TestNewIntervalNotifier_DefaultPeriod(t *testing.T) {
	n := NewIntervalNotifier(&stubBackend{}, 0, zerolog.Nop())
	assert.Equal(t, 5*time.Minute, n.period)
}
