package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Notification text used by both the interval notifier and the view's
// send-now action.
const (
	NotificationTitle    = "Current time"
	NotificationBodyTmpl = "The time is now %s"
)

// IntervalNotifier sends a current-time notification at each five-minute
// wall-clock boundary while the preference is enabled. It runs outside the
// view's event loop and touches only the backend boundary.
type IntervalNotifier struct {
	backend Backend
	period  time.Duration
	now     func() time.Time
	log     zerolog.Logger
}

// NewIntervalNotifier creates a notifier firing on period boundaries
// (default five minutes).
func NewIntervalNotifier(b Backend, period time.Duration, log zerolog.Logger) *IntervalNotifier {
	if period <= 0 {
		period = 5 * time.Minute
	}
	return &IntervalNotifier{
		backend: b,
		period:  period,
		now:     time.Now,
		log:     log,
	}
}

// Run blocks until ctx is cancelled. Failures are logged and the loop
// continues; nothing here is fatal.
func (n *IntervalNotifier) Run(ctx context.Context) {
	for {
		wait := waitUntilBoundary(n.now(), n.period)
		if !sleep(ctx, wait) {
			return
		}

		enabled, err := n.backend.NotificationEnabled(ctx)
		if err != nil {
			n.log.Error().Err(err).Msg("interval notifier: read preference")
		} else if enabled {
			n.notify(ctx)
		}

		// Guard against double-firing inside the same boundary minute.
		if !sleep(ctx, 2*time.Second) {
			return
		}
	}
}

func (n *IntervalNotifier) notify(ctx context.Context) {
	text, err := n.backend.CurrentTime(ctx)
	if err != nil || text == "" {
		n.log.Error().Err(err).Msg("interval notifier: fetch time")
		return
	}
	body := fmt.Sprintf(NotificationBodyTmpl, text)
	if err := n.backend.SendNotification(ctx, NotificationTitle, body); err != nil {
		n.log.Error().Err(err).Msg("interval notifier: send")
	}
}

// waitUntilBoundary returns the time until the next multiple of period on
// the wall clock, with a one second floor so a loop can never spin.
func waitUntilBoundary(now time.Time, period time.Duration) time.Duration {
	next := now.Truncate(period).Add(period)
	wait := next.Sub(now)
	if wait < time.Second {
		wait = time.Second
	}
	return wait
}

// sleep waits for d or ctx cancellation; reports false when cancelled.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
