package backend

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// TimeFormat is the formatted time text returned by CurrentTime.
const TimeFormat = "2006-01-02 15:04:05"

// Local is the in-process backend: local clock, JMA weather with demo
// fallback data, notify-send dispatch, and an in-memory preference store.
type Local struct {
	weather    *JMAClient
	demo       *DemoProvider
	dispatcher *Dispatcher
	prefs      *PrefStore
	demoOnly   bool
	now        func() time.Time
}

var _ Backend = (*Local)(nil)

// LocalOptions configures a Local backend. Zero values select defaults.
type LocalOptions struct {
	AreaCode string
	DemoOnly bool // serve demo data from Weather as well (no network)
	Runner   CommandRunner
	Now      func() time.Time
	Log      zerolog.Logger
}

// NewLocal builds the in-process backend.
func NewLocal(opts LocalOptions) *Local {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Local{
		weather:    NewJMAClient(opts.AreaCode, nil, opts.Log),
		demo:       NewDemoProvider(now),
		dispatcher: NewDispatcher(opts.Runner, opts.Log),
		prefs:      NewPrefStore(),
		demoOnly:   opts.DemoOnly,
		now:        now,
	}
}

// Prefs exposes the preference store for the interval notifier.
func (l *Local) Prefs() *PrefStore {
	return l.prefs
}

// CurrentTime implements Backend.
func (l *Local) CurrentTime(ctx context.Context) (string, error) {
	return l.now().Format(TimeFormat), nil
}

// Weather implements Backend.
func (l *Local) Weather(ctx context.Context) (WeatherInfo, error) {
	if l.demoOnly {
		return l.demo.Snapshot(), nil
	}
	return l.weather.Fetch(ctx)
}

// DemoWeather implements Backend.
func (l *Local) DemoWeather(ctx context.Context) (WeatherInfo, error) {
	return l.demo.Snapshot(), nil
}

// SendNotification implements Backend.
func (l *Local) SendNotification(ctx context.Context, title, body string) error {
	return l.dispatcher.Send(ctx, title, body)
}

// NotificationEnabled implements Backend.
func (l *Local) NotificationEnabled(ctx context.Context) (bool, error) {
	return l.prefs.Enabled(), nil
}

// SetNotificationEnabled implements Backend.
func (l *Local) SetNotificationEnabled(ctx context.Context, enabled bool) error {
	l.prefs.SetEnabled(enabled)
	return nil
}
