// Package backend defines the remote-call boundary the widget view consumes:
// current time, weather (real and demo), desktop notifications, and the
// notification preference mirror. Implementations live in this package; the
// view only ever sees the Backend interface.
package backend

import (
	"context"
	"fmt"
)

// Sentinel values shown in place of real data when a call fails or hasn't
// resolved yet.
const (
	TimeLoadingText  = "--:--:--"
	TimeErrorText    = "time unavailable"
	WeatherErrorText = "weather unavailable"
	PlaceholderText  = "--"

	// IconUnknown and IconError suppress icon rendering in the view.
	IconUnknown = "unknown"
	IconError   = "error"
)

// IconURLTemplate maps a valid icon identifier to its image URL by direct
// substitution. The backend emits known-safe identifiers ("01d" etc).
const IconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"

// WeatherInfo is the complete weather record for one fetch. It replaces the
// previous display state as a unit; fields are never updated individually.
type WeatherInfo struct {
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Icon        string  `json:"icon"`
	WeatherCode string  `json:"weather_code"`
}

// HasReading reports whether the snapshot carries real measurements.
// Placeholder and error snapshots render "--" for temperature and humidity.
func (w WeatherInfo) HasReading() bool {
	return w.Icon != IconUnknown && w.Icon != IconError
}

// IconURL returns the image URL for the snapshot's icon, or "" when the
// icon is a sentinel and no icon should be rendered.
func (w WeatherInfo) IconURL() string {
	if !w.HasReading() {
		return ""
	}
	return fmt.Sprintf(IconURLTemplate, w.Icon)
}

// PlaceholderWeather is the initial snapshot shown before the first fetch
// resolves.
func PlaceholderWeather() WeatherInfo {
	return WeatherInfo{
		Description: PlaceholderText,
		Icon:        IconUnknown,
	}
}

// ErrorWeather is the snapshot stored when both the real fetch and the demo
// fallback fail.
func ErrorWeather() WeatherInfo {
	return WeatherInfo{
		Description: WeatherErrorText,
		Icon:        IconError,
	}
}

// Backend is the remote procedure boundary. Every method is a single remote
// call; callers treat all failures as one kind ("remote call failed") and
// degrade the display rather than abort.
type Backend interface {
	// CurrentTime returns the formatted current time text.
	CurrentTime(ctx context.Context) (string, error)
	// Weather returns the latest snapshot for the configured location.
	Weather(ctx context.Context) (WeatherInfo, error)
	// DemoWeather returns fixed demo data with the same shape as Weather.
	DemoWeather(ctx context.Context) (WeatherInfo, error)
	// SendNotification delivers a desktop notification. Non-fatal on failure.
	SendNotification(ctx context.Context, title, body string) error
	// NotificationEnabled reads the notification preference.
	NotificationEnabled(ctx context.Context) (bool, error)
	// SetNotificationEnabled writes the notification preference. Non-fatal
	// on failure.
	SetNotificationEnabled(ctx context.Context, enabled bool) error
}
