package ui

import (
	"context"
	"fmt"
	"time"

	"deskclock/internal/backend"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// fetchTimeCmd returns a command that fetches the current time. Failures are
// logged and surface as the clock error sentinel.
func fetchTimeCmd(b backend.Backend, log zerolog.Logger) tea.Cmd {
	return func() tea.Msg {
		text, err := b.CurrentTime(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("time fetch failed")
			return TimeFetchedMsg{Err: err}
		}
		return TimeFetchedMsg{Text: text}
	}
}

// fetchWeatherCmd returns a command implementing the two-tier weather fetch:
// the real call first, the demo call once as fallback. Each tier runs at
// most once per command; there is no retry loop.
func fetchWeatherCmd(b backend.Backend, log zerolog.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		info, err := b.Weather(ctx)
		if err == nil {
			return WeatherFetchedMsg{Info: info}
		}
		log.Error().Err(err).Msg("weather fetch failed, falling back to demo data")

		demo, demoErr := b.DemoWeather(ctx)
		if demoErr == nil {
			return WeatherFetchedMsg{Info: demo, Demo: true}
		}
		log.Error().Err(demoErr).Msg("demo weather fetch failed")
		return WeatherFetchedMsg{Err: demoErr}
	}
}

// fetchNotificationStateCmd returns a command that mirrors the backend's
// notification preference into the view.
func fetchNotificationStateCmd(b backend.Backend, log zerolog.Logger) tea.Cmd {
	return func() tea.Msg {
		enabled, err := b.NotificationEnabled(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("notification state fetch failed")
			return NotificationStateMsg{Err: err}
		}
		return NotificationStateMsg{Enabled: enabled}
	}
}

// sendNotificationCmd returns a command that fetches a fresh time and, when
// a non-empty value is obtained, sends one notification interpolating it.
// A failed send is logged and swallowed; no stored state changes and there
// is no re-attempt.
func sendNotificationCmd(b backend.Backend, log zerolog.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		text, err := b.CurrentTime(ctx)
		if err != nil {
			log.Error().Err(err).Msg("time fetch failed, skipping notification")
			return NotificationSentMsg{TimeErr: err}
		}
		msg := NotificationSentMsg{Time: text}
		if text == "" {
			return msg
		}
		body := fmt.Sprintf(backend.NotificationBodyTmpl, text)
		if err := b.SendNotification(ctx, backend.NotificationTitle, body); err != nil {
			log.Error().Err(err).Msg("notification send failed")
			msg.SendErr = err
		}
		return msg
	}
}

// setNotificationCmd returns a command that writes the preference to the
// backend after the view has already applied it optimistically. The result
// message lets Update decide whether a failure rolls the flag back.
func setNotificationCmd(b backend.Backend, log zerolog.Logger, enabled bool) tea.Cmd {
	return func() tea.Msg {
		if err := b.SetNotificationEnabled(context.Background(), enabled); err != nil {
			log.Error().Err(err).Bool("enabled", enabled).Msg("notification toggle failed")
			return ToggleResultMsg{Enabled: enabled, Err: err}
		}
		return ToggleResultMsg{Enabled: enabled}
	}
}

// clockTickCmd schedules the next clock refresh. The tick fires its fetch
// without awaiting the previous one, so in-flight calls may overlap; the
// last response applied wins.
func clockTickCmd(gen int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return clockTickMsg{gen: gen}
	})
}

// weatherTickCmd schedules the next weather refresh.
func weatherTickCmd(gen int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return weatherTickMsg{gen: gen}
	})
}
