package ui

import "deskclock/internal/backend"

// TimeFetchedMsg is sent when a get-current-time call resolves.
type TimeFetchedMsg struct {
	Text string
	Err  error
}

// WeatherFetchedMsg is sent when a weather fetch resolves, after the demo
// fallback tier has been attempted if needed. Err is set only when both
// tiers failed; Demo marks a snapshot served by the fallback.
type WeatherFetchedMsg struct {
	Info backend.WeatherInfo
	Demo bool
	Err  error
}

// NotificationStateMsg is sent when the notification preference is read
// from the backend. On Err the prior local value is kept.
type NotificationStateMsg struct {
	Enabled bool
	Err     error
}

// NotificationSentMsg reports a send-now attempt. The send path fetches a
// fresh time first, so the message also carries a clock update.
type NotificationSentMsg struct {
	Time    string
	TimeErr error
	SendErr error
}

// ToggleResultMsg reports the remote preference write that follows an
// optimistic local toggle. The caller decides whether a failure rolls the
// flag back.
type ToggleResultMsg struct {
	Enabled bool
	Err     error
}

// ToggleNotificationMsg is sent when the user flips the notification
// checkbox.
type ToggleNotificationMsg struct{}

// SendNowMsg is sent when the user triggers a manual notification.
type SendNowMsg struct{}

// RefreshWeatherMsg is sent when the user requests a manual weather refresh.
type RefreshWeatherMsg struct{}

// QuitMsg is sent when the user quits; the widget deactivates before the
// program exits.
type QuitMsg struct{}

// clockTickMsg and weatherTickMsg drive the recurring fetches. Each carries
// the activation generation it was armed under; stale ticks are dropped.
type clockTickMsg struct {
	gen int
}

type weatherTickMsg struct {
	gen int
}
