package ui

import (
	"fmt"
	"strings"
	"time"

	"deskclock/internal/backend"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// WidgetView is the clock/weather widget: three pieces of display state
// driven by periodic and user-triggered actions. All state mutations happen
// in Update on the single event loop; commands only issue remote calls and
// report back through messages.
type WidgetView struct {
	Backend backend.Backend
	Log     zerolog.Logger

	// Display state. Each field holds the most recently resolved value from
	// its owning action; overlapping responses apply in arrival order.
	Clock         string
	Weather       backend.WeatherInfo
	WeatherDemo   bool
	NotifyEnabled bool

	// RollbackOnToggleFailure reverts the optimistic flag when the remote
	// preference write fails. The original behavior (false) keeps it set.
	RollbackOnToggleFailure bool

	ClockInterval   time.Duration
	WeatherInterval time.Duration

	width int

	// Timer guard: Deactivate bumps gen, and ticks armed under an older
	// generation are dropped without fetching or rescheduling.
	active bool
	gen    int
}

// Ensure WidgetView implements View.
var _ View = (*WidgetView)(nil)

// WidgetOptions configures a WidgetView. Zero intervals select defaults.
type WidgetOptions struct {
	ClockInterval           time.Duration
	WeatherInterval         time.Duration
	RollbackOnToggleFailure bool
}

// NewWidgetView creates the widget with placeholder state.
func NewWidgetView(b backend.Backend, log zerolog.Logger, opts WidgetOptions) *WidgetView {
	if opts.ClockInterval <= 0 {
		opts.ClockInterval = time.Second
	}
	if opts.WeatherInterval <= 0 {
		opts.WeatherInterval = 30 * time.Minute
	}
	return &WidgetView{
		Backend:                 b,
		Log:                     log,
		Clock:                   backend.TimeLoadingText,
		Weather:                 backend.PlaceholderWeather(),
		RollbackOnToggleFailure: opts.RollbackOnToggleFailure,
		ClockInterval:           opts.ClockInterval,
		WeatherInterval:         opts.WeatherInterval,
		active:                  true,
		gen:                     1,
	}
}

// Init implements View: fire the three initial fetches (unordered, may
// race) and arm both recurring timers.
func (v *WidgetView) Init() tea.Cmd {
	return tea.Batch(
		v.FetchTime(),
		v.FetchNotificationState(),
		v.FetchWeather(),
		clockTickCmd(v.gen, v.ClockInterval),
		weatherTickCmd(v.gen, v.WeatherInterval),
	)
}

// FetchTime issues a get-current-time call.
func (v *WidgetView) FetchTime() tea.Cmd {
	return fetchTimeCmd(v.Backend, v.Log)
}

// FetchWeather issues the two-tier weather fetch.
func (v *WidgetView) FetchWeather() tea.Cmd {
	return fetchWeatherCmd(v.Backend, v.Log)
}

// FetchNotificationState mirrors the backend preference into the view.
func (v *WidgetView) FetchNotificationState() tea.Cmd {
	return fetchNotificationStateCmd(v.Backend, v.Log)
}

// SendNotification fetches a fresh time and sends one notification with it.
func (v *WidgetView) SendNotification() tea.Cmd {
	return sendNotificationCmd(v.Backend, v.Log)
}

// ToggleNotification optimistically applies checked, forwards it to the
// backend, and on enable triggers exactly one notification send.
func (v *WidgetView) ToggleNotification(checked bool) tea.Cmd {
	v.NotifyEnabled = checked
	cmds := []tea.Cmd{setNotificationCmd(v.Backend, v.Log, checked)}
	if checked {
		cmds = append(cmds, v.SendNotification())
	}
	return tea.Batch(cmds...)
}

// Deactivate disarms both timers. Ticks already scheduled still arrive as
// messages but carry a stale generation and are dropped, so no fetch occurs
// after deactivation.
func (v *WidgetView) Deactivate() {
	v.active = false
	v.gen++
}

// Active reports whether the widget's timers are armed.
func (v *WidgetView) Active() bool {
	return v.active
}

// Update implements View.
func (v *WidgetView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil

	case clockTickMsg:
		if !v.active || msg.gen != v.gen {
			return v, nil
		}
		// Reschedule immediately; the fetch is not awaited, so ticks can
		// overlap in flight.
		return v, tea.Batch(v.FetchTime(), clockTickCmd(v.gen, v.ClockInterval))

	case weatherTickMsg:
		if !v.active || msg.gen != v.gen {
			return v, nil
		}
		return v, tea.Batch(v.FetchWeather(), weatherTickCmd(v.gen, v.WeatherInterval))

	case TimeFetchedMsg:
		if msg.Err != nil {
			v.Clock = backend.TimeErrorText
		} else {
			v.Clock = msg.Text
		}
		return v, nil

	case WeatherFetchedMsg:
		if msg.Err != nil {
			v.Weather = backend.ErrorWeather()
			v.WeatherDemo = false
		} else {
			v.Weather = msg.Info
			v.WeatherDemo = msg.Demo
		}
		return v, nil

	case NotificationStateMsg:
		if msg.Err == nil {
			v.NotifyEnabled = msg.Enabled
		}
		return v, nil

	case NotificationSentMsg:
		// The send path runs a time fetch first; apply it like any other.
		if msg.TimeErr != nil {
			v.Clock = backend.TimeErrorText
		} else if msg.Time != "" {
			v.Clock = msg.Time
		}
		return v, nil

	case ToggleResultMsg:
		if msg.Err != nil && v.RollbackOnToggleFailure {
			v.NotifyEnabled = !msg.Enabled
		}
		return v, nil
	}

	return v, nil
}

// View implements View.
func (v *WidgetView) View() string {
	var b strings.Builder

	b.WriteString(Styles.Title.Render("Deskclock") + "\n\n")
	b.WriteString(Styles.Clock.Render(v.Clock) + "\n")
	b.WriteString(Styles.Box.Render(v.weatherBlock()) + "\n")
	b.WriteString(v.checkboxLine() + "\n")

	return b.String()
}

func (v *WidgetView) weatherBlock() string {
	var b strings.Builder

	header := "Weather"
	if v.WeatherDemo {
		header += " " + Styles.Muted.Render("(demo data)")
	}
	b.WriteString(Styles.Section.Render(header) + "\n")
	b.WriteString(Styles.Normal.Render(v.Weather.Description) + "\n")

	temp, humidity := backend.PlaceholderText, backend.PlaceholderText
	if v.Weather.HasReading() {
		temp = fmt.Sprintf("%.1f°C", v.Weather.Temperature)
		humidity = fmt.Sprintf("%d%%", v.Weather.Humidity)
	}
	b.WriteString(Styles.Normal.Render("Temperature: "+temp) + "\n")
	b.WriteString(Styles.Normal.Render("Humidity: "+humidity))

	// The icon element renders only for valid identifiers; "unknown" and
	// "error" suppress it.
	if url := v.Weather.IconURL(); url != "" {
		b.WriteString("\n" + Styles.Muted.Render(url))
	}
	return b.String()
}

func (v *WidgetView) checkboxLine() string {
	box := "[ ]"
	if v.NotifyEnabled {
		box = "[x]"
	}
	return Styles.Status.Render(box) + " " + Styles.Normal.Render("Notify every 5 minutes")
}
