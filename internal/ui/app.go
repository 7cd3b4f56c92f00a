package ui

import (
	"deskclock/internal/backend"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// AppModel is the root model: the widget view plus key handling.
type AppModel struct {
	Widget     *WidgetView
	KeyHandler *KeyHandler
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Widget.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		// Disarm the timers before the program exits so no stale tick can
		// trigger a fetch while teardown runs.
		a.Widget.Deactivate()
		return a, tea.Quit
	case ToggleNotificationMsg:
		return a, a.Widget.ToggleNotification(!a.Widget.NotifyEnabled)
	case SendNowMsg:
		return a, a.Widget.SendNotification()
	case RefreshWeatherMsg:
		return a, a.Widget.FetchWeather()
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}

	v, cmd := a.Widget.Update(msg)
	if w, ok := v.(*WidgetView); ok {
		a.Widget = w
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Widget.View()
	if hints := RenderKeyHints(a.KeyHandler.Registry); hints != "" {
		base += "\n" + hints
	}
	return base
}

// NewAppModel creates the root application model with default keybinds.
func NewAppModel(b backend.Backend, log zerolog.Logger, opts WidgetOptions) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("n", func() tea.Msg { return ToggleNotificationMsg{} }, "toggle notify")
	reg.BindWithDesc("s", func() tea.Msg { return SendNowMsg{} }, "send now")
	reg.BindWithDesc("r", func() tea.Msg { return RefreshWeatherMsg{} }, "refresh weather")
	reg.BindWithDesc("q", func() tea.Msg { return QuitMsg{} }, "quit")
	reg.Bind("ctrl+c", func() tea.Msg { return QuitMsg{} })

	return &AppModel{
		Widget:     NewWidgetView(b, log, opts),
		KeyHandler: NewKeyHandler(reg),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
