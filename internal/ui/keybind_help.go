package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeyHints produces the persistent hint bar below the widget,
// listing every described binding in registration order.
func RenderKeyHints(reg *KeybindRegistry) string {
	if reg == nil {
		return ""
	}
	hints := reg.Hints()
	if len(hints) == 0 {
		return ""
	}

	bindings := make([]key.Binding, 0, len(hints))
	for _, h := range hints {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(h[0]),
			key.WithHelp(h[0], h[1]),
		))
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint

	return helpModel.ShortHelpView(bindings)
}
