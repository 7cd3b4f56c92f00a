package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps single keys to commands. Key names follow Bubble
// Tea's KeyMsg.String(): "n", "q", "ctrl+c", "esc".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command. Overwrites any existing binding.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the hint bar.
// Keys without a description are bound but not shown.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	if _, exists := r.bindings[k]; !exists {
		r.order = append(r.order, k)
	}
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[k]
}

// Hints returns described bindings in registration order as key/desc pairs.
func (r *KeybindRegistry) Hints() [][2]string {
	hints := make([][2]string, 0, len(r.order))
	for _, k := range r.order {
		if desc, ok := r.descriptions[k]; ok {
			hints = append(hints, [2]string{k, desc})
		}
	}
	return hints
}

// KeyHandler dispatches key messages against a registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for the given registry.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a key message. Returns (consumed, cmd): consumed is true
// when the key was bound, and cmd is the bound command (may be nil).
func (h *KeyHandler) Handle(msg tea.KeyMsg) (bool, tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	cmd := h.Registry.Lookup(msg.String())
	if cmd == nil {
		return false, nil
	}
	return true, cmd
}
