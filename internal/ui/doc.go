// Package ui implements the widget's view controller with Bubble Tea.
//
// Core pieces:
//   - WidgetView: the single screen — clock text, weather snapshot, and the
//     notification checkbox, driven by typed messages
//   - commands: tea.Cmd closures issuing remote calls and reporting back
//   - KeybindRegistry / KeyHandler: single-key bindings with a hint bar
//
// All state mutations happen in Update; remote calls run off-loop inside
// commands and can overlap, with the last response applied winning.
package ui
