package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Cmd+Enter: Send request
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyReturn,
		Modifier: fyne.KeyModifierSuper, // Cmd on macOS, Win on Windows
	}, func(fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: send request")
		w.requestPanel.TriggerSend()
	})

	// Cmd+K: Focus URL
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyK,
		Modifier: fyne.KeyModifierSuper,
	}, func(fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: focus url")
		w.requestPanel.FocusURL()
	})

	// Cmd+L: Clear response
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierSuper,
	}, func(fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: clear response")
		w.responsePanel.Clear()
	})

	// Cmd+N: Add parameter
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyN,
		Modifier: fyne.KeyModifierSuper,
	}, func(fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: add parameter")
		w.requestPanel.AddParam()
	})

	w.logger.Info("keyboard shortcuts configured")
}
