package settings

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// PrefTheme is the preference key holding "system", "dark" or "light".
const PrefTheme = "appTheme"

// Theme modes.
const (
	ThemeSystem = "system"
	ThemeDark   = "dark"
	ThemeLight  = "light"
)

var themeLabels = []string{"System Default", "Light", "Dark"}

// ThemeLabel returns the selector label of a theme mode.
func ThemeLabel(mode string) string {
	switch mode {
	case ThemeDark:
		return "Dark"
	case ThemeLight:
		return "Light"
	default:
		return "System Default"
	}
}

// ThemeMode returns the theme mode of a selector label.
func ThemeMode(label string) string {
	switch label {
	case "Dark":
		return ThemeDark
	case "Light":
		return ThemeLight
	default:
		return ThemeSystem
	}
}

// PreferencesCallbacks provides hooks for the preferences dialog to apply changes.
type PreferencesCallbacks struct {
	OnThemeChange func(mode string)
}

// NewThemeSelector creates a selector preset to the saved theme. It does
// not save anything by itself.
func NewThemeSelector(prefs fyne.Preferences) *widget.Select {
	selector := widget.NewSelect(themeLabels, nil)
	selector.SetSelected(ThemeLabel(prefs.StringWithFallback(PrefTheme, ThemeSystem)))
	return selector
}

// SaveTheme stores the theme chosen in selector and reports it.
func SaveTheme(prefs fyne.Preferences, selector *widget.Select, callbacks PreferencesCallbacks) {
	mode := ThemeMode(selector.Selected)
	prefs.SetString(PrefTheme, mode)
	if callbacks.OnThemeChange != nil {
		callbacks.OnThemeChange(mode)
	}
}

// ShowPreferencesDialog displays the preferences dialog.
func ShowPreferencesDialog(a fyne.App, window fyne.Window, callbacks PreferencesCallbacks) {
	prefs := a.Preferences()
	themeSelector := NewThemeSelector(prefs)

	appearance := container.NewVBox(
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Theme", themeSelector),
		),
	)

	dlg := dialog.NewCustomConfirm("Preferences", "Save", "Cancel", appearance, func(save bool) {
		if save {
			SaveTheme(prefs, themeSelector, callbacks)
		}
	}, window)

	dlg.Resize(fyne.NewSize(420, 220))
	dlg.Show()
}
