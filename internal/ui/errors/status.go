package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Status messages shown after a dispatch settles.
const (
	StatusReady = "Ready"
	StatusSent  = "Sent"
)

// StatusBar shows the application version and the outcome of the last
// settled dispatch. Failures use a distinct icon shape, not only colour.
type StatusBar struct {
	widget.BaseWidget

	status       binding.String
	versionLabel *widget.Label
	statusLabel  *widget.Label
	indicator    *widget.Icon
	detailsBtn   *widget.Button

	onDetails func()
}

// NewStatusBar creates a status bar bound to status.
func NewStatusBar(version string, status binding.String) *StatusBar {
	label := widget.NewLabel(StatusReady)
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		status:       status,
		versionLabel: widget.NewLabel("Courier " + version),
		statusLabel:  label,
		indicator:    widget.NewIcon(theme.RadioButtonIcon()),
	}
	s.detailsBtn = widget.NewButtonWithIcon("", theme.InfoIcon(), func() {
		if s.onDetails != nil {
			s.onDetails()
		}
	})
	s.detailsBtn.Importance = widget.LowImportance
	s.detailsBtn.Hide()
	s.ExtendBaseWidget(s)

	status.AddListener(binding.NewDataListener(s.updateStatus))
	s.updateStatus()

	return s
}

// updateStatus refreshes the label and icon from the bound status.
func (s *StatusBar) updateStatus() {
	message, _ := s.status.Get()

	switch message {
	case "", StatusReady:
		s.indicator.SetResource(theme.RadioButtonIcon())
		s.statusLabel.SetText(StatusReady)
		s.detailsBtn.Hide()
	case StatusSent:
		s.indicator.SetResource(theme.ConfirmIcon())
		s.statusLabel.SetText(message)
		s.detailsBtn.Hide()
	default:
		s.indicator.SetResource(theme.ErrorIcon())
		s.statusLabel.SetText(message)
		if s.onDetails != nil {
			s.detailsBtn.Show()
		}
	}
}

// SetOnDetails sets the handler of the details button shown next to a
// failure status.
func (s *StatusBar) SetOnDetails(fn func()) {
	s.onDetails = fn
}

// Text returns the displayed status.
func (s *StatusBar) Text() string {
	return s.statusLabel.Text
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(
		s.indicator,
		s.statusLabel,
		s.detailsBtn,
		layout.NewSpacer(),
		s.versionLabel,
	))
}
