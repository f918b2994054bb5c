package request

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/courier/internal/domain"
	"github.com/shhac/courier/internal/model"
	"github.com/shhac/courier/internal/ui/components"
)

// Section names of the request editor.
const (
	SectionParams = "Params"
	SectionBody   = "Body"
)

// RequestPanel composes the request: method, URL, parameters and body.
//
// URL and parameter edits are routed through URLSync, which also pushes
// the re-derived side back into the widgets. Method and body edits are
// written to the state directly.
type RequestPanel struct {
	widget.BaseWidget

	state  *model.RequestState
	sync   *URLSync
	logger *slog.Logger

	methodSelect *widget.Select
	urlEntry     *widget.Entry
	sendBtn      *widget.Button
	params       *ParamsTable
	bodyEditor   *widget.Entry
	sections     *components.SectionTabs

	onSend func()
}

// NewRequestPanel creates a request panel editing state.
func NewRequestPanel(state *model.RequestState, logger *slog.Logger) *RequestPanel {
	p := &RequestPanel{
		state:  state,
		sync:   NewURLSync(state, logger),
		logger: logger,
	}

	p.methodSelect = widget.NewSelect(domain.MethodNames(), nil)
	p.methodSelect.SetSelected(state.Method().String())
	p.methodSelect.OnChanged = func(selected string) {
		p.state.SetMethod(domain.Method(selected))
	}

	p.urlEntry = widget.NewEntry()
	p.urlEntry.SetPlaceHolder("https://api.example.com/resource")
	p.urlEntry.SetText(state.URL())
	p.urlEntry.OnChanged = p.sync.URLEdited
	p.urlEntry.OnSubmitted = func(string) {
		p.handleSend()
	}

	p.sendBtn = widget.NewButtonWithIcon("Send", theme.MailSendIcon(), func() {
		p.handleSend()
	})
	p.sendBtn.Importance = widget.HighImportance

	p.params = NewParamsTable(p.sync, state.Params())

	p.bodyEditor = widget.NewMultiLineEntry()
	p.bodyEditor.SetPlaceHolder("Request Body (JSON)")
	p.bodyEditor.Wrapping = fyne.TextWrapWord
	p.bodyEditor.SetText(state.Body())
	p.bodyEditor.OnChanged = p.state.SetBody

	p.sections = components.NewSectionTabs(
		components.Section{Name: SectionParams, Content: p.params},
		components.Section{Name: SectionBody, Content: p.bodyEditor},
	)

	p.sync.SetOnURLChanged(func(url string) {
		if p.urlEntry.Text != url {
			p.urlEntry.SetText(url)
		}
	})
	p.sync.SetOnParamsChanged(p.params.SetRows)

	p.ExtendBaseWidget(p)
	return p
}

// SetOnSend sets the callback for when Send is clicked or Return is
// pressed in the URL entry.
func (p *RequestPanel) SetOnSend(fn func()) {
	p.onSend = fn
}

func (p *RequestPanel) handleSend() {
	if p.onSend == nil {
		return
	}
	p.logger.Debug("send triggered",
		slog.String("method", p.state.Method().String()),
		slog.String("url", p.state.URL()))
	p.onSend()
}

// TriggerSend programmatically triggers the send action (for keyboard shortcut)
func (p *RequestPanel) TriggerSend() {
	p.handleSend()
}

// AddParam appends an empty parameter row and shows the table (for keyboard shortcut)
func (p *RequestPanel) AddParam() {
	p.sections.Select(SectionParams)
	p.params.AddRow()
}

// FocusURL moves keyboard focus to the URL entry (for keyboard shortcut)
func (p *RequestPanel) FocusURL() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(p.urlEntry); c != nil {
		c.Focus(p.urlEntry)
	}
}

// CreateRenderer returns the widget renderer
func (p *RequestPanel) CreateRenderer() fyne.WidgetRenderer {
	controls := container.NewBorder(
		nil, nil,
		p.methodSelect,
		p.sendBtn,
		p.urlEntry,
	)

	content := container.NewBorder(
		container.NewVBox(controls, widget.NewSeparator()),
		nil, nil, nil,
		p.sections,
	)
	return widget.NewSimpleRenderer(content)
}
