package response

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/courier/internal/model"
)

// Placeholder is shown while the request has no response.
const Placeholder = "No response data yet"

// ResponsePanel displays the last settled response of a request.
//
// Body text and error messages are rendered the same way.
type ResponsePanel struct {
	widget.BaseWidget

	state       *model.RequestState
	textDisplay *ReadOnlyEntry
	placeholder *widget.Label
	content     *fyne.Container
}

// NewResponsePanel creates a response panel that follows state.
func NewResponsePanel(state *model.RequestState) *ResponsePanel {
	p := &ResponsePanel{
		state: state,
	}
	p.ExtendBaseWidget(p)

	p.textDisplay = NewReadOnlyMultiLineEntry()
	p.placeholder = widget.NewLabel(Placeholder)
	p.placeholder.Alignment = fyne.TextAlignCenter
	p.placeholder.Importance = widget.LowImportance
	p.content = container.NewStack(p.placeholder)

	p.show(state.Response())

	// Responses are settled from dispatch goroutines.
	state.AddListener(func(c model.Change) {
		if !c.Has(model.ChangeResponse) {
			return
		}
		text := state.Response()
		fyne.Do(func() {
			p.show(text)
		})
	})
	return p
}

func (p *ResponsePanel) show(text string) {
	p.textDisplay.SetText(text)
	if text == "" {
		p.content.Objects = []fyne.CanvasObject{p.placeholder}
	} else {
		p.content.Objects = []fyne.CanvasObject{p.textDisplay}
	}
	p.content.Refresh()
}

// Text returns the displayed response text.
func (p *ResponsePanel) Text() string {
	return p.textDisplay.Text
}

// ShowsPlaceholder returns whether the empty-response placeholder is visible.
func (p *ResponsePanel) ShowsPlaceholder() bool {
	return len(p.content.Objects) == 1 && p.content.Objects[0] == p.placeholder
}

// Clear resets the response back to empty.
func (p *ResponsePanel) Clear() {
	p.state.ClearResponse()
}

// CreateRenderer implements fyne.Widget.
func (p *ResponsePanel) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(
		container.NewVBox(widget.NewLabel("Response"), widget.NewSeparator()),
		nil,
		nil,
		nil,
		p.content,
	)
	return widget.NewSimpleRenderer(content)
}

// MinSize implements fyne.Widget.
func (p *ResponsePanel) MinSize() fyne.Size {
	return fyne.NewSize(400, 200)
}
