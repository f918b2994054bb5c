package request

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/shhac/courier/internal/domain"
	"github.com/shhac/courier/internal/logging"
	"github.com/shhac/courier/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPanel(t *testing.T, url string) (*RequestPanel, *model.RequestState) {
	t.Helper()
	test.NewApp()
	state := model.NewRequestState(url)
	return NewRequestPanel(state, logging.NewNopLogger()), state
}

func TestRequestPanel_InitialState(t *testing.T) {
	p, _ := newTestPanel(t, "https://x.test/items?a=1")

	assert.Equal(t, "GET", p.methodSelect.Selected)
	assert.Equal(t, domain.MethodNames(), p.methodSelect.Options)
	assert.Equal(t, "https://x.test/items?a=1", p.urlEntry.Text)
	require.Len(t, p.params.Rows(), 1)
	assert.Equal(t, "a", p.params.Rows()[0].Name)
	assert.Equal(t, SectionParams, p.sections.Selected())
}

func TestRequestPanel_MethodSelect(t *testing.T) {
	p, state := newTestPanel(t, "https://x.test")

	p.methodSelect.SetSelected("POST")

	assert.Equal(t, domain.MethodPost, state.Method())
}

func TestRequestPanel_TypingURLFillsTable(t *testing.T) {
	p, state := newTestPanel(t, "https://x.test")

	p.urlEntry.SetText("https://x.test?q=go&page=2")

	assert.Equal(t, "https://x.test?q=go&page=2", state.URL())
	rows := p.params.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "q", rows[0].Name)
	assert.Equal(t, "2", rows[1].Value)
	assert.Equal(t, "https://x.test?q=go&page=2", p.urlEntry.Text)
}

func TestRequestPanel_ParamEditRewritesURL(t *testing.T) {
	p, state := newTestPanel(t, "https://x.test/items")

	p.AddParam()
	p.sync.SetParamName(0, "size")
	p.sync.SetParamValue(0, "a b")

	assert.Equal(t, "https://x.test/items?size=a%20b", state.URL())
	assert.Equal(t, "https://x.test/items?size=a%20b", p.urlEntry.Text)
}

func TestRequestPanel_AddParamShowsParams(t *testing.T) {
	p, state := newTestPanel(t, "https://x.test")
	p.sections.Select(SectionBody)

	p.AddParam()

	assert.Equal(t, SectionParams, p.sections.Selected())
	assert.Equal(t, 1, state.ParamCount())
	assert.Len(t, p.params.Rows(), 1)
}

func TestRequestPanel_BodyEditor(t *testing.T) {
	p, state := newTestPanel(t, "https://x.test")

	p.bodyEditor.SetText(`{"a":1}`)

	assert.Equal(t, `{"a":1}`, state.Body())
}

func TestRequestPanel_Send(t *testing.T) {
	p, _ := newTestPanel(t, "https://x.test")

	sent := 0
	p.TriggerSend()
	assert.Equal(t, 0, sent)

	p.SetOnSend(func() { sent++ })
	test.Tap(p.sendBtn)
	p.TriggerSend()

	assert.Equal(t, 2, sent)
}
