package ui

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/shhac/courier/internal/domain"
	apperrors "github.com/shhac/courier/internal/errors"
	"github.com/shhac/courier/internal/logging"
	"github.com/shhac/courier/internal/model"
	uierrors "github.com/shhac/courier/internal/ui/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	fyneApp   fyne.App
	state     *model.ApplicationState
	sends     int
	onSettled func(domain.Outcome)
}

func (c *fakeController) State() *model.ApplicationState { return c.state }
func (c *fakeController) Logger() *slog.Logger           { return logging.NewNopLogger() }
func (c *fakeController) FyneApp() fyne.App              { return c.fyneApp }
func (c *fakeController) Send()                          { c.sends++ }
func (c *fakeController) OnSettled(fn func(domain.Outcome)) {
	c.onSettled = fn
}

func newTestWindow(t *testing.T) (*MainWindow, *fakeController) {
	t.Helper()
	a := test.NewApp()
	c := &fakeController{
		fyneApp: a,
		state:   model.NewApplicationState("https://x.test/posts"),
	}
	w := NewMainWindow(a, c)
	t.Cleanup(w.Window().Close)
	return w, c
}

func statusOf(w *MainWindow) string {
	s, _ := w.state.Status.Get()
	return s
}

func TestMainWindow_SendWired(t *testing.T) {
	w, c := newTestWindow(t)

	w.requestPanel.TriggerSend()

	assert.Equal(t, 1, c.sends)
	require.NotNil(t, c.onSettled)
}

func TestMainWindow_StatusAfterSettle(t *testing.T) {
	w, c := newTestWindow(t)

	c.onSettled(domain.Outcome{ID: 1, Text: "{}", Applied: true})
	assert.Eventually(t, func() bool { return statusOf(w) == uierrors.StatusSent }, time.Second, 10*time.Millisecond)

	c.onSettled(domain.Outcome{ID: 2, Text: "Unsupported method", Err: apperrors.ErrUnsupportedMethod, Applied: true})
	assert.Eventually(t, func() bool { return statusOf(w) == "Unsupported Method" }, time.Second, 10*time.Millisecond)
}

func TestMainWindow_StaleOutcomeIgnored(t *testing.T) {
	w, c := newTestWindow(t)

	c.onSettled(domain.Outcome{ID: 1, Err: errors.New("boom"), Applied: false})

	assert.Empty(t, statusOf(w))
	assert.Nil(t, w.lastErr)
}

func TestMainWindow_Menu(t *testing.T) {
	w, _ := newTestWindow(t)

	require.NotNil(t, w.Window().MainMenu())
	assert.Len(t, w.Window().MainMenu().Items, 3)
}

func TestLoadThemePreference(t *testing.T) {
	a := test.NewApp()

	LoadThemePreference(a, "dark")
	_, forced := a.Settings().Theme().(*forcedVariant)
	assert.True(t, forced)

	a.Preferences().SetString("appTheme", "system")
	LoadThemePreference(a, "")
	_, forced = a.Settings().Theme().(*forcedVariant)
	assert.False(t, forced)
}
