package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/shhac/courier/internal/domain"
	"github.com/shhac/courier/internal/httpexec"
	"github.com/shhac/courier/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithExecutor(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	cfg := DefaultConfig()
	cfg.DefaultURL = "https://x.test/posts?userId=1"

	a := NewWithExecutor(fyneApp, cfg, logging.NewNopLogger(), httpexec.ExecutorFunc(
		func(context.Context, domain.Method, string) (string, error) { return "ok", nil },
	))

	assert.Same(t, cfg, a.Config())
	assert.NotNil(t, a.Logger())
	assert.NotNil(t, a.Dispatcher())
	assert.Equal(t, fyneApp, a.FyneApp())

	req := a.State().Request
	assert.Equal(t, domain.MethodGet, req.Method())
	assert.Equal(t, []domain.Parameter{domain.NewParameter("userId", "1")}, req.Params())
}

func TestApp_Send(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	var mu sync.Mutex
	var sent []string
	a := NewWithExecutor(fyneApp, DefaultConfig(), logging.NewNopLogger(), httpexec.ExecutorFunc(
		func(_ context.Context, m domain.Method, url string) (string, error) {
			mu.Lock()
			sent = append(sent, m.String()+" "+url)
			mu.Unlock()
			return "[]", nil
		},
	))

	settled := make(chan domain.Outcome, 1)
	a.OnSettled(func(o domain.Outcome) { settled <- o })

	a.Send()

	select {
	case o := <-settled:
		assert.True(t, o.Applied)
		assert.Equal(t, "[]", o.Text)
	case <-time.After(time.Second):
		t.Fatal("dispatch did not settle")
	}

	a.Dispatcher().Wait()
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, sent, 1)
	assert.Equal(t, "GET "+DefaultURL, sent[0])
	assert.Equal(t, "[]", a.State().Request.Response())
}

func TestApp_RunReturnsWithDispatchInFlight(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	release := make(chan struct{})
	defer close(release)
	started := make(chan struct{})

	cfg := DefaultConfig()
	cfg.ShutdownGrace = 50 * time.Millisecond
	a := NewWithExecutor(fyneApp, cfg, logging.NewNopLogger(), httpexec.ExecutorFunc(
		func(context.Context, domain.Method, string) (string, error) {
			close(started)
			<-release
			return "late", nil
		},
	))

	a.Send()
	<-started

	w := fyneApp.NewWindow("courier")
	returned := make(chan struct{})
	go func() {
		a.Run(w)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Run blocked on an outstanding dispatch")
	}
	assert.Empty(t, a.State().Request.Response())
}
