// Package dispatch runs the request in RequestState through an Executor and
// writes the settled text back as the response.
package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"code.cloudfoundry.org/bytefmt"

	"github.com/shhac/courier/internal/domain"
	apperrors "github.com/shhac/courier/internal/errors"
	"github.com/shhac/courier/internal/httpexec"
	"github.com/shhac/courier/internal/model"
)

// Dispatcher issues requests for a RequestState.
//
// Submits are never blocked or queued. Each dispatch takes a Ticket from the
// state when it begins, and its result is only written if no newer dispatch
// began in the meantime, so the last submit wins regardless of which
// response arrives first. There is no cancellation and no retry.
type Dispatcher struct {
	state  *model.RequestState
	exec   httpexec.Executor
	logger *slog.Logger

	mu        sync.Mutex
	onSettled func(domain.Outcome)

	inflight sync.WaitGroup
}

// New creates a Dispatcher that sends through exec.
func New(state *model.RequestState, exec httpexec.Executor, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		state:  state,
		exec:   exec,
		logger: logger,
	}
}

// SetOnSettled sets a callback run after every dispatch settles, including
// stale ones. It runs on the dispatch goroutine.
func (d *Dispatcher) SetOnSettled(fn func(domain.Outcome)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onSettled = fn
}

// Dispatch starts a dispatch in the background and returns its Ticket
// without waiting for the network.
func (d *Dispatcher) Dispatch(ctx context.Context) model.Ticket {
	ticket := d.state.BeginDispatch()

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		body, err := d.execute(ctx, ticket)
		d.settle(ticket, body, err)
	}()

	return ticket
}

// DispatchAndWait runs a dispatch on the calling goroutine.
func (d *Dispatcher) DispatchAndWait(ctx context.Context) domain.Outcome {
	ticket := d.state.BeginDispatch()
	body, err := d.execute(ctx, ticket)
	return d.settle(ticket, body, err)
}

// Wait blocks until every background dispatch has settled.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}

// WaitTimeout waits like Wait but gives up after timeout. It reports
// whether every dispatch settled in time. Abandoned dispatches keep
// running on their goroutines.
func (d *Dispatcher) WaitTimeout(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (d *Dispatcher) execute(ctx context.Context, ticket model.Ticket) (string, error) {
	if !ticket.Method.Dispatchable() {
		return "", apperrors.ErrUnsupportedMethod
	}

	d.logger.Debug("dispatch started",
		slog.Uint64("id", ticket.ID),
		slog.String("method", ticket.Method.String()),
		slog.String("url", ticket.URL))

	return d.exec.Execute(ctx, ticket.Method, ticket.URL)
}

func (d *Dispatcher) settle(ticket model.Ticket, body string, err error) domain.Outcome {
	outcome := domain.Outcome{
		ID:     ticket.ID,
		Method: ticket.Method,
		URL:    ticket.URL,
		Text:   body,
		Err:    err,
	}
	if err != nil {
		outcome.Text = describe(err)
	}

	outcome.Applied = d.state.Settle(ticket, outcome.Text)

	switch {
	case !outcome.Applied:
		d.logger.Debug("stale dispatch discarded",
			slog.Uint64("id", ticket.ID),
			slog.Uint64("latest", d.state.LatestDispatch()))
	case err != nil:
		d.logger.Warn("dispatch failed",
			slog.Uint64("id", ticket.ID),
			slog.String("method", ticket.Method.String()),
			slog.String("url", ticket.URL),
			slog.Any("error", err))
	default:
		d.logger.Info("dispatch settled",
			slog.Uint64("id", ticket.ID),
			slog.String("method", ticket.Method.String()),
			slog.String("url", ticket.URL),
			slog.String("size", bytefmt.ByteSize(uint64(len(body)))))
	}

	d.mu.Lock()
	callback := d.onSettled
	d.mu.Unlock()
	if callback != nil {
		callback(outcome)
	}

	return outcome
}

// describe returns the text shown in the response panel for err.
func describe(err error) string {
	if errors.Is(err, apperrors.ErrUnsupportedMethod) {
		return apperrors.ErrUnsupportedMethod.Error()
	}
	return err.Error()
}
