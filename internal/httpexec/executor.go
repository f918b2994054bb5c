// Package httpexec issues the outbound HTTP call for a dispatch.
package httpexec

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/shhac/courier/internal/domain"
	apperrors "github.com/shhac/courier/internal/errors"
)

// Executor performs one request and returns the full response body.
// The status code is not inspected: any response that arrives and can be
// read counts as success.
type Executor interface {
	Execute(ctx context.Context, method domain.Method, url string) (string, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, method domain.Method, url string) (string, error)

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, method domain.Method, url string) (string, error) {
	return f(ctx, method, url)
}

// Client is an Executor backed by net/http. It sends no custom headers and
// no body, and sets no timeout of its own.
type Client struct {
	http   *http.Client
	logger *slog.Logger
}

// NewClient creates a Client. A nil httpClient selects a client with the
// default transport and redirect policy.
func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// Execute issues method against url and reads the body to completion.
func (c *Client) Execute(ctx context.Context, method domain.Method, url string) (string, error) {
	httpMethod, err := toHTTPMethod(method)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, url, nil)
	if err != nil {
		c.logger.Debug("failed to build request",
			slog.String("method", httpMethod),
			slog.String("url", url),
			slog.Any("error", err))
		return "", &apperrors.TransportError{Method: httpMethod, URL: url, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &apperrors.TransportError{Method: httpMethod, URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &apperrors.TransportError{
			Method: httpMethod,
			URL:    url,
			Err:    errors.Wrap(err, "reading response body"),
		}
	}

	c.logger.Debug("response received",
		slog.String("method", httpMethod),
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)))

	return string(body), nil
}

// toHTTPMethod maps the methods this client can send onto net/http names.
func toHTTPMethod(method domain.Method) (string, error) {
	switch method {
	case domain.MethodGet:
		return http.MethodGet, nil
	case domain.MethodPost:
		return http.MethodPost, nil
	case domain.MethodPut, domain.MethodDelete:
		return "", errors.WithMessage(apperrors.ErrUnsupportedMethod, string(method))
	default:
		return "", errors.WithMessage(apperrors.ErrUnsupportedMethod, string(method))
	}
}
