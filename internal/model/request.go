package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shhac/courier/internal/domain"
	"github.com/shhac/courier/internal/query"
)

// ErrNoSuchParam is returned when a row index is out of range.
var ErrNoSuchParam = errors.New("no such parameter")

// Change is a bit set describing which fields an edit touched.
type Change uint8

const (
	ChangeMethod Change = 1 << iota
	ChangeURL
	ChangeParams
	ChangeBody
	ChangeResponse
)

// Has reports whether c includes all bits of other.
func (c Change) Has(other Change) bool {
	return c&other == other
}

// Ticket identifies one dispatch. It carries the method and URL as they
// were when the dispatch began.
type Ticket struct {
	ID     uint64
	Method domain.Method
	URL    string
}

// Snapshot is a copy of RequestState at one point in time.
type Snapshot struct {
	Method   domain.Method
	URL      string
	Body     string
	Response string
	Params   []domain.Parameter
}

// RequestState is the request being composed and the last response shown.
//
// The URL and the parameter table are only rewritten through SetURL (which
// re-parses the table) and the parameter edit methods (which rebuild the
// URL). Each edit re-syncs one direction only; there is no background
// reconciliation.
//
// The response field is only written by Settle, and only for the most
// recently issued Ticket.
type RequestState struct {
	mu        sync.Mutex
	method    domain.Method
	url       string
	body      string
	response  string
	params    []domain.Parameter
	lastID    uint64
	listeners []func(Change)
}

// NewRequestState returns a GET request for url with its parameter table
// parsed from url.
func NewRequestState(url string) *RequestState {
	s := &RequestState{
		method: domain.MethodGet,
		url:    url,
		params: []domain.Parameter{},
	}
	if params, ok := query.Parse(url); ok {
		s.params = params
	}
	return s
}

// AddListener registers fn to be called after every edit.
// Listeners run on the goroutine that made the edit, outside the lock.
func (s *RequestState) AddListener(fn func(Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *RequestState) notify(c Change) {
	s.mu.Lock()
	listeners := make([]func(Change), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(c)
	}
}

// Method returns the selected method.
func (s *RequestState) Method() domain.Method {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.method
}

// SetMethod selects m.
func (s *RequestState) SetMethod(m domain.Method) {
	s.mu.Lock()
	s.method = m
	s.mu.Unlock()
	s.notify(ChangeMethod)
}

// URL returns the full URL including its query string.
func (s *RequestState) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.url
}

// SetURL replaces the URL. When url contains '?' the parameter table is
// replaced by the rows parsed from it; otherwise the table is left as is.
func (s *RequestState) SetURL(url string) {
	changed := ChangeURL

	s.mu.Lock()
	s.url = url
	if params, ok := query.Parse(url); ok {
		s.params = params
		changed |= ChangeParams
	}
	s.mu.Unlock()

	s.notify(changed)
}

// Body returns the raw request body text.
func (s *RequestState) Body() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.body
}

// SetBody replaces the request body text.
func (s *RequestState) SetBody(body string) {
	s.mu.Lock()
	s.body = body
	s.mu.Unlock()
	s.notify(ChangeBody)
}

// Response returns the last settled response text, or "" if none.
func (s *RequestState) Response() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response
}

// ClearResponse resets the response to "no response yet".
// A dispatch still outstanding will write its own result when it settles.
func (s *RequestState) ClearResponse() {
	s.mu.Lock()
	s.response = ""
	s.mu.Unlock()
	s.notify(ChangeResponse)
}

// Params returns a copy of the parameter table.
func (s *RequestState) Params() []domain.Parameter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyParams()
}

// Param returns row i.
func (s *RequestState) Param(i int) (domain.Parameter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.params) {
		return domain.Parameter{}, fmt.Errorf("%w: index %d", ErrNoSuchParam, i)
	}
	return s.params[i], nil
}

// ParamCount returns the number of rows in the table.
func (s *RequestState) ParamCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.params)
}

func (s *RequestState) copyParams() []domain.Parameter {
	out := make([]domain.Parameter, len(s.params))
	copy(out, s.params)
	return out
}

// AddParam appends an empty row and returns its index. An empty row is not
// serialized, but the URL is rebuilt all the same.
func (s *RequestState) AddParam() int {
	s.mu.Lock()
	s.params = append(s.params, domain.NewParameter("", ""))
	idx := len(s.params) - 1
	s.rebuildURL()
	s.mu.Unlock()

	s.notify(ChangeParams | ChangeURL)
	return idx
}

// RemoveParam deletes row i and rebuilds the URL.
func (s *RequestState) RemoveParam(i int) error {
	s.mu.Lock()
	if i < 0 || i >= len(s.params) {
		s.mu.Unlock()
		return fmt.Errorf("%w: index %d", ErrNoSuchParam, i)
	}
	s.params = append(s.params[:i], s.params[i+1:]...)
	s.rebuildURL()
	s.mu.Unlock()

	s.notify(ChangeParams | ChangeURL)
	return nil
}

// SetParamName renames row i and rebuilds the URL.
func (s *RequestState) SetParamName(i int, name string) error {
	return s.editParam(i, true, func(p *domain.Parameter) { p.Name = name })
}

// SetParamValue changes row i's value and rebuilds the URL.
func (s *RequestState) SetParamValue(i int, value string) error {
	return s.editParam(i, true, func(p *domain.Parameter) { p.Value = value })
}

// SetParamType changes row i's declared type. The URL is not touched.
func (s *RequestState) SetParamType(i int, t domain.ParamType) error {
	return s.editParam(i, false, func(p *domain.Parameter) { p.Type = t })
}

// SetParamRequired changes row i's required flag. The URL is not touched.
func (s *RequestState) SetParamRequired(i int, required bool) error {
	return s.editParam(i, false, func(p *domain.Parameter) { p.Required = required })
}

// SetParamDescription changes row i's description. The URL is not touched.
func (s *RequestState) SetParamDescription(i int, description string) error {
	return s.editParam(i, false, func(p *domain.Parameter) { p.Description = description })
}

func (s *RequestState) editParam(i int, serialized bool, edit func(*domain.Parameter)) error {
	s.mu.Lock()
	if i < 0 || i >= len(s.params) {
		s.mu.Unlock()
		return fmt.Errorf("%w: index %d", ErrNoSuchParam, i)
	}
	edit(&s.params[i])
	changed := ChangeParams
	if serialized {
		s.rebuildURL()
		changed |= ChangeURL
	}
	s.mu.Unlock()

	s.notify(changed)
	return nil
}

// rebuildURL must be called with mu held.
func (s *RequestState) rebuildURL() {
	s.url = query.Build(s.url, s.params)
}

// BeginDispatch issues a new Ticket for the current method and URL. Any
// Ticket issued earlier becomes stale.
func (s *RequestState) BeginDispatch() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	return Ticket{
		ID:     s.lastID,
		Method: s.method,
		URL:    s.url,
	}
}

// LatestDispatch returns the ID of the most recently issued Ticket, or 0.
func (s *RequestState) LatestDispatch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastID
}

// Settle writes text as the response if t is still the latest Ticket.
// It reports whether the write happened.
func (s *RequestState) Settle(t Ticket, text string) bool {
	s.mu.Lock()
	if t.ID == 0 || t.ID != s.lastID {
		s.mu.Unlock()
		return false
	}
	s.response = text
	s.mu.Unlock()

	s.notify(ChangeResponse)
	return true
}

// Snapshot returns a copy of every field.
func (s *RequestState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Method:   s.method,
		URL:      s.url,
		Body:     s.body,
		Response: s.response,
		Params:   s.copyParams(),
	}
}
