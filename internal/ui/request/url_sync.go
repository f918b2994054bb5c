package request

import (
	"log/slog"
	"sync"

	"github.com/shhac/courier/internal/domain"
	"github.com/shhac/courier/internal/model"
)

type editOrigin int

const (
	originNone editOrigin = iota
	originURL
	originParams
)

// URLSync routes edits from the URL entry and the parameter table into
// RequestState and pushes the re-derived side back to the other widget.
//
// A single syncing flag guards every pass. While it is set, edits echoed
// back by widgets being updated (Entry.SetText firing OnChanged, for
// example) are dropped, so a URL typed by the user is never re-parsed
// because the table changed, and vice versa.
//
// The side that originated an edit is not pushed back to, except that a
// row add or remove always refreshes the table.
type URLSync struct {
	mu          sync.Mutex
	syncing     bool
	origin      editOrigin
	rowsChanged bool

	state  *model.RequestState
	logger *slog.Logger

	onURLChanged    func(url string)
	onParamsChanged func(params []domain.Parameter)
}

// NewURLSync creates a URLSync and subscribes it to state.
func NewURLSync(state *model.RequestState, logger *slog.Logger) *URLSync {
	s := &URLSync{
		state:  state,
		logger: logger,
	}
	state.AddListener(s.handleChange)
	return s
}

// SetOnURLChanged sets the callback that shows a rebuilt URL.
func (s *URLSync) SetOnURLChanged(fn func(url string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onURLChanged = fn
}

// SetOnParamsChanged sets the callback that shows re-parsed rows.
func (s *URLSync) SetOnParamsChanged(fn func(params []domain.Parameter)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onParamsChanged = fn
}

// IsSyncing returns whether a sync pass is in progress.
func (s *URLSync) IsSyncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncing
}

func (s *URLSync) begin(origin editOrigin, rowsChanged bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.syncing {
		return false
	}
	s.syncing = true
	s.origin = origin
	s.rowsChanged = rowsChanged
	return true
}

func (s *URLSync) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncing = false
	s.origin = originNone
	s.rowsChanged = false
}

// URLEdited applies a URL typed by the user.
func (s *URLSync) URLEdited(url string) {
	if !s.begin(originURL, false) {
		return
	}
	defer s.end()
	s.state.SetURL(url)
}

// AddParam appends an empty row. It returns the new index, or -1 when the
// call arrived during a sync pass and was dropped.
func (s *URLSync) AddParam() int {
	if !s.begin(originParams, true) {
		return -1
	}
	defer s.end()
	return s.state.AddParam()
}

// RemoveParam deletes row i.
func (s *URLSync) RemoveParam(i int) bool {
	return s.editParam(true, "remove", func() error { return s.state.RemoveParam(i) })
}

// SetParamName renames row i.
func (s *URLSync) SetParamName(i int, name string) bool {
	return s.editParam(false, "name", func() error { return s.state.SetParamName(i, name) })
}

// SetParamValue changes row i's value.
func (s *URLSync) SetParamValue(i int, value string) bool {
	return s.editParam(false, "value", func() error { return s.state.SetParamValue(i, value) })
}

// SetParamType changes row i's declared type.
func (s *URLSync) SetParamType(i int, t domain.ParamType) bool {
	return s.editParam(false, "type", func() error { return s.state.SetParamType(i, t) })
}

// SetParamRequired changes row i's required flag.
func (s *URLSync) SetParamRequired(i int, required bool) bool {
	return s.editParam(false, "required", func() error { return s.state.SetParamRequired(i, required) })
}

// SetParamDescription changes row i's description.
func (s *URLSync) SetParamDescription(i int, description string) bool {
	return s.editParam(false, "description", func() error { return s.state.SetParamDescription(i, description) })
}

// editParam applies one table edit. It reports false when the edit was
// dropped during a sync pass or rejected by the state.
func (s *URLSync) editParam(rowsChanged bool, field string, edit func() error) bool {
	if !s.begin(originParams, rowsChanged) {
		s.logger.Debug("parameter edit dropped during sync", slog.String("field", field))
		return false
	}
	defer s.end()

	if err := edit(); err != nil {
		s.logger.Warn("parameter edit rejected",
			slog.String("field", field),
			slog.Any("error", err))
		return false
	}
	return true
}

// handleChange runs for every RequestState edit. Changes made outside
// URLSync (shortcuts, programmatic SetURL) are pushed to both sides under
// the syncing flag.
func (s *URLSync) handleChange(c model.Change) {
	if !c.Has(model.ChangeURL) && !c.Has(model.ChangeParams) {
		return
	}

	s.mu.Lock()
	origin := s.origin
	rowsChanged := s.rowsChanged
	external := !s.syncing
	if external {
		s.syncing = true
	}
	onURL := s.onURLChanged
	onParams := s.onParamsChanged
	s.mu.Unlock()

	if external {
		defer s.end()
	}

	if c.Has(model.ChangeURL) && origin != originURL && onURL != nil {
		onURL(s.state.URL())
	}
	if c.Has(model.ChangeParams) && (origin != originParams || rowsChanged) && onParams != nil {
		onParams(s.state.Params())
	}
}
