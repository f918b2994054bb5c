package model

import "fyne.io/fyne/v2/data/binding"

// Sidebar sections, in display order.
const (
	SectionCollections  = "API Collections"
	SectionHistory      = "History"
	SectionEnvironments = "Environments"
	SectionSettings     = "Settings"
)

// Sections lists the sidebar entries.
var Sections = []string{SectionCollections, SectionHistory, SectionEnvironments, SectionSettings}

// ApplicationState holds the request model plus view-level state that
// Fyne widgets bind to directly.
type ApplicationState struct {
	Request *RequestState

	// Sidebar selection
	SelectedSection binding.String

	// Status bar text, e.g. "Sent" or the title of the last failure
	Status binding.String
}

// NewApplicationState creates a new ApplicationState for a request
// initially pointing at url.
func NewApplicationState(url string) *ApplicationState {
	initial := SectionCollections
	section := binding.BindString(&initial)

	return &ApplicationState{
		Request:         NewRequestState(url),
		SelectedSection: section,
		Status:          binding.NewString(),
	}
}
