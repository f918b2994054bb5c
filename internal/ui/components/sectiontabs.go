package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Section is one named page of a SectionTabs widget.
type Section struct {
	Name    string
	Content fyne.CanvasObject
}

// SectionTabs switches between named content pages using a horizontal
// RadioGroup, which keeps it visually distinct from window-level AppTabs.
type SectionTabs struct {
	widget.BaseWidget

	sections     []Section
	selector     *widget.RadioGroup
	contentStack *fyne.Container

	onChange func(name string)
}

// NewSectionTabs creates a SectionTabs showing the first section.
func NewSectionTabs(sections ...Section) *SectionTabs {
	s := &SectionTabs{sections: sections}

	names := make([]string, len(sections))
	for i, sec := range sections {
		names[i] = sec.Name
	}

	s.contentStack = container.NewStack()
	s.selector = widget.NewRadioGroup(names, func(selected string) {
		s.updateContent(selected)
		if s.onChange != nil {
			s.onChange(selected)
		}
	})
	s.selector.Horizontal = true
	s.selector.Required = true

	if len(sections) > 0 {
		s.selector.Selected = sections[0].Name
		s.contentStack.Objects = []fyne.CanvasObject{sections[0].Content}
	}

	s.ExtendBaseWidget(s)
	return s
}

// SetOnChange sets the callback invoked with the newly selected section.
func (s *SectionTabs) SetOnChange(fn func(name string)) {
	s.onChange = fn
}

// Select shows the named section. Unknown names and the current section are
// ignored.
func (s *SectionTabs) Select(name string) {
	if s.Selected() == name || s.content(name) == nil {
		return
	}
	s.selector.SetSelected(name)
}

// Selected returns the name of the visible section.
func (s *SectionTabs) Selected() string {
	return s.selector.Selected
}

func (s *SectionTabs) content(name string) fyne.CanvasObject {
	for _, sec := range s.sections {
		if sec.Name == name {
			return sec.Content
		}
	}
	return nil
}

// updateContent swaps the visible content in the stack.
func (s *SectionTabs) updateContent(name string) {
	c := s.content(name)
	if c == nil {
		return
	}
	s.contentStack.Objects = []fyne.CanvasObject{c}
	s.contentStack.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (s *SectionTabs) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(s.selector, nil, nil, nil, s.contentStack)
	return widget.NewSimpleRenderer(content)
}
