package sidebar

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/courier/internal/model"
)

// Sidebar lists the navigation sections and keeps the selected one in a
// string binding.
type Sidebar struct {
	widget.BaseWidget

	selected binding.String
	list     *widget.List
}

// New creates a sidebar bound to selected.
func New(selected binding.String) *Sidebar {
	s := &Sidebar{selected: selected}

	s.list = widget.NewList(
		func() int {
			return len(model.Sections)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(theme.FolderIcon()), widget.NewLabel("section"))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Icon).SetResource(sectionIcon(model.Sections[id]))
			row.Objects[1].(*widget.Label).SetText(model.Sections[id])
		},
	)
	s.list.OnSelected = func(id widget.ListItemID) {
		if current, _ := s.selected.Get(); current != model.Sections[id] {
			_ = s.selected.Set(model.Sections[id])
		}
	}

	selected.AddListener(binding.NewDataListener(s.syncSelection))
	s.syncSelection()

	s.ExtendBaseWidget(s)
	return s
}

// syncSelection highlights the row matching the bound section.
func (s *Sidebar) syncSelection() {
	name, _ := s.selected.Get()
	for i, section := range model.Sections {
		if section == name {
			s.list.Select(i)
			return
		}
	}
	s.list.UnselectAll()
}

// Selected returns the selected section name.
func (s *Sidebar) Selected() string {
	name, _ := s.selected.Get()
	return name
}

// CreateRenderer implements fyne.Widget.
func (s *Sidebar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.list)
}

func sectionIcon(name string) fyne.Resource {
	switch name {
	case model.SectionHistory:
		return theme.HistoryIcon()
	case model.SectionEnvironments:
		return theme.ComputerIcon()
	case model.SectionSettings:
		return theme.SettingsIcon()
	default:
		return theme.FolderIcon()
	}
}
