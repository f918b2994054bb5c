package request

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/courier/internal/domain"
)

// ParamsTable is the editable query parameter table.
// Every edit goes through URLSync; the table itself holds only the rows it
// was last told to show.
type ParamsTable struct {
	widget.BaseWidget

	sync   *URLSync
	rows   []domain.Parameter
	list   *widget.List
	addBtn *widget.Button
	header fyne.CanvasObject
}

// NewParamsTable creates a table showing rows and editing through sync.
func NewParamsTable(sync *URLSync, rows []domain.Parameter) *ParamsTable {
	t := &ParamsTable{
		sync: sync,
		rows: rows,
	}

	t.list = widget.NewList(
		func() int {
			return len(t.rows)
		},
		t.createRow,
		t.updateRow,
	)

	t.addBtn = widget.NewButtonWithIcon("Add Param", theme.ContentAddIcon(), func() {
		t.AddRow()
	})

	t.header = rowLayout(
		widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Value", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Type", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Required", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Description", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(""),
	)

	t.ExtendBaseWidget(t)
	return t
}

// SetRows replaces the displayed rows.
func (t *ParamsTable) SetRows(rows []domain.Parameter) {
	t.rows = rows
	t.list.Refresh()
}

// Rows returns the displayed rows.
func (t *ParamsTable) Rows() []domain.Parameter {
	return t.rows
}

// AddRow appends an empty row.
func (t *ParamsTable) AddRow() {
	t.sync.AddParam()
}

func rowLayout(name, value, typ, required, description, remove fyne.CanvasObject) *fyne.Container {
	return container.NewBorder(nil, nil, nil, remove,
		container.NewGridWithColumns(5, name, value, typ, required, description),
	)
}

// createRow builds the template row: name, value, type, required,
// description, remove.
func (t *ParamsTable) createRow() fyne.CanvasObject {
	name := widget.NewEntry()
	name.SetPlaceHolder("name")
	value := widget.NewEntry()
	value.SetPlaceHolder("value")
	typ := widget.NewSelect(domain.ParamTypeNames(), nil)
	required := widget.NewCheck("", nil)
	description := widget.NewEntry()
	description.SetPlaceHolder("description")
	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)

	return rowLayout(name, value, typ, required, description, remove)
}

// rowWidgets unpacks a row built by createRow.
func rowWidgets(obj fyne.CanvasObject) (name, value *widget.Entry, typ *widget.Select, required *widget.Check, description *widget.Entry, remove *widget.Button) {
	border := obj.(*fyne.Container)
	grid := border.Objects[0].(*fyne.Container)
	remove = border.Objects[1].(*widget.Button)
	name = grid.Objects[0].(*widget.Entry)
	value = grid.Objects[1].(*widget.Entry)
	typ = grid.Objects[2].(*widget.Select)
	required = grid.Objects[3].(*widget.Check)
	description = grid.Objects[4].(*widget.Entry)
	return
}

// updateRow binds a recycled row to index id. Callbacks are detached while
// values are written so that filling the widgets is not mistaken for edits.
func (t *ParamsTable) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(t.rows) {
		return
	}
	row := t.rows[id]
	name, value, typ, required, description, remove := rowWidgets(obj)

	name.OnChanged = nil
	value.OnChanged = nil
	typ.OnChanged = nil
	required.OnChanged = nil
	description.OnChanged = nil

	name.SetText(row.Name)
	value.SetText(row.Value)
	typ.SetSelected(string(row.Type))
	required.SetChecked(row.Required)
	description.SetText(row.Description)

	name.OnChanged = func(s string) {
		if t.sync.SetParamName(id, s) {
			t.edit(id, func(p *domain.Parameter) { p.Name = s })
		}
	}
	value.OnChanged = func(s string) {
		if t.sync.SetParamValue(id, s) {
			t.edit(id, func(p *domain.Parameter) { p.Value = s })
		}
	}
	typ.OnChanged = func(s string) {
		pt := domain.ParseParamType(s)
		if t.sync.SetParamType(id, pt) {
			t.edit(id, func(p *domain.Parameter) { p.Type = pt })
		}
	}
	required.OnChanged = func(b bool) {
		if t.sync.SetParamRequired(id, b) {
			t.edit(id, func(p *domain.Parameter) { p.Required = b })
		}
	}
	description.OnChanged = func(s string) {
		if t.sync.SetParamDescription(id, s) {
			t.edit(id, func(p *domain.Parameter) { p.Description = s })
		}
	}
	remove.OnTapped = func() {
		t.sync.RemoveParam(id)
	}
}

// edit mirrors an accepted edit into the local copy of row id.
func (t *ParamsTable) edit(id int, fn func(*domain.Parameter)) {
	if id >= 0 && id < len(t.rows) {
		fn(&t.rows[id])
	}
}

// CreateRenderer implements fyne.Widget.
func (t *ParamsTable) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(
		t.header,
		container.NewHBox(t.addBtn),
		nil, nil,
		t.list,
	)
	return widget.NewSimpleRenderer(content)
}
