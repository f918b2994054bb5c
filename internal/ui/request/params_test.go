package request

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/shhac/courier/internal/logging"
	"github.com/shhac/courier/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T, url string) (*ParamsTable, *URLSync, *model.RequestState) {
	t.Helper()
	test.NewApp()
	state := model.NewRequestState(url)
	sync := NewURLSync(state, logging.NewNopLogger())
	return NewParamsTable(sync, state.Params()), sync, state
}

func TestParamsTable_AcceptedEditUpdatesRow(t *testing.T) {
	table, _, state := newTestTable(t, "https://x.test/?a=1")
	row := table.createRow()
	table.updateRow(0, row)
	name, value, _, required, _, _ := rowWidgets(row)

	name.SetText("q")
	value.SetText("go")
	required.SetChecked(true)

	require.Len(t, table.Rows(), 1)
	assert.Equal(t, "q", table.Rows()[0].Name)
	assert.Equal(t, "go", table.Rows()[0].Value)
	assert.True(t, table.Rows()[0].Required)
	assert.Equal(t, "https://x.test/?q=go", state.URL())
}

func TestParamsTable_DroppedEditLeavesRowAlone(t *testing.T) {
	table, sync, state := newTestTable(t, "https://x.test/?a=1")
	row := table.createRow()
	table.updateRow(0, row)
	name, _, _, _, _, _ := rowWidgets(row)

	// The widget fires while an external URL change is being pushed.
	sync.SetOnURLChanged(func(string) { name.SetText("echo") })
	state.SetURL("https://x.test/?a=2")

	assert.Equal(t, "a", table.Rows()[0].Name)
	p, err := state.Param(0)
	require.NoError(t, err)
	assert.Equal(t, "a", p.Name)
	assert.Equal(t, "https://x.test/?a=2", state.URL())
}

func TestParamsTable_AddAndRemove(t *testing.T) {
	table, sync, state := newTestTable(t, "https://x.test/")
	sync.SetOnParamsChanged(table.SetRows)

	table.AddRow()
	require.Len(t, table.Rows(), 1)

	row := table.createRow()
	table.updateRow(0, row)
	_, _, _, _, _, remove := rowWidgets(row)
	test.Tap(remove)

	assert.Empty(t, table.Rows())
	assert.Equal(t, 0, state.ParamCount())
}
