package sidebar

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/shhac/courier/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidebar_DefaultSection(t *testing.T) {
	test.NewApp()
	state := model.NewApplicationState("https://x.test")

	s := New(state.SelectedSection)

	assert.Equal(t, model.SectionCollections, s.Selected())
	assert.Equal(t, len(model.Sections), s.list.Length())
}

func TestSidebar_SelectWritesBinding(t *testing.T) {
	test.NewApp()
	selected := binding.NewString()
	s := New(selected)

	s.list.Select(2)

	got, err := selected.Get()
	require.NoError(t, err)
	assert.Equal(t, model.SectionEnvironments, got)
}

func TestSidebar_FollowsBinding(t *testing.T) {
	test.NewApp()
	selected := binding.NewString()
	s := New(selected)

	var picked []int
	s.list.OnSelected = func(id int) { picked = append(picked, id) }
	require.NoError(t, selected.Set(model.SectionSettings))

	assert.Eventually(t, func() bool {
		return len(picked) > 0 && picked[len(picked)-1] == 3
	}, time.Second, 10*time.Millisecond)
}

func TestSectionIcon(t *testing.T) {
	test.NewApp()
	assert.Equal(t, theme.HistoryIcon(), sectionIcon(model.SectionHistory))
	assert.Equal(t, theme.SettingsIcon(), sectionIcon(model.SectionSettings))
	assert.Equal(t, theme.FolderIcon(), sectionIcon("unknown"))
}
