package response

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// navigationKeys move the cursor or selection without editing.
var navigationKeys = map[fyne.KeyName]bool{
	fyne.KeyLeft: true, fyne.KeyRight: true, fyne.KeyUp: true, fyne.KeyDown: true,
	fyne.KeyHome: true, fyne.KeyEnd: true, fyne.KeyPageUp: true, fyne.KeyPageDown: true,
}

// ReadOnlyEntry shows response text at normal contrast. The user can move
// the cursor, select and copy, but never change the text; only SetText
// does.
type ReadOnlyEntry struct {
	widget.Entry
}

// NewReadOnlyMultiLineEntry creates a monospaced multi-line read-only entry.
func NewReadOnlyMultiLineEntry() *ReadOnlyEntry {
	e := &ReadOnlyEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	return e
}

// TypedRune ignores input.
func (e *ReadOnlyEntry) TypedRune(rune) {}

// TypedKey passes navigation keys through.
func (e *ReadOnlyEntry) TypedKey(key *fyne.KeyEvent) {
	if navigationKeys[key.Name] {
		e.Entry.TypedKey(key)
	}
}

// TypedShortcut passes copy and select-all through.
func (e *ReadOnlyEntry) TypedShortcut(shortcut fyne.Shortcut) {
	switch shortcut.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(shortcut)
	}
}
