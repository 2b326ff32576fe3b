// Package event is the synchronous notification bus between the document
// store and its observers (UI, plugins).
package event

import "github.com/gdamore/tcell/v2"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeElementsChanged  // element list mutated (add/update/delete/reorder/clear/align/undo/redo)
	TypeSelectionChanged // single or multi selection changed
	TypeHistoryChanged   // undo/redo availability may have changed

	// Interaction events
	TypeModeChanged
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

var typeNames = map[Type]string{
	TypeUnknown:          "unknown",
	TypeElementsChanged:  "elements-changed",
	TypeSelectionChanged: "selection-changed",
	TypeHistoryChanged:   "history-changed",
	TypeModeChanged:      "mode-changed",
	TypeKeyPressed:       "key-pressed",
	TypeAppReady:         "app-ready",
	TypeAppQuit:          "app-quit",
	TypeThemeChanged:     "theme-changed",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// ElementsChangedData names the store operation and the ids it touched.
type ElementsChangedData struct {
	Op  string
	IDs []string
}

// SelectionChangedData carries the selection after the change.
type SelectionChangedData struct {
	Single string
	Multi  []string
}

// HistoryChangedData carries the derived undo/redo flags.
type HistoryChangedData struct {
	CanUndo bool
	CanRedo bool
}

// ModeChangedData names the interaction mode now active.
type ModeChangedData struct {
	Mode string
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// ThemeChangedData names the theme now active.
type ThemeChangedData struct {
	Name string
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
