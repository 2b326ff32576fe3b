// Package plugin defines the extension points of the editor.
package plugin

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/event"
	"github.com/bethropolis/flyer/internal/theme"
	"github.com/bethropolis/flyer/internal/types"
)

// CommandFunc is the signature of a ":" command. args are the
// whitespace-separated words after the command name.
type CommandFunc func(args []string) error

// EditorAPI is the controlled surface plugins use to reach the document
// and the UI.
type EditorAPI interface {
	// --- Document (read) ---
	Elements() []element.Element
	SelectedElements() []element.Element
	SelectedElementIDs() []string
	Canvas() types.Size
	CanUndo() bool
	CanRedo() bool

	// --- Document (write) ---
	AddElement(data element.Element) string
	UpdateElement(id string, patch element.Patch) bool
	SaveToHistory()

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
}

// Plugin is implemented by every plugin.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. Plugins subscribe
	// to events and register commands here.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
