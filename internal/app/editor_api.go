package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/flyer/internal/commands"
	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/event"
	"github.com/bethropolis/flyer/internal/logger"
	"github.com/bethropolis/flyer/internal/plugin"
	"github.com/bethropolis/flyer/internal/theme"
	"github.com/bethropolis/flyer/internal/types"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

var _ commands.ThemeAPI = (*appEditorAPI)(nil)

// appEditorAPI is the surface commands and plugins use. Every call runs on
// the main loop goroutine, so it talks to the store directly.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Document (read) ---

func (api *appEditorAPI) Elements() []element.Element         { return api.app.store.Elements() }
func (api *appEditorAPI) SelectedElements() []element.Element { return api.app.store.SelectedElements() }
func (api *appEditorAPI) SelectedElementIDs() []string        { return api.app.store.SelectedElementIDs() }
func (api *appEditorAPI) Canvas() types.Size                  { return api.app.store.Canvas() }
func (api *appEditorAPI) CanUndo() bool                       { return api.app.store.CanUndo() }
func (api *appEditorAPI) CanRedo() bool                       { return api.app.store.CanRedo() }

// --- Document (write) ---

func (api *appEditorAPI) AddElement(data element.Element) string {
	id := api.app.store.AddElement(data)
	api.app.modeHandler.SetFocus(id)
	api.app.requestRedraw()
	return id
}

func (api *appEditorAPI) UpdateElement(id string, patch element.Patch) bool {
	ok := api.app.store.UpdateElement(id, patch)
	if ok {
		api.app.requestRedraw()
	}
	return ok
}

func (api *appEditorAPI) SaveToHistory() {
	api.app.store.SaveToHistory()
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if api.app.modeHandler == nil {
		logger.Errorf("cannot register command '%s': mode handler not ready", name)
		return fmt.Errorf("internal error: API cannot access command registration")
	}
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
	api.app.requestRedraw()
}

// --- Theme Access ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.themeManager.Current().GetStyle(styleName)
}

// SetTheme activates a theme by name and repaints the UI with it.
func (api *appEditorAPI) SetTheme(name string) error {
	if err := api.app.themeManager.SetTheme(name); err != nil {
		return err
	}
	api.app.applyTheme()
	logger.Debugf("theme changed to '%s'", name)
	return nil
}

func (api *appEditorAPI) GetTheme() *theme.Theme { return api.app.themeManager.Current() }
func (api *appEditorAPI) ListThemes() []string   { return api.app.themeManager.ListThemes() }
