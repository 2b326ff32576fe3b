// Package app wires the document store, the terminal UI and the plugins
// into the running editor.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/flyer/internal/commands"
	"github.com/bethropolis/flyer/internal/config"
	"github.com/bethropolis/flyer/internal/core"
	"github.com/bethropolis/flyer/internal/core/clipboard"
	"github.com/bethropolis/flyer/internal/event"
	"github.com/bethropolis/flyer/internal/input"
	"github.com/bethropolis/flyer/internal/logger"
	"github.com/bethropolis/flyer/internal/modehandler"
	"github.com/bethropolis/flyer/internal/plugin"
	"github.com/bethropolis/flyer/internal/statusbar"
	"github.com/bethropolis/flyer/internal/theme"
	"github.com/bethropolis/flyer/internal/tui"
	"github.com/bethropolis/flyer/internal/types"
)

// messageTick is how often an expiring status message is re-checked.
const messageTick = time.Second

// App encapsulates the main application logic and components.
type App struct {
	tuiManager    *tui.TUI
	store         *core.Store
	clipboard     *clipboard.Manager
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	themeManager  *theme.Manager
	modeHandler   *modehandler.ModeHandler
	editorAPI     *appEditorAPI

	// Channels
	quit          chan struct{}
	events        chan tcell.Event
	redrawRequest chan struct{}

	shownMessage string // status message at the last draw
}

// NewApp creates and initializes the application on the real terminal.
func NewApp(cfg *config.Config) (*App, error) {
	themeManager := theme.NewManager(themesDir(), cfg.Editor.Theme)
	tuiManager, err := tui.New(themeManager.Current().GetStyle(theme.StyleDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize TUI: %w", err)
	}
	return newApp(cfg, tuiManager, themeManager)
}

// NewAppWithScreen builds the application on a caller-supplied screen,
// such as a tcell.SimulationScreen.
func NewAppWithScreen(cfg *config.Config, screen tcell.Screen, themeManager *theme.Manager) (*App, error) {
	if themeManager == nil {
		themeManager = theme.NewManager("", cfg.Editor.Theme)
	}
	tuiManager, err := tui.NewWithScreen(screen, themeManager.Current().GetStyle(theme.StyleDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize TUI: %w", err)
	}
	return newApp(cfg, tuiManager, themeManager)
}

func newApp(cfg *config.Config, tuiManager *tui.TUI, themeManager *theme.Manager) (*App, error) {
	eventManager := event.NewManager()

	storeOpts := core.Options{
		Canvas:     types.Size{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height},
		MaxHistory: cfg.History.MaxDepth,
		Events:     eventManager,
	}
	var store *core.Store
	if cfg.Editor.Demo {
		store = core.NewDemoStore(storeOpts)
	} else {
		store = core.NewStore(storeOpts)
	}

	clipOpts := clipboard.Options{PasteOffset: cfg.Editor.PasteOffset}
	if cfg.Editor.SystemClipboard {
		clipOpts.System = clipboard.OSClipboard()
	}

	clip := clipboard.NewManager(store, clipOpts)
	statusBar := statusbar.New(statusbar.ConfigFromTheme(themeManager.Current()))
	quitChan := make(chan struct{})

	mh := modehandler.New(modehandler.Config{
		Store:          store,
		Clipboard:      clip,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
		Steps: modehandler.Steps{
			Nudge:  cfg.Editor.NudgeStep,
			Coarse: cfg.Editor.CoarseStep,
			Rotate: cfg.Editor.RotateStep,
		},
	})

	a := &App{
		tuiManager:    tuiManager,
		store:         store,
		clipboard:     clip,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		themeManager:  themeManager,
		modeHandler:   mh,
		quit:          quitChan,
		events:        make(chan tcell.Event),
		redrawRequest: make(chan struct{}, 1),
	}
	a.editorAPI = newEditorAPI(a)

	a.subscribeEvents()
	commands.RegisterAppCommands(a.editorAPI, a.store, a.editorAPI, a.modeHandler.RequestQuit)

	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("plugin registration: %v", err)
	}
	a.pluginManager.InitializePlugins(a.editorAPI)

	logger.Infof("app ready: %d elements on a %.1fx%.1f canvas", store.Len(), store.Canvas().Width, store.Canvas().Height)
	return a, nil
}

// themesDir returns the user's custom theme directory, next to the config
// file, or "" when the config directory is unknown.
func themesDir() string {
	path := config.DefaultConfigPath()
	if path == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(path), config.ThemesDirName)
}

// Run starts the main loop. Terminal events are read on a separate
// goroutine; every document operation and draw happens here, in order.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	go a.readEvents()

	a.eventManager.Dispatch(event.TypeAppReady, nil)
	a.statusBar.SetTemporaryMessage("flyer %s | Tab to focus, : for commands, q to quit", config.Version)
	a.drawEditor()

	ticker := time.NewTicker(messageTick)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			logger.Infof("quit signal received, exiting")
			a.eventManager.Dispatch(event.TypeAppQuit, nil)
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.drawEditor()
			}
		case <-a.redrawRequest:
			a.drawEditor()
		case <-ticker.C:
			if a.statusBar.Message() != a.shownMessage {
				a.drawEditor()
			}
		}
	}
}

// readEvents forwards terminal events to the main loop until the screen is
// finalized or the app quits.
func (a *App) readEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent applies one terminal event and reports whether a redraw is needed.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		logger.DebugTagf("app", "resize to %dx%d", w, h)
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	case *tcell.EventInterrupt:
		return true
	}
	return false
}

// requestRedraw asks the main loop for a redraw without blocking.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

// applyTheme pushes the active theme into the UI components.
func (a *App) applyTheme() {
	current := a.themeManager.Current()
	a.statusBar.SetConfig(statusbar.ConfigFromTheme(current))
	a.tuiManager.SetStyle(current.GetStyle(theme.StyleDefault))
	a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: current.Name})
	a.requestRedraw()
}
