// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/flyer/internal/config"
	"github.com/bethropolis/flyer/internal/core"
	"github.com/bethropolis/flyer/internal/core/clipboard"
	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/event"
	"github.com/bethropolis/flyer/internal/input"
	"github.com/bethropolis/flyer/internal/logger"
	"github.com/bethropolis/flyer/internal/plugin"
	"github.com/bethropolis/flyer/internal/statusbar"
)

const logTag = "modehandler"

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeMove
	ModeResize
	ModeText
	ModeCommand
)

func (m InputMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeMove:
		return "MOVE"
	case ModeResize:
		return "RESIZE"
	case ModeText:
		return "TEXT"
	case ModeCommand:
		return "COMMAND"
	}
	return "UNKNOWN"
}

// Steps are the keyboard increments for gestures.
type Steps struct {
	Nudge  float64 // arrow key
	Coarse float64 // Shift+arrow
	Rotate float64 // degrees per r/R
}

// ModeHandler turns key presses into document operations. Gestures change
// geometry live and checkpoint once when they are committed.
type ModeHandler struct {
	store          *core.Store
	clipboard      *clipboard.Manager
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}
	steps          Steps

	currentMode InputMode
	focus       string // element under the keyboard focus, "" = none

	// Gesture state, valid in ModeMove and ModeResize.
	gestureID    string
	gestureStart element.Element

	// Text edit state, valid in ModeText.
	textID     string
	textBuffer []rune

	cmdBuffer string
	commands  map[string]plugin.CommandFunc
	quitting  bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Store          *core.Store
	Clipboard      *clipboard.Manager
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // Write-only channel to signal quit
	Steps          Steps           // zero fields use the defaults
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Store == nil || cfg.Clipboard == nil || cfg.InputProcessor == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: missing required dependencies in Config")
	}
	steps := cfg.Steps
	if steps.Nudge <= 0 {
		steps.Nudge = config.DefaultNudgeStep
	}
	if steps.Coarse <= 0 {
		steps.Coarse = config.DefaultCoarseStep
	}
	if steps.Rotate <= 0 {
		steps.Rotate = config.DefaultRotateStep
	}
	return &ModeHandler{
		store:          cfg.Store,
		clipboard:      cfg.Clipboard,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		steps:          steps,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
}

// HandleKeyEvent applies one key press in the current mode. It returns
// true when the screen needs a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	switch mh.currentMode {
	case ModeNormal:
		return mh.handleActionNormal(mh.inputProcessor.ProcessEvent(ev))
	case ModeMove, ModeResize:
		return mh.handleActionGesture(mh.inputProcessor.ProcessEvent(ev))
	case ModeText:
		return mh.handleActionText(mh.inputProcessor.ProcessTextEvent(ev))
	case ModeCommand:
		return mh.handleActionCommand(mh.inputProcessor.ProcessTextEvent(ev))
	default:
		logger.WarnTagf(logTag, "unknown input mode: %v", mh.currentMode)
		return false
	}
}

func (mh *ModeHandler) setMode(mode InputMode) {
	if mh.currentMode == mode {
		return
	}
	logger.DebugTagf(logTag, "mode %s -> %s", mh.currentMode, mode)
	mh.currentMode = mode
	mh.statusBar.SetEditorMode(mode.String())
	mh.refreshPrompt()
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: mode.String()})
}

// refreshPrompt mirrors the text or command buffer onto the status bar.
func (mh *ModeHandler) refreshPrompt() {
	switch mh.currentMode {
	case ModeCommand:
		mh.statusBar.SetPrompt(":" + mh.cmdBuffer)
	case ModeText:
		mh.statusBar.SetPrompt("text: " + visibleText(string(mh.textBuffer)) + "_")
	default:
		mh.statusBar.SetPrompt("")
	}
}

func (mh *ModeHandler) quit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	logger.DebugTagf(logTag, "quit requested")
	close(mh.quitSignal)
}

// RegisterCommand adds a ":" command. Names must be unique.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if cmdFunc == nil {
		return fmt.Errorf("command '%s' has no function", name)
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.DebugTagf(logTag, "registered command ':%s'", name)
	return nil
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCommandBuffer returns the command line being typed, "" outside
// command mode.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return mh.cmdBuffer
	}
	return ""
}

// TextBuffer returns the in-progress text edit and its element id.
func (mh *ModeHandler) TextBuffer() (id, text string, ok bool) {
	if mh.currentMode != ModeText {
		return "", "", false
	}
	return mh.textID, string(mh.textBuffer), true
}

// Focus returns the focused element id, "" when it no longer exists.
func (mh *ModeHandler) Focus() string {
	if mh.focus != "" && mh.store.IndexOf(mh.focus) < 0 {
		mh.focus = ""
	}
	return mh.focus
}

// SetFocus moves the keyboard focus to id. Unknown ids clear it.
func (mh *ModeHandler) SetFocus(id string) {
	if mh.store.IndexOf(id) < 0 {
		id = ""
	}
	mh.focus = id
}

// RequestQuit signals the application to exit. Repeated calls are ignored.
func (mh *ModeHandler) RequestQuit() {
	mh.quit()
}
