package app

import (
	"github.com/bethropolis/flyer/internal/event"
	"github.com/bethropolis/flyer/internal/logger"
)

func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeElementsChanged, a.handleElementsChanged)
	a.eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChanged)
	a.eventManager.Subscribe(event.TypeHistoryChanged, a.handleHistoryChanged)
	a.eventManager.Subscribe(event.TypeModeChanged, a.handleModeChanged)
}

// handleElementsChanged refreshes the summary after any document mutation.
func (a *App) handleElementsChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ElementsChangedData); ok {
		logger.DebugTagf("app", "elements changed: %s %v", data.Op, data.IDs)
	}
	a.updateStatusBarContent()
	a.requestRedraw()
	return false
}

func (a *App) handleSelectionChanged(e event.Event) bool {
	a.updateStatusBarContent()
	a.requestRedraw()
	return false
}

func (a *App) handleHistoryChanged(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

func (a *App) handleModeChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ModeChangedData); ok {
		logger.DebugTagf("app", "mode changed to %s", data.Mode)
	}
	return false
}
