package app

import (
	"github.com/bethropolis/flyer/internal/statusbar"
	"github.com/bethropolis/flyer/internal/tui"
)

// drawEditor clears the screen and redraws the canvas and the status bar.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	a.tuiManager.Clear()
	tui.DrawCanvas(a.tuiManager, a.currentView(), a.themeManager.Current())

	width, height := a.tuiManager.Size()
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height)
	a.tuiManager.Show()
	a.shownMessage = a.statusBar.Message()
}

// currentView snapshots what the canvas shows, including a text edit that
// has not been committed yet.
func (a *App) currentView() tui.View {
	view := tui.View{
		Canvas:   a.store.Canvas(),
		Elements: a.store.Elements(),
		Selected: a.store.IsSelected,
		FocusID:  a.modeHandler.Focus(),
	}
	if id, text, ok := a.modeHandler.TextBuffer(); ok {
		view.EditID = id
		view.EditText = text
	}
	return view
}

// updateStatusBarContent pushes the document summary to the status bar.
func (a *App) updateStatusBarContent() {
	selected := a.store.SelectedElementIDs()
	a.statusBar.SetInfo(statusbar.Info{
		Elements:   a.store.Len(),
		Selected:   len(selected),
		SelectedID: a.store.SelectedElementID(),
		FocusID:    a.modeHandler.Focus(),
		CanUndo:    a.store.CanUndo(),
		CanRedo:    a.store.CanRedo(),
	})
}
