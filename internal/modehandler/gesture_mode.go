package modehandler

import (
	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/input"
)

// beginGesture starts a move or resize on the target element, remembering
// its geometry so the gesture can be cancelled.
func (mh *ModeHandler) beginGesture(mode InputMode) bool {
	e, ok := mh.target()
	if !ok {
		return true
	}
	mh.gestureID = e.ID
	mh.gestureStart = e
	mh.focus = e.ID
	mh.setMode(mode)
	if mode == ModeMove {
		mh.statusBar.SetTemporaryMessage("Move %s: arrows, Enter to place, Esc to cancel", e.ID)
	} else {
		mh.statusBar.SetTemporaryMessage("Resize %s: arrows, Enter to apply, Esc to cancel", e.ID)
	}
	return true
}

// handleActionGesture handles actions when in ModeMove or ModeResize.
// Arrow steps mutate the element without checkpoints.
func (mh *ModeHandler) handleActionGesture(actionEvent input.ActionEvent) bool {
	step := mh.steps.Nudge
	if actionEvent.Coarse {
		step = mh.steps.Coarse
	}

	switch actionEvent.Action {
	case input.ActionUp:
		mh.nudge(0, -step)
	case input.ActionDown:
		mh.nudge(0, step)
	case input.ActionLeft:
		mh.nudge(-step, 0)
	case input.ActionRight:
		mh.nudge(step, 0)
	case input.ActionConfirm:
		mh.commitGesture()
	case input.ActionCancel:
		mh.cancelGesture()
	case input.ActionQuit:
		mh.cancelGesture()
		mh.quit()
		return false
	default:
		return false
	}
	return true
}

func (mh *ModeHandler) nudge(dx, dy float64) {
	e, ok := mh.store.Element(mh.gestureID)
	if !ok {
		mh.endGesture()
		return
	}
	if mh.currentMode == ModeMove {
		mh.store.MoveElement(e.ID, e.X+dx, e.Y+dy)
		return
	}
	minSize := element.MinSize(e.Type())
	mh.store.ResizeElement(e.ID, max(minSize.Width, e.Width+dx), max(minSize.Height, e.Height+dy))
}

// commitGesture takes the single checkpoint for the gesture. A gesture
// that ends where it started leaves history alone.
func (mh *ModeHandler) commitGesture() {
	if e, ok := mh.store.Element(mh.gestureID); ok && e.Bounds() != mh.gestureStart.Bounds() {
		mh.store.SaveToHistory()
		if mh.currentMode == ModeMove {
			mh.statusBar.SetTemporaryMessage("Moved %s", e.ID)
		} else {
			mh.statusBar.SetTemporaryMessage("Resized %s", e.ID)
		}
	}
	mh.endGesture()
}

// cancelGesture restores the starting geometry without a checkpoint.
func (mh *ModeHandler) cancelGesture() {
	start := mh.gestureStart
	if _, ok := mh.store.Element(start.ID); ok {
		if mh.currentMode == ModeMove {
			mh.store.MoveElement(start.ID, start.X, start.Y)
		} else {
			mh.store.ResizeElement(start.ID, start.Width, start.Height)
		}
	}
	mh.statusBar.SetTemporaryMessage("Cancelled")
	mh.endGesture()
}

func (mh *ModeHandler) endGesture() {
	mh.gestureID = ""
	mh.gestureStart = element.Element{}
	mh.setMode(ModeNormal)
}
