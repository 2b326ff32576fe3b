package modehandler

import (
	"math"

	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/input"
	"github.com/bethropolis/flyer/internal/logger"
)

// handleActionNormal handles actions when in ModeNormal.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	actionProcessed := true

	switch actionEvent.Action {
	// --- Mode Switching ---
	case input.ActionEnterCommandMode:
		mh.cmdBuffer = ""
		mh.setMode(ModeCommand)
	case input.ActionMoveMode:
		actionProcessed = mh.beginGesture(ModeMove)
	case input.ActionResizeMode:
		actionProcessed = mh.beginGesture(ModeResize)
	case input.ActionEditText:
		actionProcessed = mh.beginTextEdit()

	case input.ActionQuit:
		mh.quit()
		actionProcessed = false

	// --- Focus / Selection ---
	case input.ActionFocusNext:
		mh.moveFocus(1)
	case input.ActionFocusPrev:
		mh.moveFocus(-1)
	case input.ActionConfirm:
		if focus := mh.Focus(); focus != "" {
			mh.store.SelectElement(focus)
		} else {
			actionProcessed = false
		}
	case input.ActionToggleFocused:
		if focus := mh.Focus(); focus != "" {
			mh.store.ToggleElementSelection(focus)
		} else {
			actionProcessed = false
		}
	case input.ActionCancel:
		mh.store.SelectElement("")
	case input.ActionSelectAll:
		mh.store.SelectAll()

	// --- Structure ---
	case input.ActionRotateCW:
		actionProcessed = mh.rotate(mh.steps.Rotate)
	case input.ActionRotateCCW:
		actionProcessed = mh.rotate(-mh.steps.Rotate)
	case input.ActionBringForward:
		actionProcessed = mh.reorder(true)
	case input.ActionSendBackward:
		actionProcessed = mh.reorder(false)
	case input.ActionDelete:
		actionProcessed = mh.deleteSelected()

	case input.ActionUndo:
		if mh.store.Undo() {
			mh.statusBar.SetTemporaryMessage("Undo")
		} else {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		if mh.store.Redo() {
			mh.statusBar.SetTemporaryMessage("Redo")
		} else {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	// --- Copy/Paste ---
	case input.ActionCopy:
		n, err := mh.clipboard.Copy()
		switch {
		case err != nil:
			mh.statusBar.SetTemporaryMessage("Copy failed: %v", err)
			logger.WarnTagf(logTag, "copy: %v", err)
		case n == 0:
			mh.statusBar.SetTemporaryMessage("Nothing selected to copy")
		default:
			mh.statusBar.SetTemporaryMessage("Copied %d %s", n, plural(n))
		}
	case input.ActionPaste:
		ids, err := mh.clipboard.Paste()
		mh.reportPaste("Pasted", ids, err)
	case input.ActionDuplicate:
		ids, err := mh.clipboard.Duplicate()
		mh.reportPaste("Duplicated", ids, err)

	// --- Presets ---
	case input.ActionAddHeadline:
		mh.add(element.Headline())
	case input.ActionAddBodyText:
		mh.add(element.BodyText())
	case input.ActionAddShape:
		i := int(actionEvent.Rune - '1')
		if i < 0 || i >= len(element.ShapeKinds) {
			actionProcessed = false
			break
		}
		mh.add(element.NewShape(element.ShapeKinds[i]))

	case input.ActionUnknown:
		actionProcessed = false
	default:
		actionProcessed = false
	}

	return actionProcessed
}

// target returns the element single-selected, selecting the focus first
// when nothing is selected. Multi-selections have no target.
func (mh *ModeHandler) target() (element.Element, bool) {
	id := mh.store.SelectedElementID()
	if id == "" && len(mh.store.SelectedElementIDs()) == 0 {
		if focus := mh.Focus(); focus != "" {
			mh.store.SelectElement(focus)
			id = focus
		}
	}
	if id == "" {
		if len(mh.store.SelectedElementIDs()) > 1 {
			mh.statusBar.SetTemporaryMessage("Select a single element")
		} else {
			mh.statusBar.SetTemporaryMessage("No element selected")
		}
		return element.Element{}, false
	}
	return mh.store.Element(id)
}

func (mh *ModeHandler) moveFocus(delta int) {
	elements := mh.store.Elements()
	if len(elements) == 0 {
		mh.focus = ""
		return
	}
	i := mh.store.IndexOf(mh.Focus())
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = len(elements) - 1
	default:
		i = (i + delta + len(elements)) % len(elements)
	}
	mh.focus = elements[i].ID
}

func (mh *ModeHandler) add(data element.Element) {
	id := mh.store.AddElement(data)
	mh.focus = id
	mh.statusBar.SetTemporaryMessage("Added %s", data.Type())
}

func (mh *ModeHandler) rotate(delta float64) bool {
	e, ok := mh.target()
	if !ok {
		return true
	}
	mh.store.RotateElement(e.ID, normalizeDegrees(e.Rotation+delta))
	mh.store.SaveToHistory()
	return true
}

func (mh *ModeHandler) reorder(forward bool) bool {
	e, ok := mh.target()
	if !ok {
		return true
	}
	var moved bool
	if forward {
		moved = mh.store.BringForward(e.ID)
	} else {
		moved = mh.store.SendBackward(e.ID)
	}
	if !moved {
		if forward {
			mh.statusBar.SetTemporaryMessage("Already at the front")
		} else {
			mh.statusBar.SetTemporaryMessage("Already at the back")
		}
	}
	return true
}

// deleteSelected deletes every selected element, or the focus when
// nothing is selected.
func (mh *ModeHandler) deleteSelected() bool {
	ids := mh.store.SelectedElementIDs()
	if len(ids) == 0 {
		if focus := mh.Focus(); focus != "" {
			ids = []string{focus}
		}
	}
	if len(ids) == 0 {
		mh.statusBar.SetTemporaryMessage("Nothing to delete")
		return true
	}
	deleted := 0
	for _, id := range ids {
		if mh.store.DeleteElement(id) {
			deleted++
		}
	}
	mh.statusBar.SetTemporaryMessage("Deleted %d %s", deleted, plural(deleted))
	return true
}

func (mh *ModeHandler) reportPaste(verb string, ids []string, err error) {
	switch {
	case err != nil:
		mh.statusBar.SetTemporaryMessage("%s failed: %v", verb, err)
		logger.WarnTagf(logTag, "%s: %v", verb, err)
	case len(ids) == 0:
		mh.statusBar.SetTemporaryMessage("Clipboard empty")
	default:
		mh.focus = ids[len(ids)-1]
		mh.statusBar.SetTemporaryMessage("%s %d %s", verb, len(ids), plural(len(ids)))
	}
}

// normalizeDegrees maps d into [0, 360).
func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func plural(n int) string {
	if n == 1 {
		return "element"
	}
	return "elements"
}
