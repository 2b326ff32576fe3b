package modehandler

import (
	"strings"

	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/input"
	"github.com/bethropolis/flyer/internal/logger"
)

// beginTextEdit copies the target's text into a private buffer. The
// element is untouched until the edit is committed.
func (mh *ModeHandler) beginTextEdit() bool {
	e, ok := mh.target()
	if !ok {
		return true
	}
	props, ok := e.Props.(element.TextProps)
	if !ok {
		mh.statusBar.SetTemporaryMessage("%s is not a text element", e.ID)
		return true
	}
	mh.textID = e.ID
	mh.textBuffer = []rune(props.Text)
	mh.focus = e.ID
	mh.setMode(ModeText)
	return true
}

// handleActionText handles actions when in ModeText.
func (mh *ModeHandler) handleActionText(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.textBuffer = append(mh.textBuffer, actionEvent.Rune)
	case input.ActionInsertNewLine:
		mh.textBuffer = append(mh.textBuffer, '\n')
	case input.ActionDeleteCharBackward:
		if len(mh.textBuffer) > 0 {
			mh.textBuffer = mh.textBuffer[:len(mh.textBuffer)-1]
		}
	case input.ActionConfirm:
		mh.commitTextEdit()
		return true
	case input.ActionCancel:
		mh.statusBar.SetTemporaryMessage("Edit discarded")
		mh.endTextEdit()
		return true
	case input.ActionQuit:
		mh.endTextEdit()
		mh.quit()
		return false
	default:
		return false
	}
	mh.refreshPrompt()
	return true
}

// commitTextEdit writes the buffer into the element and checkpoints once.
func (mh *ModeHandler) commitTextEdit() {
	defer mh.endTextEdit()

	e, ok := mh.store.Element(mh.textID)
	if !ok {
		logger.WarnTagf(logTag, "text edit target %s vanished", mh.textID)
		return
	}
	props, ok := e.Props.(element.TextProps)
	if !ok {
		return
	}
	text := string(mh.textBuffer)
	if text == props.Text {
		return
	}
	props.Text = text
	if mh.store.UpdateElement(e.ID, element.Patch{Props: props}) {
		mh.store.SaveToHistory()
		mh.statusBar.SetTemporaryMessage("Updated %s", e.ID)
	}
}

func (mh *ModeHandler) endTextEdit() {
	mh.textID = ""
	mh.textBuffer = nil
	mh.setMode(ModeNormal)
}

// visibleText flattens line breaks for single-line display.
func visibleText(s string) string {
	return strings.ReplaceAll(s, "\n", "⏎")
}
