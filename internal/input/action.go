// internal/input/action.go
package input

// Action represents an operation requested by a key press.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit
	ActionCancel  // Esc
	ActionConfirm // Enter

	// --- Focus / Selection ---
	ActionFocusNext
	ActionFocusPrev
	ActionToggleFocused // Space
	ActionSelectAll

	// --- Gestures ---
	ActionMoveMode
	ActionResizeMode
	ActionEditText

	// --- Arrows, used by gestures ---
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// --- Structure ---
	ActionRotateCW
	ActionRotateCCW
	ActionBringForward
	ActionSendBackward
	ActionDelete
	ActionUndo
	ActionRedo
	ActionCopy
	ActionPaste
	ActionDuplicate

	// --- Presets ---
	ActionAddHeadline
	ActionAddBodyText
	ActionAddShape // Rune carries '1'..'4'

	// --- Text / Command editing ---
	ActionEnterCommandMode
	ActionInsertRune // Requires Rune argument
	ActionInsertNewLine
	ActionDeleteCharBackward
)

var actionNames = map[Action]string{
	ActionUnknown:            "unknown",
	ActionQuit:               "quit",
	ActionCancel:             "cancel",
	ActionConfirm:            "confirm",
	ActionFocusNext:          "focus-next",
	ActionFocusPrev:          "focus-prev",
	ActionToggleFocused:      "toggle-focused",
	ActionSelectAll:          "select-all",
	ActionMoveMode:           "move",
	ActionResizeMode:         "resize",
	ActionEditText:           "edit-text",
	ActionUp:                 "up",
	ActionDown:               "down",
	ActionLeft:               "left",
	ActionRight:              "right",
	ActionRotateCW:           "rotate-cw",
	ActionRotateCCW:          "rotate-ccw",
	ActionBringForward:       "bring-forward",
	ActionSendBackward:       "send-backward",
	ActionDelete:             "delete",
	ActionUndo:               "undo",
	ActionRedo:               "redo",
	ActionCopy:               "copy",
	ActionPaste:              "paste",
	ActionDuplicate:          "duplicate",
	ActionAddHeadline:        "add-headline",
	ActionAddBodyText:        "add-body",
	ActionAddShape:           "add-shape",
	ActionEnterCommandMode:   "command",
	ActionInsertRune:         "insert-rune",
	ActionInsertNewLine:      "newline",
	ActionDeleteCharBackward: "backspace",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent is a decoded key press. Rune is set for rune-driven actions,
// and Coarse when Shift accompanied an arrow key.
type ActionEvent struct {
	Action Action
	Rune   rune
	Coarse bool
}
