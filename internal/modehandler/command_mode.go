package modehandler

import (
	"strings"

	"github.com/bethropolis/flyer/internal/input"
	"github.com/bethropolis/flyer/internal/logger"
)

// handleActionCommand handles actions when in ModeCommand.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.cmdBuffer += string(actionEvent.Rune)

	case input.ActionDeleteCharBackward:
		if mh.cmdBuffer == "" {
			logger.DebugTagf(logTag, "exiting command mode via backspace")
			mh.setMode(ModeNormal)
			return true
		}
		runes := []rune(mh.cmdBuffer)
		mh.cmdBuffer = string(runes[:len(runes)-1])

	case input.ActionConfirm:
		cmdStr := mh.cmdBuffer
		mh.cmdBuffer = ""
		mh.setMode(ModeNormal)
		mh.ExecuteCommand(cmdStr)
		return true

	case input.ActionCancel:
		mh.cmdBuffer = ""
		mh.setMode(ModeNormal)
		logger.DebugTagf(logTag, "command cancelled")
		return true

	case input.ActionQuit:
		mh.quit()
		return false

	default:
		return false
	}
	mh.refreshPrompt()
	return true
}

// ExecuteCommand parses and runs a command line such as "alignh center".
// Errors are reported on the status bar.
func (mh *ModeHandler) ExecuteCommand(cmdStr string) {
	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		return
	}
	cmdName := parts[0]
	args := parts[1:]

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	logger.DebugTagf(logTag, "executing ':%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
}
