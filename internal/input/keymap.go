// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action
type RuneKeymap map[rune]Action         // Normal-mode rune bindings
type ModKeymap map[tcell.ModMask]Keymap // Keys combined with modifiers

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
	textKeymap Keymap // Keys while typing into a text or command buffer
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
		textKeymap: make(Keymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionUp
	p.keymap[tcell.KeyDown] = ActionDown
	p.keymap[tcell.KeyLeft] = ActionLeft
	p.keymap[tcell.KeyRight] = ActionRight
	p.keymap[tcell.KeyTab] = ActionFocusNext
	p.keymap[tcell.KeyBacktab] = ActionFocusPrev
	p.keymap[tcell.KeyEnter] = ActionConfirm
	p.keymap[tcell.KeyEscape] = ActionCancel
	p.keymap[tcell.KeyDelete] = ActionDelete
	p.keymap[tcell.KeyCtrlC] = ActionQuit
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll

	// --- Modifier Keys ---
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	ctrlMap[tcell.KeyCtrlC] = ActionQuit
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	// --- Rune Mappings ---
	p.runeKeymap[' '] = ActionToggleFocused
	p.runeKeymap['g'] = ActionMoveMode
	p.runeKeymap['s'] = ActionResizeMode
	p.runeKeymap['e'] = ActionEditText
	p.runeKeymap['r'] = ActionRotateCW
	p.runeKeymap['R'] = ActionRotateCCW
	p.runeKeymap[']'] = ActionBringForward
	p.runeKeymap['['] = ActionSendBackward
	p.runeKeymap['d'] = ActionDelete
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['U'] = ActionRedo
	p.runeKeymap['y'] = ActionCopy
	p.runeKeymap['p'] = ActionPaste
	p.runeKeymap['D'] = ActionDuplicate
	p.runeKeymap['t'] = ActionAddHeadline
	p.runeKeymap['T'] = ActionAddBodyText
	for _, r := range "1234" {
		p.runeKeymap[r] = ActionAddShape
	}
	p.runeKeymap[':'] = ActionEnterCommandMode
	p.runeKeymap['q'] = ActionQuit

	// --- Text entry ---
	p.textKeymap[tcell.KeyEnter] = ActionConfirm
	p.textKeymap[tcell.KeyEscape] = ActionCancel
	p.textKeymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.textKeymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.textKeymap[tcell.KeyCtrlN] = ActionInsertNewLine
	p.textKeymap[tcell.KeyCtrlC] = ActionQuit
}

// ProcessEvent decodes a key press using the normal-mode bindings. Arrow
// keys pressed with Shift are reported as Coarse.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// 1. Modifier + Key combinations
	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	// tcell.KeyCtrlX already implies Ctrl
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Simple keys
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action, Coarse: mod == tcell.ModShift && isArrow(action)}
		}
	}

	// 3. Runes
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if action, ok := p.runeKeymap[runeVal]; ok {
			return ActionEvent{Action: action, Rune: runeVal}
		}
	}

	return ActionEvent{Action: ActionUnknown, Rune: runeVal}
}

// ProcessTextEvent decodes a key press while a text or command buffer
// has the keyboard. Printable runes become ActionInsertRune.
func (p *InputProcessor) ProcessTextEvent(ev *tcell.EventKey) ActionEvent {
	if action, ok := p.textKeymap[ev.Key()]; ok {
		return ActionEvent{Action: action}
	}
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}
	return ActionEvent{Action: ActionUnknown}
}

func isArrow(a Action) bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
