// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/flyer/internal/config"
	"github.com/bethropolis/flyer/internal/theme"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleMode      tcell.Style // Mode badge on the left
	StyleMessage   tcell.Style // Temporary messages
	StyleCommand   tcell.Style // Prompt line (command or text input)
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMode:      tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorPurple).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleCommand:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: config.MessageTimeout,
	}
}

// ConfigFromTheme builds a Config from the theme's status bar styles.
func ConfigFromTheme(t *theme.Theme) Config {
	cfg := DefaultConfig()
	if t == nil {
		return cfg
	}
	cfg.StyleDefault = t.GetStyle(theme.StyleStatusBar)
	cfg.StyleMode = t.GetStyle(theme.StyleStatusBarMode)
	cfg.StyleMessage = t.GetStyle(theme.StyleStatusBarMessage)
	cfg.StyleCommand = t.GetStyle(theme.StyleStatusBarCommand)
	return cfg
}

// Info is the document summary shown when no message is active.
type Info struct {
	Elements   int
	Selected   int
	SelectedID string // single selection, may be empty
	FocusID    string
	CanUndo    bool
	CanRedo    bool
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	info   Info
	mode   string
	prompt string

	tempMessage     string
	tempMessageTime time.Time

	now func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(cfg Config) *StatusBar {
	return &StatusBar{
		config: cfg,
		mode:   "NORMAL",
		now:    time.Now,
	}
}

// SetConfig swaps the styles, e.g. after a theme change.
func (sb *StatusBar) SetConfig(cfg Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = cfg
}

// SetInfo updates the document summary.
func (sb *StatusBar) SetInfo(info Info) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.info = info
}

// SetEditorMode updates the displayed mode name.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
}

// SetPrompt shows an input line in place of the summary and messages.
// An empty prompt hides it.
func (sb *StatusBar) SetPrompt(prompt string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.prompt = prompt
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active temporary message, "" when none.
func (sb *StatusBar) Message() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.expireLocked()
	return sb.tempMessage
}

// Text returns the summary line shown when no message is active.
func (sb *StatusBar) Text() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.defaultTextLocked()
}

func (sb *StatusBar) expireLocked() {
	if sb.tempMessageTime.IsZero() {
		return
	}
	if sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
}

func (sb *StatusBar) defaultTextLocked() string {
	info := sb.info
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s", info.Elements, plural(info.Elements, "element", "elements"))
	switch {
	case info.Selected == 0:
		b.WriteString(" | no selection")
	case info.SelectedID != "":
		fmt.Fprintf(&b, " | selected %s", info.SelectedID)
	default:
		fmt.Fprintf(&b, " | %d selected", info.Selected)
	}
	if info.FocusID != "" {
		fmt.Fprintf(&b, " | focus %s", info.FocusID)
	}
	fmt.Fprintf(&b, " | undo:%s redo:%s", yesNo(info.CanUndo), yesNo(info.CanRedo))
	return b.String()
}

// Draw renders the status bar on the last screen line.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	sb.expireLocked()
	cfg := sb.config
	mode := sb.mode
	msg := sb.tempMessage
	prompt := sb.prompt
	text := sb.defaultTextLocked()
	sb.mu.Unlock()

	style := cfg.StyleDefault
	switch {
	case prompt != "":
		text = prompt
		style = cfg.StyleCommand
	case msg != "":
		text = msg
		style = cfg.StyleMessage
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, cfg.StyleDefault)
	}

	x := 0
	if mode != "" {
		x = drawText(screen, x, y, width, " "+mode+" ", cfg.StyleMode)
		x++
	}
	drawText(screen, x, y, width, text, style)
}

// drawText draws s from x using display widths and returns the next column.
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		if x+w > maxX {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
	return x
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
