package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y int) string {
	s.Show()
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func TestDefaultText(t *testing.T) {
	sb := New(DefaultConfig())
	if got := sb.Text(); got != "0 elements | no selection | undo:no redo:no" {
		t.Errorf("empty Text() = %q", got)
	}

	sb.SetInfo(Info{Elements: 1, Selected: 1, SelectedID: "text-1", FocusID: "text-1", CanUndo: true})
	if got := sb.Text(); got != "1 element | selected text-1 | focus text-1 | undo:yes redo:no" {
		t.Errorf("single Text() = %q", got)
	}

	sb.SetInfo(Info{Elements: 6, Selected: 3, CanRedo: true})
	if got := sb.Text(); got != "6 elements | 3 selected | undo:no redo:yes" {
		t.Errorf("multi Text() = %q", got)
	}
}

func TestTemporaryMessageExpires(t *testing.T) {
	sb := New(DefaultConfig())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sb.now = func() time.Time { return now }

	sb.SetTemporaryMessage("Deleted %s", "circle-1")
	if got := sb.Message(); got != "Deleted circle-1" {
		t.Fatalf("Message() = %q", got)
	}

	now = now.Add(sb.config.MessageTimeout + time.Second)
	if got := sb.Message(); got != "" {
		t.Errorf("Message() after timeout = %q, want empty", got)
	}
}

func TestDrawShowsModeAndSummary(t *testing.T) {
	screen := newSimScreen(t, 80, 3)
	sb := New(DefaultConfig())
	sb.SetEditorMode("MOVE")
	sb.SetInfo(Info{Elements: 2})
	sb.Draw(screen, 80, 3)

	row := rowText(screen, 2)
	if !strings.HasPrefix(row, " MOVE  2 elements") {
		t.Errorf("status row = %q", row)
	}
}

func TestDrawPromptStyleAndClipping(t *testing.T) {
	screen := newSimScreen(t, 10, 1)
	cfg := DefaultConfig()
	sb := New(cfg)
	sb.SetEditorMode("")
	sb.SetTemporaryMessage("hidden by the prompt")
	sb.SetPrompt(":alignh center")
	sb.Draw(screen, 10, 1)

	if row := rowText(screen, 0); row != ":alignh ce" {
		t.Errorf("clipped row = %q", row)
	}
	_, _, style, _ := screen.GetContent(0, 0)
	if style != cfg.StyleCommand {
		t.Errorf("prompt not drawn with command style")
	}

	sb.SetPrompt("")
	sb.Draw(screen, 10, 1)
	if row := rowText(screen, 0); row != "hidden by " {
		t.Errorf("message row after prompt cleared = %q", row)
	}
}
