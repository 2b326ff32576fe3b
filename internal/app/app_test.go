package app

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/flyer/internal/config"
	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/event"
)

func newTestApp(t *testing.T, demo bool) (*App, tcell.SimulationScreen) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Editor.Demo = demo
	screen := tcell.NewSimulationScreen("UTF-8")
	a, err := NewAppWithScreen(cfg, screen, nil)
	if err != nil {
		t.Fatalf("NewAppWithScreen: %v", err)
	}
	screen.SetSize(80, 30)
	return a, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func typeLine(a *App, line string) {
	for _, r := range line {
		a.handleEvent(key(r))
	}
	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
}

func statusLine(screen tcell.SimulationScreen) string {
	screen.Show()
	cells, w, h := screen.GetContents()
	var b strings.Builder
	for _, c := range cells[(h-1)*w:] {
		if len(c.Runes) > 0 {
			b.WriteRune(c.Runes[0])
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func TestNewAppStartsWithDemoDocument(t *testing.T) {
	a, _ := newTestApp(t, true)
	defer a.tuiManager.Close()
	if a.store.Len() == 0 {
		t.Fatal("demo document should not be empty")
	}
	if a.store.CanUndo() {
		t.Error("a fresh document has nothing to undo")
	}
}

func TestKeysEditDocumentAndStatus(t *testing.T) {
	a, screen := newTestApp(t, false)
	defer a.tuiManager.Close()

	if !a.handleEvent(key('1')) {
		t.Fatal("adding a shape should request a redraw")
	}
	if a.store.Len() != 1 {
		t.Fatalf("len = %d, want 1", a.store.Len())
	}
	if _, ok := a.store.Elements()[0].Props.(element.ShapeProps); !ok {
		t.Errorf("key 1 added %T", a.store.Elements()[0].Props)
	}

	a.statusBar.ResetTemporaryMessage()
	a.drawEditor()
	if got := statusLine(screen); !strings.HasPrefix(got, " NORMAL  1 element | selected ") {
		t.Errorf("status line = %q", got)
	}
	if got := a.statusBar.Text(); !strings.HasSuffix(got, "undo:yes redo:no") {
		t.Errorf("summary = %q", got)
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl))
	if a.store.Len() != 0 || !a.store.CanRedo() {
		t.Errorf("after undo: len=%d canRedo=%v", a.store.Len(), a.store.CanRedo())
	}
}

func TestThemeCommandRestylesUI(t *testing.T) {
	a, _ := newTestApp(t, false)
	defer a.tuiManager.Close()

	var changed string
	a.eventManager.Subscribe(event.TypeThemeChanged, func(e event.Event) bool {
		changed = e.Data.(event.ThemeChangedData).Name
		return false
	})

	a.handleEvent(key(':'))
	typeLine(a, "theme Poster Light")
	if got := a.themeManager.Current().Name; got != "Poster Light" {
		t.Fatalf("theme = %q", got)
	}
	if changed != "Poster Light" {
		t.Errorf("theme-changed event carried %q", changed)
	}
	select {
	case <-a.redrawRequest:
	default:
		t.Error("theme change should request a redraw")
	}
}

func TestPluginCommandRegistered(t *testing.T) {
	a, _ := newTestApp(t, true)
	defer a.tuiManager.Close()

	a.handleEvent(key(':'))
	typeLine(a, "stats")
	if msg := a.statusBar.Message(); !strings.HasPrefix(msg, "Elements: ") {
		t.Errorf("stats message = %q", msg)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	a, screen := newTestApp(t, true)

	done := make(chan error, 1)
	go func() { done <- a.Run() }()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}
