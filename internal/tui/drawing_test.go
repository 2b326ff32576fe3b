package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/theme"
	"github.com/bethropolis/flyer/internal/types"
)

// A 42x22 screen leaves 42x21 for the canvas: an 80x40 canvas maps to
// 40x10 cells at (1,5), half a cell per unit across and a quarter down.
var testCanvas = types.Size{Width: 80, Height: 40}

func newTestTUI(t *testing.T, w, h int) *TUI {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	ui, err := NewWithScreen(s, tcell.StyleDefault)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(ui.Close)
	return ui
}

func bgAt(ui *TUI, x, y int) tcell.Color {
	_, _, style, _ := ui.GetScreen().GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func runeAt(ui *TUI, x, y int) rune {
	r, _, _, _ := ui.GetScreen().GetContent(x, y)
	return r
}

func shape(id string, x, y, w, h float64, fill string) element.Element {
	return element.Element{ID: id, X: x, Y: y, Width: w, Height: h,
		Props: element.ShapeProps{Shape: element.ShapeRectangle, FillColor: fill}}
}

func TestComputeLayout(t *testing.T) {
	l, ok := ComputeLayout(testCanvas, 42, 21)
	if !ok {
		t.Fatal("layout should fit")
	}
	want := Layout{OX: 1, OY: 5, W: 40, H: 10, SX: 0.5, SY: 0.25}
	if l != want {
		t.Errorf("layout = %+v, want %+v", l, want)
	}
	if _, ok := ComputeLayout(testCanvas, 5, 3); ok {
		t.Error("5x3 should be too small")
	}
}

func TestDrawCanvasPaintsInListOrder(t *testing.T) {
	ui := newTestTUI(t, 42, 22)
	red := tcell.NewRGBColor(255, 0, 0)
	blue := tcell.NewRGBColor(0, 0, 255)

	bg := element.Element{ID: "bg", Width: 80, Height: 40, Props: element.BackgroundProps{Color: "#ff0000"}}
	box := shape("box", 0, 0, 20, 20, "#0000ff")

	DrawCanvas(ui, View{Canvas: testCanvas, Elements: []element.Element{bg, box}}, &theme.PosterDark)
	if got := bgAt(ui, 2, 6); got != blue {
		t.Errorf("box cell bg = %v, want blue", got)
	}
	if got := bgAt(ui, 30, 12); got != red {
		t.Errorf("background cell bg = %v, want red", got)
	}

	// Same elements, reversed list: the background now covers the box.
	DrawCanvas(ui, View{Canvas: testCanvas, Elements: []element.Element{box, bg}}, &theme.PosterDark)
	if got := bgAt(ui, 2, 6); got != red {
		t.Errorf("box should be hidden under the background, bg = %v", got)
	}
}

func TestDrawCanvasClipsCaptionsByWidth(t *testing.T) {
	ui := newTestTUI(t, 42, 22)
	text := element.Element{ID: "t", Width: 10, Height: 8, Props: element.TextProps{Text: "Hello world\nbye"}}
	DrawCanvas(ui, View{Canvas: testCanvas, Elements: []element.Element{text}}, &theme.PosterDark)

	for i, want := range "Hello" {
		if got := runeAt(ui, 1+i, 5); got != want {
			t.Errorf("cell %d = %q, want %q", 1+i, got, want)
		}
	}
	if got := runeAt(ui, 6, 5); got != ' ' {
		t.Errorf("caption not clipped, cell 6 = %q", got)
	}
	if got := runeAt(ui, 1, 6); got != 'b' {
		t.Errorf("second line starts with %q, want 'b'", got)
	}
}

func TestDrawCanvasEditOverride(t *testing.T) {
	ui := newTestTUI(t, 42, 22)
	text := element.Element{ID: "t", Width: 20, Height: 8, Props: element.TextProps{Text: "old"}}
	DrawCanvas(ui, View{Canvas: testCanvas, Elements: []element.Element{text}, EditID: "t", EditText: "new"}, &theme.PosterDark)
	if got := runeAt(ui, 1, 5); got != 'n' {
		t.Errorf("edit buffer not drawn, first cell = %q", got)
	}
}

func TestDrawCanvasSelectionFrameAndFocus(t *testing.T) {
	ui := newTestTUI(t, 42, 22)
	a := shape("a", 20, 20, 20, 20, "#00ff00")
	b := shape("b", 60, 0, 10, 10, "#00ff00")
	view := View{
		Canvas:   testCanvas,
		Elements: []element.Element{a, b},
		Selected: func(id string) bool { return id == "a" },
		FocusID:  "b",
	}
	DrawCanvas(ui, view, &theme.PosterDark)

	corners := map[[2]int]rune{{11, 10}: '┌', {20, 10}: '┐', {11, 14}: '└', {20, 14}: '┘'}
	for pos, want := range corners {
		if got := runeAt(ui, pos[0], pos[1]); got != want {
			t.Errorf("cell %v = %q, want %q", pos, got, want)
		}
	}
	if got := bgAt(ui, 11, 10); got != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("frame should keep the element fill, bg = %v", got)
	}
	if got := runeAt(ui, 31, 5); got != '◆' {
		t.Errorf("focus marker = %q, want '◆'", got)
	}
}

func TestDrawCanvasTooSmall(t *testing.T) {
	ui := newTestTUI(t, 20, 3)
	DrawCanvas(ui, View{Canvas: testCanvas}, &theme.PosterDark)
	if got := runeAt(ui, 0, 0); got != 't' {
		t.Errorf("expected size warning, got %q", got)
	}
}
