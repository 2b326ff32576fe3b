package core

import (
	"fmt"
	"reflect"
	"slices"
	"testing"

	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/event"
	"github.com/bethropolis/flyer/internal/types"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("el-%d", n)
	}
}

func newTestStore(initial ...element.Element) *Store {
	return NewStore(Options{
		Canvas:   types.Size{Width: 573, Height: 668.5},
		Elements: initial,
		NewID:    seqIDs(),
	})
}

func box(id string, x, y, w, h float64) element.Element {
	return element.Element{ID: id, X: x, Y: y, Width: w, Height: h, Props: element.ShapeProps{Shape: element.ShapeRectangle}}
}

func order(s *Store) []string {
	var ids []string
	for _, e := range s.Elements() {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestAddElementUniqueIDsAndSoleSelection(t *testing.T) {
	s := NewStore(Options{}) // random uuids
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := s.AddElement(element.Headline())
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		if s.SelectedElementID() != id || !slices.Equal(s.SelectedElementIDs(), []string{id}) {
			t.Fatalf("new element %q is not the sole selection: %q %v", id, s.SelectedElementID(), s.SelectedElementIDs())
		}
	}
	if !s.CanUndo() {
		t.Error("add should checkpoint")
	}
}

func TestAddElementIgnoresCallerID(t *testing.T) {
	s := newTestStore(box("a", 0, 0, 10, 10))
	id := s.AddElement(box("a", 1, 1, 10, 10))
	if id == "a" {
		t.Fatal("AddElement reused the caller's id")
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
}

func TestNewIDCollisionRetried(t *testing.T) {
	ids := []string{"a", "a", "b"}
	s := NewStore(Options{
		Elements: []element.Element{box("a", 0, 0, 1, 1)},
		NewID:    func() string { id := ids[0]; ids = ids[1:]; return id },
	})
	if got := s.AddElement(element.BodyText()); got != "b" {
		t.Fatalf("id = %q, want b after skipping collisions", got)
	}
}

func TestDeleteThenUpdateNoResurrection(t *testing.T) {
	s := newTestStore(box("a", 0, 0, 10, 10), box("b", 5, 5, 10, 10))
	s.SelectMultipleElements([]string{"a", "b"})
	s.DeleteElement("a")
	before := s.Elements()

	if s.UpdateElement("a", element.Patch{X: element.Float(99)}) {
		t.Error("update of deleted id reported a change")
	}
	if !reflect.DeepEqual(before, s.Elements()) {
		t.Error("update of deleted id changed the element list")
	}
	if s.IsSelected("a") || s.SelectedElementID() != "b" {
		t.Errorf("selection after delete: single=%q multi=%v", s.SelectedElementID(), s.SelectedElementIDs())
	}
}

func TestDeleteUnknownIsNoOp(t *testing.T) {
	s := newTestStore(box("a", 0, 0, 10, 10))
	if s.DeleteElement("nope") || s.CanUndo() {
		t.Fatal("deleting an unknown id should not change state or history")
	}
}

func TestUndoRestoresExactSnapshotAndRedoRestoresAfter(t *testing.T) {
	ops := map[string]func(s *Store){
		"add":    func(s *Store) { s.AddElement(element.NewShape(element.ShapeStar)) },
		"delete": func(s *Store) { s.DeleteElement("b") },
		"clear":  func(s *Store) { s.ClearCanvas() },
		"forward": func(s *Store) {
			s.BringForward("a")
		},
		"align": func(s *Store) {
			s.SelectAll()
			s.AlignElementsHorizontally(types.AlignRight)
		},
		"background": func(s *Store) { s.SetBackground(element.BackgroundProps{Color: "#000"}) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			s := newTestStore(box("a", 0, 0, 10, 10), box("b", 5, 5, 20, 10))
			before := s.Elements()
			op(s)
			after := s.Elements()

			if !s.Undo() {
				t.Fatal("undo reported nothing to undo")
			}
			if !reflect.DeepEqual(s.Elements(), before) {
				t.Fatalf("undo: got %v, want %v", order(s), before)
			}
			if !s.CanRedo() {
				t.Fatal("canRedo should be true after undo")
			}
			if !s.Redo() {
				t.Fatal("redo reported nothing to redo")
			}
			if !reflect.DeepEqual(s.Elements(), after) {
				t.Fatalf("redo did not restore the post-operation state")
			}
		})
	}
}

func TestUndoRedoBoundariesAreNoOps(t *testing.T) {
	s := newTestStore(box("a", 0, 0, 10, 10))
	before := s.Elements()
	hist := s.History()

	if s.Undo() {
		t.Error("undo on empty past reported true")
	}
	if s.Redo() {
		t.Error("redo on empty future reported true")
	}
	if !reflect.DeepEqual(before, s.Elements()) || !reflect.DeepEqual(hist, s.History()) {
		t.Error("boundary undo/redo changed state")
	}
}

func TestCheckpointAfterUndoClearsFuture(t *testing.T) {
	s := newTestStore()
	s.AddElement(element.Headline())
	s.Undo()
	s.SaveToHistory()
	if s.CanRedo() || len(s.History().Future) != 0 {
		t.Fatal("saveToHistory after undo must clear future")
	}
}

func TestForwardBackwardInverse(t *testing.T) {
	s := newTestStore(box("a", 0, 0, 1, 1), box("b", 0, 0, 1, 1), box("c", 0, 0, 1, 1))
	start := order(s)
	s.BringForward("b")
	if got := order(s); !slices.Equal(got, []string{"a", "c", "b"}) {
		t.Fatalf("after forward: %v", got)
	}
	s.SendBackward("b")
	if got := order(s); !slices.Equal(got, start) {
		t.Fatalf("forward then backward = %v, want %v", got, start)
	}
}

func TestReorderBoundariesAreNoOps(t *testing.T) {
	s := newTestStore(box("a", 0, 0, 1, 1), box("b", 0, 0, 1, 1))
	if s.BringForward("b") {
		t.Error("bringForward at top reported a change")
	}
	if s.SendBackward("a") {
		t.Error("sendBackward at bottom reported a change")
	}
	if !slices.Equal(order(s), []string{"a", "b"}) || s.CanUndo() {
		t.Error("boundary reorder changed order or history")
	}
}

func TestReorderLeavesZIndexAlone(t *testing.T) {
	a := box("a", 0, 0, 1, 1)
	a.ZIndex = 7
	s := newTestStore(a, box("b", 0, 0, 1, 1))
	s.BringForward("a")
	e, _ := s.Element("a")
	if e.ZIndex != 7 || s.IndexOf("a") != 1 {
		t.Fatalf("zIndex=%d index=%d", e.ZIndex, s.IndexOf("a"))
	}
}

func TestAlignHorizontalCenterTwoWidths(t *testing.T) {
	s := newTestStore(box("a", 3, 40, 100, 10), box("b", 9, 80, 250, 10))
	s.SelectMultipleElements([]string{"a", "b"})
	if !s.AlignElementsHorizontally(types.AlignHCenter) {
		t.Fatal("align reported no-op")
	}
	a, _ := s.Element("a")
	b, _ := s.Element("b")
	if a.X != (573-100)/2.0 || b.X != (573-250)/2.0 {
		t.Fatalf("x = %v, %v", a.X, b.X)
	}
	if a.Y != 40 || b.Y != 80 {
		t.Fatal("horizontal align changed y")
	}
}

func TestAlignVerticalTopSingleCheckpoint(t *testing.T) {
	s := newTestStore(box("A", 0, 0, 10, 10), box("B", 5, 5, 10, 10))
	s.SelectMultipleElements([]string{"A", "B"})
	pastBefore := len(s.History().Past)

	s.AlignElementsVertically(types.AlignTop)

	for _, e := range s.Elements() {
		if e.Y != 0 {
			t.Errorf("%s.y = %v, want 0", e.ID, e.Y)
		}
	}
	a, _ := s.Element("A")
	b, _ := s.Element("B")
	if a.X != 0 || b.X != 5 {
		t.Error("vertical align changed x")
	}
	if got := len(s.History().Past) - pastBefore; got != 1 {
		t.Fatalf("align produced %d checkpoints, want 1", got)
	}
}

func TestAlignEdges(t *testing.T) {
	s := newTestStore(box("a", 3, 3, 100, 50), box("b", 9, 9, 20, 60))
	s.SelectAll()
	s.AlignElementsHorizontally(types.AlignRight)
	s.AlignElementsVertically(types.AlignBottom)
	for _, e := range s.Elements() {
		if e.X+e.Width != 573 || e.Y+e.Height != 668.5 {
			t.Errorf("%s not at bottom-right: %+v", e.ID, e.Bounds())
		}
	}
}

func TestAlignNeedsTwoSelected(t *testing.T) {
	s := newTestStore(box("a", 3, 3, 10, 10))
	s.SelectElement("a")
	if s.AlignElementsHorizontally(types.AlignLeft) || s.CanUndo() {
		t.Fatal("align with one element selected should be a no-op")
	}
	e, _ := s.Element("a")
	if e.X != 3 {
		t.Fatal("single-selection align moved the element")
	}
}

func TestAddUndoRedoKeepsID(t *testing.T) {
	s := newTestStore(box("a", 0, 0, 1, 1))
	pre := s.Elements()
	id := s.AddElement(element.BodyText())

	s.Undo()
	if !reflect.DeepEqual(s.Elements(), pre) || !s.CanRedo() {
		t.Fatal("undo did not restore the pre-add state")
	}
	if s.IsSelected(id) {
		t.Error("selection still holds an id that no longer exists")
	}
	s.Redo()
	if _, ok := s.Element(id); !ok {
		t.Fatalf("redo did not restore element %q", id)
	}
}

func TestGeometryOpsDoNotCheckpoint(t *testing.T) {
	s := newTestStore(box("a", 0, 0, 10, 10))
	s.MoveElement("a", 4, 5)
	s.ResizeElement("a", 40, 50)
	s.RotateElement("a", 90)
	s.UpdateElement("a", element.Patch{ZIndex: element.Int(3)})
	if s.CanUndo() {
		t.Fatal("granular edits must not checkpoint")
	}
	e, _ := s.Element("a")
	if e.X != 4 || e.Y != 5 || e.Width != 40 || e.Height != 50 || e.Rotation != 90 || e.ZIndex != 3 {
		t.Fatalf("geometry not applied: %+v", e)
	}
	// history present still mirrors the last checkpoint
	if s.History().Present[0].X != 0 {
		t.Error("present should not track live edits")
	}
}

func TestUpdatePropsReplacedWholesale(t *testing.T) {
	s := newTestStore()
	id := s.AddElement(element.Headline())
	s.UpdateElement(id, element.Patch{Props: element.TextProps{Text: "Hi"}})
	e, _ := s.Element(id)
	if tp := e.Props.(element.TextProps); tp.Text != "Hi" || tp.FontWeight != "" {
		t.Fatalf("props = %+v", tp)
	}
	if s.UpdateElement(id, element.Patch{Props: element.ImageProps{URL: "x"}}) {
		t.Error("props of another type should be rejected")
	}
}

func TestSelectionOps(t *testing.T) {
	s := newTestStore(box("a", 0, 0, 1, 1), box("b", 0, 0, 1, 1))

	s.SelectElement("ghost")
	if s.SelectedElementID() != "" {
		t.Error("unknown id was selected")
	}
	s.SelectMultipleElements([]string{"a", "ghost"})
	if s.SelectedElementID() != "a" {
		t.Errorf("one known id should collapse to single, got %q", s.SelectedElementID())
	}
	s.ToggleElementSelection("b")
	if s.SelectedElementID() != "" || len(s.SelectedElementIDs()) != 2 {
		t.Error("toggle into multi-selection failed")
	}
	s.ToggleElementSelection("a")
	if s.SelectedElementID() != "b" {
		t.Errorf("toggle back to one should give single b, got %q", s.SelectedElementID())
	}
	s.SelectElement("")
	if s.SelectedElementID() != "" || len(s.SelectedElementIDs()) != 0 {
		t.Error("select(null) should clear")
	}
}

func TestClearCanvas(t *testing.T) {
	s := newTestStore(box("a", 0, 0, 1, 1))
	s.SelectElement("a")
	s.ClearCanvas()
	if s.Len() != 0 || s.SelectedElementID() != "" || !s.CanUndo() {
		t.Fatal("clear should empty elements and selection and checkpoint")
	}
}

func TestSetBackgroundReplacesExisting(t *testing.T) {
	s := NewDemoStore(Options{NewID: seqIDs()})
	id := s.SetBackground(element.BackgroundProps{Color: "#112233"})
	els := s.Elements()
	if els[0].ID != id || els[0].ZIndex != -1 || els[0].Width != s.Canvas().Width {
		t.Fatalf("background not at bottom with full canvas: %+v", els[0])
	}
	n := 0
	for _, e := range els {
		if e.Type() == element.TypeBackground {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("%d backgrounds, want 1", n)
	}
	if len(s.History().Past) != 1 {
		t.Error("set background should take one checkpoint")
	}
}

func TestDemoStoreStartsWithCleanHistory(t *testing.T) {
	s := NewDemoStore(Options{})
	if s.Len() != 6 || s.CanUndo() || s.CanRedo() {
		t.Fatalf("demo store: len=%d undo=%v redo=%v", s.Len(), s.CanUndo(), s.CanRedo())
	}
	if got := s.Canvas(); got.Width != 573 || got.Height != 668.5 {
		t.Fatalf("canvas = %+v", got)
	}
}

func TestElementsReturnsCopy(t *testing.T) {
	s := newTestStore(box("a", 0, 0, 1, 1))
	els := s.Elements()
	els[0].X = 42
	if e, _ := s.Element("a"); e.X != 0 {
		t.Fatal("Elements leaked internal state")
	}
}

func TestEventsDispatched(t *testing.T) {
	mgr := event.NewManager()
	var ops []string
	var history []event.HistoryChangedData
	mgr.Subscribe(event.TypeElementsChanged, func(e event.Event) bool {
		ops = append(ops, e.Data.(event.ElementsChangedData).Op)
		return false
	})
	mgr.Subscribe(event.TypeHistoryChanged, func(e event.Event) bool {
		history = append(history, e.Data.(event.HistoryChangedData))
		return false
	})
	s := NewStore(Options{Events: mgr, NewID: seqIDs()})

	id := s.AddElement(element.Headline())
	s.MoveElement(id, 1, 1)
	s.Undo()

	if !slices.Equal(ops, []string{"add", "move", "undo"}) {
		t.Fatalf("ops = %v", ops)
	}
	if len(history) != 2 || !history[0].CanUndo || !history[1].CanRedo {
		t.Fatalf("history events = %+v", history)
	}
}

func TestMaxHistory(t *testing.T) {
	s := NewStore(Options{MaxHistory: 2, NewID: seqIDs()})
	for i := 0; i < 5; i++ {
		s.AddElement(element.BodyText())
	}
	if got := len(s.History().Past); got != 2 {
		t.Fatalf("past = %d, want 2", got)
	}
}

func TestElementsWithoutPropertiesRejected(t *testing.T) {
	s := newTestStore(element.Element{ID: "bare", Width: 5, Height: 5}, box("a", 0, 0, 1, 1))
	if s.IndexOf("bare") >= 0 {
		t.Error("initial element without properties should be dropped")
	}

	if id := s.AddElement(element.Element{Width: 10, Height: 10}); id != "" {
		t.Errorf("AddElement without properties = %q, want rejection", id)
	}
	if ids := s.AddElements([]element.Element{{Width: 1, Height: 1}}); ids != nil {
		t.Errorf("AddElements of bare elements = %v, want nil", ids)
	}
	if s.Len() != 1 || s.CanUndo() {
		t.Fatalf("rejected adds changed the document: len=%d undo=%v", s.Len(), s.CanUndo())
	}

	if s.UpdateElement("a", element.Patch{Props: element.TextProps{Text: "hi"}}) {
		t.Error("update must not change an element's type")
	}
	if e, _ := s.Element("a"); e.Type() != element.TypeShape {
		t.Errorf("type = %q, want shape", e.Type())
	}
}

func TestAddElementsPlacesBackgroundAtBottom(t *testing.T) {
	s := NewDemoStore(Options{NewID: seqIDs()})
	bg := element.NewBackground(element.BackgroundProps{Color: "#000000"}, s.Canvas())
	bg.X, bg.Y = 10, 10
	ids := s.AddElements([]element.Element{element.Headline(), bg})

	els := s.Elements()
	if els[0].ID != ids[0] || els[0].X != 0 || els[0].Y != 0 || els[0].ZIndex != -1 {
		t.Fatalf("pasted background not at the bottom: %+v", els[0])
	}
	backgrounds := 0
	for _, e := range els {
		if e.Type() == element.TypeBackground {
			backgrounds++
		}
	}
	if backgrounds != 1 {
		t.Errorf("%d backgrounds, want 1", backgrounds)
	}
	if els[len(els)-1].ID != ids[1] {
		t.Error("other elements should still be appended on top")
	}
	if len(s.History().Past) != 1 {
		t.Errorf("batch took %d checkpoints, want 1", len(s.History().Past))
	}
}

func TestFreshIDSurvivesStuckGenerator(t *testing.T) {
	s := NewStore(Options{
		Elements: []element.Element{box("x", 0, 0, 1, 1)},
		NewID:    func() string { return "x" },
	})
	id := s.AddElement(element.Headline())
	if id == "" || id == "x" {
		t.Fatalf("id = %q, want a fresh random id", id)
	}
	if blank := NewStore(Options{NewID: func() string { return "" }}).AddElement(element.Headline()); blank == "" {
		t.Error("empty ids should be replaced")
	}
}
