package element

import (
	"math"
	"testing"

	"github.com/bethropolis/flyer/internal/types"
)

func TestCloneIsDeep(t *testing.T) {
	orig := NewShape(ShapeStar)
	orig.ID = "s"
	c := orig.Clone()

	*c.Props.(ShapeProps).FillOpacity = 0.25
	if got := *orig.Props.(ShapeProps).FillOpacity; got != 1 {
		t.Fatalf("original opacity changed to %v through clone", got)
	}
	c.X = 999
	if orig.X == 999 {
		t.Fatal("original geometry changed through clone")
	}
}

func TestCloneAllNilGivesEmpty(t *testing.T) {
	out := CloneAll(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("CloneAll(nil) = %#v, want empty non-nil slice", out)
	}
}

func TestPatchApply(t *testing.T) {
	e := Headline()
	p := Patch{X: Float(10), Rotation: Float(45)}
	p.Apply(&e)
	if e.X != 10 || e.Rotation != 45 {
		t.Fatalf("patch not applied: x=%v rot=%v", e.X, e.Rotation)
	}
	if e.Y != presetY {
		t.Fatalf("untouched field changed: y=%v", e.Y)
	}

	Patch{Props: TextProps{Text: "new"}}.Apply(&e)
	tp := e.Props.(TextProps)
	if tp.Text != "new" || tp.FontSize != 0 {
		t.Fatalf("props should be replaced wholesale, got %+v", tp)
	}

	if !(Patch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	if (Patch{ZIndex: Int(3)}).IsEmpty() {
		t.Error("patch with zIndex should not be empty")
	}
}

func TestTypeDerivedFromProps(t *testing.T) {
	tests := []struct {
		e    Element
		want Type
	}{
		{Headline(), TypeText},
		{NewShape(ShapeCircle), TypeShape},
		{NewImage("a.png"), TypeImage},
		{NewBackground(BackgroundProps{}, types.Size{Width: 1, Height: 1}), TypeBackground},
		{Element{}, TypeUnknown},
	}
	for _, tt := range tests {
		if got := tt.e.Type(); got != tt.want {
			t.Errorf("Type() = %q, want %q", got, tt.want)
		}
	}
}

func TestResolvedDefaults(t *testing.T) {
	tp := TextProps{}.Resolved()
	if tp.Text != "Text" || tp.FontSize != 16 || tp.FontFamily != "Inter" ||
		tp.Color != "#000000" || tp.BackgroundColor != "transparent" || tp.TextAlign != "left" {
		t.Errorf("unexpected text defaults: %+v", tp)
	}

	sp := ShapeProps{}.Resolved()
	if sp.Shape != ShapeRectangle || sp.FillColor != "#6366f1" || *sp.FillOpacity != 1 || *sp.StrokeEnabled {
		t.Errorf("unexpected shape defaults: %+v", sp)
	}
	sp = ShapeProps{StrokeWidth: 2}.Resolved()
	if !*sp.StrokeEnabled {
		t.Error("a positive stroke width should enable the stroke")
	}

	if bp := (BackgroundProps{}).Resolved(); bp.Color != "#ffffff" {
		t.Errorf("background color default = %q", bp.Color)
	}
}

func TestEstimateTextSize(t *testing.T) {
	small := EstimateTextSize("a", 10)
	if small.Width != 50 || small.Height != 30 {
		t.Errorf("tiny text should clamp to min size, got %+v", small)
	}

	got := EstimateTextSize("Headline Text", 24)
	wantW := 13*0.6*24 + 16
	wantH := 1.2*24 + 16
	if !near(got.Width, wantW) || !near(got.Height, wantH) {
		t.Errorf("EstimateTextSize = %+v, want %vx%v", got, wantW, wantH)
	}

	two := EstimateTextSize("ab\nabcdefghijklmnop", 20)
	if !near(two.Height, 2*1.2*20+16) {
		t.Errorf("two-line height = %v", two.Height)
	}
}

func TestDemo(t *testing.T) {
	canvas := types.Size{Width: 573, Height: 668.5}
	demo := Demo(canvas)
	if len(demo) != 6 {
		t.Fatalf("demo has %d elements, want 6", len(demo))
	}
	if demo[0].Type() != TypeBackground || demo[0].Width != 573 || demo[0].Height != 668.5 {
		t.Errorf("first demo element should be a full-canvas background, got %+v", demo[0])
	}
	seen := map[string]bool{}
	for _, e := range demo {
		if seen[e.ID] {
			t.Errorf("duplicate demo id %q", e.ID)
		}
		seen[e.ID] = true
	}

	wantZ := map[string]int{"background-1": -1, "circle-1": 1, "text-1": 2, "text-3": 2, "text-4": 2, "text-5": 2}
	for _, e := range demo {
		if e.ZIndex != wantZ[e.ID] {
			t.Errorf("%s zIndex = %d, want %d", e.ID, e.ZIndex, wantZ[e.ID])
		}
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
