// Package element defines the objects placed on a poster canvas.
package element

import "github.com/bethropolis/flyer/internal/types"

// Type tags the kind of an element. The set is closed.
type Type string

const (
	TypeUnknown    Type = ""
	TypeText       Type = "text"
	TypeImage      Type = "image"
	TypeShape      Type = "shape"
	TypeBackground Type = "background"
)

// Types lists every element type in display order.
var Types = []Type{TypeBackground, TypeShape, TypeText, TypeImage}

// Element is a placed object on the canvas.
//
// ZIndex is an informational hint only. Paint order is the element's
// position in the document's element list.
type Element struct {
	ID       string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64 // degrees
	ZIndex   int
	Props    Properties
}

// Type returns the tag of the element's property variant.
func (e Element) Type() Type {
	if e.Props == nil {
		return TypeUnknown
	}
	return e.Props.Kind()
}

// Bounds returns the unrotated bounding box.
func (e Element) Bounds() types.Rect {
	return types.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Clone returns a deep copy; the copy shares no memory with e.
func (e Element) Clone() Element {
	c := e
	if e.Props != nil {
		c.Props = e.Props.clone()
	}
	return c
}

// CloneAll deep-copies a list of elements, preserving order.
// A nil input yields an empty, non-nil slice.
func CloneAll(elements []Element) []Element {
	out := make([]Element, len(elements))
	for i, e := range elements {
		out[i] = e.Clone()
	}
	return out
}

// Patch is a shallow partial update. Nil fields are left untouched;
// a non-nil Props replaces the whole property variant.
type Patch struct {
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Rotation *float64
	ZIndex   *int
	Props    Properties
}

// Apply merges the patch into e.
func (p Patch) Apply(e *Element) {
	if p.X != nil {
		e.X = *p.X
	}
	if p.Y != nil {
		e.Y = *p.Y
	}
	if p.Width != nil {
		e.Width = *p.Width
	}
	if p.Height != nil {
		e.Height = *p.Height
	}
	if p.Rotation != nil {
		e.Rotation = *p.Rotation
	}
	if p.ZIndex != nil {
		e.ZIndex = *p.ZIndex
	}
	if p.Props != nil {
		e.Props = p.Props.clone()
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.X == nil && p.Y == nil && p.Width == nil && p.Height == nil &&
		p.Rotation == nil && p.ZIndex == nil && p.Props == nil
}

// Float returns a pointer to v, for building patches.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for building patches.
func Int(v int) *int { return &v }
