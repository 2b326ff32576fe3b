// internal/types/geometry.go
package types

// Size is a width/height pair in canvas units.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned box in canvas coordinates.
// X/Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point lies inside r (right/bottom edges exclusive).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// HAlign is a horizontal alignment target for multi-selection alignment.
type HAlign string

const (
	AlignLeft    HAlign = "left"
	AlignHCenter HAlign = "center"
	AlignRight   HAlign = "right"
)

// VAlign is a vertical alignment target for multi-selection alignment.
type VAlign string

const (
	AlignTop     VAlign = "top"
	AlignVCenter VAlign = "center"
	AlignBottom  VAlign = "bottom"
)

// ParseHAlign converts user input ("left", "center", "right") to an HAlign.
func ParseHAlign(s string) (HAlign, bool) {
	switch HAlign(s) {
	case AlignLeft, AlignHCenter, AlignRight:
		return HAlign(s), true
	}
	return "", false
}

// ParseVAlign converts user input ("top", "center", "bottom") to a VAlign.
func ParseVAlign(s string) (VAlign, bool) {
	switch VAlign(s) {
	case AlignTop, AlignVCenter, AlignBottom:
		return VAlign(s), true
	}
	return "", false
}

// Valid reports whether a is one of the defined horizontal targets.
func (a HAlign) Valid() bool {
	_, ok := ParseHAlign(string(a))
	return ok
}

// Valid reports whether a is one of the defined vertical targets.
func (a VAlign) Valid() bool {
	_, ok := ParseVAlign(string(a))
	return ok
}
