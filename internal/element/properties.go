package element

// Properties is the type-specific part of an element. Exactly one variant
// exists per Type; the interface is sealed to this package.
type Properties interface {
	Kind() Type
	clone() Properties
}

// Renderer defaults applied when a property is absent.
const (
	DefaultText            = "Text"
	DefaultFontSize        = 16.0
	DefaultFontFamily      = "Inter"
	DefaultFontWeight      = "normal"
	DefaultFontStyle       = "normal"
	DefaultTextDecoration  = "none"
	DefaultTextColor       = "#000000"
	DefaultTextBackground  = "transparent"
	DefaultTextAlign       = "left"
	DefaultFillColor       = "#6366f1"
	DefaultStrokeColor     = "#000000"
	DefaultBackgroundColor = "#ffffff"
)

// TextProps styles a text element. Empty fields fall back to the defaults above.
type TextProps struct {
	Text            string
	FontSize        float64
	FontFamily      string
	FontWeight      string
	FontStyle       string
	TextDecoration  string
	TextAlign       string
	Color           string
	BackgroundColor string
}

func (TextProps) Kind() Type          { return TypeText }
func (p TextProps) clone() Properties { return p }

// Resolved returns p with every absent field set to its renderer default.
func (p TextProps) Resolved() TextProps {
	if p.Text == "" {
		p.Text = DefaultText
	}
	if p.FontSize <= 0 {
		p.FontSize = DefaultFontSize
	}
	p.FontFamily = orDefault(p.FontFamily, DefaultFontFamily)
	p.FontWeight = orDefault(p.FontWeight, DefaultFontWeight)
	p.FontStyle = orDefault(p.FontStyle, DefaultFontStyle)
	p.TextDecoration = orDefault(p.TextDecoration, DefaultTextDecoration)
	p.TextAlign = orDefault(p.TextAlign, DefaultTextAlign)
	p.Color = orDefault(p.Color, DefaultTextColor)
	p.BackgroundColor = orDefault(p.BackgroundColor, DefaultTextBackground)
	return p
}

// ShapeKind selects the outline drawn by a shape element.
type ShapeKind string

const (
	ShapeRectangle ShapeKind = "rectangle"
	ShapeCircle    ShapeKind = "circle"
	ShapeTriangle  ShapeKind = "triangle"
	ShapeStar      ShapeKind = "star"
)

// ShapeKinds lists the drawable shapes.
var ShapeKinds = []ShapeKind{ShapeRectangle, ShapeCircle, ShapeTriangle, ShapeStar}

// ShapeProps styles a shape element. FillOpacity and StrokeEnabled are
// pointers so that an explicit zero/false differs from "absent".
type ShapeProps struct {
	Shape         ShapeKind
	FillColor     string
	FillOpacity   *float64
	StrokeColor   string
	StrokeWidth   float64
	StrokeEnabled *bool
}

func (ShapeProps) Kind() Type { return TypeShape }

func (p ShapeProps) clone() Properties {
	if p.FillOpacity != nil {
		v := *p.FillOpacity
		p.FillOpacity = &v
	}
	if p.StrokeEnabled != nil {
		v := *p.StrokeEnabled
		p.StrokeEnabled = &v
	}
	return p
}

// Resolved returns a copy of p with every absent field set to its renderer default.
func (p ShapeProps) Resolved() ShapeProps {
	p = p.clone().(ShapeProps)
	if p.Shape == "" {
		p.Shape = ShapeRectangle
	}
	p.FillColor = orDefault(p.FillColor, DefaultFillColor)
	p.StrokeColor = orDefault(p.StrokeColor, DefaultStrokeColor)
	if p.FillOpacity == nil {
		p.FillOpacity = Float(1)
	}
	if p.StrokeEnabled == nil {
		enabled := p.StrokeWidth > 0
		p.StrokeEnabled = &enabled
	}
	return p
}

// ImageProps references a bitmap drawn with cover-fit.
type ImageProps struct {
	URL string
}

func (ImageProps) Kind() Type          { return TypeImage }
func (p ImageProps) clone() Properties { return p }

// BackgroundProps fills the canvas with a color and/or a cover-fit image.
type BackgroundProps struct {
	Color    string
	ImageURL string
}

func (BackgroundProps) Kind() Type          { return TypeBackground }
func (p BackgroundProps) clone() Properties { return p }

// Resolved returns p with the background color defaulted.
func (p BackgroundProps) Resolved() BackgroundProps {
	p.Color = orDefault(p.Color, DefaultBackgroundColor)
	return p
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
