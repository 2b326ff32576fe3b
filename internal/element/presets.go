package element

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bethropolis/flyer/internal/types"
)

// Preset placement for newly added elements.
const (
	presetX      = 50
	presetY      = 50
	presetZIndex = 1

	ShapeSize   = 80
	ImageWidth  = 150
	ImageHeight = 100
)

// Text metrics used by EstimateTextSize.
const (
	glyphAdvance = 0.6
	lineHeight   = 1.2
	textPadding  = 16
)

// MinSize returns the smallest width and height an element of type t may be resized to.
func MinSize(t Type) types.Size {
	if t == TypeText {
		return types.Size{Width: 50, Height: 30}
	}
	return types.Size{Width: 10, Height: 10}
}

// EstimateTextSize approximates the box needed for text at fontSize.
// Width scales with the widest line's display cells; the result never
// falls below MinSize(TypeText).
func EstimateTextSize(text string, fontSize float64) types.Size {
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		if w := uniseg.StringWidth(line); w > widest {
			widest = w
		}
	}
	floor := MinSize(TypeText)
	return types.Size{
		Width:  math.Max(float64(widest)*glyphAdvance*fontSize+textPadding, floor.Width),
		Height: math.Max(float64(len(lines))*lineHeight*fontSize+textPadding, floor.Height),
	}
}

func newText(text string, fontSize float64, weight string) Element {
	size := EstimateTextSize(text, fontSize)
	return Element{
		X:      presetX,
		Y:      presetY,
		Width:  size.Width,
		Height: size.Height,
		ZIndex: presetZIndex,
		Props: TextProps{
			Text:       text,
			FontSize:   fontSize,
			FontFamily: DefaultFontFamily,
			FontWeight: weight,
			Color:      DefaultTextColor,
			TextAlign:  DefaultTextAlign,
		},
	}
}

// Headline returns a large bold text element.
func Headline() Element { return newText("Headline Text", 24, "bold") }

// BodyText returns a regular paragraph text element.
func BodyText() Element { return NewText("Body Text") }

// NewText returns a body-sized text element sized to fit text.
func NewText(text string) Element { return newText(text, 14, DefaultFontWeight) }

// NewShape returns an 80x80 shape of the given kind with the default fill.
func NewShape(kind ShapeKind) Element {
	return Element{
		X:      presetX,
		Y:      presetY,
		Width:  ShapeSize,
		Height: ShapeSize,
		ZIndex: presetZIndex,
		Props: ShapeProps{
			Shape:       kind,
			FillColor:   DefaultFillColor,
			FillOpacity: Float(1),
			StrokeColor: DefaultStrokeColor,
		},
	}
}

// NewImage returns an image element referencing url.
func NewImage(url string) Element {
	return Element{
		X:      presetX,
		Y:      presetY,
		Width:  ImageWidth,
		Height: ImageHeight,
		ZIndex: presetZIndex,
		Props:  ImageProps{URL: url},
	}
}

// NewBackground returns a background covering the whole canvas.
func NewBackground(props BackgroundProps, canvas types.Size) Element {
	return Element{
		Width:  canvas.Width,
		Height: canvas.Height,
		ZIndex: -1,
		Props:  props,
	}
}

// Demo returns the starter document shown when the editor opens.
// Ids are fixed so that the set is reproducible.
func Demo(canvas types.Size) []Element {
	bg := NewBackground(BackgroundProps{Color: "#FCFCFD"}, canvas)
	bg.ID = "background-1"

	return []Element{
		bg,
		{
			ID: "circle-1", X: 161.5, Y: 209.25, Width: 250, Height: 250, ZIndex: 1,
			Props: ShapeProps{
				Shape:       ShapeCircle,
				FillColor:   "#7B42F6",
				FillOpacity: Float(1),
				StrokeColor: "#000000",
			},
		},
		{
			ID: "text-1", X: 186.5, Y: 284.25, Width: 200, Height: 100, ZIndex: 2,
			Props: TextProps{
				Text:       "This is an\namazing\ndesign to be\nworking on!",
				FontSize:   20,
				FontFamily: "Inter",
				FontWeight: "bold",
				Color:      "#ffffff",
				TextAlign:  "center",
			},
		},
		{
			ID: "text-3", X: 473, Y: 59.25, Width: 100, Height: 30, ZIndex: 2,
			Props: TextProps{Text: "#newday", FontSize: 14, FontFamily: "Inter", FontWeight: "normal", Color: "#000000", TextAlign: "left"},
		},
		{
			ID: "text-4", X: 53, Y: 629.25, Width: 100, Height: 30, ZIndex: 2,
			Props: TextProps{Text: "Company", FontSize: 14, FontFamily: "Inter", FontWeight: "normal", Color: "#000000", TextAlign: "left"},
		},
		{
			ID: "text-5", X: 473, Y: 629.25, Width: 100, Height: 30, ZIndex: 2,
			Props: TextProps{Text: "@user.name", FontSize: 14, FontFamily: "Inter", FontWeight: "normal", Color: "#7B42F6", TextAlign: "right"},
		},
	}
}
