package clipboard

import (
	"encoding/json"
	"fmt"

	"github.com/bethropolis/flyer/internal/element"
)

// payloadKind marks clipboard text produced by this editor.
const payloadKind = "flyer/elements"

type payload struct {
	Kind     string        `json:"kind"`
	Elements []wireElement `json:"elements"`
}

type wireElement struct {
	ID       string          `json:"id"`
	Type     element.Type    `json:"type"`
	X        float64         `json:"x"`
	Y        float64         `json:"y"`
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Rotation float64         `json:"rotation"`
	ZIndex   int             `json:"zIndex"`
	Props    json.RawMessage `json:"properties,omitempty"`
}

type wireText struct {
	Text            string  `json:"text,omitempty"`
	FontSize        float64 `json:"fontSize,omitempty"`
	FontFamily      string  `json:"fontFamily,omitempty"`
	FontWeight      string  `json:"fontWeight,omitempty"`
	FontStyle       string  `json:"fontStyle,omitempty"`
	TextDecoration  string  `json:"textDecoration,omitempty"`
	TextAlign       string  `json:"textAlign,omitempty"`
	Color           string  `json:"color,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
}

type wireShape struct {
	Shape         element.ShapeKind `json:"shapeType,omitempty"`
	FillColor     string            `json:"fillColor,omitempty"`
	FillOpacity   *float64          `json:"fillOpacity,omitempty"`
	StrokeColor   string            `json:"strokeColor,omitempty"`
	StrokeWidth   float64           `json:"strokeWidth,omitempty"`
	StrokeEnabled *bool             `json:"strokeEnabled,omitempty"`
}

type wireImage struct {
	URL string `json:"src,omitempty"`
}

type wireBackground struct {
	Color    string `json:"backgroundColor,omitempty"`
	ImageURL string `json:"backgroundImage,omitempty"`
}

// Encode serializes elements (in order) to the clipboard payload.
func Encode(elements []element.Element) ([]byte, error) {
	p := payload{Kind: payloadKind, Elements: make([]wireElement, 0, len(elements))}
	for _, e := range elements {
		props, err := encodeProps(e.Props)
		if err != nil {
			return nil, fmt.Errorf("encode element %s: %w", e.ID, err)
		}
		p.Elements = append(p.Elements, wireElement{
			ID: e.ID, Type: e.Type(),
			X: e.X, Y: e.Y, Width: e.Width, Height: e.Height,
			Rotation: e.Rotation, ZIndex: e.ZIndex,
			Props: props,
		})
	}
	return json.Marshal(p)
}

// Decode parses a clipboard payload. Text that is not a flyer payload
// yields an error.
func Decode(data []byte) ([]element.Element, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode clipboard payload: %w", err)
	}
	if p.Kind != payloadKind {
		return nil, fmt.Errorf("decode clipboard payload: not a %s payload", payloadKind)
	}
	out := make([]element.Element, 0, len(p.Elements))
	for i, w := range p.Elements {
		props, err := decodeProps(w.Type, w.Props)
		if err != nil {
			return nil, fmt.Errorf("decode element %d: %w", i, err)
		}
		out = append(out, element.Element{
			ID: w.ID,
			X:  w.X, Y: w.Y, Width: w.Width, Height: w.Height,
			Rotation: w.Rotation, ZIndex: w.ZIndex,
			Props: props,
		})
	}
	return out, nil
}

func encodeProps(props element.Properties) (json.RawMessage, error) {
	var v interface{}
	switch p := props.(type) {
	case nil:
		return nil, nil
	case element.TextProps:
		v = wireText(p)
	case element.ShapeProps:
		v = wireShape(p)
	case element.ImageProps:
		v = wireImage(p)
	case element.BackgroundProps:
		v = wireBackground(p)
	default:
		return nil, fmt.Errorf("unsupported properties %T", props)
	}
	return json.Marshal(v)
}

func decodeProps(t element.Type, raw json.RawMessage) (element.Properties, error) {
	if t == element.TypeUnknown {
		return nil, nil
	}
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	switch t {
	case element.TypeText:
		var w wireText
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return element.TextProps(w), nil
	case element.TypeShape:
		var w wireShape
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return element.ShapeProps(w), nil
	case element.TypeImage:
		var w wireImage
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return element.ImageProps(w), nil
	case element.TypeBackground:
		var w wireBackground
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return element.BackgroundProps(w), nil
	}
	return nil, fmt.Errorf("unknown element type %q", t)
}
