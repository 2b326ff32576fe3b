package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/plugin"
	"github.com/bethropolis/flyer/internal/theme"
)

// positionPresets maps a preset name to the element's horizontal and
// vertical placement as a fraction of the free canvas space.
var positionPresets = map[string][2]float64{
	"top-left":      {0, 0},
	"top-center":    {0.5, 0},
	"top-right":     {1, 0},
	"middle-left":   {0, 0.5},
	"center":        {0.5, 0.5},
	"middle-right":  {1, 0.5},
	"bottom-left":   {0, 1},
	"bottom-center": {0.5, 1},
	"bottom-right":  {1, 1},
}

// RegisterStyleCommands registers the commands that restyle or place the
// single selected element. Each change is one undo step.
func RegisterStyleCommands(api plugin.EditorAPI, doc DocumentAPI) {
	register(api, "fontsize", func(args []string) error {
		size, err := strconv.ParseFloat(firstArg(args), 64)
		if err != nil || size <= 0 {
			return fmt.Errorf("usage: fontsize <points>")
		}
		return editText(api, doc, true, func(p *element.TextProps) { p.FontSize = size })
	})

	register(api, "weight", func(args []string) error {
		weight := firstArg(args)
		if weight != "normal" && weight != "bold" {
			return fmt.Errorf("usage: weight normal|bold")
		}
		return editText(api, doc, true, func(p *element.TextProps) { p.FontWeight = weight })
	})

	register(api, "italic", func(args []string) error {
		return editText(api, doc, false, func(p *element.TextProps) {
			p.FontStyle = toggle(p.FontStyle, "italic", "normal")
		})
	})

	register(api, "underline", func(args []string) error {
		return editText(api, doc, false, func(p *element.TextProps) {
			p.TextDecoration = toggle(p.TextDecoration, "underline", "none")
		})
	})

	register(api, "textalign", func(args []string) error {
		align := firstArg(args)
		if align != "left" && align != "center" && align != "right" {
			return fmt.Errorf("usage: textalign left|center|right")
		}
		return editText(api, doc, false, func(p *element.TextProps) { p.TextAlign = align })
	})

	register(api, "color", func(args []string) error {
		color, err := colorArg(args, "color")
		if err != nil {
			return err
		}
		return editText(api, doc, false, func(p *element.TextProps) { p.Color = color })
	})

	register(api, "fill", func(args []string) error {
		color, err := colorArg(args, "fill")
		if err != nil {
			return err
		}
		return editShape(api, doc, func(p *element.ShapeProps) { p.FillColor = color })
	})

	register(api, "opacity", func(args []string) error {
		opacity, err := strconv.ParseFloat(firstArg(args), 64)
		if err != nil || opacity < 0 || opacity > 1 {
			return fmt.Errorf("usage: opacity <0..1>")
		}
		return editShape(api, doc, func(p *element.ShapeProps) { p.FillOpacity = element.Float(opacity) })
	})

	register(api, "stroke", func(args []string) error {
		width, err := strconv.ParseFloat(firstArg(args), 64)
		if err != nil || width < 0 || len(args) > 2 {
			return fmt.Errorf("usage: stroke <width> [#rrggbb]")
		}
		color := ""
		if len(args) == 2 {
			if color, err = colorArg(args[1:], "stroke"); err != nil {
				return err
			}
		}
		return editShape(api, doc, func(p *element.ShapeProps) {
			enabled := width > 0
			p.StrokeWidth = width
			p.StrokeEnabled = &enabled
			if color != "" {
				p.StrokeColor = color
			}
		})
	})

	register(api, "position", func(args []string) error {
		preset, ok := positionPresets[firstArg(args)]
		if !ok {
			return fmt.Errorf("usage: position top-left|top-center|top-right|middle-left|center|middle-right|bottom-left|bottom-center|bottom-right")
		}
		e, err := selected(doc, element.TypeUnknown)
		if err != nil {
			return err
		}
		canvas := doc.Canvas()
		x := preset[0] * (canvas.Width - e.Width)
		y := preset[1] * (canvas.Height - e.Height)
		return commit(api, doc, e.ID, element.Patch{X: &x, Y: &y}, "Moved %s to %s", e.ID, args[0])
	})
}

// selected returns the single selected element. want restricts its type;
// TypeUnknown accepts any.
func selected(doc DocumentAPI, want element.Type) (element.Element, error) {
	id := doc.SelectedElementID()
	if id == "" {
		return element.Element{}, fmt.Errorf("select a single element first")
	}
	e, ok := doc.Element(id)
	if !ok {
		return element.Element{}, fmt.Errorf("element %s no longer exists", id)
	}
	if want != element.TypeUnknown && e.Type() != want {
		return element.Element{}, fmt.Errorf("%s is a %s element, not %s", id, e.Type(), want)
	}
	return e, nil
}

// editText applies edit to a copy of the selected text element's
// properties. With refit the box is re-sized to the new font metrics.
func editText(api plugin.EditorAPI, doc DocumentAPI, refit bool, edit func(*element.TextProps)) error {
	e, err := selected(doc, element.TypeText)
	if err != nil {
		return err
	}
	props := e.Props.(element.TextProps)
	edit(&props)
	patch := element.Patch{Props: props}
	if refit {
		r := props.Resolved()
		size := element.EstimateTextSize(r.Text, r.FontSize)
		patch.Width, patch.Height = &size.Width, &size.Height
	}
	return commit(api, doc, e.ID, patch, "Updated %s", e.ID)
}

func editShape(api plugin.EditorAPI, doc DocumentAPI, edit func(*element.ShapeProps)) error {
	e, err := selected(doc, element.TypeShape)
	if err != nil {
		return err
	}
	props := e.Props.(element.ShapeProps)
	edit(&props)
	return commit(api, doc, e.ID, element.Patch{Props: props}, "Updated %s", e.ID)
}

// commit applies patch and checkpoints once.
func commit(api plugin.EditorAPI, doc DocumentAPI, id string, patch element.Patch, format string, args ...interface{}) error {
	if !doc.UpdateElement(id, patch) {
		return fmt.Errorf("could not update %s", id)
	}
	doc.SaveToHistory()
	api.SetStatusMessage(format, args...)
	return nil
}

func colorArg(args []string, name string) (string, error) {
	color := firstArg(args)
	if _, ok := theme.ElementColor(color); !ok {
		return "", fmt.Errorf("usage: %s <#rrggbb>", name)
	}
	return strings.ToLower(color), nil
}

func toggle(current, on, off string) string {
	if current == on {
		return off
	}
	return on
}
