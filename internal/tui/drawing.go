// internal/tui/drawing.go
package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/flyer/internal/config"
	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/logger"
	"github.com/bethropolis/flyer/internal/theme"
	"github.com/bethropolis/flyer/internal/types"
)

// View is what one frame shows.
type View struct {
	Canvas   types.Size
	Elements []element.Element // paint order, back to front
	Selected func(id string) bool
	FocusID  string
	EditID   string // text element being edited, drawn with EditText
	EditText string
}

// Layout maps canvas coordinates to screen cells. Cells are roughly twice
// as tall as they are wide, so SY is half of SX.
type Layout struct {
	OX, OY int // top-left cell of the canvas
	W, H   int // canvas size in cells
	SX, SY float64
}

type cellRect struct{ x0, y0, x1, y1 int } // x1, y1 exclusive

func (r cellRect) empty() bool { return r.x1 <= r.x0 || r.y1 <= r.y0 }

// ComputeLayout fits canvas into a width x height area, leaving room for a
// one-cell border. It reports false when the area is too small.
func ComputeLayout(canvas types.Size, width, height int) (Layout, bool) {
	availW, availH := width-2, height-2
	if availW < 4 || availH < 2 || canvas.Width <= 0 || canvas.Height <= 0 {
		return Layout{}, false
	}
	scale := math.Min(float64(availW)/canvas.Width, 2*float64(availH)/canvas.Height)
	l := Layout{SX: scale, SY: scale / 2}
	l.W = clampInt(int(math.Round(canvas.Width*l.SX)), 1, availW)
	l.H = clampInt(int(math.Round(canvas.Height*l.SY)), 1, availH)
	l.OX = (width - l.W) / 2
	l.OY = (height - l.H) / 2
	return l, true
}

// cells returns the cells covered by r, clipped to the canvas. Anything
// with a non-empty box covers at least one cell.
func (l Layout) cells(r types.Rect) cellRect {
	c := cellRect{
		x0: l.OX + int(math.Floor(r.X*l.SX)),
		y0: l.OY + int(math.Floor(r.Y*l.SY)),
		x1: l.OX + int(math.Ceil(r.Right()*l.SX)),
		y1: l.OY + int(math.Ceil(r.Bottom()*l.SY)),
	}
	if r.Width > 0 && c.x1 <= c.x0 {
		c.x1 = c.x0 + 1
	}
	if r.Height > 0 && c.y1 <= c.y0 {
		c.y1 = c.y0 + 1
	}
	c.x0 = max(c.x0, l.OX)
	c.y0 = max(c.y0, l.OY)
	c.x1 = min(c.x1, l.OX+l.W)
	c.y1 = min(c.y1, l.OY+l.H)
	return c
}

// DrawCanvas draws the desk, the canvas and its elements in paint order,
// then selection frames and the focus marker. The last line is left for
// the status bar.
func DrawCanvas(t *TUI, view View, activeTheme *theme.Theme) {
	if activeTheme == nil {
		logger.Warnf("DrawCanvas called with nil theme, using %s", theme.PosterDark.Name)
		activeTheme = &theme.PosterDark
	}
	screen := t.screen
	width, height := t.Size()
	viewHeight := height - config.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	fillRect(screen, cellRect{0, 0, width, viewHeight}, ' ', activeTheme.GetStyle(theme.StyleDesk))

	layout, ok := ComputeLayout(view.Canvas, width, viewHeight)
	if !ok {
		drawString(screen, 0, 0, width, "terminal too small", activeTheme.GetStyle(theme.StyleDesk))
		return
	}
	canvasRect := cellRect{layout.OX, layout.OY, layout.OX + layout.W, layout.OY + layout.H}
	drawFrame(screen, cellRect{canvasRect.x0 - 1, canvasRect.y0 - 1, canvasRect.x1 + 1, canvasRect.y1 + 1},
		fgOf(activeTheme.GetStyle(theme.StyleCanvasBorder)))
	fillRect(screen, canvasRect, ' ', activeTheme.GetStyle(theme.StyleCanvas))

	for _, e := range view.Elements {
		r := layout.cells(e.Bounds())
		if r.empty() {
			continue
		}
		drawElement(screen, e, r, view, activeTheme)
	}

	if view.Selected != nil {
		selFg := fgOf(activeTheme.GetStyle(theme.StyleSelection))
		for _, e := range view.Elements {
			if !view.Selected(e.ID) {
				continue
			}
			if r := layout.cells(e.Bounds()); !r.empty() {
				drawFrame(screen, r, selFg)
			}
		}
	}

	for _, e := range view.Elements {
		if e.ID != view.FocusID || view.FocusID == "" {
			continue
		}
		if r := layout.cells(e.Bounds()); !r.empty() {
			setRune(screen, r.x0, r.y0, '◆', fgOf(activeTheme.GetStyle(theme.StyleFocus)))
		}
		break
	}
}

func drawElement(screen tcell.Screen, e element.Element, r cellRect, view View, th *theme.Theme) {
	switch p := e.Props.(type) {
	case element.BackgroundProps:
		p = p.Resolved()
		style := theme.OnFill(th.ElementStyle(element.TypeBackground), p.Color)
		fillRect(screen, r, ' ', style)
		if p.ImageURL != "" {
			drawString(screen, r.x0, r.y0, r.x1, "[bg] "+p.ImageURL, style)
		}

	case element.ShapeProps:
		p = p.Resolved()
		style := theme.OnFill(th.ElementStyle(element.TypeShape), p.FillColor)
		drawShape(screen, r, p.Shape, style)

	case element.ImageProps:
		style := th.ElementStyle(element.TypeImage)
		fillRect(screen, r, ' ', style)
		caption := "[img]"
		if p.URL != "" {
			caption += " " + p.URL
		}
		drawString(screen, r.x0, r.y0, r.x1, caption, style)

	case element.TextProps:
		p = p.Resolved()
		if e.ID == view.EditID {
			p.Text = view.EditText
		}
		drawText(screen, r, p, th)

	default:
		fillRect(screen, r, '?', th.ElementStyle(element.TypeUnknown))
	}
}

// drawShape fills the cells whose centres fall inside the outline. Shapes
// too small to have an outline are drawn as blocks.
func drawShape(screen tcell.Screen, r cellRect, kind element.ShapeKind, style tcell.Style) {
	w, h := float64(r.x1-r.x0), float64(r.y1-r.y0)
	if w < 3 || h < 2 {
		fillRect(screen, r, ' ', style)
		return
	}
	fill := ' '
	if kind == element.ShapeStar {
		fill = '*'
	}
	for y := r.y0; y < r.y1; y++ {
		v := (float64(y-r.y0) + 0.5) / h
		for x := r.x0; x < r.x1; x++ {
			u := (float64(x-r.x0) + 0.5) / w
			if insideShape(kind, u, v) {
				screen.SetContent(x, y, fill, nil, style)
			}
		}
	}
}

// insideShape tests a point in the unit square.
func insideShape(kind element.ShapeKind, u, v float64) bool {
	switch kind {
	case element.ShapeCircle, element.ShapeStar:
		du, dv := u-0.5, v-0.5
		return du*du+dv*dv <= 0.25
	case element.ShapeTriangle:
		return math.Abs(u-0.5) <= v/2
	default:
		return true
	}
}

// drawText draws each line of the text inside r, aligned and clipped by
// display width. Without a background color the glyphs take the colors
// already painted underneath.
func drawText(screen tcell.Screen, r cellRect, p element.TextProps, th *theme.Theme) {
	base := th.ElementStyle(element.TypeText)
	if _, ok := theme.ElementColor(p.BackgroundColor); ok {
		fillRect(screen, r, ' ', theme.OnFill(base, p.BackgroundColor))
	}
	fg, ok := theme.ElementColor(p.Color)
	if !ok {
		fg = fgOf(base)
	}

	width := r.x1 - r.x0
	for i, line := range strings.Split(p.Text, "\n") {
		y := r.y0 + i
		if y >= r.y1 {
			break
		}
		line = clipToWidth(line, width)
		offset := 0
		switch p.TextAlign {
		case "center":
			offset = (width - uniseg.StringWidth(line)) / 2
		case "right":
			offset = width - uniseg.StringWidth(line)
		}
		x := r.x0 + offset
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			runes := gr.Runes()
			_, _, under, _ := screen.GetContent(x, y)
			style := textAttrs(under.Foreground(fg), p)
			screen.SetContent(x, y, runes[0], runes[1:], style)
			x += gr.Width()
		}
	}
}

func textAttrs(style tcell.Style, p element.TextProps) tcell.Style {
	if isBold(p.FontWeight) {
		style = style.Bold(true)
	}
	if p.FontStyle == "italic" {
		style = style.Italic(true)
	}
	if strings.Contains(p.TextDecoration, "underline") {
		style = style.Underline(true)
	}
	if strings.Contains(p.TextDecoration, "line-through") {
		style = style.StrikeThrough(true)
	}
	return style
}

func isBold(weight string) bool {
	if weight == "bold" || weight == "bolder" {
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}

// clipToWidth cuts s to at most width display cells without splitting a
// grapheme cluster.
func clipToWidth(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if used+gr.Width() > width {
			break
		}
		b.WriteString(gr.Str())
		used += gr.Width()
	}
	return b.String()
}

// drawFrame outlines r with box-drawing runes in fg, keeping backgrounds.
func drawFrame(screen tcell.Screen, r cellRect, fg tcell.Color) {
	w, h := r.x1-r.x0, r.y1-r.y0
	switch {
	case w <= 0 || h <= 0:
		return
	case w == 1 && h == 1:
		setRune(screen, r.x0, r.y0, '□', fg)
		return
	case h == 1:
		for x := r.x0; x < r.x1; x++ {
			setRune(screen, x, r.y0, '─', fg)
		}
		return
	case w == 1:
		for y := r.y0; y < r.y1; y++ {
			setRune(screen, r.x0, y, '│', fg)
		}
		return
	}
	for x := r.x0 + 1; x < r.x1-1; x++ {
		setRune(screen, x, r.y0, '─', fg)
		setRune(screen, x, r.y1-1, '─', fg)
	}
	for y := r.y0 + 1; y < r.y1-1; y++ {
		setRune(screen, r.x0, y, '│', fg)
		setRune(screen, r.x1-1, y, '│', fg)
	}
	setRune(screen, r.x0, r.y0, '┌', fg)
	setRune(screen, r.x1-1, r.y0, '┐', fg)
	setRune(screen, r.x0, r.y1-1, '└', fg)
	setRune(screen, r.x1-1, r.y1-1, '┘', fg)
}

// setRune draws ch in fg over whatever background the cell already has.
func setRune(screen tcell.Screen, x, y int, ch rune, fg tcell.Color) {
	_, _, style, _ := screen.GetContent(x, y)
	screen.SetContent(x, y, ch, nil, style.Foreground(fg).Bold(true))
}

func fillRect(screen tcell.Screen, r cellRect, ch rune, style tcell.Style) {
	for y := r.y0; y < r.y1; y++ {
		for x := r.x0; x < r.x1; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawString draws s from x up to maxX using grapheme widths.
func drawString(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		if x+w > maxX {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}

func fgOf(style tcell.Style) tcell.Color {
	fg, _, _ := style.Decompose()
	return fg
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
