package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ElementColor converts a CSS-style element color ("#rrggbb", "#rgb") to a
// terminal color. "transparent", empty and unparsable values report false.
func ElementColor(s string) (tcell.Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "transparent") {
		return tcell.ColorDefault, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault, false
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
}

// ContrastColor picks black or white, whichever reads better on the
// given element fill.
func ContrastColor(fill string) tcell.Color {
	c, err := colorful.Hex(strings.TrimSpace(fill))
	if err != nil {
		return tcell.ColorDefault
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

// OnFill returns style with the element's fill as background and a
// readable foreground. Unusable fills leave style unchanged.
func OnFill(style tcell.Style, fill string) tcell.Style {
	bg, ok := ElementColor(fill)
	if !ok {
		return style
	}
	return style.Background(bg).Foreground(ContrastColor(fill))
}
