// Package theme maps UI roles to tcell styles and loads user themes.
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/logger"
)

// Style names looked up by the drawing code. Element styles use the
// element type as a suffix ("Element.text") and fall back to "Element".
const (
	StyleDefault          = "Default"
	StyleDesk             = "Desk"
	StyleCanvas           = "Canvas"
	StyleCanvasBorder     = "CanvasBorder"
	StyleElement          = "Element"
	StyleSelection        = "Selection"
	StyleFocus            = "Focus"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMode    = "StatusBarMode"
	StyleStatusBarMessage = "StatusBarMessage"
	StyleStatusBarCommand = "StatusBarCommand"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name, falling back to the part before the
// first dot, then to "Default", then to tcell's default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "theme '%s': style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.WarnTagf("theme", "theme '%s': style '%s' and 'Default' not found, using tcell default", t.Name, name)
	return tcell.StyleDefault
}

// ElementStyle returns the style for an element type, falling back to
// the shared "Element" style.
func (t *Theme) ElementStyle(kind element.Type) tcell.Style {
	return t.GetStyle(elementRole(kind))
}

func elementRole(kind element.Type) string {
	return StyleElement + "." + string(kind)
}

// IsRole reports whether name is a style the editor draws with: one of
// the fixed roles or "Element.<type>" for a known element type.
func IsRole(name string) bool {
	switch name {
	case StyleDefault, StyleDesk, StyleCanvas, StyleCanvasBorder, StyleElement,
		StyleSelection, StyleFocus, StyleStatusBar, StyleStatusBarMode,
		StyleStatusBarMessage, StyleStatusBarCommand:
		return true
	}
	for _, kind := range element.Types {
		if name == elementRole(kind) {
			return true
		}
	}
	return false
}

var (
	PosterDark  Theme
	PosterLight Theme
)

func init() {
	ink := tcell.NewHexColor(0x1e1f26)
	panel := tcell.NewHexColor(0x2b2d3a)
	fg := tcell.NewHexColor(0xd7d9e4)
	muted := tcell.NewHexColor(0x6b6f85)
	violet := tcell.NewHexColor(0x7b42f6)
	indigo := tcell.NewHexColor(0x6366f1)
	amber := tcell.NewHexColor(0xf5b942)
	mint := tcell.NewHexColor(0x5fd3a6)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)

	PosterDark = Theme{
		Name:   "Poster Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:      base,
			StyleDesk:         base.Background(ink),
			StyleCanvas:       tcell.StyleDefault.Background(tcell.NewHexColor(0xfcfcfd)).Foreground(ink),
			StyleCanvasBorder: base.Background(ink).Foreground(muted),

			StyleElement:                 base.Background(panel),
			StyleElement + ".text":       tcell.StyleDefault.Foreground(ink),
			StyleElement + ".shape":      tcell.StyleDefault.Background(indigo).Foreground(fg),
			StyleElement + ".image":      tcell.StyleDefault.Background(muted).Foreground(fg).Italic(true),
			StyleElement + ".background": tcell.StyleDefault.Background(tcell.NewHexColor(0xfcfcfd)),

			StyleSelection: tcell.StyleDefault.Foreground(amber).Bold(true),
			StyleFocus:     tcell.StyleDefault.Foreground(mint).Bold(true),

			StyleStatusBar:        tcell.StyleDefault.Background(panel).Foreground(fg),
			StyleStatusBarMode:    tcell.StyleDefault.Background(violet).Foreground(tcell.ColorWhite).Bold(true),
			StyleStatusBarMessage: tcell.StyleDefault.Background(panel).Foreground(amber).Bold(true),
			StyleStatusBarCommand: tcell.StyleDefault.Background(panel).Foreground(mint).Bold(true),
		},
	}

	paper := tcell.NewHexColor(0xeeeae2)
	graphite := tcell.NewHexColor(0x2f3035)
	lightBase := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(graphite)

	PosterLight = Theme{
		Name:   "Poster Light",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:      lightBase,
			StyleDesk:         lightBase.Background(paper),
			StyleCanvas:       tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(graphite),
			StyleCanvasBorder: lightBase.Background(paper).Foreground(muted),

			StyleElement:                 lightBase.Background(paper),
			StyleElement + ".text":       tcell.StyleDefault.Foreground(graphite),
			StyleElement + ".shape":      tcell.StyleDefault.Background(indigo).Foreground(tcell.ColorWhite),
			StyleElement + ".image":      tcell.StyleDefault.Background(muted).Foreground(tcell.ColorWhite).Italic(true),
			StyleElement + ".background": tcell.StyleDefault.Background(tcell.ColorWhite),

			StyleSelection: tcell.StyleDefault.Foreground(violet).Bold(true),
			StyleFocus:     tcell.StyleDefault.Foreground(tcell.NewHexColor(0x1b8a5a)).Bold(true),

			StyleStatusBar:        tcell.StyleDefault.Background(graphite).Foreground(paper),
			StyleStatusBarMode:    tcell.StyleDefault.Background(violet).Foreground(tcell.ColorWhite).Bold(true),
			StyleStatusBarMessage: tcell.StyleDefault.Background(graphite).Foreground(amber).Bold(true),
			StyleStatusBarCommand: tcell.StyleDefault.Background(graphite).Foreground(mint).Bold(true),
		},
	}
}
