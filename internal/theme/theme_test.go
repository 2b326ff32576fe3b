package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/flyer/internal/element"
)

const oceanTheme = `
name = "Ocean"
is_dark = true

[styles.Default]
fg = "#e0e0e0"
bg = "#002b36"

[styles.Selection]
fg = "yellow"
bold = true

[styles.Canvas]
bg = "nope"
`

func writeTheme(t *testing.T, dir, file, content string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadThemeFromFile(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "ocean.toml", oceanTheme)
	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile: %v", err)
	}
	if th.Name != "Ocean" || !th.IsDark {
		t.Errorf("theme = %q dark=%v", th.Name, th.IsDark)
	}

	fg, bg, attrs := th.GetStyle(StyleSelection).Decompose()
	if fg != tcell.ColorYellow {
		t.Errorf("selection fg = %v", fg)
	}
	if bg != tcell.NewHexColor(0x002b36) {
		t.Errorf("selection should inherit the default bg, got %v", bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("selection should be bold")
	}

	// The bad Canvas entry is skipped and resolves through Default.
	if _, ok := th.Styles[StyleCanvas]; ok {
		t.Error("invalid style should be skipped")
	}
	if th.GetStyle(StyleCanvas) != th.GetStyle(StyleDefault) {
		t.Error("missing style should fall back to Default")
	}
}

func TestLoadThemeNameFromFileName(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "plain.toml", "[styles.Default]\nfg = \"white\"\n")
	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "plain" {
		t.Errorf("name = %q, want plain", th.Name)
	}
	if _, err := LoadThemeFromFile(writeTheme(t, t.TempDir(), "broken.toml", "name = ")); err == nil {
		t.Error("broken TOML should fail")
	}
}

func TestGetStyleFallsBackByPrefix(t *testing.T) {
	base := tcell.StyleDefault.Foreground(tcell.ColorRed)
	text := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	th := &Theme{Name: "t", Styles: map[string]tcell.Style{
		StyleDefault:   tcell.StyleDefault,
		StyleElement:   base,
		"Element.text": text,
	}}
	if th.ElementStyle("text") != text {
		t.Error("exact element style not used")
	}
	if th.ElementStyle("shape") != base {
		t.Error("element style should fall back to Element")
	}
	if (&Theme{Name: "empty"}).GetStyle("Anything") != tcell.StyleDefault {
		t.Error("empty theme should yield tcell default")
	}
}

func TestManagerFallbackAndSwitch(t *testing.T) {
	m := NewManager("", "does-not-exist")
	if m.Current().Name != PosterDark.Name {
		t.Errorf("fallback theme = %q", m.Current().Name)
	}
	if err := m.SetTheme("  poster light "); err != nil {
		t.Fatal(err)
	}
	if m.Current().Name != PosterLight.Name {
		t.Errorf("current = %q", m.Current().Name)
	}
	if err := m.SetTheme("nope"); err == nil {
		t.Error("unknown theme should fail")
	}
	if m.Current().Name != PosterLight.Name {
		t.Error("failed switch must keep the active theme")
	}
}

func TestManagerLoadsCustomThemes(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "ocean.toml", oceanTheme)
	writeTheme(t, dir, "notes.txt", "ignored")
	writeTheme(t, dir, "bad.toml", "= =")

	m := NewManager(dir, "ocean")
	if m.LoadError() != nil {
		t.Fatalf("load error: %v", m.LoadError())
	}
	if m.Current().Name != "Ocean" {
		t.Errorf("initial theme = %q", m.Current().Name)
	}
	if got := strings.Join(m.ListThemes(), ","); got != "Ocean,Poster Dark,Poster Light" {
		t.Errorf("themes = %s", got)
	}

	// A missing directory is not an error.
	if m := NewManager(filepath.Join(dir, "missing"), ""); m.LoadError() != nil {
		t.Errorf("missing dir: %v", m.LoadError())
	}
}

func TestElementColor(t *testing.T) {
	tests := []struct {
		in   string
		want tcell.Color
		ok   bool
	}{
		{"#ff0000", tcell.NewRGBColor(255, 0, 0), true},
		{" #00F ", tcell.NewRGBColor(0, 0, 255), true},
		{"transparent", tcell.ColorDefault, false},
		{"", tcell.ColorDefault, false},
		{"red", tcell.ColorDefault, false},
	}
	for _, tt := range tests {
		got, ok := ElementColor(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ElementColor(%q) = %v,%v want %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestContrastAndOnFill(t *testing.T) {
	if ContrastColor("#ffffff") != tcell.ColorBlack {
		t.Error("white fill needs black text")
	}
	if ContrastColor("#101010") != tcell.ColorWhite {
		t.Error("dark fill needs white text")
	}

	base := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if OnFill(base, "transparent") != base {
		t.Error("transparent fill must leave the style alone")
	}
	fg, bg, _ := OnFill(base, "#ffff00").Decompose()
	if bg != tcell.NewRGBColor(255, 255, 0) || fg != tcell.ColorBlack {
		t.Errorf("on yellow: fg=%v bg=%v", fg, bg)
	}
}

func TestLoadThemeElementRoles(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "print.toml", `
name = "Print"

[styles.Default]
fg = "black"

[styles.Element]
bg = "#eeeeee"

[styles."Element.shape"]
bg = "#ff00ff"

[styles."Element.sticker"]
bg = "#00ff00"

[styles.Toolbar]
fg = "red"
`)
	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, bg, _ := th.ElementStyle(element.TypeShape).Decompose(); bg != tcell.NewHexColor(0xff00ff) {
		t.Errorf("shape bg = %v", bg)
	}
	if _, bg, _ := th.ElementStyle(element.TypeImage).Decompose(); bg != tcell.NewHexColor(0xeeeeee) {
		t.Errorf("image should fall back to Element, bg = %v", bg)
	}
	for _, name := range []string{"Element.sticker", "Toolbar"} {
		if _, ok := th.Styles[name]; ok {
			t.Errorf("unknown role %q should be ignored", name)
		}
	}
	if !IsRole("Element.background") || IsRole("Element.") || IsRole("Element.sticker") {
		t.Error("IsRole does not match the element types")
	}
}
