// Package commands registers the built-in ":" commands.
package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/logger"
	"github.com/bethropolis/flyer/internal/plugin"
	"github.com/bethropolis/flyer/internal/theme"
	"github.com/bethropolis/flyer/internal/types"
)

// DocumentAPI is the part of the document store the commands drive.
type DocumentAPI interface {
	AddElement(data element.Element) string
	SetBackground(props element.BackgroundProps) string
	ClearCanvas()
	SelectAll()
	Undo() bool
	Redo() bool
	AlignElementsHorizontally(mode types.HAlign) bool
	AlignElementsVertically(mode types.VAlign) bool

	Canvas() types.Size
	Element(id string) (element.Element, bool)
	SelectedElementID() string
	UpdateElement(id string, patch element.Patch) bool
	SaveToHistory()
}

// RegisterAppCommands registers the document commands, the theme
// commands and :q. quit is called by :q.
func RegisterAppCommands(api plugin.EditorAPI, doc DocumentAPI, themeAPI ThemeAPI, quit func()) {
	RegisterDocumentCommands(api, doc)
	RegisterStyleCommands(api, doc)
	RegisterThemeCommands(api, themeAPI)

	register(api, "q", func(args []string) error {
		quit()
		return nil
	})
}

// RegisterDocumentCommands registers the commands that edit the poster.
func RegisterDocumentCommands(api plugin.EditorAPI, doc DocumentAPI) {
	register(api, "alignh", func(args []string) error {
		mode, ok := types.ParseHAlign(firstArg(args))
		if !ok {
			return fmt.Errorf("usage: alignh left|center|right")
		}
		if !doc.AlignElementsHorizontally(mode) {
			api.SetStatusMessage("Select at least two elements to align")
			return nil
		}
		api.SetStatusMessage("Aligned %s", mode)
		return nil
	})

	register(api, "alignv", func(args []string) error {
		mode, ok := types.ParseVAlign(firstArg(args))
		if !ok {
			return fmt.Errorf("usage: alignv top|center|bottom")
		}
		if !doc.AlignElementsVertically(mode) {
			api.SetStatusMessage("Select at least two elements to align")
			return nil
		}
		api.SetStatusMessage("Aligned %s", mode)
		return nil
	})

	register(api, "clear", func(args []string) error {
		doc.ClearCanvas()
		api.SetStatusMessage("Canvas cleared")
		return nil
	})

	register(api, "text", func(args []string) error {
		text := strings.Join(args, " ")
		if text == "" {
			return fmt.Errorf("usage: text <words>")
		}
		id := doc.AddElement(element.NewText(text))
		api.SetStatusMessage("Added text %s", id)
		return nil
	})

	register(api, "image", func(args []string) error {
		url := firstArg(args)
		if url == "" {
			return fmt.Errorf("usage: image <url>")
		}
		id := doc.AddElement(element.NewImage(url))
		api.SetStatusMessage("Added image %s", id)
		return nil
	})

	register(api, "bg", func(args []string) error {
		color := firstArg(args)
		if _, ok := theme.ElementColor(color); !ok {
			return fmt.Errorf("usage: bg <#rrggbb>")
		}
		doc.SetBackground(element.BackgroundProps{Color: color})
		api.SetStatusMessage("Background set to %s", color)
		return nil
	})

	register(api, "bgimage", func(args []string) error {
		url := firstArg(args)
		if url == "" {
			return fmt.Errorf("usage: bgimage <url>")
		}
		doc.SetBackground(element.BackgroundProps{ImageURL: url})
		api.SetStatusMessage("Background image set")
		return nil
	})

	register(api, "selectall", func(args []string) error {
		doc.SelectAll()
		return nil
	})

	register(api, "undo", func(args []string) error {
		if !doc.Undo() {
			api.SetStatusMessage("Nothing to undo")
		}
		return nil
	})

	register(api, "redo", func(args []string) error {
		if !doc.Redo() {
			api.SetStatusMessage("Nothing to redo")
		}
		return nil
	})
}

// RegisterThemeCommands registers only theme-related commands.
func RegisterThemeCommands(api plugin.EditorAPI, themeAPI ThemeAPI) {
	register(api, "theme", func(args []string) error {
		if len(args) == 0 {
			themeAPI.SetStatusMessage("Current theme: %s", themeAPI.GetTheme().Name)
			return nil
		}

		themeName := strings.Join(args, " ") // theme names may contain spaces
		if err := themeAPI.SetTheme(themeName); err != nil {
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, strings.Join(themeAPI.ListThemes(), ", "))
		}
		themeAPI.SetStatusMessage("Theme set to: %s", themeName)
		return nil
	})

	register(api, "themes", func(args []string) error {
		themeAPI.SetStatusMessage("Available themes: %s", strings.Join(themeAPI.ListThemes(), ", "))
		return nil
	})
}

func register(api plugin.EditorAPI, name string, fn plugin.CommandFunc) {
	if err := api.RegisterCommand(name, fn); err != nil {
		logger.Warnf("Failed to register ':%s' command: %v", name, err)
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
