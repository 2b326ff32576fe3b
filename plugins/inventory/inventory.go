// plugins/inventory/inventory.go
package inventory

import (
	"fmt"
	"strings"

	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/event"
	"github.com/bethropolis/flyer/internal/plugin"
)

var _ plugin.Plugin = (*Inventory)(nil)

// Inventory reports what is on the canvas and how much has been edited
// this session.
type Inventory struct {
	api   plugin.EditorAPI
	edits int // ElementsChanged events seen
}

// New creates a new instance of the Inventory plugin.
func New() *Inventory {
	return &Inventory{}
}

// Name returns the unique name of the plugin.
func (p *Inventory) Name() string {
	return "Inventory"
}

// Initialize registers :stats and starts counting document changes.
func (p *Inventory) Initialize(api plugin.EditorAPI) error {
	p.api = api
	api.SubscribeEvent(event.TypeElementsChanged, func(event.Event) bool {
		p.edits++
		return false
	})
	if err := api.RegisterCommand("stats", p.executeStats); err != nil {
		return fmt.Errorf("failed to register 'stats' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this plugin).
func (p *Inventory) Shutdown() error {
	return nil
}

// Summary formats the element counts per type, the selection size and
// the undo/redo flags.
func (p *Inventory) Summary() string {
	elements := p.api.Elements()
	counts := make(map[element.Type]int, len(element.Types))
	for _, e := range elements {
		counts[e.Type()]++
	}

	parts := make([]string, 0, len(element.Types))
	for _, t := range element.Types {
		parts = append(parts, fmt.Sprintf("%s %d", t, counts[t]))
	}
	return fmt.Sprintf("Elements: %d (%s) | Selected: %d | Changes: %d | Undo: %s Redo: %s",
		len(elements), strings.Join(parts, ", "), len(p.api.SelectedElementIDs()), p.edits,
		yesNo(p.api.CanUndo()), yesNo(p.api.CanRedo()))
}

func (p *Inventory) executeStats(args []string) error {
	if p.api == nil {
		return fmt.Errorf("inventory plugin not initialized with API")
	}
	p.api.SetStatusMessage("%s", p.Summary())
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
