// Package core owns the poster document: the ordered element list, the
// selection and the undo/redo history. All mutation flows through Store.
package core

import (
	"slices"

	"github.com/google/uuid"

	"github.com/bethropolis/flyer/internal/config"
	"github.com/bethropolis/flyer/internal/core/history"
	"github.com/bethropolis/flyer/internal/core/selection"
	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/event"
	"github.com/bethropolis/flyer/internal/logger"
	"github.com/bethropolis/flyer/internal/types"
)

const logTag = "store"

// Store is the document state. It is not safe for concurrent use; callers
// apply operations from a single goroutine, in input order.
type Store struct {
	// elements is ordered back to front. Paint order is this order,
	// never ZIndex.
	elements  []element.Element
	selection *selection.Manager
	history   *history.Manager
	canvas    types.Size

	eventManager *event.Manager
	newID        func() string
}

// Options configures a new Store.
type Options struct {
	Canvas     types.Size        // zero uses the default poster size
	MaxHistory int               // past snapshots kept; 0 = unbounded
	Elements   []element.Element // initial document, copied
	Events     *event.Manager    // optional
	NewID      func() string     // optional id generator, defaults to random UUIDs
}

// HistoryView is a read-only copy of the history stacks.
type HistoryView struct {
	Past    [][]element.Element
	Present []element.Element
	Future  [][]element.Element
}

// NewStore creates a document from opts.
func NewStore(opts Options) *Store {
	canvas := opts.Canvas
	if canvas.Width <= 0 || canvas.Height <= 0 {
		canvas = types.Size{Width: config.DefaultCanvasWidth, Height: config.DefaultCanvasHeight}
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	elements := element.CloneAll(slices.DeleteFunc(slices.Clone(opts.Elements), func(e element.Element) bool {
		return e.Props == nil
	}))
	s := &Store{
		elements:     elements,
		selection:    selection.NewManager(),
		history:      history.NewManager(elements, opts.MaxHistory),
		canvas:       canvas,
		eventManager: opts.Events,
		newID:        newID,
	}
	logger.DebugTagf(logTag, "new store: %d elements, canvas %.1fx%.1f", len(elements), canvas.Width, canvas.Height)
	return s
}

// NewDemoStore creates a store pre-populated with the starter document.
func NewDemoStore(opts Options) *Store {
	canvas := opts.Canvas
	if canvas.Width <= 0 || canvas.Height <= 0 {
		canvas = types.Size{Width: config.DefaultCanvasWidth, Height: config.DefaultCanvasHeight}
	}
	opts.Canvas = canvas
	opts.Elements = element.Demo(canvas)
	return NewStore(opts)
}

// SetEventManager attaches the bus that receives change notifications.
func (s *Store) SetEventManager(mgr *event.Manager) {
	s.eventManager = mgr
}

// GetEventManager returns the attached event bus, possibly nil.
func (s *Store) GetEventManager() *event.Manager {
	return s.eventManager
}

// Canvas returns the fixed canvas size.
func (s *Store) Canvas() types.Size { return s.canvas }

// Elements returns a deep copy of the element list in paint order.
func (s *Store) Elements() []element.Element { return element.CloneAll(s.elements) }

// Len returns the number of elements.
func (s *Store) Len() int { return len(s.elements) }

// Element returns a copy of the element with id.
func (s *Store) Element(id string) (element.Element, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.elements[i].Clone(), true
	}
	return element.Element{}, false
}

// IndexOf returns the paint-order position of id, or -1.
func (s *Store) IndexOf(id string) int { return s.indexOf(id) }

// SelectedElementID returns the single selection, "" when none.
func (s *Store) SelectedElementID() string { return s.selection.Single() }

// SelectedElementIDs returns the multi-selection in selection order.
func (s *Store) SelectedElementIDs() []string { return s.selection.Multi() }

// IsSelected reports whether id is selected.
func (s *Store) IsSelected(id string) bool { return s.selection.IsSelected(id) }

// SelectedElements returns copies of the selected elements in paint order.
func (s *Store) SelectedElements() []element.Element {
	var out []element.Element
	for _, e := range s.elements {
		if s.selection.IsSelected(e.ID) {
			out = append(out, e.Clone())
		}
	}
	return out
}

// CanUndo reports whether undo would change anything.
func (s *Store) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether redo would change anything.
func (s *Store) CanRedo() bool { return s.history.CanRedo() }

// History returns a copy of the history stacks.
func (s *Store) History() HistoryView {
	return HistoryView{
		Past:    s.history.Past(),
		Present: s.history.Present(),
		Future:  s.history.Future(),
	}
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.elements {
		if s.elements[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) exists(id string) bool { return s.indexOf(id) >= 0 }

// maxIDDraws bounds how often an injected generator may repeat itself
// before freshID switches to random UUIDs.
const maxIDDraws = 16

// freshID draws ids until one is unused in the document.
func (s *Store) freshID() string {
	gen := s.newID
	for draws := 1; ; draws++ {
		id := gen()
		if id != "" && !s.exists(id) {
			return id
		}
		logger.WarnTagf(logTag, "id collision on %q, drawing again", id)
		if draws == maxIDDraws {
			logger.WarnTagf(logTag, "id generator keeps colliding, using random ids")
			gen = uuid.NewString
		}
	}
}

// --- event helpers ---

func (s *Store) emitElements(op string, ids ...string) {
	s.eventManager.Dispatch(event.TypeElementsChanged, event.ElementsChangedData{Op: op, IDs: ids})
}

func (s *Store) emitSelection() {
	s.eventManager.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{
		Single: s.selection.Single(),
		Multi:  s.selection.Multi(),
	})
}

func (s *Store) emitHistory() {
	s.eventManager.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		CanUndo: s.history.CanUndo(),
		CanRedo: s.history.CanRedo(),
	})
}
