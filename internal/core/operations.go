package core

import (
	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/logger"
)

// AddElement appends a copy of data under a fresh id, makes it the sole
// selection and checkpoints. Any id on data is ignored. An element without
// a property variant has no type and is rejected with "".
func (s *Store) AddElement(data element.Element) string {
	if data.Props == nil {
		logger.WarnTagf(logTag, "add: element without properties rejected")
		return ""
	}
	e := data.Clone()
	e.ID = s.freshID()
	s.elements = append(s.elements, e)
	s.selection.Select(e.ID)
	logger.DebugTagf(logTag, "add %s %s", e.Type(), e.ID)

	s.emitElements("add", e.ID)
	s.emitSelection()
	s.SaveToHistory()
	return e.ID
}

// AddElements appends copies of batch under fresh ids, selects all of them
// and checkpoints once. Entries without properties are dropped. A
// background entry replaces the document's background and goes to the
// bottom at full canvas size; when the batch holds several, the last wins.
// An empty batch is a no-op.
func (s *Store) AddElements(batch []element.Element) []string {
	ids := make([]string, 0, len(batch))
	var bg *element.Element
	for _, data := range batch {
		if data.Props == nil {
			logger.WarnTagf(logTag, "add: element without properties dropped")
			continue
		}
		e := data.Clone()
		e.ID = s.freshID()
		if e.Type() == element.TypeBackground {
			bg = &e
			continue
		}
		s.elements = append(s.elements, e)
		ids = append(ids, e.ID)
	}
	if bg != nil {
		s.placeBackground(*bg)
		ids = append([]string{bg.ID}, ids...)
	}
	if len(ids) == 0 {
		return nil
	}
	s.selection.SelectMany(ids)
	logger.DebugTagf(logTag, "add %d elements", len(ids))

	s.emitElements("add", ids...)
	s.emitSelection()
	s.SaveToHistory()
	return ids
}

// UpdateElement shallow-merges patch into the element with id. A Props
// value replaces the variant wholesale and must be of the element's type.
// It does not checkpoint. It reports whether an element was changed.
func (s *Store) UpdateElement(id string, patch element.Patch) bool {
	i := s.indexOf(id)
	if i < 0 {
		logger.DebugTagf(logTag, "update: no element %q", id)
		return false
	}
	if patch.IsEmpty() {
		return false
	}
	if patch.Props != nil && patch.Props.Kind() != s.elements[i].Type() {
		logger.WarnTagf(logTag, "update %s: %s properties on a %s element ignored", id, patch.Props.Kind(), s.elements[i].Type())
		patch.Props = nil
		if patch.IsEmpty() {
			return false
		}
	}
	patch.Apply(&s.elements[i])
	s.emitElements("update", id)
	return true
}

// MoveElement sets the element's position without checkpointing.
func (s *Store) MoveElement(id string, x, y float64) bool {
	return s.updateGeometry("move", id, element.Patch{X: &x, Y: &y})
}

// ResizeElement sets the element's size without checkpointing.
func (s *Store) ResizeElement(id string, width, height float64) bool {
	return s.updateGeometry("resize", id, element.Patch{Width: &width, Height: &height})
}

// RotateElement sets the element's rotation in degrees without checkpointing.
func (s *Store) RotateElement(id string, degrees float64) bool {
	return s.updateGeometry("rotate", id, element.Patch{Rotation: &degrees})
}

func (s *Store) updateGeometry(op, id string, patch element.Patch) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	patch.Apply(&s.elements[i])
	s.emitElements(op, id)
	return true
}

// DeleteElement removes the element, drops it from the selection and
// checkpoints. Unknown ids are a no-op.
func (s *Store) DeleteElement(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		logger.DebugTagf(logTag, "delete: no element %q", id)
		return false
	}
	s.elements = append(s.elements[:i:i], s.elements[i+1:]...)
	wasSelected := s.selection.IsSelected(id)
	s.selection.Remove(id)
	logger.DebugTagf(logTag, "delete %s", id)

	s.emitElements("delete", id)
	if wasSelected {
		s.emitSelection()
	}
	s.SaveToHistory()
	return true
}

// SelectElement sets the single selection. An empty id clears all
// selection; an unknown id is ignored.
func (s *Store) SelectElement(id string) {
	if id != "" && !s.exists(id) {
		logger.DebugTagf(logTag, "select: no element %q", id)
		return
	}
	s.selection.Select(id)
	s.emitSelection()
}

// SelectMultipleElements replaces the multi-selection with the ids that
// exist. Exactly one id collapses to single selection.
func (s *Store) SelectMultipleElements(ids []string) {
	known := make([]string, 0, len(ids))
	for _, id := range ids {
		if s.exists(id) {
			known = append(known, id)
		}
	}
	s.selection.SelectMany(known)
	s.emitSelection()
}

// ToggleElementSelection adds id to the multi-selection or removes it.
func (s *Store) ToggleElementSelection(id string) {
	if !s.exists(id) {
		return
	}
	s.selection.Toggle(id)
	s.emitSelection()
}

// SelectAll selects every element in paint order.
func (s *Store) SelectAll() {
	ids := make([]string, len(s.elements))
	for i, e := range s.elements {
		ids[i] = e.ID
	}
	s.selection.SelectMany(ids)
	s.emitSelection()
}

// BringForward swaps the element with its neighbour above it. At the top
// it is a no-op and no checkpoint is taken.
func (s *Store) BringForward(id string) bool {
	i := s.indexOf(id)
	if i < 0 || i == len(s.elements)-1 {
		return false
	}
	return s.swap(i, i+1, "forward")
}

// SendBackward swaps the element with its neighbour below it. At the
// bottom it is a no-op and no checkpoint is taken.
func (s *Store) SendBackward(id string) bool {
	i := s.indexOf(id)
	if i <= 0 {
		return false
	}
	return s.swap(i, i-1, "backward")
}

func (s *Store) swap(i, j int, op string) bool {
	s.elements[i], s.elements[j] = s.elements[j], s.elements[i]
	logger.DebugTagf(logTag, "%s %s: %d -> %d", op, s.elements[j].ID, i, j)
	s.emitElements(op, s.elements[j].ID)
	s.SaveToHistory()
	return true
}

// ClearCanvas removes every element and the selection, then checkpoints.
func (s *Store) ClearCanvas() {
	s.elements = []element.Element{}
	s.selection.Clear()
	logger.DebugTagf(logTag, "clear")

	s.emitElements("clear")
	s.emitSelection()
	s.SaveToHistory()
}

// SetBackground replaces any background elements with a single
// full-canvas background at the bottom of the paint order. The new
// background becomes the selection. One checkpoint is taken.
func (s *Store) SetBackground(props element.BackgroundProps) string {
	bg := element.NewBackground(props, s.canvas)
	bg.ID = s.freshID()
	s.placeBackground(bg)
	s.selection.Select(bg.ID)
	logger.DebugTagf(logTag, "background %s", bg.ID)

	s.emitElements("background", bg.ID)
	s.emitSelection()
	s.SaveToHistory()
	return bg.ID
}

// placeBackground drops every existing background and inserts bg at the
// bottom of the paint order, stretched over the whole canvas.
func (s *Store) placeBackground(bg element.Element) {
	kept := s.elements[:0:0]
	for _, e := range s.elements {
		if e.Type() != element.TypeBackground {
			kept = append(kept, e)
		}
	}
	bg.X, bg.Y = 0, 0
	bg.Width, bg.Height = s.canvas.Width, s.canvas.Height
	bg.ZIndex = -1
	s.elements = append([]element.Element{bg}, kept...)
	s.selection.Retain(s.exists)
}

// SaveToHistory checkpoints the live element list and clears redo.
func (s *Store) SaveToHistory() {
	s.history.Checkpoint(s.elements)
	s.emitHistory()
}

// Undo restores the previous checkpoint. It reports false at the start of
// history.
func (s *Store) Undo() bool {
	snapshot, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.restore("undo", snapshot)
	return true
}

// Redo re-applies the next undone checkpoint. It reports false when there
// is nothing to redo.
func (s *Store) Redo() bool {
	snapshot, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.restore("redo", snapshot)
	return true
}

func (s *Store) restore(op string, snapshot []element.Element) {
	s.elements = snapshot
	logger.DebugTagf(logTag, "%s: %d elements", op, len(snapshot))
	s.emitElements(op)
	if s.selection.Retain(s.exists) {
		s.emitSelection()
	}
	s.emitHistory()
}
