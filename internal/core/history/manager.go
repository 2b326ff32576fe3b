// Package history keeps the linear undo/redo log of element-list snapshots.
package history

import (
	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/logger"
)

const logTag = "history"

// Manager holds past, present and future snapshots of the element list.
// Every snapshot is a deep copy owned by the manager.
type Manager struct {
	past     [][]element.Element // oldest first
	present  []element.Element
	future   [][]element.Element // nearest undo first
	maxDepth int                 // 0 = unbounded
}

// NewManager creates a history whose present is a copy of initial.
// maxDepth limits the number of past snapshots kept; 0 or less keeps all.
func NewManager(initial []element.Element, maxDepth int) *Manager {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &Manager{
		present:  element.CloneAll(initial),
		maxDepth: maxDepth,
	}
}

// Checkpoint pushes the current present onto past, records live as the new
// present and invalidates any redo.
func (m *Manager) Checkpoint(live []element.Element) {
	m.past = append(m.past, m.present)
	m.present = element.CloneAll(live)
	m.future = nil

	if m.maxDepth > 0 && len(m.past) > m.maxDepth {
		dropped := len(m.past) - m.maxDepth
		m.past = append([][]element.Element(nil), m.past[dropped:]...)
		logger.DebugTagf(logTag, "dropped %d oldest snapshot(s)", dropped)
	}
	logger.DebugTagf(logTag, "checkpoint: past=%d present=%d elements", len(m.past), len(m.present))
}

// Undo steps back one snapshot. It returns a copy of the snapshot that
// becomes live, or false when there is nothing to undo.
func (m *Manager) Undo() ([]element.Element, bool) {
	if len(m.past) == 0 {
		logger.DebugTagf(logTag, "nothing to undo")
		return nil, false
	}
	previous := m.past[len(m.past)-1]
	m.past = m.past[:len(m.past)-1]
	m.future = append([][]element.Element{m.present}, m.future...)
	m.present = previous
	logger.DebugTagf(logTag, "undo: past=%d future=%d", len(m.past), len(m.future))
	return element.CloneAll(previous), true
}

// Redo re-applies the nearest undone snapshot.
func (m *Manager) Redo() ([]element.Element, bool) {
	if len(m.future) == 0 {
		logger.DebugTagf(logTag, "nothing to redo")
		return nil, false
	}
	next := m.future[0]
	m.future = m.future[1:]
	m.past = append(m.past, m.present)
	m.present = next
	logger.DebugTagf(logTag, "redo: past=%d future=%d", len(m.past), len(m.future))
	return element.CloneAll(next), true
}

// Reset discards all history and records live as the present.
func (m *Manager) Reset(live []element.Element) {
	m.past = nil
	m.future = nil
	m.present = element.CloneAll(live)
	logger.DebugTagf(logTag, "reset")
}

// CanUndo reports whether a past snapshot exists.
func (m *Manager) CanUndo() bool { return len(m.past) > 0 }

// CanRedo reports whether an undone snapshot exists.
func (m *Manager) CanRedo() bool { return len(m.future) > 0 }

// Past returns copies of the past snapshots, oldest first.
func (m *Manager) Past() [][]element.Element { return cloneStack(m.past) }

// Present returns a copy of the present snapshot.
func (m *Manager) Present() []element.Element { return element.CloneAll(m.present) }

// Future returns copies of the undone snapshots, nearest first.
func (m *Manager) Future() [][]element.Element { return cloneStack(m.future) }

// MaxDepth returns the configured past limit (0 = unbounded).
func (m *Manager) MaxDepth() int { return m.maxDepth }

func cloneStack(stack [][]element.Element) [][]element.Element {
	out := make([][]element.Element, len(stack))
	for i, snap := range stack {
		out[i] = element.CloneAll(snap)
	}
	return out
}
