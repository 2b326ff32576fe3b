// Package selection tracks which elements the user is targeting.
package selection

import (
	"slices"

	"github.com/bethropolis/flyer/internal/logger"
)

const logTag = "selection"

// Manager keeps the single and multi selection views consistent:
// single is set exactly when multi holds one id, and is also set
// (alongside multi) after a plain Select.
type Manager struct {
	single string   // "" = none
	multi  []string // selection order
}

// NewManager returns an empty selection.
func NewManager() *Manager {
	return &Manager{}
}

// Select makes id the sole selection. An empty id clears everything.
func (m *Manager) Select(id string) {
	if id == "" {
		m.Clear()
		return
	}
	m.single = id
	m.multi = []string{id}
	logger.DebugTagf(logTag, "select %s", id)
}

// SelectMany replaces the multi-selection. Duplicates are dropped and
// order is kept. One id collapses to single selection; none clears.
func (m *Manager) SelectMany(ids []string) {
	m.multi = dedupe(ids)
	m.sync()
	logger.DebugTagf(logTag, "select many: %d ids", len(m.multi))
}

// Toggle adds id to the multi-selection or removes it if present.
func (m *Manager) Toggle(id string) {
	if id == "" {
		return
	}
	if i := slices.Index(m.multi, id); i >= 0 {
		m.multi = slices.Delete(slices.Clone(m.multi), i, i+1)
	} else {
		m.multi = append(slices.Clone(m.multi), id)
	}
	m.sync()
	logger.DebugTagf(logTag, "toggle %s: %d selected", id, len(m.multi))
}

// Remove drops id from both views.
func (m *Manager) Remove(id string) {
	if i := slices.Index(m.multi, id); i >= 0 {
		m.multi = slices.Delete(slices.Clone(m.multi), i, i+1)
	}
	if m.single == id {
		m.single = ""
	}
	m.sync()
}

// Clear empties the selection.
func (m *Manager) Clear() {
	if m.single != "" || len(m.multi) > 0 {
		logger.DebugTagf(logTag, "cleared")
	}
	m.single = ""
	m.multi = nil
}

// Retain drops every id for which exists returns false.
// It reports whether anything was removed.
func (m *Manager) Retain(exists func(id string) bool) bool {
	before := len(m.multi)
	hadSingle := m.single
	m.multi = slices.DeleteFunc(slices.Clone(m.multi), func(id string) bool { return !exists(id) })
	if m.single != "" && !exists(m.single) {
		m.single = ""
	}
	m.sync()
	changed := len(m.multi) != before || m.single != hadSingle
	if changed {
		logger.DebugTagf(logTag, "pruned to %d ids", len(m.multi))
	}
	return changed
}

// Single returns the single-selected id, or "" if none.
func (m *Manager) Single() string { return m.single }

// Multi returns a copy of the multi-selection in selection order.
func (m *Manager) Multi() []string { return slices.Clone(m.multi) }

// Len returns the number of selected ids.
func (m *Manager) Len() int { return len(m.multi) }

// IsSelected reports whether id is in the selection.
func (m *Manager) IsSelected(id string) bool {
	return id != "" && (m.single == id || slices.Contains(m.multi, id))
}

// sync derives single from multi.
func (m *Manager) sync() {
	switch len(m.multi) {
	case 0:
		m.multi = nil
		m.single = ""
	case 1:
		m.single = m.multi[0]
	default:
		m.single = ""
	}
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
