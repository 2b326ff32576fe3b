// Package clipboard copies and pastes elements through an internal
// register and, optionally, the system clipboard.
package clipboard

import (
	"fmt"

	sysclip "github.com/atotto/clipboard"

	"github.com/bethropolis/flyer/internal/element"
	"github.com/bethropolis/flyer/internal/logger"
)

const logTag = "clipboard"

// Store is what the clipboard needs from the document.
type Store interface {
	SelectedElements() []element.Element
	AddElements(batch []element.Element) []string
}

// System is a text clipboard shared with other programs.
type System interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type osClipboard struct{}

func (osClipboard) ReadAll() (string, error)   { return sysclip.ReadAll() }
func (osClipboard) WriteAll(text string) error { return sysclip.WriteAll(text) }

// OSClipboard returns the platform clipboard.
func OSClipboard() System { return osClipboard{} }

// Options configures a Manager.
type Options struct {
	PasteOffset float64 // added to x and y of pasted elements
	System      System  // nil keeps copies inside the editor
}

// Manager handles copy, paste and duplicate of selected elements.
type Manager struct {
	store    Store
	register []byte
	system   System
	offset   float64
}

// NewManager creates a clipboard bound to store.
func NewManager(store Store, opts Options) *Manager {
	return &Manager{
		store:  store,
		system: opts.System,
		offset: opts.PasteOffset,
	}
}

// Copy stores the selected elements in paint order. It returns how many
// elements were copied; an empty selection copies nothing.
// A system clipboard failure is logged and does not fail the copy.
func (m *Manager) Copy() (int, error) {
	selected := m.store.SelectedElements()
	if len(selected) == 0 {
		return 0, nil
	}
	data, err := Encode(selected)
	if err != nil {
		return 0, fmt.Errorf("copy: %w", err)
	}
	m.register = data

	if m.system != nil {
		if err := m.system.WriteAll(string(data)); err != nil {
			logger.WarnTagf(logTag, "system clipboard write failed, kept internal copy: %v", err)
		}
	}
	logger.DebugTagf(logTag, "copied %d elements (%d bytes)", len(selected), len(data))
	return len(selected), nil
}

// Paste adds the clipboard contents, offset by the paste offset, as new
// elements with one checkpoint. The system clipboard wins when it holds
// an element payload; otherwise the internal register is used.
func (m *Manager) Paste() ([]string, error) {
	elements, err := m.contents()
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, nil
	}
	for i := range elements {
		elements[i].X += m.offset
		elements[i].Y += m.offset
	}
	ids := m.store.AddElements(elements)
	logger.DebugTagf(logTag, "pasted %d elements", len(ids))
	return ids, nil
}

// Duplicate copies the selection and pastes it straight back.
func (m *Manager) Duplicate() ([]string, error) {
	n, err := m.Copy()
	if err != nil || n == 0 {
		return nil, err
	}
	return m.Paste()
}

// HasContents reports whether the internal register holds anything.
func (m *Manager) HasContents() bool {
	return len(m.register) > 0
}

func (m *Manager) contents() ([]element.Element, error) {
	if m.system != nil {
		text, err := m.system.ReadAll()
		if err != nil {
			logger.WarnTagf(logTag, "system clipboard read failed, using internal copy: %v", err)
		} else if text != "" {
			if elements, err := Decode([]byte(text)); err == nil {
				return elements, nil
			}
			logger.DebugTagf(logTag, "system clipboard holds foreign text, using internal copy")
		}
	}
	if len(m.register) == 0 {
		return nil, nil
	}
	elements, err := Decode(m.register)
	if err != nil {
		return nil, fmt.Errorf("paste: %w", err)
	}
	return elements, nil
}
