package core

import (
	"github.com/bethropolis/flyer/internal/logger"
	"github.com/bethropolis/flyer/internal/types"
)

// AlignElementsHorizontally moves each selected element so its box touches
// the canvas's left or right edge, or is centred across it. Fewer than two
// selected elements is a no-op. One checkpoint covers all moves.
func (s *Store) AlignElementsHorizontally(mode types.HAlign) bool {
	return s.align("align-h", func(i int) {
		e := &s.elements[i]
		switch mode {
		case types.AlignLeft:
			e.X = 0
		case types.AlignHCenter:
			e.X = (s.canvas.Width - e.Width) / 2
		case types.AlignRight:
			e.X = s.canvas.Width - e.Width
		}
	}, mode.Valid())
}

// AlignElementsVertically is the vertical counterpart of
// AlignElementsHorizontally.
func (s *Store) AlignElementsVertically(mode types.VAlign) bool {
	return s.align("align-v", func(i int) {
		e := &s.elements[i]
		switch mode {
		case types.AlignTop:
			e.Y = 0
		case types.AlignVCenter:
			e.Y = (s.canvas.Height - e.Height) / 2
		case types.AlignBottom:
			e.Y = s.canvas.Height - e.Height
		}
	}, mode.Valid())
}

func (s *Store) align(op string, place func(i int), valid bool) bool {
	if !valid {
		logger.WarnTagf(logTag, "%s: unknown mode", op)
		return false
	}
	if s.selection.Len() <= 1 {
		logger.DebugTagf(logTag, "%s: needs at least two selected elements", op)
		return false
	}
	var moved []string
	for i := range s.elements {
		if s.selection.IsSelected(s.elements[i].ID) {
			place(i)
			moved = append(moved, s.elements[i].ID)
		}
	}
	logger.DebugTagf(logTag, "%s: %d elements", op, len(moved))
	s.emitElements(op, moved...)
	s.SaveToHistory()
	return true
}
