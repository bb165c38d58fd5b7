package raster

// DefaultHistoryDepth is how many undo steps the editor keeps.
const DefaultHistoryDepth = 50

// Snapshot is an immutable deep copy of a surface's contents. It is safe to
// hold across later mutations of the live buffer.
type Snapshot struct {
	width  int
	height int
	pix    []uint8
}

// Snapshot copies the current buffer contents.
func (s *Surface) Snapshot() Snapshot {
	pix := make([]uint8, len(s.img.Pix))
	copy(pix, s.img.Pix)
	return Snapshot{width: s.Width(), height: s.Height(), pix: pix}
}

// Restore replaces the buffer contents with the snapshot, resizing the
// surface if the snapshot was taken at different dimensions.
func (s *Surface) Restore(snap Snapshot) {
	if snap.pix == nil {
		return
	}
	if snap.width != s.Width() || snap.height != s.Height() {
		*s = *NewSurface(snap.width, snap.height)
	}
	copy(s.img.Pix, snap.pix)
}

// History holds the undo and redo snapshot stacks. The undo stack is bounded:
// past the depth limit the oldest entry is evicted, so a long session keeps
// the most recent states. The redo stack is cleared whenever a new action is
// recorded.
type History struct {
	undo  []Snapshot
	redo  []Snapshot
	depth int
}

// NewHistory returns a history keeping at most depth undo steps.
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Record pushes the pre-action snapshot onto the undo stack. Callers must
// record before mutating the surface so that undo restores the state
// immediately preceding the action.
func (h *History) Record(current Snapshot) {
	h.undo = append(h.undo, current)
	if len(h.undo) > h.depth {
		excess := len(h.undo) - h.depth
		h.undo = append(h.undo[:0:0], h.undo[excess:]...)
	}
	h.redo = nil
}

// Undo swaps the current snapshot for the most recent undo entry. The second
// return is false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	last := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return last, true
}

// Redo swaps the current snapshot for the most recent redo entry. The second
// return is false when there is nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return next, true
}

// CanUndo reports whether an undo entry is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo entry is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
