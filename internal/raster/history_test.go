package raster

import (
	"image/color"
	"testing"
)

// stamp gives every recorded state a distinguishable pixel value.
func stamp(s *Surface, n int) {
	s.SetPixel(0, 0, color.NRGBA{R: uint8(n), A: 255})
}

func TestHistory_UndoRestoresEveryRecordedState(t *testing.T) {
	s := NewSurface(4, 4)
	h := NewHistory(DefaultHistoryDepth)

	original := s.Snapshot()
	const actions = 20
	for i := 1; i <= actions; i++ {
		h.Record(s.Snapshot())
		stamp(s, i)
	}

	for i := 0; i < actions; i++ {
		snap, ok := h.Undo(s.Snapshot())
		if !ok {
			t.Fatalf("undo %d reported empty history", i+1)
		}
		s.Restore(snap)
	}

	if !snapshotsEqual(original, s.Snapshot()) {
		t.Error("undoing every action did not restore the original buffer bit-for-bit")
	}
	if h.CanUndo() {
		t.Error("history still reports undo entries")
	}
}

func TestHistory_UndoRedoIsIdentity(t *testing.T) {
	s := NewSurface(4, 4)
	h := NewHistory(DefaultHistoryDepth)

	h.Record(s.Snapshot())
	stamp(s, 1)
	after := s.Snapshot()

	snap, ok := h.Undo(s.Snapshot())
	if !ok {
		t.Fatal("undo reported empty history")
	}
	s.Restore(snap)

	snap, ok = h.Redo(s.Snapshot())
	if !ok {
		t.Fatal("redo reported empty history")
	}
	s.Restore(snap)

	if !snapshotsEqual(after, s.Snapshot()) {
		t.Error("undo followed by redo changed the buffer contents")
	}
}

func TestHistory_RecordClearsRedo(t *testing.T) {
	s := NewSurface(4, 4)
	h := NewHistory(DefaultHistoryDepth)

	h.Record(s.Snapshot())
	stamp(s, 1)

	snap, _ := h.Undo(s.Snapshot())
	s.Restore(snap)
	if !h.CanRedo() {
		t.Fatal("expected a redo entry after undo")
	}

	h.Record(s.Snapshot())
	stamp(s, 2)

	if h.CanRedo() {
		t.Error("recording a new action left the redo stack populated")
	}
	if _, ok := h.Redo(s.Snapshot()); ok {
		t.Error("redo succeeded after a new action was recorded")
	}
}

func TestHistory_CapacityEvictsOldest(t *testing.T) {
	s := NewSurface(1, 1)
	h := NewHistory(DefaultHistoryDepth)

	// Record 51 states; the first must fall off the far end.
	for i := 0; i <= DefaultHistoryDepth; i++ {
		stamp(s, i)
		h.Record(s.Snapshot())
	}

	undos := 0
	for {
		snap, ok := h.Undo(s.Snapshot())
		if !ok {
			break
		}
		s.Restore(snap)
		undos++
	}

	if undos != DefaultHistoryDepth {
		t.Fatalf("performed %d undos, want %d", undos, DefaultHistoryDepth)
	}
	// The oldest surviving state is the second one recorded (i=1); the
	// i=0 state was evicted, not the newest.
	if got := s.At(0, 0).R; got != 1 {
		t.Errorf("deepest undo restored stamp %d, want 1 (oldest evicted first)", got)
	}
}

func TestHistory_EmptyIsNoop(t *testing.T) {
	s := NewSurface(2, 2)
	h := NewHistory(DefaultHistoryDepth)

	if _, ok := h.Undo(s.Snapshot()); ok {
		t.Error("undo on empty history reported success")
	}
	if _, ok := h.Redo(s.Snapshot()); ok {
		t.Error("redo on empty history reported success")
	}
}

func TestHistory_UndoneStatesComeBackInOrder(t *testing.T) {
	s := NewSurface(1, 1)
	h := NewHistory(DefaultHistoryDepth)

	for i := 1; i <= 3; i++ {
		h.Record(s.Snapshot())
		stamp(s, i)
	}
	for i := 0; i < 3; i++ {
		snap, _ := h.Undo(s.Snapshot())
		s.Restore(snap)
	}
	for want := 1; want <= 3; want++ {
		snap, ok := h.Redo(s.Snapshot())
		if !ok {
			t.Fatalf("redo %d reported empty history", want)
		}
		s.Restore(snap)
		if got := s.At(0, 0).R; got != uint8(want) {
			t.Errorf("redo %d restored stamp %d", want, got)
		}
	}
}
