package editor

import (
	"bytes"
	"image"

	"github.com/google/uuid"

	"GoPencil/internal/raster"
)

const (
	// DefaultWidth and DefaultHeight size a fresh canvas.
	DefaultWidth  = 1000
	DefaultHeight = 600

	// The eraser paints the background color with a wider brush.
	eraserWidthFactor = 3
)

// Editor wires a raster surface to the undo/redo history and translates
// pointer gestures into drawing operations. It is single-threaded: all
// methods must be called from one goroutine (the UI event loop).
type Editor struct {
	sessionID string
	surface   *raster.Surface
	history   *raster.History

	anchor image.Point // pointer-down position of the current gesture
	last   image.Point // previous motion sample
	active bool
}

// New returns an editor with a white canvas of the given size.
func New(width, height int) *Editor {
	return &Editor{
		sessionID: uuid.NewString(),
		surface:   raster.NewSurface(width, height),
		history:   raster.NewHistory(raster.DefaultHistoryDepth),
	}
}

// SessionID uniquely names this document session. The UI uses it for the
// window title and the default file name of an unsaved document.
func (e *Editor) SessionID() string { return e.sessionID }

// DocumentName is a short human-readable name derived from the session ID.
func (e *Editor) DocumentName() string { return "untitled-" + e.sessionID[:8] }

// Buffer exposes the live pixel buffer for rendering. Callers must not
// mutate it.
func (e *Editor) Buffer() *image.NRGBA { return e.surface.Image() }

func (e *Editor) Width() int  { return e.surface.Width() }
func (e *Editor) Height() int { return e.surface.Height() }

// PointerDown starts a gesture. The pre-action snapshot is recorded before
// any pixel changes so that undo restores the state immediately preceding
// this action. The bucket tool fills right away; the other tools only anchor
// the gesture here.
func (e *Editor) PointerDown(p image.Point, ts ToolState) {
	e.history.Record(e.surface.Snapshot())
	e.anchor = p
	e.last = p
	e.active = true

	if ts.Tool == ToolBucket {
		e.surface.FloodFill(p, ts.Color, raster.DefaultFillTolerance)
	}
}

// PointerMove extends a pen or eraser stroke by one motion sample. Shape
// tools draw nothing until PointerUp.
func (e *Editor) PointerMove(p image.Point, ts ToolState) {
	if !e.active {
		return
	}
	switch ts.Tool {
	case ToolPen:
		e.surface.DrawStroke(e.last, p, ts.Color, ts.Width, true)
	case ToolEraser:
		e.surface.DrawStroke(e.last, p, raster.White, ts.Width*eraserWidthFactor, true)
	}
	e.last = p
}

// PointerUp finishes the gesture. Shape tools stamp their primitive between
// the pointer-down anchor and the release point.
func (e *Editor) PointerUp(p image.Point, ts ToolState) {
	if !e.active {
		return
	}
	e.active = false

	switch ts.Tool {
	case ToolLine:
		e.surface.DrawShape(raster.ShapeLine, e.anchor, p, ts.Color, ts.Width)
	case ToolRectangle:
		e.surface.DrawShape(raster.ShapeRectangle, e.anchor, p, ts.Color, ts.Width)
	case ToolEllipse:
		e.surface.DrawShape(raster.ShapeEllipse, e.anchor, p, ts.Color, ts.Width)
	}
}

// Undo restores the state before the most recent recorded action. It reports
// false, leaving the buffer unchanged, when there is nothing to undo.
func (e *Editor) Undo() bool {
	snap, ok := e.history.Undo(e.surface.Snapshot())
	if !ok {
		return false
	}
	e.surface.Restore(snap)
	return true
}

// Redo reapplies the most recently undone action. It reports false when
// there is nothing to redo.
func (e *Editor) Redo() bool {
	snap, ok := e.history.Redo(e.surface.Snapshot())
	if !ok {
		return false
	}
	e.surface.Restore(snap)
	return true
}

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Clear records the current state and whitens the canvas.
func (e *Editor) Clear() {
	e.history.Record(e.surface.Snapshot())
	e.surface.Clear()
}

// Resize grows or shrinks the canvas, keeping content anchored top-left.
// Resizes are not recorded in history, matching toolbars that resize with
// the window.
func (e *Editor) Resize(width, height int) {
	e.surface.Resize(width, height)
}

// LoadFrom decodes PNG, JPEG or BMP data and places it on a fresh white
// canvas, scaled down to fit while keeping its aspect ratio. On decode
// failure the error is returned and the canvas is left untouched.
func (e *Editor) LoadFrom(data []byte) error {
	img, err := raster.Decode(data)
	if err != nil {
		return err
	}
	e.history.Record(e.surface.Snapshot())
	fitted := raster.FitToCanvas(img, e.Width(), e.Height())
	e.surface.Clear()
	e.surface.DrawImage(fitted, image.Point{})
	return nil
}

// SaveTo encodes the canvas in the given format.
func (e *Editor) SaveTo(format raster.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := raster.Encode(&buf, e.surface.Image(), format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
