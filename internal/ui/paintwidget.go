package ui

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"GoPencil/internal/editor"
	"GoPencil/internal/raster"
)

// PaintWidget renders the editor's pixel buffer and feeds pointer events
// into it. The mutex guards the editor against the render callback running
// while an event handler is mutating the buffer.
type PaintWidget struct {
	widget.BaseWidget
	mu     sync.RWMutex
	editor *editor.Editor
	tools  editor.ToolState

	OnStatus func(text string)
}

var _ fyne.Widget = (*PaintWidget)(nil)
var _ fyne.Draggable = (*PaintWidget)(nil)
var _ desktop.Mouseable = (*PaintWidget)(nil)
var _ desktop.Hoverable = (*PaintWidget)(nil)

func NewPaintWidget(ed *editor.Editor) *PaintWidget {
	p := &PaintWidget{
		editor: ed,
		tools: editor.ToolState{
			Tool:  editor.ToolPen,
			Color: color.NRGBA{A: 255},
			Width: 4,
		},
	}
	p.ExtendBaseWidget(p)
	return p
}

func (p *PaintWidget) Editor() *editor.Editor { return p.editor }

// Snapshot returns a copy of the current canvas for export.
func (p *PaintWidget) Snapshot() image.Image {
	p.mu.RLock()
	defer p.mu.RUnlock()
	src := p.editor.Buffer()
	dst := image.NewNRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

func (p *PaintWidget) SetStatus(text string) {
	if p.OnStatus != nil {
		p.OnStatus(text)
	}
}

func (p *PaintWidget) SetTool(t editor.Tool) {
	p.tools.Tool = t
	p.SetStatus("Tool: " + t.String())
}

func (p *PaintWidget) SetColor(c color.NRGBA) {
	p.tools.Color = c
	p.SetStatus(fmt.Sprintf("Color: #%02x%02x%02x", c.R, c.G, c.B))
}

func (p *PaintWidget) SetWidth(w int) {
	p.tools.Width = w
	p.SetStatus(fmt.Sprintf("Brush Size: %d", w))
}

func (p *PaintWidget) Undo() {
	p.mu.Lock()
	ok := p.editor.Undo()
	p.mu.Unlock()
	if !ok {
		p.SetStatus("Nothing to undo")
		return
	}
	p.Refresh()
	p.SetStatus("Undo")
}

func (p *PaintWidget) Redo() {
	p.mu.Lock()
	ok := p.editor.Redo()
	p.mu.Unlock()
	if !ok {
		p.SetStatus("Nothing to redo")
		return
	}
	p.Refresh()
	p.SetStatus("Redo")
}

func (p *PaintWidget) Clear() {
	p.mu.Lock()
	p.editor.Clear()
	p.mu.Unlock()
	p.Refresh()
	p.SetStatus("Canvas cleared")
}

// SaveToFile encodes the canvas into the chosen file, picking the format
// from the file extension (PNG when unknown).
func (p *PaintWidget) SaveToFile(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[UI] error closing writer: %v", err)
		}
	}()

	format, ok := raster.FormatForExtension(filepath.Ext(writer.URI().Name()))
	if !ok {
		format = raster.FormatPNG
	}

	p.mu.RLock()
	data, err := p.editor.SaveTo(format)
	p.mu.RUnlock()
	if err != nil {
		log.Printf("[UI] encode failed: %v", err)
		p.SetStatus("Error saving image")
		return
	}
	if _, err := writer.Write(data); err != nil {
		log.Printf("[UI] write failed: %v", err)
		p.SetStatus("Error writing file")
		return
	}
	p.SetStatus("Saved " + writer.URI().Name())
}

// LoadFromFile decodes the chosen image file onto the canvas. Invalid image
// data leaves the canvas untouched.
func (p *PaintWidget) LoadFromFile(reader fyne.URIReadCloser) {
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("[UI] error closing reader: %v", err)
		}
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		log.Printf("[UI] read failed: %v", err)
		p.SetStatus("Error reading file")
		return
	}

	p.mu.Lock()
	err = p.editor.LoadFrom(data)
	p.mu.Unlock()
	if err != nil {
		log.Printf("[UI] load failed: %v", err)
		p.SetStatus("Not a valid image file")
		return
	}
	p.Refresh()
	p.SetStatus("Opened " + reader.URI().Name())
}

func (p *PaintWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.mu.Lock()
	p.editor.PointerDown(pixelPoint(e.Position), p.tools)
	p.mu.Unlock()
	p.Refresh()
}

func (p *PaintWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.mu.Lock()
	p.editor.PointerUp(pixelPoint(e.Position), p.tools)
	p.mu.Unlock()
	p.Refresh()
}

func (p *PaintWidget) Dragged(e *fyne.DragEvent) {
	p.mu.Lock()
	p.editor.PointerMove(pixelPoint(e.Position), p.tools)
	p.mu.Unlock()
	p.Refresh()
}

func (p *PaintWidget) DragEnd() {}

func (p *PaintWidget) MouseIn(*desktop.MouseEvent) {}

func (p *PaintWidget) MouseMoved(*desktop.MouseEvent) {}

func (p *PaintWidget) MouseOut() {}

func pixelPoint(pos fyne.Position) image.Point {
	return image.Point{X: int(pos.X), Y: int(pos.Y)}
}

func (p *PaintWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &paintRenderer{widget: p}
	r.raster = canvas.NewRaster(func(w, h int) image.Image {
		p.mu.RLock()
		defer p.mu.RUnlock()
		return p.editor.Buffer()
	})
	return r
}

type paintRenderer struct {
	widget *PaintWidget
	raster *canvas.Raster
}

func (r *paintRenderer) Layout(size fyne.Size) {
	w, h := int(size.Width), int(size.Height)
	r.widget.mu.Lock()
	if w != r.widget.editor.Width() || h != r.widget.editor.Height() {
		r.widget.editor.Resize(w, h)
	}
	r.widget.mu.Unlock()
	r.raster.Resize(size)
}

func (r *paintRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *paintRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *paintRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *paintRenderer) Destroy() {}
