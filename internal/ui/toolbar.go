package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"GoPencil/internal/editor"
	"GoPencil/internal/export"
)

// The eraser clobbers the color selection, so remember the last picked color
// for when the user switches back to a drawing tool.
var lastSelectedColor = color.NRGBA{A: 255}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var imageFilter = storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".bmp"})

// --- The Main Toolbar ---
func NewToolbar(paint *PaintWidget, win fyne.Window) fyne.CanvasObject {
	selectTool := func(t editor.Tool) func() {
		return func() {
			if t != editor.ToolEraser {
				paint.SetColor(lastSelectedColor)
			}
			paint.SetTool(t)
		}
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), selectTool(editor.ToolPen)),
		widget.NewToolbarAction(theme.ContentClearIcon(), selectTool(editor.ToolEraser)),
		widget.NewToolbarAction(theme.ContentRemoveIcon(), selectTool(editor.ToolLine)),
		widget.NewToolbarAction(theme.CheckButtonIcon(), selectTool(editor.ToolRectangle)),
		widget.NewToolbarAction(theme.RadioButtonIcon(), selectTool(editor.ToolEllipse)),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), selectTool(editor.ToolBucket)),
	)

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), paint.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), paint.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), paint.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { showOpenDialog(paint, win) }),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { showSaveDialog(paint, win) }),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() { showExportPDFDialog(paint, win) }),
	)

	// --- Color Palette ---
	onColorTapped := func(c color.NRGBA) {
		lastSelectedColor = c
		paint.SetColor(c)
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.NRGBA{A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColorTapped),
	)

	moreColors := widget.NewButtonWithIcon("", theme.MoreHorizontalIcon(), func() {
		dialog.ShowColorPicker("Pick Color", "Pen color", func(c color.Color) {
			r, g, b, a := c.RGBA()
			picked := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
			onColorTapped(picked)
		}, win)
	})

	// --- Stroke Width Slider ---
	widthSlider := widget.NewSlider(1, 60)
	widthSlider.SetValue(4)
	widthSlider.OnChanged = func(val float64) {
		paint.SetWidth(int(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), widthSlider)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		moreColors,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		actions,
		layout.NewSpacer(),
	)
}

func showOpenDialog(paint *PaintWidget, win fyne.Window) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("[UI] open dialog: %v", err)
			return
		}
		if reader == nil {
			return
		}
		paint.LoadFromFile(reader)
	}, win)
	d.SetFilter(imageFilter)
	d.Show()
}

func showSaveDialog(paint *PaintWidget, win fyne.Window) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[UI] save dialog: %v", err)
			return
		}
		if writer == nil {
			return
		}
		paint.SaveToFile(writer)
	}, win)
	d.SetFileName(paint.Editor().DocumentName() + ".png")
	d.SetFilter(imageFilter)
	d.Show()
}

func showExportPDFDialog(paint *PaintWidget, win fyne.Window) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[UI] export dialog: %v", err)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("[UI] error closing writer: %v", err)
			}
		}()
		if err := export.PDF(writer, paint.Snapshot()); err != nil {
			log.Printf("[UI] pdf export failed: %v", err)
			paint.SetStatus("Error exporting PDF")
			return
		}
		paint.SetStatus("Exported " + writer.URI().Name())
	}, win)
	d.SetFileName(paint.Editor().DocumentName() + ".pdf")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.Show()
}
