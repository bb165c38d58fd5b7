package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"GoPencil/internal/editor"
)

// RunApp builds the main window around the given editor and blocks until the
// window closes.
func RunApp(ed *editor.Editor) {
	myApp := app.New()
	myWindow := myApp.NewWindow("GoPencil - " + ed.DocumentName())
	myWindow.Resize(fyne.NewSize(1400, 800))

	paint := NewPaintWidget(ed)

	status := widget.NewLabel("Ready")
	paint.OnStatus = func(text string) {
		fyne.Do(func() { status.SetText(text) })
	}

	toolbar := NewToolbar(paint, myWindow)

	content := container.NewBorder(toolbar, status, nil, nil, paint)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
