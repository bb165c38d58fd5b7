package main

import (
	"log"
	"os"

	"GoPencil/internal/editor"
	"GoPencil/internal/ui"
)

func main() {
	ed := editor.New(editor.DefaultWidth, editor.DefaultHeight)

	// An image path on the command line opens that file onto the canvas.
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatalf("reading %s: %v", os.Args[1], err)
		}
		if err := ed.LoadFrom(data); err != nil {
			log.Fatalf("opening %s: %v", os.Args[1], err)
		}
		log.Printf("[MAIN] opened %s", os.Args[1])
	}

	ui.RunApp(ed)
}
