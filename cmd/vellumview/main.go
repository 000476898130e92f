package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"vellum/pkg/engine"
)

func main() {
	width := flag.Int("w", 800, "viewport width in pixels")
	height := flag.Int("h", 600, "viewport height in pixels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vellumview [flags] <input.html> <input.css>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	htmlData, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading document: %v\n", err)
		os.Exit(1)
	}
	cssData, err := os.ReadFile(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stylesheet: %v\n", err)
		os.Exit(1)
	}

	target := image.NewRGBA(image.Rect(0, 0, *width, *height))
	r := engine.New(float64(*width), float64(*height))
	if err := r.Render(string(htmlData), string(cssData), target); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("vellum — " + flag.Arg(0))

	img := canvas.NewImageFromImage(target)
	img.FillMode = canvas.ImageFillOriginal
	w.SetContent(img)
	w.Resize(fyne.NewSize(float32(*width), float32(*height)))
	w.ShowAndRun()
}
