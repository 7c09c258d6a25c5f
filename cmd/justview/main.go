package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/plotview/pkg/gcode"
	"github.com/gucio321/plotview/pkg/preview"
	"github.com/gucio321/plotview/pkg/render"
	"github.com/gucio321/plotview/pkg/viewer"
)

func main() {
	inputFile := flag.String("i", "", "Input file")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		glg.Fatal("Input file is required")
	}

	// load file
	file, err := os.Open(*inputFile)
	if err != nil {
		glg.Fatal(err)
	}

	// parse file
	program, err := gcode.Parse(file)
	file.Close()

	if err != nil {
		glg.Fatal(err)
	}

	opts := preview.DefaultOptions()
	ebiten.SetWindowSize(int(opts.Viewport.Width), int(opts.Viewport.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer.NewViewer(program, opts, render.Heat)); err != nil {
		glg.Fatal(err)
	}
}
