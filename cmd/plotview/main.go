package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"
	"github.com/natefinch/lumberjack"

	"github.com/gucio321/plotview/pkg/config"
	"github.com/gucio321/plotview/pkg/gcode"
	"github.com/gucio321/plotview/pkg/preview"
	"github.com/gucio321/plotview/pkg/render"
	"github.com/gucio321/plotview/pkg/server"
	"github.com/gucio321/plotview/pkg/viewer"
	"github.com/gucio321/plotview/pkg/workspace"
)

type Flags struct {
	config.Preset
	preset     string
	makePreset string
	demo       bool
}

func main() {
	var f Flags
	flag.StringVar(&f.Input, "i", "", "input G-code file path (- for stdin)")
	flag.StringVar(&f.Output, "o", "", "output file path (.svg or .png)")
	flag.BoolVar(&f.View, "v", false, "view")
	flag.StringVar(&f.Workspace, "w", workspace.DefaultName, "workspace name")
	flag.IntVar(&f.Segments, "segments", 0, "segments per arc (0 uses the workspace setting)")
	flag.StringVar(&f.Palette, "palette", render.Classic.String(), "stroke palette (classic or heat)")
	flag.BoolVar(&f.Strict, "strict", false, "exit with an error if the program has warnings")
	flag.StringVar(&f.Serve, "serve", "", "serve the HTTP API on this address instead of reading a file")
	flag.StringVar(&f.LogFile, "log", "", "also log to this file (rotated)")
	flag.StringVar(&f.preset, "preset", "", "preset file path (.json, .toml or .yaml). This will override all other flags")
	flag.StringVar(&f.makePreset, "make-preset", "", "print a preset of the current flags in this format (json, toml or yaml)")
	flag.BoolVar(&f.demo, "demo", false, "preview a built-in drawing instead of a file")
	flag.Parse()

	if f.makePreset != "" {
		out, err := config.Encode(f.Preset, config.Format(f.makePreset))
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Presets generated")

		return
	}

	if f.preset != "" {
		if err := config.Load(f.preset, &f.Preset); err != nil {
			glg.Fatalf("Unable to load preset: %v (use valid file or empty to not use presets)", err)
		}
	}

	if f.LogFile != "" {
		logFile := &lumberjack.Logger{
			Filename:   f.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			LocalTime:  true,
		}

		defer logFile.Close()

		glg.Get().SetMode(glg.BOTH).AddWriter(logFile)
	}

	ws, err := workspace.Get(f.Workspace)
	if err != nil {
		glg.Fatalf("Cannot use workspace: %v", err)
	}

	opts := ws.Options()
	if f.Segments > 0 {
		opts.ArcSegments = f.Segments
	}

	palette, err := render.ParsePalette(f.Palette)
	if err != nil {
		glg.Fatalf("Cannot use palette: %v", err)
	}

	if f.Serve != "" {
		serve(f.Serve, opts, palette)
		return
	}

	program, err := load(f)
	if err != nil {
		flag.Usage()
		glg.Fatal(err)
	}

	for _, w := range program.Warnings {
		glg.Warnf("%s", w)
	}

	if f.Strict && len(program.Warnings) > 0 {
		glg.Fatalf("%d warnings in strict mode", len(program.Warnings))
	}

	summary := preview.Summarize(program, opts.PenUpZ)
	glg.Infof("%d commands (%d arcs), %s", summary.Commands, summary.Arcs, preview.BoundsLabel(program.Bounds()))
	glg.Infof("drawing %.2f, travelling %.2f", summary.DrawLength, summary.TravelLength)

	if f.Output == "" && !f.View {
		for _, cmd := range program.Commands {
			fmt.Println(cmd)
		}
	}

	if f.Output != "" {
		if err := write(f.Output, program, opts, palette); err != nil {
			glg.Fatalf("Cannot write file %s: %v", f.Output, err)
		}

		glg.Infof("Preview written to %s", f.Output)
	}

	if f.View {
		ebiten.SetWindowSize(int(opts.Viewport.Width), int(opts.Viewport.Height))
		ebiten.SetWindowTitle("plotview")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		if err := ebiten.RunGame(viewer.NewViewer(program, opts, palette)); err != nil {
			glg.Fatalf("Cannot run viewer: %v", err)
		}
	}
}

func load(f Flags) (*gcode.Program, error) {
	switch {
	case f.demo:
		text, err := demo()
		if err != nil {
			return nil, fmt.Errorf("building demo: %w", err)
		}

		return gcode.ParseString(text)
	case f.Input == "":
		return nil, fmt.Errorf("input file is required")
	case f.Input == "-":
		return gcode.Parse(os.Stdin)
	}

	file, err := os.Open(f.Input)
	if err != nil {
		return nil, fmt.Errorf("cannot read file %s: %w", f.Input, err)
	}

	defer file.Close()

	program, err := gcode.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("cannot parse file %s: %w", f.Input, err)
	}

	return program, nil
}

func write(path string, program *gcode.Program, opts preview.Options, palette render.Palette) error {
	scene, err := preview.Build(program, opts)
	if err != nil {
		return err
	}

	var encode func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		encode = func(w io.Writer) error {
			return render.SVG(w, scene, program.End(), palette)
		}
	case ".png":
		encode = func(w io.Writer) error {
			return render.WritePNG(w, scene, program.End(), palette)
		}
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encode(file); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func serve(addr string, opts preview.Options, palette render.Palette) {
	srv := server.New(opts, palette)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			glg.Errorf("Cannot shut down: %v", err)
		}
	}()

	if err := srv.Start(addr); err != nil {
		glg.Fatal(err)
	}
}
