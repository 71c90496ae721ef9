package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"git.sr.ht/~gioverse/skel/stream"

	"git.sr.ht/~whereswaldon/timechart/internal/config"
	"git.sr.ht/~whereswaldon/timechart/internal/logger"
	"git.sr.ht/~whereswaldon/timechart/internal/tracefile"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

func main() {
	kindName := flag.String("kind", string(tracefile.MinMax), "chart kind: events, minmax, percentage, state, single or duration")
	configPath := flag.String("config", "", "config file path")
	watch := flag.Bool("watch", true, "reload the trace whenever it changes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] TRACE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	l, err := logger.Init(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Close()
	style, err := cfg.Style()
	if err != nil {
		log.Fatal(err)
	}
	kind, err := tracefile.ParseKind(*kindName)
	if err != nil {
		log.Fatal(err)
	}
	tr, err := tracefile.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	w := app.NewWindow(
		app.Title("timechart: "+path),
		app.Size(unit.Dp(cfg.Surface.Width), unit.Dp(cfg.Surface.Height)),
	)
	var reloads *stream.Stream[*tracefile.Trace]
	if *watch {
		tw, err := newTraceWatcher(path)
		if err != nil {
			log.Fatal(err)
		}
		controller := stream.NewController(context.Background(), w.Invalidate)
		reloads = stream.New(controller, tw.Traces)
	}
	v := newViewer(tr, kind, style, float32(cfg.Chart.HitRadius), reloads)
	v.log = l

	go func() {
		if err := loop(w, v); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, v *viewer) error {
	var ops op.Ops
	shaper := text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	for {
		switch ev := w.NextEvent().(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			v.Layout(gtx, shaper)
			ev.Frame(gtx.Ops)
		}
	}
}
