// Command genesis displays the waveform of an audio file.
//
//	genesis [flags] <file>
//
// The file is decoded in the background while the window shows the
// load progress. With -snapshot, a single frame is rendered to a PNG
// file once loading finishes, without opening a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/andrewrk/genesis"
	"github.com/andrewrk/genesis/gfx/ebitengfx"
	"github.com/andrewrk/genesis/waveform"
)

var (
	fontPath  = flag.String("font", "", "path to a .ttf/.otf font, Go Regular when empty")
	fontIndex = flag.Int("font-index", 0, "face index within a font collection")
	fontSize  = flag.Int("size", 16, "label font size in pixels")
	textColor = flag.String("color", "#ffffff", "label color as #rrggbb")
	width     = flag.Int("width", 960, "width of window")
	height    = flag.Int("height", 540, "height of window")
	snapshot  = flag.String("snapshot", "", "render one frame to this PNG file and exit")
)

// errQuit ends the game loop without reporting a failure.
var errQuit = errors.New("quit")

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <file>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	defer glog.Flush()

	clr, err := colorful.Hex(*textColor)
	if err != nil {
		glog.Fatalf("invalid -color %q: %v", *textColor, err)
	}
	cfg := &viewConfig{
		FontPath:  *fontPath,
		FontIndex: *fontIndex,
		FontSize:  *fontSize,
		Color:     clr,
		Width:     *width,
		Height:    *height,
	}

	wave := waveform.Load(flag.Arg(0))
	if *snapshot != "" {
		if err := renderSnapshot(*snapshot, wave, cfg); err != nil {
			glog.Fatalf("snapshot: %v", err)
		}
		return
	}

	renderer, err := genesis.NewTextRenderer(ebitengfx.New())
	if err != nil {
		glog.Fatalf("error creating text renderer: %v", err)
	}
	defer renderer.Dispose()
	view, err := newView(renderer, wave, cfg)
	if err != nil {
		glog.Fatalf("error creating view: %v", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("genesis - " + flag.Arg(0))
	err = ebiten.RunGame(&game{view: view, width: cfg.Width, height: cfg.Height})
	if err != nil && err != errQuit {
		glog.Fatalf("game loop: %v", err)
	}
}
