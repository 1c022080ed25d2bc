// Command neuralfield renders an animated particle field as a full-screen terminal backdrop
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/neuralfield/config"
	"github.com/lixenwraith/neuralfield/core"
	"github.com/lixenwraith/neuralfield/events"
	"github.com/lixenwraith/neuralfield/host"
	"github.com/lixenwraith/neuralfield/parameter"
	"github.com/lixenwraith/neuralfield/render"
	"github.com/lixenwraith/neuralfield/terminal"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Config file path")
	themeFlag  = flag.String("theme", "", "Theme: auto, dark, light")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256")
	fpsFlag    = flag.Int("fps", 0, "Frames per second")
	driftFlag  = flag.String("drift", "", "Solid drift: oscillate, accumulate")
	blendFlag  = flag.String("blend", "", "Glyph blend: alpha, add, max, screen")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for time based")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	watchFlag  = flag.Bool("watch", true, "Reload the config file on change")
)

func main() {
	os.Exit(run())
}

// loadConfig reads the config file and applies explicitly set flags over it
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = *themeFlag
		case "color":
			cfg.Color = *colorFlag
		case "fps":
			cfg.FPS = *fpsFlag
		case "drift":
			cfg.Drift = *driftFlag
		case "blend":
			cfg.Blend = *blendFlag
		case "seed":
			cfg.Seed = *seedFlag
		}
	})
	return cfg, cfg.Validate()
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// hostOptions maps validated config onto the backdrop host
func hostOptions(cfg config.Config, colorMode terminal.ColorMode) host.Options {
	return host.Options{
		FrameInterval: cfg.FrameInterval(),
		Rand:          newRand(cfg.Seed),
		Drift:         cfg.DriftMode(),
		Particles:     cfg.Particles,
		MaxSegments:   cfg.MaxSegments,
		ColorMode:     colorMode,
		Blend:         cfg.BlendMode(),
	}
}

func run() int {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "neuralfield: %v\n", err)
		return 2
	}

	// No surface to mount on
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Printf("[page] stdout is not a terminal, exiting")
		return 0
	}

	// Query the background before tcell takes over the terminal
	// Config reloads with theme "auto" reuse this answer
	termDark := config.DetectDark()
	dark := cfg.ResolveDark(termDark)
	colorMode := terminal.ParseColorMode(cfg.Color)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "neuralfield: create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "neuralfield: init screen: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	core.SetCrashHandler(func(w io.Writer) {
		terminal.EmergencyReset(screen, w)
	})
	defer core.SetCrashHandler(nil)

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	log.Printf("[page] theme=%s dark=%v color=%s fps=%d drift=%s blend=%s", cfg.Theme, dark, colorMode, cfg.FPS, cfg.Drift, cfg.Blend)

	bus := events.NewBus()
	h := host.New(bus, dark, hostOptions(cfg, colorMode))
	hint := NewHintRenderer(parameter.HintText, cfg.Hint)
	h.AddRenderer(hint, render.PriorityUI)
	stats := NewStatsRenderer(h.Stats(), false)
	h.AddRenderer(stats, render.PriorityDebug)

	ctx, stopSignals := notifyContext(context.Background())
	defer stopSignals()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := newPage(screen, bus, h, hint, stats, termDark, cancel)
	defer p.close()

	h.Mount(screen)
	defer h.Unmount()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(core.Guard(func() error {
		// Screen closed or quit requested: end the other workers too
		defer cancel()
		return p.pump(gctx)
	}))
	if *watchFlag {
		g.Go(core.Guard(func() error {
			if err := config.Watch(gctx, *configFlag, p.applyConfig); err != nil {
				// Live reload is optional
				log.Printf("[page] config watch disabled: %v", err)
			}
			return nil
		}))
	}
	if err := g.Wait(); err != nil {
		log.Printf("[page] exit: %v", err)
		return 1
	}
	log.Printf("[page] exit")
	return 0
}
