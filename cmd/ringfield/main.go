package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ringfield/audio"
	"github.com/lixenwraith/ringfield/catalog"
	"github.com/lixenwraith/ringfield/clock"
	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/ring"
)

var (
	presetFlag  = flag.String("preset", ring.PresetSaturnRing, "Preset to show first")
	seedFlag    = flag.Uint64("seed", parameter.DefaultSeed, "Generation seed")
	catalogFlag = flag.String("catalog", "", "Comma-separated TOML/YAML preset catalogs layered over the built-ins")
	debugFlag   = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	soundFlag   = flag.Bool("sound", false, "Play a cue on preset switch (also "+audio.EnvEnabled+")")
	workersFlag = flag.Int("workers", runtime.GOMAXPROCS(0), "Goroutines used to advance large fields")
	listFlag    = flag.Bool("list", false, "Print preset names and exit")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	lib, err := catalog.LoadLibrary(splitPaths(*catalogFlag)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	if *listFlag {
		for _, e := range lib.Entries() {
			fmt.Printf("%-28s %-16s %6d  %s\n", e.Name, e.Config.Archetype, e.Config.ElementCount, e.Config.DisplayName)
		}
		return
	}

	audioCfg := audio.LoadConfig()
	if *soundFlag {
		audioCfg.Enabled = true
	}
	player, err := audio.NewPlayer(audioCfg)
	if err != nil {
		fmt.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRINGFIELD CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v, err := newViewer(screen, lib, player, clock.NewSystemTime(), *presetFlag, *seedFlag, *workersFlag)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start viewer: %v\n", err)
		os.Exit(1)
	}

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	runErr := v.run(ctx, eventChan)
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Viewer stopped: %v\n", runErr)
		os.Exit(1)
	}
}

// splitPaths turns the -catalog value into a path list, dropping blanks
func splitPaths(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
