package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/knobmenu/internal/app"
	"github.com/atomicstack/knobmenu/internal/config"
	"github.com/atomicstack/knobmenu/internal/logging"
	"github.com/atomicstack/knobmenu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

// run loads configuration, starts the selected front end and returns the
// process exit code: 2 for configuration errors, 1 for runtime errors.
func run() int {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	defer logging.Close()

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type screenInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type springInfo struct {
	Stiffness int32 `json:"stiffness"`
	Damping   int32 `json:"damping"`
	FixedStep bool  `json:"fixed_step"`
}

// startupTracePayload records what the engine is about to drive: the panel,
// the animation tuning and either the terminal or the wiring of the board.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"mode":   cfg.App.Mode,
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"screen": screenInfo{Width: app.ScreenWidth, Height: app.ScreenHeight},
		"spring": springInfo{
			Stiffness: cfg.App.Stiffness,
			Damping:   cfg.App.Damping,
			FixedStep: cfg.App.FixedStep,
		},
		"root": rootMenu(cfg.App.RootMenu),
	}
	switch cfg.App.Mode {
	case app.ModeDevice:
		payload["pins"] = cfg.App.Device
	default:
		payload["terminal"] = probeTerminals()
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	return payload
}

func rootMenu(name string) string {
	if name == "" {
		return "Main Menu"
	}
	return name
}

// terminalProbe describes one standard descriptor. The simulator needs a
// terminal at least as large as the panel plus its frame.
type terminalProbe struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

func probeTerminals() []terminalProbe {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	probes := make([]terminalProbe, len(files))
	for i, f := range files {
		probes[i] = probeTerminal(names[i], int(f.Fd()))
	}
	return probes
}

func probeTerminal(name string, fd int) terminalProbe {
	p := terminalProbe{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return p
	}
	p.Terminal = true
	w, h, err := term.GetSize(fd)
	if err != nil {
		p.Error = err.Error()
		return p
	}
	p.Width, p.Height = w, h
	return p
}
