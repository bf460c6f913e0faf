package app

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/atomicstack/knobmenu/internal/backend"
	"github.com/atomicstack/knobmenu/internal/logging/events"
	"github.com/atomicstack/knobmenu/internal/ui"
)

// ErrNoTerminal is returned when the simulator is started without a tty.
var ErrNoTerminal = errors.New("simulator needs an interactive terminal")

// runSim drives the engine from the keyboard and draws frames in the
// terminal.
func runSim(cfg Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}
	model, err := newSimModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	frames := model.Engine().Frames()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err == nil {
		err = model.Err()
	}
	events.App.Stop(frames, err)
	if err != nil {
		return fmt.Errorf("simulator: %w", err)
	}
	return nil
}

func newSimModel(cfg Config) (*ui.Model, error) {
	clock := backend.NewSystemClock()
	enc := backend.NewVirtualEncoder(clock, cfg.Quantum)
	s, err := newSession(cfg, enc, clock, nil)
	if err != nil {
		return nil, err
	}
	return ui.NewModel(s.engine, s.canvas, enc, cfg.FPS), nil
}
