package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/knobmenu/internal/logging/events"
)

// keyMap binds keyboard keys to encoder gestures in the simulator.
type keyMap struct {
	TurnLeft    key.Binding
	TurnRight   key.Binding
	Click       key.Binding
	DoubleClick key.Binding
	LongPress   key.Binding
	Dark        key.Binding
	FPS         key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		TurnLeft: key.NewBinding(
			key.WithKeys("left", "h", "up", "k"),
			key.WithHelp("←/h", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("right", "l", "down", "j"),
			key.WithHelp("→/l", "turn right"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "click"),
		),
		DoubleClick: key.NewBinding(
			key.WithKeys("backspace", "d"),
			key.WithHelp("bksp/d", "double click"),
		),
		LongPress: key.NewBinding(
			key.WithKeys("esc", "L"),
			key.WithHelp("esc/L", "long press"),
		),
		Dark: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "dark mode"),
		),
		FPS: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fps"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TurnLeft, k.TurnRight, k.Click, k.DoubleClick, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TurnLeft, k.TurnRight},
		{k.Click, k.DoubleClick, k.LongPress},
		{k.Dark, k.FPS},
		{k.Help, k.Quit},
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	mapped, cmd := m.applyKey(keyMsg)
	events.Input.Key(keyMsg.String(), mapped)
	return cmd
}

// applyKey performs the gesture bound to k and names it for tracing.
func (m *Model) applyKey(k tea.KeyMsg) (string, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		m.quitting = true
		return "quit", tea.Quit
	case key.Matches(k, m.keys.TurnLeft):
		m.encoder.Turn(-1)
		return "turn-left", nil
	case key.Matches(k, m.keys.TurnRight):
		m.encoder.Turn(1)
		return "turn-right", nil
	case key.Matches(k, m.keys.Click):
		m.encoder.Click()
		return "click", nil
	case key.Matches(k, m.keys.DoubleClick):
		m.encoder.DoubleClick()
		return "double-click", nil
	case key.Matches(k, m.keys.LongPress):
		m.encoder.LongPress()
		return "long-press", nil
	case key.Matches(k, m.keys.Dark):
		a := m.engine.Appearance()
		a.DarkMode = !a.DarkMode
		return "dark", nil
	case key.Matches(k, m.keys.FPS):
		a := m.engine.Appearance()
		a.ShowFPS = !a.ShowFPS
		return "fps", nil
	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return "help", nil
	}
	return "", nil
}
