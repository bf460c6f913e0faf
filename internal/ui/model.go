package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/knobmenu/internal/backend"
	"github.com/atomicstack/knobmenu/internal/canvas"
	"github.com/atomicstack/knobmenu/internal/logging"
	"github.com/atomicstack/knobmenu/internal/theme"
)

const menuHeaderSeparator = "→"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// frameMsg asks the model to run one engine tick.
type frameMsg time.Time

// FrameSource exposes the last presented frame. canvas.Canvas implements it.
type FrameSource interface {
	Frame() *canvas.Bitmap
}

// Model implements the Bubble Tea model for the terminal simulator. It owns
// the frame loop: every frame message ticks the engine, and View draws the
// presented frame.
type Model struct {
	engine   *Engine
	screen   FrameSource
	encoder  *backend.VirtualEncoder
	interval time.Duration

	keys     keyMap
	help     help.Model
	width    int
	height   int
	err      error
	quitting bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the simulator front end. fps paces engine ticks.
func NewModel(engine *Engine, screen FrameSource, encoder *backend.VirtualEncoder, fps int) *Model {
	if fps <= 0 {
		fps = backend.DefaultFPS
	}
	m := &Model{
		engine:   engine,
		screen:   screen,
		encoder:  encoder,
		interval: time.Second / time.Duration(fps),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.nextFrame()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Err returns the error that stopped the frame loop, if any.
func (m *Model) Err() error {
	return m.err
}

// Engine exposes the driven engine.
func (m *Model) Engine() *Engine {
	return m.engine
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	m.width = size.Width
	m.height = size.Height
	m.help.Width = size.Width
	return nil
}

func (m *Model) handleFrameMsg(tea.Msg) tea.Cmd {
	if m.quitting {
		return nil
	}
	if err := m.engine.Tick(); err != nil {
		m.err = err
		m.quitting = true
		logging.Error(err)
		return tea.Quit
	}
	return m.nextFrame()
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
