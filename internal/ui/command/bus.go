package command

import (
	"github.com/atomicstack/knobmenu/internal/logging/events"
	"github.com/atomicstack/knobmenu/internal/menu"
)

// Request encapsulates a callback invocation.
type Request struct {
	ID    string
	Label string
	Item  *menu.Item
}

// Bus runs item callbacks on the caller's goroutine while emitting trace logs.
type Bus struct {
	executed uint64
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute invokes the item callback. It reports whether a callback ran.
func (b *Bus) Execute(req Request) bool {
	events.Command.Queue(req.ID, req.Label)
	if req.Item == nil || req.Item.Callback == nil {
		events.Command.Skip(req.ID, req.Label)
		return false
	}
	req.Item.Callback(req.Item)
	b.executed++
	events.Command.Result(req.ID, req.Label)
	return true
}

// Executed returns the number of callbacks run so far.
func (b *Bus) Executed() uint64 {
	return b.executed
}
