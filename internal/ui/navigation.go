package ui

import (
	"github.com/atomicstack/knobmenu/internal/input"
	"github.com/atomicstack/knobmenu/internal/logging/events"
	"github.com/atomicstack/knobmenu/internal/menu"
	"github.com/atomicstack/knobmenu/internal/ui/command"
	"github.com/atomicstack/knobmenu/internal/ui/state"
)

// Outcome reports what a navigation step changed so the engine can retarget
// animations and start transitions.
type Outcome struct {
	Moved   bool
	Pushed  bool
	Popped  bool
	Edited  bool
	Changed bool
}

// Entered reports whether the live page changed.
func (o Outcome) Entered() bool {
	return o.Pushed || o.Popped
}

// Navigator owns the page stack and edit mode.
type Navigator struct {
	stack   []*menu.Page
	editing bool
	bus     *command.Bus
}

// NewNavigator starts navigation at root.
func NewNavigator(root *menu.Page, bus *command.Bus) *Navigator {
	if bus == nil {
		bus = command.New()
	}
	n := &Navigator{bus: bus}
	if root != nil {
		root.ClampSelection()
		n.stack = []*menu.Page{root}
	}
	return n
}

// Current returns the live page.
func (n *Navigator) Current() *menu.Page {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of pages on the stack.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Stack returns a copy of the page stack, root first.
func (n *Navigator) Stack() []*menu.Page {
	return append([]*menu.Page(nil), n.stack...)
}

// Editing reports whether a Value item is being adjusted.
func (n *Navigator) Editing() bool {
	if !n.editing {
		return false
	}
	_, ok := n.currentValue()
	return ok
}

func (n *Navigator) currentValue() (menu.Value, bool) {
	page := n.Current()
	if page == nil {
		return menu.Value{}, false
	}
	item := page.Current()
	if item == nil {
		return menu.Value{}, false
	}
	v, ok := item.Payload.(menu.Value)
	return v, ok
}

// Rotate applies a rotation delta. While editing it adjusts the value,
// otherwise it moves the selection by one item in the direction of delta.
func (n *Navigator) Rotate(delta int) Outcome {
	var out Outcome
	page := n.Current()
	if page == nil || delta == 0 {
		return out
	}
	out.Edited = n.dropStaleEdit()
	if v, ok := n.currentValue(); ok && n.editing {
		item := page.Current()
		if v.Adjust(delta) {
			events.Nav.Value(page.Title, item.Label, *v.Value)
			n.dispatch(page, item)
			out.Changed = true
		}
		return out
	}
	idx, moved := state.Step(page.Selected, delta, page.Len(), page.Wrap)
	if moved {
		page.Selected = idx
		events.UI.MenuCursor(page.Title, idx)
		out.Moved = true
	}
	return out
}

// Press applies a classified button event.
func (n *Navigator) Press(ev input.Event) Outcome {
	n.dropStaleEdit()
	switch ev {
	case input.EventClick:
		return n.click()
	case input.EventDoubleClick:
		return n.back(events.PopReasonDoubleClick)
	case input.EventLongPress:
		return n.back(events.PopReasonLongPress)
	}
	return Outcome{}
}

func (n *Navigator) click() Outcome {
	var out Outcome
	page := n.Current()
	if page == nil {
		return out
	}
	item := page.Current()
	if item == nil {
		return out
	}
	events.UI.MenuEnter(page.Title, item.Kind().String(), item.Label)
	switch p := item.Payload.(type) {
	case menu.Submenu:
		out.Pushed = n.push(p.Page)
	case menu.Back:
		out.Popped = n.pop(events.PopReasonBack)
	case menu.Toggle:
		*p.Value = !*p.Value
		n.dispatch(page, item)
		out.Changed = true
	case menu.Radio:
		page.SelectRadio(item)
		n.dispatch(page, item)
		out.Changed = true
	case menu.Value:
		n.setEditing(page, !n.Editing())
		out.Edited = true
	default:
		n.dispatch(page, item)
	}
	return out
}

// back leaves edit mode when active, otherwise pops one page.
func (n *Navigator) back(reason events.PopReason) Outcome {
	if n.Editing() {
		n.setEditing(n.Current(), false)
		return Outcome{Edited: true}
	}
	return Outcome{Popped: n.pop(reason)}
}

func (n *Navigator) push(child *menu.Page) bool {
	if child == nil {
		return false
	}
	from := n.Current()
	n.editing = false
	child.ClampSelection()
	n.stack = append(n.stack, child)
	events.Nav.Push(title(from), child.Title, len(n.stack))
	return true
}

func (n *Navigator) pop(reason events.PopReason) bool {
	if len(n.stack) <= 1 {
		return false
	}
	from := n.Current()
	n.stack[len(n.stack)-1] = nil
	n.stack = n.stack[:len(n.stack)-1]
	n.editing = false
	parent := n.Current()
	parent.ClampSelection()
	events.Nav.Pop(from.Title, parent.Title, reason)
	return true
}

// dropStaleEdit clears edit mode when the selection is no longer on a Value
// item, as happens when a callback removes the item being edited.
func (n *Navigator) dropStaleEdit() bool {
	if !n.editing || n.Editing() {
		return false
	}
	n.setEditing(n.Current(), false)
	return true
}

func (n *Navigator) setEditing(page *menu.Page, editing bool) {
	if n.editing == editing {
		return
	}
	n.editing = editing
	label := ""
	if page != nil && page.Current() != nil {
		label = page.Current().Label
	}
	events.Nav.Edit(title(page), label, editing)
}

func (n *Navigator) dispatch(page *menu.Page, item *menu.Item) {
	n.bus.Execute(command.Request{
		ID:    title(page) + ":" + item.Label,
		Label: item.Label,
		Item:  item,
	})
}

func title(p *menu.Page) string {
	if p == nil {
		return ""
	}
	return p.Title
}
