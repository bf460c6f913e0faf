package events

import "github.com/atomicstack/knobmenu/internal/logging"

type UITracer struct{}

type NavTracer struct{}

type CommandTracer struct{}

type TransitionTracer struct{}

type PopReason string

const (
	PopReasonBack        PopReason = "back"
	PopReasonDoubleClick PopReason = "double-click"
	PopReasonLongPress   PopReason = "long-press"
)

var (
	UI         = UITracer{}
	Nav        = NavTracer{}
	Command    = CommandTracer{}
	Transition = TransitionTracer{}
)

func (UITracer) MenuEnter(page, item, label string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"page":  page,
		"item":  item,
		"label": label,
	})
}

func (UITracer) MenuCursor(page string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"page": page, "cursor": cursor})
}

func (UITracer) Layout(page, from, to string) {
	logging.Trace("menu.layout", map[string]interface{}{"page": page, "from": from, "to": to})
}

func (UITracer) Takeover(active bool) {
	logging.Trace("menu.takeover", map[string]interface{}{"active": active})
}

func (NavTracer) Push(from, to string, depth int) {
	logging.Trace("nav.push", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (NavTracer) Pop(from, to string, reason PopReason) {
	logging.Trace("nav.pop", map[string]interface{}{"from": from, "to": to, "reason": string(reason)})
}

func (NavTracer) Edit(page, label string, editing bool) {
	logging.Trace("nav.edit", map[string]interface{}{"page": page, "label": label, "editing": editing})
}

func (NavTracer) Value(page, label string, value int32) {
	logging.Trace("nav.value", map[string]interface{}{"page": page, "label": label, "value": value})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label})
}

func (TransitionTracer) Begin(reason string, retrigger bool) {
	logging.Trace("transition.begin", map[string]interface{}{"reason": reason, "retrigger": retrigger})
}

func (TransitionTracer) End() {
	logging.Trace("transition.end", nil)
}
