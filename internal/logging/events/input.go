package events

import "github.com/atomicstack/knobmenu/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Rotate(delta int) {
	logging.Trace("input.rotate", map[string]interface{}{"delta": delta})
}

func (InputTracer) Button(event string) {
	logging.Trace("input.button", map[string]interface{}{"event": event})
}

func (InputTracer) Key(key, mapped string) {
	logging.Trace("input.key", map[string]interface{}{"key": key, "mapped": mapped})
}

func (InputTracer) Poller(pins string, running bool, err error) {
	payload := map[string]interface{}{"pins": pins, "running": running}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("input.poller", payload)
}
