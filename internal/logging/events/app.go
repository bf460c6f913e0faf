package events

import "github.com/atomicstack/knobmenu/internal/logging"

type AppTracer struct{}

type DisplayTracer struct{}

var (
	App     = AppTracer{}
	Display = DisplayTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(frames uint64, err error) {
	payload := map[string]interface{}{"frames": frames}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.stop", payload)
}

func (DisplayTracer) Open(driver string, width, height int) {
	logging.Trace("display.open", map[string]interface{}{"driver": driver, "width": width, "height": height})
}

func (DisplayTracer) Flush(lines int) {
	if !logging.TraceEnabled() {
		return
	}
	logging.Trace("display.flush", map[string]interface{}{"lines": lines})
}

func (DisplayTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("display.error", map[string]interface{}{"error": err.Error()})
}

func (AppTracer) Settings(action string, saves int) {
	logging.Trace("app.settings", map[string]interface{}{"action": action, "saves": saves})
}
