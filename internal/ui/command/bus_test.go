package command

import (
	"testing"

	"github.com/atomicstack/knobmenu/internal/menu"
)

func TestExecuteRunsCallback(t *testing.T) {
	p := menu.NewPage("Main")
	var got *menu.Item
	item, err := p.AddAction("Reboot", func(it *menu.Item) { got = it })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bus := New()
	if !bus.Execute(Request{ID: "Main:Reboot", Label: item.Label, Item: item}) {
		t.Fatalf("expected callback to run")
	}
	if got != item {
		t.Fatalf("expected callback to receive its item")
	}
	if bus.Executed() != 1 {
		t.Fatalf("expected 1 execution, got %d", bus.Executed())
	}
}

func TestExecuteSkipsMissingCallback(t *testing.T) {
	p := menu.NewPage("Main")
	item, _ := p.AddAction("Noop", nil)
	bus := New()
	if bus.Execute(Request{ID: "Main:Noop", Label: "Noop", Item: item}) {
		t.Fatalf("expected skip for nil callback")
	}
	if bus.Execute(Request{ID: "none"}) {
		t.Fatalf("expected skip for nil item")
	}
	if bus.Executed() != 0 {
		t.Fatalf("expected no executions, got %d", bus.Executed())
	}
}
