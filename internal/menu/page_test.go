package menu

import (
	"errors"
	"math"
	"testing"

	"github.com/atomicstack/knobmenu/internal/canvas"
)

func TestBuildersRejectNilBindings(t *testing.T) {
	p := NewPage("Settings")
	tests := []struct {
		name string
		add  func() (*Item, error)
		want error
	}{
		{"toggle", func() (*Item, error) { return p.AddToggle("Sound", nil, nil) }, ErrNilBinding},
		{"radio", func() (*Item, error) { return p.AddRadio("List", nil, nil) }, ErrNilBinding},
		{"value", func() (*Item, error) { return p.AddValue("Level", nil, 0, 10, 1, nil) }, ErrNilBinding},
		{"submenu", func() (*Item, error) { return p.AddSubmenu("Child", nil) }, ErrNilPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := tt.add()
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if item != nil {
				t.Fatalf("expected no item on error")
			}
			if p.Len() != 0 {
				t.Fatalf("expected page unchanged, got %d items", p.Len())
			}
		})
	}
}

func TestAddValueValidatesRangeAndClamps(t *testing.T) {
	p := NewPage("Display")
	v := int32(5)
	if _, err := p.AddValue("Bad", &v, 10, 0, 1, nil); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected invalid range for min > max, got %v", err)
	}
	if _, err := p.AddValue("Bad", &v, 0, 10, 0, nil); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected invalid range for zero step, got %v", err)
	}
	high := int32(500)
	if _, err := p.AddValue("Brightness", &high, 0, 100, 5, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 100 {
		t.Fatalf("expected initial value clamped to 100, got %d", high)
	}
}

func TestPageFullLeavesPageUnchanged(t *testing.T) {
	p := NewPage("Big")
	for i := 0; i < MaxItems; i++ {
		if _, err := p.AddAction("x", nil); err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
	}
	if _, err := p.AddBack("Back"); !errors.Is(err, ErrPageFull) {
		t.Fatalf("expected page full, got %v", err)
	}
	if p.Len() != MaxItems {
		t.Fatalf("expected %d items, got %d", MaxItems, p.Len())
	}
}

func TestKindDerivedFromPayload(t *testing.T) {
	p := NewPage("Main")
	child := NewPage("Child")
	on := false
	sel := false
	val := int32(0)
	sub, _ := p.AddSubmenu("Child", child)
	act, _ := p.AddAction("Go", nil)
	tog, _ := p.AddToggle("Sound", &on, nil)
	rad, _ := p.AddRadio("List", &sel, nil)
	num, _ := p.AddValue("Level", &val, 0, 5, 1, nil)
	back, _ := p.AddBack("Back")
	want := []Kind{KindSubmenu, KindAction, KindToggle, KindRadio, KindValue, KindBack}
	for i, item := range []*Item{sub, act, tog, rad, num, back} {
		if item.Kind() != want[i] {
			t.Fatalf("item %d: expected %s, got %s", i, want[i], item.Kind())
		}
		if item.Page() != p {
			t.Fatalf("item %d: expected owning page", i)
		}
	}
	if sub.Payload.(Submenu).Page != child {
		t.Fatalf("expected submenu to reference child page")
	}
}

func TestValueAdjustClamps(t *testing.T) {
	v := int32(4)
	val := Value{Value: &v, Min: 0, Max: 10, Step: 2}
	tests := []struct {
		delta   int
		want    int32
		changed bool
	}{
		{1, 6, true},
		{3, 10, true},
		{1, 10, false},
		{-100, 0, true},
		{-1, 0, false},
		{math.MaxInt32, 10, true},
		{math.MinInt32, 0, true},
	}
	for _, tt := range tests {
		changed := val.Adjust(tt.delta)
		if v != tt.want || changed != tt.changed {
			t.Fatalf("delta %d: expected %d (changed=%v), got %d (changed=%v)", tt.delta, tt.want, tt.changed, v, changed)
		}
	}
}

func TestSelectRadioIsExclusive(t *testing.T) {
	p := NewPage("Layout")
	a, b, c := true, false, true
	ia, _ := p.AddRadio("A", &a, nil)
	ib, _ := p.AddRadio("B", &b, nil)
	p.AddRadio("C", &c, nil)
	p.SelectRadio(ib)
	if a || !b || c {
		t.Fatalf("expected only B selected, got a=%v b=%v c=%v", a, b, c)
	}
	p.SelectRadio(ia)
	if !a || b || c {
		t.Fatalf("expected only A selected, got a=%v b=%v c=%v", a, b, c)
	}
}

func TestRemoveItemClampsSelection(t *testing.T) {
	p := NewPage("Main")
	a, _ := p.AddAction("A", nil)
	b, _ := p.AddAction("B", nil)
	c, _ := p.AddAction("C", nil)

	p.Selected = 2
	if !p.RemoveItem(c) {
		t.Fatalf("expected removal")
	}
	if p.Selected != 1 || p.Current() != b {
		t.Fatalf("expected selection clamped to B, got %d", p.Selected)
	}
	if c.Page() != nil {
		t.Fatalf("expected removed item to be unlinked")
	}

	p.Selected = 1
	p.RemoveItem(a)
	if p.Selected != 0 || p.Current() != b {
		t.Fatalf("expected selection to follow B, got %d", p.Selected)
	}
	p.RemoveItem(b)
	if p.Selected != 0 || p.Current() != nil {
		t.Fatalf("expected empty page with selection 0, got %d", p.Selected)
	}
	if p.RemoveItem(b) {
		t.Fatalf("expected second removal to report false")
	}
}

func TestSetIconAndFire(t *testing.T) {
	p := NewPage("Main")
	fired := 0
	item, _ := p.AddAction("Go", func(it *Item) {
		if it.Label != "Go" {
			t.Fatalf("expected callback to receive its item")
		}
		fired++
	})
	icon := canvas.ParseBitmap("##", "##")
	item.SetIcon(icon)
	if item.Icon != icon {
		t.Fatalf("expected icon attached")
	}
	item.Fire()
	if fired != 1 {
		t.Fatalf("expected callback fired once, got %d", fired)
	}
	var nilItem *Item
	nilItem.Fire()
	nilItem.SetIcon(icon)
}
