package menu

// Page is an ordered list of items rendered with one layout.
type Page struct {
	Title  string
	Layout Layout
	// Wrap makes selection loop from the last item to the first and back.
	Wrap bool
	// Selected is the index of the focused item.
	Selected int
	// Scroll is the saved scroll target, restored when the page is entered.
	Scroll float64

	items    []*Item
	registry *Registry
}

// NewPage returns a detached page. Pages created through a Registry also
// notify its layout watchers.
func NewPage(title string) *Page {
	return &Page{Title: title}
}

// Items returns the items in display order. Callers must not modify the slice.
func (p *Page) Items() []*Item {
	return p.items
}

// Len returns the number of items.
func (p *Page) Len() int {
	return len(p.items)
}

// Item returns the item at index i, or nil when out of range.
func (p *Page) Item(i int) *Item {
	if i < 0 || i >= len(p.items) {
		return nil
	}
	return p.items[i]
}

// Current returns the selected item, or nil for an empty page.
func (p *Page) Current() *Item {
	return p.Item(p.Selected)
}

// IndexOf returns the position of item, or -1.
func (p *Page) IndexOf(item *Item) int {
	for i, it := range p.items {
		if it == item {
			return i
		}
	}
	return -1
}

func (p *Page) add(label string, payload Payload, cb Callback) (*Item, error) {
	if len(p.items) >= MaxItems {
		return nil, ErrPageFull
	}
	item := &Item{Label: label, Payload: payload, Callback: cb, page: p}
	p.items = append(p.items, item)
	return item, nil
}

// AddAction appends an item that only runs cb when clicked.
func (p *Page) AddAction(label string, cb Callback) (*Item, error) {
	return p.add(label, Action{}, cb)
}

// AddToggle appends an on/off item bound to value.
func (p *Page) AddToggle(label string, value *bool, cb Callback) (*Item, error) {
	if value == nil {
		return nil, ErrNilBinding
	}
	return p.add(label, Toggle{Value: value}, cb)
}

// AddRadio appends a mutually exclusive choice bound to selected.
func (p *Page) AddRadio(label string, selected *bool, cb Callback) (*Item, error) {
	if selected == nil {
		return nil, ErrNilBinding
	}
	return p.add(label, Radio{Selected: selected}, cb)
}

// AddValue appends an integer item. The bound value is clamped into range.
func (p *Page) AddValue(label string, value *int32, lo, hi, step int32, cb Callback) (*Item, error) {
	if value == nil {
		return nil, ErrNilBinding
	}
	if lo > hi || step <= 0 {
		return nil, ErrInvalidRange
	}
	item, err := p.add(label, Value{Value: value, Min: lo, Max: hi, Step: step}, cb)
	if err != nil {
		return nil, err
	}
	if *value < lo {
		*value = lo
	}
	if *value > hi {
		*value = hi
	}
	return item, nil
}

// AddSubmenu appends an item that opens child.
func (p *Page) AddSubmenu(label string, child *Page) (*Item, error) {
	if child == nil {
		return nil, ErrNilPage
	}
	return p.add(label, Submenu{Page: child}, nil)
}

// AddBack appends an item that returns to the previous page.
func (p *Page) AddBack(label string) (*Item, error) {
	return p.add(label, Back{}, nil)
}

// RemoveItem unlinks item from the page and keeps Selected in range. It
// reports whether the item was found.
func (p *Page) RemoveItem(item *Item) bool {
	idx := p.IndexOf(item)
	if idx < 0 {
		return false
	}
	copy(p.items[idx:], p.items[idx+1:])
	p.items[len(p.items)-1] = nil
	p.items = p.items[:len(p.items)-1]
	item.page = nil
	if p.Selected > idx || p.Selected >= len(p.items) {
		p.Selected--
	}
	if p.Selected < 0 {
		p.Selected = 0
	}
	return true
}

// SetLayout switches the render strategy. Registry watchers are told about
// actual changes only.
func (p *Page) SetLayout(layout Layout) {
	if p.Layout == layout {
		return
	}
	from := p.Layout
	p.Layout = layout
	if p.registry != nil {
		p.registry.notify(LayoutChange{Page: p, From: from, To: layout})
	}
}

// SelectRadio sets item and clears every other Radio item on the page.
func (p *Page) SelectRadio(item *Item) {
	for _, it := range p.items {
		if r, ok := it.Payload.(Radio); ok && r.Selected != nil {
			*r.Selected = it == item
		}
	}
}

// ClampSelection pulls Selected back into [0, Len).
func (p *Page) ClampSelection() {
	if p.Selected >= len(p.items) {
		p.Selected = len(p.items) - 1
	}
	if p.Selected < 0 {
		p.Selected = 0
	}
}
