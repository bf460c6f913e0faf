package menu

import (
	"errors"

	"github.com/atomicstack/knobmenu/internal/canvas"
)

// MaxItems is the most items a single page can hold.
const MaxItems = 255

var (
	ErrNilBinding   = errors.New("menu: nil binding")
	ErrNilPage      = errors.New("menu: nil page")
	ErrPageFull     = errors.New("menu: page full")
	ErrInvalidRange = errors.New("menu: invalid value range")
)

// Kind classifies an item by its payload.
type Kind int

const (
	KindSubmenu Kind = iota
	KindAction
	KindToggle
	KindRadio
	KindValue
	KindBack
)

func (k Kind) String() string {
	switch k {
	case KindSubmenu:
		return "submenu"
	case KindAction:
		return "action"
	case KindToggle:
		return "toggle"
	case KindRadio:
		return "radio"
	case KindValue:
		return "value"
	case KindBack:
		return "back"
	default:
		return "unknown"
	}
}

// Layout selects the render strategy of a page.
type Layout int

const (
	LayoutList Layout = iota
	LayoutCarousel
)

func (l Layout) String() string {
	if l == LayoutCarousel {
		return "carousel"
	}
	return "list"
}

// Payload is the kind-specific data of an item. The set of implementations
// is closed.
type Payload interface {
	Kind() Kind
}

// Submenu opens Page when clicked.
type Submenu struct {
	Page *Page
}

// Action runs the item callback when clicked.
type Action struct{}

// Toggle flips Value when clicked.
type Toggle struct {
	Value *bool
}

// Radio sets Selected and clears every other Radio on the page.
type Radio struct {
	Selected *bool
}

// Value is an integer adjusted by Step per detent while editing.
type Value struct {
	Value          *int32
	Min, Max, Step int32
}

// Back returns to the previous page.
type Back struct{}

func (Submenu) Kind() Kind { return KindSubmenu }
func (Action) Kind() Kind  { return KindAction }
func (Toggle) Kind() Kind  { return KindToggle }
func (Radio) Kind() Kind   { return KindRadio }
func (Value) Kind() Kind   { return KindValue }
func (Back) Kind() Kind    { return KindBack }

// Adjust moves the bound value by delta steps, clamped to [Min, Max]. It
// reports whether the stored value changed.
func (v Value) Adjust(delta int) bool {
	if v.Value == nil || delta == 0 {
		return false
	}
	next := int64(*v.Value) + int64(delta)*int64(v.Step)
	if next < int64(v.Min) {
		next = int64(v.Min)
	}
	if next > int64(v.Max) {
		next = int64(v.Max)
	}
	if int32(next) == *v.Value {
		return false
	}
	*v.Value = int32(next)
	return true
}

// Callback is invoked synchronously with the item that triggered it.
type Callback func(*Item)

// Item is a single menu entry.
type Item struct {
	Label    string
	Icon     *canvas.Bitmap
	Callback Callback
	Payload  Payload

	page *Page
}

// Kind returns the item kind derived from its payload.
func (i *Item) Kind() Kind {
	if i == nil || i.Payload == nil {
		return KindAction
	}
	return i.Payload.Kind()
}

// Page returns the page that owns the item, or nil once removed.
func (i *Item) Page() *Page {
	return i.page
}

// SetIcon attaches an icon used by the carousel layout.
func (i *Item) SetIcon(icon *canvas.Bitmap) {
	if i == nil {
		return
	}
	i.Icon = icon
}

// Fire runs the callback if one is set.
func (i *Item) Fire() {
	if i != nil && i.Callback != nil {
		i.Callback(i)
	}
}
