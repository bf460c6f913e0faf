package menu

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// LayoutChange describes a page switching render strategy.
type LayoutChange struct {
	Page     *Page
	From, To Layout
}

// Registry owns every page of a menu tree.
type Registry struct {
	pages    []*Page
	byTitle  map[string]*Page
	watchers []func(LayoutChange)
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byTitle: make(map[string]*Page)}
}

// CreatePage makes a new page owned by the registry. The first page created
// is the root.
func (r *Registry) CreatePage(title string) *Page {
	p := &Page{Title: title, registry: r}
	r.pages = append(r.pages, p)
	key := strings.ToLower(title)
	if _, exists := r.byTitle[key]; !exists {
		r.byTitle[key] = p
	}
	return p
}

// Root returns the first page created, or nil.
func (r *Registry) Root() *Page {
	if len(r.pages) == 0 {
		return nil
	}
	return r.pages[0]
}

// Pages returns pages in creation order.
func (r *Registry) Pages() []*Page {
	return r.pages
}

// Find locates a page by title, ignoring case.
func (r *Registry) Find(title string) (*Page, bool) {
	p, ok := r.byTitle[strings.ToLower(strings.TrimSpace(title))]
	return p, ok
}

// Search ranks pages by fuzzy title match, best first.
func (r *Registry) Search(query string) []*Page {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	titles := make([]string, len(r.pages))
	for i, p := range r.pages {
		titles[i] = p.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	sort.Stable(ranks)
	out := make([]*Page, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, r.pages[rank.OriginalIndex])
	}
	return out
}

// Resolve returns the exact match for name, falling back to the best fuzzy
// match.
func (r *Registry) Resolve(name string) (*Page, bool) {
	if p, ok := r.Find(name); ok {
		return p, true
	}
	if matches := r.Search(name); len(matches) > 0 {
		return matches[0], true
	}
	return nil, false
}

// Watch registers fn to be called on every layout change.
func (r *Registry) Watch(fn func(LayoutChange)) {
	if fn == nil {
		return
	}
	r.watchers = append(r.watchers, fn)
}

func (r *Registry) notify(change LayoutChange) {
	for _, fn := range r.watchers {
		fn(change)
	}
}
