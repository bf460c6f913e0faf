package app

import (
	"sort"
	"strings"
	"testing"

	"github.com/atomicstack/knobmenu/internal/testutil"
)

func TestIconsGolden(t *testing.T) {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		icon := icons[name]
		if r := icon.Bounds(); r.Dx() != 8 || r.Dy() != 8 {
			t.Fatalf("icon %q: expected 8x8, got %v", name, r)
		}
		b.WriteString(name + ":\n")
		b.WriteString(icon.String())
	}
	testutil.AssertGolden(t, "icons.golden", b.String())
}
