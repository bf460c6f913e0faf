package ui

import (
	"strings"

	"github.com/atomicstack/knobmenu/internal/format/table"
	"github.com/atomicstack/knobmenu/internal/menu"
)

// inspectorMinWidth is the narrowest terminal that still shows the page
// inspector beside the screen.
const inspectorMinWidth = 128 + 2 + 28

// inspector lists the items of the current page with their bound values.
func (m *Model) inspector() string {
	page := m.engine.Current()
	if page == nil {
		return ""
	}
	rows := make([][]string, 0, page.Len())
	for i, item := range page.Items() {
		marker := " "
		if i == page.Selected {
			marker = "›"
		}
		rows = append(rows, []string{marker, item.Label, m.boundText(item, i == page.Selected)})
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight})
	for i, line := range lines {
		if i == page.Selected {
			lines[i] = styles.Selected.Render(line)
		}
	}
	header := styles.Title.Render(page.Title)
	return styles.Inspector.Render(header + "\n" + strings.Join(lines, "\n"))
}

// boundText describes the state an item is bound to.
func (m *Model) boundText(item *menu.Item, selected bool) string {
	switch p := item.Payload.(type) {
	case menu.Toggle:
		if *p.Value {
			return "on"
		}
		return "off"
	case menu.Radio:
		if *p.Selected {
			return "(•)"
		}
		return "( )"
	case menu.Value:
		return valueText(p, selected && m.engine.Navigator().Editing())
	case menu.Submenu:
		return "›"
	case menu.Back:
		return "‹"
	default:
		return ""
	}
}
