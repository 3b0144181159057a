package ui

import (
	"fmt"
	"strings"
)

// refreshList rebuilds the list viewport content from the shared list.
func (m *Model) refreshList() {
	styles := m.theme.Styles()
	movies := m.list.Movies()
	if len(movies) == 0 {
		m.listView.SetContent(styles.FaintText.Render("Nothing here yet. Preview a movie and press ctrl+a."))
		return
	}

	width := m.listView.Width
	var b strings.Builder
	for i, mv := range movies {
		if i > 0 {
			b.WriteString("\n")
		}
		index := fmt.Sprintf("%2d. ", i+1)
		b.WriteString(styles.MutedText.Render(index))
		b.WriteString(styles.Text.Render(truncate(mv.Title, width-len(index))))
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", len(index)))
		b.WriteString(styles.FaintText.Render(truncateMiddle(mv.ImdbURL, width-len(index))))
	}
	m.listView.SetContent(b.String())
}

// renderListPanel renders the watch list with its scroll position.
func (m Model) renderListPanel(width int) string {
	title := "Watch list (" + pluralize(m.list.Len(), "movie", "movies") + ")"
	if m.listView.TotalLineCount() > m.listView.Height {
		title += fmt.Sprintf("  %3.f%%", m.listView.ScrollPercent()*100)
	}
	return m.panel(title, m.listView.View(), width, false)
}
