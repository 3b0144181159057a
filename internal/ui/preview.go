package ui

import (
	"strings"

	"github.com/five82/marquee/internal/search"
)

// renderPreview renders the previewed movie, or "" when there is none.
func (m Model) renderPreview(width int) string {
	mv := m.form.State().Preview
	if mv == nil {
		return ""
	}
	styles := m.theme.Styles()
	inner := maxInt(10, width-panelFrame)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(truncate(mv.Title, inner)))
	b.WriteString("\n")

	desc := wrap(mv.Description, inner)
	if len(desc) == 0 {
		b.WriteString(styles.FaintText.Render("No plot available."))
	} else {
		b.WriteString(styles.Text.Render(strings.Join(desc, "\n")))
	}
	b.WriteString("\n\n")

	poster := truncateMiddle(mv.ImgURL, inner-8)
	if mv.HasPlaceholder(m.placeholder) {
		poster = "no poster"
	}
	b.WriteString(styles.MutedText.Render("Poster  "))
	b.WriteString(styles.InfoText.Render(poster))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("IMDb    "))
	b.WriteString(styles.InfoText.Render(truncateMiddle(mv.ImdbURL, inner-8)))

	return m.panel(search.LabelPreview, b.String(), width, m.focus == focusAdd)
}
