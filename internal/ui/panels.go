package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/prefs"
)

// panelFrame is the horizontal space taken by a panel's border and padding.
const panelFrame = 4

// splitLayout reports whether the form and list sit side by side.
func (m Model) splitLayout() bool {
	return m.layout != prefs.LayoutStacked && m.width >= LayoutCompactWidth
}

// panelWidths returns the outer widths of the form column and the list panel.
func (m Model) panelWidths() (form, list int) {
	if !m.splitLayout() {
		return m.width, m.width
	}
	form = m.width * LayoutFormRatio / 100
	return form, m.width - form
}

// resize recomputes component sizes after a window or layout change.
func (m *Model) resize() {
	formWidth, listWidth := m.panelWidths()
	m.input.Width = maxInt(1, formWidth-panelFrame-lipgloss.Width(m.input.Prompt)-1)

	bodyHeight := m.height - 2 // header + command bar
	listHeight := bodyHeight - 3
	if !m.splitLayout() {
		listHeight = bodyHeight/3 - 3
	}
	m.listView.Width = maxInt(1, listWidth-panelFrame)
	m.listView.Height = maxInt(LayoutMinListHeight, listHeight)
	m.refreshList()
}

// renderBody lays out the form, the preview and the list panel.
func (m Model) renderBody() string {
	formWidth, listWidth := m.panelWidths()

	column := m.renderForm(formWidth)
	if preview := m.renderPreview(formWidth); preview != "" {
		column = lipgloss.JoinVertical(lipgloss.Left, column, preview)
	}
	list := m.renderListPanel(listWidth)

	if m.splitLayout() {
		return lipgloss.JoinHorizontal(lipgloss.Top, column, list)
	}
	return lipgloss.JoinVertical(lipgloss.Left, column, list)
}

// panel wraps body in a bordered box of the given outer width with a title line.
func (m Model) panel(title, body string, width int, focused bool) string {
	styles := m.theme.Styles()
	border := m.theme.Border
	if focused {
		border = m.theme.BorderFocus
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
	}

	return styles.Panel.
		BorderForeground(lipgloss.Color(border)).
		Width(maxInt(1, width-2)).
		Render(b.String())
}
