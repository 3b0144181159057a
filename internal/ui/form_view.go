package ui

import (
	"strings"

	"github.com/five82/marquee/internal/search"
)

// renderForm renders the title input, the submit control, the error
// message and the add control.
func (m Model) renderForm(width int) string {
	styles := m.theme.Styles()
	st := m.form.State()

	var b strings.Builder
	b.WriteString(styles.MutedText.Render(search.LabelTitle))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	find := m.renderButton(m.form.SubmitLabel(), m.focus == focusFind, m.form.CanSubmit())
	b.WriteString(find)
	if st.IsLoading {
		b.WriteString(" ")
		b.WriteString(m.spin.View())
		b.WriteString(styles.MutedText.Render(" searching"))
	}

	if msg := m.form.ErrorMessage(); msg != "" {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(msg))
	}

	if st.Preview != nil {
		b.WriteString("\n")
		b.WriteString(m.renderButton(search.LabelAdd, m.focus == focusAdd, true))
	}

	return m.panel("Search", b.String(), width, m.focus == focusInput)
}

// renderButton renders a control label in its focused, enabled or
// disabled style.
func (m Model) renderButton(label string, focused, enabled bool) string {
	styles := m.theme.Styles()
	text := "[ " + label + " ]"
	switch {
	case !enabled:
		return styles.ButtonDisabled.Render(text)
	case focused:
		return styles.ButtonFocused.Render(text)
	default:
		return styles.Button.Render(text)
	}
}
