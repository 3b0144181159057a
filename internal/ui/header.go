package ui

import (
	"fmt"
	"strings"
	"time"
)

// renderHeader renders the status bar: logo, list size and the outcome of
// the last lookup.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{
		bg.Render("marquee", styles.Logo),
		bg.Render("List:", styles.MutedText) + bg.Space() +
			bg.Render(fmt.Sprintf("%d", m.list.Len()), styles.Text),
	}

	st := m.form.State()
	switch {
	case st.IsLoading:
		parts = append(parts,
			bg.Render(m.spin.View(), styles.AccentText)+bg.Space()+
				bg.Render("Searching", styles.InfoText))
	case m.status.text != "":
		style := styles.SuccessText
		if m.status.failed {
			style = styles.DangerText
		}
		limit := 60
		if compact {
			limit = 30
		}
		parts = append(parts, bg.Render(truncate(m.status.text, limit), style))
		if !m.status.at.IsZero() && !compact {
			parts = append(parts, bg.Render(m.status.at.Format("15:04:05"), styles.MutedText))
		}
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the one-line key hint bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	bindings := m.keys.ShortHelp()
	segments := make([]string, 0, len(bindings)+2)
	for _, b := range bindings {
		h := b.Help()
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("ctrl+t", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText),
		bg.Render("ctrl+l", styles.AccentText)+colon+bg.Render(m.layout, styles.FaintText),
	)

	return styles.Footer.Width(m.width).Render(strings.Join(segments, sep))
}

// humanizeDuration formats a lookup duration for the status line.
func humanizeDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "0ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return d.Round(time.Second).String()
	}
}
