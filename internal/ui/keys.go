package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit         key.Binding
	Help         key.Binding
	HelpAlt      key.Binding
	CycleTheme   key.Binding
	ToggleLayout key.Binding
	Escape       key.Binding

	// Form
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
	Add     key.Binding

	// List
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Toggle help"),
		),
		// "?" is a printable key, so it only opens help when the input is not focused.
		HelpAlt: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help (off the input)"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Cycle theme"),
		),
		ToggleLayout: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Split/stacked layout"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to the title input"),
		),

		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous control"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Search / activate"),
		),
		Add: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "Add preview to the list"),
		),

		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Scroll list up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Scroll list down"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Next, k.Add, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one group per section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Next, k.Prev, k.Add, k.Escape},
		{k.PageUp, k.PageDown},
		{k.CycleTheme, k.ToggleLayout, k.Help, k.HelpAlt, k.Quit},
	}
}
