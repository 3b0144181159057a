// Package ui provides the terminal user interface for marquee.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns a search.Form, which holds the
// query, preview, error and loading state, and renders it with bubbles
// components:
//
//   - textinput: the "Movie title" input
//   - spinner: the loading indicator next to the submit control
//   - viewport: the scrollable watch list panel
//
// # Package Structure
//
//   - app.go: Model, Update loop, key handling, lookup commands and Run
//   - form_view.go: input, submit/add controls and error message
//   - preview.go: the Preview panel
//   - list_view.go: the watch list panel
//   - panels.go: split/stacked layout and panel chrome
//   - header.go: status bar and key hint bar
//   - help.go: help overlay built from the key map
//   - theme.go: color themes (Dracula, Nightfox, Slate)
//
// # Lookups
//
// Submitting returns a tea.Cmd that runs search.Lookup with the configured
// timeout and delivers a lookupMsg. Overlapping lookups are allowed; the
// last one to arrive decides the form state.
//
// # Focus
//
// Focus cycles input → submit → add with tab and shift+tab, skipping the
// submit control while the query is empty and the add control while
// nothing is previewed. Printable keys only reach the input while it is
// focused, so "?" opens help from the buttons but types into the input.
//
// # Preferences
//
// Theme and layout changes are written to the prefs file immediately.
package ui
