// Package search implements the movie search form: the query the user is
// typing, the movie currently previewed, and the loading and error flags that
// drive the form's controls.
//
// Form is a plain state machine with no UI dependencies. The TUI feeds it
// keystrokes (SetQuery), asks it for a lookup Request (Submit), runs Lookup off
// the update loop and hands the Result back (Settle). Add reports the previewed
// movie to the list owner through a callback.
//
// Lookups are not cancelled and overlapping submits are allowed. Whichever
// Result is settled last determines the final state; Request.Seq only lets
// callers notice (and log) that an older response arrived after a newer one.
//
// Every lookup failure (not found, HTTP error, bad payload, timeout) collapses
// into HasError and the single MessageNotFound text.
package search
