// Package state holds the watch list that the search form appends to.
//
// # Overview
//
// The List is owned by the application shell, not by the search form. The form
// only asks whether an IMDb id is already present and, when it is not, hands
// the movie to the shell's append callback, which calls List.Add.
//
//	Search form:                   Shell:
//	┌──────────────────┐          ┌──────────────────┐
//	│ Contains(id)?    │─────────→│ List (RWMutex)   │
//	│ onAdded(movie)   │─────────→│ Add(movie)       │
//	└──────────────────┘          │ Movies() (clone) │──→ list panel
//	                              └──────────────────┘
//
// # Guarantees
//
//   - Entries are kept in insertion order and are never removed or reordered.
//   - At most one entry exists per IMDb id; Add on a known id is a no-op.
//   - Movies returns a copy, so callers may keep or mutate it freely.
//   - All methods are safe for concurrent use; the zero value is ready to use.
//
// Add re-checks membership under the write lock, so the no-duplicate rule holds
// even if two callers race past a Contains check.
package state
