package omdb

import (
	"errors"
	"fmt"
	"strings"
)

// NotAvailable is the value OMDb uses for fields it has no data for,
// most visibly Poster.
const NotAvailable = "N/A"

var (
	// ErrNotFound reports that OMDb answered but had no match for the title.
	ErrNotFound = errors.New("movie not found")

	// ErrMissingAPIKey is returned by NewClient when no key is configured.
	ErrMissingAPIKey = errors.New("omdb api key is required")
)

// Title mirrors the payload returned by a `?t=` title lookup.
type Title struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Plot     string `json:"Plot"`
	Poster   string `json:"Poster"`
	ImdbID   string `json:"imdbID"`
	Type     string `json:"Type"`
	Response string `json:"Response"`
	Error    string `json:"Error,omitempty"`
}

// OK reports whether OMDb flagged the response as a successful match.
func (t Title) OK() bool {
	return !strings.EqualFold(strings.TrimSpace(t.Response), "false")
}

// HasPoster reports whether the poster field holds a usable URL.
func (t Title) HasPoster() bool {
	poster := strings.TrimSpace(t.Poster)
	return poster != "" && poster != NotAvailable
}

// LookupError carries the message OMDb attached to a failed lookup.
type LookupError struct {
	Query   string
	Message string
}

func (e *LookupError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = ErrNotFound.Error()
	}
	return fmt.Sprintf("omdb lookup %q: %s", e.Query, msg)
}

// Unwrap lets callers match every lookup failure against ErrNotFound.
func (e *LookupError) Unwrap() error {
	return ErrNotFound
}
