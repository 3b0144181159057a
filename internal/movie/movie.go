// Package movie defines the Movie value shown in previews and kept in the
// watch list, and how it is built from an OMDb lookup.
package movie

import (
	"strings"

	"github.com/five82/marquee/internal/omdb"
)

// PlaceholderImageURL is shown when OMDb has no poster for a title.
const PlaceholderImageURL = "https://via.placeholder.com/360x270.png?text=no%20preview"

const imdbTitleURL = "https://www.imdb.com/title/"

// Movie is an immutable snapshot of a lookup result, identified by ImdbID.
type Movie struct {
	Title       string
	Description string
	ImgURL      string
	ImdbID      string
	ImdbURL     string
}

// FromTitle maps an OMDb payload into a Movie. A poster equal to omdb.NotAvailable
// is replaced by placeholder, or by PlaceholderImageURL when placeholder is blank.
func FromTitle(t omdb.Title, placeholder string) Movie {
	img := t.Poster
	if img == omdb.NotAvailable {
		img = strings.TrimSpace(placeholder)
		if img == "" {
			img = PlaceholderImageURL
		}
	}
	id := strings.TrimSpace(t.ImdbID)
	return Movie{
		Title:       t.Title,
		Description: t.Plot,
		ImgURL:      img,
		ImdbID:      id,
		ImdbURL:     IMDbURL(id),
	}
}

// IMDbURL returns the public IMDb page for id, or "" when id is blank.
func IMDbURL(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	return imdbTitleURL + id + "/"
}

// HasPlaceholder reports whether the movie is showing the stand-in image.
func (m Movie) HasPlaceholder(placeholder string) bool {
	if strings.TrimSpace(placeholder) == "" {
		placeholder = PlaceholderImageURL
	}
	return m.ImgURL == placeholder
}
