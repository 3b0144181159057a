package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/movie"
	"github.com/five82/marquee/internal/omdb"
)

// User-facing strings of the form.
const (
	LabelTitle       = "Movie title"
	InputPlaceholder = "Enter a title to search"
	LabelFind        = "Find a movie"
	LabelRetry       = "Search again"
	LabelAdd         = "Add to the list"
	LabelPreview     = "Preview"
	MessageNotFound  = "Can't find a movie with such a title"
)

var errNoFinder = errors.New("no lookup service configured")

// State is the observable state of the form.
type State struct {
	Query     string
	Preview   *movie.Movie
	HasError  bool
	IsLoading bool
}

// Request describes one submitted lookup.
type Request struct {
	Seq       uint64
	ID        xid.ID
	Query     string
	StartedAt time.Time
}

// Result is the settled outcome of a Request.
type Result struct {
	Request Request
	Title   omdb.Title
	Err     error
	Elapsed time.Duration
}

// Membership answers whether the list owner already holds an IMDb id.
type Membership interface {
	Contains(imdbID string) bool
}

// Form holds the search state. The zero value is usable and falls back to
// movie.PlaceholderImageURL for missing posters.
type Form struct {
	state       State
	placeholder string
	seq         uint64
	settledSeq  uint64
}

// NewForm returns a Form that substitutes placeholder for missing posters.
func NewForm(placeholder string) Form {
	return Form{placeholder: strings.TrimSpace(placeholder)}
}

// NormalizeQuery trims and lowercases raw input.
func NormalizeQuery(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// State returns a copy of the current state.
func (f *Form) State() State {
	return f.state
}

// SetQuery stores the normalized text and clears the error flag.
func (f *Form) SetQuery(text string) {
	f.state.Query = NormalizeQuery(text)
	f.state.HasError = false
}

// CanSubmit reports whether the submit control is enabled.
func (f *Form) CanSubmit() bool {
	return f.state.Query != ""
}

// Submit starts a lookup for the current query. It returns false, and changes
// nothing, when the query is empty.
func (f *Form) Submit() (Request, bool) {
	if !f.CanSubmit() {
		return Request{}, false
	}
	f.seq++
	f.state.IsLoading = true
	return Request{
		Seq:       f.seq,
		ID:        xid.New(),
		Query:     f.state.Query,
		StartedAt: time.Now(),
	}, true
}

// Settle applies a finished lookup. Failures set HasError and keep the current
// preview; successes replace the preview and clear HasError. IsLoading is
// cleared either way.
func (f *Form) Settle(res Result) {
	f.state.IsLoading = false
	if res.Request.Seq > f.settledSeq {
		f.settledSeq = res.Request.Seq
	}
	if res.Err != nil {
		f.state.HasError = true
		return
	}
	m := movie.FromTitle(res.Title, f.placeholder)
	f.state.Preview = &m
	f.state.HasError = false
}

// Superseded reports whether a newer request than res has already settled.
func (f *Form) Superseded(res Result) bool {
	return res.Request.Seq < f.settledSeq
}

// Add hands the previewed movie to onAdded unless list already contains its
// IMDb id, then clears the query. The preview stays set. Add is a no-op
// without a preview. It reports whether onAdded was called.
func (f *Form) Add(list Membership, onAdded func(movie.Movie)) bool {
	if f.state.Preview == nil {
		return false
	}
	m := *f.state.Preview
	added := false
	if list == nil || !list.Contains(m.ImdbID) {
		if onAdded != nil {
			onAdded(m)
		}
		added = true
	}
	f.state.Query = ""
	return added
}

// SubmitLabel returns the text of the submit control.
func (f *Form) SubmitLabel() string {
	if f.state.HasError {
		return LabelRetry
	}
	return LabelFind
}

// ErrorMessage returns the message to show under the input, or "".
func (f *Form) ErrorMessage() string {
	if f.state.HasError {
		return MessageNotFound
	}
	return ""
}

// Lookup runs req against finder and logs the outcome on the context logger.
func Lookup(ctx context.Context, finder omdb.Finder, req Request) Result {
	log := zerolog.Ctx(ctx).With().
		Str("request_id", req.ID.String()).
		Uint64("seq", req.Seq).
		Str("query", req.Query).
		Logger()

	start := time.Now()
	res := Result{Request: req}
	if finder == nil {
		res.Err = errNoFinder
	} else {
		res.Title, res.Err = finder.Find(ctx, req.Query)
	}
	res.Elapsed = time.Since(start)

	if res.Err != nil {
		log.Warn().Err(res.Err).Dur("elapsed", res.Elapsed).Msg("lookup failed")
		return res
	}
	log.Info().
		Str("imdb_id", res.Title.ImdbID).
		Str("title", res.Title.Title).
		Dur("elapsed", res.Elapsed).
		Msg("lookup succeeded")
	return res
}
