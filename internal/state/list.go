package state

import (
	"strings"
	"sync"
	"time"

	"github.com/five82/marquee/internal/movie"
)

// List is an ordered, IMDb-id-deduplicated collection of movies.
type List struct {
	mu        sync.RWMutex
	movies    []movie.Movie
	index     map[string]int
	updatedAt time.Time
}

// Contains reports whether a movie with imdbID is already listed.
func (l *List) Contains(imdbID string) bool {
	key := listKey(imdbID)
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.index[key]
	return ok
}

// Add appends m unless its IMDb id is already present. It reports whether the
// list changed.
func (l *List) Add(m movie.Movie) bool {
	key := listKey(m.ImdbID)
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.index == nil {
		l.index = make(map[string]int)
	}
	if _, ok := l.index[key]; ok {
		return false
	}
	l.index[key] = len(l.movies)
	l.movies = append(l.movies, m)
	l.updatedAt = time.Now()
	return true
}

// Movies returns a copy of the listed movies in insertion order.
func (l *List) Movies() []movie.Movie {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return cloneMovies(l.movies)
}

// Len returns the number of listed movies.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.movies)
}

// UpdatedAt returns when the last movie was added; zero when the list is empty.
func (l *List) UpdatedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.updatedAt
}

func listKey(imdbID string) string {
	return strings.TrimSpace(imdbID)
}

func cloneMovies(movies []movie.Movie) []movie.Movie {
	if len(movies) == 0 {
		return nil
	}
	dup := make([]movie.Movie, len(movies))
	copy(dup, movies)
	return dup
}
