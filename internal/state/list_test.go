package state

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/five82/marquee/internal/movie"
)

func TestList_AddPreservesOrder(t *testing.T) {
	var l List

	before := time.Now()
	for _, id := range []string{"tt1", "tt2", "tt3"} {
		if !l.Add(movie.Movie{ImdbID: id, Title: "title " + id}) {
			t.Fatalf("Add(%s) = false, want true", id)
		}
	}

	got := l.Movies()
	if len(got) != 3 || got[0].ImdbID != "tt1" || got[1].ImdbID != "tt2" || got[2].ImdbID != "tt3" {
		t.Fatalf("Movies() = %#v, want tt1, tt2, tt3 in order", got)
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if l.UpdatedAt().Before(before) {
		t.Fatalf("UpdatedAt = %v, want >= %v", l.UpdatedAt(), before)
	}
}

func TestList_AddDuplicateIsNoop(t *testing.T) {
	var l List
	l.Add(movie.Movie{ImdbID: "tt1", Title: "first"})
	l.Add(movie.Movie{ImdbID: "tt2", Title: "second"})
	prev := l.Movies()

	if l.Add(movie.Movie{ImdbID: "tt1", Title: "impostor"}) {
		t.Fatalf("Add duplicate = true, want false")
	}

	got := l.Movies()
	if len(got) != len(prev) {
		t.Fatalf("len = %d, want %d", len(got), len(prev))
	}
	for i := range prev {
		if got[i] != prev[i] {
			t.Fatalf("entry %d changed: got %#v want %#v", i, got[i], prev[i])
		}
	}
	if !l.Contains("tt1") || !l.Contains(" tt2 ") {
		t.Fatalf("Contains should report listed ids")
	}
	if l.Contains("tt3") {
		t.Fatalf("Contains(tt3) = true, want false")
	}
}

func TestList_MoviesReturnsClone(t *testing.T) {
	var l List
	l.Add(movie.Movie{ImdbID: "tt1", Title: "original"})

	snap := l.Movies()
	snap[0].Title = "mutated"

	if got := l.Movies()[0].Title; got != "original" {
		t.Fatalf("Movies should clone; got title %q want original", got)
	}
}

func TestList_ZeroValue(t *testing.T) {
	var l List
	if l.Len() != 0 || l.Movies() != nil || l.Contains("tt1") {
		t.Fatalf("zero List should be empty")
	}
	if !l.UpdatedAt().IsZero() {
		t.Fatalf("UpdatedAt = %v, want zero", l.UpdatedAt())
	}
}

func TestList_ConcurrentAddsKeepOneEntryPerID(t *testing.T) {
	var l List
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Add(movie.Movie{ImdbID: fmt.Sprintf("tt%d", i%5)})
		}(i)
	}
	wg.Wait()

	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5 unique ids", l.Len())
	}
}
