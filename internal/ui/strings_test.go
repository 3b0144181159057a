package ui

import (
	"strings"
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"Alien", 10, "Alien"},
		{"  Alien  ", 10, "Alien"},
		{"The Good, the Bad and the Ugly", 10, "The Goo..."},
		{"Alien", 0, "Alien"},
		{"Alien", 2, "Al"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle_KeepsExtension(t *testing.T) {
	in := "https://m.media-amazon.com/images/M/MV5BMmQ2MmU3NzktZjAxOC00ZDZhLTk4YzEtMDMyMzcxY2IwMDAyXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_SX300.jpg"
	got := truncateMiddle(in, 40)
	if len([]rune(got)) != 40 {
		t.Fatalf("truncateMiddle length = %d, want 40 (%q)", len([]rune(got)), got)
	}
	if !strings.HasSuffix(got, ".jpg") || !strings.HasPrefix(got, "https://") || !strings.Contains(got, "…") {
		t.Fatalf("truncateMiddle = %q, want scheme, ellipsis and .jpg kept", got)
	}
	if got := truncateMiddle("short", 40); got != "short" {
		t.Fatalf("truncateMiddle(short) = %q", got)
	}
}

func TestWrap(t *testing.T) {
	got := wrap("a deadly lifeform stalks the crew", 10)
	want := []string{"a deadly", "lifeform", "stalks the", "crew"}
	if len(got) != len(want) {
		t.Fatalf("wrap = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("wrap = %q, want %q", got, want)
		}
	}

	got = wrap("abcdefghijkl", 5)
	if len(got) != 3 || got[0] != "abcde" || got[2] != "kl" {
		t.Fatalf("wrap long word = %q, want hard split", got)
	}

	if got := wrap("   ", 5); got != nil {
		t.Fatalf("wrap blank = %q, want nil", got)
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "movie", "movies"); got != "1 movie" {
		t.Fatalf("pluralize(1) = %q", got)
	}
	if got := pluralize(0, "movie", "movies"); got != "0 movies" {
		t.Fatalf("pluralize(0) = %q", got)
	}
}

func TestHumanizeDuration(t *testing.T) {
	cases := map[time.Duration]string{
		0:                       "0ms",
		230 * time.Millisecond:  "230ms",
		1500 * time.Millisecond: "1.5s",
		90 * time.Second:        "1m30s",
	}
	for in, want := range cases {
		if got := humanizeDuration(in); got != want {
			t.Fatalf("humanizeDuration(%v) = %q, want %q", in, got, want)
		}
	}
}
