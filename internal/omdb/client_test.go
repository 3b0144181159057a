package omdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("omdb.example.com")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Path != "/" {
		t.Fatalf("url = %q, want https scheme and root path", u.String())
	}

	u, err = parseBaseURL("http://example.com:1234/v1/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.RawQuery != "" || u.Fragment != "" || u.Path != "/v1/" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL(http://) returned nil error, want missing host")
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Options{APIKey: "   "})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("NewClient error = %v, want ErrMissingAPIKey", err)
	}
}

func TestClient_FindEncodesQueryAndDecodes(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotUserAgent, gotAccept string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Title{
			Title:    "Alien",
			Year:     "1979",
			Plot:     "The crew of a commercial spacecraft encounters a deadly lifeform.",
			Poster:   "https://img.example/alien.jpg",
			ImdbID:   "tt0078748",
			Response: "True",
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL, APIKey: "secret"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	got, err := c.Find(ctx, "  alien ")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if got.Title != "Alien" || got.ImdbID != "tt0078748" || !got.HasPoster() {
		t.Fatalf("Find payload = %#v, want Alien tt0078748 with poster", got)
	}
	if gotQuery.Get("t") != "alien" || gotQuery.Get("apikey") != "secret" {
		t.Fatalf("query = %v, want t=alien apikey=secret", gotQuery)
	}
	if !strings.HasPrefix(gotUserAgent, "marquee/") {
		t.Fatalf("User-Agent = %q, want marquee/*", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_FindNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL, APIKey: "secret"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Find(context.Background(), "zzzz")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Find error = %v, want ErrNotFound", err)
	}
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("Find error = %T, want *LookupError", err)
	}
	if lookupErr.Query != "zzzz" || lookupErr.Message != "Movie not found!" {
		t.Fatalf("LookupError = %#v, want query zzzz and API message", lookupErr)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("t") {
		case "broken":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "nope", http.StatusUnauthorized)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL, APIKey: "secret"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Find(context.Background(), "broken")
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("Find error = %v, want decode response error", err)
	}

	_, err = c.Find(context.Background(), "anything")
	if err == nil || !strings.Contains(err.Error(), "returned status 401") {
		t.Fatalf("Find error = %v, want status 401 error", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("transport error should not match ErrNotFound")
	}
}

func TestClient_FindRejectsEmptyTitle(t *testing.T) {
	c, err := NewClient(Options{BaseURL: "127.0.0.1:1", APIKey: "secret"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.Find(context.Background(), "   "); err == nil {
		t.Fatalf("Find returned nil error, want error")
	}
}

func TestClient_DebugLogRedactsKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"True","Title":"Heat","imdbID":"tt0113277"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL, APIKey: "topsecret"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	if _, err := c.Find(ctx, "heat"); err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "curl") || !strings.Contains(out, redactedKey) {
		t.Fatalf("debug log = %q, want curl command with redacted key", out)
	}
	if strings.Contains(out, "topsecret") {
		t.Fatalf("debug log leaked api key: %q", out)
	}
}

func TestTitle_Flags(t *testing.T) {
	cases := []struct {
		name       string
		title      Title
		wantOK     bool
		wantPoster bool
	}{
		{"match with poster", Title{Response: "True", Poster: "https://x/y.jpg"}, true, true},
		{"match without poster", Title{Response: "True", Poster: "N/A"}, true, false},
		{"empty poster", Title{Response: "True"}, true, false},
		{"not found", Title{Response: "False"}, false, false},
		{"not found lowercase", Title{Response: " false "}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.title.OK(); got != tc.wantOK {
				t.Fatalf("OK() = %v, want %v", got, tc.wantOK)
			}
			if got := tc.title.HasPoster(); got != tc.wantPoster {
				t.Fatalf("HasPoster() = %v, want %v", got, tc.wantPoster)
			}
		})
	}
}
