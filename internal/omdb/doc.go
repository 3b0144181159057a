// Package omdb is a small client for the OMDb movie database API.
//
// Only the single-title lookup (`?t=<title>`) is implemented. The client sends
// the API key as a query parameter, decodes the JSON payload into Title and
// turns OMDb's `"Response": "False"` marker into a *LookupError that matches
// ErrNotFound via errors.Is.
//
// The Finder interface is what the rest of marquee depends on, so tests can
// substitute a fake without an HTTP server.
//
// When the context logger (zerolog.Ctx) has debug enabled, every request is
// logged as an equivalent curl command with the API key redacted.
package omdb
