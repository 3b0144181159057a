// Package app provides the orchestration layer for marquee.
//
// # Overview
//
// This package wires together configuration, logging, preferences, the OMDb
// client, the watch list and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Startup
//
//  1. Load config (TOML file, .env, environment) and validate it
//  2. Open the rotating log file and put the logger on the context
//  3. Load UI preferences, falling back to defaults with a warning
//  4. Build the OMDb client and an empty state.List
//  5. Start the TUI and block until the user quits or the context ends
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Unreadable or malformed config file
//   - Missing OMDb API key
//   - Invalid OMDb base URL
//
// Lookup failures never reach Run; the search form reports them inline.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("marquee failed: %v", err)
//	}
package app
