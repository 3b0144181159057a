// Package config loads marquee's configuration.
//
// # Resolution Order
//
// Load builds a Config in three layers, later layers winning:
//
//  1. Hardcoded defaults
//  2. The TOML file (~/.config/marquee/config.toml unless a path is given)
//  3. A .env file in the working directory and the process environment
//
// A missing config file is not an error. Blank values never override a
// lower layer.
//
// # TOML Format
//
//	api_key = "abcd1234"
//	api_url = "https://www.omdbapi.com/"
//	placeholder_url = "https://via.placeholder.com/360x270.png?text=no%20preview"
//	request_timeout = "5s"
//	log_file = "~/.local/state/marquee/marquee.log"
//	log_level = "info"
//
// # Environment
//
// Every field can be set with a MARQUEE_ prefixed variable
// (MARQUEE_LOG_LEVEL, MARQUEE_REQUEST_TIMEOUT, ...). The OMDb key and URL also
// accept the conventional OMDB_API_KEY and OMDB_API_URL.
//
// # Validation
//
// Load does not require an API key so that callers can report a friendly
// error; call Validate before building an OMDb client.
package config
