package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"moul.io/http2curl"
)

// Finder looks a movie up by title.
// This interface is implemented by *Client and can be used for testing.
type Finder interface {
	Find(ctx context.Context, title string) (Title, error)
}

// Ensure Client implements Finder at compile time.
var _ Finder = (*Client)(nil)

// Client talks to the OMDb HTTP API.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
}

// Options configure a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	UserAgent string
}

const (
	DefaultBaseURL   = "https://www.omdbapi.com/"
	defaultUserAgent = "marquee/0.1"
	requestTimeout   = 5 * time.Second
	redactedKey      = "REDACTED"
)

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = requestTimeout
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		baseURL: base,
		apiKey:  key,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}, nil
}

// Find retrieves the best match OMDb has for title.
func (c *Client) Find(ctx context.Context, title string) (Title, error) {
	if c == nil {
		return Title{}, fmt.Errorf("client is nil")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return Title{}, fmt.Errorf("title is empty")
	}

	values := url.Values{}
	values.Set("apikey", c.apiKey)
	values.Set("t", title)

	var payload Title
	if err := c.doQuery(ctx, values, &payload); err != nil {
		return Title{}, err
	}
	if !payload.OK() {
		return Title{}, &LookupError{Query: title, Message: payload.Error}
	}
	return payload, nil
}

func (c *Client) doQuery(ctx context.Context, values url.Values, dest any) error {
	reqURL := *c.baseURL
	reqURL.RawQuery = values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	logRequest(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", redactError(err, c.apiKey))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", c.baseURL.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// logRequest dumps req as a curl command when the context logger is at debug.
func logRequest(ctx context.Context, req *http.Request) {
	evt := zerolog.Ctx(ctx).Debug()
	if !evt.Enabled() {
		return
	}
	logged := req.Clone(ctx)
	query := logged.URL.Query()
	if query.Has("apikey") {
		query.Set("apikey", redactedKey)
	}
	logged.URL.RawQuery = query.Encode()
	cmd, err := http2curl.GetCurlCommand(logged)
	if err != nil {
		evt.Err(err).Msg("omdb request")
		return
	}
	evt.Str("curl", cmd.String()).Msg("omdb request")
}

// redactError strips the API key from transport errors, which embed the URL.
func redactError(err error, apiKey string) error {
	if err == nil || apiKey == "" || !strings.Contains(err.Error(), apiKey) {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), apiKey, redactedKey))
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
