// Package http provides the authenticated puzzle site client, an
// implementation of advent.Fetcher backed by net/http.
package http

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/fwojciec/advent"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies the tool to the puzzle site operators.
const DefaultUserAgent = "github.com/fwojciec/advent"

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

// Ensure Fetcher implements advent.Fetcher at compile time.
var _ advent.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves puzzle pages with the user's session cookie attached.
// Requests are never retried; every failure surfaces as *advent.FetchError.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	baseURL   string
	userAgent string
	rps       float64
	limiter   *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL sets the site the session cookie is scoped to.
// Defaults to advent.DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = u
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit caps outgoing requests per second with no bursting.
// Zero or a negative value disables throttling.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.rps = rps
	}
}

// NewFetcher creates a Fetcher that authenticates with the given session
// token. An empty token is rejected before any network activity.
func NewFetcher(session string, opts ...Option) (*Fetcher, error) {
	if session == "" {
		return nil, advent.Errorf(advent.ECONFIG, "session token required")
	}

	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		baseURL:   advent.DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	base, err := url.Parse(f.baseURL)
	if err != nil || base.Host == "" {
		return nil, advent.Errorf(advent.ECONFIG, "invalid base URL %q", f.baseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	jar.SetCookies(base, []*http.Cookie{{
		Name:  SessionCookie,
		Value: session,
		Path:  "/",
	}})

	if f.rps > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(f.rps), 1)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		Jar:     jar,
	}

	return f, nil
}

// Fetch performs a GET on rawURL and returns the response body.
// Only HTTP 200 with a non-empty body counts as success.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", &advent.FetchError{URL: rawURL, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &advent.FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &advent.FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &advent.FetchError{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &advent.FetchError{URL: rawURL, Status: resp.StatusCode, Err: err}
	}
	if len(body) == 0 {
		return "", &advent.FetchError{URL: rawURL, Status: resp.StatusCode}
	}

	return string(body), nil
}

// Close releases idle connections held by the client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
