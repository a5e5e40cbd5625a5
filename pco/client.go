package pco

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.planningcenteronline.com"

const (
	defaultPerPage     = 25
	defaultConcurrency = 4
	versionHeader      = "X-PCO-API-Version"
	requestIDHeader    = "X-Request-Id"
)

// Client performs authenticated requests against the Planning Center API.
// It is safe for concurrent use.
type Client struct {
	baseURL     *url.URL
	auth        AuthStrategy
	http        *http.Client
	logger      *zap.Logger
	versions    map[string]string
	perPage     int
	concurrency int
	userAgent   string
	cache       Cache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithAPIVersions pins the API version sent for each app.
func WithAPIVersions(versions map[string]string) Option {
	return func(c *Client) {
		for app, v := range versions {
			c.versions[app] = v
		}
	}
}

// WithPerPage sets the page size used when a list call does not set one.
func WithPerPage(n int) Option {
	return func(c *Client) { c.perPage = n }
}

// WithConcurrency bounds the number of requests LoadAll keeps in flight.
func WithConcurrency(n int) Option {
	return func(c *Client) { c.concurrency = n }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithCache enables caching of GET responses.
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, auth AuthStrategy, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}
	c := &Client{
		baseURL:     u,
		auth:        auth,
		http:        &http.Client{Timeout: 30 * time.Second},
		logger:      zap.NewNop(),
		versions:    make(map[string]string),
		perPage:     defaultPerPage,
		concurrency: defaultConcurrency,
		userAgent:   "planningcenter-go",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Request describes one API call.
type Request struct {
	// App selects the API version header. It may be empty.
	App    string
	Method string
	// Path is relative to the base URL, or an absolute URL on the same host.
	Path  string
	Query url.Values
	Body  any
}

// Do performs r and decodes the JSON:API document. Responses with status
// 400 or above are returned as *APIError.
func (c *Client) Do(ctx context.Context, r Request) (*Document, error) {
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	if resp.status >= 400 {
		return nil, resp.apiError()
	}
	if len(bytes.TrimSpace(resp.body)) == 0 {
		return &Document{}, nil
	}
	var doc Document
	if err := json.Unmarshal(resp.body, &doc); err != nil {
		return nil, fmt.Errorf("decoding response from %s: %w", resp.url, err)
	}
	return &doc, nil
}

// Raw performs an authenticated request and returns the body and status
// code without interpreting them.
func (c *Client) Raw(ctx context.Context, r Request) ([]byte, int, error) {
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, 0, err
	}
	return resp.body, resp.status, nil
}

type response struct {
	method string
	url    string
	status int
	header http.Header
	body   []byte
}

func (r *response) apiError() *APIError {
	apiErr := &APIError{
		StatusCode: r.status,
		Method:     r.method,
		URL:        r.url,
		Body:       r.body,
	}
	if r.header != nil {
		apiErr.RetryAfter = parseRetryAfter(r.header.Get("Retry-After"))
	}
	var doc struct {
		Errors []ErrorObject `json:"errors"`
	}
	if json.Unmarshal(r.body, &doc) == nil {
		apiErr.Errors = doc.Errors
	}
	return apiErr
}

func (c *Client) send(ctx context.Context, r Request) (*response, error) {
	target, err := c.resolve(r.Path, r.Query)
	if err != nil {
		return nil, err
	}
	method := strings.ToUpper(r.Method)
	if method == "" {
		method = http.MethodGet
	}

	key := c.cacheKey(r.App, target)
	if method == http.MethodGet && c.cache != nil {
		if data := c.cache.Get(key); data != nil {
			c.logger.Debug("cache hit", zap.String("url", target))
			return &response{method: method, url: target, status: http.StatusOK, body: data}, nil
		}
	}

	var bodyReader io.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if bodyReader != nil {
		req.Header.Set("Content-Type", ContentType)
	}
	req.Header.Set("Accept", ContentType)
	req.Header.Set("User-Agent", c.userAgent)
	if v := c.versions[r.App]; v != "" {
		req.Header.Set(versionHeader, v)
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	if c.auth != nil {
		c.auth.Apply(req)
	}

	start := time.Now()
	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	c.logger.Debug("api request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", httpResp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if c.cache != nil && httpResp.StatusCode < 300 {
		if method == http.MethodGet {
			if err := c.cache.Put(key, body); err != nil {
				c.logger.Warn("caching response", zap.Error(err))
			}
		} else if err := c.cache.Clear(); err != nil {
			c.logger.Warn("clearing cache", zap.Error(err))
		}
	}

	return &response{
		method: method,
		url:    target,
		status: httpResp.StatusCode,
		header: httpResp.Header,
		body:   body,
	}, nil
}

// resolve joins path onto the base URL. Absolute URLs, as found in
// pagination links, must share the base scheme and host; their own query
// wins.
func (c *Client) resolve(path string, query url.Values) (string, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		u, err := url.Parse(path)
		if err != nil {
			return "", fmt.Errorf("parsing link %q: %w", path, err)
		}
		if u.Scheme != c.baseURL.Scheme || u.Host != c.baseURL.Host {
			return "", fmt.Errorf("%w: %s://%s", ErrForeignLink, u.Scheme, u.Host)
		}
		if len(query) > 0 {
			q := u.Query()
			for k, vals := range query {
				if _, ok := q[k]; !ok {
					q[k] = vals
				}
			}
			u.RawQuery = q.Encode()
		}
		return u.String(), nil
	}

	u := *c.baseURL
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// cacheKey scopes a cached response to the credentials and the API
// version it was fetched with.
func (c *Client) cacheKey(app, target string) string {
	var identity string
	switch a := c.auth.(type) {
	case nil:
	case *BasicAuth:
		identity = "basic:" + a.ApplicationID
	case *BearerAuth:
		sum := sha256.Sum256([]byte(a.Token))
		identity = "bearer:" + hex.EncodeToString(sum[:])
	default:
		identity = fmt.Sprintf("%T", a)
	}
	return strings.Join([]string{identity, c.versions[app], target}, "\n")
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}
