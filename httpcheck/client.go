package httpcheck

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/log"
)

const (
	// UserAgent identifies the smoke tests to the CDNs.
	UserAgent = "rust-lang/infra-smoke-tests"

	DefaultTimeout = 30 * time.Second

	maxBodyRead = 1 << 20 // 1MB
)

// Client sends the requests of the checks. It is safe for concurrent use.
type Client struct {
	follow     *http.Client
	noRedirect *http.Client
	log        log.Logger
}

// NewClient creates a client whose requests time out after timeout.
// A zero timeout uses DefaultTimeout.
func NewClient(timeout time.Duration, logger log.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.Root()
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &Client{
		follow: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		noRedirect: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: logger.New("component", "httpcheck"),
	}
}

// Request describes a single request of a check.
type Request struct {
	Method string
	URL    string
	Header http.Header
	// NoRedirect returns redirect responses instead of following them.
	NoRedirect bool
}

// Response is a fully read response. Body holds at most 1MB and is empty for HEAD requests.
type Response struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Get sends a GET request that follows redirects.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, URL: url})
}

// Head sends a HEAD request that follows redirects.
func (c *Client) Head(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodHead, URL: url})
}

// Do sends the request and reads the response. Transport errors are returned as is so that
// their description ends up in the test result.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, r.URL, nil)
	if err != nil {
		return nil, err
	}
	for name, values := range r.Header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	req.Header.Set("User-Agent", UserAgent)

	client := c.follow
	if r.NoRedirect {
		client = c.noRedirect
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		c.log.Debug("Request failed", "method", method, "url", r.URL, "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	var body []byte
	if method != http.MethodHead {
		body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyRead))
		if err != nil {
			return nil, err
		}
	}

	c.log.Debug("Request finished",
		"method", method,
		"url", r.URL,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	return &Response{
		URL:        r.URL,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
