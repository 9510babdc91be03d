package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const formContentType = "application/x-www-form-urlencoded"

// HTTPClient posts credentials as an urlencoded form to a fixed login URL.
// It applies no timeout of its own; cancellation comes from the caller's
// context and the underlying http.Client.
type HTTPClient struct {
	loginURL string
	http     *http.Client
}

// NewHTTPClient returns a client for loginURL. A nil hc means
// http.DefaultClient.
func NewHTTPClient(loginURL string, hc *http.Client) (*HTTPClient, error) {
	u, err := url.Parse(loginURL)
	if err != nil {
		return nil, fmt.Errorf("invalid login url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid login url %q: scheme must be http or https", loginURL)
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{loginURL: loginURL, http: hc}, nil
}

// LoginURL reports the endpoint credentials are sent to.
func (c *HTTPClient) LoginURL() string {
	return c.loginURL
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) error {
	form := url.Values{
		"username": {username},
		"password": {string(password)},
		"api":      {"false"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", formContentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	// the body carries nothing we need; drain it so the connection is reused
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
