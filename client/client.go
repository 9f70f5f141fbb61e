// Package client is the Go counterpart of the dashboard's API client: every
// request attaches the stored bearer token, times out after ten seconds and
// transient failures are retried with exponential backoff.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// ErrTimeout is returned when a single attempt exceeds the request timeout.
// Timeouts are not retried: the server may have applied the write already.
var ErrTimeout = errors.New("request timeout - please check your connection and try again")

// APIError carries a non-2xx response's status and server message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// Pagination mirrors the server's paging summary.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int64 `json:"pages"`
}

// Response is the decoded envelope of a successful call.
type Response struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
}

const (
	defaultTimeout = 10 * time.Second
	defaultRetries = 3
)

// Client issues requests against the admin panel API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client

	timeout time.Duration
	backoff func(attempt int) time.Duration
}

// New builds a client with a tuned transport. http.DefaultClient has no
// timeout, so a custom client is always used.
func New(baseURL string) *Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Transport: t},
		timeout:    defaultTimeout,
		backoff: func(attempt int) time.Duration {
			return time.Duration(1<<attempt) * time.Second
		},
	}
}

// Request performs one API call with up to retries attempts. Each attempt has
// its own timeout. A non-2xx response or a timeout fails immediately; only
// transport-level failures are retried, and they are retried for every method,
// including non-idempotent writes, matching the dashboard's behavior.
func (c *Client) Request(ctx context.Context, method, endpoint string, body interface{}, retries int) (*Response, error) {
	if retries < 1 {
		retries = defaultRetries
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		resp, err := c.attempt(ctx, method, endpoint, payload)
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, ErrTimeout) {
			return nil, err
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, err
		}
		lastErr = err

		if attempt == retries {
			break
		}
		select {
		case <-time.After(c.backoff(attempt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, method, endpoint string, payload []byte) (*Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, c.BaseURL+endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, ErrTimeout
		}
		return nil, err
	}
	defer res.Body.Close()

	var envelope Response
	decodeErr := json.NewDecoder(res.Body).Decode(&envelope)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := envelope.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d: %s", res.StatusCode, http.StatusText(res.StatusCode))
		}
		return nil, &APIError{Status: res.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, decodeErr
	}
	return &envelope, nil
}

func (c *Client) Get(ctx context.Context, endpoint string) (*Response, error) {
	return c.Request(ctx, http.MethodGet, endpoint, nil, defaultRetries)
}

func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	return c.Request(ctx, http.MethodPost, endpoint, body, defaultRetries)
}

func (c *Client) Put(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	return c.Request(ctx, http.MethodPut, endpoint, body, defaultRetries)
}

func (c *Client) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.Request(ctx, http.MethodDelete, endpoint, nil, defaultRetries)
}
