package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/finkeeper/internal/client/models"
	"github.com/dmitrijs2005/finkeeper/internal/logging"
)

// refreshPath is the one endpoint whose 401 is never retried: it always
// invalidates the session.
const refreshPath = "/auth/refresh"

// Client is the shared HTTP client used by all resource call wrappers.
// The session credential is cookie-based (the jar carries it on every
// request); the access token returned by login/refresh is additionally
// attached as a bearer header.
type Client struct {
	baseURL string
	http    *http.Client
	coord   *Coordinator
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

// New builds a Client for the backend at baseURL. The coordinator is a
// required dependency: callers assemble one per client (tests construct
// isolated instances). A zero timeout means no client-side deadline.
func New(baseURL string, timeout time.Duration, coord *Coordinator, log logging.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	c := &Client{baseURL: baseURL, coord: coord, log: log}
	c.http = &http.Client{
		Jar:       jar,
		Timeout:   timeout,
		Transport: &taggingTransport{next: http.DefaultTransport, log: log},
	}
	return c, nil
}

// Coordinator exposes the injected refresh coordinator so the composition
// point can register invalidation observers.
func (c *Client) Coordinator() *Coordinator {
	return c.coord
}

func (c *Client) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setAccessToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// do issues one request and decodes the envelope. A 401 on a non-refresh
// endpoint is handed to the coordinator; on a successful shared refresh
// the request is retried exactly once. Every state check and transition
// lives in the coordinator, so interleaved calls from multiple goroutines
// observe a consistent outcome.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (*Envelope[T], error) {
	if c.coord.Invalid() {
		return nil, ErrReauthRequired
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		payload = b
	}

	retried := false
	for {
		resp, err := c.send(ctx, method, path, query, payload)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusUnauthorized {
			raw := drain(resp)
			if path == refreshPath {
				c.coord.Invalidate()
				return nil, ErrReauthRequired
			}
			if retried {
				// Second 401 after a successful refresh: propagate as a
				// normal failure, never retry again.
				return nil, &APIError{Status: http.StatusUnauthorized, Message: raw.Message, Errors: raw.Errors}
			}
			if err := c.coord.AwaitRefresh(ctx, c.refreshSession); err != nil {
				return nil, err
			}
			retried = true
			continue
		}

		return decode[T](resp)
	}
}

// send builds and issues a single HTTP request. Transport-level failures
// are reported as ErrUnavailable.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.accessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// refreshSession performs the actual refresh call. It bypasses do so the
// coordinator is never re-entered from inside a refresh.
func (c *Client) refreshSession(ctx context.Context) error {
	resp, err := c.send(ctx, http.MethodPost, refreshPath, nil, nil)
	if err != nil {
		return err
	}
	env, err := decode[models.RefreshData](resp)
	if err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("refresh rejected: %s", env.Message)
	}
	c.setAccessToken(env.Data.AccessToken)
	c.log.Info(ctx, "session refreshed")
	return nil
}

// decode consumes the response body. 2xx bodies decode into the typed
// envelope; anything else becomes an *APIError carrying whatever envelope
// metadata the body held.
func decode[T any](resp *http.Response) (*Envelope[T], error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var env Envelope[T]
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
		return &env, nil
	}

	var raw rawEnvelope
	_ = json.Unmarshal(data, &raw) // best effort; non-JSON bodies keep zero values
	return nil, &APIError{Status: resp.StatusCode, Message: raw.Message, Errors: raw.Errors}
}

// drain reads and closes the body of a response that will not be returned
// to the caller, salvaging envelope metadata when the body is JSON.
func drain(resp *http.Response) rawEnvelope {
	defer resp.Body.Close()
	var raw rawEnvelope
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return raw
	}
	_ = json.Unmarshal(data, &raw)
	return raw
}
