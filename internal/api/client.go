// Package api translates domain operations into HTTP calls against the
// study-platform backend and normalizes every outcome into a nil error
// or an *Error with a closed Kind. One round trip per operation, no
// retries, no timeout: a call resolves or the transport fails.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"studylife/internal/session"
)

// Client issues requests against a single backend origin, reading the
// bearer token from the session store when an operation requires auth.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	log     *zap.Logger
}

func New(baseURL string, sess *session.Store, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: sess,
		log:     log,
	}
}

// Session exposes the store so callers can check login state or clear
// the token on logout.
func (c *Client) Session() *session.Store { return c.session }

// do runs one round trip. When auth is set and no token is held it
// short-circuits with a no-session error before any network activity.
// A nil out skips body decoding; an empty 2xx body with a non-nil out
// leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, auth bool, body, out any) error {
	var token string
	if auth {
		tok, ok := c.session.Token()
		if !ok {
			c.log.Debug("skipping request, no session", zap.String("path", path))
			return noSessionErr()
		}
		token = tok
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return transportErr("encoding request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return transportErr("building request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return transportErr("network error", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("reading response failed", zap.String("path", path), zap.Error(err))
		return transportErr("reading response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := extractDetail(data)
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}
		c.log.Debug("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", detail))
		return rejectedErr(resp.StatusCode, detail)
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			c.log.Warn("malformed response body", zap.String("path", path), zap.Error(err))
			return transportErr("decoding response", err)
		}
	}
	return nil
}

// extractDetail mines an error body for the backend's detail field,
// falling back to message.
func extractDetail(data []byte) string {
	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Detail != "" {
		return body.Detail
	}
	return body.Message
}

func jsonDecode(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (c *Client) get(ctx context.Context, path string, auth bool, out any) error {
	return c.do(ctx, http.MethodGet, path, auth, nil, out)
}
