// Package upstream is the gateway's data access layer. The system of
// record is the externally-owned EduSync REST backend; every record the
// gateway handles is a transient copy fetched from or written to it.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"edusync_gateway/internal/config"
)

type Client struct {
	baseURL string
	http    *http.Client
	prober  *prober
}

// NewClient wires a client against cfg.BaseURL. Candidate path lists from
// the config override the built-in defaults per operation.
func NewClient(cfg *config.UpstreamConfig) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		// Timeouts are whatever the default transport imposes; per-request
		// deadlines come from the caller's context.
		http: &http.Client{},
	}
	c.prober = newProber(c, cfg.Candidates)
	return c
}

// StatusError is a response with a non-success status. The body is kept
// for the aggregated probe message.
type StatusError struct {
	Path string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d", e.Path, e.Code)
}

// DecodeError marks a success response whose body was not the structured
// payload we expected. Callers treat it like a fetch failure.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s returned an invalid body: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// do issues one request and reads the whole body. A non-2xx status is
// returned as *StatusError; the caller decides whether to try another
// candidate.
func (c *Client) do(ctx context.Context, method, path, token, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Path: path, Code: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

// decodeInto unmarshals a response body into out. A success response with
// an empty body is "operation succeeded, no echoed record": out is left
// untouched and no error is raised.
func decodeInto(path string, data []byte, out interface{}) error {
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	data, err := c.do(ctx, http.MethodGet, path, token, "", nil)
	if err != nil {
		return err
	}
	return decodeInto(path, data, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}
	data, err := c.do(ctx, method, path, token, "application/json", body)
	if err != nil {
		return err
	}
	return decodeInto(path, data, out)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	_, err := c.do(ctx, http.MethodDelete, path, token, "", nil)
	return err
}

// normalizeList wraps a single JSON object into a one-element array. Some
// backend endpoints answer with an object where others answer with a
// list; callers always want the list form.
func normalizeList(data []byte) []byte {
	trim := bytes.TrimSpace(data)
	if len(trim) == 0 || string(trim) == "null" {
		return []byte("[]")
	}
	if trim[0] == '[' {
		return trim
	}
	out := make([]byte, 0, len(trim)+2)
	out = append(out, '[')
	out = append(out, trim...)
	out = append(out, ']')
	return out
}
