// Package api is the HTTP client layer of the trace console: a single request
// gateway plus thin typed wrappers for each server resource.
//
// Every call goes through the Gateway, whose transport attaches the stored
// Basic-Auth token to outgoing requests. There are no retries and no timeout
// policy beyond the transport default; error translation to user-facing
// messages is done by the resource wrappers, not here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/csyeteam03/trace-console/internal/logging"
)

// TokenSource supplies the current Basic-Auth token. An empty string means
// the request goes out unauthenticated and the server decides accept/reject.
type TokenSource interface {
	Token() string
}

// Gateway issues all HTTP calls against the API base URL.
type Gateway struct {
	baseURL string
	client  *http.Client
	log     logging.Logger
}

// NewGateway builds a Gateway for baseURL. The tokens source is consulted on
// every request, so a login that lands mid-session is picked up immediately.
func NewGateway(baseURL string, tokens TokenSource, log logging.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Transport: &authTransport{tokens: tokens, next: http.DefaultTransport},
		},
		log: log.With("component", "gateway"),
	}
}

// authTransport is the outgoing-request hook: it attaches the Authorization
// header when a token exists and tags each request with an id for server-side
// correlation.
type authTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if tok := t.tokens.Token(); tok != "" {
		r.Header.Set("Authorization", "Basic "+tok)
	}
	r.Header.Set("X-Request-Id", uuid.NewString())
	return t.next.RoundTrip(r)
}

func (g *Gateway) url(path string) string {
	return g.baseURL + path
}

// do sends the request and decodes a 2xx JSON body into out (skipped when out
// is nil). A non-2xx response becomes a *StatusError; transport failures are
// returned as-is.
func (g *Gateway) do(req *http.Request, out any) error {
	g.log.Debug(req.Context(), "request", "method", req.Method, "url", req.URL.String())

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (g *Gateway) newJSONRequest(ctx context.Context, method, path string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.url(path), body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// GetJSON issues GET path and decodes the JSON response into out.
func (g *Gateway) GetJSON(ctx context.Context, path string, out any) error {
	req, err := g.newJSONRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return g.do(req, out)
}

// PostJSON issues POST path with a JSON body and decodes the response into
// out (skipped when out is nil).
func (g *Gateway) PostJSON(ctx context.Context, path string, in, out any) error {
	req, err := g.newJSONRequest(ctx, http.MethodPost, path, in)
	if err != nil {
		return err
	}
	return g.do(req, out)
}

// PutJSON issues PUT path with a JSON body, discarding any response payload.
func (g *Gateway) PutJSON(ctx context.Context, path string, in any) error {
	req, err := g.newJSONRequest(ctx, http.MethodPut, path, in)
	if err != nil {
		return err
	}
	return g.do(req, nil)
}

// PatchJSON issues PATCH path with a JSON body, discarding any response
// payload.
func (g *Gateway) PatchJSON(ctx context.Context, path string, in any) error {
	req, err := g.newJSONRequest(ctx, http.MethodPatch, path, in)
	if err != nil {
		return err
	}
	return g.do(req, nil)
}

// Delete issues DELETE path.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	req, err := g.newJSONRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return g.do(req, nil)
}

// PostMultipart issues POST path with a multipart/form-data body written by
// form, decoding the JSON response into out.
func (g *Gateway) PostMultipart(ctx context.Context, path string, form func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := form(w); err != nil {
		return fmt.Errorf("build form: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url(path), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return g.do(req, out)
}

// GetBlob issues GET path and returns the raw body bytes with the response
// media type. Used only for the trace PDF fetch.
func (g *Gateway) GetBlob(ctx context.Context, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url(path), nil)
	if err != nil {
		return nil, "", err
	}

	g.log.Debug(ctx, "request", "method", req.Method, "url", req.URL.String())

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", newStatusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read response: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
