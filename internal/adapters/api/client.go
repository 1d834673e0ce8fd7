package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nurullahMencik/taskapp-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

// Client performs one network call per invocation against the task API. It
// attaches the bearer token when one is supplied and translates failures into
// a single normalized message with this precedence: server-provided message
// field, HTTP status text, transport error text.
//
// On 401/403, and on 404 for single-resource fetches, it clears the stored
// identity through the credential store before propagating the error. The
// side effect is unconditional on which caller invoked it.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Credentials    ports.CredentialStore
}

var (
	_ ports.AuthGateway    = (*Client)(nil)
	_ ports.ProjectGateway = (*Client)(nil)
	_ ports.TaskGateway    = (*Client)(nil)
	_ ports.LogGateway     = (*Client)(nil)
)

func NewClient(baseURL string, credentials ports.CredentialStore) *Client {
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Credentials: credentials,
	}
}

type requestOptions struct {
	// clearIdentityOnNotFound opts a single-resource fetch into the 404
	// identity-clearing side effect.
	clearIdentityOnNotFound bool
}

type serverErrorResponse struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any, opts requestOptions) error {
	endpoint, err := c.buildURL(path)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.failureError(ctx, resp, opts)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

func (c *Client) failureError(ctx context.Context, resp *http.Response, opts requestOptions) error {
	var payload serverErrorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload)

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}

	kind := KindServer
	clearIdentity := false
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindAuth
		clearIdentity = true
	case http.StatusNotFound:
		clearIdentity = opts.clearIdentityOnNotFound
	}

	if clearIdentity && c.Credentials != nil {
		_ = c.Credentials.Clear(ctx)
	}

	return &Error{Kind: kind, Status: resp.StatusCode, Message: message}
}

func (c *Client) buildURL(path string) (string, error) {
	if c.BaseURL == "" {
		return "", fmt.Errorf("api base url is empty")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.BaseURL + "/api" + path, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.RequestTimeout)
}
