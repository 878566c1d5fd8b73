package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/accommotrack/client-go/internal/validation"
)

// TokenSource supplies the current bearer token, or "" when logged out.
// The session store provides it so the client never touches storage itself.
type TokenSource func() string

// Client manages all communication with the AccommoTrack backend. It is the
// only component in the SDK that performs network I/O.
type Client struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	Token      TokenSource

	// Short-lived read cache for tenant profile GETs. It only ever
	// short-circuits repeat passive reads: every successful tenant write
	// and every revert refetch invalidates it. Nil when caching is off.
	profileCache *cache.Cache
}

const profileCacheKey = "tenant_profile"

// NewClient initializes a client against baseURL. cacheTTL bounds how long
// a fetched tenant profile may be served without a round trip; zero or
// negative disables the cache entirely.
func NewClient(baseURL string, timeout, cacheTTL time.Duration, token TokenSource) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid baseURL: %w", err)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if token == nil {
		token = func() string { return "" }
	}
	c := &Client{
		BaseURL:    parsed,
		HTTPClient: &http.Client{Timeout: timeout},
		Token:      token,
	}
	if cacheTTL > 0 {
		c.profileCache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return c, nil
}

// doJSON builds, executes and parses a JSON request. out may be nil when
// the response body is irrelevant.
func (c *Client) doJSON(ctx context.Context, method, reqPath string, query url.Values, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBytes)
	}

	req, err := c.newRequest(ctx, method, reqPath, query, reqBody)
	if err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// doMultipart executes a multipart/form-data request built by a Form.
func (c *Client) doMultipart(ctx context.Context, method, reqPath string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, method, reqPath, nil, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, reqPath string, query url.Values, body io.Reader) (*http.Request, error) {
	u := *c.BaseURL
	u.Path = path.Join(c.BaseURL.Path, reqPath)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleHTTPError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ServerError{StatusCode: resp.StatusCode, Message: "unexpected response shape"}
	}
	return nil
}

// errorBody is the backend's error envelope: Laravel-style `message` plus
// an optional field-keyed `errors` map of message lists.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// handleHTTPError converts a non-2xx response into the error taxonomy.
func (c *Client) handleHTTPError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)

	var parsed errorBody
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		parsed.Message = strings.TrimSpace(string(bodyBytes))
	}

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity, len(parsed.Errors) > 0:
		fields := make(validation.Errors, len(parsed.Errors))
		for field, msgs := range parsed.Errors {
			if len(msgs) > 0 {
				fields[field] = msgs[0]
			}
		}
		return &ServerValidationError{Message: parsed.Message, Fields: fields}
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return &AuthorizationError{Message: parsed.Message}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Message: parsed.Message}
	default:
		return &ServerError{StatusCode: resp.StatusCode, Message: parsed.Message}
	}
}
