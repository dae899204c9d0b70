package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

// DefaultBaseURL is where the API listens unless configured otherwise
const DefaultBaseURL = "http://localhost:5000"

// DefaultTimeout bounds a single API call
const DefaultTimeout = 30 * time.Second

// APIError is returned when the API answers with success=false or a
// non-2xx status.
type APIError struct {
	StatusCode int
	Message    string // user-facing message from the envelope
	Detail     string // raw server error, only set for 5xx responses
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the contacts REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// envelope mirrors the API response body
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// List fetches every contact, newest first.
func (c *Client) List(ctx context.Context) ([]contact.Contact, error) {
	var contacts []contact.Contact
	if err := c.do(ctx, http.MethodGet, "/api/contacts", nil, &contacts); err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []contact.Contact{}
	}
	return contacts, nil
}

// Create submits a new contact and returns the stored record.
func (c *Client) Create(ctx context.Context, in contact.Input) (*contact.Contact, error) {
	var created contact.Contact
	if err := c.do(ctx, http.MethodPost, "/api/contacts", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes the contact with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/contacts/"+url.PathEscape(id), nil, nil)
}

// do sends one request and decodes the envelope's data into out when out
// is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api call: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 300 || !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message, Detail: env.Error}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
