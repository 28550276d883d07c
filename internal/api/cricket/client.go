package cricket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Atharve03/pitchside/internal/config"
	"github.com/google/uuid"
)

// Client is a thin HTTP client for the cricket backend. Every typed
// endpoint wrapper in this package goes through it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
	sessionID  string
}

func NewClient(cfg config.CricketAPI) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		authToken:  cfg.AuthToken,
		sessionID:  uuid.NewString(),
	}
}

// SessionID identifies this client process to the backend for the lifetime
// of the run.
func (c *Client) SessionID() string { return c.sessionID }

func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string, result interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, params, nil, result)
}

func (c *Client) Post(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, nil, body, result)
}

func (c *Client) Put(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.do(ctx, http.MethodPut, endpoint, nil, body, result)
}

func (c *Client) Delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, params map[string]string, body, result interface{}) error {
	url := fmt.Sprintf("%s%s", c.baseURL, endpoint)

	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request body: %w", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	q := req.URL.Query()
	for key, value := range params {
		q.Add(key, value)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Client-Session", c.sessionID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, endpoint, ErrNotFound)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var failure struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return &APIError{StatusCode: resp.StatusCode, Message: failure.Message}
	}

	if result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	return nil
}
