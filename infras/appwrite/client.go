package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"restate/config"
	"restate/shared/constant"
	"restate/shared/failure"
)

const sdkName = "restate-go"

// Client is the base REST client for the remote document store and
// identity provider. It carries the project scoping headers and the
// secret of the active session, shared by the Account and Databases
// services. Constructed once at startup and passed by reference.
type Client struct {
	endpoint string
	project  string
	platform string
	http     *http.Client

	mu      sync.RWMutex
	session string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		endpoint: strings.TrimRight(cfg.Appwrite.Endpoint, "/"),
		project:  cfg.Appwrite.ProjectID,
		platform: cfg.App.Platform,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// SetSession retains the secret of the active session. Subsequent calls
// are made on behalf of that session.
func (c *Client) SetSession(secret string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = secret
}

// ClearSession drops the retained session secret.
func (c *Client) ClearSession() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = ""
}

// HasSession reports whether a session secret is currently retained.
func (c *Client) HasSession() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.session != ""
}

func (c *Client) sessionSecret() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.session
}

// Endpoint returns the base URL of the remote store.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Project returns the project id the client is scoped to.
func (c *Client) Project() string {
	return c.project
}

// remoteError is the error body the store returns on non-2xx responses.
type remoteError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

// call performs a JSON round trip against the store and decodes the
// response into out (when out is non-nil). Non-2xx responses are mapped
// onto failure values carrying the store's own code and message.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.endpoint + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}

		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderProject, c.project)
	req.Header.Set(constant.RequestHeaderSDK, sdkName)

	if c.platform != "" {
		req.Header.Set(constant.RequestHeaderPlatform, c.platform)
	}

	if secret := c.sessionSecret(); secret != "" {
		req.Header.Set(constant.RequestHeaderSession, secret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to remote store failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		remote := remoteError{}
		if err := json.Unmarshal(payload, &remote); err != nil || remote.Message == "" {
			remote.Message = fmt.Sprintf("remote store returned status %d", resp.StatusCode)
		}

		if remote.Code == 0 {
			remote.Code = resp.StatusCode
		}

		return failure.Remote(remote.Code, remote.Message) //nolint:wrapcheck
	}

	if out == nil || len(payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}
