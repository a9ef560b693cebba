// Package twitter verifies handles against the Twitter (X) API v2.
package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dtroode/crypto-onboard-server/internal/logger"
	"github.com/dtroode/crypto-onboard-server/internal/model"
)

const (
	// DefaultBaseURL is the public Twitter API host.
	DefaultBaseURL = "https://api.twitter.com"
	// DefaultTimeout bounds a single lookup when no timeout is configured.
	DefaultTimeout = 5 * time.Second

	userByUsernamePath = "/2/users/by/username/"
	maxResponseBytes   = 1 << 20
)

// Client looks up users by username.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	bearerToken string
	timeout     time.Duration
	logger      *logger.Logger
}

// NewClient creates a new Client. A nil httpClient means http.DefaultClient,
// an empty baseURL means DefaultBaseURL and a non-positive timeout means
// DefaultTimeout.
func NewClient(httpClient *http.Client, baseURL, bearerToken string, timeout time.Duration, logger *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		bearerToken: bearerToken,
		timeout:     timeout,
		logger:      logger,
	}
}

type userResponse struct {
	Data   *user      `json:"data"`
	Errors []apiError `json:"errors"`
}

type user struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type apiError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Type   string `json:"type"`
}

// LookupHandle returns the account behind handle.
//
// It returns model.ErrHandleNotFound when Twitter reports no such user and
// wraps model.ErrUpstream for transport failures, timeouts and unexpected
// responses. Lookups are never retried.
func (c *Client) LookupHandle(ctx context.Context, handle string) (model.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + userByUsernamePath + url.PathEscape(handle)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: failed to build request: %w", model.ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Twitter client: request failed",
			"handle", handle,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("%w: request failed: %w", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Twitter client: lookup completed",
		"handle", handle,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusBadRequest:
		return model.Identity{}, model.ErrHandleNotFound
	default:
		return model.Identity{}, fmt.Errorf("%w: unexpected status %d", model.ErrUpstream, resp.StatusCode)
	}

	var body userResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return model.Identity{}, fmt.Errorf("%w: failed to decode response: %w", model.ErrUpstream, err)
	}

	// Unknown users come back as 200 with only an errors array.
	if body.Data == nil || body.Data.ID == "" {
		if len(body.Errors) > 0 {
			c.logger.Debug("Twitter client: user not found",
				"handle", handle,
				"title", body.Errors[0].Title)
		}
		return model.Identity{}, model.ErrHandleNotFound
	}

	return model.Identity{
		ID:       body.Data.ID,
		Username: body.Data.Username,
		Name:     body.Data.Name,
	}, nil
}
