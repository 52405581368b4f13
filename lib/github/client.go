// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bureau-foundation/ghopts/lib/netutil"
)

// githubAPIVersion is the GitHub REST API version header.
const githubAPIVersion = "2022-11-28"

// defaultBaseURL is the base URL for the public GitHub API.
const defaultBaseURL = "https://api.github.com"

// Config holds configuration for creating a GitHub API Client.
type Config struct {
	// BaseURL is the root URL for API requests. Defaults to
	// "https://api.github.com". Must use HTTPS.
	BaseURL string

	// Token is a personal access token or fine-grained token. Required.
	Token string

	// UserAgent is sent on every request when non-empty.
	UserAgent string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client sends encoded option values to the GitHub REST API and decodes
// the responses. A Client is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a GitHub API client from the given configuration.
// Returns an error for a non-HTTPS base URL or a missing token.
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("github: API client requires HTTPS (got %q)", baseURL)
	}
	if config.Token == "" {
		return nil, fmt.Errorf("github: no authentication configured (set Token)")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		token:      config.Token,
		userAgent:  config.UserAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the normalized API root, without a trailing slash.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// do executes an authenticated request and returns the response body.
// The path is relative to the base URL and may carry a query string.
// A nil body sends no Content-Type. Non-2xx responses return *APIError.
func (client *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	url := client.baseURL + path
	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("github: creating request: %w", err)
	}

	request.Header.Set("Authorization", "Bearer "+client.token)
	request.Header.Set("Accept", "application/vnd.github+json")
	request.Header.Set("X-GitHub-Api-Version", githubAPIVersion)
	if client.userAgent != "" {
		request.Header.Set("User-Agent", client.userAgent)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	client.logger.Debug("github request", "method", method, "path", path, "body_bytes", len(body))

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("github: %s %s: %w", method, url, err)
	}
	defer response.Body.Close()

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("github: reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIErrorFromBody(response.StatusCode, responseBody)
	}
	return responseBody, nil
}

// send encodes an option value and decodes the response into result.
// The marshaler's bytes go on the wire unchanged: json.Marshal would
// re-compact them and escape HTML characters in text fields.
func (client *Client) send(ctx context.Context, method, path string, options json.Marshaler, result any) error {
	body, err := options.MarshalJSON()
	if err != nil {
		return fmt.Errorf("github: encoding request body: %w", err)
	}
	responseBody, err := client.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if result == nil || len(responseBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(responseBody, result); err != nil {
		return fmt.Errorf("github: decoding response: %w", err)
	}
	return nil
}

func (client *Client) post(ctx context.Context, path string, options json.Marshaler, result any) error {
	return client.send(ctx, http.MethodPost, path, options, result)
}

func (client *Client) patch(ctx context.Context, path string, options json.Marshaler, result any) error {
	return client.send(ctx, http.MethodPatch, path, options, result)
}

// queryOptions is implemented by the option values of list endpoints.
type queryOptions interface {
	Query() string
}

// list issues a GET for a list endpoint and decodes the JSON array into
// a slice. Only the first page is returned.
func list[T any](ctx context.Context, client *Client, basePath string, options queryOptions) ([]T, error) {
	responseBody, err := client.do(ctx, http.MethodGet, buildListPath(basePath, options), nil)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(responseBody, &items); err != nil {
		return nil, fmt.Errorf("github: decoding response: %w", err)
	}
	return items, nil
}

// buildListPath appends the encoded query to basePath, if there is one.
func buildListPath(basePath string, options queryOptions) string {
	query := options.Query()
	if query == "" {
		return basePath
	}
	return basePath + "?" + query
}

// parseAPIErrorFromBody parses a GitHub API error from a status code
// and response body. Bodies that are not GitHub's error shape become
// the message verbatim.
func parseAPIErrorFromBody(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message          string            `json:"message"`
		DocumentationURL string            `json:"documentation_url"`
		Errors           []ValidationError `json:"errors"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
		apiError.DocumentationURL = wireError.DocumentationURL
		apiError.Errors = wireError.Errors
	} else {
		apiError.Message = string(body)
	}

	return apiError
}

// shortSHA trims a commit SHA for error messages.
func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
