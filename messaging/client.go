// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopfront-foundation/shopfront/lib/netutil"
	"github.com/shopfront-foundation/shopfront/lib/ref"
)

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the platform API root (e.g. "https://api.example.com/v10").
	BaseURL string
	// Token is the bot token sent on every request.
	Token string
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client is an authenticated platform API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a platform client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("messaging: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("messaging: invalid BaseURL %q: %w", config.BaseURL, err)
	}
	if config.Token == "" {
		return nil, fmt.Errorf("messaging: Token is required")
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
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// CloseIdleConnections closes idle HTTP connections in the underlying
// transport's pool. Call after a network disruption to force fresh TCP
// connections instead of reusing a poisoned pooled connection.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// CreateMessage posts a message to a channel and returns the new
// message's id.
func (c *Client) CreateMessage(ctx context.Context, channel ref.ChannelID, message Message) (ref.MessageID, error) {
	path := fmt.Sprintf("/channels/%s/messages", channel)
	body, err := c.doRequest(ctx, http.MethodPost, path, message)
	if err != nil {
		return 0, fmt.Errorf("messaging: creating message in channel %s: %w", channel, err)
	}

	var response messageResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return 0, fmt.Errorf("messaging: parsing create-message response: %w", err)
	}
	return response.ID, nil
}

// UpdateMessage replaces the content of an existing message.
func (c *Client) UpdateMessage(ctx context.Context, channel ref.ChannelID, messageID ref.MessageID, message Message) error {
	path := fmt.Sprintf("/channels/%s/messages/%s", channel, messageID)
	if _, err := c.doRequest(ctx, http.MethodPatch, path, message); err != nil {
		return fmt.Errorf("messaging: updating message %s in channel %s: %w", messageID, channel, err)
	}
	return nil
}

// UploadAsset posts a file as an attachment-only message to the given
// channel and returns the CDN URL of the stored bytes. The storefront
// uses this against its image-storage channel to turn short-lived
// upload URLs into durable references.
func (c *Client) UploadAsset(ctx context.Context, channel ref.ChannelID, filename string, data []byte) (string, error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	part, err := writer.CreateFormFile("files[0]", filename)
	if err != nil {
		return "", fmt.Errorf("messaging: building upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("messaging: building upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("messaging: building upload form: %w", err)
	}

	path := fmt.Sprintf("/channels/%s/messages", channel)
	body, err := c.doRequestRaw(ctx, http.MethodPost, path, writer.FormDataContentType(), &buffer)
	if err != nil {
		return "", fmt.Errorf("messaging: uploading %s to channel %s: %w", filename, channel, err)
	}

	var response messageResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("messaging: parsing upload response: %w", err)
	}
	if len(response.Attachments) == 0 {
		return "", fmt.Errorf("messaging: upload response for %s has no attachments", filename)
	}
	return response.Attachments[0].URL, nil
}

// doRequest performs a JSON request against the platform API and
// returns the response body. On 2xx, returns the body. On 4xx/5xx,
// returns a *APIError.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	contentType := ""
	if requestBody != nil {
		contentType = "application/json"
	}
	return c.doRequestRaw(ctx, method, path, contentType, bodyReader)
}

// doRequestRaw performs an HTTP request with an arbitrary body (JSON
// or multipart).
func (c *Client) doRequestRaw(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	request.Header.Set("Authorization", "Bot "+c.token)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	// Platform error responses share one JSON shape.
	var apiErr APIError
	if jsonErr := json.Unmarshal(responseBody, &apiErr); jsonErr != nil || apiErr.Message == "" {
		// Non-JSON error body. Fail loud with the raw bytes.
		return nil, fmt.Errorf("unexpected %d response from %s %s: %s",
			response.StatusCode, method, path, string(responseBody))
	}
	apiErr.StatusCode = response.StatusCode

	return responseBody, &apiErr
}
