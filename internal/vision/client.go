// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pdiddy/doc2md/pkg/types"
)

// ErrMalformedResponse reports a 2xx response body that does not contain
// the expected completion structure.
var ErrMalformedResponse = errors.New("response has no completion choices")

// APIError is a non-2xx HTTP response from the model endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("model endpoint returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Client calls an OpenAI-compatible chat-completions endpoint. Requests are
// synchronous and never retried; any failure is surfaced to the caller.
type Client struct {
	// HTTP performs the requests. Its timeout is the only timeout applied.
	HTTP *http.Client

	// Endpoint is the chat-completions URL.
	Endpoint string

	// Model is the model identifier sent with every request.
	Model string

	// APIKey, when non-empty, is sent as a bearer token.
	APIKey string

	// Log receives request diagnostics.
	Log zerolog.Logger
}

// NewClient builds a Client from resolved configuration.
func NewClient(cfg types.Config, httpClient *http.Client, log zerolog.Logger) *Client {
	return &Client{
		HTTP:     httpClient,
		Endpoint: cfg.Endpoint,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
		Log:      log,
	}
}

// ExtractMarkdown sends one page image to the model and returns the
// completion text exactly as the model produced it. An empty completion is
// valid output: a blank page legitimately transcribes to nothing.
func (c *Client) ExtractMarkdown(ctx context.Context, page types.PageImage) (string, error) {
	body, err := json.Marshal(BuildRequest(c.Model, ExtractionPrompt, page.DataURI()))
	if err != nil {
		return "", fmt.Errorf("marshaling chat request: %w", err)
	}

	c.Log.Debug().
		Int("page", page.Index).
		Int("payload_kb", len(body)/1024).
		Str("model", c.Model).
		Msg("dispatching vision request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling model endpoint: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading model response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var cr ChatResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return "", fmt.Errorf("parsing model response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", ErrMalformedResponse
	}

	return cr.Choices[0].Message.Content, nil
}
