// Package anthropic is a minimal client for the messages API, the
// Anthropic counterpart of the openai package.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/descmate/descmate/internal/config"
	"github.com/descmate/descmate/internal/errors"
	"github.com/descmate/descmate/internal/httpclient"
	"github.com/descmate/descmate/internal/ports"
)

const (
	defaultBaseURL = "https://api.anthropic.com"
	apiVersion     = "2023-06-01"
	maxTokens      = 1024

	// systemInstruction is fixed: the per-request formatting rules travel
	// in the user prompt.
	systemInstruction = "You are a senior engineer writing pull request descriptions. " +
		"Follow the formatting instructions in the user message exactly."
)

var _ ports.SummaryGenerator = (*Client)(nil)

type Client struct {
	apiKey     string
	model      config.Model
	baseURL    string
	httpClient httpclient.HTTPClient
}

func NewClient(apiKey string, model config.Model) (*Client, error) {
	if apiKey == "" {
		return nil, errors.ErrNoProviderConfigured
	}

	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: httpclient.Default(),
	}, nil
}

// NewClientWithHTTP injects the transport and endpoint, for tests.
func NewClientWithHTTP(apiKey string, model config.Model, baseURL string, httpClient httpclient.HTTPClient) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *Client) Name() string {
	return "anthropic"
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

// GenerateSummary sends the prompt as a single user message and returns
// the concatenation of every text block in the response, in order.
func (c *Client) GenerateSummary(ctx context.Context, prompt string) (string, error) {
	payload := messagesRequest{
		Model:     string(c.model),
		MaxTokens: maxTokens,
		System:    systemInstruction,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal anthropic payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build anthropic request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.ErrAIGeneration.WithError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return "", errors.ErrAIGeneration.WithError(fmt.Errorf("anthropic responded with status %s", resp.Status))
	}

	var parsed messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.ErrEmptyAIResponse.WithError(fmt.Errorf("decode anthropic response: %w", err))
	}

	var text strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	summary := strings.TrimSpace(text.String())
	if summary == "" {
		return "", errors.ErrEmptyAIResponse.WithError(fmt.Errorf("anthropic returned no usable text blocks"))
	}

	return summary, nil
}
