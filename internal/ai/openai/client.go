// Package openai is a minimal client for the chat completions API. It
// covers the single call this tool makes; no SDK is worth the weight.
package openai

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

const defaultBaseURL = "https://api.openai.com/v1"

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
	return "openai"
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateSummary sends the prompt as a single user message and returns
// the first choice's content.
func (c *Client) GenerateSummary(ctx context.Context, prompt string) (string, error) {
	payload := chatCompletionRequest{
		Model: string(c.model),
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal openai payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build openai request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.ErrAIGeneration.WithError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return "", errors.ErrAIGeneration.WithError(fmt.Errorf("openai responded with status %s", resp.Status))
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.ErrEmptyAIResponse.WithError(fmt.Errorf("decode openai response: %w", err))
	}

	if len(parsed.Choices) == 0 {
		return "", errors.ErrEmptyAIResponse.WithError(fmt.Errorf("openai returned no choices"))
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", errors.ErrEmptyAIResponse.WithError(fmt.Errorf("openai choice carried no message content"))
	}

	return content, nil
}
