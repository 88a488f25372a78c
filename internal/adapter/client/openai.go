package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"textgate/pkg/provider"
)

// DefaultOpenAIURL is the OpenAI API base URL.
const DefaultOpenAIURL = "https://api.openai.com"

// OpenAIClient calls the OpenAI chat completions API.
type OpenAIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(baseURL string, timeout time.Duration) *OpenAIClient {
	if baseURL == "" {
		baseURL = DefaultOpenAIURL
	}
	return &OpenAIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Analyze sends text as a chat completion with the user's API key.
func (c *OpenAIClient) Analyze(ctx context.Context, apiKey, text string) (json.RawMessage, error) {
	body, err := provider.BuildRequest(provider.OpenAI, text)
	if err != nil {
		return nil, err
	}
	headers := map[string]string{"Authorization": "Bearer " + apiKey}
	return postJSON(ctx, c.httpClient, c.baseURL+"/v1/chat/completions", headers, body)
}
