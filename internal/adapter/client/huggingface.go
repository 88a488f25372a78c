package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"textgate/pkg/provider"
)

// DefaultHuggingFaceURL points at the sentiment model the service ships with.
const DefaultHuggingFaceURL = "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"

// HuggingFaceClient calls the HuggingFace inference API.
type HuggingFaceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHuggingFaceClient creates a new HuggingFace client
func NewHuggingFaceClient(baseURL string, timeout time.Duration) *HuggingFaceClient {
	if baseURL == "" {
		baseURL = DefaultHuggingFaceURL
	}
	return &HuggingFaceClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Analyze classifies text, authenticating with the user's API key.
func (c *HuggingFaceClient) Analyze(ctx context.Context, apiKey, text string) (json.RawMessage, error) {
	body, err := provider.BuildRequest(provider.HuggingFace, text)
	if err != nil {
		return nil, err
	}
	headers := map[string]string{"Authorization": "Bearer " + apiKey}
	return postJSON(ctx, c.httpClient, c.baseURL, headers, body)
}
