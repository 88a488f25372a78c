package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"textgate/pkg/provider"
)

// DefaultGoogleNLPURL is the Natural Language REST endpoint.
const DefaultGoogleNLPURL = "https://language.googleapis.com"

// GoogleNLPClient calls the Google Natural Language REST API. One Analyze
// runs both the sentiment and the entity calls and merges them into the
// single payload the normalizer expects.
type GoogleNLPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGoogleNLPClient creates a new Google Natural Language client
func NewGoogleNLPClient(baseURL string, timeout time.Duration) *GoogleNLPClient {
	if baseURL == "" {
		baseURL = DefaultGoogleNLPURL
	}
	return &GoogleNLPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type analyzeSentimentResponse struct {
	DocumentSentiment json.RawMessage `json:"documentSentiment"`
}

type analyzeEntitiesResponse struct {
	Entities json.RawMessage `json:"entities"`
}

type combinedAnalysis struct {
	Sentiment json.RawMessage `json:"sentiment"`
	Entities  json.RawMessage `json:"entities,omitempty"`
}

// Analyze runs sentiment and entity analysis on text with the user's API key.
func (c *GoogleNLPClient) Analyze(ctx context.Context, apiKey, text string) (json.RawMessage, error) {
	body, err := provider.BuildRequest(provider.GoogleNLP, text)
	if err != nil {
		return nil, err
	}

	sentimentRaw, err := postJSON(ctx, c.httpClient, c.endpoint("analyzeSentiment", apiKey), nil, body)
	if err != nil {
		return nil, err
	}
	var sentiment analyzeSentimentResponse
	if err := json.Unmarshal(sentimentRaw, &sentiment); err != nil {
		return nil, fmt.Errorf("failed to decode sentiment response: %w", err)
	}

	entitiesRaw, err := postJSON(ctx, c.httpClient, c.endpoint("analyzeEntities", apiKey), nil, body)
	if err != nil {
		return nil, err
	}
	var entities analyzeEntitiesResponse
	if err := json.Unmarshal(entitiesRaw, &entities); err != nil {
		return nil, fmt.Errorf("failed to decode entities response: %w", err)
	}

	return json.Marshal(combinedAnalysis{
		Sentiment: sentiment.DocumentSentiment,
		Entities:  entities.Entities,
	})
}

func (c *GoogleNLPClient) endpoint(method, apiKey string) string {
	return fmt.Sprintf("%s/v1/documents:%s?key=%s", c.baseURL, method, url.QueryEscape(apiKey))
}
