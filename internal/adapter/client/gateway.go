package client

import (
	"context"
	"encoding/json"
	"fmt"

	"textgate/internal/domain/service"
	"textgate/pkg/provider"
)

// analyzer is the shape all upstream provider clients share.
type analyzer interface {
	Analyze(ctx context.Context, apiKey, text string) (json.RawMessage, error)
}

// Gateway routes a provider ID to its upstream client. It implements
// service.ProviderCaller.
type Gateway struct {
	analyzers map[provider.ID]analyzer
}

// NewGateway creates a gateway over the given upstream clients.
func NewGateway(hf *HuggingFaceClient, google *GoogleNLPClient, openAI *OpenAIClient) service.ProviderCaller {
	return &Gateway{
		analyzers: map[provider.ID]analyzer{
			provider.HuggingFace: hf,
			provider.GoogleNLP:   google,
			provider.OpenAI:      openAI,
		},
	}
}

// Call forwards text to the provider identified by id.
func (g *Gateway) Call(ctx context.Context, id provider.ID, apiKey, text string) (json.RawMessage, error) {
	a, ok := g.analyzers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", provider.ErrUnknownProvider, id)
	}
	return a.Analyze(ctx, apiKey, text)
}
