package service

import (
	"context"
	"encoding/json"

	"textgate/pkg/provider"
)

// ProviderCaller defines the interface for calling an upstream
// text-analysis provider. Implementations forward the registry-built
// request body with the user's API key and return the provider-native
// JSON payload untouched; normalization happens in the usecase layer.
type ProviderCaller interface {
	// Call sends text to the provider identified by id using apiKey
	Call(ctx context.Context, id provider.ID, apiKey, text string) (json.RawMessage, error)
}
