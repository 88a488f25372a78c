// Package provider defines the supported text-analysis providers and the
// registry that maps each provider to its request builder and response
// normalizer. Adding a provider means adding one registry entry; nothing
// else in the codebase branches on provider identity.
package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ID identifies a text-analysis provider.
type ID string

const (
	HuggingFace ID = "huggingface"
	GoogleNLP   ID = "google_nlp"
	OpenAI      ID = "openai"
)

// Error definitions for the provider registry
var (
	ErrUnknownProvider   = errors.New("unknown provider")
	ErrMalformedResponse = errors.New("malformed provider response")
)

// Entry holds the builder/normalizer pair for one provider.
type Entry struct {
	// BuildRequest produces the wire-level request body the provider expects.
	BuildRequest func(text string) any

	// Normalize translates the provider's native JSON into a Result.
	// It returns ErrMalformedResponse when required fields are absent
	// or out of documented range.
	Normalize func(raw json.RawMessage) (*Result, error)
}

var registry = map[ID]Entry{
	HuggingFace: {
		BuildRequest: buildHuggingFaceRequest,
		Normalize:    normalizeHuggingFace,
	},
	GoogleNLP: {
		BuildRequest: buildGoogleNLPRequest,
		Normalize:    normalizeGoogleNLP,
	},
	OpenAI: {
		BuildRequest: buildOpenAIRequest,
		Normalize:    normalizeOpenAI,
	},
}

// Lookup returns the registry entry for the given provider.
func Lookup(id ID) (Entry, error) {
	entry, ok := registry[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
	}
	return entry, nil
}

// Valid reports whether id names a registered provider.
func Valid(id ID) bool {
	_, ok := registry[id]
	return ok
}

// All returns the registered provider IDs in stable order.
func All() []ID {
	ids := make([]ID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// BuildRequest builds the provider-specific request body for text.
func BuildRequest(id ID, text string) (any, error) {
	entry, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return entry.BuildRequest(text), nil
}

// Normalize translates a provider-native response into a Result whose
// tag matches id.
func Normalize(id ID, raw json.RawMessage) (*Result, error) {
	entry, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return entry.Normalize(raw)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}
