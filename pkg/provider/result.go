package provider

import (
	"encoding/json"
	"fmt"
)

// Result is the provider-agnostic output shape, a tagged union keyed by
// the provider ID. Exactly one variant is set, and it always matches API.
type Result struct {
	API         ID
	HuggingFace *LabelScore
	GoogleNLP   *SentimentAnalysis
	OpenAI      *Completion
}

// LabelScore is the huggingface variant: a classification label with a
// confidence score in [0,1].
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Sentiment holds a document-level sentiment score in [-1,1] and a
// non-negative magnitude.
type Sentiment struct {
	Score     float64 `json:"score"`
	Magnitude float64 `json:"magnitude"`
}

// Entity is a named entity with its salience in [0,1].
type Entity struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Salience float64 `json:"salience"`
}

// SentimentAnalysis is the google_nlp variant.
type SentimentAnalysis struct {
	Sentiment Sentiment `json:"sentiment"`
	Entities  []Entity  `json:"entities"`
}

// Completion is the openai variant: the generated reply text.
type Completion struct {
	Text string `json:"text"`
}

type resultWire struct {
	API    ID              `json:"api"`
	Result json.RawMessage `json:"result"`
}

// MarshalJSON emits the wire shape {"api": ..., "result": ...}.
func (r *Result) MarshalJSON() ([]byte, error) {
	var inner any
	switch r.API {
	case HuggingFace:
		inner = r.HuggingFace
	case GoogleNLP:
		inner = r.GoogleNLP
	case OpenAI:
		inner = r.OpenAI
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, r.API)
	}
	raw, err := json.Marshal(inner)
	if err != nil {
		return nil, err
	}
	return json.Marshal(resultWire{API: r.API, Result: raw})
}

// UnmarshalJSON decodes the wire shape, validating the payload against
// the registry entry named by the api tag.
func (r *Result) UnmarshalJSON(data []byte) error {
	var wire resultWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return malformed("decoding result envelope: %v", err)
	}
	if len(wire.Result) == 0 {
		return malformed("missing result payload")
	}
	decoded, err := Normalize(wire.API, wire.Result)
	if err != nil {
		return err
	}
	*r = *decoded
	return nil
}
