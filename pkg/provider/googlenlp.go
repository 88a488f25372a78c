package provider

import "encoding/json"

// maxEntities caps the entity list at the top entries by upstream order.
const maxEntities = 5

// googleNLPRequest is the document payload shared by the analyzeSentiment
// and analyzeEntities REST calls.
type googleNLPRequest struct {
	Document googleNLPDocument `json:"document"`
}

type googleNLPDocument struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type googleNLPSentimentWire struct {
	Score     *float64 `json:"score"`
	Magnitude *float64 `json:"magnitude"`
}

type googleNLPEntityWire struct {
	Name     *string  `json:"name"`
	Type     *string  `json:"type"`
	Salience *float64 `json:"salience"`
}

type googleNLPWire struct {
	Sentiment *googleNLPSentimentWire `json:"sentiment"`
	Entities  []googleNLPEntityWire   `json:"entities"`
}

func buildGoogleNLPRequest(text string) any {
	return googleNLPRequest{
		Document: googleNLPDocument{Type: "PLAIN_TEXT", Content: text},
	}
}

func normalizeGoogleNLP(raw json.RawMessage) (*Result, error) {
	var wire googleNLPWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, malformed("decoding google_nlp response: %v", err)
	}
	if wire.Sentiment == nil {
		return nil, malformed("google_nlp response missing sentiment")
	}
	if wire.Sentiment.Score == nil || wire.Sentiment.Magnitude == nil {
		return nil, malformed("google_nlp sentiment missing score or magnitude")
	}
	if *wire.Sentiment.Score < -1 || *wire.Sentiment.Score > 1 {
		return nil, malformed("google_nlp sentiment score %v outside [-1,1]", *wire.Sentiment.Score)
	}
	if *wire.Sentiment.Magnitude < 0 {
		return nil, malformed("google_nlp sentiment magnitude %v is negative", *wire.Sentiment.Magnitude)
	}

	entities := wire.Entities
	if len(entities) > maxEntities {
		entities = entities[:maxEntities]
	}

	out := &SentimentAnalysis{
		Sentiment: Sentiment{
			Score:     *wire.Sentiment.Score,
			Magnitude: *wire.Sentiment.Magnitude,
		},
		Entities: make([]Entity, 0, len(entities)),
	}
	for _, e := range entities {
		if e.Name == nil || e.Type == nil || e.Salience == nil {
			return nil, malformed("google_nlp entity missing name, type or salience")
		}
		if *e.Salience < 0 || *e.Salience > 1 {
			return nil, malformed("google_nlp entity salience %v outside [0,1]", *e.Salience)
		}
		out.Entities = append(out.Entities, Entity{
			Name:     *e.Name,
			Type:     *e.Type,
			Salience: *e.Salience,
		})
	}

	return &Result{API: GoogleNLP, GoogleNLP: out}, nil
}
