package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textgate/pkg/provider"
)

func TestFormatResult(t *testing.T) {
	t.Run("huggingface", func(t *testing.T) {
		out := formatResult(&provider.Result{
			API:         provider.HuggingFace,
			HuggingFace: &provider.LabelScore{Label: "POSITIVE", Score: 0.98},
		})
		assert.Contains(t, out, "Label: POSITIVE")
		assert.Contains(t, out, "Score: 0.9800")
	})

	t.Run("google_nlp with entities", func(t *testing.T) {
		out := formatResult(&provider.Result{
			API: provider.GoogleNLP,
			GoogleNLP: &provider.SentimentAnalysis{
				Sentiment: provider.Sentiment{Score: 0.8, Magnitude: 1.2},
				Entities: []provider.Entity{
					{Name: "Apple", Type: "ORGANIZATION", Salience: 0.9},
				},
			},
		})
		assert.Contains(t, out, "+0.80")
		assert.Contains(t, out, "1.20")
		assert.Contains(t, out, "Apple")
		assert.Contains(t, out, "ORGANIZATION")
	})

	t.Run("google_nlp without entities omits the section", func(t *testing.T) {
		out := formatResult(&provider.Result{
			API:       provider.GoogleNLP,
			GoogleNLP: &provider.SentimentAnalysis{Sentiment: provider.Sentiment{Score: -0.3, Magnitude: 0.5}},
		})
		assert.NotContains(t, out, "Entities")
	})

	t.Run("openai", func(t *testing.T) {
		out := formatResult(&provider.Result{
			API:    provider.OpenAI,
			OpenAI: &provider.Completion{Text: "Here is a summary."},
		})
		assert.Equal(t, "Here is a summary.\n", out)
	})
}

func TestProviderList(t *testing.T) {
	assert.Equal(t, "google_nlp, huggingface, openai", providerList())
}
