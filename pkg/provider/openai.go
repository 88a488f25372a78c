package provider

import (
	"encoding/json"
	"strings"
)

const (
	openAIModel        = "gpt-3.5-turbo"
	openAISystemPrompt = "You are a helpful assistant."
	openAIMaxTokens    = 150
)

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens"`
}

type openAIChoiceWire struct {
	Message *struct {
		Content *string `json:"content"`
	} `json:"message"`
}

type openAICompletionWire struct {
	Choices []openAIChoiceWire `json:"choices"`
}

type openAITextWire struct {
	Text *string `json:"text"`
}

func buildOpenAIRequest(text string) any {
	return openAIRequest{
		Model: openAIModel,
		Messages: []openAIMessage{
			{Role: "system", Content: openAISystemPrompt},
			{Role: "user", Content: text},
		},
		MaxTokens: openAIMaxTokens,
	}
}

// normalizeOpenAI accepts either a full chat completion response or the
// already-flattened {text} shape.
func normalizeOpenAI(raw json.RawMessage) (*Result, error) {
	var flat openAITextWire
	if err := json.Unmarshal(raw, &flat); err == nil && flat.Text != nil {
		return &Result{API: OpenAI, OpenAI: &Completion{Text: *flat.Text}}, nil
	}

	var completion openAICompletionWire
	if err := json.Unmarshal(raw, &completion); err != nil {
		return nil, malformed("decoding openai response: %v", err)
	}
	if len(completion.Choices) == 0 {
		return nil, malformed("openai response has no choices")
	}
	choice := completion.Choices[0]
	if choice.Message == nil || choice.Message.Content == nil {
		return nil, malformed("openai choice missing message content")
	}
	return &Result{
		API:    OpenAI,
		OpenAI: &Completion{Text: strings.TrimSpace(*choice.Message.Content)},
	}, nil
}
