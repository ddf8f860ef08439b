package classifier

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAIClassifier prompts a chat model for strict-JSON classification
// output and runs the reply through the shape normalizer.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

func NewOpenAIClassifier(apiKey, model string) *OpenAIClassifier {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIClassifier{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClassifier) complete(ctx context.Context, system, user string) (json.RawMessage, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices returned")
	}
	content := resp.Choices[0].Message.Content
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("openai: response is not valid JSON")
	}
	return json.RawMessage(content), nil
}

func (c *OpenAIClassifier) ClassifySentiment(ctx context.Context, text string) (SentimentResult, error) {
	raw, err := c.complete(ctx,
		`You are a sentiment classifier. Return JSON only, exactly `+
			`{"label":"POSITIVE"|"NEGATIVE"|"NEUTRAL","score":<confidence 0..1>}. No prose.`,
		text)
	if err != nil {
		return SentimentResult{}, err
	}
	return NormalizeSentiment(raw), nil
}

func (c *OpenAIClassifier) ClassifyEmotions(ctx context.Context, text string) (map[string]float64, error) {
	raw, err := c.complete(ctx,
		`You are a multi-label emotion classifier. Score the text for joy, sadness, anger, `+
			`fear, disgust, surprise, love and neutral. Return JSON only: an object mapping each `+
			`lower-case emotion label to a confidence in 0..1. No prose.`,
		text)
	if err != nil {
		return nil, err
	}
	return NormalizeEmotions(raw), nil
}
