package classifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiClassifier uses a Gemini model in JSON-only mode as the free-tier
// classifier backend. Close must be called when the process shuts down.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

func NewGeminiClassifier(ctx context.Context, apiKey, model string) (*GeminiClassifier, error) {
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClassifier{client: client, model: model}, nil
}

func (c *GeminiClassifier) Close() error {
	return c.client.Close()
}

func (c *GeminiClassifier) generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so the normalizer never sees markdown fences.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: no content")
	}
	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("gemini: response is not valid JSON")
	}
	return json.RawMessage(content), nil
}

func (c *GeminiClassifier) ClassifySentiment(ctx context.Context, text string) (SentimentResult, error) {
	prompt := fmt.Sprintf(`Classify the sentiment of the text below.
Return **JSON only** matching exactly: {"label":"POSITIVE"|"NEGATIVE"|"NEUTRAL","score":<confidence 0..1>}

Text:
%s`, text)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return SentimentResult{}, err
	}
	return NormalizeSentiment(raw), nil
}

func (c *GeminiClassifier) ClassifyEmotions(ctx context.Context, text string) (map[string]float64, error) {
	prompt := fmt.Sprintf(`Score the text below for the emotions joy, sadness, anger, fear, disgust, surprise, love and neutral.
Return **JSON only**: an object mapping each lower-case emotion label to a confidence in 0..1. No comments, no markdown.

Text:
%s`, text)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return NormalizeEmotions(raw), nil
}
