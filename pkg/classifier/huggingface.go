package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultSentimentModel = "distilbert-base-uncased-finetuned-sst-2-english"
	DefaultEmotionModel   = "j-hartmann/emotion-english-distilroberta-base"

	defaultInferenceBaseURL = "https://api-inference.huggingface.co/models"
)

// HuggingFaceConfig configures the Inference API client. Zero values fall
// back to the default models and endpoint.
type HuggingFaceConfig struct {
	APIKey         string
	SentimentModel string
	EmotionModel   string
	BaseURL        string
	HTTPClient     *http.Client
}

// HuggingFaceClassifier calls the HuggingFace Inference API for both the
// sentiment and the emotion model. It is stateless and safe for concurrent
// use.
type HuggingFaceClassifier struct {
	apiKey         string
	sentimentModel string
	emotionModel   string
	baseURL        string
	httpClient     *http.Client
}

func NewHuggingFaceClassifier(cfg HuggingFaceConfig) *HuggingFaceClassifier {
	if cfg.SentimentModel == "" {
		cfg.SentimentModel = DefaultSentimentModel
	}
	if cfg.EmotionModel == "" {
		cfg.EmotionModel = DefaultEmotionModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultInferenceBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &HuggingFaceClassifier{
		apiKey:         cfg.APIKey,
		sentimentModel: cfg.SentimentModel,
		emotionModel:   cfg.EmotionModel,
		baseURL:        cfg.BaseURL,
		httpClient:     cfg.HTTPClient,
	}
}

type inferenceRequest struct {
	Inputs  string          `json:"inputs"`
	Options map[string]bool `json:"options,omitempty"`
}

func (c *HuggingFaceClassifier) query(ctx context.Context, model, text string) (json.RawMessage, error) {
	body, err := json.Marshal(inferenceRequest{
		Inputs:  text,
		Options: map[string]bool{"wait_for_model": true},
	})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/" + model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference API returned %d for model %s", resp.StatusCode, model)
	}
	return payload, nil
}

func (c *HuggingFaceClassifier) ClassifySentiment(ctx context.Context, text string) (SentimentResult, error) {
	raw, err := c.query(ctx, c.sentimentModel, text)
	if err != nil {
		return SentimentResult{}, err
	}
	return NormalizeSentiment(raw), nil
}

func (c *HuggingFaceClassifier) ClassifyEmotions(ctx context.Context, text string) (map[string]float64, error) {
	raw, err := c.query(ctx, c.emotionModel, text)
	if err != nil {
		return nil, err
	}
	return NormalizeEmotions(raw), nil
}
