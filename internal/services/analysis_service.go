package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"eqsense/pkg/classifier"
)

// ResponseAnalysis is the per-response feature record derived once per
// answer and never mutated afterwards.
type ResponseAnalysis struct {
	SentimentLabel      string             `json:"sentiment_label"`
	SentimentScore      float64            `json:"sentiment_score"`
	EmotionScores       map[string]float64 `json:"emotion_scores"`
	PrimaryEmotion      string             `json:"primary_emotion,omitempty"`
	PrimaryEmotionScore float64            `json:"primary_emotion_score"`
}

type AnalysisServiceInterface interface {
	AnalyzeSingleResponse(ctx context.Context, text string) ResponseAnalysis
	AnalyzeResponses(ctx context.Context, responses []string) []ResponseAnalysis
}

type AnalysisService struct {
	sentiment classifier.SentimentClassifier
	emotions  classifier.EmotionClassifier
}

func NewAnalysisService(sentiment classifier.SentimentClassifier, emotions classifier.EmotionClassifier) AnalysisServiceInterface {
	return &AnalysisService{sentiment: sentiment, emotions: emotions}
}

// AnalyzeSingleResponse extracts the sentiment and emotion features for one
// answer. It never fails: a sentiment fault degrades to {NEUTRAL, 0.5} and
// an emotion fault to "no emotions detected".
func (s *AnalysisService) AnalyzeSingleResponse(ctx context.Context, text string) ResponseAnalysis {
	sentiment, err := s.sentiment.ClassifySentiment(ctx, text)
	if err != nil {
		log.Printf("Sentiment analysis error: %v", err)
		sentiment = classifier.SentimentResult{Label: classifier.SentimentNeutral, Score: 0.5}
	}
	sentiment.Label = classifier.NormalizeSentimentLabel(sentiment.Label)

	emotionScores, err := s.emotions.ClassifyEmotions(ctx, text)
	if err != nil {
		log.Printf("Emotion analysis error: %v", err)
		emotionScores = nil
	}

	cleaned := make(map[string]float64, len(emotionScores))
	for label, score := range emotionScores {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == "" {
			continue
		}
		cleaned[label] = score
	}

	analysis := ResponseAnalysis{
		SentimentLabel: sentiment.Label,
		SentimentScore: sentiment.Score,
		EmotionScores:  cleaned,
	}

	for label, score := range cleaned {
		if analysis.PrimaryEmotion == "" ||
			score > analysis.PrimaryEmotionScore ||
			(score == analysis.PrimaryEmotionScore && label < analysis.PrimaryEmotion) {
			analysis.PrimaryEmotion = label
			analysis.PrimaryEmotionScore = score
		}
	}

	return analysis
}

// AnalyzeResponses analyzes every answer concurrently. Results land at the
// index of their answer, so the output order always matches the input order.
func (s *AnalysisService) AnalyzeResponses(ctx context.Context, responses []string) []ResponseAnalysis {
	analyses := make([]ResponseAnalysis, len(responses))

	var wg sync.WaitGroup
	for i, response := range responses {
		wg.Add(1)
		go func(i int, response string) {
			defer wg.Done()
			analyses[i] = s.AnalyzeSingleResponse(ctx, response)
		}(i, response)
	}
	wg.Wait()

	return analyses
}
