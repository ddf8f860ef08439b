package classifier

import (
	"context"
	"sync"
)

// Canonical sentiment labels after normalization.
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
)

// SentimentResult is the canonical single-label sentiment classification.
type SentimentResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentimentClassifier classifies a text into one sentiment label with a
// confidence score.
type SentimentClassifier interface {
	ClassifySentiment(ctx context.Context, text string) (SentimentResult, error)
}

// EmotionClassifier scores a text against an open-ended emotion vocabulary.
// Keys are lower-cased emotion labels, values are confidence scores in [0,1].
type EmotionClassifier interface {
	ClassifyEmotions(ctx context.Context, text string) (map[string]float64, error)
}

type serializedSentiment struct {
	mu    sync.Mutex
	inner SentimentClassifier
}

func (s *serializedSentiment) ClassifySentiment(ctx context.Context, text string) (SentimentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ClassifySentiment(ctx, text)
}

type serializedEmotion struct {
	mu    sync.Mutex
	inner EmotionClassifier
}

func (s *serializedEmotion) ClassifyEmotions(ctx context.Context, text string) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ClassifyEmotions(ctx, text)
}

// SerializeSentiment wraps c so that only one call runs at a time. Use it for
// backends that are not safe for concurrent invocation.
func SerializeSentiment(c SentimentClassifier) SentimentClassifier {
	return &serializedSentiment{inner: c}
}

// SerializeEmotion wraps c so that only one call runs at a time.
func SerializeEmotion(c EmotionClassifier) EmotionClassifier {
	return &serializedEmotion{inner: c}
}
