package classifier_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"eqsense/pkg/classifier"
)

var Module = fx.Provide(provideClassifiers)

// provideClassifiers builds the sentiment and emotion backends once for the
// whole process. The classifiers are expensive shared resources; every
// assessment reuses the same pair.
func provideClassifiers(lc fx.Lifecycle) (classifier.SentimentClassifier, classifier.EmotionClassifier) {
	provider := os.Getenv("CLASSIFIER_PROVIDER")

	var sentiment classifier.SentimentClassifier
	var emotions classifier.EmotionClassifier

	switch provider {
	case "openai":
		c := classifier.NewOpenAIClassifier(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
		sentiment, emotions = c, c

	case "gemini":
		c, err := classifier.NewGeminiClassifier(context.Background(), os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Failed to create Gemini classifier: %v", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return c.Close()
			},
		})
		sentiment, emotions = c, c

	default:
		c := classifier.NewHuggingFaceClassifier(classifier.HuggingFaceConfig{
			APIKey:         os.Getenv("HF_API_KEY"),
			SentimentModel: os.Getenv("HF_SENTIMENT_MODEL"),
			EmotionModel:   os.Getenv("HF_EMOTION_MODEL"),
		})
		sentiment, emotions = c, c
	}

	if os.Getenv("CLASSIFIER_SERIALIZE") == "true" {
		sentiment = classifier.SerializeSentiment(sentiment)
		emotions = classifier.SerializeEmotion(emotions)
	}

	return sentiment, emotions
}
