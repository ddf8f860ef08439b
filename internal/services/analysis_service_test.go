package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"eqsense/pkg/classifier"
)

type fakeSentiment struct {
	result classifier.SentimentResult
	err    error
	// perText overrides result keyed by input text when set.
	perText map[string]classifier.SentimentResult
	delay   time.Duration
}

func (f *fakeSentiment) ClassifySentiment(ctx context.Context, text string) (classifier.SentimentResult, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return classifier.SentimentResult{}, f.err
	}
	if r, ok := f.perText[text]; ok {
		return r, nil
	}
	return f.result, nil
}

type fakeEmotion struct {
	scores map[string]float64
	err    error
}

func (f *fakeEmotion) ClassifyEmotions(ctx context.Context, text string) (map[string]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.scores, nil
}

func TestAnalyzeSingleResponse_Basic(t *testing.T) {
	s := NewAnalysisService(
		&fakeSentiment{result: classifier.SentimentResult{Label: "POSITIVE", Score: 0.9}},
		&fakeEmotion{scores: map[string]float64{"joy": 0.8, "fear": 0.1}},
	)

	analysis := s.AnalyzeSingleResponse(context.Background(), "a hopeful answer")
	if analysis.SentimentLabel != "POSITIVE" || analysis.SentimentScore != 0.9 {
		t.Fatalf("unexpected sentiment: %s/%f", analysis.SentimentLabel, analysis.SentimentScore)
	}
	if analysis.PrimaryEmotion != "joy" || analysis.PrimaryEmotionScore != 0.8 {
		t.Fatalf("unexpected primary emotion: %s/%f", analysis.PrimaryEmotion, analysis.PrimaryEmotionScore)
	}
}

func TestAnalyzeSingleResponse_SentimentFaultDegrades(t *testing.T) {
	s := NewAnalysisService(
		&fakeSentiment{err: errors.New("model unavailable")},
		&fakeEmotion{scores: map[string]float64{"anger": 0.4}},
	)

	analysis := s.AnalyzeSingleResponse(context.Background(), "whatever")
	if analysis.SentimentLabel != classifier.SentimentNeutral {
		t.Fatalf("expected NEUTRAL fallback, got %s", analysis.SentimentLabel)
	}
	if analysis.SentimentScore != 0.5 {
		t.Fatalf("expected 0.5 fallback score, got %f", analysis.SentimentScore)
	}
}

func TestAnalyzeSingleResponse_EmotionFaultGivesEmptyMap(t *testing.T) {
	s := NewAnalysisService(
		&fakeSentiment{result: classifier.SentimentResult{Label: "NEGATIVE", Score: 0.7}},
		&fakeEmotion{err: errors.New("boom")},
	)

	analysis := s.AnalyzeSingleResponse(context.Background(), "whatever")
	if len(analysis.EmotionScores) != 0 {
		t.Fatalf("expected no emotions, got %v", analysis.EmotionScores)
	}
	if analysis.PrimaryEmotion != "" {
		t.Fatalf("expected no primary emotion, got %s", analysis.PrimaryEmotion)
	}
	if analysis.PrimaryEmotionScore != 0 {
		t.Fatalf("expected zero primary score, got %f", analysis.PrimaryEmotionScore)
	}
	// The sentiment side is unaffected by the emotion fault.
	if analysis.SentimentLabel != "NEGATIVE" {
		t.Fatalf("expected NEGATIVE, got %s", analysis.SentimentLabel)
	}
}

func TestAnalyzeSingleResponse_UnrecognizedLabelBecomesNeutral(t *testing.T) {
	s := NewAnalysisService(
		&fakeSentiment{result: classifier.SentimentResult{Label: "LABEL_3", Score: 0.6}},
		&fakeEmotion{},
	)

	analysis := s.AnalyzeSingleResponse(context.Background(), "whatever")
	if analysis.SentimentLabel != classifier.SentimentNeutral {
		t.Fatalf("expected NEUTRAL for unknown label, got %s", analysis.SentimentLabel)
	}
	if analysis.SentimentScore != 0.6 {
		t.Fatalf("score should be preserved, got %f", analysis.SentimentScore)
	}
}

func TestAnalyzeSingleResponse_EmotionLabelsLowerCased(t *testing.T) {
	s := NewAnalysisService(
		&fakeSentiment{result: classifier.SentimentResult{Label: "POSITIVE", Score: 0.5}},
		&fakeEmotion{scores: map[string]float64{" Joy ": 0.9, "": 0.3}},
	)

	analysis := s.AnalyzeSingleResponse(context.Background(), "whatever")
	if analysis.EmotionScores["joy"] != 0.9 {
		t.Fatalf("expected lower-cased joy, got %v", analysis.EmotionScores)
	}
	if len(analysis.EmotionScores) != 1 {
		t.Fatalf("empty label should be dropped: %v", analysis.EmotionScores)
	}
}

func TestAnalyzeResponses_PreservesOrder(t *testing.T) {
	perText := make(map[string]classifier.SentimentResult)
	responses := make([]string, 8)
	for i := range responses {
		responses[i] = fmt.Sprintf("answer number %d", i)
		label := "POSITIVE"
		if i%2 == 1 {
			label = "NEGATIVE"
		}
		perText[responses[i]] = classifier.SentimentResult{Label: label, Score: float64(i) / 10}
	}

	s := NewAnalysisService(
		&fakeSentiment{perText: perText, delay: time.Millisecond},
		&fakeEmotion{scores: map[string]float64{"joy": 0.5}},
	)

	analyses := s.AnalyzeResponses(context.Background(), responses)
	if len(analyses) != len(responses) {
		t.Fatalf("expected %d analyses, got %d", len(responses), len(analyses))
	}
	for i, analysis := range analyses {
		expected := perText[responses[i]]
		if analysis.SentimentLabel != expected.Label || analysis.SentimentScore != expected.Score {
			t.Fatalf("analysis %d out of order: got %s/%f", i, analysis.SentimentLabel, analysis.SentimentScore)
		}
	}
}

func TestAnalyzeResponses_Empty(t *testing.T) {
	s := NewAnalysisService(&fakeSentiment{}, &fakeEmotion{})
	analyses := s.AnalyzeResponses(context.Background(), nil)
	if len(analyses) != 0 {
		t.Fatalf("expected no analyses, got %d", len(analyses))
	}
}

func TestPrimaryEmotion_TieBreaksAlphabetically(t *testing.T) {
	s := NewAnalysisService(
		&fakeSentiment{result: classifier.SentimentResult{Label: "POSITIVE", Score: 0.5}},
		&fakeEmotion{scores: map[string]float64{"sadness": 0.4, "anger": 0.4}},
	)

	analysis := s.AnalyzeSingleResponse(context.Background(), "whatever")
	if analysis.PrimaryEmotion != "anger" {
		t.Fatalf("expected deterministic tie-break to anger, got %s", analysis.PrimaryEmotion)
	}
	if !strings.HasPrefix(analysis.PrimaryEmotion, "a") {
		t.Fatalf("tie-break should pick the alphabetically first label")
	}
}
