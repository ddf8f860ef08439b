package services

import (
	"math"
	"sort"

	"eqsense/internal/models/db_models"
)

// The six EQ categories, in report order.
var EQCategories = []string{
	"self_awareness",
	"emotional_resilience",
	"conflict_resolution",
	"cultural_awareness",
	"empathy",
	"stress_management",
}

const (
	EQLevelLow     = "Low EQ"
	EQLevelAverage = "Average EQ"
	EQLevelHigh    = "High EQ"
)

// SentimentRatios are per-label mean sentiment scores across all responses.
// They do not necessarily sum to 1.
type SentimentRatios struct {
	Positive float64
	Negative float64
	Neutral  float64
}

// AggregateRatios is the corpus-level signal the heuristic formulas consume.
type AggregateRatios struct {
	Sentiment SentimentRatios
	Emotions  map[string]float64
}

type ScoringServiceInterface interface {
	Aggregate(analyses []ResponseAnalysis) AggregateRatios
	CalculateEQScores(analyses []ResponseAnalysis, demographics db_models.Demographics) (map[string]float64, float64)
	InterpretOverallEQ(overall float64) string
	SentimentPercent(analyses []ResponseAnalysis) map[string]float64
	EmotionPercent(analyses []ResponseAnalysis) []db_models.EmotionShare
}

type ScoringService struct{}

func NewScoringService() ScoringServiceInterface {
	return &ScoringService{}
}

// Aggregate folds per-response features into corpus-level ratios.
//
// Sentiment: each label's scores are summed and divided by the number of
// responses (not by the count of responses bearing that label). Zero
// responses default every ratio to 0.33.
//
// Emotions: per-label totals divided by the grand total, so the ratios sum
// to 1 when anything was detected. A zero grand total with observed labels
// falls back to a uniform distribution over those labels.
func (s *ScoringService) Aggregate(analyses []ResponseAnalysis) AggregateRatios {
	var totalPositive, totalNegative, totalNeutral float64
	emotionTotals := make(map[string]float64)

	for _, analysis := range analyses {
		switch analysis.SentimentLabel {
		case "POSITIVE":
			totalPositive += analysis.SentimentScore
		case "NEGATIVE":
			totalNegative += analysis.SentimentScore
		default:
			totalNeutral += analysis.SentimentScore
		}

		for label, score := range analysis.EmotionScores {
			emotionTotals[label] += score
		}
	}

	ratios := AggregateRatios{Emotions: make(map[string]float64, len(emotionTotals))}

	if n := float64(len(analyses)); n > 0 {
		ratios.Sentiment = SentimentRatios{
			Positive: totalPositive / n,
			Negative: totalNegative / n,
			Neutral:  totalNeutral / n,
		}
	} else {
		ratios.Sentiment = SentimentRatios{Positive: 0.33, Negative: 0.33, Neutral: 0.33}
	}

	var grandTotal float64
	for _, total := range emotionTotals {
		grandTotal += total
	}
	if grandTotal > 0 {
		for label, total := range emotionTotals {
			ratios.Emotions[label] = total / grandTotal
		}
	} else if len(emotionTotals) > 0 {
		uniform := 1.0 / float64(len(emotionTotals))
		for label := range emotionTotals {
			ratios.Emotions[label] = uniform
		}
	}

	return ratios
}

// CalculateEQScores maps the aggregate ratios plus a mild demographic
// adjustment into the six category scores and their mean. The adjustment is
// applied before clamping to [0,100]; keep that order.
func (s *ScoringService) CalculateEQScores(analyses []ResponseAnalysis, demographics db_models.Demographics) (map[string]float64, float64) {
	ratios := s.Aggregate(analyses)

	positive := ratios.Sentiment.Positive
	negative := ratios.Sentiment.Negative
	neutral := ratios.Sentiment.Neutral

	joy := ratios.Emotions["joy"]
	sadness := ratios.Emotions["sadness"]
	anger := ratios.Emotions["anger"]
	fear := ratios.Emotions["fear"]
	disgust := ratios.Emotions["disgust"]
	love := ratios.Emotions["love"]

	selfAwareness := 50 + 50*(joy+love-sadness-anger)
	emotionalResilience := 50 + 50*(positive-negative-fear*0.5)
	conflictResolution := 50 + 50*(positive-anger-disgust)
	culturalAwareness := 50 + 50*(neutral+love-disgust)
	empathy := 50 + 50*(love+sadness*0.7-disgust)
	stressManagement := 50 + 50*(positive-fear-anger)

	age := demographics.Age
	if age <= 0 {
		age = 30
	}
	ageFactor := math.Min(1.0, float64(age)/60.0)

	emotionalResilience += ageFactor * 5
	stressManagement += ageFactor * 3

	categoryScores := map[string]float64{
		"self_awareness":       clampScore(selfAwareness),
		"emotional_resilience": clampScore(emotionalResilience),
		"conflict_resolution":  clampScore(conflictResolution),
		"cultural_awareness":   clampScore(culturalAwareness),
		"empathy":              clampScore(empathy),
		"stress_management":    clampScore(stressManagement),
	}

	var sum float64
	for _, score := range categoryScores {
		sum += score
	}
	overall := sum / float64(len(categoryScores))

	return categoryScores, overall
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// InterpretOverallEQ thresholds the overall score into a coarse level.
// Exactly 40 is Average, exactly 70 is Average.
func (s *ScoringService) InterpretOverallEQ(overall float64) string {
	switch {
	case overall < 40:
		return EQLevelLow
	case overall <= 70:
		return EQLevelAverage
	default:
		return EQLevelHigh
	}
}

// SentimentPercent is the display summary: each label's share of the total
// sentiment score, as a 0-100 percentage. Uniform 33.3 when there is no
// signal at all.
func (s *ScoringService) SentimentPercent(analyses []ResponseAnalysis) map[string]float64 {
	counts := map[string]float64{"POSITIVE": 0, "NEGATIVE": 0, "NEUTRAL": 0}
	for _, analysis := range analyses {
		if _, ok := counts[analysis.SentimentLabel]; ok {
			counts[analysis.SentimentLabel] += analysis.SentimentScore
		}
	}

	var total float64
	for _, count := range counts {
		total += count
	}
	if total <= 0 {
		return map[string]float64{"POSITIVE": 33.3, "NEGATIVE": 33.3, "NEUTRAL": 33.3}
	}

	percent := make(map[string]float64, len(counts))
	for label, count := range counts {
		percent[label] = count / total * 100
	}
	return percent
}

// EmotionPercent is the display summary of emotion shares, sorted
// descending. Ties break alphabetically so the output is stable.
func (s *ScoringService) EmotionPercent(analyses []ResponseAnalysis) []db_models.EmotionShare {
	totals := make(map[string]float64)
	for _, analysis := range analyses {
		for label, score := range analysis.EmotionScores {
			totals[label] += score
		}
	}

	var grandTotal float64
	for _, total := range totals {
		grandTotal += total
	}
	if grandTotal <= 0 {
		return []db_models.EmotionShare{}
	}

	shares := make([]db_models.EmotionShare, 0, len(totals))
	for label, total := range totals {
		shares = append(shares, db_models.EmotionShare{
			Label:   label,
			Percent: total / grandTotal * 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Percent != shares[j].Percent {
			return shares[i].Percent > shares[j].Percent
		}
		return shares[i].Label < shares[j].Label
	})
	return shares
}
