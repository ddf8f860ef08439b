package response_models

import (
	"eqsense/internal/models/db_models"
)

type ScenarioResponse struct {
	SessionID string   `json:"session_id"`
	Scenario  string   `json:"scenario"`
	Questions []string `json:"questions"`
}

type ResultResponse struct {
	SessionID        string                   `json:"session_id"`
	Demographics     db_models.Demographics   `json:"demographics"`
	GenderDisplay    string                   `json:"gender_display"`
	Scenario         string                   `json:"scenario"`
	CategoryScores   map[string]float64       `json:"category_scores"`
	OverallScore     float64                  `json:"overall_score"`
	EQLevel          string                   `json:"eq_level"`
	SentimentPercent map[string]float64       `json:"sentiment_percent"`
	EmotionPercent   []db_models.EmotionShare `json:"emotion_percent"`
}

func ScenarioFromSession(s *db_models.AssessmentSession) ScenarioResponse {
	return ScenarioResponse{
		SessionID: s.ID,
		Scenario:  s.Scenario,
		Questions: s.Questions,
	}
}

func ResultFromSession(s *db_models.AssessmentSession) ResultResponse {
	return ResultResponse{
		SessionID:        s.ID,
		Demographics:     s.Demographics,
		GenderDisplay:    genderDisplay(s.Demographics.Gender),
		Scenario:         s.Scenario,
		CategoryScores:   s.CategoryScores,
		OverallScore:     s.OverallScore,
		EQLevel:          s.EQLevel,
		SentimentPercent: s.SentimentPercent,
		EmotionPercent:   s.EmotionPercent,
	}
}

func genderDisplay(gender string) string {
	switch gender {
	case db_models.GenderMale:
		return "Male"
	case db_models.GenderFemale:
		return "Female"
	case db_models.GenderOther:
		return "Other"
	case db_models.GenderPreferNotSay:
		return "Prefer not to say"
	default:
		return gender
	}
}
