package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eqsense/internal/models/db_models"
	"eqsense/internal/repositories"
	"eqsense/pkg/utils"
)

// AssessmentServiceInterface drives the full assessment flow:
// start (demographics → scenario + questions), respond (answers → scores)
// and result retrieval. Each step loads the session, transforms it and
// saves it back; the service itself holds no per-assessment state.
type AssessmentServiceInterface interface {
	StartAssessment(ctx context.Context, demographics db_models.Demographics) (*db_models.AssessmentSession, error)
	SubmitResponses(ctx context.Context, sessionID string, answers []string) (*db_models.AssessmentSession, error)
	GetResult(ctx context.Context, sessionID string) (*db_models.AssessmentSession, error)
	AbandonAssessment(ctx context.Context, sessionID string) error
}

type AssessmentService struct {
	scenarios ScenarioServiceInterface
	analysis  AnalysisServiceInterface
	scoring   ScoringServiceInterface
	sessions  repositories.SessionRepositoryInterface
	minWords  int
}

func NewAssessmentService(
	scenarios ScenarioServiceInterface,
	analysis AnalysisServiceInterface,
	scoring ScoringServiceInterface,
	sessions repositories.SessionRepositoryInterface,
	minWords int,
) AssessmentServiceInterface {
	if minWords <= 0 {
		minWords = DefaultMinWordsPerResponse
	}
	return &AssessmentService{
		scenarios: scenarios,
		analysis:  analysis,
		scoring:   scoring,
		sessions:  sessions,
		minWords:  minWords,
	}
}

func validGender(gender string) bool {
	switch gender {
	case db_models.GenderMale, db_models.GenderFemale, db_models.GenderOther, db_models.GenderPreferNotSay:
		return true
	}
	return false
}

func (s *AssessmentService) StartAssessment(ctx context.Context, demographics db_models.Demographics) (*db_models.AssessmentSession, error) {
	if demographics.Age < 10 || demographics.Age > 100 {
		return nil, utils.ErrInvalidAge
	}
	if !validGender(demographics.Gender) {
		return nil, utils.ErrInvalidGender
	}
	profession := strings.TrimSpace(demographics.Profession)
	if profession == "" || len(profession) > 100 {
		return nil, utils.ErrInvalidProfession
	}
	demographics.Profession = profession

	scenario := s.scenarios.GenerateScenario(demographics.Age, demographics.Gender, demographics.Profession)
	questions := s.scenarios.GenerateQuestions(scenario)

	session := &db_models.AssessmentSession{
		ID:           uuid.New().String(),
		Demographics: demographics,
		Scenario:     scenario,
		Questions:    questions,
		CreatedAt:    time.Now(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *AssessmentService) SubmitResponses(ctx context.Context, sessionID string, answers []string) (*db_models.AssessmentSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(answers) != len(session.Questions) {
		return nil, &utils.ValidationError{
			Message: fmt.Sprintf("Expected %d answers, got %d.", len(session.Questions), len(answers)),
		}
	}
	if err := ValidateResponses(answers, s.minWords); err != nil {
		return nil, err
	}

	analyses := s.analysis.AnalyzeResponses(ctx, answers)

	categoryScores, overall := s.scoring.CalculateEQScores(analyses, session.Demographics)

	session.Completed = true
	session.CategoryScores = categoryScores
	session.OverallScore = overall
	session.EQLevel = s.scoring.InterpretOverallEQ(overall)
	session.SentimentPercent = s.scoring.SentimentPercent(analyses)
	session.EmotionPercent = s.scoring.EmotionPercent(analyses)

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *AssessmentService) GetResult(ctx context.Context, sessionID string) (*db_models.AssessmentSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Completed {
		return nil, utils.ErrAssessmentIncomplete
	}
	return session, nil
}

// AbandonAssessment drops a session before completion. Results are never
// kept around once the caller is done with them.
func (s *AssessmentService) AbandonAssessment(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
