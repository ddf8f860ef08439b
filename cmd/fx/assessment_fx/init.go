package assessment_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"eqsense/internal/api/controllers"
	"eqsense/internal/repositories"
	"eqsense/internal/services"
	"eqsense/pkg/classifier"
)

var Module = fx.Provide(
	provideScenarioService,
	provideAnalysisService,
	provideScoringService,
	provideAssessmentService,
	provideAssessmentController,
)

func provideScenarioService() services.ScenarioServiceInterface {
	return services.NewScenarioService()
}

func provideAnalysisService(sentiment classifier.SentimentClassifier, emotions classifier.EmotionClassifier) services.AnalysisServiceInterface {
	return services.NewAnalysisService(sentiment, emotions)
}

func provideScoringService() services.ScoringServiceInterface {
	return services.NewScoringService()
}

func provideAssessmentService(
	scenarios services.ScenarioServiceInterface,
	analysis services.AnalysisServiceInterface,
	scoring services.ScoringServiceInterface,
	sessions repositories.SessionRepositoryInterface,
) services.AssessmentServiceInterface {
	minWords, err := strconv.Atoi(os.Getenv("MIN_WORDS_PER_RESPONSE"))
	if err != nil {
		minWords = 0
	}
	return services.NewAssessmentService(scenarios, analysis, scoring, sessions, minWords)
}

func provideAssessmentController(assessmentService services.AssessmentServiceInterface) *controllers.AssessmentController {
	return controllers.NewAssessmentController(assessmentService)
}
