package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"eqsense/cmd/fx/assessment_fx"
	"eqsense/cmd/fx/classifier_fx"
	"eqsense/cmd/fx/session_fx"
	"eqsense/internal/api/controllers"
	"eqsense/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		classifier_fx.Module,
		session_fx.Module,
		assessment_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(assessmentController *controllers.AssessmentController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, assessmentController)

	return r
}

func RegisterRoutes(r *gin.Engine, assessmentController *controllers.AssessmentController) {
	assessmentGroup := r.Group("/assessment")
	assessmentGroup.POST("/start", assessmentController.StartAssessment)
	assessmentGroup.POST("/:sessionId/respond", assessmentController.SubmitResponses)
	assessmentGroup.GET("/:sessionId/result", assessmentController.GetResult)
	assessmentGroup.DELETE("/:sessionId", assessmentController.AbandonAssessment)
}
