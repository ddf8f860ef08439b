package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eqsense/internal/models/db_models"
	"eqsense/internal/models/request_models"
	"eqsense/internal/models/response_models"
	"eqsense/internal/services"
	"eqsense/pkg/utils"
)

type AssessmentController struct {
	assessmentService services.AssessmentServiceInterface
}

func NewAssessmentController(assessmentService services.AssessmentServiceInterface) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// StartAssessment godoc
// @Summary Start an assessment
// @Description Collect demographics, generate the scenario and questions and open a session
// @Tags Assessment
// @Accept json
// @Produce json
// @Param request body request_models.StartAssessmentRequest true "Demographics payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /assessment/start [post]
func (a *AssessmentController) StartAssessment(c *gin.Context) {
	var req request_models.StartAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	session, err := a.assessmentService.StartAssessment(c.Request.Context(), db_models.Demographics{
		Age:        req.Age,
		Gender:     req.Gender,
		Profession: req.Profession,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ScenarioFromSession(session), "Assessment started")
}

// SubmitResponses godoc
// @Summary Submit responses
// @Description Validate and analyze the answers, compute EQ scores and store them in the session
// @Tags Assessment
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.SubmitResponsesRequest true "Answers payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /assessment/{sessionId}/respond [post]
func (a *AssessmentController) SubmitResponses(c *gin.Context) {
	var req request_models.SubmitResponsesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	session, err := a.assessmentService.SubmitResponses(c.Request.Context(), c.Param("sessionId"), req.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ResultFromSession(session), "Assessment completed")
}

// GetResult godoc
// @Summary Get assessment result
// @Description Return the stored scores and summaries for a completed session
// @Tags Assessment
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /assessment/{sessionId}/result [get]
func (a *AssessmentController) GetResult(c *gin.Context) {
	session, err := a.assessmentService.GetResult(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ResultFromSession(session), "Assessment result fetched")
}

// AbandonAssessment godoc
// @Summary Abandon an assessment
// @Description Drop a session and everything stored in it
// @Tags Assessment
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /assessment/{sessionId} [delete]
func (a *AssessmentController) AbandonAssessment(c *gin.Context) {
	if err := a.assessmentService.AbandonAssessment(c.Request.Context(), c.Param("sessionId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Assessment abandoned")
}
