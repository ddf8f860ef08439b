package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	if s, ok := id.(string); ok {
		return s
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var validationErr *ValidationError

	switch {
	case errors.As(err, &validationErr):
		RespondError(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Assessment session not found. Please start the assessment from the beginning.")
	case errors.Is(err, ErrAssessmentIncomplete):
		RespondError(c, http.StatusConflict, "Please complete the assessment to view results.")
	case errors.Is(err, ErrInvalidAge):
		RespondError(c, http.StatusBadRequest, "Age must be between 10 and 100")
	case errors.Is(err, ErrInvalidGender):
		RespondError(c, http.StatusBadRequest, "Gender must be one of: male, female, other, prefer_not_say")
	case errors.Is(err, ErrInvalidProfession):
		RespondError(c, http.StatusBadRequest, "Profession must be a non-empty string of at most 100 characters")
	case errors.Is(err, ErrSessionStore):
		log.Printf("Session store error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
