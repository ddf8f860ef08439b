package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"eqsense/internal/repositories"
	"eqsense/internal/services"
	"eqsense/pkg/classifier"
	"eqsense/pkg/middleware"
	"eqsense/pkg/utils"
)

type staticSentiment struct{}

func (staticSentiment) ClassifySentiment(ctx context.Context, text string) (classifier.SentimentResult, error) {
	return classifier.SentimentResult{Label: "POSITIVE", Score: 0.9}, nil
}

type staticEmotion struct{}

func (staticEmotion) ClassifyEmotions(ctx context.Context, text string) (map[string]float64, error) {
	return map[string]float64{"joy": 0.7, "fear": 0.1}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	analysis := services.NewAnalysisService(staticSentiment{}, staticEmotion{})
	assessmentService := services.NewAssessmentService(
		services.NewScenarioService(),
		analysis,
		services.NewScoringService(),
		repositories.NewMemorySessionStore(time.Minute),
		0,
	)
	controller := NewAssessmentController(assessmentService)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	group := r.Group("/assessment")
	group.POST("/start", controller.StartAssessment)
	group.POST("/:sessionId/respond", controller.SubmitResponses)
	group.GET("/:sessionId/result", controller.GetResult)
	group.DELETE("/:sessionId", controller.AbandonAssessment)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func longAnswers() []string {
	answer := "I would stay calm, listen carefully and respond with patience and honest empathy."
	answers := make([]string, 5)
	for i := range answers {
		answers[i] = answer
	}
	return answers
}

func TestAssessmentFlow_EndToEnd(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/assessment/start", map[string]any{
		"age": 35, "gender": "female", "profession": "Teacher",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("start returned %d: %s", w.Code, w.Body.String())
	}
	data := resp.Data.(map[string]any)
	sessionID := data["session_id"].(string)
	if sessionID == "" {
		t.Fatal("expected a session id")
	}
	questions := data["questions"].([]any)
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}

	w, resp = doJSON(t, r, http.MethodPost, "/assessment/"+sessionID+"/respond", map[string]any{
		"answers": longAnswers(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("respond returned %d: %s", w.Code, w.Body.String())
	}
	result := resp.Data.(map[string]any)
	if result["eq_level"] == "" {
		t.Fatal("expected an EQ level")
	}
	scores := result["category_scores"].(map[string]any)
	if len(scores) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(scores))
	}
	if result["gender_display"] != "Female" {
		t.Fatalf("expected gender display Female, got %v", result["gender_display"])
	}

	w, resp = doJSON(t, r, http.MethodGet, "/assessment/"+sessionID+"/result", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("result returned %d: %s", w.Code, w.Body.String())
	}
	fetched := resp.Data.(map[string]any)
	if fetched["overall_score"] != result["overall_score"] {
		t.Fatal("stored result should match the submit response")
	}
}

func TestStartAssessment_InvalidPayload(t *testing.T) {
	r := newTestRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/assessment/start", map[string]any{
		"age": 5, "gender": "female", "profession": "Teacher",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for under-age, got %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/assessment/start", map[string]any{
		"age": 30, "gender": "unknown", "profession": "Teacher",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad gender, got %d", w.Code)
	}
}

func TestSubmitResponses_ValidationMessageSurfaces(t *testing.T) {
	r := newTestRouter()

	_, resp := doJSON(t, r, http.MethodPost, "/assessment/start", map[string]any{
		"age": 35, "gender": "male", "profession": "Manager",
	})
	sessionID := resp.Data.(map[string]any)["session_id"].(string)

	answers := longAnswers()
	answers[2] = "too short"
	w, errResp := doJSON(t, r, http.MethodPost, "/assessment/"+sessionID+"/respond", map[string]any{
		"answers": answers,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(errResp.Message, "Answer 3 is too short") {
		t.Fatalf("expected indexed validation message, got %q", errResp.Message)
	}
}

func TestGetResult_MissingAndIncomplete(t *testing.T) {
	r := newTestRouter()

	w, _ := doJSON(t, r, http.MethodGet, "/assessment/does-not-exist/result", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", w.Code)
	}

	_, resp := doJSON(t, r, http.MethodPost, "/assessment/start", map[string]any{
		"age": 35, "gender": "male", "profession": "Manager",
	})
	sessionID := resp.Data.(map[string]any)["session_id"].(string)

	w, _ = doJSON(t, r, http.MethodGet, "/assessment/"+sessionID+"/result", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for incomplete assessment, got %d", w.Code)
	}
}

func TestAbandonAssessment_RemovesSession(t *testing.T) {
	r := newTestRouter()

	_, resp := doJSON(t, r, http.MethodPost, "/assessment/start", map[string]any{
		"age": 35, "gender": "male", "profession": "Manager",
	})
	sessionID := resp.Data.(map[string]any)["session_id"].(string)

	w, _ := doJSON(t, r, http.MethodDelete, "/assessment/"+sessionID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("abandon returned %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/assessment/"+sessionID+"/result", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after abandon, got %d", w.Code)
	}
}

func TestTraceIDPropagation(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/assessment/start", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Trace-ID", "trace-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Trace-ID") != "trace-123" {
		t.Fatalf("inbound trace id should be echoed, got %q", w.Header().Get("X-Trace-ID"))
	}
	var resp utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.TraceID != "trace-123" {
		t.Fatalf("response should carry the trace id, got %q", resp.TraceID)
	}
}
