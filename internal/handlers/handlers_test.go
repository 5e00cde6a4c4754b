package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/loop-labs/quiz-service/internal/cache"
	"github.com/loop-labs/quiz-service/internal/catalog"
	"github.com/loop-labs/quiz-service/internal/events"
	"github.com/loop-labs/quiz-service/internal/models"
	"github.com/loop-labs/quiz-service/internal/services"
	"github.com/loop-labs/quiz-service/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *catalog.Catalog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.Default()
	logger := utils.NewSlogLogger(slog.Default())
	publisher := events.NewMockEventPublisher(slog.Default())

	quizService := services.NewQuizService(cat, cache.NewNoopCache(), publisher, logger, time.Minute)
	gradingService := services.NewGradingService(cat, publisher, logger)
	importExportService := services.NewImportExportService(logger)

	router := gin.New()
	NewHandlerManager(quizService, gradingService, importExportService, utils.NewValidator(), logger).
		SetupRoutes(router)
	return router, cat
}

func getQuiz(t *testing.T, router *gin.Engine, query string) QuizResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quiz"+query, nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp QuizResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func postGrade(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/grade", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGetQuizWithoutSessionReturnsCatalogOrder(t *testing.T) {
	router, cat := newTestRouter(t)

	resp := getQuiz(t, router, "")
	require.Len(t, resp.Questions, cat.Len())
	for i, q := range cat.Questions() {
		assert.Equal(t, q.ID, resp.Questions[i].ID)
	}
}

func TestGetQuizRedactsAnswers(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quiz?shuffle=true&session_id=redaction-check", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.NotContains(t, body, "correctIndex")
	assert.NotContains(t, body, "correctIndexes")
	assert.NotContains(t, body, "correctText")
}

func TestGetQuizDeterministicPerSession(t *testing.T) {
	router, _ := newTestRouter(t)

	first := getQuiz(t, router, "?shuffle=true&session_id=repeatable")
	second := getQuiz(t, router, "?shuffle=true&session_id=repeatable")
	assert.Equal(t, first, second)
}

func TestGradeRoundTripAgainstServedProjection(t *testing.T) {
	router, cat := newTestRouter(t)
	const sessionID = "http-roundtrip"

	served := getQuiz(t, router, "?shuffle=true&session_id="+sessionID)

	// Answer using indices into the served (public) choice order; the
	// grading endpoint must line them up with its own re-derived view.
	gradable := cat.Project(sessionID)
	require.Len(t, served.Questions, len(gradable))

	answers := make([]map[string]any, 0, len(gradable))
	for i, q := range gradable {
		require.Equal(t, q.ID, served.Questions[i].ID)
		var value any
		switch q.Type {
		case models.QuestionRadio:
			value = *q.CorrectIndex
		case models.QuestionCheckbox:
			value = q.CorrectIndexes
		case models.QuestionText:
			value = q.CorrectText
		}
		answers = append(answers, map[string]any{"id": q.ID, "value": value})
	}

	w := postGrade(t, router, map[string]any{"answers": answers, "session_id": sessionID})
	require.Equal(t, http.StatusOK, w.Code)

	var result models.GradeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, cat.Len(), result.Score)
	assert.Equal(t, cat.Len(), result.Total)
}

func TestGradeEmptySubmissionScoresZero(t *testing.T) {
	router, cat := newTestRouter(t)

	w := postGrade(t, router, map[string]any{"answers": []any{}})
	require.Equal(t, http.StatusOK, w.Code)

	var result models.GradeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, cat.Len(), result.Total)
}

func TestGradeRejectsMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/grade", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGradeRejectsOversizedAnswerCollection(t *testing.T) {
	router, cat := newTestRouter(t)

	answers := make([]map[string]any, cat.Len()+1)
	for i := range answers {
		answers[i] = map[string]any{"id": fmt.Sprintf("q%d", i), "value": 0}
	}

	w := postGrade(t, router, map[string]any{"answers": answers})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
