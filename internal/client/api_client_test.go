package client

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/loop-labs/quiz-service/internal/cache"
	"github.com/loop-labs/quiz-service/internal/catalog"
	"github.com/loop-labs/quiz-service/internal/events"
	"github.com/loop-labs/quiz-service/internal/handlers"
	"github.com/loop-labs/quiz-service/internal/models"
	"github.com/loop-labs/quiz-service/internal/services"
	"github.com/loop-labs/quiz-service/internal/session"
	"github.com/loop-labs/quiz-service/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *catalog.Catalog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.Default()
	logger := utils.NewSlogLogger(slog.Default())
	publisher := events.NewMockEventPublisher(slog.Default())

	router := gin.New()
	handlers.NewHandlerManager(
		services.NewQuizService(cat, cache.NewNoopCache(), publisher, logger, time.Minute),
		services.NewGradingService(cat, publisher, logger),
		services.NewImportExportService(logger),
		utils.NewValidator(),
		logger,
	).SetupRoutes(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, cat
}

func TestFetchQuestionsCarriesSession(t *testing.T) {
	server, cat := newTestServer(t)
	quizClient := NewQuizClient(server.URL)

	first, err := quizClient.FetchQuestions(context.Background(), "client-session")
	require.NoError(t, err)
	second, err := quizClient.FetchQuestions(context.Background(), "client-session")
	require.NoError(t, err)

	assert.Len(t, first, cat.Len())
	assert.Equal(t, first, second, "same session must see the same ordering")

	for _, q := range first {
		assert.Nil(t, q.CorrectIndex)
		assert.Empty(t, q.CorrectIndexes)
		assert.Empty(t, q.CorrectText)
	}
}

func TestSubmitAnswersEmptySubmission(t *testing.T) {
	server, cat := newTestServer(t)
	quizClient := NewQuizClient(server.URL)

	result, err := quizClient.SubmitAnswers(context.Background(), "client-session", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, cat.Len(), result.Total)
}

// TestSessionControllerAgainstLiveServer drives the whole client lifecycle
// against real handlers: fetch, answer from the public view, time out, and
// collect the grade computed from the re-derived projection.
func TestSessionControllerAgainstLiveServer(t *testing.T) {
	server, cat := newTestServer(t)
	quizClient := NewQuizClient(server.URL)

	c := session.NewController(quizClient, utils.NewSlogLogger(slog.Default()), session.ControllerConfig{
		SessionID:    "controller-e2e",
		TickInterval: time.Hour,
	})
	ctx := context.Background()

	c.Start(ctx)
	require.Eventually(t, func() bool {
		return c.Snapshot().Status == session.StatusActive
	}, 2*time.Second, 5*time.Millisecond)

	// Answer every question correctly, reading indices off the gradable
	// projection the server will re-derive for this identifier.
	for _, q := range cat.Project("controller-e2e") {
		switch q.Type {
		case models.QuestionRadio:
			c.Answer(q.ID, *q.CorrectIndex, nil)
		case models.QuestionCheckbox:
			c.Answer(q.ID, q.CorrectIndexes, nil)
		case models.QuestionText:
			c.Answer(q.ID, q.CorrectText, nil)
		}
		c.Next()
	}

	for i := 0; i < session.DefaultDuration; i++ {
		c.Tick(ctx)
	}

	require.Eventually(t, func() bool {
		return c.Snapshot().Status == session.StatusCompleted
	}, 2*time.Second, 5*time.Millisecond)

	state := c.Snapshot()
	require.NotNil(t, state.Score)
	assert.Equal(t, cat.Len(), *state.Score)
	assert.Equal(t, cat.Len(), *state.Total)
	assert.Len(t, state.Results, cat.Len())
}
