package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loop-labs/quiz-service/internal/models"
	"github.com/loop-labs/quiz-service/internal/services"
	"github.com/loop-labs/quiz-service/internal/utils"
)

type GradingHandler struct {
	BaseHandler
	gradingService services.GradingService
	quizService    services.QuizService
	validator      *utils.Validator
}

// AnswerInput is one submitted answer entry. Value carries no validation
// tag: zero is a legitimate choice index, and a malformed value grades as
// incorrect rather than failing the whole submission.
type AnswerInput struct {
	ID        string `json:"id" validate:"required"`
	Value     any    `json:"value"`
	TimeSpent *int64 `json:"timeSpent"`
}

// GradeRequest is the grade endpoint payload. The answer collection may be
// empty (a timeout with nothing answered still grades to zero); its upper
// bound is the catalog length, checked in the handler since the bound is
// not a compile-time constant.
type GradeRequest struct {
	Answers   []AnswerInput `json:"answers" validate:"dive"`
	SessionID string        `json:"session_id" validate:"omitempty,session_id"`
}

func NewGradingHandler(
	gradingService services.GradingService,
	quizService services.QuizService,
	validator *utils.Validator,
	logger utils.Logger,
) *GradingHandler {
	return &GradingHandler{
		BaseHandler:    NewBaseHandler(logger),
		gradingService: gradingService,
		quizService:    quizService,
		validator:      validator,
	}
}

// GradeQuiz grades a submission
// @Summary Grade quiz answers
// @Description Grades the submitted answers; with a session_id the server re-derives the same projection served for that session so indices line up
// @Tags grading
// @Accept json
// @Produce json
// @Param submission body GradeRequest true "Submitted answers"
// @Success 200 {object} models.GradeResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/grade [post]
func (h *GradingHandler) GradeQuiz(c *gin.Context) {
	var req GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
		return
	}

	if len(req.Answers) > h.quizService.CatalogSize() {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: services.ErrTooManyAnswers.Error(),
		})
		return
	}

	h.LogRequest(c, "Grading submission",
		"session_id", req.SessionID,
		"answers", len(req.Answers))

	answers := make([]models.Answer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = models.Answer{ID: a.ID, Value: a.Value, TimeSpent: a.TimeSpent}
	}

	result, err := h.gradingService.GradeSubmission(c.Request.Context(), req.SessionID, answers)
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to grade quiz", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
