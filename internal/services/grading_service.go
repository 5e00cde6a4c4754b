package services

import (
	"context"
	"strings"

	"github.com/loop-labs/quiz-service/internal/catalog"
	"github.com/loop-labs/quiz-service/internal/events"
	"github.com/loop-labs/quiz-service/internal/models"
	"github.com/loop-labs/quiz-service/internal/utils"
)

// GradingService grades submitted answers against the gradable projection
// for the submitting session.
type GradingService interface {
	// GradeSubmission re-derives the gradable projection for sessionID (or
	// uses catalog order when sessionID is empty) and grades answers
	// against it.
	GradeSubmission(ctx context.Context, sessionID string, answers []models.Answer) (*models.GradeResult, error)
}

type gradingService struct {
	catalog   *catalog.Catalog
	publisher events.EventPublisher
	logger    utils.Logger
}

func NewGradingService(cat *catalog.Catalog, publisher events.EventPublisher, logger utils.Logger) GradingService {
	return &gradingService{
		catalog:   cat,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *gradingService) GradeSubmission(ctx context.Context, sessionID string, answers []models.Answer) (*models.GradeResult, error) {
	// The projection here must be bit-identical to the one the question
	// endpoint served for this session; both derive it from the identifier
	// alone, so no per-session state is consulted.
	questions := s.catalog.Project(sessionID)
	result := Grade(questions, answers)

	s.logger.InfoContext(ctx, "Graded submission",
		"session_id", sessionID,
		"score", result.Score,
		"total", result.Total,
		"answered", len(answers))

	if err := s.publisher.PublishQuizEvent(ctx, events.EventQuizGraded, events.QuizGradedEvent{
		SessionID:     sessionID,
		Score:         result.Score,
		Total:         result.Total,
		AnsweredCount: len(answers),
	}); err != nil {
		// Event delivery is best-effort; grading already succeeded.
		s.logger.ErrorContext(ctx, "Failed to publish graded event", "error", err)
	}

	return &result, nil
}

// Grade compares answers against a gradable question sequence. It is a pure
// function: every question in the sequence yields exactly one result,
// answers for unknown ids are dropped, and duplicate answers for one id
// resolve last-write-wins because the map is built before grading.
func Grade(questions []models.Question, answers []models.Answer) models.GradeResult {
	answerMap := make(map[string]models.Answer, len(answers))
	for _, a := range answers {
		answerMap[a.ID] = a
	}

	result := models.GradeResult{
		Total:   len(questions),
		Results: make([]models.QuestionResult, 0, len(questions)),
	}

	for _, q := range questions {
		qr := models.QuestionResult{ID: q.ID, CorrectAnswer: correctAnswerOf(q)}

		if answer, ok := answerMap[q.ID]; ok {
			qr.Correct = gradeQuestion(q, answer.Value)
			qr.UserAnswer = answer.Value
			qr.TimeSpent = answer.TimeSpent
		}

		if qr.Correct {
			result.Score++
		}
		result.Results = append(result.Results, qr)
	}

	return result
}

// gradeQuestion applies the per-variant rule. A malformed value is simply
// incorrect, never an error: a partially-completed quiz must grade cleanly.
func gradeQuestion(q models.Question, value any) bool {
	switch q.Type {
	case models.QuestionRadio:
		idx, ok := models.AsIndex(value)
		return ok && q.CorrectIndex != nil && idx == *q.CorrectIndex

	case models.QuestionCheckbox:
		submitted, ok := models.AsIndexSet(value)
		if !ok {
			return false
		}
		// Set semantics on both sides: duplicate members in the answer key
		// collapse the same way duplicate submitted members do.
		correct := make(map[int]struct{}, len(q.CorrectIndexes))
		for _, idx := range q.CorrectIndexes {
			correct[idx] = struct{}{}
		}
		if len(submitted) != len(correct) {
			return false
		}
		for idx := range correct {
			if _, present := submitted[idx]; !present {
				return false
			}
		}
		return true

	case models.QuestionText:
		text, ok := models.AsText(value)
		return ok && normalizeText(text) == normalizeText(q.CorrectText)

	default:
		return false
	}
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func correctAnswerOf(q models.Question) any {
	switch q.Type {
	case models.QuestionRadio:
		if q.CorrectIndex != nil {
			return *q.CorrectIndex
		}
		return nil
	case models.QuestionCheckbox:
		return q.CorrectIndexes
	case models.QuestionText:
		return q.CorrectText
	default:
		return nil
	}
}
