package services

import (
	"context"
	"errors"
	"time"

	"github.com/loop-labs/quiz-service/internal/cache"
	"github.com/loop-labs/quiz-service/internal/catalog"
	"github.com/loop-labs/quiz-service/internal/events"
	"github.com/loop-labs/quiz-service/internal/models"
	"github.com/loop-labs/quiz-service/internal/utils"
)

// QuizService serves the public (answer-redacted) question set.
type QuizService interface {
	// GetQuestions returns the public projection for a session. With
	// shuffle disabled or an empty sessionID it returns catalog order.
	GetQuestions(ctx context.Context, sessionID string, shuffle bool) ([]models.Question, error)

	// CatalogSize returns the number of questions, used to bound the
	// answer collection at the request boundary.
	CatalogSize() int

	// Catalog returns the unprojected catalog, answers included, for
	// operator-facing export.
	Catalog() []models.Question
}

type quizService struct {
	catalog   *catalog.Catalog
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    utils.Logger
	cacheTTL  time.Duration
}

func NewQuizService(cat *catalog.Catalog, cacheService cache.CacheService, publisher events.EventPublisher, logger utils.Logger, cacheTTL time.Duration) QuizService {
	return &quizService{
		catalog:   cat,
		cache:     cacheService,
		publisher: publisher,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

func (s *quizService) CatalogSize() int {
	return s.catalog.Len()
}

func (s *quizService) Catalog() []models.Question {
	return s.catalog.Questions()
}

func (s *quizService) GetQuestions(ctx context.Context, sessionID string, shuffle bool) ([]models.Question, error) {
	identifier := ""
	if shuffle && sessionID != "" {
		identifier = sessionID
	}

	questions := s.projectPublic(ctx, identifier)

	s.logger.InfoContext(ctx, "Serving quiz questions",
		"session_id", identifier,
		"shuffled", identifier != "",
		"count", len(questions))

	if err := s.publisher.PublishQuizEvent(ctx, events.EventQuizServed, events.QuizServedEvent{
		SessionID:     identifier,
		Shuffled:      identifier != "",
		QuestionCount: len(questions),
	}); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish served event", "error", err)
	}

	return questions, nil
}

// projectPublic consults the cache first. The cache only ever shortcuts a
// recomputation: the projection is deterministic, so a stale or missing
// entry can never change what a session sees.
func (s *quizService) projectPublic(ctx context.Context, identifier string) []models.Question {
	if identifier == "" {
		return s.catalog.ProjectPublic("")
	}

	key := "quiz:projection:" + identifier

	var cached []models.Question
	err := s.cache.Get(ctx, key, &cached)
	if err == nil && len(cached) == s.catalog.Len() {
		return cached
	}
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.WarnContext(ctx, "Projection cache read failed", "error", err)
	}

	questions := s.catalog.ProjectPublic(identifier)
	if err := s.cache.Set(ctx, key, questions, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "Projection cache write failed", "error", err)
	}
	return questions
}
