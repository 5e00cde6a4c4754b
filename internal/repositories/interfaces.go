// Package repositories provides the read-only catalog sources. The quiz
// catalog is externally supplied and immutable for the life of the process;
// a repository is consulted once at startup and the loaded catalog is shared
// across all sessions.
package repositories

import (
	"context"
	"errors"

	"github.com/loop-labs/quiz-service/internal/models"
)

// ErrCatalogEmpty is returned when a source yields no questions.
var ErrCatalogEmpty = errors.New("catalog source contains no questions")

// CatalogRepository loads the full question set in catalog order.
type CatalogRepository interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
}

// IsEmptyCatalogError reports whether err represents an empty source.
func IsEmptyCatalogError(err error) bool {
	return errors.Is(err, ErrCatalogEmpty)
}
