package postgres

import (
	"context"
	"fmt"

	"github.com/loop-labs/quiz-service/internal/models"
	"github.com/loop-labs/quiz-service/internal/repositories"
	"gorm.io/gorm"
)

// catalogRepository serves the question catalog from the quiz_questions
// table. The table is authored out-of-band; this repository only reads.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a Postgres-backed catalog source.
func NewCatalogRepository(db *gorm.DB) repositories.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var records []models.QuestionRecord
	if err := r.db.WithContext(ctx).
		Order("position ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load question records: %w", err)
	}

	if len(records) == 0 {
		return nil, repositories.ErrCatalogEmpty
	}

	questions := make([]models.Question, len(records))
	for i, record := range records {
		q, err := record.ToQuestion()
		if err != nil {
			return nil, err
		}
		questions[i] = q
	}

	return questions, nil
}

// Migrate creates the quiz_questions table. Intended for operator tooling
// and tests, not the serving path.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.QuestionRecord{})
}
