package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/loop-labs/quiz-service/internal/models"
)

// fileCatalogRepository reads the catalog from a JSON file containing an
// array of questions in catalog order.
type fileCatalogRepository struct {
	path string
}

// NewFileCatalogRepository creates a catalog source backed by a JSON file.
func NewFileCatalogRepository(path string) CatalogRepository {
	return &fileCatalogRepository{path: path}
}

func (r *fileCatalogRepository) ListQuestions(ctx context.Context) ([]models.Question, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", r.path, err)
	}

	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", r.path, err)
	}

	if len(questions) == 0 {
		return nil, ErrCatalogEmpty
	}

	return questions, nil
}
