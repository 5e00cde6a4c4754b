// Package catalog holds the immutable question set and derives per-session
// views of it. The catalog itself is shared read-only across all sessions;
// every projection allocates fresh output, so no locking is needed anywhere
// in this package.
package catalog

import (
	"fmt"

	"github.com/loop-labs/quiz-service/internal/models"
)

// Catalog is an ordered, build-time-fixed sequence of questions.
type Catalog struct {
	questions []models.Question
}

// New validates the supplied questions and wraps them into a catalog.
func New(questions []models.Question) (*Catalog, error) {
	if err := Validate(questions); err != nil {
		return nil, err
	}
	return &Catalog{questions: questions}, nil
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Questions returns a copy of the catalog order, so callers cannot mutate
// shared state.
func (c *Catalog) Questions() []models.Question {
	out := make([]models.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Validate enforces the catalog authoring invariants: unique question ids,
// correct indices in range for the variant, and unique choice text within a
// question. Choice uniqueness matters because projections remap correct
// answers by choice value after re-shuffling; duplicate text would make the
// lookup ambiguous.
func Validate(questions []models.Question) error {
	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("catalog: question with empty id")
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("catalog: duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}

		if err := validateQuestion(q); err != nil {
			return err
		}
	}
	return nil
}

func validateQuestion(q models.Question) error {
	switch q.Type {
	case models.QuestionRadio:
		if err := validateChoices(q); err != nil {
			return err
		}
		if q.CorrectIndex == nil {
			return fmt.Errorf("catalog: question %s: radio question without correctIndex", q.ID)
		}
		if *q.CorrectIndex < 0 || *q.CorrectIndex >= len(q.Choices) {
			return fmt.Errorf("catalog: question %s: correctIndex %d out of range", q.ID, *q.CorrectIndex)
		}
	case models.QuestionCheckbox:
		if err := validateChoices(q); err != nil {
			return err
		}
		if len(q.CorrectIndexes) == 0 {
			return fmt.Errorf("catalog: question %s: checkbox question without correctIndexes", q.ID)
		}
		for _, idx := range q.CorrectIndexes {
			if idx < 0 || idx >= len(q.Choices) {
				return fmt.Errorf("catalog: question %s: correct index %d out of range", q.ID, idx)
			}
		}
	case models.QuestionText:
		if q.CorrectText == "" {
			return fmt.Errorf("catalog: question %s: text question without correctText", q.ID)
		}
	default:
		return fmt.Errorf("catalog: question %s: unknown type %q", q.ID, q.Type)
	}
	return nil
}

func validateChoices(q models.Question) error {
	if len(q.Choices) < 2 {
		return fmt.Errorf("catalog: question %s: needs at least 2 choices", q.ID)
	}
	seen := make(map[string]struct{}, len(q.Choices))
	for _, choice := range q.Choices {
		if _, dup := seen[choice]; dup {
			return fmt.Errorf("catalog: question %s: duplicate choice text %q", q.ID, choice)
		}
		seen[choice] = struct{}{}
	}
	return nil
}
