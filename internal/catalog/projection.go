package catalog

import (
	"github.com/loop-labs/quiz-service/internal/models"
	"github.com/loop-labs/quiz-service/internal/shuffle"
)

// Project derives the gradable view of the catalog for a session: question
// order is shuffled by the seed of the identifier, each question's choices
// are shuffled by the seed of identifier+question id, and correct indices
// are remapped to follow their choice values into the new order. The serve
// and grade code paths both call this with the same identifier and obtain
// the identical ordering, which is what lets the server stay stateless.
//
// An empty identifier is the identity projection: catalog order, choices
// untouched.
func (c *Catalog) Project(identifier string) []models.Question {
	if identifier == "" {
		return c.Questions()
	}

	projected := shuffle.Shuffle(c.questions, shuffle.DeriveSeed(identifier))
	for i, q := range projected {
		if !q.HasChoices() {
			continue
		}
		projected[i] = reshuffleChoices(q, shuffle.DeriveSeed(identifier+q.ID))
	}
	return projected
}

// ProjectPublic derives the answer-redacted view with the same ordering as
// Project. The two views differ only by field redaction, never by shuffle
// outcome.
func (c *Catalog) ProjectPublic(identifier string) []models.Question {
	projected := c.Project(identifier)
	public := make([]models.Question, len(projected))
	for i, q := range projected {
		public[i] = q.Public()
	}
	return public
}

// reshuffleChoices permutes a question's choices and remaps the correct
// indices by locating each originally-correct choice value in the new
// order. Remapping by value is safe because catalog validation rejects
// duplicate choice text within a question.
func reshuffleChoices(q models.Question, seed uint32) models.Question {
	shuffled := shuffle.Shuffle(q.Choices, seed)

	position := make(map[string]int, len(shuffled))
	for i, choice := range shuffled {
		position[choice] = i
	}

	out := q
	out.Choices = shuffled

	switch q.Type {
	case models.QuestionRadio:
		if q.CorrectIndex != nil {
			remapped := position[q.Choices[*q.CorrectIndex]]
			out.CorrectIndex = &remapped
		}
	case models.QuestionCheckbox:
		remapped := make([]int, len(q.CorrectIndexes))
		for i, idx := range q.CorrectIndexes {
			remapped[i] = position[q.Choices[idx]]
		}
		out.CorrectIndexes = remapped
	}

	return out
}
