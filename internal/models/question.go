package models

// QuestionType discriminates the grading variant of a question.
type QuestionType string

const (
	QuestionRadio    QuestionType = "radio"
	QuestionCheckbox QuestionType = "checkbox"
	QuestionText     QuestionType = "text"
)

// Question is a catalog entry. The correct* fields are the answer key and
// must never reach clients; Public strips them.
type Question struct {
	ID      string       `json:"id" validate:"required"`
	Type    QuestionType `json:"type" validate:"required,question_type"`
	Prompt  string       `json:"question" validate:"required"`
	Choices []string     `json:"choices,omitempty"`

	CorrectIndex   *int   `json:"correctIndex,omitempty"`
	CorrectIndexes []int  `json:"correctIndexes,omitempty"`
	CorrectText    string `json:"correctText,omitempty"`
}

// HasChoices reports whether the question carries an option list that can
// be reordered.
func (q Question) HasChoices() bool {
	return len(q.Choices) > 0
}

// Public returns a copy with the answer key removed. Choices are deep
// copied so callers can hand the result out without aliasing the catalog.
func (q Question) Public() Question {
	public := Question{
		ID:     q.ID,
		Type:   q.Type,
		Prompt: q.Prompt,
	}
	if q.Choices != nil {
		public.Choices = make([]string, len(q.Choices))
		copy(public.Choices, q.Choices)
	}
	return public
}

// NewRadioQuestion builds a single-choice question keyed by one index.
func NewRadioQuestion(id, prompt string, choices []string, correctIndex int) Question {
	idx := correctIndex
	return Question{
		ID:           id,
		Type:         QuestionRadio,
		Prompt:       prompt,
		Choices:      choices,
		CorrectIndex: &idx,
	}
}

// NewCheckboxQuestion builds a multi-choice question keyed by an index set.
func NewCheckboxQuestion(id, prompt string, choices []string, correctIndexes []int) Question {
	return Question{
		ID:             id,
		Type:           QuestionCheckbox,
		Prompt:         prompt,
		Choices:        choices,
		CorrectIndexes: correctIndexes,
	}
}

// NewTextQuestion builds a free-text question keyed by its expected answer.
func NewTextQuestion(id, prompt, correctText string) Question {
	return Question{
		ID:          id,
		Type:        QuestionText,
		Prompt:      prompt,
		CorrectText: correctText,
	}
}
