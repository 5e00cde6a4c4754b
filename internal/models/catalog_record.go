package models

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// QuestionRecord is the database shape of a catalog entry when the catalog
// is served from Postgres. The catalog is read-only at runtime; records
// exist so an operator can author questions with ordinary tooling.
type QuestionRecord struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	QuestionID  string         `gorm:"column:question_id;uniqueIndex;not null" json:"question_id"`
	Type        QuestionType   `gorm:"column:type;not null" json:"type"`
	Prompt      string         `gorm:"column:prompt;not null" json:"prompt"`
	Choices     datatypes.JSON `gorm:"column:choices" json:"choices,omitempty"`
	CorrectData datatypes.JSON `gorm:"column:correct_data;not null" json:"-"`
	Position    int            `gorm:"column:position;not null" json:"position"`
}

func (QuestionRecord) TableName() string {
	return "quiz_questions"
}

// correctPayload is the shape stored in the correct_data column.
type correctPayload struct {
	CorrectIndex   *int   `json:"correctIndex,omitempty"`
	CorrectIndexes []int  `json:"correctIndexes,omitempty"`
	CorrectText    string `json:"correctText,omitempty"`
}

// ToQuestion converts a stored record into a catalog question.
func (r *QuestionRecord) ToQuestion() (Question, error) {
	q := Question{
		ID:     r.QuestionID,
		Type:   r.Type,
		Prompt: r.Prompt,
	}

	if len(r.Choices) > 0 {
		if err := json.Unmarshal(r.Choices, &q.Choices); err != nil {
			return Question{}, fmt.Errorf("question %s: invalid choices column: %w", r.QuestionID, err)
		}
	}

	var payload correctPayload
	if err := json.Unmarshal(r.CorrectData, &payload); err != nil {
		return Question{}, fmt.Errorf("question %s: invalid correct_data column: %w", r.QuestionID, err)
	}
	q.CorrectIndex = payload.CorrectIndex
	q.CorrectIndexes = payload.CorrectIndexes
	q.CorrectText = payload.CorrectText

	return q, nil
}

// NewQuestionRecord converts a catalog question into its stored shape,
// keeping position so catalog order survives the round trip.
func NewQuestionRecord(q Question, position int) (*QuestionRecord, error) {
	record := &QuestionRecord{
		QuestionID: q.ID,
		Type:       q.Type,
		Prompt:     q.Prompt,
		Position:   position,
	}

	if q.Choices != nil {
		choices, err := json.Marshal(q.Choices)
		if err != nil {
			return nil, fmt.Errorf("question %s: marshal choices: %w", q.ID, err)
		}
		record.Choices = choices
	}

	payload, err := json.Marshal(correctPayload{
		CorrectIndex:   q.CorrectIndex,
		CorrectIndexes: q.CorrectIndexes,
		CorrectText:    q.CorrectText,
	})
	if err != nil {
		return nil, fmt.Errorf("question %s: marshal correct data: %w", q.ID, err)
	}
	record.CorrectData = payload

	return record, nil
}
