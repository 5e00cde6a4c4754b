package events

import "time"

// EventType represents different types of quiz lifecycle events
type EventType string

const (
	// EventQuizServed fires when a projected question set is handed out.
	EventQuizServed EventType = "quiz.served"
	// EventQuizGraded fires after a submission has been graded.
	EventQuizGraded EventType = "quiz.graded"
)

// QuizEvent is the base event structure published to the events topic.
type QuizEvent struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Data      interface{} `json:"data"`
}

// QuizServedEvent carries no answer material, only serving metadata.
type QuizServedEvent struct {
	SessionID     string `json:"session_id,omitempty"`
	Shuffled      bool   `json:"shuffled"`
	QuestionCount int    `json:"question_count"`
}

// QuizGradedEvent summarizes a graded submission. Per-question verdicts stay
// out of the event on purpose: events feed analytics, not review.
type QuizGradedEvent struct {
	SessionID     string `json:"session_id,omitempty"`
	Score         int    `json:"score"`
	Total         int    `json:"total"`
	AnsweredCount int    `json:"answered_count"`
}
