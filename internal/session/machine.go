// Package session implements the client-resident quiz lifecycle: a pure
// reducer over discrete events plus a controller that owns the countdown
// timer and the two network calls. The reducer mirrors the server's view of
// a quiz attempt but holds all of its state locally; the server stays
// stateless.
package session

import "github.com/loop-labs/quiz-service/internal/models"

// Status is the top-level lifecycle state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusLoading    Status = "loading"
	StatusActive     Status = "active"
	StatusSubmitting Status = "submitting"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// DefaultDuration is the quiz time budget in seconds.
const DefaultDuration = 60

// State is the full client-side quiz state. It is a value: the reducer
// returns a new State and never mutates its input, so snapshots handed to a
// display layer stay stable.
type State struct {
	Status        Status
	Questions     []models.Question
	CurrentIndex  int
	Answers       map[string]models.Answer
	TimeRemaining int
	Score         *int
	Total         *int
	Results       []models.QuestionResult
	Err           string
}

// NewState returns the idle initial state.
func NewState() State {
	return State{
		Status:        StatusIdle,
		Answers:       map[string]models.Answer{},
		TimeRemaining: DefaultDuration,
	}
}

// Event is a discrete input to the reducer.
type Event interface{ isEvent() }

type (
	// Started begins loading questions. Valid from idle, and from error as
	// the retry path.
	Started struct{}

	// QuestionsLoaded completes the fetch and activates the quiz.
	QuestionsLoaded struct{ Questions []models.Question }

	// LoadFailed aborts the fetch.
	LoadFailed struct{ Message string }

	// AnswerSet upserts the answer for one question; last value wins.
	AnswerSet struct{ Answer models.Answer }

	// Next and Previous move the current index, clamped to the question
	// range; moving past a boundary is a no-op.
	Next     struct{}
	Previous struct{}

	// GoTo jumps to an index, clamped like Next/Previous.
	GoTo struct{ Index int }

	// Tick decrements remaining time by one second, floored at zero.
	Tick struct{}

	// SubmitRequested moves an active quiz into submitting.
	SubmitRequested struct{}

	// SubmitSucceeded completes the quiz with its grade.
	SubmitSucceeded struct{ Result models.GradeResult }

	// SubmitFailed aborts the submission.
	SubmitFailed struct{ Message string }

	// Reset discards everything and returns to idle.
	Reset struct{}
)

func (Started) isEvent()         {}
func (QuestionsLoaded) isEvent() {}
func (LoadFailed) isEvent()      {}
func (AnswerSet) isEvent()       {}
func (Next) isEvent()            {}
func (Previous) isEvent()        {}
func (GoTo) isEvent()            {}
func (Tick) isEvent()            {}
func (SubmitRequested) isEvent() {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}
func (Reset) isEvent()           {}

// Reduce applies one event to a state and returns the next state. Events
// that are invalid for the current status leave the state unchanged rather
// than erroring; a late tick after submission, for example, must be inert.
func Reduce(state State, event Event) State {
	switch ev := event.(type) {
	case Started:
		if state.Status != StatusIdle && state.Status != StatusError {
			return state
		}
		next := state
		next.Status = StatusLoading
		next.Err = ""
		return next

	case QuestionsLoaded:
		if state.Status != StatusLoading {
			return state
		}
		next := state
		next.Status = StatusActive
		next.Questions = ev.Questions
		next.CurrentIndex = 0
		next.Answers = map[string]models.Answer{}
		next.TimeRemaining = DefaultDuration
		next.Err = ""
		return next

	case LoadFailed:
		if state.Status != StatusLoading {
			return state
		}
		next := state
		next.Status = StatusError
		next.Err = ev.Message
		return next

	case AnswerSet:
		if state.Status != StatusActive {
			return state
		}
		next := state
		next.Answers = make(map[string]models.Answer, len(state.Answers)+1)
		for id, a := range state.Answers {
			next.Answers[id] = a
		}
		next.Answers[ev.Answer.ID] = ev.Answer
		return next

	case Next:
		return moveTo(state, state.CurrentIndex+1)

	case Previous:
		return moveTo(state, state.CurrentIndex-1)

	case GoTo:
		return moveTo(state, ev.Index)

	case Tick:
		if state.Status != StatusActive || state.TimeRemaining == 0 {
			return state
		}
		next := state
		next.TimeRemaining--
		return next

	case SubmitRequested:
		if state.Status != StatusActive {
			return state
		}
		next := state
		next.Status = StatusSubmitting
		return next

	case SubmitSucceeded:
		if state.Status != StatusSubmitting {
			return state
		}
		next := state
		next.Status = StatusCompleted
		next.Score = &ev.Result.Score
		next.Total = &ev.Result.Total
		next.Results = ev.Result.Results
		return next

	case SubmitFailed:
		if state.Status != StatusSubmitting {
			return state
		}
		next := state
		next.Status = StatusError
		next.Err = ev.Message
		return next

	case Reset:
		return NewState()

	default:
		return state
	}
}

func moveTo(state State, index int) State {
	if state.Status != StatusActive || len(state.Questions) == 0 {
		return state
	}
	if index < 0 {
		index = 0
	}
	if last := len(state.Questions) - 1; index > last {
		index = last
	}
	next := state
	next.CurrentIndex = index
	return next
}
