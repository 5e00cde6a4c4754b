package session

import (
	"testing"

	"github.com/loop-labs/quiz-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionsFixture() []models.Question {
	return []models.Question{
		{ID: "q1", Type: models.QuestionRadio, Prompt: "?", Choices: []string{"a", "b"}},
		{ID: "q2", Type: models.QuestionText, Prompt: "?"},
		{ID: "q3", Type: models.QuestionCheckbox, Prompt: "?", Choices: []string{"a", "b", "c"}},
	}
}

func activeState() State {
	state := Reduce(NewState(), Started{})
	return Reduce(state, QuestionsLoaded{Questions: questionsFixture()})
}

func TestStartTransitionsToLoading(t *testing.T) {
	state := Reduce(NewState(), Started{})
	assert.Equal(t, StatusLoading, state.Status)
}

func TestStartFromErrorRetries(t *testing.T) {
	state := Reduce(NewState(), Started{})
	state = Reduce(state, LoadFailed{Message: "network down"})
	require.Equal(t, StatusError, state.Status)
	require.Equal(t, "network down", state.Err)

	state = Reduce(state, Started{})
	assert.Equal(t, StatusLoading, state.Status)
	assert.Empty(t, state.Err)
}

func TestLoadSuccessActivatesWithFreshState(t *testing.T) {
	state := activeState()

	assert.Equal(t, StatusActive, state.Status)
	assert.Equal(t, 0, state.CurrentIndex)
	assert.Empty(t, state.Answers)
	assert.Equal(t, DefaultDuration, state.TimeRemaining)
}

func TestAnswerUpsertLastWins(t *testing.T) {
	state := activeState()

	state = Reduce(state, AnswerSet{Answer: models.Answer{ID: "q1", Value: 0}})
	state = Reduce(state, AnswerSet{Answer: models.Answer{ID: "q1", Value: 1}})
	state = Reduce(state, AnswerSet{Answer: models.Answer{ID: "q2", Value: "css"}})

	require.Len(t, state.Answers, 2)
	assert.Equal(t, 1, state.Answers["q1"].Value)
}

func TestAnswerIgnoredOutsideActive(t *testing.T) {
	state := Reduce(NewState(), AnswerSet{Answer: models.Answer{ID: "q1", Value: 1}})
	assert.Empty(t, state.Answers)
}

func TestAnswerDoesNotMutatePriorSnapshot(t *testing.T) {
	before := activeState()
	after := Reduce(before, AnswerSet{Answer: models.Answer{ID: "q1", Value: 1}})

	assert.Empty(t, before.Answers, "reducer mutated the input state")
	assert.Len(t, after.Answers, 1)
}

func TestNavigationClampsToBounds(t *testing.T) {
	state := activeState()

	state = Reduce(state, Previous{})
	assert.Equal(t, 0, state.CurrentIndex, "previous at first question should clamp")

	state = Reduce(state, Next{})
	state = Reduce(state, Next{})
	state = Reduce(state, Next{})
	assert.Equal(t, 2, state.CurrentIndex, "next past last question should clamp")

	state = Reduce(state, GoTo{Index: -5})
	assert.Equal(t, 0, state.CurrentIndex)
	state = Reduce(state, GoTo{Index: 99})
	assert.Equal(t, 2, state.CurrentIndex)
}

func TestTickFloorsAtZero(t *testing.T) {
	state := activeState()

	for i := 0; i < DefaultDuration+10; i++ {
		state = Reduce(state, Tick{})
	}
	assert.Equal(t, 0, state.TimeRemaining)
	assert.Equal(t, StatusActive, state.Status)
}

func TestTickIgnoredAfterLeavingActive(t *testing.T) {
	state := activeState()
	state = Reduce(state, SubmitRequested{})
	require.Equal(t, StatusSubmitting, state.Status)

	before := state.TimeRemaining
	state = Reduce(state, Tick{})
	assert.Equal(t, before, state.TimeRemaining)
	assert.Equal(t, StatusSubmitting, state.Status)
}

func TestSubmitLifecycle(t *testing.T) {
	state := activeState()

	state = Reduce(state, SubmitRequested{})
	require.Equal(t, StatusSubmitting, state.Status)

	// A second submit request must not disturb an in-flight submission.
	assert.Equal(t, state, Reduce(state, SubmitRequested{}))

	result := models.GradeResult{Score: 2, Total: 3, Results: []models.QuestionResult{
		{ID: "q1", Correct: true}, {ID: "q2", Correct: true}, {ID: "q3", Correct: false},
	}}
	state = Reduce(state, SubmitSucceeded{Result: result})

	require.Equal(t, StatusCompleted, state.Status)
	require.NotNil(t, state.Score)
	assert.Equal(t, 2, *state.Score)
	assert.Equal(t, 3, *state.Total)
	assert.Len(t, state.Results, 3)
}

func TestSubmitFailureIsRetryable(t *testing.T) {
	state := activeState()
	state = Reduce(state, SubmitRequested{})
	state = Reduce(state, SubmitFailed{Message: "502 upstream"})

	require.Equal(t, StatusError, state.Status)
	assert.Equal(t, "502 upstream", state.Err)

	state = Reduce(state, Started{})
	assert.Equal(t, StatusLoading, state.Status)
}

func TestResetReturnsToInitial(t *testing.T) {
	state := activeState()
	state = Reduce(state, AnswerSet{Answer: models.Answer{ID: "q1", Value: 1}})

	state = Reduce(state, Reset{})
	assert.Equal(t, NewState(), state)
}
