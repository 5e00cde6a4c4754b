package session

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/loop-labs/quiz-service/internal/models"
	"github.com/loop-labs/quiz-service/internal/utils"
)

// API is the controller's view of the two quiz endpoints. Both calls are
// issued once per attempt; retries are the caller's concern via Start.
type API interface {
	FetchQuestions(ctx context.Context, sessionID string) ([]models.Question, error)
	SubmitAnswers(ctx context.Context, sessionID string, answers []models.Answer) (*models.GradeResult, error)
}

// ControllerConfig tunes a Controller. Zero values fall back to one quiz
// attempt of the default duration with a one-second tick.
type ControllerConfig struct {
	SessionID    string
	TickInterval time.Duration
}

// Controller drives the quiz lifecycle: it serializes every event through
// the reducer, owns the countdown goroutine, and guarantees the submission
// fires at most once per attempt even when a timeout and an explicit submit
// race. Display layers pull state via Snapshot; the controller pushes
// nothing.
type Controller struct {
	mu        sync.Mutex
	state     State
	sessionID string

	api          API
	logger       utils.Logger
	tickInterval time.Duration

	stopTimer chan struct{}
}

func NewController(api API, logger utils.Logger, cfg ControllerConfig) *Controller {
	if cfg.SessionID == "" {
		cfg.SessionID = NewSessionID()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	return &Controller{
		state:        NewState(),
		sessionID:    cfg.SessionID,
		api:          api,
		logger:       logger,
		tickInterval: cfg.TickInterval,
	}
}

// NewSessionID generates an opaque per-attempt identifier. It only needs to
// be stable across the fetch and submit calls of one attempt; the server
// derives everything else from it.
func NewSessionID() string {
	return fmt.Sprintf("session-%d-%s",
		time.Now().UnixMilli(),
		strconv.FormatUint(rand.Uint64()%(1<<47), 36))
}

// SessionID returns the identifier for the current attempt.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Snapshot returns the current state. The returned value shares the answer
// map with no writer: the reducer copies on change.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start begins (or retries) an attempt: it issues the fetch and, on
// success, activates the quiz and starts the countdown.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	before := c.state.Status
	c.state = Reduce(c.state, Started{})
	started := c.state.Status == StatusLoading && before != StatusLoading
	sessionID := c.sessionID
	c.mu.Unlock()

	if !started {
		return
	}

	go func() {
		questions, err := c.api.FetchQuestions(ctx, sessionID)

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.sessionID != sessionID {
			// Reset rotated the attempt while this fetch was in flight;
			// the completion belongs to the abandoned session.
			return
		}
		if err != nil {
			c.logger.Error("Failed to load quiz", "session_id", sessionID, "error", err)
			c.state = Reduce(c.state, LoadFailed{Message: err.Error()})
			return
		}
		c.state = Reduce(c.state, QuestionsLoaded{Questions: questions})
		if c.state.Status == StatusActive {
			c.startCountdown(ctx)
		}
	}()
}

// Answer upserts the value for a question; answering the same question
// again overwrites the previous value.
func (c *Controller) Answer(id string, value any, timeSpent *int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, AnswerSet{Answer: models.Answer{ID: id, Value: value, TimeSpent: timeSpent}})
}

// Next moves forward one question, clamped at the last.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, Next{})
}

// Previous moves back one question, clamped at the first.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, Previous{})
}

// GoTo jumps to a question index, clamped to the valid range.
func (c *Controller) GoTo(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, GoTo{Index: index})
}

// Tick advances the countdown by one second. The internal timer calls this;
// it is exported so a host without a background clock can drive time
// itself. Reaching zero submits exactly once.
func (c *Controller) Tick(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Status != StatusActive {
		return
	}
	c.state = Reduce(c.state, Tick{})
	if c.state.TimeRemaining == 0 {
		c.beginSubmit(ctx)
	}
}

// Submit sends the accumulated answers for grading. If the countdown has
// already triggered submission this is a no-op.
func (c *Controller) Submit(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.beginSubmit(ctx)
}

// Reset abandons the attempt, stops the countdown, and discards the session
// identifier so the next attempt gets a fresh shuffle.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopCountdownLocked()
	c.state = Reduce(c.state, Reset{})
	c.sessionID = NewSessionID()
}

// beginSubmit moves active → submitting and launches the grading call.
// Callers hold c.mu. The status guard is what makes submission exactly
// once: whichever of timeout or explicit submit arrives second finds the
// state no longer active and does nothing.
func (c *Controller) beginSubmit(ctx context.Context) {
	if c.state.Status != StatusActive {
		return
	}
	c.stopCountdownLocked()
	c.state = Reduce(c.state, SubmitRequested{})

	answers := make([]models.Answer, 0, len(c.state.Answers))
	for _, q := range c.state.Questions {
		if a, ok := c.state.Answers[q.ID]; ok {
			answers = append(answers, a)
		}
	}
	sessionID := c.sessionID

	go func() {
		result, err := c.api.SubmitAnswers(ctx, sessionID, answers)

		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.logger.Error("Failed to submit quiz", "session_id", sessionID, "error", err)
			c.state = Reduce(c.state, SubmitFailed{Message: err.Error()})
			return
		}
		c.state = Reduce(c.state, SubmitSucceeded{Result: *result})
	}()
}

// startCountdown launches the tick goroutine. Callers hold c.mu. Starting
// while a countdown is already running is a no-op, never a second timer.
func (c *Controller) startCountdown(ctx context.Context) {
	if c.stopTimer != nil {
		return
	}
	stop := make(chan struct{})
	c.stopTimer = stop

	go func() {
		ticker := time.NewTicker(c.tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Tick(ctx)
			}
		}
	}()
}

// stopCountdownLocked cancels the tick goroutine. Callers hold c.mu. This
// runs on every exit from active so a stray tick can never fire after
// grading has begun.
func (c *Controller) stopCountdownLocked() {
	if c.stopTimer != nil {
		close(c.stopTimer)
		c.stopTimer = nil
	}
}
