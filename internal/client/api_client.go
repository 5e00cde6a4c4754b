// Package client implements the session controller's API port against the
// quiz service's HTTP endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/loop-labs/quiz-service/internal/models"
)

// QuizClient talks to the question-serving and grading endpoints. The same
// session identifier is carried on both calls so the server re-derives the
// identical projection for each.
type QuizClient struct {
	baseURL    string
	httpClient *http.Client
}

type quizResponse struct {
	Questions []models.Question `json:"questions"`
}

type gradeRequest struct {
	Answers   []models.Answer `json:"answers"`
	SessionID string          `json:"session_id,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func NewQuizClient(baseURL string) *QuizClient {
	return &QuizClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchQuestions retrieves the public question set, shuffled for the
// session when sessionID is non-empty.
func (c *QuizClient) FetchQuestions(ctx context.Context, sessionID string) ([]models.Question, error) {
	endpoint := c.baseURL + "/api/quiz"
	if sessionID != "" {
		query := url.Values{}
		query.Set("shuffle", "true")
		query.Set("session_id", sessionID)
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quiz request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quiz: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFrom(resp, "fetch quiz")
	}

	var body quizResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode quiz response: %w", err)
	}
	return body.Questions, nil
}

// SubmitAnswers sends the accumulated answers for grading.
func (c *QuizClient) SubmitAnswers(ctx context.Context, sessionID string, answers []models.Answer) (*models.GradeResult, error) {
	if answers == nil {
		answers = []models.Answer{}
	}
	payload, err := json.Marshal(gradeRequest{Answers: answers, SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/grade", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build grade request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit quiz: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFrom(resp, "submit quiz")
	}

	var result models.GradeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode grade response: %w", err)
	}
	return &result, nil
}

func (c *QuizClient) errorFrom(resp *http.Response, action string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("failed to %s: %s (%s)", action, payload.Message, resp.Status)
	}
	return fmt.Errorf("failed to %s: %s", action, resp.Status)
}
