package models

import "math"

// Answer is one submitted answer, keyed by question id. Value arrives from
// JSON so it is a number for radio, an array of numbers for checkbox, or a
// string for text. TimeSpent is optional client-side metadata in
// milliseconds, echoed back in the matching result.
type Answer struct {
	ID        string `json:"id"`
	Value     any    `json:"value"`
	TimeSpent *int64 `json:"timeSpent,omitempty"`
}

// QuestionResult is the verdict for a single question.
type QuestionResult struct {
	ID            string `json:"id"`
	Correct       bool   `json:"correct"`
	TimeSpent     *int64 `json:"timeSpent,omitempty"`
	UserAnswer    any    `json:"userAnswer,omitempty"`
	CorrectAnswer any    `json:"correctAnswer,omitempty"`
}

// GradeResult aggregates per-question verdicts. Total counts every question
// graded, independent of how many were answered.
type GradeResult struct {
	Score   int              `json:"score"`
	Total   int              `json:"total"`
	Results []QuestionResult `json:"results"`
}

// AsIndex coerces a submitted value to a choice index. JSON numbers decode
// to float64, so integral floats are accepted; anything fractional or
// non-numeric is not an index.
func AsIndex(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// AsIndexSet coerces a submitted value to a set of choice indices. A
// non-collection value, or a collection with a non-index member, yields
// false. Duplicate members collapse, matching set semantics.
func AsIndexSet(value any) (map[int]struct{}, bool) {
	var raw []any
	switch v := value.(type) {
	case []any:
		raw = v
	case []int:
		set := make(map[int]struct{}, len(v))
		for _, idx := range v {
			set[idx] = struct{}{}
		}
		return set, true
	default:
		return nil, false
	}

	set := make(map[int]struct{}, len(raw))
	for _, member := range raw {
		idx, ok := AsIndex(member)
		if !ok {
			return nil, false
		}
		set[idx] = struct{}{}
	}
	return set, true
}

// AsText coerces a submitted value to free text.
func AsText(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}
