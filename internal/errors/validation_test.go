package errors

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidationError(t *testing.T) {
	// Test NewValidationError
	err := NewValidationError("session_id", "test message", "test_value")

	if err.Field != "session_id" {
		t.Errorf("Expected field to be 'session_id', got '%s'", err.Field)
	}

	if err.Message != "test message" {
		t.Errorf("Expected message to be 'test message', got '%s'", err.Message)
	}

	if err.Value != "test_value" {
		t.Errorf("Expected value to be 'test_value', got '%v'", err.Value)
	}

	// Test Error method
	expected := "validation error on field 'session_id': test message"
	if err.Error() != expected {
		t.Errorf("Expected error message to be '%s', got '%s'", expected, err.Error())
	}
}

func TestValidationErrors(t *testing.T) {
	// Test empty ValidationErrors
	var errs ValidationErrors
	if errs.Error() != "validation failed" {
		t.Errorf("Expected 'validation failed' for empty errors, got '%s'", errs.Error())
	}

	// Test single ValidationError
	errs = append(errs, *NewValidationError("field1", "message1", nil))
	expected := "validation failed: field1 message1"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for single error, got '%s'", expected, errs.Error())
	}

	// Test multiple ValidationErrors
	errs = append(errs, *NewValidationError("field2", "message2", nil))
	expected = "validation failed: 2 field errors"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for multiple errors, got '%s'", expected, errs.Error())
	}
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("answers", "too many entries", "max", nil)

	if err.Rule != "max" {
		t.Errorf("Expected rule to be 'max', got '%s'", err.Rule)
	}

	if err.Field != "answers" {
		t.Errorf("Expected field to be 'answers', got '%s'", err.Field)
	}
}

func TestToValidationErrors(t *testing.T) {
	type gradeRequest struct {
		SessionID string `validate:"required"`
		Answers   []int  `validate:"max=2"`
	}

	v := validator.New()
	err := v.Struct(gradeRequest{Answers: []int{1, 2, 3}})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	errs := ToValidationErrors(err)
	if len(errs) != 2 {
		t.Fatalf("Expected 2 validation errors, got %d", len(errs))
	}

	if errs[0].Rule != "required" {
		t.Errorf("Expected first rule to be 'required', got '%s'", errs[0].Rule)
	}
	if errs[1].Message != "must be at most 2" {
		t.Errorf("Unexpected max message: '%s'", errs[1].Message)
	}
}
