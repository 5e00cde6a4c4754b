package catalog

import "github.com/loop-labs/quiz-service/internal/models"

// Default returns the built-in web fundamentals quiz, used when no external
// catalog source is configured.
func Default() *Catalog {
	c, err := New(defaultQuestions())
	if err != nil {
		// The built-in set is validated by tests; reaching this is a bug.
		panic(err)
	}
	return c
}

func defaultQuestions() []models.Question {
	return []models.Question{
		models.NewRadioQuestion("q1",
			"Which HTTP status code indicates successful resource creation?",
			[]string{"200 OK", "201 Created", "204 No Content", "202 Accepted"}, 1),
		models.NewRadioQuestion("q2",
			"What does REST stand for in web APIs?",
			[]string{
				"Remote Execution State Transfer",
				"Representational State Transfer",
				"Rapid Execution Service Technology",
				"Resource Execution State Technology",
			}, 1),
		models.NewRadioQuestion("q3",
			"Which of these is NOT a valid HTTP method?",
			[]string{"GET", "POST", "FETCH", "DELETE"}, 2),
		models.NewRadioQuestion("q4",
			"What is the correct MIME type for JSON data?",
			[]string{"text/json", "application/json", "text/javascript", "application/javascript"}, 1),

		models.NewCheckboxQuestion("q5",
			"Which of the following are JavaScript frameworks? (Select all that apply)",
			[]string{"React", "Python", "Vue", "Angular", "Java"}, []int{0, 2, 3}),
		models.NewCheckboxQuestion("q6",
			"Which of these are valid TypeScript primitive types? (Select all that apply)",
			[]string{"string", "int", "boolean", "float", "number"}, []int{0, 2, 4}),
		models.NewCheckboxQuestion("q7",
			"Which HTTP status codes indicate client errors? (Select all that apply)",
			[]string{"200", "404", "500", "403", "301"}, []int{1, 3}),
		models.NewCheckboxQuestion("q8",
			"Which of these are CSS layout models? (Select all that apply)",
			[]string{"Flexbox", "Grid", "Float", "Table", "Block"}, []int{0, 1, 2, 3}),

		models.NewTextQuestion("q9", "What does CSS stand for?", "Cascading Style Sheets"),
		models.NewTextQuestion("q10", "What does HTML stand for?", "HyperText Markup Language"),
		models.NewTextQuestion("q11", "What does API stand for?", "Application Programming Interface"),
		models.NewTextQuestion("q12", "What does SQL stand for?", "Structured Query Language"),
	}
}
