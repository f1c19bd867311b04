package models

// Quiz as listed by /api/quiz/all. Questions is only populated by the
// single-quiz endpoint.
type Quiz struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Subject        string     `json:"subject"`
	Grade          int        `json:"grade"`
	Description    string     `json:"description"`
	TotalQuestions int        `json:"total_questions"`
	Questions      []Question `json:"questions,omitempty"`
}

// Question is read-only from the client's perspective. The correct
// answer never crosses the wire.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// QuizResult is the scored outcome of a submission.
type QuizResult struct {
	QuizID         int     `json:"quiz_id"`
	Score          float64 `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
}
