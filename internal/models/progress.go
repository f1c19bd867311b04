package models

import "time"

// Progress is one recorded quiz attempt.
type Progress struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	QuizID         int       `json:"quiz_id"`
	Score          float64   `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	CompletedAt    time.Time `json:"completed_at"`
}

// Stats aggregates all of a user's attempts. Every field is zero when
// the user has not taken a quiz yet.
type Stats struct {
	TotalQuizzes   int     `json:"total_quizzes"`
	AverageScore   float64 `json:"average_score"`
	Accuracy       float64 `json:"accuracy"`
	CurrentStreak  int     `json:"current_streak"`
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
	StudyHours     int     `json:"study_hours"`
}
