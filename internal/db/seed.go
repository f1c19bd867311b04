package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

type seedQuestion struct {
	Text    string
	Options []string
	Correct string
}

type seedQuiz struct {
	Title     string
	Subject   string
	Grade     int
	Questions []seedQuestion
}

// A small subject/grade/difficulty grid so a fresh dev server has
// something to serve.
var seedQuizzes = []seedQuiz{
	{
		Title: "Maths - Grade 6 - Easy", Subject: "Maths", Grade: 6,
		Questions: []seedQuestion{
			{Text: "What is 12 x 8?", Options: []string{"80", "96", "104", "88"}, Correct: "96"},
			{Text: "What is 15% of 200?", Options: []string{"15", "20", "30", "45"}, Correct: "30"},
			{Text: "Which number is prime?", Options: []string{"21", "27", "29", "33"}, Correct: "29"},
		},
	},
	{
		Title: "Science - Grade 7 - Medium", Subject: "Science", Grade: 7,
		Questions: []seedQuestion{
			{Text: "Water boils at what temperature at sea level?", Options: []string{"90C", "100C", "110C", "120C"}, Correct: "100C"},
			{Text: "Which gas do plants absorb?", Options: []string{"Oxygen", "Nitrogen", "Carbon dioxide", "Hydrogen"}, Correct: "Carbon dioxide"},
		},
	},
	{
		Title: "English - Grade 8 - Hard", Subject: "English", Grade: 8,
		Questions: []seedQuestion{
			{Text: "Pick the synonym of 'candid'.", Options: []string{"secretive", "frank", "rude", "shy"}, Correct: "frank"},
			{Text: "Pick the antonym of 'scarce'.", Options: []string{"rare", "sparse", "abundant", "meagre"}, Correct: "abundant"},
		},
	},
}

// SeedQuizzes inserts the demo quizzes once. A database that already
// has quizzes is left alone.
func SeedQuizzes(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM quizzes").Scan(&count); err != nil {
		return fmt.Errorf("counting quizzes: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, q := range seedQuizzes {
		res, err := db.Exec(
			"INSERT INTO quizzes (title, subject, grade, description) VALUES (?, ?, ?, ?)",
			q.Title, q.Subject, q.Grade, q.Title)
		if err != nil {
			return fmt.Errorf("seeding quiz %q: %w", q.Title, err)
		}
		quizID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("quiz id for %q: %w", q.Title, err)
		}
		for _, question := range q.Questions {
			opts, err := json.Marshal(question.Options)
			if err != nil {
				return fmt.Errorf("encoding options: %w", err)
			}
			if _, err := db.Exec(
				"INSERT INTO questions (quiz_id, text, options, correct) VALUES (?, ?, ?, ?)",
				quizID, question.Text, string(opts), question.Correct); err != nil {
				return fmt.Errorf("seeding question: %w", err)
			}
		}
	}
	return nil
}
