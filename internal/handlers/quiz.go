package handlers

import (
	"database/sql"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"studylife/internal/auth"
	"studylife/internal/models"
)

const listQuizzesQuery = `
	SELECT q.id, q.title, q.subject, q.grade, q.description,
		(SELECT COUNT(*) FROM questions WHERE quiz_id = q.id) AS total_questions
	FROM quizzes q ORDER BY q.id`

func ListQuizzesHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query(listQuizzesQuery)
		if err != nil {
			fail(w, "Failed to fetch quizzes", http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		quizzes := []models.Quiz{}
		for rows.Next() {
			var q models.Quiz
			if err := rows.Scan(&q.ID, &q.Title, &q.Subject, &q.Grade, &q.Description, &q.TotalQuestions); err != nil {
				fail(w, "Failed to fetch quizzes", http.StatusInternalServerError)
				return
			}
			quizzes = append(quizzes, q)
		}
		respond(w, quizzes, http.StatusOK)
	}
}

// GetQuizHandler returns one quiz with its questions embedded. Correct
// answers stay server-side.
func GetQuizHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			fail(w, "Invalid quiz id", http.StatusBadRequest)
			return
		}

		var q models.Quiz
		err = db.QueryRow(`
			SELECT q.id, q.title, q.subject, q.grade, q.description,
				(SELECT COUNT(*) FROM questions WHERE quiz_id = q.id)
			FROM quizzes q WHERE q.id = ?`, id).
			Scan(&q.ID, &q.Title, &q.Subject, &q.Grade, &q.Description, &q.TotalQuestions)
		if err != nil {
			fail(w, "Quiz not found", http.StatusNotFound)
			return
		}

		rows, err := db.Query("SELECT id, text, options FROM questions WHERE quiz_id = ? ORDER BY id", id)
		if err != nil {
			fail(w, "Failed to fetch questions", http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		q.Questions = []models.Question{}
		for rows.Next() {
			var question models.Question
			var optionsJSON string
			if err := rows.Scan(&question.ID, &question.Text, &optionsJSON); err != nil {
				fail(w, "Failed to fetch questions", http.StatusInternalServerError)
				return
			}
			if err := json.Unmarshal([]byte(optionsJSON), &question.Options); err != nil {
				fail(w, "Failed to fetch questions", http.StatusInternalServerError)
				return
			}
			q.Questions = append(q.Questions, question)
		}

		respond(w, q, http.StatusOK)
	}
}

// SubmitQuizHandler scores a submission, records it as progress and
// returns the result. Answers are keyed by question id.
func SubmitQuizHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizID, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			fail(w, "Invalid quiz id", http.StatusBadRequest)
			return
		}

		var req struct {
			QuizID  int               `json:"quiz_id"`
			Answers map[string]string `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		rows, err := db.Query("SELECT id, correct FROM questions WHERE quiz_id = ?", quizID)
		if err != nil {
			fail(w, "Quiz not found", http.StatusNotFound)
			return
		}
		defer rows.Close()

		total, correct := 0, 0
		for rows.Next() {
			var qid int
			var answer string
			if err := rows.Scan(&qid, &answer); err != nil {
				fail(w, "Failed to score quiz", http.StatusInternalServerError)
				return
			}
			total++
			if req.Answers[strconv.Itoa(qid)] == answer {
				correct++
			}
		}
		if total == 0 {
			fail(w, "Quiz not found", http.StatusNotFound)
			return
		}

		score := math.Round(float64(correct)/float64(total)*10000) / 100

		userID := auth.UserIDFromContext(r.Context())
		if _, err := db.Exec(`
			INSERT INTO progress (user_id, quiz_id, score, total_questions, correct_answers, completed_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			userID, quizID, score, total, correct, time.Now().UTC()); err != nil {
			fail(w, "Failed to record result", http.StatusInternalServerError)
			return
		}

		respond(w, models.QuizResult{
			QuizID:         quizID,
			Score:          score,
			TotalQuestions: total,
			CorrectAnswers: correct,
		}, http.StatusOK)
	}
}
