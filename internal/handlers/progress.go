package handlers

import (
	"database/sql"
	"math"
	"net/http"

	"studylife/internal/auth"
	"studylife/internal/models"
)

func ListProgressHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFromContext(r.Context())

		rows, err := db.Query(`
			SELECT id, user_id, quiz_id, score, total_questions, correct_answers, completed_at
			FROM progress WHERE user_id = ? ORDER BY id`, userID)
		if err != nil {
			fail(w, "Failed to fetch progress", http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		list := []models.Progress{}
		for rows.Next() {
			var p models.Progress
			if err := rows.Scan(&p.ID, &p.UserID, &p.QuizID, &p.Score, &p.TotalQuestions, &p.CorrectAnswers, &p.CompletedAt); err != nil {
				fail(w, "Failed to fetch progress", http.StatusInternalServerError)
				return
			}
			list = append(list, p)
		}
		respond(w, list, http.StatusOK)
	}
}

// StatsHandler aggregates all recorded attempts. A user without
// attempts gets all zeros.
func StatsHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFromContext(r.Context())

		rows, err := db.Query(
			"SELECT score, total_questions, correct_answers FROM progress WHERE user_id = ?", userID)
		if err != nil {
			fail(w, "Failed to fetch stats", http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var stats models.Stats
		var scoreSum float64
		for rows.Next() {
			var score float64
			var total, correct int
			if err := rows.Scan(&score, &total, &correct); err != nil {
				fail(w, "Failed to fetch stats", http.StatusInternalServerError)
				return
			}
			stats.TotalQuizzes++
			scoreSum += score
			stats.TotalQuestions += total
			stats.CorrectAnswers += correct
		}

		if stats.TotalQuizzes > 0 {
			stats.AverageScore = round2(scoreSum / float64(stats.TotalQuizzes))
			if stats.TotalQuestions > 0 {
				stats.Accuracy = round2(float64(stats.CorrectAnswers) / float64(stats.TotalQuestions) * 100)
			}
			// Rough estimate: an hour of study per 50 answered questions.
			stats.StudyHours = stats.TotalQuestions / 50
			if stats.StudyHours < 1 {
				stats.StudyHours = 1
			}
			stats.CurrentStreak = stats.TotalQuizzes
		}

		respond(w, stats, http.StatusOK)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
