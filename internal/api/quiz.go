package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"studylife/internal/models"
)

// Quizzes lists every quiz. Public, no auth needed.
func (c *Client) Quizzes(ctx context.Context) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := c.get(ctx, "/api/quiz/all", false, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

// Quiz fetches a single quiz with its questions embedded.
func (c *Client) Quiz(ctx context.Context, id int) (models.Quiz, error) {
	var quiz models.Quiz
	err := c.get(ctx, fmt.Sprintf("/api/quiz/%d", id), false, &quiz)
	return quiz, err
}

// SubmitQuiz sends the user's answers, keyed by question id, and returns
// the scored result.
func (c *Client) SubmitQuiz(ctx context.Context, id int, answers map[int]string) (models.QuizResult, error) {
	wire := make(map[string]string, len(answers))
	for qid, choice := range answers {
		wire[strconv.Itoa(qid)] = choice
	}
	payload := struct {
		QuizID  int               `json:"quiz_id"`
		Answers map[string]string `json:"answers"`
	}{id, wire}

	var result models.QuizResult
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/quiz/submit/%d", id), true, payload, &result)
	return result, err
}
