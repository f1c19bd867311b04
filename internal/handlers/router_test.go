package handlers_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"studylife/internal/api"
	"studylife/internal/auth"
	"studylife/internal/db"
	"studylife/internal/handlers"
	"studylife/internal/notes"
	"studylife/internal/session"
)

type backend struct {
	url string
}

// startBackend spins up the dev server against a throwaway sqlite file.
func startBackend(t *testing.T) *backend {
	t.Helper()

	dbConn, err := db.InitDB("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { dbConn.Close() })
	require.NoError(t, db.SeedQuizzes(dbConn))

	jwtService := auth.NewJWTService("test-secret")
	srv := httptest.NewServer(handlers.NewRouter(dbConn, jwtService))
	t.Cleanup(srv.Close)

	return &backend{url: srv.URL}
}

// client wires an API client with its own session against the backend.
func (b *backend) client(t *testing.T) (*api.Client, *session.Store) {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	return api.New(b.url, store, zap.NewNop()), store
}

func newBackend(t *testing.T) (*api.Client, *session.Store) {
	t.Helper()
	return startBackend(t).client(t)
}

func signupAndLogin(t *testing.T, client *api.Client, email string) {
	t.Helper()
	ctx := context.Background()
	_, err := client.Signup(ctx, api.SignupParams{
		Email:    email,
		FullName: "Test Student",
		Course:   "SSC",
		Password: "secret123",
	})
	require.NoError(t, err)
	_, err = client.Login(ctx, email, "secret123")
	require.NoError(t, err)
}

func TestAuthFlow(t *testing.T) {
	client, store := newBackend(t)
	ctx := context.Background()

	t.Run("signup does not log in", func(t *testing.T) {
		user, err := client.Signup(ctx, api.SignupParams{
			Email: "s@example.com", FullName: "S", Course: "TNPSC", Password: "pw123456",
		})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.False(t, store.LoggedIn())
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := client.Signup(ctx, api.SignupParams{Email: "s@example.com", Password: "pw123456"})
		require.Error(t, err)
		assert.True(t, api.IsRejected(err))
		assert.Equal(t, "Email already registered", api.Detail(err))
	})

	t.Run("login stores a token and the profile resolves", func(t *testing.T) {
		_, err := client.Login(ctx, "s@example.com", "pw123456")
		require.NoError(t, err)
		require.True(t, store.LoggedIn())

		user, err := client.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "s@example.com", user.Email)
		assert.Equal(t, "courses/tnpsc", api.DestinationForCourse(user.Course))
	})

	t.Run("wrong password is rejected without storing a token", func(t *testing.T) {
		require.NoError(t, store.Clear())
		_, err := client.Login(ctx, "s@example.com", "wrong")
		require.Error(t, err)
		assert.True(t, api.IsRejected(err))
		assert.Equal(t, "Invalid credentials", api.Detail(err))
		assert.False(t, store.LoggedIn())
	})

	t.Run("profile update and password change", func(t *testing.T) {
		_, err := client.Login(ctx, "s@example.com", "pw123456")
		require.NoError(t, err)

		user, err := client.UpdateProfile(ctx, "New Name", "Banking")
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.FullName)
		assert.Equal(t, "Banking", user.Course)

		msg, err := client.ChangePassword(ctx, "pw123456", "pw654321")
		require.NoError(t, err)
		assert.Equal(t, "Password changed successfully", msg)

		_, err = client.ChangePassword(ctx, "pw123456", "again")
		require.Error(t, err)
		assert.Equal(t, "Current password is incorrect", api.Detail(err))

		_, err = client.Login(ctx, "s@example.com", "pw654321")
		require.NoError(t, err)
	})

	t.Run("garbage token is rejected, not fatal", func(t *testing.T) {
		require.NoError(t, store.SetToken("garbage"))
		_, err := client.CurrentUser(ctx)
		require.Error(t, err)
		assert.True(t, api.IsRejected(err))
		assert.Equal(t, "Invalid token", api.Detail(err))
		// The client does not auto-logout on a 401.
		assert.True(t, store.LoggedIn())
	})
}

func TestNotesRoundTrip(t *testing.T) {
	srv := startBackend(t)
	client, _ := srv.client(t)
	ctx := context.Background()
	signupAndLogin(t, client, "notes@example.com")

	cache := notes.NewCache(client)

	created, err := client.CreateNote(ctx, "Polity", "Articles 1-50", "#abcdef")
	require.NoError(t, err)
	assert.Equal(t, "#abcdef", created.Color)
	assert.False(t, created.IsStarred)

	t.Run("refresh after create sees the note", func(t *testing.T) {
		require.NoError(t, cache.Refresh(ctx))
		list := cache.Notes()
		require.Len(t, list, 1)
		assert.Equal(t, "Polity", list[0].Title)
		assert.Equal(t, "Articles 1-50", list[0].Description)
		assert.Equal(t, "#abcdef", list[0].Color)
	})

	t.Run("update replaces all three fields", func(t *testing.T) {
		updated, err := client.UpdateNote(ctx, created.ID, "Polity v2", "Articles 51-100", "#ffffff")
		require.NoError(t, err)
		assert.Equal(t, "Polity v2", updated.Title)
		assert.Equal(t, "Articles 51-100", updated.Description)
		assert.Equal(t, "#ffffff", updated.Color)
	})

	t.Run("star toggles on and off", func(t *testing.T) {
		note, err := client.ToggleStar(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, note.IsStarred)

		note, err = client.ToggleStar(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, note.IsStarred)
	})

	t.Run("delete then refresh yields an empty cache", func(t *testing.T) {
		require.NoError(t, client.DeleteNote(ctx, created.ID))
		require.NoError(t, cache.Refresh(ctx))
		assert.Zero(t, cache.Len())
	})

	t.Run("foreign notes are invisible", func(t *testing.T) {
		_, err := client.CreateNote(ctx, "mine", "", "")
		require.NoError(t, err)

		other, _ := srv.client(t)
		signupAndLogin(t, other, "other@example.com")
		got, err := other.Notes(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestQuizAndProgressFlow(t *testing.T) {
	client, store := newBackend(t)
	ctx := context.Background()

	quizzes, err := client.Quizzes(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, quizzes, "seeded quizzes should be listed publicly")

	quiz, err := client.Quiz(ctx, quizzes[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, quiz.Questions)
	assert.Equal(t, quizzes[0].TotalQuestions, len(quiz.Questions))

	t.Run("submission requires a session", func(t *testing.T) {
		require.NoError(t, store.Clear())
		_, err := client.SubmitQuiz(ctx, quiz.ID, nil)
		require.Error(t, err)
		assert.True(t, api.IsNoSession(err))
	})

	signupAndLogin(t, client, "quiz@example.com")

	t.Run("stats start at zero", func(t *testing.T) {
		stats, err := client.Stats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalQuizzes)
		assert.Zero(t, stats.StudyHours)
	})

	t.Run("a scored submission is recorded", func(t *testing.T) {
		// Maths - Grade 6 - Easy: 12x8=96, 15% of 200=30, prime=29.
		answers := map[int]string{
			quiz.Questions[0].ID: "96",
			quiz.Questions[1].ID: "30",
			quiz.Questions[2].ID: "33", // wrong on purpose
		}
		result, err := client.SubmitQuiz(ctx, quiz.ID, answers)
		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalQuestions)
		assert.Equal(t, 2, result.CorrectAnswers)
		assert.InDelta(t, 66.67, result.Score, 0.01)

		progress, err := client.Progress(ctx)
		require.NoError(t, err)
		require.Len(t, progress, 1)
		assert.Equal(t, quiz.ID, progress[0].QuizID)

		stats, err := client.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalQuizzes)
		assert.InDelta(t, 66.67, stats.AverageScore, 0.01)
		assert.InDelta(t, 66.67, stats.Accuracy, 0.01)
		assert.Equal(t, 1, stats.StudyHours)
	})
}

func TestDeleteAccountEndToEnd(t *testing.T) {
	client, store := newBackend(t)
	ctx := context.Background()
	signupAndLogin(t, client, "gone@example.com")

	_, err := client.CreateNote(ctx, "doomed", "", "")
	require.NoError(t, err)

	require.NoError(t, client.DeleteAccount(ctx))
	assert.False(t, store.LoggedIn(), "session cleared after server confirmation")

	_, err = client.Login(ctx, "gone@example.com", "secret123")
	require.Error(t, err)
	assert.True(t, api.IsRejected(err))
}
