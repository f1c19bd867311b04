// Command devserver runs a local implementation of the study-platform
// backend so the client can be developed and tested without the
// deployed origin.
package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"studylife/internal/auth"
	"studylife/internal/db"
	"studylife/internal/handlers"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-only-secret"
		logger.Warn("JWT_SECRET not set, using the dev default")
	}

	dbConn, err := db.InitDB(os.Getenv("DB_DRIVER"), os.Getenv("DB_DSN"))
	if err != nil {
		logger.Fatal("opening database", zap.Error(err))
	}
	defer dbConn.Close()

	if err := db.SeedQuizzes(dbConn); err != nil {
		logger.Fatal("seeding quizzes", zap.Error(err))
	}

	jwtService := auth.NewJWTService(secret)
	r := handlers.NewRouter(dbConn, jwtService)

	logger.Info("starting dev server", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
