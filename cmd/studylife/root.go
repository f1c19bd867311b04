package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"studylife/internal/api"
	"studylife/internal/config"
	"studylife/internal/notes"
	"studylife/internal/session"
)

var (
	apiURL  string
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "studylife",
	Short: "Client for the My Study Life platform",
	Long: `studylife talks to the study-platform backend: log in, keep
personal notes, take quizzes and track your progress.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (overrides env and host resolution)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// newClient assembles the session store and API client from the
// effective configuration.
func newClient() *api.Client {
	cfg := config.Load()
	if apiURL != "" {
		cfg.BaseURL = apiURL
	}
	return api.New(cfg.BaseURL, session.NewStore(cfg.TokenPath), logger)
}

func newCache(client *api.Client) *notes.Cache {
	return notes.NewCache(client)
}

// fatal reports a mutation failure the way the web client raises an
// alert, then exits.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", api.Detail(err))
	os.Exit(1)
}
