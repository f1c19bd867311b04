package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show recorded quiz attempts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		list, err := newClient().Progress(context.Background())
		if err != nil {
			logger.Warn("failed to load progress", zap.Error(err))
		}
		if len(list) == 0 {
			fmt.Println("No quiz attempts yet.")
			return
		}
		for _, p := range list {
			fmt.Printf("quiz %-4d %6.2f%%  %d/%d correct  %s\n",
				p.QuizID, p.Score, p.CorrectAnswers, p.TotalQuestions,
				p.CompletedAt.Format("Jan 2, 2006 15:04"))
		}
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate study statistics",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stats, err := newClient().Stats(context.Background())
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Quizzes taken:   %d\n", stats.TotalQuizzes)
		fmt.Printf("Average score:   %.2f%%\n", stats.AverageScore)
		fmt.Printf("Accuracy:        %.2f%%\n", stats.Accuracy)
		fmt.Printf("Current streak:  %d\n", stats.CurrentStreak)
		fmt.Printf("Questions seen:  %d\n", stats.TotalQuestions)
		fmt.Printf("Correct answers: %d\n", stats.CorrectAnswers)
		fmt.Printf("Study hours:     %d\n", stats.StudyHours)
	},
}

func init() {
	rootCmd.AddCommand(progressCmd, statsCmd)
}
