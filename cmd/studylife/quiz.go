package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Browse and take quizzes",
}

var quizListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available quizzes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		quizzes, err := newClient().Quizzes(context.Background())
		if err != nil {
			logger.Warn("failed to load quizzes", zap.Error(err))
		}
		if len(quizzes) == 0 {
			fmt.Println("No quizzes available.")
			return
		}
		for _, q := range quizzes {
			fmt.Printf("%4d  %-35s %d questions\n", q.ID, q.Title, q.TotalQuestions)
		}
	},
}

var quizShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a quiz and its questions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustQuizID(args[0])
		quiz, err := newClient().Quiz(context.Background(), id)
		if err != nil {
			fatal(err)
		}
		fmt.Println(quiz.Title)
		for i, q := range quiz.Questions {
			fmt.Printf("%d. %s\n", i+1, q.Text)
			for j, opt := range q.Options {
				fmt.Printf("   %c) %s\n", 'a'+j, opt)
			}
		}
	},
}

var quizTakeCmd = &cobra.Command{
	Use:   "take <id>",
	Short: "Answer a quiz interactively and submit it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustQuizID(args[0])
		client := newClient()
		ctx := context.Background()

		quiz, err := client.Quiz(ctx, id)
		if err != nil {
			fatal(err)
		}
		if len(quiz.Questions) == 0 {
			fmt.Println("This quiz has no questions yet.")
			return
		}

		fmt.Println(quiz.Title)
		reader := bufio.NewReader(os.Stdin)
		answers := make(map[int]string, len(quiz.Questions))
		for i, q := range quiz.Questions {
			fmt.Printf("\n%d. %s\n", i+1, q.Text)
			for j, opt := range q.Options {
				fmt.Printf("   %c) %s\n", 'a'+j, opt)
			}
			answers[q.ID] = promptChoice(reader, q.Options)
		}

		result, err := client.SubmitQuiz(ctx, id, answers)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("\nScore: %.0f%% (%d/%d correct)\n", result.Score, result.CorrectAnswers, result.TotalQuestions)
	},
}

// promptChoice keeps asking until the user picks one of the lettered
// options.
func promptChoice(reader *bufio.Reader, options []string) string {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return ""
		}
		choice := strings.TrimSpace(strings.ToLower(line))
		if len(choice) == 1 {
			idx := int(choice[0] - 'a')
			if idx >= 0 && idx < len(options) {
				return options[idx]
			}
		}
		fmt.Printf("Please answer a-%c.\n", 'a'+len(options)-1)
	}
}

func mustQuizID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fatal(fmt.Errorf("invalid quiz id %q", arg))
	}
	return id
}

func init() {
	quizCmd.AddCommand(quizListCmd, quizShowCmd, quizTakeCmd)
	rootCmd.AddCommand(quizCmd)
}
