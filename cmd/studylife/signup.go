package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studylife/internal/api"
)

var (
	signupFullName string
	signupCourse   string
)

var signupCmd = &cobra.Command{
	Use:   "signup <email>",
	Short: "Register a new account",
	Long:  "Register a new account. Signing up does not log you in; run login afterwards.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		password, err := promptPassword("Password: ")
		if err != nil {
			fatal(err)
		}

		user, err := newClient().Signup(context.Background(), api.SignupParams{
			Email:    args[0],
			FullName: signupFullName,
			Course:   signupCourse,
			Password: password,
		})
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Account created for %s. Run 'studylife login %s' to sign in.\n", user.Email, user.Email)
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupFullName, "name", "", "Full name")
	signupCmd.Flags().StringVar(&signupCourse, "course", "", "Course code (TNPSC, SSC, Railway, Banking)")
	rootCmd.AddCommand(signupCmd)
}
