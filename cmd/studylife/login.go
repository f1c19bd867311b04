package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"studylife/internal/api"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in and store the session token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		password, err := promptPassword("Password: ")
		if err != nil {
			fatal(err)
		}

		client := newClient()
		ctx := context.Background()
		if _, err := client.Login(ctx, args[0], password); err != nil {
			fatal(err)
		}

		// The post-login destination is driven by the profile's course.
		dest := api.DashboardDestination
		if user, err := client.CurrentUser(ctx); err == nil {
			dest = api.DestinationForCourse(user.Course)
		}

		fmt.Println("Logged in. Continue at:", dest)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := newClient().Logout(); err != nil {
			fatal(err)
		}
		fmt.Println("Logged out.")
	},
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	data, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
