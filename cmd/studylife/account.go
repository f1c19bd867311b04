package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in profile",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		if !client.Session().LoggedIn() {
			fmt.Println("Not logged in.")
			return
		}
		user, err := client.CurrentUser(context.Background())
		if err != nil {
			fatal(err)
		}
		fmt.Printf("%s <%s>\n", user.FullName, user.Email)
		if user.Course != "" {
			fmt.Println("Course:", user.Course)
		}
	},
}

var (
	profileFullName string
	profileCourse   string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update full name and course",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		user, err := newClient().UpdateProfile(context.Background(), profileFullName, profileCourse)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Profile updated: %s (%s)\n", user.FullName, user.Course)
	},
}

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the account password",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		current, err := promptPassword("Current password: ")
		if err != nil {
			fatal(err)
		}
		newPassword, err := promptPassword("New password: ")
		if err != nil {
			fatal(err)
		}

		msg, err := newClient().ChangePassword(context.Background(), current, newPassword)
		if err != nil {
			fatal(err)
		}
		fmt.Println(msg)
	},
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Account management",
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Permanently delete the account and all its data",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print("This cannot be undone. Type 'delete' to confirm: ")
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		if strings.TrimSpace(line) != "delete" {
			fmt.Println("Aborted.")
			return
		}

		if err := newClient().DeleteAccount(context.Background()); err != nil {
			fatal(err)
		}
		fmt.Println("Account deleted.")
	},
}

func init() {
	profileCmd.Flags().StringVar(&profileFullName, "name", "", "Full name")
	profileCmd.Flags().StringVar(&profileCourse, "course", "", "Course code")
	accountCmd.AddCommand(accountDeleteCmd)
	rootCmd.AddCommand(whoamiCmd, profileCmd, passwdCmd, accountCmd)
}
