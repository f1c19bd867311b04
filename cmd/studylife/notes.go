package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studylife/internal/notes"
)

var (
	notesSearch     string
	notesSort       string
	noteTitle       string
	noteDescription string
	noteColor       string
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Personal notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes with optional search and sorting",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cache := newCache(newClient())
		// Read path: failures degrade to an empty listing, logged only
		// to the diagnostic channel.
		if err := cache.Refresh(context.Background()); err != nil {
			logger.Warn("failed to load notes", zap.Error(err))
		}

		list := cache.Query(notesSearch, notes.SortMode(notesSort))
		if len(list) == 0 {
			fmt.Println("No notes.")
			return
		}
		for _, n := range list {
			star := " "
			if n.IsStarred {
				star = "*"
			}
			fmt.Printf("%4d %s %-30s %s\n", n.ID, star, n.Title, n.CreatedAt.Format("Jan 2, 2006"))
			if n.Description != "" {
				fmt.Printf("       %s\n", n.Description)
			}
		}
	},
}

var notesAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		note, err := newClient().CreateNote(context.Background(), args[0], noteDescription, noteColor)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Created note %d: %s\n", note.ID, note.Title)
	},
}

var notesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace a note's title, description and color",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustNoteID(args[0])
		note, err := newClient().UpdateNote(context.Background(), id, noteTitle, noteDescription, noteColor)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Updated note %d: %s\n", note.ID, note.Title)
	},
}

var notesStarCmd = &cobra.Command{
	Use:   "star <id>",
	Short: "Toggle a note's star",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustNoteID(args[0])
		note, err := newClient().ToggleStar(context.Background(), id)
		if err != nil {
			fatal(err)
		}
		state := "unstarred"
		if note.IsStarred {
			state = "starred"
		}
		fmt.Printf("Note %d %s.\n", note.ID, state)
	},
}

var notesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustNoteID(args[0])
		if err := newClient().DeleteNote(context.Background(), id); err != nil {
			fatal(err)
		}
		fmt.Printf("Deleted note %d.\n", id)
	},
}

func mustNoteID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fatal(fmt.Errorf("invalid note id %q", arg))
	}
	return id
}

func init() {
	notesListCmd.Flags().StringVar(&notesSearch, "search", "", "Filter by title or description")
	notesListCmd.Flags().StringVar(&notesSort, "sort", "newest", "Sort mode: newest, oldest, starred, az")

	notesAddCmd.Flags().StringVar(&noteDescription, "description", "", "Note body")
	notesAddCmd.Flags().StringVar(&noteColor, "color", "", "CSS color (defaults server-side)")

	notesEditCmd.Flags().StringVar(&noteTitle, "title", "", "New title")
	notesEditCmd.Flags().StringVar(&noteDescription, "description", "", "New body")
	notesEditCmd.Flags().StringVar(&noteColor, "color", "", "New color")

	notesCmd.AddCommand(notesListCmd, notesAddCmd, notesEditCmd, notesStarCmd, notesRmCmd)
	rootCmd.AddCommand(notesCmd)
}
