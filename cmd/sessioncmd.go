package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/uiscout/uiscout/internal/output"
	"github.com/uiscout/uiscout/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect and manage stored sessions",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionShow,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored session ids",
	RunE:  runSessionList,
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear <id>",
	Short: "Delete a stored session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionClear,
}

var sessionCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete sessions older than a cutoff",
	RunE:  runSessionClean,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionClearCmd)
	sessionCmd.AddCommand(sessionCleanCmd)
	sessionCleanCmd.Flags().Duration("older-than", 24*time.Hour, "Delete sessions older than this")
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	sess, err := newStore().Load(args[0])
	if err != nil {
		return err
	}
	if sess == nil {
		return &session.NotFoundError{ID: args[0]}
	}
	return output.Print(sess)
}

func runSessionList(cmd *cobra.Command, args []string) error {
	ids, err := newStore().List()
	if err != nil {
		return err
	}
	return output.Print(ids)
}

func runSessionClear(cmd *cobra.Command, args []string) error {
	if err := newStore().Clear(args[0]); err != nil {
		return err
	}
	fmt.Printf("session %s cleared\n", args[0])
	return nil
}

func runSessionClean(cmd *cobra.Command, args []string) error {
	olderThan, _ := cmd.Flags().GetDuration("older-than")
	removed := newStore().Clean(olderThan)
	fmt.Printf("removed %d session(s)\n", removed)
	return nil
}
