package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uiscout/uiscout/internal/output"
)

var scrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Scroll at an element from a session",
	Long: `Re-locate the element captured under the given short id and scroll at its
center. Positive dy scrolls down, positive dx scrolls right.

Examples:
  uiscout scroll --session 9c2f... --id G7 --dy 5
  uiscout scroll --session 9c2f... --id G7 --dx -3`,
	RunE: runScroll,
}

func init() {
	rootCmd.AddCommand(scrollCmd)
	scrollCmd.Flags().String("session", "", "Session id from a previous see")
	scrollCmd.Flags().String("id", "", "Element short id")
	scrollCmd.Flags().Int("dx", 0, "Horizontal scroll amount")
	scrollCmd.Flags().Int("dy", 0, "Vertical scroll amount")
	_ = scrollCmd.MarkFlagRequired("session")
	_ = scrollCmd.MarkFlagRequired("id")
}

func runScroll(cmd *cobra.Command, args []string) error {
	sessionID, _ := cmd.Flags().GetString("session")
	elementID, _ := cmd.Flags().GetString("id")
	dx, _ := cmd.Flags().GetInt("dx")
	dy, _ := cmd.Flags().GetInt("dy")

	eng, err := newEngine()
	if err != nil {
		return err
	}
	result, err := eng.Scroll(sessionID, elementID, dx, dy)
	if err != nil {
		return err
	}
	return output.Print(result)
}
