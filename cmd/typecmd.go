package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uiscout/uiscout/internal/engine"
	"github.com/uiscout/uiscout/internal/output"
)

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Type text into an element from a session",
	Long: `Re-locate the element captured under the given short id, focus it, and
type the text.

Examples:
  uiscout type --session 9c2f... --id T1 --text "hello world"
  uiscout type --session 9c2f... --id T1 --text "slow" --delay 50`,
	RunE: runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().String("session", "", "Session id from a previous see")
	typeCmd.Flags().String("id", "", "Element short id (e.g. T1)")
	typeCmd.Flags().String("text", "", "Text to type")
	typeCmd.Flags().Int("delay", 0, "Delay between keystrokes in ms")
	_ = typeCmd.MarkFlagRequired("session")
	_ = typeCmd.MarkFlagRequired("id")
	_ = typeCmd.MarkFlagRequired("text")
}

func runType(cmd *cobra.Command, args []string) error {
	sessionID, _ := cmd.Flags().GetString("session")
	elementID, _ := cmd.Flags().GetString("id")
	text, _ := cmd.Flags().GetString("text")
	delay, _ := cmd.Flags().GetInt("delay")

	eng, err := newEngine()
	if err != nil {
		return err
	}
	result, err := eng.Type(sessionID, elementID, engine.TypeOptions{
		Text:    text,
		DelayMs: delay,
	})
	if err != nil {
		return err
	}
	return output.Print(result)
}
