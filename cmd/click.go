package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uiscout/uiscout/internal/engine"
	"github.com/uiscout/uiscout/internal/output"
	"github.com/uiscout/uiscout/internal/platform"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click an element from a session by its short id",
	Long: `Re-locate the element captured under the given short id and click it.
The element is matched against the live tree by role, title, and position,
so it still works after the window has been moved slightly or redrawn.

Examples:
  uiscout click --session 9c2f... --id B3
  uiscout click --session 9c2f... --id B3 --button right`,
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().String("session", "", "Session id from a previous see")
	clickCmd.Flags().String("id", "", "Element short id (e.g. B3)")
	clickCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
	clickCmd.Flags().Bool("double", false, "Double-click")
	_ = clickCmd.MarkFlagRequired("session")
	_ = clickCmd.MarkFlagRequired("id")
}

func runClick(cmd *cobra.Command, args []string) error {
	sessionID, _ := cmd.Flags().GetString("session")
	elementID, _ := cmd.Flags().GetString("id")
	buttonName, _ := cmd.Flags().GetString("button")
	double, _ := cmd.Flags().GetBool("double")

	button, err := platform.ParseMouseButton(buttonName)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	result, err := eng.Click(sessionID, elementID, engine.ClickOptions{
		Button: button,
		Double: double,
	})
	if err != nil {
		return err
	}
	return output.Print(result)
}
