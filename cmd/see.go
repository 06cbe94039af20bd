package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uiscout/uiscout/internal/engine"
	"github.com/uiscout/uiscout/internal/output"
)

var seeCmd = &cobra.Command{
	Use:   "see",
	Short: "Capture an application's UI into a session",
	Long: `Resolve an application by name, walk its accessibility tree, and persist
the flattened element map as a session. Each element gets a short id
(B1 for buttons, T2 for text fields, ...) that click/type/scroll accept.

Examples:
  uiscout see --app Safari
  uiscout see --app chrome --session 9c2f... --annotate`,
	RunE: runSee,
}

func init() {
	rootCmd.AddCommand(seeCmd)
	seeCmd.Flags().String("app", "", "Application name, fragment, or bundle id")
	seeCmd.Flags().String("session", "", "Reuse an existing session id")
	seeCmd.Flags().Bool("annotate", false, "Draw short-id labels on the captured screenshot")
	_ = seeCmd.MarkFlagRequired("app")
}

func runSee(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")
	sessionID, _ := cmd.Flags().GetString("session")
	annotated, _ := cmd.Flags().GetBool("annotate")

	eng, err := newEngine()
	if err != nil {
		return err
	}
	result, err := eng.See(engine.SeeOptions{
		App:       app,
		SessionID: sessionID,
		Annotate:  annotated,
	})
	if err != nil {
		return err
	}
	return output.Print(result)
}
