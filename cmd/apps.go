package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uiscout/uiscout/internal/output"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List running applications with windows",
	RunE:  runApps,
}

func init() {
	rootCmd.AddCommand(appsCmd)
}

func runApps(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	list, err := eng.AppList()
	if err != nil {
		return err
	}
	return output.Print(list)
}
