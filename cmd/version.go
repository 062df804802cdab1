package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.Config.AppName, app.Config.AppVersion)
		},
	}
}
