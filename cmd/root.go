// Package cmd wires the command line entrypoints of the backend.
package cmd

import (
	"civilprotection-backend/models"
	"civilprotection-backend/utils"
	"civilprotection-backend/utils/logger"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// App holds what every command needs
type App struct {
	Config *models.Config
	Logger logger.Logger
}

// NewRootCmd builds the command tree. Config is loaded before any
// subcommand runs.
func NewRootCmd() *cobra.Command {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:          "civilprotection",
		Short:        "Civil protection volunteer management backend",
		Long:         `REST API to manage volunteers, vehicles and services of a civil protection organization.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
	}

	rootCmd.AddCommand(serveCmd(app))
	rootCmd.AddCommand(seedCmd(app))
	rootCmd.AddCommand(versionCmd(app))
	return rootCmd
}

func (a *App) init() error {
	config, err := utils.GetConfig()
	if err != nil {
		return err
	}
	a.Config = config
	a.Logger = logger.NewLogger(config.LogLevel, config.LogFormat)
	a.Logger.Debugf("Config loaded :: %s", utils.PrintPrettyJSON(config))
	return nil
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
