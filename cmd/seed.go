package cmd

import (
	"civilprotection-backend/dal"

	"github.com/spf13/cobra"
)

func seedCmd(app *App) *cobra.Command {
	var reset, dummy bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and insert reference data",
		Long: `Migrates the database and inserts the stock roles and groups.
With --dummy, demo vehicles, volunteers and services are added too.
With --reset, every table is dropped first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := dal.NewDatabaseClient(app.Config, app.Logger)
			if err != nil {
				return err
			}
			defer db.Close()

			if reset {
				err = db.Reset(ctx)
			} else {
				err = db.Migrate(ctx)
			}
			if err != nil {
				return err
			}

			if err := db.Seed(ctx, dal.DefaultSeedOptions(dummy)); err != nil {
				return err
			}
			app.Logger.Info("Database seeded")
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Drop every table before seeding. ALL DATA IS LOST")
	cmd.Flags().BoolVar(&dummy, "dummy", false, "Insert demo vehicles, volunteers and services")
	return cmd
}
