package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	sdeprep "github.com/harsha-k-cheruku/sde-interview-prep"
	"github.com/harsha-k-cheruku/sde-interview-prep/db"
	"github.com/harsha-k-cheruku/sde-interview-prep/seed"
)

// newSeedCommand builds the seed command, which provisions the demo data set
// without starting the server. Serve seeds on its own; this exists for
// inspecting a database before first launch.
func newSeedCommand() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Provision the demo data set without starting the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := buildLogger(false)
			if err != nil {
				return err
			}
			defer logger.Sync()

			app, err := sdeprep.New(
				sdeprep.WithConfigDir(configDir),
				sdeprep.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			dbConn, err := db.New(filepath.Join(app.ConfigDir, app.Config.DatabaseFile))
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			repo := db.NewTrackerRepo(dbConn)
			defer repo.Close()

			result, err := seed.Run(repo, logger)
			if err != nil {
				return err
			}

			fmt.Printf("problems: %d\ntopics: %d\nweeks: %d\ntasks: %d\n",
				result.Problems, result.Topics, result.Weeks, result.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", defaultConfigDir(), "app home directory")
	return cmd
}
