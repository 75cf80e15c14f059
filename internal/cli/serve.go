package cli

import (
	"github.com/spf13/cobra"

	sdeprep "github.com/harsha-k-cheruku/sde-interview-prep"
)

// newServeCommand builds the serve command: the full launch sequence ending
// in a blocking server. Any step failing aborts with a non-zero exit before
// the server ever starts.
func newServeCommand() *cobra.Command {
	var (
		configDir string
		reload    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Bootstrap the environment and start the tracker server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := buildLogger(reload)
			if err != nil {
				return err
			}
			defer logger.Sync()

			app, err := sdeprep.New(
				sdeprep.WithConfigDir(configDir),
				sdeprep.WithLogger(logger),
				sdeprep.WithReload(reload),
			)
			if err != nil {
				return err
			}

			listener, err := app.Bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Serve(listener)
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", defaultConfigDir(), "app home directory")
	cmd.Flags().BoolVar(&reload, "reload", false, "reload guides on change and format rendered pages")
	return cmd
}
