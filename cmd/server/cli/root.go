package cli

import (
	"fmt"
	"os"

	"github.com/rohits-web03/filehub/internal/config"
	"github.com/rohits-web03/filehub/internal/logging"
	"github.com/spf13/cobra"
)

type VersionInfo struct {
	Version string
	Commit  string
}

func NewRootCommand(info VersionInfo) *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "filehub",
		Short:         "FileHub API server",
		Long:          "Upload, tag, share and track images and videos kept in S3-compatible object storage.",
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				return os.Setenv("ENV_FILE", envFile)
			}
			return nil
		},
		// Running without a subcommand starts the server.
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default is ./.env)")
	cmd.Version = fmt.Sprintf("%s.%s", info.Version, info.Commit)

	return cmd
}

// loadConfig reads the configuration and installs the application logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.New(cfg.Log)
	return cfg, nil
}
