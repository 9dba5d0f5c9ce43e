package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Philanthropists/results/internal/config"
	"github.com/Philanthropists/results/internal/logging"
)

var GitCommit string

var (
	configFile string
	cfg        *config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "results",
		Short:         "Parse and transform values through Results",
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Init(cmd, configFile)
			if err != nil {
				return err
			}
			cfg = c

			logger, err := logging.Build(cfg.LogLevel())
			if err != nil {
				return err
			}
			logging.SetGlobal(logger)

			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file")
	root.PersistentFlags().String("log-level", "info", "log level")

	root.AddCommand(newMapCmd())

	return root
}

func version() string {
	if len(GitCommit) >= 3 {
		return GitCommit[:3]
	}
	return "dev"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log := logging.New()
		defer func() { _ = log.Sync() }()

		log.Error("command failed", logging.Error(err))
		os.Exit(1)
	}
}
