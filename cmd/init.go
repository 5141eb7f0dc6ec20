package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/tinyshell/simplesh/core/config"
)

// initCmd seeds the configuration directory with the default config.yaml.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default shell configuration to the config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		_, err := config.Initialize(cfgPath, logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
