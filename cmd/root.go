package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/tinyshell/simplesh/core/config"
	"github.com/tinyshell/simplesh/core/logger"
	"github.com/tinyshell/simplesh/core/shell"
)

var cfgPath string

// loadConfig loads the configuration directory. A missing config.yaml is
// not an error; the shell runs with the compiled-in defaults.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "simplesh",
	Short: "A minimal interactive command interpreter.",
	Long: `simplesh reads one command per line, handles the exit and help
built-ins in-process, and launches everything else from the system PATH,
waiting for each child to finish before prompting again.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		events := logger.NewNopRecorder()
		if cfg.LogCommands {
			logFd, err := cfg.OpenAppLog()
			if err != nil {
				return err
			}
			defer logFd.Close()
			events = logger.NewJSONLinesRecorder(logFd)
		}

		sh, err := shell.NewShell(shell.Options{
			Config: cfg,
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
			Events: events.NewSession(),
		})
		if err != nil {
			return err
		}
		defer sh.Close()

		code := sh.Run()
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
