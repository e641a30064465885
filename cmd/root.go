// Package cmd implements the finpath CLI commands.
package cmd

import (
	"io"
	"os"

	"github.com/theirongolddev/finpath/internal/config"
	"github.com/theirongolddev/finpath/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagVerbose bool

// logCloser is closed by Execute once the command returns.
var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:          "finpath",
	Short:        "Personal finance planner",
	Long:         "Plan budgets, life-transition milestones and savings goals from the terminal.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	err := rootCmd.Execute()
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = setupLogging
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log to stderr (non-interactive commands)")
}

// setupLogging configures zerolog from the config file. A broken config
// still gets logging with defaults so the failure itself is recorded.
func setupLogging(cmd *cobra.Command, _ []string) error {
	cfg, loadErr := config.Load()
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}

	closer, err := logging.Setup(logging.Options{
		File:    cfg.Log.File,
		Console: flagVerbose && !isInteractive(cmd),
		Level:   cfg.Log.Level,
	})
	logCloser = closer
	if err != nil {
		return err
	}

	if loadErr != nil {
		log.Warn().Err(loadErr).Str("path", config.Path()).Msg("config load failed, using defaults")
	}
	log.Debug().Str("command", cmd.Name()).Msg("starting")
	return nil
}

// isInteractive reports whether cmd takes over the terminal.
func isInteractive(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == tuiCmd || cmd == setupCmd
}

