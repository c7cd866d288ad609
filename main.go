package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/noobstar3310/aikwei-dev/internal/config"
	"github.com/noobstar3310/aikwei-dev/internal/logging"
)

var (
	cfgFile   string
	logLevel  string
	logPretty bool

	cfg    *config.Config
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "aikwei",
	Short: "Tan Aik Wei's portfolio site",
	Long: `Renders the single-page portfolio of Tan Aik Wei. The same page can be
served over HTTP, exported as static files or previewed in the terminal
with the scroll-driven light/dark theme.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (default $AIKWEI_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logPretty, "log-pretty", false, "human readable logs")
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-pretty") {
		loaded.LogPretty = logPretty
	}

	l, err := logging.Setup(loaded.LogLevel, loaded.LogPretty, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cfg, logger = loaded, l
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
