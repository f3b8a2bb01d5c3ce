package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/baguage/qualtrics-go/internal/config"
	"github.com/baguage/qualtrics-go/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "qualtrics",
		Short: "Manage Qualtrics surveys, panels, distributions and response exports.",
		Long: `qualtrics is a CLI tool for the Qualtrics survey platform.
It covers:
- Survey management (list, fetch, import, activate, delete)
- Panel and recipient management
- Survey distribution and reminders
- Response retrieval and asynchronous response exports

Credentials come from the configuration file or the QUALTRICS_USER and
QUALTRICS_TOKEN environment variables.`,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.String(
		"user",
		"",
		"Qualtrics account user (overrides the configuration file).")

	persistentFlags.String(
		"token",
		"",
		"Qualtrics API token (overrides the configuration file).")

	persistentFlags.StringP(
		"output",
		"o",
		"",
		"directory to save downloaded files.")

	persistentFlags.String(
		"log-level",
		"",
		"log level: debug, info, warn, error.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("user"); flag != nil && flag.Changed {
		cfg.User, _ = flags.GetString("user")
	}

	if flag := flags.Lookup("token"); flag != nil && flag.Changed {
		cfg.Token, _ = flags.GetString("token")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return config.ValidateConfig(cfg)
}
