package commands

import (
	"fmt"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/config"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// InitLoggingFlags registers the logger flags shared by every command
func InitLoggingFlags(rootCmd *cobra.Command) {
	defaults := config.DefaultLoggerSettings()

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", defaults.LogLevel, "Log level (info, debug, error, warning, critical)")
	flags.String("log-type", defaults.LogType, "Log output (console or file)")
	flags.String("log-file", "", "Path of the log file when --log-type=file")
	flags.Int("log-max-size", 10, "Maximum log file size in MB before rotation")
	flags.Int("log-max-backups", 3, "Number of rotated log files to keep")
	flags.Int("log-max-age", 28, "Days to keep rotated log files")
}

// setupLogger initializes the process logger from the persistent flags
func setupLogger(cmd *cobra.Command) (logger.Logger, error) {
	flags := cmd.Flags()
	settings := config.DefaultLoggerSettings()

	var err error
	if settings.LogLevel, err = flags.GetString("log-level"); err != nil {
		return nil, fmt.Errorf("invalid log-level flag: %w", err)
	}
	if settings.LogType, err = flags.GetString("log-type"); err != nil {
		return nil, fmt.Errorf("invalid log-type flag: %w", err)
	}
	if settings.FilePath, err = flags.GetString("log-file"); err != nil {
		return nil, fmt.Errorf("invalid log-file flag: %w", err)
	}
	if settings.MaxSize, err = flags.GetInt("log-max-size"); err != nil {
		return nil, fmt.Errorf("invalid log-max-size flag: %w", err)
	}
	if settings.MaxBackups, err = flags.GetInt("log-max-backups"); err != nil {
		return nil, fmt.Errorf("invalid log-max-backups flag: %w", err)
	}
	if settings.MaxAge, err = flags.GetInt("log-max-age"); err != nil {
		return nil, fmt.Errorf("invalid log-max-age flag: %w", err)
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
