package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the rsa-timing-cli command tree
func NewRootCommand() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "rsa-timing-cli",
		Short: "RSA PKCS#1 v1.5 decryption timing harness",
		Long: `rsa-timing-cli measures how long RSA PKCS#1 v1.5 decryption takes for every
ciphertext block of an input file and writes the durations as a newline-delimited
trace of nanoseconds for timing side-channel analysis.

It also generates RSA key pairs and valid ciphertext block files to measure.`,
		SilenceErrors: true,
	}

	InitLoggingFlags(rootCmd)

	if err := InitMeasureCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to initialize measure commands: %w", err)
	}

	if err := InitRSACommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := InitInputCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to initialize input commands: %w", err)
	}

	return rootCmd, nil
}
