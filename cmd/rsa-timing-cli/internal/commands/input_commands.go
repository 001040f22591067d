package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/app"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/config"

	"github.com/spf13/cobra"
)

// GenerateInputCmd writes a file of valid PKCS#1 v1.5 ciphertext blocks for the given key
func GenerateInputCmd(cmd *cobra.Command, _ []string) (err error) {
	flags := cmd.Flags()
	settings := &config.InputGenerationSettings{}

	if settings.KeyPath, err = flags.GetString("key"); err != nil {
		return fmt.Errorf("invalid key flag: %w", err)
	}
	if settings.OutputPath, err = flags.GetString("output"); err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}
	if settings.Blocks, err = flags.GetInt("blocks"); err != nil {
		return fmt.Errorf("invalid blocks flag: %w", err)
	}
	if settings.MessageSize, err = flags.GetInt("message-size"); err != nil {
		return fmt.Errorf("invalid message-size flag: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	loggerInstance, err := setupLogger(cmd)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	key, err := cryptography.LoadRSAPrivateKey(settings.KeyPath)
	if err != nil {
		return err
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create RSA processor: %w", err)
	}

	service, err := app.NewInputGenerationService(rsaProcessor, key.PublicKey(), loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create input generation service: %w", err)
	}

	outputFile, err := os.OpenFile(filepath.Clean(settings.OutputPath), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outputFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	written, err := service.Generate(outputFile, settings.Blocks, settings.MessageSize)
	if err != nil {
		return err
	}

	loggerInstance.Infof("wrote %d blocks (%d bytes) to %s", settings.Blocks, written, settings.OutputPath)
	return nil
}

// InitInputCommands registers the ciphertext input generation command
func InitInputCommands(rootCmd *cobra.Command) error {
	var generateInputCmd = &cobra.Command{
		Use:          "generate-input",
		Short:        "Generate a ciphertext block file for the measure command",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         GenerateInputCmd,
	}
	generateInputCmd.Flags().StringP("key", "k", "", "PEM-encoded RSA private key file whose public half encrypts the blocks")
	generateInputCmd.Flags().StringP("output", "o", "", "Path of the ciphertext block file")
	generateInputCmd.Flags().Int("blocks", 10000, "Number of ciphertext blocks")
	generateInputCmd.Flags().Int("message-size", 32, "Length of each random plaintext message in bytes")

	for _, name := range []string{"key", "output"} {
		if err := generateInputCmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s flag as required: %w", name, err)
		}
	}

	rootCmd.AddCommand(generateInputCmd)
	return nil
}
