package commands

import (
	"fmt"
	"path/filepath"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// GenerateRSAKeysCmd generates an RSA key pair and persists it in the selected directory
func GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) error {
	settings := &config.KeyGenerationSettings{}

	var err error
	if settings.KeySize, err = cmd.Flags().GetInt("key-size"); err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	if settings.KeyDir, err = cmd.Flags().GetString("key-dir"); err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	loggerInstance, err := setupLogger(cmd)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create RSA processor: %w", err)
	}

	privateKey, publicKey, err := rsaProcessor.GenerateKeys(settings.KeySize)
	if err != nil {
		return err
	}

	uniqueID := uuid.New().String()

	privateKeyFilePath := filepath.Join(settings.KeyDir, fmt.Sprintf("%s-private-key.pem", uniqueID))
	if err := rsaProcessor.SavePrivateKeyToFile(privateKey, privateKeyFilePath); err != nil {
		return err
	}

	publicKeyFilePath := filepath.Join(settings.KeyDir, fmt.Sprintf("%s-public-key.pem", uniqueID))
	if err := rsaProcessor.SavePublicKeyToFile(publicKey, publicKeyFilePath); err != nil {
		return err
	}

	return nil
}

// InitRSACommands registers RSA key-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	var generateRSAKeysCmd = &cobra.Command{
		Use:          "generate-rsa-keys",
		Short:        "Generate RSA keys",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().IntP("key-size", "", 2048, "RSA key size in bits (1024, 2048, 3072 or 4096)")
	generateRSAKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the RSA keys")
	rootCmd.AddCommand(generateRSAKeysCmd)

	return nil
}
