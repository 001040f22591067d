package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/app"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/domain/timing"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/infrastructure/tracesink"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/config"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/hostinfo"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// MeasureCommandHandler encapsulates the decryption timing run via CLI.
type MeasureCommandHandler struct {
	logger logger.Logger
	stdout io.Writer
}

// NewMeasureCommandHandler initializes a MeasureCommandHandler for cmd
func NewMeasureCommandHandler(cmd *cobra.Command) (*MeasureCommandHandler, error) {
	loggerInstance, err := setupLogger(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &MeasureCommandHandler{
		logger: loggerInstance,
		stdout: cmd.OutOrStdout(),
	}, nil
}

// MeasureCmd runs the cobra measure command
func MeasureCmd(cmd *cobra.Command, _ []string) error {
	settings, err := readMeasureSettings(cmd)
	if err != nil {
		return err
	}

	handler, err := NewMeasureCommandHandler(cmd)
	if err != nil {
		return err
	}

	return handler.Measure(settings)
}

func readMeasureSettings(cmd *cobra.Command) (*config.MeasureSettings, error) {
	flags := cmd.Flags()
	settings := &config.MeasureSettings{}

	var err error
	if settings.InputPath, err = flags.GetString("input"); err != nil {
		return nil, fmt.Errorf("invalid input flag: %w", err)
	}
	if settings.OutputPath, err = flags.GetString("output"); err != nil {
		return nil, fmt.Errorf("invalid output flag: %w", err)
	}
	if settings.KeyPath, err = flags.GetString("key"); err != nil {
		return nil, fmt.Errorf("invalid key flag: %w", err)
	}
	if settings.Echo, err = flags.GetBool("echo"); err != nil {
		return nil, fmt.Errorf("invalid echo flag: %w", err)
	}
	if settings.ProgressInterval, err = flags.GetInt("progress-interval"); err != nil {
		return nil, fmt.Errorf("invalid progress-interval flag: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Measure decrypts every block of the input file and writes one duration per block to the output file.
// The output keeps whatever was written before a failure.
func (h *MeasureCommandHandler) Measure(settings *config.MeasureSettings) (err error) {
	h.logger.Info("run: ", uuid.New().String())
	h.logger.Info(hostinfo.Describe().String())
	h.logger.Info("input: ", settings.InputPath)
	h.logger.Info("output: ", settings.OutputPath)
	h.logger.Info("keyfile: ", settings.KeyPath)

	inputFile, err := os.Open(filepath.Clean(settings.InputPath))
	if err != nil {
		return timing.NewConfigError("open input", fmt.Errorf("%w: %w", timing.ErrInputOpen, err))
	}
	defer func() {
		if cerr := inputFile.Close(); cerr != nil {
			h.logger.Warnf("failed to close input file: %v", cerr)
		}
	}()

	outputFile, err := os.OpenFile(filepath.Clean(settings.OutputPath), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return timing.NewConfigError("create output", fmt.Errorf("%w: %w", timing.ErrOutputCreate, err))
	}
	defer func() {
		if cerr := outputFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing output: %w", timing.ErrTraceWrite, cerr)
		}
	}()

	key, err := cryptography.LoadRSAPrivateKey(settings.KeyPath)
	if err != nil {
		return err
	}
	h.logger.Infof("key length: %d bits (%d bytes)", key.ModulusBitLength(), key.ModulusByteLength())

	decrypter, err := key.NewPKCS1v15Decrypter()
	if err != nil {
		return err
	}

	recorder, err := tracesink.NewTraceWriter(outputFile)
	if err != nil {
		return timing.NewConfigError("create trace writer", err)
	}

	opts := []app.TimingOption{app.WithProgressInterval(settings.ProgressInterval)}
	if settings.Echo {
		echo, err := tracesink.NewConsoleEcho(h.stdout)
		if err != nil {
			return timing.NewConfigError("create console echo", err)
		}
		opts = append(opts, app.WithEcho(echo))
	}

	service, err := app.NewDecryptTimingService(decrypter, key.ModulusByteLength(), recorder, h.logger, opts...)
	if err != nil {
		return err
	}

	summary, err := service.Run(inputFile)
	if err != nil {
		return fmt.Errorf("measurement failed: %w", err)
	}

	h.logger.Infof("recorded %d samples of %d byte blocks", summary.Blocks, summary.BlockSize)
	return nil
}

// InitMeasureCommands registers the decryption timing command
func InitMeasureCommands(rootCmd *cobra.Command) error {
	var measureCmd = &cobra.Command{
		Use:   "measure",
		Short: "Measure RSA PKCS#1 v1.5 decryption timings",
		Long: `Decrypts every key-sized block of the input file with the private key and
writes the duration of each decryption in nanoseconds to the output file, one per line.
Trailing bytes that do not form a whole block are ignored.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         MeasureCmd,
	}
	measureCmd.Flags().StringP("input", "i", "", "Input file of concatenated ciphertext blocks")
	measureCmd.Flags().StringP("output", "o", "", "Output file receiving one duration per line")
	measureCmd.Flags().StringP("key", "k", "", "PEM-encoded RSA private key file")
	measureCmd.Flags().Bool("echo", false, "Print every decrypted plaintext (text if valid UTF-8, hex otherwise)")
	measureCmd.Flags().Int("progress-interval", timing.DefaultProgressInterval, "Blocks between two progress lines")

	for _, name := range []string{"input", "output", "key"} {
		if err := measureCmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s flag as required: %w", name, err)
		}
	}

	rootCmd.AddCommand(measureCmd)
	return nil
}
