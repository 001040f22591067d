package app

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/domain/timing"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/infrastructure/blockio"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/logger"
)

// TimingOption customizes a decryptTimingService
type TimingOption func(*decryptTimingService)

// WithEcho renders every plaintext through echo
func WithEcho(echo timing.PlaintextEcho) TimingOption {
	return func(s *decryptTimingService) {
		s.echo = echo
	}
}

// WithProgressInterval sets the number of blocks between progress lines
func WithProgressInterval(n int) TimingOption {
	return func(s *decryptTimingService) {
		s.progressInterval = n
	}
}

// WithClock replaces the monotonic wall clock used to time decrypt calls
func WithClock(now func() time.Time) TimingOption {
	return func(s *decryptTimingService) {
		s.now = now
	}
}

// decryptTimingService implements the DecryptTimingService interface
type decryptTimingService struct {
	decrypter        timing.Decrypter
	blockSize        int
	recorder         timing.TraceRecorder
	echo             timing.PlaintextEcho
	progressInterval int
	now              func() time.Time
	logger           logger.Logger
}

// NewDecryptTimingService creates a new decryptTimingService instance.
// Invalid wiring is reported as a *timing.ConfigError before any block is read.
func NewDecryptTimingService(
	decrypter timing.Decrypter,
	blockSize int,
	recorder timing.TraceRecorder,
	logger logger.Logger,
	opts ...TimingOption,
) (timing.DecryptTimingService, error) {
	s := &decryptTimingService{
		decrypter:        decrypter,
		blockSize:        blockSize,
		recorder:         recorder,
		progressInterval: timing.DefaultProgressInterval,
		now:              time.Now,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	switch {
	case s.decrypter == nil:
		return nil, timing.NewConfigError("create timing service", errors.New("decrypter cannot be nil"))
	case s.blockSize <= 0:
		return nil, timing.NewConfigError("create timing service", fmt.Errorf("block size must be positive, got %d", s.blockSize))
	case s.recorder == nil:
		return nil, timing.NewConfigError("create timing service", errors.New("trace recorder cannot be nil"))
	case s.logger == nil:
		return nil, timing.NewConfigError("create timing service", errors.New("logger cannot be nil"))
	case s.progressInterval <= 0:
		return nil, timing.NewConfigError("create timing service", fmt.Errorf("progress interval must be positive, got %d", s.progressInterval))
	case s.now == nil:
		return nil, timing.NewConfigError("create timing service", errors.New("clock cannot be nil"))
	}

	return s, nil
}

// Run reads, decrypts and records blocks until the stream ends or a block fails.
// A stream that ends on a block boundary or inside a trailing partial block
// finishes the run, provided at least one block was processed before.
func (s *decryptTimingService) Run(input io.Reader) (*timing.RunSummary, error) {
	reader, err := blockio.NewBlockReader(input, s.blockSize)
	if err != nil {
		return nil, timing.NewConfigError("create block reader", err)
	}

	// The whole run stays on one OS thread so the scheduler cannot migrate it mid-sample
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	summary := &timing.RunSummary{BlockSize: s.blockSize}

	for {
		iteration := summary.Blocks + 1

		block, err := reader.Next()
		if err != nil {
			return s.finish(summary, iteration, err)
		}

		sample := MeasureDecrypt(s.decrypter, block, s.now)
		if sample.Err != nil {
			return nil, &timing.BlockError{Iteration: iteration, Err: fmt.Errorf("%w: %w", timing.ErrDecrypt, sample.Err)}
		}

		if err := s.recorder.Record(sample.Duration); err != nil {
			return nil, &timing.BlockError{Iteration: iteration, Err: wrapTraceWrite(err)}
		}

		if s.echo != nil {
			if err := s.echo.Echo(sample.Plaintext); err != nil {
				s.logger.Warnf("echo of block %d failed: %v", iteration, err)
			}
		}

		summary.Blocks = iteration
		if summary.Blocks%s.progressInterval == 0 {
			s.logger.Infof("iteration %d", summary.Blocks)
		}
	}
}

// finish classifies the read result that ended the loop.
func (s *decryptTimingService) finish(summary *timing.RunSummary, iteration int, readErr error) (*timing.RunSummary, error) {
	var partial *blockio.PartialBlockError

	switch {
	case errors.Is(readErr, io.EOF):
	case errors.As(readErr, &partial):
		summary.DiscardedBytes = partial.Got
	default:
		return nil, &timing.BlockError{Iteration: iteration, Err: fmt.Errorf("%w: %w", timing.ErrInputRead, readErr)}
	}

	if summary.Blocks == 0 {
		if summary.DiscardedBytes > 0 {
			return nil, fmt.Errorf("%w: %d bytes is less than one %d byte block", timing.ErrEmptyInput, summary.DiscardedBytes, s.blockSize)
		}
		return nil, timing.ErrEmptyInput
	}

	if summary.DiscardedBytes > 0 {
		s.logger.Debugf("discarded %d trailing bytes after block %d", summary.DiscardedBytes, summary.Blocks)
	}
	return summary, nil
}

func wrapTraceWrite(err error) error {
	if errors.Is(err, timing.ErrTraceWrite) {
		return err
	}
	return fmt.Errorf("%w: %w", timing.ErrTraceWrite, err)
}
