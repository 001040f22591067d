package app

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/domain/timing"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/logger"
)

// inputGenerationService implements the InputGenerationService interface
type inputGenerationService struct {
	rsaProcessor cryptoalg.RSAProcessor
	publicKey    *rsa.PublicKey
	random       io.Reader
	logger       logger.Logger
}

// NewInputGenerationService creates a new inputGenerationService encrypting under publicKey
func NewInputGenerationService(rsaProcessor cryptoalg.RSAProcessor, publicKey *rsa.PublicKey, logger logger.Logger) (timing.InputGenerationService, error) {
	if rsaProcessor == nil {
		return nil, errors.New("rsa processor cannot be nil")
	}
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &inputGenerationService{
		rsaProcessor: rsaProcessor,
		publicKey:    publicKey,
		random:       rand.Reader,
		logger:       logger,
	}, nil
}

// Generate writes blocks ciphertexts of fresh random messages to w and returns the number of bytes written.
func (s *inputGenerationService) Generate(w io.Writer, blocks int, messageSize int) (int, error) {
	if blocks <= 0 {
		return 0, fmt.Errorf("block count must be positive, got %d", blocks)
	}
	if messageSize < 0 {
		return 0, fmt.Errorf("message size cannot be negative, got %d", messageSize)
	}

	message := make([]byte, messageSize)
	written := 0

	for i := 1; i <= blocks; i++ {
		if _, err := io.ReadFull(s.random, message); err != nil {
			return written, fmt.Errorf("failed to generate message %d: %w", i, err)
		}

		block, err := s.rsaProcessor.EncryptBlock(message, s.publicKey)
		if err != nil {
			return written, fmt.Errorf("failed to encrypt message %d: %w", i, err)
		}

		n, err := w.Write(block)
		written += n
		if err != nil {
			return written, fmt.Errorf("failed to write block %d: %w", i, err)
		}

		if i%timing.DefaultProgressInterval == 0 {
			s.logger.Infof("generated %d blocks", i)
		}
	}

	return written, nil
}
