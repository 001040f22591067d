package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/logger"
)

// pkcs1v15Overhead is the minimum padding length of a PKCS#1 v1.5 encryption block
const pkcs1v15Overhead = 11

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified bit size.
func (r *rsaProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	r.logger.Debugf("Generated %d bit RSA key pair", keySize)
	return privateKey, &privateKey.PublicKey, nil
}

// EncryptBlock encrypts a single message with PKCS#1 v1.5 padding.
func (r *rsaProcessor) EncryptBlock(message []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	if maxSize := publicKey.Size() - pkcs1v15Overhead; len(message) > maxSize {
		return nil, fmt.Errorf("message of %d bytes exceeds the %d byte limit of the key", len(message), maxSize)
	}

	block, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, message)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}
	return block, nil
}

// SavePrivateKeyToFile saves the RSA private key to a PEM-encoded file (PKCS#1 format).
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *rsa.PrivateKey, filename string) error {
	if privateKey == nil {
		return errors.New("private key cannot be nil")
	}

	privKeyPem := &pem.Block{
		Type:  pemTypeRSAPrivateKey,
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}

	if err := writePEMFile(filename, privKeyPem); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}

	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// SavePublicKeyToFile saves the RSA public key to a PEM-encoded file (PKIX format).
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *rsa.PublicKey, filename string) error {
	if publicKey == nil {
		return errors.New("public key cannot be nil")
	}

	pubKeyBytes, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("failed to marshal public key: %w", err)
	}

	pubKeyPem := &pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubKeyBytes,
	}

	if err := writePEMFile(filename, pubKeyPem); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}

	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

func writePEMFile(filename string, block *pem.Block) (err error) {
	file, err := os.OpenFile(filepath.Clean(filename), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close key file: %w", cerr)
		}
	}()

	if err := pem.Encode(file, block); err != nil {
		return fmt.Errorf("failed to encode key: %w", err)
	}
	return nil
}
