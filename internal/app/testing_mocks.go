//go:build unit
// +build unit

package app

import (
	"crypto/rsa"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTraceRecorder is a mock implementation of TraceRecorder
type MockTraceRecorder struct {
	mock.Mock
}

func (m *MockTraceRecorder) Record(d time.Duration) error {
	args := m.Called(d)
	return args.Error(0)
}

// MockPlaintextEcho is a mock implementation of PlaintextEcho
type MockPlaintextEcho struct {
	mock.Mock
}

func (m *MockPlaintextEcho) Echo(plaintext []byte) error {
	args := m.Called(plaintext)
	return args.Error(0)
}

// MockRSAProcessor is a mock implementation of RSAProcessor
type MockRSAProcessor struct {
	mock.Mock
}

func (m *MockRSAProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	args := m.Called(keySize)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*rsa.PrivateKey), args.Get(1).(*rsa.PublicKey), args.Error(2)
}

func (m *MockRSAProcessor) EncryptBlock(message []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	args := m.Called(message, publicKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRSAProcessor) SavePrivateKeyToFile(privateKey *rsa.PrivateKey, filename string) error {
	args := m.Called(privateKey, filename)
	return args.Error(0)
}

func (m *MockRSAProcessor) SavePublicKeyToFile(publicKey *rsa.PublicKey, filename string) error {
	args := m.Called(publicKey, filename)
	return args.Error(0)
}
