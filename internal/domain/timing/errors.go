package timing

import (
	"errors"
	"fmt"
)

// Configuration class errors, raised before any block is touched
var (
	ErrConfiguration      = errors.New("configuration error")
	ErrKeyRead            = errors.New("failed to read key file")
	ErrKeyParse           = errors.New("failed to parse private key from PEM file")
	ErrUnsupportedKeyType = errors.New("the provided key is not an RSA key")
	ErrPaddingConfig      = errors.New("failed to set RSA decrypter padding")
	ErrInputOpen          = errors.New("failed to open input file")
	ErrOutputCreate       = errors.New("failed to create output file")
)

// Run errors
var (
	ErrEmptyInput = errors.New("failed to read input file: too small")
	ErrDecrypt    = errors.New("failed to decrypt")
	ErrTraceWrite = errors.New("failed to write duration")
	ErrInputRead  = errors.New("failed to read input block")
)

// ConfigError reports a setup failure. It matches both ErrConfiguration and its cause.
type ConfigError struct {
	Op  string
	Err error
}

// NewConfigError wraps a cause into a ConfigError for the given operation
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrConfiguration, e.Op, e.Err)
}

// Unwrap exposes the configuration class and the underlying cause
func (e *ConfigError) Unwrap() []error {
	return []error{ErrConfiguration, e.Err}
}

// BlockError reports a fatal failure on a specific block.
type BlockError struct {
	// Iteration is the 1-based index of the failing block
	Iteration int
	Err       error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d: %v", e.Iteration, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
