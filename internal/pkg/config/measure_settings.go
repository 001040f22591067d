package config

import (
	"fmt"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/validators"
)

// MeasureSettings holds the inputs of a decryption timing run
type MeasureSettings struct {
	InputPath        string `mapstructure:"input" validate:"required"`
	OutputPath       string `mapstructure:"output" validate:"required,nefield=InputPath"`
	KeyPath          string `mapstructure:"key" validate:"required"`
	Echo             bool   `mapstructure:"echo"`
	ProgressInterval int    `mapstructure:"progress_interval" validate:"min=1"`
}

// Validate checks that all fields in MeasureSettings are valid
func (s *MeasureSettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MeasureSettings: %w", err)
	}
	return nil
}

// KeyGenerationSettings holds the inputs for generating an RSA key pair
type KeyGenerationSettings struct {
	KeySize int    `mapstructure:"key_size" validate:"rsakeysize"`
	KeyDir  string `mapstructure:"key_dir" validate:"required"`
}

// Validate checks that all fields in KeyGenerationSettings are valid
func (s *KeyGenerationSettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenerationSettings: %w", err)
	}
	return nil
}

// InputGenerationSettings holds the inputs for writing a ciphertext block file
type InputGenerationSettings struct {
	KeyPath     string `mapstructure:"key" validate:"required"`
	OutputPath  string `mapstructure:"output" validate:"required"`
	Blocks      int    `mapstructure:"blocks" validate:"min=1"`
	MessageSize int    `mapstructure:"message_size" validate:"min=0"`
}

// Validate checks that all fields in InputGenerationSettings are valid.
// The upper bound of MessageSize depends on the key and is enforced when encrypting.
func (s *InputGenerationSettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for InputGenerationSettings: %w", err)
	}
	return nil
}
