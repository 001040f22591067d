package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/domain/timing"
)

const (
	pemTypeRSAPrivateKey = "RSA PRIVATE KEY"
	pemTypePrivateKey    = "PRIVATE KEY"
	pemTypeECPrivateKey  = "EC PRIVATE KEY"
)

// RSAKey is the key handle of a measurement run. It is read-only after loading.
type RSAKey struct {
	key *rsa.PrivateKey
}

// LoadRSAPrivateKey reads a PEM-encoded RSA private key in PKCS#1 or PKCS#8 format.
// All failures are returned as *timing.ConfigError.
func LoadRSAPrivateKey(path string) (*RSAKey, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, timing.NewConfigError("load key", fmt.Errorf("%w: %w", timing.ErrKeyRead, err))
	}

	key, err := ParseRSAPrivateKeyPEM(data)
	if err != nil {
		return nil, timing.NewConfigError("load key", err)
	}
	return key, nil
}

// ParseRSAPrivateKeyPEM parses the first PEM block of data as an RSA private key.
func ParseRSAPrivateKeyPEM(data []byte) (*RSAKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", timing.ErrKeyParse)
	}

	switch block.Type {
	case pemTypeRSAPrivateKey:
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", timing.ErrKeyParse, err)
		}
		return NewRSAKey(key)
	case pemTypeECPrivateKey:
		if _, err := x509.ParseECPrivateKey(block.Bytes); err != nil {
			return nil, fmt.Errorf("%w: %w", timing.ErrKeyParse, err)
		}
		return nil, fmt.Errorf("%w: found EC private key", timing.ErrUnsupportedKeyType)
	}

	// Anything else goes through PKCS#8, with a PKCS#1 fallback for mislabeled blocks
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		if key, pkcs1Err := x509.ParsePKCS1PrivateKey(block.Bytes); pkcs1Err == nil {
			return NewRSAKey(key)
		}
		return nil, fmt.Errorf("%w: unable to parse %q block in either PKCS#1 or PKCS#8 format: %w", timing.ErrKeyParse, block.Type, err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: found %T", timing.ErrUnsupportedKeyType, parsed)
	}
	return NewRSAKey(key)
}

// NewRSAKey wraps an already parsed private key.
func NewRSAKey(key *rsa.PrivateKey) (*RSAKey, error) {
	if key == nil || key.N == nil || key.N.Sign() <= 0 {
		return nil, fmt.Errorf("%w: missing modulus", timing.ErrKeyParse)
	}
	return &RSAKey{key: key}, nil
}

// ModulusByteLength returns the modulus size rounded up to whole bytes, which is the block size
func (k *RSAKey) ModulusByteLength() int {
	return k.key.Size()
}

// ModulusBitLength returns the exact modulus size in bits
func (k *RSAKey) ModulusBitLength() int {
	return k.key.N.BitLen()
}

// PublicKey returns the public half of the key
func (k *RSAKey) PublicKey() *rsa.PublicKey {
	return &k.key.PublicKey
}

// NewPKCS1v15Decrypter validates the key and binds it to PKCS#1 v1.5 decryption.
// CRT values are precomputed here so no block pays for it.
func (k *RSAKey) NewPKCS1v15Decrypter() (*PKCS1v15Decrypter, error) {
	if err := k.key.Validate(); err != nil {
		return nil, timing.NewConfigError("create decrypter", fmt.Errorf("%w: %w", timing.ErrPaddingConfig, err))
	}
	k.key.Precompute()

	return &PKCS1v15Decrypter{key: k.key}, nil
}

// PKCS1v15Decrypter implements timing.Decrypter with RSAES-PKCS1-v1_5.
type PKCS1v15Decrypter struct {
	key *rsa.PrivateKey
}

// Decrypt removes PKCS#1 v1.5 padding after the RSA private key operation.
func (d *PKCS1v15Decrypter) Decrypt(ciphertext []byte) ([]byte, error) {
	return rsa.DecryptPKCS1v15(rand.Reader, d.key, ciphertext)
}

var _ timing.Decrypter = (*PKCS1v15Decrypter)(nil)
