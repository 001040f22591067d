package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKeySize2048 is the modulus size of the shared test key
const TestKeySize2048 = 2048

var (
	sharedKey     *rsa.PrivateKey
	sharedKeyErr  error
	sharedKeyOnce sync.Once
)

// SharedRSAKey returns a 2048 bit key generated once per test binary.
func SharedRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	sharedKeyOnce.Do(func() {
		sharedKey, sharedKeyErr = rsa.GenerateKey(rand.Reader, TestKeySize2048)
	})
	require.NoError(t, sharedKeyErr)
	return sharedKey
}

// WritePKCS1KeyFile writes key as an "RSA PRIVATE KEY" PEM file in dir and returns its path.
func WritePKCS1KeyFile(t *testing.T, dir string, key *rsa.PrivateKey) string {
	t.Helper()

	path := filepath.Join(dir, "private-key-pkcs1.pem")
	data := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	require.NoError(t, CreateTestFile(path, data))
	return path
}

// WritePKCS8KeyFile writes key as a "PRIVATE KEY" PEM file in dir and returns its path.
func WritePKCS8KeyFile(t *testing.T, dir string, key interface{}) string {
	t.Helper()

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	path := filepath.Join(dir, "private-key-pkcs8.pem")
	require.NoError(t, CreateTestFile(path, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})))
	return path
}

// WriteECKeyFile writes a fresh P-256 key as an "EC PRIVATE KEY" PEM file in dir.
func WriteECKeyFile(t *testing.T, dir string) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	path := filepath.Join(dir, "private-key-ec.pem")
	require.NoError(t, CreateTestFile(path, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der})))
	return path
}

// EncryptBlocks encrypts each message with PKCS#1 v1.5 and concatenates the ciphertexts.
func EncryptBlocks(t *testing.T, pub *rsa.PublicKey, messages ...[]byte) []byte {
	t.Helper()

	var out []byte
	for _, m := range messages {
		c, err := rsa.EncryptPKCS1v15(rand.Reader, pub, m)
		require.NoError(t, err)
		out = append(out, c...)
	}
	return out
}
