//go:build unit
// +build unit

package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRSAProcessor(t *testing.T) cryptoalg.RSAProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewRSAProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestNewRSAProcessor_NilLogger(t *testing.T) {
	processor, err := NewRSAProcessor(nil)
	assert.Error(t, err)
	assert.Nil(t, processor)
}

func TestRSAProcessor(t *testing.T) {
	processor := setupRSAProcessor(t)

	t.Run("GenerateKeys", func(t *testing.T) {
		privateKey, publicKey, err := processor.GenerateKeys(testutil.TestKeySize2048)
		require.NoError(t, err)
		assert.IsType(t, &rsa.PublicKey{}, publicKey)
		assert.Equal(t, testutil.TestKeySize2048, privateKey.N.BitLen())
	})

	t.Run("EncryptBlockHasModulusLength", func(t *testing.T) {
		privateKey := testutil.SharedRSAKey(t)

		block, err := processor.EncryptBlock([]byte("This is a secret message"), &privateKey.PublicKey)
		require.NoError(t, err)
		assert.Len(t, block, privateKey.Size())

		plain, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, block)
		require.NoError(t, err)
		assert.Equal(t, []byte("This is a secret message"), plain)
	})

	t.Run("EncryptBlockTooLarge", func(t *testing.T) {
		privateKey := testutil.SharedRSAKey(t)

		_, err := processor.EncryptBlock(make([]byte, privateKey.Size()-10), &privateKey.PublicKey)
		assert.Error(t, err)

		_, err = processor.EncryptBlock(make([]byte, privateKey.Size()-11), &privateKey.PublicKey)
		assert.NoError(t, err)
	})

	t.Run("EncryptBlockNilKey", func(t *testing.T) {
		_, err := processor.EncryptBlock([]byte("x"), nil)
		assert.Error(t, err)
	})

	t.Run("SaveAndLoadPrivateKey", func(t *testing.T) {
		privFile := filepath.Join(t.TempDir(), "private.pem")
		privateKey := testutil.SharedRSAKey(t)

		require.NoError(t, processor.SavePrivateKeyToFile(privateKey, privFile))

		loaded, err := LoadRSAPrivateKey(privFile)
		require.NoError(t, err)
		assert.Equal(t, privateKey.N, loaded.PublicKey().N)
		assert.Equal(t, privateKey.E, loaded.PublicKey().E)
	})

	t.Run("SavePublicKey", func(t *testing.T) {
		pubFile := filepath.Join(t.TempDir(), "public.pem")
		privateKey := testutil.SharedRSAKey(t)

		assert.NoError(t, processor.SavePublicKeyToFile(&privateKey.PublicKey, pubFile))
		assert.FileExists(t, pubFile)
	})

	t.Run("SavePrivateKeyInvalidPath", func(t *testing.T) {
		err := processor.SavePrivateKeyToFile(testutil.SharedRSAKey(t), "/invalid/path/private.pem")
		assert.Error(t, err)
	})

	t.Run("SavePublicKeyInvalidPath", func(t *testing.T) {
		err := processor.SavePublicKeyToFile(&testutil.SharedRSAKey(t).PublicKey, "/invalid/path/public.pem")
		assert.Error(t, err)
	})
}
