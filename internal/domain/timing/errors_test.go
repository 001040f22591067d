//go:build unit
// +build unit

package timing

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("%w: %w", ErrKeyRead, os.ErrNotExist)
	err := NewConfigError("load key", cause)

	assert.ErrorIs(t, err, ErrConfiguration)
	assert.ErrorIs(t, err, ErrKeyRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrKeyParse)
	assert.Equal(t, "configuration error: load key: failed to read key file: file does not exist", err.Error())
}

func TestBlockError(t *testing.T) {
	cause := errors.New("crypto/rsa: decryption error")
	err := error(&BlockError{Iteration: 7, Err: fmt.Errorf("%w: %w", ErrDecrypt, cause)})

	assert.ErrorIs(t, err, ErrDecrypt)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrConfiguration)
	assert.Equal(t, "block 7: failed to decrypt: crypto/rsa: decryption error", err.Error())

	var blockErr *BlockError
	assert.True(t, errors.As(fmt.Errorf("measure: %w", err), &blockErr))
	assert.Equal(t, 7, blockErr.Iteration)
}

func TestSampleNanoseconds(t *testing.T) {
	assert.Equal(t, uint64(42), Sample{Duration: 42}.Nanoseconds())
	assert.Equal(t, uint64(0), Sample{Duration: -time.Second}.Nanoseconds())
}

func TestDecrypterFunc(t *testing.T) {
	var d Decrypter = DecrypterFunc(func(c []byte) ([]byte, error) {
		return c[1:], nil
	})

	out, err := d.Decrypt([]byte{0, 1, 2})
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, out)
}
