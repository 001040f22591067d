//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/domain/timing"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd, err := NewRootCommand()
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), err
}

type measureFixture struct {
	dir     string
	keyPath string
	input   string
	output  string
}

func newMeasureFixture(t *testing.T, input []byte) measureFixture {
	t.Helper()

	dir := t.TempDir()
	f := measureFixture{
		dir:     dir,
		keyPath: testutil.WritePKCS1KeyFile(t, dir, testutil.SharedRSAKey(t)),
		input:   filepath.Join(dir, "ciphertexts.bin"),
		output:  filepath.Join(dir, "timings.txt"),
	}
	require.NoError(t, testutil.CreateTestFile(f.input, input))
	return f
}

func (f measureFixture) args(extra ...string) []string {
	return append([]string{"measure", "-i", f.input, "-o", f.output, "-k", f.keyPath}, extra...)
}

func tenMessages() [][]byte {
	messages := make([][]byte, 10)
	for i := range messages {
		messages[i] = []byte("sample " + strconv.Itoa(i))
	}
	return messages
}

func TestMeasureCmd_TenBlocks(t *testing.T) {
	input := testutil.EncryptBlocks(t, &testutil.SharedRSAKey(t).PublicKey, tenMessages()...)
	require.Len(t, input, 2560)
	f := newMeasureFixture(t, input)

	_, err := execute(t, f.args()...)
	require.NoError(t, err)

	lines := testutil.ReadTraceLines(t, f.output)
	require.Len(t, lines, 10)
	for _, line := range lines {
		_, err := strconv.ParseUint(line, 10, 64)
		assert.NoError(t, err)
	}
}

func TestMeasureCmd_TooSmallInput(t *testing.T) {
	f := newMeasureFixture(t, make([]byte, 100))

	_, err := execute(t, f.args()...)
	require.Error(t, err)
	assert.ErrorIs(t, err, timing.ErrEmptyInput)

	content, readErr := os.ReadFile(f.output)
	require.NoError(t, readErr)
	assert.Empty(t, content)
}

func TestMeasureCmd_EmptyInput(t *testing.T) {
	f := newMeasureFixture(t, nil)

	_, err := execute(t, f.args()...)
	assert.ErrorIs(t, err, timing.ErrEmptyInput)
}

func TestMeasureCmd_TrailingBytesIgnored(t *testing.T) {
	input := testutil.EncryptBlocks(t, &testutil.SharedRSAKey(t).PublicKey, tenMessages()[:4]...)
	f := newMeasureFixture(t, append(input, 1, 2, 3))

	_, err := execute(t, f.args()...)
	require.NoError(t, err)
	assert.Len(t, testutil.ReadTraceLines(t, f.output), 4)
}

func TestMeasureCmd_CorruptedBlock(t *testing.T) {
	input := testutil.EncryptBlocks(t, &testutil.SharedRSAKey(t).PublicKey, tenMessages()...)
	copy(input[2*256:3*256], make([]byte, 256))
	f := newMeasureFixture(t, input)

	_, err := execute(t, f.args()...)
	require.Error(t, err)
	assert.ErrorIs(t, err, timing.ErrDecrypt)
	assert.Contains(t, err.Error(), "block 3")

	var blockErr *timing.BlockError
	require.ErrorAs(t, err, &blockErr)
	assert.Equal(t, 3, blockErr.Iteration)
	assert.Len(t, testutil.ReadTraceLines(t, f.output), 2)
}

func TestMeasureCmd_Echo(t *testing.T) {
	input := testutil.EncryptBlocks(t, &testutil.SharedRSAKey(t).PublicKey, []byte("hello"), []byte{0xff, 0x01})
	f := newMeasureFixture(t, input)

	out, err := execute(t, f.args("--echo")...)
	require.NoError(t, err)
	assert.Contains(t, out, "hello\nFF01")
}

func TestMeasureCmd_ConfigurationErrors(t *testing.T) {
	input := testutil.EncryptBlocks(t, &testutil.SharedRSAKey(t).PublicKey, []byte("x"))

	t.Run("missing key file", func(t *testing.T) {
		f := newMeasureFixture(t, input)
		f.keyPath = filepath.Join(f.dir, "missing.pem")

		_, err := execute(t, f.args()...)
		assert.ErrorIs(t, err, timing.ErrConfiguration)
		assert.ErrorIs(t, err, timing.ErrKeyRead)
	})

	t.Run("non RSA key", func(t *testing.T) {
		f := newMeasureFixture(t, input)
		f.keyPath = testutil.WriteECKeyFile(t, f.dir)

		_, err := execute(t, f.args()...)
		assert.ErrorIs(t, err, timing.ErrUnsupportedKeyType)
	})

	t.Run("missing input file", func(t *testing.T) {
		f := newMeasureFixture(t, input)
		f.input = filepath.Join(f.dir, "missing.bin")

		_, err := execute(t, f.args()...)
		assert.ErrorIs(t, err, timing.ErrInputOpen)
	})

	t.Run("uncreatable output file", func(t *testing.T) {
		f := newMeasureFixture(t, input)
		f.output = filepath.Join(f.dir, "no-such-dir", "timings.txt")

		_, err := execute(t, f.args()...)
		assert.ErrorIs(t, err, timing.ErrOutputCreate)
	})

	t.Run("missing required flag", func(t *testing.T) {
		f := newMeasureFixture(t, input)

		_, err := execute(t, "measure", "-i", f.input, "-o", f.output)
		assert.Error(t, err)
	})

	t.Run("output equals input", func(t *testing.T) {
		f := newMeasureFixture(t, input)

		_, err := execute(t, "measure", "-i", f.input, "-o", f.input, "-k", f.keyPath)
		assert.Error(t, err)
	})
}

func TestGenerateKeysThenInputThenMeasure(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "generate-rsa-keys", "--key-size", "2048", "--key-dir", dir)
	require.NoError(t, err)

	privateKeys, err := filepath.Glob(filepath.Join(dir, "*-private-key.pem"))
	require.NoError(t, err)
	require.Len(t, privateKeys, 1)
	publicKeys, err := filepath.Glob(filepath.Join(dir, "*-public-key.pem"))
	require.NoError(t, err)
	require.Len(t, publicKeys, 1)

	input := filepath.Join(dir, "ciphertexts.bin")
	_, err = execute(t, "generate-input", "-k", privateKeys[0], "-o", input, "--blocks", "12", "--message-size", "48")
	require.NoError(t, err)

	info, err := os.Stat(input)
	require.NoError(t, err)
	assert.Equal(t, int64(12*256), info.Size())

	output := filepath.Join(dir, "timings.txt")
	_, err = execute(t, "measure", "-i", input, "-o", output, "-k", privateKeys[0], "--progress-interval", "5")
	require.NoError(t, err)
	assert.Len(t, testutil.ReadTraceLines(t, output), 12)
}

func TestGenerateRSAKeysCmd_InvalidKeySize(t *testing.T) {
	_, err := execute(t, "generate-rsa-keys", "--key-size", "1000", "--key-dir", t.TempDir())
	assert.Error(t, err)
}

func TestGenerateInputCmd_MessageTooLong(t *testing.T) {
	dir := t.TempDir()
	keyPath := testutil.WritePKCS1KeyFile(t, dir, testutil.SharedRSAKey(t))

	_, err := execute(t, "generate-input", "-k", keyPath, "-o", filepath.Join(dir, "in.bin"), "--blocks", "1", "--message-size", "250")
	assert.Error(t, err)
}
