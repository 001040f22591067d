package timing

import (
	"io"
	"time"
)

// Decrypter is the measured decrypt capability, bound to PKCS#1 v1.5 padding.
// Implementations must not mutate the ciphertext.
type Decrypter interface {
	Decrypt(ciphertext []byte) ([]byte, error)
}

// DecrypterFunc adapts an ordinary function to the Decrypter interface.
type DecrypterFunc func(ciphertext []byte) ([]byte, error)

// Decrypt calls f(ciphertext).
func (f DecrypterFunc) Decrypt(ciphertext []byte) ([]byte, error) {
	return f(ciphertext)
}

// TraceRecorder persists one duration per processed block.
type TraceRecorder interface {
	// Record appends a single duration line. Any error invalidates the run.
	Record(d time.Duration) error
}

// PlaintextEcho renders decrypted bytes for diagnostics. It never takes part in the trace.
type PlaintextEcho interface {
	Echo(plaintext []byte) error
}

// DecryptTimingService drives the read, decrypt and record loop over an input stream.
type DecryptTimingService interface {
	// Run consumes input block by block until end of stream or the first fatal error.
	// It returns a summary only when at least one block was processed.
	Run(input io.Reader) (*RunSummary, error)
}

// InputGenerationService produces ciphertext block streams the timing loop can consume.
type InputGenerationService interface {
	// Generate writes blocks ciphertexts of random messageSize-byte messages to w.
	Generate(w io.Writer, blocks int, messageSize int) (int, error)
}
