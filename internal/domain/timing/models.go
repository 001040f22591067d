package timing

import "time"

// Sample is the outcome of one timed decrypt attempt.
// It lives for a single loop iteration and is never retained.
type Sample struct {
	// Duration is the elapsed wall-clock time around the decrypt call
	Duration time.Duration
	// Plaintext holds the decrypted bytes when Err is nil
	Plaintext []byte
	// Err is set when the decrypt primitive rejected the block
	Err error
}

// Nanoseconds returns the sample duration as a non-negative nanosecond count.
func (s Sample) Nanoseconds() uint64 {
	if s.Duration < 0 {
		return 0
	}
	return uint64(s.Duration.Nanoseconds())
}

// RunSummary describes a run that reached the finished state.
type RunSummary struct {
	// Blocks is the number of blocks decrypted and recorded
	Blocks int
	// BlockSize is the fixed ciphertext block length in bytes
	BlockSize int
	// DiscardedBytes counts trailing bytes that did not form a whole block
	DiscardedBytes int
}
