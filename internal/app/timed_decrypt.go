package app

import (
	"time"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/domain/timing"
)

// MeasureDecrypt times a single decrypt call. The clock is read immediately
// before and after Decrypt; nothing else runs in between.
func MeasureDecrypt(decrypter timing.Decrypter, block []byte, now func() time.Time) timing.Sample {
	start := now()
	plaintext, err := decrypter.Decrypt(block)
	elapsed := now().Sub(start)

	if elapsed < 0 {
		elapsed = 0
	}
	return timing.Sample{Duration: elapsed, Plaintext: plaintext, Err: err}
}
