package tracesink

import (
	"encoding/hex"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/domain/timing"
)

// ConsoleEcho prints plaintexts as text when they are valid UTF-8 and as uppercase hex otherwise.
type ConsoleEcho struct {
	w io.Writer
}

// NewConsoleEcho creates a ConsoleEcho on w, usually standard output
func NewConsoleEcho(w io.Writer) (*ConsoleEcho, error) {
	if w == nil {
		return nil, errors.New("echo writer cannot be nil")
	}
	return &ConsoleEcho{w: w}, nil
}

// Echo writes the text followed by a newline, or two hex digits per byte without separator or newline.
func (c *ConsoleEcho) Echo(plaintext []byte) error {
	_, err := c.w.Write(Render(plaintext))
	return err
}

// Render returns the console form of a plaintext.
func Render(plaintext []byte) []byte {
	if utf8.Valid(plaintext) {
		out := make([]byte, 0, len(plaintext)+1)
		out = append(out, plaintext...)
		return append(out, '\n')
	}

	out := make([]byte, hex.EncodedLen(len(plaintext)))
	hex.Encode(out, plaintext)
	for i, c := range out {
		if c >= 'a' && c <= 'f' {
			out[i] = c - 'a' + 'A'
		}
	}
	return out
}

var _ timing.PlaintextEcho = (*ConsoleEcho)(nil)
