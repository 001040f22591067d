package tracesink

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/domain/timing"
)

// TraceWriter appends one decimal nanosecond count per line.
// Every Record issues exactly one write so a failure belongs to that sample.
type TraceWriter struct {
	w    io.Writer
	line []byte
}

// NewTraceWriter creates a TraceWriter on w
func NewTraceWriter(w io.Writer) (*TraceWriter, error) {
	if w == nil {
		return nil, errors.New("trace writer cannot be nil")
	}
	return &TraceWriter{w: w, line: make([]byte, 0, 24)}, nil
}

// Record writes "<nanoseconds>\n". Negative durations are written as 0.
func (t *TraceWriter) Record(d time.Duration) error {
	ns := uint64(0)
	if d > 0 {
		ns = uint64(d.Nanoseconds())
	}

	t.line = strconv.AppendUint(t.line[:0], ns, 10)
	t.line = append(t.line, timing.TraceLineSeparator)

	n, err := t.w.Write(t.line)
	if err != nil {
		return fmt.Errorf("%w: %w", timing.ErrTraceWrite, err)
	}
	if n != len(t.line) {
		return fmt.Errorf("%w: %w", timing.ErrTraceWrite, io.ErrShortWrite)
	}
	return nil
}

var _ timing.TraceRecorder = (*TraceWriter)(nil)
