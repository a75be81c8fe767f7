// Package logging builds the diagnostic logger shared by every command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
)

const (
	bufferSize   = 1000
	pollInterval = 10 * time.Millisecond
)

// Sink is a non-blocking log destination. Writes never wait on the underlying
// writer; when the buffer is full older lines are dropped and counted.
type Sink struct {
	writer diode.Writer
}

// NewSink wraps w in a diode writer. Closing the sink leaves w open.
func NewSink(w io.Writer) *Sink {
	return &Sink{writer: newDiode(struct{ io.Writer }{w})}
}

// OpenFileSink appends to path, creating parent directories as needed.
func OpenFileSink(path string) (*Sink, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Sink{writer: newDiode(file)}, nil
}

func newDiode(w io.Writer) diode.Writer {
	return diode.NewWriter(w, bufferSize, pollInterval, func(missed int) {
		fmt.Fprintf(os.Stderr, "logging: dropped %d messages\n", missed)
	})
}

func (s *Sink) Write(p []byte) (int, error) {
	return s.writer.Write(p)
}

// Close flushes pending lines and closes the log file, if any.
func (s *Sink) Close() error {
	return s.writer.Close()
}

// New returns a timestamped logger writing to w.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
