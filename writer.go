package sav

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var errInvalidLength = errors.New("invalid length")

// A Writer serializes save data back into a full flash image.
type Writer struct {
	w io.Writer
}

// Write re-encodes the save and writes the complete image to the
// underlying io.Writer. Sectors not touched by any modeled field are
// written back byte for byte as they were read.
func (w *Writer) Write(s *SaveData) error {
	b, err := s.MarshalBinary()
	if err != nil {
		return err
	}

	if n, err := w.w.Write(b); err != nil || n != len(b) {
		if err != nil {
			return err //nolint:wrapcheck
		}

		return errInvalidLength
	}

	return nil
}

// NewWriter returns a Writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// A WriteCloser is a Writer that must be closed when no longer needed.
type WriteCloser struct {
	Writer
	f *os.File
}

// Close closes the underlying file.
func (wc *WriteCloser) Close() error {
	if err := wc.f.Close(); err != nil {
		return fmt.Errorf("unable to close: %w", err)
	}

	return nil
}

// CreateWriter creates the named file and returns a WriteCloser
// targeting it.
func CreateWriter(name string) (*WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("unable to create: %w", err)
	}

	w := new(WriteCloser)
	w.w = f
	w.f = f

	return w, nil
}
