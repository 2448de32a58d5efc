package sav

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var errBadSlot = errors.New("invalid slot index")

// A Reader provides access to a parsed save image.
type Reader struct {
	SaveData
}

func (r *Reader) init(nr io.Reader, options ...func(*Reader) error) error {
	if err := r.setOption(options...); err != nil {
		return err
	}

	return r.SaveData.unmarshalBinary(nr)
}

func (r *Reader) setOption(options ...func(*Reader) error) error {
	for _, option := range options {
		if err := option(r); err != nil {
			return err
		}
	}

	return nil
}

// WithGame skips detection and parses the image using the given game
// layout.
func WithGame(c *GameConfig) func(*Reader) error {
	return func(r *Reader) error {
		if c == nil {
			return ErrUnknownGame
		}

		r.Game = c

		return nil
	}
}

// ForceSlot bypasses the counter comparison and selects the given save
// slot. The slot must still hold a complete set of valid sectors.
func ForceSlot(n int) func(*Reader) error {
	return func(r *Reader) error {
		if n < 0 || n >= slotCount {
			return errBadSlot
		}

		r.forcedSlot = &n

		return nil
	}
}

// A ReadCloser is a Reader that must be closed when no longer needed.
type ReadCloser struct {
	Reader
	f *os.File
}

// Close closes the save image, rendering it unusable for I/O.
func (rc *ReadCloser) Close() error {
	if err := rc.f.Close(); err != nil {
		return fmt.Errorf("unable to close: %w", err)
	}

	return nil
}

// NewReader returns a new Reader reading from r.
func NewReader(r io.Reader, options ...func(*Reader) error) (*Reader, error) {
	sr := new(Reader)
	if err := sr.init(r, options...); err != nil {
		return nil, err
	}

	return sr, nil
}

// OpenReader will open the save image specified by name and return a
// ReadCloser.
func OpenReader(name string, options ...func(*Reader) error) (*ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open: %w", err)
	}

	r := new(ReadCloser)
	if err := r.init(f, options...); err != nil {
		f.Close()

		return nil, err
	}

	r.f = f

	return r, nil
}
