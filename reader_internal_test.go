package sav

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReader(t *testing.T) {
	t.Parallel()

	r, err := NewReader(bytes.NewReader(buildEmeraldImage(t)))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, Emerald, r.Game)
	assert.Equal(t, "BRENDAN", r.TrainerName)
	assert.Len(t, r.Party, 1)
}

func TestNewReaderWithGame(t *testing.T) {
	t.Parallel()

	r, err := NewReader(bytes.NewReader(buildEmeraldImage(t)), WithGame(Emerald))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, Emerald, r.Game)

	_, err = NewReader(bytes.NewReader(nil), WithGame(nil))
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestNewReaderForceSlot(t *testing.T) {
	t.Parallel()

	// Slot 1 is the stale generation: complete but never written to,
	// so its trainer block is blank.
	r, err := NewReader(bytes.NewReader(buildEmeraldImage(t)), ForceSlot(1))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 1, r.ActiveSlot)
	assert.Empty(t, r.TrainerName)
	assert.Empty(t, r.Party)

	_, err = NewReader(bytes.NewReader(buildEmeraldImage(t)), ForceSlot(2))
	assert.ErrorIs(t, err, errBadSlot)
}

func TestOpenReader(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "emerald.sav")

	if err := os.WriteFile(name, buildEmeraldImage(t), 0o600); err != nil {
		t.Fatal(err)
	}

	rc, err := OpenReader(name)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	assert.Equal(t, "BRENDAN", rc.TrainerName)
}

func TestOpenReaderMissingFile(t *testing.T) {
	t.Parallel()

	_, err := OpenReader(filepath.Join(t.TempDir(), "nope.sav"))
	assert.Error(t, err)
}
