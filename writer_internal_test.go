package sav

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	img := buildEmeraldImage(t)

	r, err := NewReader(bytes.NewReader(img))
	if err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	if err := NewWriter(buf).Write(&r.SaveData); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, img, buf.Bytes())
}

func TestWriterEmptySave(t *testing.T) {
	t.Parallel()

	err := NewWriter(new(bytes.Buffer)).Write(new(SaveData))
	assert.ErrorIs(t, err, errNoSaveData)
}

func TestCreateWriter(t *testing.T) {
	t.Parallel()

	img := buildEmeraldImage(t)

	r, err := NewReader(bytes.NewReader(img))
	if err != nil {
		t.Fatal(err)
	}

	r.TrainerName = "WALLY"

	name := filepath.Join(t.TempDir(), "edited.sav")

	wc, err := CreateWriter(name)
	if err != nil {
		t.Fatal(err)
	}

	if err := wc.Write(&r.SaveData); err != nil {
		t.Fatal(err)
	}

	if err := wc.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}

	assert.Len(t, b, Emerald.size())

	got, err := NewReader(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "WALLY", got.TrainerName)
}
