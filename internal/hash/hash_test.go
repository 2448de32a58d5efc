package hash_test

import (
	"testing"

	"github.com/JohnDeved/pokemon-save-web-sub004/internal/hash"
	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	t.Parallel()

	h := hash.New()

	assert.Equal(t, 2, h.Size())
	assert.Equal(t, 4, h.BlockSize())

	if _, err := h.Write([]byte{0x78, 0x56, 0x34, 0x12}); err != nil {
		t.Fatal(err)
	}

	// 0x1234 + 0x5678
	assert.Equal(t, uint16(0x68ac), h.Sum16())
	assert.Equal(t, []byte{0xac, 0x68}, h.Sum(nil))

	h.Reset()

	assert.Equal(t, uint16(0), h.Sum16())
}

func TestHashFold(t *testing.T) {
	t.Parallel()

	h := hash.New()

	// 0x00000001 + 0x0000ffff overflows the low half; the carry folds
	// back in through the high half.
	if _, err := h.Write([]byte{0x01, 0x00, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00}); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, uint16(1), h.Sum16())
}

func TestHashPartialWrites(t *testing.T) {
	t.Parallel()

	b := []byte{0x78, 0x56, 0x34, 0x12, 0xef, 0xbe, 0xad, 0xde}

	h := hash.New()

	for i := range b {
		if _, err := h.Write(b[i : i+1]); err != nil {
			t.Fatal(err)
		}
	}

	assert.Equal(t, hash.Checksum(b), h.Sum16())
}

func TestHash16(t *testing.T) {
	t.Parallel()

	h := hash.New16()

	assert.Equal(t, 2, h.Size())
	assert.Equal(t, 2, h.BlockSize())

	if _, err := h.Write([]byte{0x34, 0x12, 0xff, 0xff}); err != nil {
		t.Fatal(err)
	}

	// 0x1234 + 0xffff wraps.
	assert.Equal(t, uint16(0x1233), h.Sum16())

	h.Reset()

	assert.Equal(t, uint16(0), h.Sum16())
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint16(0), hash.Checksum(make([]byte, 16)))
	assert.Equal(t, uint16(0x68ac), hash.Checksum([]byte{0x78, 0x56, 0x34, 0x12}))
	assert.Equal(t, uint16(0x1233), hash.Checksum16([]byte{0x34, 0x12, 0xff, 0xff}))
}
