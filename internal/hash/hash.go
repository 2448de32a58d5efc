package hash

import "hash"

const (
	// BlockSize is the preferred block size.
	BlockSize = 4
	// Size is the size of the checksum in bytes.
	Size       = 2
	shiftWidth = 8
	wordSize   = 4
	halfSize   = 2
)

// digest computes the rolling sum used by the save sectors: the data is
// read as little-endian 32-bit words summed into a 32-bit accumulator,
// and the final checksum folds the high half onto the low half.
type digest struct {
	sum uint32
	buf [wordSize]byte
	pos int
}

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Reset() { d.sum, d.pos = 0, 0 }

func (d *digest) Size() int { return Size }

func (d *digest) Sum(data []byte) []byte {
	s := d.Sum16()

	return append(data, byte(s), byte(s>>shiftWidth))
}

// Sum16 returns the folded 16-bit checksum.
func (d *digest) Sum16() uint16 {
	return uint16(d.sum>>16) + uint16(d.sum)
}

func (d *digest) Write(p []byte) (int, error) {
	for i := range p {
		d.buf[d.pos] = p[i]
		d.pos++

		if d.pos == wordSize {
			d.sum += uint32(d.buf[0]) |
				uint32(d.buf[1])<<shiftWidth |
				uint32(d.buf[2])<<(2*shiftWidth) |
				uint32(d.buf[3])<<(3*shiftWidth)
			d.pos = 0
		}
	}

	return len(p), nil
}

// digest16 computes the checksum used by the Pokémon record secure
// region: a wrapping sum of little-endian 16-bit words.
type digest16 struct {
	sum uint16
	buf [halfSize]byte
	pos int
}

func (d *digest16) BlockSize() int { return halfSize }

func (d *digest16) Reset() { d.sum, d.pos = 0, 0 }

func (d *digest16) Size() int { return Size }

func (d *digest16) Sum(data []byte) []byte {
	return append(data, byte(d.sum), byte(d.sum>>shiftWidth))
}

// Sum16 returns the wrapping 16-bit word sum.
func (d *digest16) Sum16() uint16 {
	return d.sum
}

func (d *digest16) Write(p []byte) (int, error) {
	for i := range p {
		d.buf[d.pos] = p[i]
		d.pos++

		if d.pos == halfSize {
			d.sum += uint16(d.buf[0]) | uint16(d.buf[1])<<shiftWidth
			d.pos = 0
		}
	}

	return len(p), nil
}

// Hash16 is the common interface of both checksums.
type Hash16 interface {
	hash.Hash
	Sum16() uint16
}

// New returns a new Hash16 computing the folded 32-bit word sum used by
// save sectors.
func New() Hash16 { //nolint:ireturn
	d := new(digest)
	d.Reset()

	return d
}

// New16 returns a new Hash16 computing the wrapping 16-bit word sum
// used by Pokémon records.
func New16() Hash16 { //nolint:ireturn
	d := new(digest16)
	d.Reset()

	return d
}

// Checksum returns the sector checksum of b.
func Checksum(b []byte) uint16 {
	d := New()
	_, _ = d.Write(b)

	return d.Sum16()
}

// Checksum16 returns the record checksum of b.
func Checksum16(b []byte) uint16 {
	d := New16()
	_, _ = d.Write(b)

	return d.Sum16()
}
