package sav

import (
	"bytes"
	"encoding/binary"
	"errors"
)

var (
	errBadSectorChecksum  = errors.New("bad sector checksum")
	errBadSectorSignature = errors.New("bad sector signature")
)

// Save images are organised as fixed 4 KiB flash sectors. The first
// 3968 bytes of a sector carry save data, the last 12 bytes form the
// footer and the bytes in between are unused by the game but preserved
// verbatim on write-back.
const (
	// SectorSize is the size of one physical flash sector.
	SectorSize = 0x1000
	// SectorDataSize is the portion of a sector carrying save data.
	SectorDataSize = 0x0f80

	sectorReservedSize = SectorSize - SectorDataSize - sectorFooterSize
	sectorFooterSize   = 12
	sectorFooterOffset = SectorSize - sectorFooterSize
)

// sector is one physical flash sector. The footer fields are stored
// little-endian: the logical id assigned by the game, the checksum over
// the data region, the per-game signature and the save counter that
// advances on every in-game save.
type sector struct {
	Data      [SectorDataSize]byte
	Reserved  [sectorReservedSize]byte
	ID        uint16
	Checksum  uint16
	Signature uint32
	Counter   uint32
}

func (s *sector) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(binary.Size(s))

	_ = binary.Write(buf, binary.LittleEndian, s)

	return buf.Bytes(), nil
}

func (s *sector) generateChecksum() uint16 {
	return checksum(s.Data[:])
}

func (s *sector) checksum() {
	s.Checksum = s.generateChecksum()
}

func (s *sector) isValid(signature uint32) error {
	if s.Signature != signature {
		return errBadSectorSignature
	}

	if s.Checksum != s.generateChecksum() {
		return errBadSectorChecksum
	}

	return nil
}
