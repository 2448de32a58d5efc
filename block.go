package sav

import (
	"errors"
	"fmt"
)

// ErrMissingBlock is returned (wrapped with the block name) when a
// logical block cannot be reassembled because one of its sectors is
// missing or invalid. Other blocks may still resolve.
var ErrMissingBlock = errors.New("missing logical block")

// blockSpec describes one logical block: the logical sector ids whose
// data regions are concatenated, in order, and the byte length the
// result is trimmed to.
type blockSpec struct {
	name     string
	sectors  []uint16
	size     int
	required bool
}

// reassemble concatenates the data regions of the slot's sectors for
// the given block, in logical order, trimmed to the declared size.
func (s *saveSlot) reassemble(sectors []sector, spec blockSpec) ([]byte, error) {
	b := make([]byte, 0, len(spec.sectors)*SectorDataSize)

	for _, id := range spec.sectors {
		phys, ok := s.sectors[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s (sector %d)", ErrMissingBlock, spec.name, id)
		}

		b = append(b, sectors[phys].Data[:]...)
	}

	if len(b) > spec.size {
		b = b[:spec.size]
	}

	return b, nil
}

// scatter writes a reassembled block back into its sectors and
// recomputes each touched sector's checksum. The inverse of reassemble.
func (s *saveSlot) scatter(sectors []sector, spec blockSpec, b []byte) error {
	for i, id := range spec.sectors {
		phys, ok := s.sectors[id]
		if !ok {
			return fmt.Errorf("%w: %s (sector %d)", ErrMissingBlock, spec.name, id)
		}

		chunk := b[i*SectorDataSize:]
		if len(chunk) > SectorDataSize {
			chunk = chunk[:SectorDataSize]
		}

		copy(sectors[phys].Data[:], chunk)
		sectors[phys].checksum()
	}

	return nil
}
