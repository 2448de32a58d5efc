// Package sav reads and writes Game Boy Advance Pokémon save images:
// 128 KiB flash dumps organised into wear-leveled 4 KiB sectors that
// are reassembled into logical save blocks and decoded into trainer and
// party data. Modified saves re-encode losslessly: every byte the model
// does not represent is reproduced verbatim and all checksums are
// recomputed.
//
// Format reference: https://bulbapedia.bulbagarden.net/wiki/Save_data_structure_(Generation_III)
package sav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	errNoSaveData    = errors.New("no save data loaded")
	errPartyTooLarge = errors.New("party exceeds variant limit")
	errTrailingBytes = errors.New("trailing bytes")
)

// PlayTime is the cumulative play time recorded by the game.
type PlayTime struct {
	Hours   uint16
	Minutes uint8
	Seconds uint8
	Frames  uint8
}

func (t PlayTime) String() string {
	return fmt.Sprintf("%d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// Diagnostics reports what a parse could not recover. Sector and block
// failures are not fatal as long as the required blocks resolved; the
// caller decides how loudly to surface them.
type Diagnostics struct {
	// ValidSectors counts the checksum-valid sectors of the active slot.
	ValidSectors int
	// InvalidSectors lists physical sector indices that failed
	// signature or checksum validation.
	InvalidSectors []int
	// MissingBlocks lists optional logical blocks that could not be
	// reassembled.
	MissingBlocks []string
}

// SaveData is one decoded save. Edit the exported fields and call
// MarshalBinary to produce an image with recomputed checksums that is
// byte-identical to the source everywhere else.
type SaveData struct {
	Game        *GameConfig
	TrainerName string
	// TrainerID packs the public id in the low half and the secret id
	// in the high half.
	TrainerID   uint32
	Gender      uint8
	PlayTime    PlayTime
	Party       []*Pokemon
	ActiveSlot  int
	Diagnostics Diagnostics

	sectors    []sector
	slot       *saveSlot
	trainer    []byte
	party      []byte
	forcedSlot *int
}

// SectorMap returns the active slot's logical id to physical sector
// index mapping.
func (s *SaveData) SectorMap() map[uint16]int {
	m := make(map[uint16]int, len(s.slot.sectors))

	for id, phys := range s.slot.sectors {
		m[id] = phys
	}

	return m
}

func (s *SaveData) unmarshalBinary(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read image: %w", err)
	}

	if s.Game == nil {
		if s.Game, err = Detect(b); err != nil {
			return err
		}
	}

	br := bytes.NewReader(b)

	s.sectors = make([]sector, s.Game.sectorCount)
	for i := range s.sectors {
		if err := binary.Read(br, binary.LittleEndian, &s.sectors[i]); err != nil {
			return fmt.Errorf("unable to read sector %d: %w", i, err)
		}
	}

	if n, _ := io.CopyN(io.Discard, br, 1); n > 0 {
		return errTrailingBytes
	}

	if err := s.resolveSlot(); err != nil {
		return err
	}

	s.diagnose()

	if err := s.decodeBlocks(); err != nil {
		return err
	}

	s.decodeTrainer()

	return s.decodeParty()
}

// UnmarshalBinary parses a raw save image. The buffer is copied, never
// retained.
func (s *SaveData) UnmarshalBinary(b []byte) error {
	return s.unmarshalBinary(bytes.NewReader(b))
}

func (s *SaveData) resolveSlot() error {
	if s.forcedSlot != nil {
		slot := buildSlot(s.sectors, *s.forcedSlot, s.Game.signature)
		if !slot.complete(s.Game.requiredSectors()) {
			return ErrNoValidSlot
		}

		s.slot = slot
		s.ActiveSlot = slot.index

		return nil
	}

	slot, err := resolveActiveSlot(s.sectors, s.Game)
	if err != nil {
		return err
	}

	s.slot = slot
	s.ActiveSlot = slot.index

	return nil
}

func (s *SaveData) diagnose() {
	s.Diagnostics.ValidSectors = s.slot.valid

	start := s.slot.index * slotSectors
	for phys := start; phys < start+slotSectors && phys < len(s.sectors); phys++ {
		if s.sectors[phys].isValid(s.Game.signature) != nil {
			s.Diagnostics.InvalidSectors = append(s.Diagnostics.InvalidSectors, phys)
		}
	}
}

// decodeBlocks reassembles the logical blocks of the active slot.
// Required blocks abort the parse when missing; optional ones only land
// in the diagnostics.
func (s *SaveData) decodeBlocks() error {
	for _, spec := range s.Game.blocks {
		b, err := s.slot.reassemble(s.sectors, spec)
		if err != nil {
			if spec.required {
				return err
			}

			s.Diagnostics.MissingBlocks = append(s.Diagnostics.MissingBlocks, spec.name)

			continue
		}

		switch spec.name {
		case "trainer":
			s.trainer = b
		case "party":
			s.party = b
		}
	}

	return nil
}

func (s *SaveData) decodeTrainer() {
	t := s.Game.trainer

	s.TrainerName = decodeText(s.trainer[t.name : t.name+t.nameLen])
	s.Gender = s.trainer[t.gender]
	s.TrainerID = binary.LittleEndian.Uint32(s.trainer[t.trainerID:])
	s.PlayTime = PlayTime{
		Hours:   binary.LittleEndian.Uint16(s.trainer[t.hours:]),
		Minutes: s.trainer[t.minutes],
		Seconds: s.trainer[t.seconds],
		Frames:  s.trainer[t.frames],
	}
}

// decodeParty walks the party records until the declared count runs out
// or an empty slot appears. Variants without a party count field are
// scanned up to their party limit.
func (s *SaveData) decodeParty() error {
	count := s.Game.maxPartySize
	if s.Game.partyCountOffset >= 0 {
		if n := int(binary.LittleEndian.Uint32(s.party[s.Game.partyCountOffset:])); n < count {
			count = n
		}
	}

	for i := 0; i < count; i++ {
		off := s.Game.partyOffset + i*s.Game.recordSize
		if off+s.Game.recordSize > len(s.party) {
			break
		}

		p, err := DecodePokemon(s.party[off:off+s.Game.recordSize], s.Game)
		if errors.Is(err, ErrEmptySlot) {
			break
		} else if err != nil {
			return err
		}

		s.Party = append(s.Party, p)
	}

	return nil
}

// MarshalBinary re-encodes the save. Sectors belonging to the modified
// blocks get fresh checksums; every other sector, including the stale
// slot and the Hall of Fame region, is written back byte for byte.
func (s *SaveData) MarshalBinary() ([]byte, error) {
	if s.sectors == nil {
		return nil, errNoSaveData
	}

	if len(s.Party) > s.Game.maxPartySize {
		return nil, fmt.Errorf("%w: %d > %d", errPartyTooLarge, len(s.Party), s.Game.maxPartySize)
	}

	sectors := make([]sector, len(s.sectors))
	copy(sectors, s.sectors)

	trainer := append([]byte(nil), s.trainer...)
	party := append([]byte(nil), s.party...)

	s.encodeTrainer(trainer)

	if err := s.encodeParty(party); err != nil {
		return nil, err
	}

	if err := s.slot.scatter(sectors, s.Game.block("trainer"), trainer); err != nil {
		return nil, err
	}

	if err := s.slot.scatter(sectors, s.Game.block("party"), party); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	buf.Grow(s.Game.size())

	for i := range sectors {
		b, err := sectors[i].MarshalBinary()
		if err != nil {
			return nil, err
		}

		_, _ = buf.Write(b)
	}

	return buf.Bytes(), nil
}

func (s *SaveData) encodeTrainer(b []byte) {
	t := s.Game.trainer

	copy(b[t.name:], encodeText(s.TrainerName, t.nameLen))
	b[t.gender] = s.Gender
	binary.LittleEndian.PutUint32(b[t.trainerID:], s.TrainerID)
	binary.LittleEndian.PutUint16(b[t.hours:], s.PlayTime.Hours)
	b[t.minutes] = s.PlayTime.Minutes
	b[t.seconds] = s.PlayTime.Seconds
	b[t.frames] = s.PlayTime.Frames
}

func (s *SaveData) encodeParty(b []byte) error {
	if s.Game.partyCountOffset >= 0 {
		binary.LittleEndian.PutUint32(b[s.Game.partyCountOffset:], uint32(len(s.Party)))
	}

	for i, p := range s.Party {
		rec, err := p.MarshalBinary()
		if err != nil {
			return err
		}

		copy(b[s.Game.partyOffset+i*s.Game.recordSize:], rec)
	}

	return nil
}
