package sav

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrEmptySlot marks a party slot holding no Pokémon. The game zeroes
// vacated slots and relies on a failed record checksum for the same
// purpose, so neither case is corruption.
var ErrEmptySlot = errors.New("empty party slot")

var errShortRecord = errors.New("record too short")

// The 48-byte secure region of a record is four 12-byte sub-blocks
// whose order is permuted by the personality value and whose words are
// XORed with personality^otId.
const (
	secureSize    = 48
	subBlockSize  = 12
	subBlockCount = 4
	orderCount    = 24
)

// Logical sub-block indices.
const (
	growthBlock = iota
	attackBlock
	conditionBlock
	miscBlock
)

// subBlockOrder[personality%24][pos] is the logical sub-block stored at
// physical position pos. The 24 rows enumerate every ordering of
// growth/attack/condition/misc in the game's fixed sequence.
//
//nolint:gochecknoglobals
var subBlockOrder = [orderCount][subBlockCount]int{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}, {0, 2, 3, 1},
	{0, 3, 1, 2}, {0, 3, 2, 1}, {1, 0, 2, 3}, {1, 0, 3, 2},
	{1, 2, 0, 3}, {1, 2, 3, 0}, {1, 3, 0, 2}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 0, 3, 1}, {2, 1, 0, 3}, {2, 1, 3, 0},
	{2, 3, 0, 1}, {2, 3, 1, 0}, {3, 0, 1, 2}, {3, 0, 2, 1},
	{3, 1, 0, 2}, {3, 1, 2, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

// A Move is one known move and its remaining power points.
type Move struct {
	ID uint16
	PP uint8
}

// EffortValues are the six trained stat values.
type EffortValues struct {
	HP        uint8
	Attack    uint8
	Defense   uint8
	Speed     uint8
	SpAttack  uint8
	SpDefense uint8
}

// IndividualValues are the six inborn stat values, five bits each.
type IndividualValues struct {
	HP        uint8
	Attack    uint8
	Defense   uint8
	Speed     uint8
	SpAttack  uint8
	SpDefense uint8
}

// Condition holds the contest stats stored beside the effort values.
type Condition struct {
	Cool   uint8
	Beauty uint8
	Cute   uint8
	Smart  uint8
	Tough  uint8
	Feel   uint8
}

// Stats are the computed battle stats as stored in the party record.
type Stats struct {
	CurrentHP uint16
	MaxHP     uint16
	Attack    uint16
	Defense   uint16
	Speed     uint16
	SpAttack  uint16
	SpDefense uint16
}

// A Pokemon is one decoded party record. Fields cover the modeled
// portion of the record; bytes outside the model are retained
// internally so MarshalBinary reproduces them verbatim.
type Pokemon struct {
	Personality uint32
	OTID        uint32
	Nickname    string
	OTName      string
	Language    uint8
	Flags       uint8
	Markings    uint8

	Species    uint16
	HeldItem   uint16
	Experience uint32
	PPBonuses  uint8
	Friendship uint8

	Moves [subBlockCount]Move

	EVs       EffortValues
	Condition Condition

	Pokerus     uint8
	MetLocation uint8
	Origins     uint16
	IVs         IndividualValues
	IsEgg       bool
	AltAbility  bool
	Ribbons     uint32

	Status uint32
	Level  uint8
	Stats  Stats

	Nature     string
	Shiny      bool
	ShinyValue uint16

	game   *GameConfig
	raw    []byte
	secure [secureSize]byte
}

// Game returns the configuration the record was decoded with.
func (p *Pokemon) Game() *GameConfig {
	return p.game
}

// SpeciesName returns the display name of the Pokémon's species.
func (p *Pokemon) SpeciesName() string {
	return p.game.SpeciesName(p.Species)
}

func (p *Pokemon) String() string {
	return fmt.Sprintf("%s (%s) Lv.%d %s", p.Nickname, p.SpeciesName(), p.Level, p.Nature)
}

func secureKey(personality, otID uint32) uint32 {
	return personality ^ otID
}

// cryptWords XORs src into dst one little-endian 32-bit word at a time.
// XOR is its own inverse so the same routine encrypts and decrypts.
func cryptWords(dst, src []byte, key uint32) {
	for i := 0; i+4 <= len(src); i += 4 {
		binary.LittleEndian.PutUint32(dst[i:], binary.LittleEndian.Uint32(src[i:])^key)
	}
}

// unshuffle decrypts the secure region and returns the sub-blocks in
// logical order.
func unshuffle(secure []byte, personality, otID uint32) [secureSize]byte {
	var logical [secureSize]byte

	order := subBlockOrder[personality%orderCount]
	key := secureKey(personality, otID)

	for pos := 0; pos < subBlockCount; pos++ {
		l := order[pos]
		cryptWords(logical[l*subBlockSize:(l+1)*subBlockSize], secure[pos*subBlockSize:(pos+1)*subBlockSize], key)
	}

	return logical
}

// shuffle is the inverse of unshuffle: it permutes the logical
// sub-blocks back into physical order and re-encrypts them.
func shuffle(logical []byte, personality, otID uint32) [secureSize]byte {
	var secure [secureSize]byte

	order := subBlockOrder[personality%orderCount]
	key := secureKey(personality, otID)

	for pos := 0; pos < subBlockCount; pos++ {
		l := order[pos]
		cryptWords(secure[pos*subBlockSize:(pos+1)*subBlockSize], logical[l*subBlockSize:(l+1)*subBlockSize], key)
	}

	return secure
}

// vanillaRecordLive reports whether b holds a non-empty vanilla record
// whose secure checksum verifies. Used for game detection; an all-zero
// empty slot is inconclusive, not live.
func vanillaRecordLive(b []byte) bool {
	r := Emerald.record

	if len(b) < Emerald.recordSize {
		return false
	}

	personality := binary.LittleEndian.Uint32(b[r.personality:])
	otID := binary.LittleEndian.Uint32(b[r.otID:])
	secure := b[r.secure:][:secureSize]

	if personality == 0 && otID == 0 && allZero(secure) {
		return false
	}

	logical := unshuffle(secure, personality, otID)

	return checksum16(logical[:]) == binary.LittleEndian.Uint16(b[r.checksum:])
}

// DecodePokemon decodes one party record using the given game
// configuration. Empty slots, including records whose checksum fails,
// return ErrEmptySlot. The input is copied, never retained.
func DecodePokemon(b []byte, c *GameConfig) (*Pokemon, error) {
	if c == nil {
		return nil, ErrUnknownGame
	}

	if len(b) < c.recordSize {
		return nil, fmt.Errorf("%w: %d bytes", errShortRecord, len(b))
	}

	r := c.record

	p := &Pokemon{
		game: c,
		raw:  append([]byte(nil), b[:c.recordSize]...),
	}

	p.Personality = binary.LittleEndian.Uint32(p.raw[r.personality:])
	p.OTID = binary.LittleEndian.Uint32(p.raw[r.otID:])
	p.Nickname = decodeText(p.raw[r.nickname : r.nickname+r.nicknameLen])
	p.OTName = decodeText(p.raw[r.otName : r.otName+r.otNameLen])

	if c.plainRecords {
		if err := p.decodePlain(); err != nil {
			return nil, err
		}
	} else {
		if err := p.decodeSecure(); err != nil {
			return nil, err
		}
	}

	p.Nature = c.nature(p.Personality)
	p.ShinyValue = c.shinyValue(p.Personality, p.OTID)
	p.Shiny = c.isShiny(p.Personality, p.OTID)

	return p, nil
}

func (p *Pokemon) decodeSecure() error {
	r := p.game.record
	secure := p.raw[r.secure:][:secureSize]

	// Vacated slots are zeroed wholesale; do not report them as
	// corruption.
	if p.Personality == 0 && p.OTID == 0 && allZero(secure) {
		return ErrEmptySlot
	}

	logical := unshuffle(secure, p.Personality, p.OTID)

	if checksum16(logical[:]) != binary.LittleEndian.Uint16(p.raw[r.checksum:]) {
		return ErrEmptySlot
	}

	p.secure = logical

	p.Language = p.raw[r.language]
	p.Flags = p.raw[r.flags]
	p.Markings = p.raw[r.markings]

	growth := logical[growthBlock*subBlockSize:]
	p.Species = binary.LittleEndian.Uint16(growth[0:])
	p.HeldItem = binary.LittleEndian.Uint16(growth[2:])
	p.Experience = binary.LittleEndian.Uint32(growth[4:])
	p.PPBonuses = growth[8]
	p.Friendship = growth[9]

	attack := logical[attackBlock*subBlockSize:]
	for i := range p.Moves {
		p.Moves[i] = Move{
			ID: binary.LittleEndian.Uint16(attack[2*i:]),
			PP: attack[8+i],
		}
	}

	cond := logical[conditionBlock*subBlockSize:]
	p.EVs = EffortValues{cond[0], cond[1], cond[2], cond[3], cond[4], cond[5]}
	p.Condition = Condition{cond[6], cond[7], cond[8], cond[9], cond[10], cond[11]}

	misc := logical[miscBlock*subBlockSize:]
	p.Pokerus = misc[0]
	p.MetLocation = misc[1]
	p.Origins = binary.LittleEndian.Uint16(misc[2:])

	iv := binary.LittleEndian.Uint32(misc[4:])
	p.IVs = unpackIVs(iv)
	p.IsEgg = iv>>30&1 == 1
	p.AltAbility = iv>>31&1 == 1
	p.Ribbons = binary.LittleEndian.Uint32(misc[8:])

	p.Status = binary.LittleEndian.Uint32(p.raw[r.status:])
	p.Level = p.raw[r.level]
	p.Stats = p.decodeStats()

	return nil
}

// decodePlain handles variants that store records unencrypted. Their
// slot vacancy marker is a species id of zero; implausible species ids
// are treated the same way, matching how the checksum guards the
// vanilla layout.
func (p *Pokemon) decodePlain() error {
	const maxSpecies = 1000

	r := p.game.record

	p.Species = binary.LittleEndian.Uint16(p.raw[r.species:])
	if p.Species == 0 || p.Species >= maxSpecies {
		return ErrEmptySlot
	}

	p.Level = p.raw[r.level]
	p.Stats = p.decodeStats()

	return nil
}

func (p *Pokemon) decodeStats() Stats {
	r := p.game.record

	return Stats{
		CurrentHP: binary.LittleEndian.Uint16(p.raw[r.currentHP:]),
		MaxHP:     binary.LittleEndian.Uint16(p.raw[r.maxHP:]),
		Attack:    binary.LittleEndian.Uint16(p.raw[r.attack:]),
		Defense:   binary.LittleEndian.Uint16(p.raw[r.defense:]),
		Speed:     binary.LittleEndian.Uint16(p.raw[r.speed:]),
		SpAttack:  binary.LittleEndian.Uint16(p.raw[r.spAttack:]),
		SpDefense: binary.LittleEndian.Uint16(p.raw[r.spDefense:]),
	}
}

func unpackIVs(iv uint32) IndividualValues {
	const mask = 0x1f

	return IndividualValues{
		HP:        uint8(iv & mask),
		Attack:    uint8(iv >> 5 & mask),
		Defense:   uint8(iv >> 10 & mask),
		Speed:     uint8(iv >> 15 & mask),
		SpAttack:  uint8(iv >> 20 & mask),
		SpDefense: uint8(iv >> 25 & mask),
	}
}

func packIVs(v IndividualValues, isEgg, altAbility bool) uint32 {
	const mask = 0x1f

	iv := uint32(v.HP)&mask |
		uint32(v.Attack)&mask<<5 |
		uint32(v.Defense)&mask<<10 |
		uint32(v.Speed)&mask<<15 |
		uint32(v.SpAttack)&mask<<20 |
		uint32(v.SpDefense)&mask<<25

	if isEgg {
		iv |= 1 << 30
	}

	if altAbility {
		iv |= 1 << 31
	}

	return iv
}

// MarshalBinary re-encodes the record. The checksum, sub-block
// permutation and encryption key are re-derived from the current
// personality and trainer id, and every byte outside the model is
// reproduced from the decoded record.
func (p *Pokemon) MarshalBinary() ([]byte, error) {
	c := p.game
	if c == nil {
		c = Emerald
	}

	r := c.record

	out := make([]byte, c.recordSize)
	copy(out, p.raw)

	binary.LittleEndian.PutUint32(out[r.personality:], p.Personality)
	binary.LittleEndian.PutUint32(out[r.otID:], p.OTID)
	copy(out[r.nickname:], encodeText(p.Nickname, r.nicknameLen))
	copy(out[r.otName:], encodeText(p.OTName, r.otNameLen))

	if c.plainRecords {
		binary.LittleEndian.PutUint16(out[r.species:], p.Species)
		out[r.level] = p.Level
		p.encodeStats(out, c)

		return out, nil
	}

	out[r.language] = p.Language
	out[r.flags] = p.Flags
	out[r.markings] = p.Markings

	logical := p.secure

	growth := logical[growthBlock*subBlockSize:]
	binary.LittleEndian.PutUint16(growth[0:], p.Species)
	binary.LittleEndian.PutUint16(growth[2:], p.HeldItem)
	binary.LittleEndian.PutUint32(growth[4:], p.Experience)
	growth[8] = p.PPBonuses
	growth[9] = p.Friendship

	attack := logical[attackBlock*subBlockSize:]
	for i, m := range p.Moves {
		binary.LittleEndian.PutUint16(attack[2*i:], m.ID)
		attack[8+i] = m.PP
	}

	cond := logical[conditionBlock*subBlockSize:]
	cond[0], cond[1], cond[2] = p.EVs.HP, p.EVs.Attack, p.EVs.Defense
	cond[3], cond[4], cond[5] = p.EVs.Speed, p.EVs.SpAttack, p.EVs.SpDefense
	cond[6], cond[7], cond[8] = p.Condition.Cool, p.Condition.Beauty, p.Condition.Cute
	cond[9], cond[10], cond[11] = p.Condition.Smart, p.Condition.Tough, p.Condition.Feel

	misc := logical[miscBlock*subBlockSize:]
	misc[0] = p.Pokerus
	misc[1] = p.MetLocation
	binary.LittleEndian.PutUint16(misc[2:], p.Origins)
	binary.LittleEndian.PutUint32(misc[4:], packIVs(p.IVs, p.IsEgg, p.AltAbility))
	binary.LittleEndian.PutUint32(misc[8:], p.Ribbons)

	binary.LittleEndian.PutUint16(out[r.checksum:], checksum16(logical[:]))

	secure := shuffle(logical[:], p.Personality, p.OTID)
	copy(out[r.secure:], secure[:])

	binary.LittleEndian.PutUint32(out[r.status:], p.Status)
	out[r.level] = p.Level
	p.encodeStats(out, c)

	return out, nil
}

func (p *Pokemon) encodeStats(out []byte, c *GameConfig) {
	o := c.record

	binary.LittleEndian.PutUint16(out[o.currentHP:], p.Stats.CurrentHP)
	binary.LittleEndian.PutUint16(out[o.maxHP:], p.Stats.MaxHP)
	binary.LittleEndian.PutUint16(out[o.attack:], p.Stats.Attack)
	binary.LittleEndian.PutUint16(out[o.defense:], p.Stats.Defense)
	binary.LittleEndian.PutUint16(out[o.speed:], p.Stats.Speed)
	binary.LittleEndian.PutUint16(out[o.spAttack:], p.Stats.SpAttack)
	binary.LittleEndian.PutUint16(out[o.spDefense:], p.Stats.SpDefense)
}
