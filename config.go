package sav

import (
	"encoding/binary"
	"errors"
	"strings"
)

// ErrUnknownGame is returned when no known game variant matches a save
// buffer or ROM title. Detection fails closed: the parser never guesses
// a layout.
var ErrUnknownGame = errors.New("unknown game variant")

// All Emerald-derived games stamp this signature into every sector
// footer.
const emeraldSignature = 0x08012025

// trainerOffsets locates trainer fields inside the reconstructed
// trainer block.
type trainerOffsets struct {
	name      int
	nameLen   int
	gender    int
	trainerID int
	hours     int
	minutes   int
	seconds   int
	frames    int
}

// recordOffsets locates the fields of one party Pokémon record. The
// vanilla game keeps species and friends inside the encrypted secure
// region; ROM hacks with plain records address them directly instead.
type recordOffsets struct {
	personality int
	otID        int
	nickname    int
	nicknameLen int
	language    int
	flags       int
	otName      int
	otNameLen   int
	markings    int
	checksum    int
	secure      int

	status    int
	level     int
	mail      int
	currentHP int
	maxHP     int
	attack    int
	defense   int
	speed     int
	spAttack  int
	spDefense int

	// plain-record variants only
	species int
}

// A GameConfig describes one game variant: sector layout, struct
// offsets, party limits and display-name tables. Configs are immutable
// plain values; binary layout never depends on the name tables.
type GameConfig struct {
	// Name identifies the variant in diagnostics and UIs.
	Name string

	signature        uint32
	titles           []string
	sectorCount      int
	blocks           []blockSpec
	trainer          trainerOffsets
	record           recordOffsets
	recordSize       int
	maxPartySize     int
	plainRecords     bool
	partyOffset      int
	partyCountOffset int
	species          map[uint16]string
	natureFn         func(uint32) string
	shinyValueFn     func(uint32, uint32) uint16
}

func (c *GameConfig) nature(personality uint32) string {
	if c.natureFn != nil {
		return c.natureFn(personality)
	}

	return Nature(personality)
}

func (c *GameConfig) shinyValue(personality, otID uint32) uint16 {
	if c.shinyValueFn != nil {
		return c.shinyValueFn(personality, otID)
	}

	return ShinyValue(personality, otID)
}

func (c *GameConfig) isShiny(personality, otID uint32) bool {
	return c.shinyValue(personality, otID) < shinyThreshold
}

func (c *GameConfig) size() int {
	return c.sectorCount * SectorSize
}

// requiredSectors is the set of logical ids a slot must carry before it
// can be reconstructed at all.
func (c *GameConfig) requiredSectors() []uint16 {
	var ids []uint16

	for _, b := range c.blocks {
		if b.required {
			ids = append(ids, b.sectors...)
		}
	}

	return ids
}

func (c *GameConfig) block(name string) blockSpec {
	for _, b := range c.blocks {
		if b.name == name {
			return b
		}
	}

	return blockSpec{}
}

// SpeciesName returns the display name for a species id, or a numeric
// placeholder for ids outside the table. Unmapped ids still decode
// structurally.
func (c *GameConfig) SpeciesName(id uint16) string {
	if name, ok := c.species[id]; ok {
		return name
	}

	return speciesName(id)
}

// MoveName returns the display name for a move id.
func (c *GameConfig) MoveName(id uint16) string {
	return moveName(id)
}

// ItemName returns the display name for an item id.
func (c *GameConfig) ItemName(id uint16) string {
	return itemName(id)
}

// Emerald is the vanilla game: encrypted 100-byte party records and the
// stock save block layout.
//
//nolint:gochecknoglobals,gomnd
var Emerald = &GameConfig{
	Name:        "Pokémon Emerald",
	signature:   emeraldSignature,
	titles:      []string{"POKEMON EMER", "EMERALD"},
	sectorCount: 32,
	blocks: []blockSpec{
		{name: "trainer", sectors: []uint16{0}, size: SectorDataSize, required: true},
		{name: "party", sectors: []uint16{1, 2, 3, 4}, size: 4 * SectorDataSize, required: true},
		{name: "storage", sectors: []uint16{5, 6, 7, 8, 9, 10, 11, 12, 13}, size: 9 * SectorDataSize},
	},
	trainer: trainerOffsets{
		name:      0x00,
		nameLen:   8,
		gender:    0x08,
		trainerID: 0x0a,
		hours:     0x0e,
		minutes:   0x10,
		seconds:   0x11,
		frames:    0x12,
	},
	record: recordOffsets{
		personality: 0x00,
		otID:        0x04,
		nickname:    0x08,
		nicknameLen: 10,
		language:    0x12,
		flags:       0x13,
		otName:      0x14,
		otNameLen:   7,
		markings:    0x1b,
		checksum:    0x1c,
		secure:      0x20,
		status:      0x50,
		level:       0x54,
		mail:        0x55,
		currentHP:   0x56,
		maxHP:       0x58,
		attack:      0x5a,
		defense:     0x5c,
		speed:       0x5e,
		spAttack:    0x60,
		spDefense:   0x62,
	},
	recordSize:       100,
	maxPartySize:     6,
	partyCountOffset: 0x234,
	partyOffset:      0x238,
}

// Quetzal stores party records unencrypted, three bytes longer and at a
// different offset, and derives nature and shininess from single bytes
// of the personality value. A party count field has not been located in
// its save block, so the party is scanned record by record.
//
//nolint:gochecknoglobals,gomnd
var Quetzal = &GameConfig{
	Name:        "Pokémon Quetzal",
	signature:   emeraldSignature,
	titles:      []string{"QUETZAL"},
	sectorCount: 32,
	blocks: []blockSpec{
		{name: "trainer", sectors: []uint16{0}, size: SectorDataSize, required: true},
		{name: "party", sectors: []uint16{1, 2, 3, 4}, size: 4 * SectorDataSize, required: true},
		{name: "storage", sectors: []uint16{5, 6, 7, 8, 9, 10, 11, 12, 13}, size: 9 * SectorDataSize},
	},
	trainer: trainerOffsets{
		name:      0x00,
		nameLen:   8,
		gender:    0x08,
		trainerID: 0x0a,
		hours:     0x10,
		minutes:   0x14,
		seconds:   0x15,
		frames:    0x16,
	},
	record: recordOffsets{
		personality: 0x00,
		otID:        0x04,
		nickname:    0x08,
		nicknameLen: 10,
		otName:      0x14,
		otNameLen:   7,
		species:     0x28,
		currentHP:   0x23,
		level:       0x58,
		maxHP:       0x5a,
		attack:      0x5c,
		defense:     0x5e,
		speed:       0x60,
		spAttack:    0x62,
		spDefense:   0x64,
	},
	recordSize:       104,
	maxPartySize:     6,
	plainRecords:     true,
	partyCountOffset: -1,
	partyOffset:      0x6a8,
	species:          quetzalSpecies,
	natureFn: func(personality uint32) string {
		return natureNames[(personality&0xff)%natureCount]
	},
	shinyValueFn: func(personality, _ uint32) uint16 {
		return uint16(personality >> 8 & 0xff)
	},
}

//nolint:gochecknoglobals
var gameConfigs = []*GameConfig{Emerald, Quetzal}

// Detect inspects a raw save buffer and returns the matching game
// configuration.
func Detect(b []byte) (*GameConfig, error) {
	for _, c := range gameConfigs {
		if c.canHandle(b) {
			return c, nil
		}
	}

	return nil, ErrUnknownGame
}

// DetectFromTitle matches a live ROM title, for callers inspecting
// emulator memory rather than a save image.
func DetectFromTitle(title string) (*GameConfig, error) {
	t := strings.ToUpper(strings.TrimSpace(title))

	// Most specific variant first: hacks embed the base game's title.
	for i := len(gameConfigs) - 1; i >= 0; i-- {
		for _, m := range gameConfigs[i].titles {
			if strings.Contains(t, m) {
				return gameConfigs[i], nil
			}
		}
	}

	return nil, ErrUnknownGame
}

func (c *GameConfig) canHandle(b []byte) bool {
	if len(b) < c.size() || signatureSectors(b, c.signature) < slotSectors {
		return false
	}

	if c.plainRecords {
		return plainRecordLayout(b, c)
	}

	return !plainRecordLayout(b, Quetzal)
}

// signatureSectors counts the sectors whose footer carries the expected
// signature, without regard to checksums: stale slots still count.
func signatureSectors(b []byte, signature uint32) int {
	count := 0

	for off := sectorFooterOffset; off+sectorFooterSize <= len(b); off += SectorSize {
		if binary.LittleEndian.Uint32(b[off+4:]) == signature {
			count++
		}
	}

	return count
}

// plainRecordLayout reports whether the buffer's party region reads as
// the given variant's unencrypted record layout. A sector with logical
// id 1 holds the head of the party block in every known variant; if its
// first record validates as a live vanilla encrypted record the plain
// layout is ruled out. An empty vanilla party is inconclusive and falls
// through to probing the variant's own offsets.
func plainRecordLayout(b []byte, c *GameConfig) bool {
	const maxLevel = 100

	for phys := 0; (phys+1)*SectorSize <= len(b) && phys < c.sectorCount; phys++ {
		foot := phys*SectorSize + sectorFooterOffset
		if binary.LittleEndian.Uint32(b[foot+4:]) != c.signature ||
			binary.LittleEndian.Uint16(b[foot:]) != c.blocks[1].sectors[0] {
			continue
		}

		data := b[phys*SectorSize:][:SectorDataSize]

		if vanillaRecordLive(data[Emerald.partyOffset:][:Emerald.recordSize]) {
			return false
		}

		if c.partyOffset+c.recordSize > len(data) {
			continue
		}

		rec := data[c.partyOffset:]
		species := binary.LittleEndian.Uint16(rec[c.record.species:])
		level := rec[c.record.level]

		if species >= 1 && species < 1000 && level >= 1 && level <= maxLevel {
			return true
		}
	}

	return false
}
