package sav

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPokemon() *Pokemon {
	return &Pokemon{
		Personality: 0x6ccbfd84,
		OTID:        0xa23b76f1,
		Nickname:    "SPARKY",
		OTName:      "MAY",
		Language:    2,
		Flags:       0x02,
		Markings:    0x05,
		Species:     25,
		HeldItem:    202,
		Experience:  87430,
		PPBonuses:   0x1b,
		Friendship:  153,
		Moves: [4]Move{
			{ID: 85, PP: 15},
			{ID: 98, PP: 30},
			{ID: 86, PP: 20},
			{ID: 104, PP: 15},
		},
		EVs:         EffortValues{HP: 12, Attack: 40, Speed: 252},
		Condition:   Condition{Cool: 10, Feel: 3},
		Pokerus:     0x14,
		MetLocation: 16,
		Origins:     0x0843,
		IVs:         IndividualValues{HP: 31, Attack: 30, Defense: 12, Speed: 31, SpAttack: 7, SpDefense: 19},
		Ribbons:     0x00000021,
		Status:      0,
		Level:       36,
		Stats: Stats{
			CurrentHP: 92,
			MaxHP:     101,
			Attack:    55,
			Defense:   40,
			Speed:     90,
			SpAttack:  50,
			SpDefense: 46,
		},
		game: Emerald,
	}
}

func TestPokemonRoundtrip(t *testing.T) {
	t.Parallel()

	want := testPokemon()

	b, err := want.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	assert.Len(t, b, Emerald.recordSize)

	got, err := DecodePokemon(b, Emerald)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, want.Personality, got.Personality)
	assert.Equal(t, want.OTID, got.OTID)
	assert.Equal(t, want.Nickname, got.Nickname)
	assert.Equal(t, want.OTName, got.OTName)
	assert.Equal(t, want.Language, got.Language)
	assert.Equal(t, want.Flags, got.Flags)
	assert.Equal(t, want.Markings, got.Markings)
	assert.Equal(t, want.Species, got.Species)
	assert.Equal(t, want.HeldItem, got.HeldItem)
	assert.Equal(t, want.Experience, got.Experience)
	assert.Equal(t, want.PPBonuses, got.PPBonuses)
	assert.Equal(t, want.Friendship, got.Friendship)
	assert.Equal(t, want.Moves, got.Moves)
	assert.Equal(t, want.EVs, got.EVs)
	assert.Equal(t, want.Condition, got.Condition)
	assert.Equal(t, want.Pokerus, got.Pokerus)
	assert.Equal(t, want.MetLocation, got.MetLocation)
	assert.Equal(t, want.Origins, got.Origins)
	assert.Equal(t, want.IVs, got.IVs)
	assert.False(t, got.IsEgg)
	assert.False(t, got.AltAbility)
	assert.Equal(t, want.Ribbons, got.Ribbons)
	assert.Equal(t, want.Level, got.Level)
	assert.Equal(t, want.Stats, got.Stats)

	assert.Equal(t, "Hasty", got.Nature)
	assert.Equal(t, uint16(0x4585), got.ShinyValue)
	assert.False(t, got.Shiny)
	assert.Equal(t, "Pikachu", got.SpeciesName())

	again, err := got.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, b, again)
}

func TestPokemonEditReencode(t *testing.T) {
	t.Parallel()

	b, err := testPokemon().MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	p, err := DecodePokemon(b, Emerald)
	if err != nil {
		t.Fatal(err)
	}

	p.Species = 196
	p.Level = 50
	p.Moves[3] = Move{ID: 94, PP: 10}

	edited, err := p.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	got, err := DecodePokemon(edited, Emerald)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, uint16(196), got.Species)
	assert.Equal(t, uint8(50), got.Level)
	assert.Equal(t, Move{ID: 94, PP: 10}, got.Moves[3])
	assert.Equal(t, "Espeon", got.SpeciesName())
}

func TestDecodePokemonEmptySlot(t *testing.T) {
	t.Parallel()

	_, err := DecodePokemon(make([]byte, Emerald.recordSize), Emerald)
	assert.ErrorIs(t, err, ErrEmptySlot)
}

func TestDecodePokemonBadChecksum(t *testing.T) {
	t.Parallel()

	b, err := testPokemon().MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	b[Emerald.record.secure]++

	_, err = DecodePokemon(b, Emerald)
	assert.ErrorIs(t, err, ErrEmptySlot)
}

func TestDecodePokemonShortRecord(t *testing.T) {
	t.Parallel()

	_, err := DecodePokemon(make([]byte, 10), Emerald)
	assert.ErrorIs(t, err, errShortRecord)
}

func TestSubBlockOrder(t *testing.T) {
	t.Parallel()

	seen := make(map[[subBlockCount]int]struct{}, orderCount)

	for _, order := range subBlockOrder {
		var used [subBlockCount]bool

		for _, l := range order {
			assert.False(t, used[l])
			used[l] = true
		}

		seen[order] = struct{}{}
	}

	assert.Len(t, seen, orderCount)
}

func TestShuffleInverse(t *testing.T) {
	t.Parallel()

	var logical [secureSize]byte

	if _, err := rand.Read(logical[:]); err != nil {
		t.Fatal(err)
	}

	const otID = 0xcafef00d

	// Exercise every permutation row.
	for personality := uint32(0); personality < orderCount; personality++ {
		secure := shuffle(logical[:], personality, otID)
		back := unshuffle(secure[:], personality, otID)

		assert.Equal(t, logical, back)
	}
}

func TestPokemonShiny(t *testing.T) {
	t.Parallel()

	p := testPokemon()
	p.Personality = 0x00010000
	p.OTID = 0x00000007

	b, err := p.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	got, err := DecodePokemon(b, Emerald)
	if err != nil {
		t.Fatal(err)
	}

	assert.True(t, got.Shiny)
	assert.Equal(t, uint16(6), got.ShinyValue)
}

func TestPokemonPlainRecord(t *testing.T) {
	t.Parallel()

	p := &Pokemon{
		Personality: 0x00000019,
		OTID:        0x12345678,
		Nickname:    "ZIPPY",
		OTName:      "RED",
		Species:     286,
		Level:       42,
		Stats: Stats{
			CurrentHP: 120,
			MaxHP:     131,
			Attack:    98,
			Defense:   72,
			Speed:     64,
			SpAttack:  55,
			SpDefense: 61,
		},
		game: Quetzal,
	}

	b, err := p.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	assert.Len(t, b, Quetzal.recordSize)

	got, err := DecodePokemon(b, Quetzal)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, uint16(286), got.Species)
	assert.Equal(t, "Breloom", got.SpeciesName())
	assert.Equal(t, uint8(42), got.Level)
	assert.Equal(t, p.Stats, got.Stats)

	// The low byte 0x19 wraps to the first nature and the shiny byte
	// 0x00 is under the threshold.
	assert.Equal(t, "Hardy", got.Nature)
	assert.Equal(t, uint16(0), got.ShinyValue)
	assert.True(t, got.Shiny)
}

func TestDecodePokemonPlainEmpty(t *testing.T) {
	t.Parallel()

	_, err := DecodePokemon(make([]byte, Quetzal.recordSize), Quetzal)
	assert.ErrorIs(t, err, ErrEmptySlot)
}

func TestDecodePokemonNilConfig(t *testing.T) {
	t.Parallel()

	_, err := DecodePokemon(make([]byte, 100), nil)
	assert.ErrorIs(t, err, ErrUnknownGame)
}
