package sav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sav "github.com/JohnDeved/pokemon-save-web-sub004"
)

func TestNature(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hardy", sav.Nature(0))
	assert.Equal(t, "Adamant", sav.Nature(3))
	assert.Equal(t, "Quirky", sav.Nature(24))
	assert.Equal(t, "Hardy", sav.Nature(25))
	assert.Equal(t, "Hasty", sav.Nature(0x6ccbfd84))

	// The 25 buckets are all distinct.
	seen := make(map[string]struct{})
	for personality := uint32(0); personality < 25; personality++ {
		seen[sav.Nature(personality)] = struct{}{}
	}

	assert.Len(t, seen, 25)
}

func TestShinyValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint16(0x4585), sav.ShinyValue(0x6ccbfd84, 0xa23b76f1))
	assert.Equal(t, uint16(0), sav.ShinyValue(0x12345678, 0x12345678))
}

func TestIsShiny(t *testing.T) {
	t.Parallel()

	assert.True(t, sav.IsShiny(0x00010000, 0x00000007))
	assert.False(t, sav.IsShiny(0x00010000, 0x00000008))
	assert.False(t, sav.IsShiny(0x6ccbfd84, 0xa23b76f1))
}

func TestDetectFromTitle(t *testing.T) {
	t.Parallel()

	tables := []struct {
		title string
		want  *sav.GameConfig
	}{
		{"POKEMON EMER", sav.Emerald},
		{"pokemon emerald version", sav.Emerald},
		{"POKEMON QUETZAL ALPHA 8", sav.Quetzal},
		{" quetzal ", sav.Quetzal},
	}

	for _, table := range tables {
		c, err := sav.DetectFromTitle(table.title)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, table.want, c)
	}

	_, err := sav.DetectFromTitle("POKEMON RUBY")
	assert.ErrorIs(t, err, sav.ErrUnknownGame)
}

func TestSpeciesName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bulbasaur", sav.Emerald.SpeciesName(1))
	assert.Equal(t, "Celebi", sav.Emerald.SpeciesName(251))
	assert.Equal(t, "Treecko", sav.Emerald.SpeciesName(277))
	assert.Equal(t, "Chimecho", sav.Emerald.SpeciesName(411))

	// The gap between the Johto and Hoenn ranges has no names.
	assert.Equal(t, "Species 252", sav.Emerald.SpeciesName(252))
	assert.Equal(t, "Species 9999", sav.Emerald.SpeciesName(9999))

	// The hack numbers Hoenn species by national dex instead.
	assert.Equal(t, "Treecko", sav.Quetzal.SpeciesName(252))
	assert.Equal(t, "Deoxys", sav.Quetzal.SpeciesName(386))
	assert.Equal(t, "Sigilyph", sav.Quetzal.SpeciesName(561))
	assert.Equal(t, "Pikachu", sav.Quetzal.SpeciesName(25))
}

func TestMoveName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pound", sav.Emerald.MoveName(1))
	assert.Equal(t, "Psychic", sav.Emerald.MoveName(94))
	assert.Equal(t, "Psycho Boost", sav.Emerald.MoveName(354))
	assert.Equal(t, "Move 999", sav.Emerald.MoveName(999))
}

func TestItemName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", sav.Emerald.ItemName(0))
	assert.Equal(t, "Master Ball", sav.Emerald.ItemName(1))
	assert.Equal(t, "Light Ball", sav.Emerald.ItemName(202))
	assert.Equal(t, "Item 500", sav.Emerald.ItemName(500))
}
