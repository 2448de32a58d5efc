package sav

// Values derived from a Pokémon's 32-bit personality seed. These are
// pure functions of (personality, trainer id) and never touch the
// record bytes, so they are safe to recompute after any edit.

//nolint:gochecknoglobals
var natureNames = [25]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

const (
	natureCount    = 25
	shinyThreshold = 8
	halfShift      = 16
)

// Nature returns the nature name selected by the personality value.
func Nature(personality uint32) string {
	return natureNames[personality%natureCount]
}

// ShinyValue XORs the 16-bit halves of the personality value and the
// trainer id. Values below the shiny threshold make the Pokémon shiny.
func ShinyValue(personality, otID uint32) uint16 {
	return uint16(personality>>halfShift) ^ uint16(personality) ^
		uint16(otID>>halfShift) ^ uint16(otID)
}

// IsShiny reports whether the personality and trainer id combination
// produces a shiny Pokémon.
func IsShiny(personality, otID uint32) bool {
	return ShinyValue(personality, otID) < shinyThreshold
}
