package sav

import "errors"

// ErrNoValidSlot is returned when neither wear-leveling slot holds a
// valid copy of the required sectors, meaning no save can be
// reconstructed.
var ErrNoValidSlot = errors.New("no valid save slot")

// The game alternates between two slots of 14 sectors on every save.
// Sectors beyond the second slot (Hall of Fame and friends) belong to
// neither slot and are carried through untouched.
const (
	slotSectors = 14
	slotCount   = 2
)

// saveSlot is one wear-leveling generation: the valid sectors of a
// physical slot range, keyed by the logical id from their footers.
type saveSlot struct {
	index   int
	sectors map[uint16]int // logical id -> physical sector index
	counter uint32
	valid   int
}

func (s *saveSlot) complete(required []uint16) bool {
	for _, id := range required {
		if _, ok := s.sectors[id]; !ok {
			return false
		}
	}

	return true
}

// buildSlot collects the valid sectors of one physical slot range and
// its majority save counter.
func buildSlot(sectors []sector, index int, signature uint32) *saveSlot {
	s := &saveSlot{
		index:   index,
		sectors: make(map[uint16]int, slotSectors),
	}

	counters := make([]uint32, 0, slotSectors)

	for phys := index * slotSectors; phys < (index+1)*slotSectors && phys < len(sectors); phys++ {
		sec := &sectors[phys]
		if sec.isValid(signature) != nil || sec.ID >= slotSectors {
			continue
		}

		s.sectors[sec.ID] = phys
		s.valid++
		counters = append(counters, sec.Counter)
	}

	s.counter = majorityCounter(counters)

	return s
}

// majorityCounter picks the save counter shared by most of the slot's
// valid sectors. A mixed set indicates a partially torn write; the
// majority value is the generation the slot belongs to. Ties resolve to
// the higher counter.
func majorityCounter(counters []uint32) uint32 {
	tally := make(map[uint32]int, len(counters))

	var best uint32

	bestCount := 0

	for _, c := range counters {
		tally[c]++

		if n := tally[c]; n > bestCount || n == bestCount && c > best {
			best, bestCount = c, n
		}
	}

	return best
}

// resolveActiveSlot groups the image's valid sectors into the two slots
// and picks the most recently written one: the slot whose majority save
// counter is strictly higher wins, ties fall to the slot with more
// valid sectors and then to the lower slot index. Only slots carrying
// every required sector qualify, so a torn active slot falls back to
// its intact sibling.
func resolveActiveSlot(sectors []sector, c *GameConfig) (*saveSlot, error) {
	required := c.requiredSectors()

	var active *saveSlot

	for index := 0; index < slotCount; index++ {
		slot := buildSlot(sectors, index, c.signature)
		if !slot.complete(required) {
			continue
		}

		switch {
		case active == nil:
			active = slot
		case slot.counter > active.counter:
			active = slot
		case slot.counter == active.counter && slot.valid > active.valid:
			active = slot
		}
	}

	if active == nil {
		return nil, ErrNoValidSlot
	}

	return active, nil
}
