package advice

import (
	"math"

	"github.com/HendryAvila/caddie-iq/internal/player"
)

// CloseMatchYards is the default largest carry gap that still counts as a
// close bag match.
const CloseMatchYards = 10

// NearestClub returns the bag entry whose carry is closest to distance.
// Equal gaps resolve to the club that comes first in canonical order.
// The second result is false when the bag is empty.
func NearestClub(distance float64, entries []player.BagEntry) (player.BagEntry, bool) {
	var (
		best    player.BagEntry
		bestGap = math.Inf(1)
		found   bool
	)
	for _, e := range entries {
		gap := math.Abs(float64(e.Carry) - distance)
		switch {
		case gap < bestGap:
		case gap == bestGap && player.ClubLess(e.Club, best.Club):
		default:
			continue
		}
		best, bestGap, found = e, gap, true
	}
	return best, found
}

// CarryGap is the absolute difference between an entry's carry and distance.
func CarryGap(e player.BagEntry, distance float64) float64 {
	return math.Abs(float64(e.Carry) - distance)
}
