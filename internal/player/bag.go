package player

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidBagEntry is returned when a bag entry fails validation.
var ErrInvalidBagEntry = errors.New("invalid bag entry")

// ClubOrder is the canonical display sequence: driver, woods, hybrids,
// irons, wedges, putter.
var ClubOrder = []string{
	"driver",
	"3w", "5w", "7w",
	"2h", "3h", "4h", "5h",
	"2i", "3i", "4i", "5i", "6i", "7i", "8i", "9i",
	"pw", "gw", "sw", "lw",
	"putter",
}

// clubIndex maps a club id to its position in ClubOrder.
var clubIndex = func() map[string]int {
	m := make(map[string]int, len(ClubOrder))
	for i, id := range ClubOrder {
		m[id] = i
	}
	return m
}()

// ClubIndex returns the canonical position of a club id. Unknown ids sort
// after every known club.
func ClubIndex(clubID string) int {
	if i, ok := clubIndex[clubID]; ok {
		return i
	}
	return len(ClubOrder)
}

// NormalizeClubID lower-cases and trims a club id.
func NormalizeClubID(clubID string) string {
	return strings.ToLower(strings.TrimSpace(clubID))
}

// BagEntry is one club in the player's bag with its carry distance in yards.
type BagEntry struct {
	Club  string `json:"club"`
	Label string `json:"label"`
	Carry int    `json:"carry"`
	Note  string `json:"note,omitempty"`
}

// Validate checks the entry and returns a normalized copy. The label
// defaults to the club id.
func (e BagEntry) Validate() (BagEntry, error) {
	out := BagEntry{
		Club:  NormalizeClubID(e.Club),
		Label: strings.TrimSpace(e.Label),
		Carry: e.Carry,
		Note:  strings.TrimSpace(e.Note),
	}
	if out.Club == "" {
		return BagEntry{}, fmt.Errorf("%w: club id is required", ErrInvalidBagEntry)
	}
	if out.Carry <= 0 {
		return BagEntry{}, fmt.Errorf("%w: carry for %q must be a positive number of yards, got %d",
			ErrInvalidBagEntry, out.Club, out.Carry)
	}
	if out.Label == "" {
		out.Label = out.Club
	}
	return out, nil
}

// Bag maps club id → entry. Storage order is irrelevant; use Sorted for
// display.
type Bag map[string]BagEntry

// Sorted returns the entries in canonical club order. Unknown clubs come
// last, alphabetically by id.
func (b Bag) Sorted() []BagEntry {
	entries := make([]BagEntry, 0, len(b))
	for _, e := range b {
		entries = append(entries, e)
	}
	SortEntries(entries)
	return entries
}

// SortEntries sorts entries in place in canonical club order.
func SortEntries(entries []BagEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return ClubLess(entries[i].Club, entries[j].Club)
	})
}

// ClubLess orders two club ids canonically, breaking ties by id.
func ClubLess(a, b string) bool {
	ia, ib := ClubIndex(a), ClubIndex(b)
	if ia != ib {
		return ia < ib
	}
	return a < b
}
