// Package advice is the rule-based caddie: it turns a shot context plus the
// player's saved context into a club, strategy, conditions and mental-cue
// recommendation.
//
// Everything here is pure. The synthesizer never reads or writes the store;
// callers hand it the profile, hole note and bag they already loaded.
package advice

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/HendryAvila/caddie-iq/internal/player"
)

// Lie is the ball's lie category.
type Lie string

const (
	LieFairway Lie = "fairway"
	LieRough   Lie = "rough"
	LieSand    Lie = "sand"
	LieOther   Lie = "other"
)

var validLies = map[Lie]bool{
	LieFairway: true,
	LieRough:   true,
	LieSand:    true,
	LieOther:   true,
}

// ValidateLie returns an error if the lie is not recognized. Empty means
// fairway.
func ValidateLie(l Lie) error {
	if l != "" && !validLies[l] {
		return fmt.Errorf("invalid lie %q: must be one of: fairway, rough, sand, other", l)
	}
	return nil
}

// Hazards are the four independent trouble flags around the target.
type Hazards struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Short bool `json:"short"`
	Long  bool `json:"long"`
}

// ShotContext describes one upcoming shot. It is never persisted.
type ShotContext struct {
	Distance      float64       `json:"distance"`
	Par           int           `json:"par,omitempty"`
	Lie           Lie           `json:"lie"`
	WindStrength  WindStrength  `json:"windStrength"`
	WindDirection WindDirection `json:"windDirection"`
	Hazards       Hazards       `json:"hazards"`
}

// HasDistance reports whether the distance is a usable positive number.
func (s ShotContext) HasDistance() bool {
	return s.Distance > 0 && !math.IsInf(s.Distance, 0) && !math.IsNaN(s.Distance)
}

// ParseDistance parses a free-text distance such as "152" or "152.5 yds".
// Anything that is not a positive finite number yields false.
func ParseDistance(raw string) (float64, bool) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	for _, unit := range []string{"yards", "yds", "yd", "y"} {
		if strings.HasSuffix(raw, unit) {
			raw = strings.TrimSpace(strings.TrimSuffix(raw, unit))
			break
		}
	}
	if raw == "" {
		return 0, false
	}
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil || d <= 0 || math.IsInf(d, 0) || math.IsNaN(d) {
		return 0, false
	}
	return d, true
}

// Recommendation is the four-section caddie output plus the structured
// pieces it was built from.
type Recommendation struct {
	// Club section.
	Club             string  `json:"club"`
	SuggestedClub    string  `json:"suggestedClub"`
	PreferredClub    string  `json:"preferredClub,omitempty"`
	AdjustedDistance float64 `json:"adjustedDistance"`

	// NearestClub is set only when the bag has a close match.
	NearestClub *player.BagEntry `json:"nearestClub,omitempty"`

	// Strategy section.
	Strategy   string `json:"strategy"`
	SafeTarget string `json:"safeTarget,omitempty"`
	DangerNote string `json:"dangerNote,omitempty"`

	// Conditions section.
	Conditions string `json:"conditions"`
	WindNote   string `json:"windNote"`
	LieNote    string `json:"lieNote"`

	MentalCue string `json:"mentalCue"`
}

// RoundedDistance is the adjusted distance rounded to whole yards.
func (r Recommendation) RoundedDistance() int {
	return int(math.Round(r.AdjustedDistance))
}

// Advice is either a prompt asking for more input or a recommendation.
type Advice struct {
	Prompt         string          `json:"prompt,omitempty"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
}

// NeedsInput reports whether the advice is prompt-only.
func (a Advice) NeedsInput() bool {
	return a.Recommendation == nil
}

// Context is the saved player state the synthesizer reads.
type Context struct {
	Profile player.Profile
	Note    player.HoleNote
	Bag     []player.BagEntry

	// CloseMatchYards overrides the default close-match window when > 0.
	CloseMatchYards int
}
