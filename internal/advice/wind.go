package advice

import "fmt"

// WindStrength is how hard the wind is blowing.
type WindStrength string

const (
	WindNone   WindStrength = "none"
	WindLight  WindStrength = "light"
	WindMedium WindStrength = "medium"
	WindStrong WindStrength = "strong"
)

// WindDirection is the wind relative to the target line.
type WindDirection string

const (
	DirNone       WindDirection = "none"
	DirInto       WindDirection = "into"
	DirWith       WindDirection = "with"
	DirCrossLeft  WindDirection = "cross-left"
	DirCrossRight WindDirection = "cross-right"
)

var validStrengths = map[WindStrength]bool{
	WindNone:   true,
	WindLight:  true,
	WindMedium: true,
	WindStrong: true,
}

var validDirections = map[WindDirection]bool{
	DirNone:       true,
	DirInto:       true,
	DirWith:       true,
	DirCrossLeft:  true,
	DirCrossRight: true,
}

// ValidateWind returns an error if either value is not recognized.
// An empty value is accepted and means none.
func ValidateWind(s WindStrength, d WindDirection) error {
	if s != "" && !validStrengths[s] {
		return fmt.Errorf("invalid wind strength %q: must be one of: none, light, medium, strong", s)
	}
	if d != "" && !validDirections[d] {
		return fmt.Errorf("invalid wind direction %q: must be one of: none, into, with, cross-left, cross-right", d)
	}
	return nil
}

// windEffect is the distance multiplier and advisory for one
// (strength, direction) pair.
type windEffect struct {
	factor  float64
	comment string
}

// windTable holds the headwind/tailwind effects. Crosswinds never change
// distance and are handled separately.
var windTable = map[WindStrength]map[WindDirection]windEffect{
	WindLight: {
		DirInto: {1.05, "Light headwind: consider half a club more."},
		DirWith: {0.95, "Light downwind: a touch less club."},
	},
	WindMedium: {
		DirInto: {1.10, "Medium headwind: roughly one extra club."},
		DirWith: {0.90, "Medium downwind: roughly one less club."},
	},
	WindStrong: {
		DirInto: {1.18, "Strong headwind: 1–2 extra clubs and a solid, controlled swing."},
		DirWith: {0.85, "Strong downwind: club down and flight it a bit lower."},
	},
}

// CrosswindComment is the advisory for either crosswind direction.
const CrosswindComment = "Crosswind: favor the upwind side and commit to your start line."

// ApplyWind adjusts a distance for wind and returns the advisory text.
// No wind (either value none or unknown) returns the distance unchanged
// and an empty comment.
func ApplyWind(distance float64, strength WindStrength, direction WindDirection) (float64, string) {
	if !validStrengths[strength] || !validDirections[direction] {
		return distance, ""
	}
	if strength == WindNone || direction == DirNone {
		return distance, ""
	}

	switch direction {
	case DirCrossLeft, DirCrossRight:
		return distance, CrosswindComment
	}

	effect, ok := windTable[strength][direction]
	if !ok {
		return distance, ""
	}
	return distance * effect.factor, effect.comment
}
