package advice

// clubBand maps an exclusive lower bound (yards) to a club label.
type clubBand struct {
	over  float64
	label string
}

// clubBands is ordered from longest to shortest. A distance exactly equal
// to a bound belongs to the next band down.
var clubBands = []clubBand{
	{230, "Driver or strong 3 wood"},
	{210, "3 wood or hybrid"},
	{195, "5 wood / hybrid"},
	{180, "4 or 5 iron"},
	{165, "6 iron"},
	{155, "7 iron"},
	{145, "8 iron"},
	{135, "9 iron"},
	{120, "Pitching wedge"},
	{105, "Gap wedge"},
	{90, "Sand wedge"},
}

// ShortGameClub is the band for anything 90 yards and in.
const ShortGameClub = "Lob wedge or bump-and-run"

// SuggestClub maps an adjusted distance to a club band.
func SuggestClub(distance float64) string {
	for _, b := range clubBands {
		if distance > b.over {
			return b.label
		}
	}
	return ShortGameClub
}
