// Package tracking holds the performance counters: per-course stats and the
// round log with its single active-round pointer.
//
// Both are driven by the same Outcome events. The types here are pure
// values; the caddie service loads them, applies transitions and saves
// them back under one lock.
package tracking

// Outcome result literals that count toward the percentages.
const (
	TeeFairway = "fairway"
	GIRYes     = "yes"
)

// Outcome is one recorded hole result. Each field is independently
// optional: an empty Tee or GIR and a nil Putts mean "not entered".
type Outcome struct {
	Tee   string `json:"tee,omitempty"`
	GIR   string `json:"gir,omitempty"`
	Putts *int   `json:"putts,omitempty"`
}

// PuttCount returns the putts entered, or 0 when none were.
func (o Outcome) PuttCount() int {
	if o.Putts == nil {
		return 0
	}
	return *o.Putts
}

// IsEmpty reports whether the outcome carries no data. A putt count that
// is not positive does not count as data on its own.
func (o Outcome) IsEmpty() bool {
	return o.Tee == "" && o.GIR == "" && o.PuttCount() <= 0
}

// Putts is a helper for building an Outcome with an entered putt count.
func Putts(n int) *int {
	return &n
}
