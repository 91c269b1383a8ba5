package tracking

import (
	"fmt"
	"math"
)

// CourseStats are the cumulative counters for one course. The same shape
// is embedded in every Round.
type CourseStats struct {
	Shots              int `json:"shots"`
	Fairways           int `json:"fairways"`
	GreensInRegulation int `json:"gir"`
	Putts              int `json:"putts"`
}

// Apply records one outcome. It returns false, leaving the counters
// untouched, when the outcome is empty.
func (s *CourseStats) Apply(o Outcome) bool {
	if o.IsEmpty() {
		return false
	}
	s.Shots++
	if o.Tee == TeeFairway {
		s.Fairways++
	}
	if o.GIR == GIRYes {
		s.GreensInRegulation++
	}
	if n := o.PuttCount(); n > 0 {
		s.Putts += n
	}
	return true
}

// FairwayPct is the rounded fairway percentage, 0 when nothing is tracked.
func (s CourseStats) FairwayPct() int {
	return percent(s.Fairways, s.Shots)
}

// GIRPct is the rounded greens-in-regulation percentage.
func (s CourseStats) GIRPct() int {
	return percent(s.GreensInRegulation, s.Shots)
}

// AvgPutts is putts per tracked hole, 0 when nothing is tracked.
func (s CourseStats) AvgPutts() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Putts) / float64(s.Shots)
}

// AvgPuttsText is AvgPutts with one decimal, e.g. "1.8".
func (s CourseStats) AvgPuttsText() string {
	return fmt.Sprintf("%.1f", s.AvgPutts())
}

// IsZero reports whether nothing has been tracked.
func (s CourseStats) IsZero() bool {
	return s.Shots == 0
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// StatsBook maps course id → stats. A bucket exists only after the first
// recorded outcome for that course.
type StatsBook map[string]CourseStats

// Apply records an outcome against a course, creating the bucket lazily.
// Empty outcomes never create a bucket.
func (b StatsBook) Apply(courseID string, o Outcome) bool {
	s := b[courseID]
	if !s.Apply(o) {
		return false
	}
	b[courseID] = s
	return true
}

// Get returns the stats for a course and whether a bucket exists.
func (b StatsBook) Get(courseID string) (CourseStats, bool) {
	s, ok := b[courseID]
	return s, ok
}

// Reset deletes the course bucket. It reports whether one existed.
func (b StatsBook) Reset(courseID string) bool {
	if _, ok := b[courseID]; !ok {
		return false
	}
	delete(b, courseID)
	return true
}
