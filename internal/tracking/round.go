package tracking

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// DefaultHistoryLimit is how many finished rounds the status view shows.
const DefaultHistoryLimit = 5

// Sentinel errors for round transitions that have no effect.
var (
	ErrNoCourse       = errors.New("no course selected")
	ErrNoActiveRound  = errors.New("no active round")
	ErrCourseMismatch = errors.New("active round is on a different course")
)

// newRoundID returns a time-ordered unique id. Package-level for tests.
var newRoundID = func() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Round is one played round. It accumulates outcomes while active and is
// frozen once Finished is set.
type Round struct {
	ID         string `json:"id"`
	CourseID   string `json:"courseId"`
	CourseName string `json:"courseName"`
	CreatedAt  string `json:"createdAt"`
	CourseStats
	Finished   bool   `json:"finished"`
	FinishedAt string `json:"finishedAt,omitempty"`
}

// RoundLog is the round history plus the active-round pointer. The two are
// always loaded, mutated and saved together.
//
// Invariant: ActiveID is empty or names exactly one unfinished round in
// Rounds. Normalize restores it after loading.
type RoundLog struct {
	Rounds   []Round `json:"rounds"`
	ActiveID string  `json:"activeId,omitempty"`
}

// Status is the read-only view of the round log.
type Status struct {
	Active    *Round  `json:"active"`
	History   []Round `json:"history"`
	Abandoned []Round `json:"abandoned,omitempty"`
}

// Normalize clears a pointer that references a missing or finished round.
// It reports whether anything changed.
func (l *RoundLog) Normalize() bool {
	if l.ActiveID == "" {
		return false
	}
	idx := l.index(l.ActiveID)
	if idx >= 0 && !l.Rounds[idx].Finished {
		return false
	}
	l.ActiveID = ""
	return true
}

// Start appends a new zeroed round for the course and makes it active.
// If another round was active it is left unfinished and returned as
// abandoned; it never receives updates again.
func (l *RoundLog) Start(courseID, courseName string) (started Round, abandoned *Round, err error) {
	if courseID == "" {
		return Round{}, nil, ErrNoCourse
	}

	if prev := l.Active(); prev != nil {
		abandoned = prev
	}

	started = Round{
		ID:         newRoundID(),
		CourseID:   courseID,
		CourseName: courseName,
		CreatedAt:  Now(),
	}
	l.Rounds = append(l.Rounds, started)
	l.ActiveID = started.ID
	return started, abandoned, nil
}

// CanApply checks whether an outcome for courseID would reach the active
// round. Returns an error naming why not.
func (l *RoundLog) CanApply(courseID string) error {
	active := l.Active()
	if active == nil {
		return ErrNoActiveRound
	}
	if active.CourseID != courseID {
		return fmt.Errorf("%w: round %s is on %q, outcome is for %q",
			ErrCourseMismatch, active.ID, active.CourseID, courseID)
	}
	return nil
}

// ApplyOutcome adds an outcome to the active round when its course
// matches. It reports whether the round changed.
func (l *RoundLog) ApplyOutcome(courseID string, o Outcome) bool {
	if l.CanApply(courseID) != nil {
		return false
	}
	idx := l.index(l.ActiveID)
	return l.Rounds[idx].Apply(o)
}

// End finishes the active round and clears the pointer. With no active
// round it does nothing and returns false.
func (l *RoundLog) End() (Round, bool) {
	if l.Active() == nil {
		return Round{}, false
	}
	idx := l.index(l.ActiveID)
	l.Rounds[idx].Finished = true
	l.Rounds[idx].FinishedAt = Now()
	l.ActiveID = ""
	return l.Rounds[idx], true
}

// Active returns a copy of the active round, or nil.
func (l *RoundLog) Active() *Round {
	if l.ActiveID == "" {
		return nil
	}
	idx := l.index(l.ActiveID)
	if idx < 0 || l.Rounds[idx].Finished {
		return nil
	}
	r := l.Rounds[idx]
	return &r
}

// History returns up to limit finished rounds, most recent first.
// A limit <= 0 uses DefaultHistoryLimit.
func (l *RoundLog) History(limit int) []Round {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	out := make([]Round, 0, limit)
	for i := len(l.Rounds) - 1; i >= 0 && len(out) < limit; i-- {
		if l.Rounds[i].Finished {
			out = append(out, l.Rounds[i])
		}
	}
	return out
}

// Abandoned returns unfinished rounds that are no longer active, oldest
// first.
func (l *RoundLog) Abandoned() []Round {
	var out []Round
	for _, r := range l.Rounds {
		if !r.Finished && r.ID != l.ActiveID {
			out = append(out, r)
		}
	}
	return out
}

// Status builds the read-only view.
func (l *RoundLog) Status(limit int) Status {
	return Status{
		Active:    l.Active(),
		History:   l.History(limit),
		Abandoned: l.Abandoned(),
	}
}

func (l *RoundLog) index(id string) int {
	for i := range l.Rounds {
		if l.Rounds[i].ID == id {
			return i
		}
	}
	return -1
}
