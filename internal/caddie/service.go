// Package caddie is the application facade over the advice engine, the
// stats aggregator, the round state machine and the player's saved data.
//
// Every mutation loads what it needs, applies a pure transition and writes
// back inside one store.Update, which holds the backend's exclusive lock
// for the whole cycle. Two processes sharing a data dir (a CLI run next to
// the MCP server) therefore never lose each other's writes. A service-wide
// mutex additionally orders requests within one process.
package caddie

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/HendryAvila/caddie-iq/internal/advice"
	"github.com/HendryAvila/caddie-iq/internal/course"
	"github.com/HendryAvila/caddie-iq/internal/logging"
	"github.com/HendryAvila/caddie-iq/internal/player"
	"github.com/HendryAvila/caddie-iq/internal/store"
	"github.com/HendryAvila/caddie-iq/internal/tracking"
)

// Options tune a Service. Zero values fall back to package defaults.
type Options struct {
	HistoryLimit    int
	CloseMatchYards int
	Logger          logrus.FieldLogger
}

// Service is the single entry point used by every host.
type Service struct {
	mu      sync.Mutex
	store   *store.Store
	catalog *course.Catalog
	opts    Options
	log     logrus.FieldLogger
}

// New wires a Service over an injected store and course catalog.
func New(st *store.Store, catalog *course.Catalog, opts Options) *Service {
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = tracking.DefaultHistoryLimit
	}
	if opts.CloseMatchYards <= 0 {
		opts.CloseMatchYards = advice.CloseMatchYards
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Service{store: st, catalog: catalog, opts: opts, log: log}
}

// OutcomeResult reports what recording an outcome changed.
type OutcomeResult struct {
	// Recorded is false when the outcome was empty and nothing changed.
	Recorded bool
	// Stats are the course stats after the outcome.
	Stats tracking.CourseStats
	// Round is the active round after the outcome, when it received it.
	Round *tracking.Round
}

// ─── Advice ──────────────────────────────────────────────────────────────────

// BuildRecommendation produces advice for a shot, folding in the player's
// profile, bag and the saved note for (courseID, hole). courseID may be
// empty; the advice then uses no hole note.
func (s *Service) BuildRecommendation(shot advice.ShotContext, courseID string, hole int) advice.Advice {
	s.mu.Lock()
	defer s.mu.Unlock()

	courseID = strings.TrimSpace(courseID)
	if c, ok := s.catalog.Find(courseID); ok && shot.Par == 0 {
		if h, ok := c.Hole(hole); ok {
			shot.Par = h.Par
		}
	}

	ctx := advice.Context{
		Profile:         loadProfile(s.store),
		Note:            loadNotes(s.store).Get(courseID, hole),
		Bag:             loadBag(s.store).Sorted(),
		CloseMatchYards: s.opts.CloseMatchYards,
	}
	return advice.Synthesize(shot, ctx)
}

// ─── Outcomes, stats and rounds ──────────────────────────────────────────────

// ApplyShotOutcome records an outcome against the course stats and, when
// a round is active on the same course, against that round. An empty
// outcome changes nothing and is not an error. A non-positive putt count
// is ignored; the tee and green parts of the outcome still count.
func (s *Service) ApplyShotOutcome(courseID string, o tracking.Outcome) (OutcomeResult, error) {
	c, err := s.resolveCourse(courseID)
	if err != nil {
		return OutcomeResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var res OutcomeResult
	err = s.store.Update(roundKeys(store.KeyStats), func(tx *store.Tx) error {
		stats := loadStats(tx)
		if !stats.Apply(c.ID, o) {
			res.Stats, _ = stats.Get(c.ID)
			logging.WithCourse(s.log, c.ID).Debug("empty outcome ignored")
			return nil
		}
		tx.Save(store.KeyStats, stats)
		res.Recorded = true
		res.Stats, _ = stats.Get(c.ID)

		rounds := s.loadRounds(tx)
		if err := rounds.CanApply(c.ID); err != nil {
			logging.WithCourse(s.log, c.ID).WithError(err).Debug("outcome not applied to a round")
			return nil
		}
		rounds.ApplyOutcome(c.ID, o)
		saveRounds(tx, rounds)
		res.Round = rounds.Active()
		return nil
	})
	return res, err
}

// StartRound begins a round on the course. Starting while another round
// is active abandons that round: it stays unfinished in the log and never
// receives updates again.
func (s *Service) StartRound(courseID string) (tracking.Round, error) {
	c, err := s.resolveCourse(courseID)
	if err != nil {
		return tracking.Round{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var started, abandoned *tracking.Round
	err = s.store.Update(roundKeys(), func(tx *store.Tx) error {
		rounds := s.loadRounds(tx)
		r, old, err := rounds.Start(c.ID, c.Name)
		if err != nil {
			return err
		}
		saveRounds(tx, rounds)
		started, abandoned = &r, old
		return nil
	})
	if err != nil {
		return tracking.Round{}, err
	}

	if abandoned != nil {
		logging.WithRound(s.log, abandoned.ID, abandoned.CourseID).
			WithField("replaced_by", started.ID).
			Warn("active round abandoned by a new start")
	}
	logging.WithRound(s.log, started.ID, c.ID).Info("round started")
	return *started, nil
}

// EndRound finishes the active round. The second result is false, and
// nothing is written, when no round was active.
func (s *Service) EndRound() (tracking.Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		ended tracking.Round
		ok    bool
	)
	_ = s.store.Update(roundKeys(), func(tx *store.Tx) error {
		rounds := s.loadRounds(tx)
		if ended, ok = rounds.End(); ok {
			saveRounds(tx, rounds)
		}
		return nil
	})
	if !ok {
		s.log.Debug("end round with no active round ignored")
		return tracking.Round{}, false
	}
	logging.WithRound(s.log, ended.ID, ended.CourseID).Info("round finished")
	return ended, true
}

// RoundStatus returns the active round and the most recent finished ones.
func (s *Service) RoundStatus() tracking.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	rounds := s.loadRounds(s.store)
	return rounds.Status(s.opts.HistoryLimit)
}

// CourseStats returns the cumulative stats for a course and whether any
// outcome has been recorded there.
func (s *Service) CourseStats(courseID string) (tracking.CourseStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadStats(s.store).Get(strings.TrimSpace(courseID))
}

// ResetCourseStats deletes the course's stats. It reports whether there
// was anything to delete.
func (s *Service) ResetCourseStats(courseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	courseID = strings.TrimSpace(courseID)
	var reset bool
	_ = s.store.Update([]string{store.KeyStats}, func(tx *store.Tx) error {
		stats := loadStats(tx)
		if reset = stats.Reset(courseID); reset {
			tx.Save(store.KeyStats, stats)
		}
		return nil
	})
	if !reset {
		return false
	}
	logging.WithCourse(s.log, courseID).Info("course stats reset")
	return true
}

// ─── Hole notes ──────────────────────────────────────────────────────────────

// SaveHoleNote replaces the note for (courseID, hole).
func (s *Service) SaveHoleNote(courseID string, hole int, note player.HoleNote) error {
	c, err := s.resolveCourse(courseID)
	if err != nil {
		return err
	}
	if _, ok := c.Hole(hole); !ok {
		return fmt.Errorf("%w: got %d", ErrInvalidHole, hole)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Update([]string{store.KeyNotes}, func(tx *store.Tx) error {
		notes := loadNotes(tx)
		notes.Put(c.ID, hole, note)
		tx.Save(store.KeyNotes, notes)
		return nil
	})
}

// DeleteHoleNote removes the note for (courseID, hole). It reports whether
// a note was there.
func (s *Service) DeleteHoleNote(courseID string, hole int) (bool, error) {
	c, err := s.resolveCourse(courseID)
	if err != nil {
		return false, err
	}
	if _, ok := c.Hole(hole); !ok {
		return false, fmt.Errorf("%w: got %d", ErrInvalidHole, hole)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted bool
	err = s.store.Update([]string{store.KeyNotes}, func(tx *store.Tx) error {
		notes := loadNotes(tx)
		if deleted = notes.Delete(c.ID, hole); deleted {
			tx.Save(store.KeyNotes, notes)
		}
		return nil
	})
	if deleted {
		logging.WithCourse(s.log, c.ID).WithField("hole", hole).Info("hole note deleted")
	}
	return deleted, err
}

// HoleNote returns the saved note, or the zero note.
func (s *Service) HoleNote(courseID string, hole int) player.HoleNote {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadNotes(s.store).Get(strings.TrimSpace(courseID), hole)
}

// ─── Bag ─────────────────────────────────────────────────────────────────────

// SaveBagEntry validates and stores a club, replacing any entry with the
// same id. It returns the normalized entry.
func (s *Service) SaveBagEntry(entry player.BagEntry) (player.BagEntry, error) {
	valid, err := entry.Validate()
	if err != nil {
		return player.BagEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.store.Update([]string{store.KeyBag}, func(tx *store.Tx) error {
		bag := loadBag(tx)
		bag[valid.Club] = valid
		tx.Save(store.KeyBag, bag)
		return nil
	})
	return valid, nil
}

// DeleteBagEntry removes a club. It reports whether the club was present.
func (s *Service) DeleteBagEntry(clubID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	clubID = player.NormalizeClubID(clubID)
	var found bool
	_ = s.store.Update([]string{store.KeyBag}, func(tx *store.Tx) error {
		bag := loadBag(tx)
		if _, found = bag[clubID]; found {
			delete(bag, clubID)
			tx.Save(store.KeyBag, bag)
		}
		return nil
	})
	return found
}

// ListBag returns the bag in canonical club order.
func (s *Service) ListBag() []player.BagEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadBag(s.store).Sorted()
}

// ─── Profile and courses ─────────────────────────────────────────────────────

// SaveProfile stores the normalized profile and returns it.
func (s *Service) SaveProfile(p player.Profile) player.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p = p.Normalize()
	_ = s.store.Update([]string{store.KeyProfile}, func(tx *store.Tx) error {
		tx.Save(store.KeyProfile, p)
		return nil
	})
	return p
}

// Profile returns the saved profile, or the zero profile.
func (s *Service) Profile() player.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadProfile(s.store)
}

// Courses lists the catalog.
func (s *Service) Courses() []course.Course {
	return s.catalog.All()
}

// Course looks up one course by id.
func (s *Service) Course(id string) (course.Course, bool) {
	return s.catalog.Find(id)
}

// HistoryLimit is the number of finished rounds RoundStatus returns.
func (s *Service) HistoryLimit() int {
	return s.opts.HistoryLimit
}

// ─── Internal ────────────────────────────────────────────────────────────────

func (s *Service) resolveCourse(id string) (course.Course, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return course.Course{}, ErrNoCourseSelected
	}
	c, ok := s.catalog.Find(id)
	if !ok {
		return course.Course{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownCourse, id, strings.Join(s.catalog.IDs(), ", "))
	}
	return c, nil
}

// roundKeys returns the round log keys plus extra.
func roundKeys(extra ...string) []string {
	return append([]string{store.KeyRounds, store.KeyActiveRound}, extra...)
}

// The loaders below read from the store or from an Update snapshot. They
// pre-fill defaults, so a missing or corrupt key reads as "nothing saved
// yet". A stored JSON null decodes to a nil map, which is replaced before
// returning.

func loadProfile(r store.Reader) player.Profile {
	var p player.Profile
	r.Load(store.KeyProfile, &p)
	return p
}

func loadNotes(r store.Reader) player.NoteBook {
	notes := player.NoteBook{}
	r.Load(store.KeyNotes, &notes)
	if notes == nil {
		notes = player.NoteBook{}
	}
	return notes
}

func loadBag(r store.Reader) player.Bag {
	bag := player.Bag{}
	r.Load(store.KeyBag, &bag)
	if bag == nil {
		bag = player.Bag{}
	}
	return bag
}

func loadStats(r store.Reader) tracking.StatsBook {
	stats := tracking.StatsBook{}
	r.Load(store.KeyStats, &stats)
	if stats == nil {
		stats = tracking.StatsBook{}
	}
	return stats
}

func (s *Service) loadRounds(r store.Reader) *tracking.RoundLog {
	var l tracking.RoundLog
	r.Load(store.KeyRounds, &l.Rounds)
	r.Load(store.KeyActiveRound, &l.ActiveID)
	stale := l.ActiveID
	if l.Normalize() {
		s.log.WithField("round_id", stale).Warn("stale active round pointer cleared")
	}
	return &l
}

// saveRounds buffers the log and the pointer together.
func saveRounds(tx *store.Tx, l *tracking.RoundLog) {
	rounds := l.Rounds
	if rounds == nil {
		rounds = []tracking.Round{}
	}
	tx.SaveAll(
		store.Entry{Key: store.KeyRounds, Value: rounds},
		store.Entry{Key: store.KeyActiveRound, Value: l.ActiveID},
	)
}
