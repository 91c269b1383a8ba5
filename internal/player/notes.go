package player

import "strings"

// HoleNote is what the player remembers about one hole. Every field is
// optional free text.
type HoleNote struct {
	PreferredClub string `json:"preferredClub,omitempty"`
	UsualMiss     string `json:"usualMiss,omitempty"`
	SafeTarget    string `json:"safeTarget,omitempty"`
	DangerNote    string `json:"dangerNote,omitempty"`
	MentalCue     string `json:"mentalCue,omitempty"`
}

// Normalize trims every field.
func (n HoleNote) Normalize() HoleNote {
	return HoleNote{
		PreferredClub: strings.TrimSpace(n.PreferredClub),
		UsualMiss:     strings.TrimSpace(n.UsualMiss),
		SafeTarget:    strings.TrimSpace(n.SafeTarget),
		DangerNote:    strings.TrimSpace(n.DangerNote),
		MentalCue:     strings.TrimSpace(n.MentalCue),
	}
}

// IsZero reports whether the note carries no text at all.
func (n HoleNote) IsZero() bool {
	return n == HoleNote{}
}

// NoteBook maps course id → hole number → note. Hole numbers serialize as
// JSON object keys ("1".."18").
type NoteBook map[string]map[int]HoleNote

// Get returns the note for (courseID, hole), or the zero note.
func (nb NoteBook) Get(courseID string, hole int) HoleNote {
	if nb == nil {
		return HoleNote{}
	}
	return nb[courseID][hole]
}

// Put stores the normalized note, creating the course bucket lazily.
// Saving an all-empty note keeps the entry, matching the explicit save action.
func (nb NoteBook) Put(courseID string, hole int, note HoleNote) {
	if nb[courseID] == nil {
		nb[courseID] = make(map[int]HoleNote)
	}
	nb[courseID][hole] = note.Normalize()
}

// Delete removes the note for (courseID, hole) and reports whether one
// was there. Empty course buckets are dropped.
func (nb NoteBook) Delete(courseID string, hole int) bool {
	holes, ok := nb[courseID]
	if !ok {
		return false
	}
	if _, ok := holes[hole]; !ok {
		return false
	}
	delete(holes, hole)
	if len(holes) == 0 {
		delete(nb, courseID)
	}
	return true
}
