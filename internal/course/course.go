// Package course holds the read-only course and hole reference catalog.
//
// The catalog is supplied data: the rest of the system only reads it.
// Courses are looked up by id; holes by their 1-based number.
package course

import (
	"fmt"
	"strings"
)

// Hole is a single hole on a course.
type Hole struct {
	Number  int `json:"number"`
	Par     int `json:"par"`
	Yardage int `json:"yardage"`
}

// Course is an immutable reference course.
type Course struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
	Par   int    `json:"par"`
	Holes []Hole `json:"holes"`
}

// Hole returns the hole with the given number.
func (c Course) Hole(number int) (Hole, bool) {
	for _, h := range c.Holes {
		if h.Number == number {
			return h, true
		}
	}
	return Hole{}, false
}

// Summary is the one-line course description: "City, ST · Par 72 · 18 holes".
func (c Course) Summary() string {
	return fmt.Sprintf("%s, %s · Par %d · %d holes", c.City, c.State, c.Par, len(c.Holes))
}

// HoleSummary describes a hole, falling back to just the number when the
// course has no data for it.
func (c Course) HoleSummary(number int) string {
	h, ok := c.Hole(number)
	if !ok {
		return fmt.Sprintf("Hole %d", number)
	}
	return fmt.Sprintf("Hole %d · Par %d · ~%d yds", h.Number, h.Par, h.Yardage)
}

// Catalog is an ordered, read-only set of courses.
type Catalog struct {
	courses []Course
}

// NewCatalog builds a catalog from the given courses. Order is preserved.
func NewCatalog(courses ...Course) *Catalog {
	cp := make([]Course, len(courses))
	copy(cp, courses)
	return &Catalog{courses: cp}
}

// Find returns the course with the given id. Lookup ignores surrounding
// whitespace; an empty id never matches.
func (c *Catalog) Find(id string) (Course, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Course{}, false
	}
	for _, crs := range c.courses {
		if crs.ID == id {
			return crs, true
		}
	}
	return Course{}, false
}

// All returns a copy of every course in catalog order.
func (c *Catalog) All() []Course {
	out := make([]Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// IDs returns the course ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.courses))
	for i, crs := range c.courses {
		ids[i] = crs.ID
	}
	return ids
}
