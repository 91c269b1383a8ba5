// Package templates renders the markdown cards shown by every host: the
// MCP tools return them as text and the CLI prints them to the terminal.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/HendryAvila/caddie-iq/internal/advice"
	"github.com/HendryAvila/caddie-iq/internal/course"
	"github.com/HendryAvila/caddie-iq/internal/player"
	"github.com/HendryAvila/caddie-iq/internal/tracking"
)

//go:embed *.md.tmpl
var files embed.FS

// Template names.
const (
	Advice      = "advice.md.tmpl"
	Stats       = "stats.md.tmpl"
	RoundStatus = "round_status.md.tmpl"
	RoundEnd    = "round_end.md.tmpl"
	Bag         = "bag.md.tmpl"
	HoleNote    = "hole_note.md.tmpl"
	Profile     = "profile.md.tmpl"
	Courses     = "courses.md.tmpl"
)

// AdviceData feeds the Advice template.
type AdviceData struct {
	CourseName  string
	HoleSummary string
	Advice      advice.Advice
}

// StatsData feeds the Stats template. Tracked is false when the course
// has no bucket.
type StatsData struct {
	CourseName string
	Stats      tracking.CourseStats
	Tracked    bool
}

// RoundStatusData feeds the RoundStatus template.
type RoundStatusData struct {
	Status       tracking.Status
	HistoryLimit int
}

// HoleNoteData feeds the HoleNote template.
type HoleNoteData struct {
	CourseName  string
	HoleSummary string
	Note        player.HoleNote
}

// BagData feeds the Bag template.
type BagData struct {
	Entries []player.BagEntry
}

// CoursesData feeds the Courses template.
type CoursesData struct {
	Courses []course.Course
}

// Renderer holds the parsed template set.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses every embedded template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(files, "*.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template.
func (r *Renderer) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
