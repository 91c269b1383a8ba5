package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/caddie-iq/internal/caddie"
	"github.com/HendryAvila/caddie-iq/internal/player"
	"github.com/HendryAvila/caddie-iq/internal/templates"
)

// HoleNoteSaveTool handles the caddie_hole_note_save MCP tool.
type HoleNoteSaveTool struct {
	svc *caddie.Service
}

// NewHoleNoteSaveTool creates a HoleNoteSaveTool.
func NewHoleNoteSaveTool(svc *caddie.Service) *HoleNoteSaveTool {
	return &HoleNoteSaveTool{svc: svc}
}

// Definition returns the MCP tool definition for registration.
func (t *HoleNoteSaveTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_hole_note_save",
		mcp.WithDescription(
			"Save what the player knows about a hole. Replaces any earlier note "+
				"for the same hole; omitted fields are saved empty. Advice for the "+
				"hole picks these up automatically.",
		),
		mcp.WithString("course_id",
			mcp.Required(),
			mcp.Description("Course id from caddie_courses."),
		),
		mcp.WithNumber("hole",
			mcp.Required(),
			mcp.Description("Hole number 1-18."),
		),
		mcp.WithString("preferred_club", mcp.Description("Club the player likes off this tee or into this green.")),
		mcp.WithString("usual_miss", mcp.Description("Where the player usually misses here.")),
		mcp.WithString("safe_target", mcp.Description("A safe aiming point.")),
		mcp.WithString("danger_note", mcp.Description("Trouble to remember.")),
		mcp.WithString("mental_cue", mcp.Description("A swing thought or mental cue for the hole.")),
	)
}

// Handle processes the caddie_hole_note_save tool call.
func (t *HoleNoteSaveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	courseID := req.GetString("course_id", "")
	hole, err := intArg(req, "hole", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note := player.HoleNote{
		PreferredClub: req.GetString("preferred_club", ""),
		UsualMiss:     req.GetString("usual_miss", ""),
		SafeTarget:    req.GetString("safe_target", ""),
		DangerNote:    req.GetString("danger_note", ""),
		MentalCue:     req.GetString("mental_cue", ""),
	}

	if err := t.svc.SaveHoleNote(courseID, hole, note); err != nil {
		return userError(err), nil
	}
	c, _ := t.svc.Course(courseID)
	return mcp.NewToolResultText(fmt.Sprintf("Notes saved for %s, %s.", c.Name, c.HoleSummary(hole))), nil
}

// HoleNoteGetTool handles the caddie_hole_note_get MCP tool.
type HoleNoteGetTool struct {
	svc      *caddie.Service
	renderer *templates.Renderer
}

// NewHoleNoteGetTool creates a HoleNoteGetTool.
func NewHoleNoteGetTool(svc *caddie.Service, renderer *templates.Renderer) *HoleNoteGetTool {
	return &HoleNoteGetTool{svc: svc, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *HoleNoteGetTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_hole_note_get",
		mcp.WithDescription("Show the saved notes for a hole."),
		mcp.WithString("course_id",
			mcp.Required(),
			mcp.Description("Course id from caddie_courses."),
		),
		mcp.WithNumber("hole",
			mcp.Required(),
			mcp.Description("Hole number 1-18."),
		),
	)
}

// Handle processes the caddie_hole_note_get tool call.
func (t *HoleNoteGetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	courseID := req.GetString("course_id", "")
	hole, err := intArg(req, "hole", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if courseID == "" {
		return userError(caddie.ErrNoCourseSelected), nil
	}
	c, ok := t.svc.Course(courseID)
	if !ok {
		return userError(fmt.Errorf("%w %q", caddie.ErrUnknownCourse, courseID)), nil
	}
	if _, ok := c.Hole(hole); !ok {
		return userError(fmt.Errorf("%w: got %d", caddie.ErrInvalidHole, hole)), nil
	}

	out, err := t.renderer.Render(templates.HoleNote, templates.HoleNoteData{
		CourseName:  c.Name,
		HoleSummary: c.HoleSummary(hole),
		Note:        t.svc.HoleNote(c.ID, hole),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering hole note: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}

// HoleNoteDeleteTool handles the caddie_hole_note_delete MCP tool.
type HoleNoteDeleteTool struct {
	svc *caddie.Service
}

// NewHoleNoteDeleteTool creates a HoleNoteDeleteTool.
func NewHoleNoteDeleteTool(svc *caddie.Service) *HoleNoteDeleteTool {
	return &HoleNoteDeleteTool{svc: svc}
}

// Definition returns the MCP tool definition for registration.
func (t *HoleNoteDeleteTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_hole_note_delete",
		mcp.WithDescription(
			"Forget the saved notes for a hole. Only call this when the player "+
				"asks for the note to be removed.",
		),
		mcp.WithString("course_id",
			mcp.Required(),
			mcp.Description("Course id from caddie_courses."),
		),
		mcp.WithNumber("hole",
			mcp.Required(),
			mcp.Description("Hole number 1-18."),
		),
	)
}

// Handle processes the caddie_hole_note_delete tool call.
func (t *HoleNoteDeleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	courseID := req.GetString("course_id", "")
	hole, err := intArg(req, "hole", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	deleted, err := t.svc.DeleteHoleNote(courseID, hole)
	if err != nil {
		return userError(err), nil
	}
	c, _ := t.svc.Course(courseID)
	if !deleted {
		return mcp.NewToolResultText(fmt.Sprintf("No notes saved for %s, %s.", c.Name, c.HoleSummary(hole))), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Notes deleted for %s, %s.", c.Name, c.HoleSummary(hole))), nil
}
