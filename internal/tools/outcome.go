package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/caddie-iq/internal/caddie"
	"github.com/HendryAvila/caddie-iq/internal/templates"
	"github.com/HendryAvila/caddie-iq/internal/tracking"
)

// RecordOutcomeTool handles the caddie_record_outcome MCP tool.
type RecordOutcomeTool struct {
	svc      *caddie.Service
	renderer *templates.Renderer
}

// NewRecordOutcomeTool creates a RecordOutcomeTool.
func NewRecordOutcomeTool(svc *caddie.Service, renderer *templates.Renderer) *RecordOutcomeTool {
	return &RecordOutcomeTool{svc: svc, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *RecordOutcomeTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_record_outcome",
		mcp.WithDescription(
			"Record how a hole went. Updates the course's running stats and, "+
				"when a round is active on the same course, that round too. "+
				"Every field is optional, but at least one must be given.",
		),
		mcp.WithString("course_id",
			mcp.Required(),
			mcp.Description("Course id from caddie_courses."),
		),
		mcp.WithString("tee",
			mcp.Description("Tee shot result. Only `fairway` counts as a fairway hit."),
			mcp.Enum("fairway", "left", "right", "short", "long"),
		),
		mcp.WithString("gir",
			mcp.Description("Green in regulation."),
			mcp.Enum("yes", "no"),
		),
		mcp.WithNumber("putts",
			mcp.Description("Number of putts on the hole, a whole number. Zero or less is not counted."),
		),
	)
}

// Handle processes the caddie_record_outcome tool call.
func (t *RecordOutcomeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	courseID := req.GetString("course_id", "")
	o := tracking.Outcome{
		Tee: strings.TrimSpace(req.GetString("tee", "")),
		GIR: strings.TrimSpace(req.GetString("gir", "")),
	}
	n, ok, err := optionalIntArg(req, "putts")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ok {
		o.Putts = tracking.Putts(n)
	}

	res, err := t.svc.ApplyShotOutcome(courseID, o)
	if err != nil {
		return userError(err), nil
	}
	if !res.Recorded {
		return mcp.NewToolResultText("Nothing recorded: give a tee result, GIR or a putt count."), nil
	}

	c, _ := t.svc.Course(courseID)
	statsCard, err := t.renderer.Render(templates.Stats, templates.StatsData{
		CourseName: c.Name,
		Stats:      res.Stats,
		Tracked:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering stats: %w", err)
	}

	var b strings.Builder
	b.WriteString("Outcome recorded.\n\n")
	if o.PuttCount() < 0 {
		fmt.Fprintf(&b, "Ignored putt count %d; tee and green results still count.\n\n", o.PuttCount())
	}
	b.WriteString(statsCard)
	if res.Round != nil {
		fmt.Fprintf(&b, "\nAdded to the active round: %d holes tracked.\n", res.Round.Shots)
	}
	return mcp.NewToolResultText(b.String()), nil
}
