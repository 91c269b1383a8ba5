package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/caddie-iq/internal/caddie"
	"github.com/HendryAvila/caddie-iq/internal/templates"
)

// StatsTool handles the caddie_stats MCP tool.
type StatsTool struct {
	svc      *caddie.Service
	renderer *templates.Renderer
}

// NewStatsTool creates a StatsTool.
func NewStatsTool(svc *caddie.Service, renderer *templates.Renderer) *StatsTool {
	return &StatsTool{svc: svc, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *StatsTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_stats",
		mcp.WithDescription(
			"Show running stats for a course: holes tracked, fairway %, GIR % and average putts.",
		),
		mcp.WithString("course_id",
			mcp.Required(),
			mcp.Description("Course id from caddie_courses."),
		),
	)
}

// Handle processes the caddie_stats tool call.
func (t *StatsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	courseID := req.GetString("course_id", "")
	if courseID == "" {
		return userError(caddie.ErrNoCourseSelected), nil
	}
	c, ok := t.svc.Course(courseID)
	if !ok {
		return userError(fmt.Errorf("%w %q", caddie.ErrUnknownCourse, courseID)), nil
	}

	stats, tracked := t.svc.CourseStats(c.ID)
	out, err := t.renderer.Render(templates.Stats, templates.StatsData{
		CourseName: c.Name,
		Stats:      stats,
		Tracked:    tracked,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering stats: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}

// StatsResetTool handles the caddie_stats_reset MCP tool.
type StatsResetTool struct {
	svc *caddie.Service
}

// NewStatsResetTool creates a StatsResetTool.
func NewStatsResetTool(svc *caddie.Service) *StatsResetTool {
	return &StatsResetTool{svc: svc}
}

// Definition returns the MCP tool definition for registration.
func (t *StatsResetTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_stats_reset",
		mcp.WithDescription(
			"Erase the running stats for a course. Rounds are not affected. "+
				"Requires `confirm: true` because it cannot be undone.",
		),
		mcp.WithString("course_id",
			mcp.Required(),
			mcp.Description("Course id from caddie_courses."),
		),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true to erase the stats."),
		),
	)
}

// Handle processes the caddie_stats_reset tool call.
func (t *StatsResetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	courseID := req.GetString("course_id", "")
	if courseID == "" {
		return userError(caddie.ErrNoCourseSelected), nil
	}
	if !boolArg(req, "confirm", false) {
		return mcp.NewToolResultError("Reset not confirmed. Ask the player, then call again with `confirm: true`."), nil
	}

	if !t.svc.ResetCourseStats(courseID) {
		return mcp.NewToolResultText(fmt.Sprintf("No stats saved for `%s`; nothing to reset.", courseID)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Stats for `%s` erased.", courseID)), nil
}
