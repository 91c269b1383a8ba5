package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/caddie-iq/internal/caddie"
	"github.com/HendryAvila/caddie-iq/internal/templates"
)

// RoundStartTool handles the caddie_round_start MCP tool.
type RoundStartTool struct {
	svc *caddie.Service
}

// NewRoundStartTool creates a RoundStartTool.
func NewRoundStartTool(svc *caddie.Service) *RoundStartTool {
	return &RoundStartTool{svc: svc}
}

// Definition returns the MCP tool definition for registration.
func (t *RoundStartTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_round_start",
		mcp.WithDescription(
			"Start a new round on a course. Outcomes recorded on that course "+
				"are added to the round until it is ended. Starting while another "+
				"round is active abandons the old one.",
		),
		mcp.WithString("course_id",
			mcp.Required(),
			mcp.Description("Course id from caddie_courses."),
		),
	)
}

// Handle processes the caddie_round_start tool call.
func (t *RoundStartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prev := t.svc.RoundStatus().Active

	r, err := t.svc.StartRound(req.GetString("course_id", ""))
	if err != nil {
		return userError(err), nil
	}

	response := fmt.Sprintf(
		"# Round started\n\n"+
			"**Course:** %s\n"+
			"**Round ID:** `%s`\n"+
			"**Started:** %s\n\n"+
			"Record each hole with `caddie_record_outcome`; finish with `caddie_round_end`.\n",
		r.CourseName, r.ID, r.CreatedAt,
	)
	if prev != nil {
		response += fmt.Sprintf("\nThe previous round on %s (`%s`) was left unfinished.\n", prev.CourseName, prev.ID)
	}
	return mcp.NewToolResultText(response), nil
}

// RoundEndTool handles the caddie_round_end MCP tool.
type RoundEndTool struct {
	svc      *caddie.Service
	renderer *templates.Renderer
}

// NewRoundEndTool creates a RoundEndTool.
func NewRoundEndTool(svc *caddie.Service, renderer *templates.Renderer) *RoundEndTool {
	return &RoundEndTool{svc: svc, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *RoundEndTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_round_end",
		mcp.WithDescription(
			"Finish the active round and move it to history. Does nothing when no round is active.",
		),
	)
}

// Handle processes the caddie_round_end tool call.
func (t *RoundEndTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, ok := t.svc.EndRound()
	if !ok {
		return mcp.NewToolResultText("No active round to end."), nil
	}
	out, err := t.renderer.Render(templates.RoundEnd, r)
	if err != nil {
		return nil, fmt.Errorf("rendering round: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}

// RoundStatusTool handles the caddie_round_status MCP tool.
type RoundStatusTool struct {
	svc      *caddie.Service
	renderer *templates.Renderer
}

// NewRoundStatusTool creates a RoundStatusTool.
func NewRoundStatusTool(svc *caddie.Service, renderer *templates.Renderer) *RoundStatusTool {
	return &RoundStatusTool{svc: svc, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *RoundStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_round_status",
		mcp.WithDescription(
			"Show the active round, if any, and the most recent finished rounds.",
		),
	)
}

// Handle processes the caddie_round_status tool call.
func (t *RoundStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := t.renderer.Render(templates.RoundStatus, templates.RoundStatusData{
		Status:       t.svc.RoundStatus(),
		HistoryLimit: t.svc.HistoryLimit(),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering round status: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}
