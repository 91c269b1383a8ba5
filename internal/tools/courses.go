package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/caddie-iq/internal/caddie"
	"github.com/HendryAvila/caddie-iq/internal/templates"
)

// CoursesTool handles the caddie_courses MCP tool.
type CoursesTool struct {
	svc      *caddie.Service
	renderer *templates.Renderer
}

// NewCoursesTool creates a CoursesTool.
func NewCoursesTool(svc *caddie.Service, renderer *templates.Renderer) *CoursesTool {
	return &CoursesTool{svc: svc, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *CoursesTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_courses",
		mcp.WithDescription("List the courses the caddie knows, with their ids for the other tools."),
	)
}

// Handle processes the caddie_courses tool call.
func (t *CoursesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := t.renderer.Render(templates.Courses, templates.CoursesData{Courses: t.svc.Courses()})
	if err != nil {
		return nil, fmt.Errorf("rendering courses: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}
