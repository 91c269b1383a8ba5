// Package resources implements MCP resource handlers for Caddie IQ.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (caddie://...) following MCP conventions.
package resources

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/caddie-iq/internal/caddie"
)

// Resource URIs.
const (
	CoursesURI     = "caddie://courses"
	RoundStatusURI = "caddie://rounds/status"
)

// Handler manages Caddie IQ resource endpoints.
type Handler struct {
	svc *caddie.Service
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(svc *caddie.Service) *Handler {
	return &Handler{svc: svc}
}

// CoursesResource returns the MCP resource definition for the course catalog.
func (h *Handler) CoursesResource() mcp.Resource {
	return mcp.NewResource(
		CoursesURI,
		"Caddie IQ Courses",
		mcp.WithResourceDescription("Every known course with its holes, pars and yardages"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleCourses returns the catalog as JSON.
func (h *Handler) HandleCourses(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, h.svc.Courses())
}

// RoundStatusResource returns the MCP resource definition for round status.
func (h *Handler) RoundStatusResource() mcp.Resource {
	return mcp.NewResource(
		RoundStatusURI,
		"Caddie IQ Round Status",
		mcp.WithResourceDescription("The active round and the most recent finished rounds"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleRoundStatus returns the round status as JSON.
func (h *Handler) HandleRoundStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	contents, err := jsonResource(req.Params.URI, h.svc.RoundStatus())
	if err != nil {
		return nil, fmt.Errorf("round status: %w", err)
	}
	return contents, nil
}
