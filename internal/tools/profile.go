package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/caddie-iq/internal/caddie"
	"github.com/HendryAvila/caddie-iq/internal/player"
	"github.com/HendryAvila/caddie-iq/internal/templates"
)

// ProfileSaveTool handles the caddie_profile_save MCP tool.
type ProfileSaveTool struct {
	svc      *caddie.Service
	renderer *templates.Renderer
}

// NewProfileSaveTool creates a ProfileSaveTool.
func NewProfileSaveTool(svc *caddie.Service, renderer *templates.Renderer) *ProfileSaveTool {
	return &ProfileSaveTool{svc: svc, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *ProfileSaveTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_profile_save",
		mcp.WithDescription(
			"Update the player profile. Only the fields given are changed. "+
				"The typical shot shape is woven into club advice.",
		),
		mcp.WithString("name", mcp.Description("Player name.")),
		mcp.WithString("handicap", mcp.Description("Handicap index, free text.")),
		mcp.WithString("shape", mcp.Description("Typical shot shape, e.g. draw, fade, straight.")),
		mcp.WithString("avatar_color", mcp.Description("Avatar color as a CSS hex value.")),
		mcp.WithString("avatar_tone", mcp.Description("Avatar skin tone.")),
		mcp.WithString("avatar_hat", mcp.Description("Avatar hat style.")),
	)
}

// Handle processes the caddie_profile_save tool call.
func (t *ProfileSaveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cur := t.svc.Profile()
	saved := t.svc.SaveProfile(player.Profile{
		Name:        req.GetString("name", cur.Name),
		Handicap:    req.GetString("handicap", cur.Handicap),
		Shape:       req.GetString("shape", cur.Shape),
		AvatarColor: req.GetString("avatar_color", cur.AvatarColor),
		AvatarTone:  req.GetString("avatar_tone", cur.AvatarTone),
		AvatarHat:   req.GetString("avatar_hat", cur.AvatarHat),
	})

	out, err := t.renderer.Render(templates.Profile, saved)
	if err != nil {
		return nil, fmt.Errorf("rendering profile: %w", err)
	}
	return mcp.NewToolResultText("Profile saved.\n\n" + out), nil
}

// ProfileGetTool handles the caddie_profile_get MCP tool.
type ProfileGetTool struct {
	svc      *caddie.Service
	renderer *templates.Renderer
}

// NewProfileGetTool creates a ProfileGetTool.
func NewProfileGetTool(svc *caddie.Service, renderer *templates.Renderer) *ProfileGetTool {
	return &ProfileGetTool{svc: svc, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *ProfileGetTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_profile_get",
		mcp.WithDescription("Show the player profile."),
	)
}

// Handle processes the caddie_profile_get tool call.
func (t *ProfileGetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := t.renderer.Render(templates.Profile, t.svc.Profile())
	if err != nil {
		return nil, fmt.Errorf("rendering profile: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}
