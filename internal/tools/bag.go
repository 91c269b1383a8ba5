package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/caddie-iq/internal/caddie"
	"github.com/HendryAvila/caddie-iq/internal/player"
	"github.com/HendryAvila/caddie-iq/internal/templates"
)

// BagSaveTool handles the caddie_bag_save MCP tool.
type BagSaveTool struct {
	svc *caddie.Service
}

// NewBagSaveTool creates a BagSaveTool.
func NewBagSaveTool(svc *caddie.Service) *BagSaveTool {
	return &BagSaveTool{svc: svc}
}

// Definition returns the MCP tool definition for registration.
func (t *BagSaveTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_bag_save",
		mcp.WithDescription(
			"Add a club to the player's bag, or update it, with its stock carry distance. "+
				"Advice points out the club whose carry is a close match for the adjusted yardage.",
		),
		mcp.WithString("club",
			mcp.Required(),
			mcp.Description("Club id, e.g. driver, 3w, 4h, 7i, pw, sw, putter."),
		),
		mcp.WithNumber("carry",
			mcp.Required(),
			mcp.Description("Stock carry distance in yards. Must be positive."),
		),
		mcp.WithString("label", mcp.Description("Display name. Defaults to the club id.")),
		mcp.WithString("note", mcp.Description("Free-text note about the club.")),
	)
}

// Handle processes the caddie_bag_save tool call.
func (t *BagSaveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	carry, err := intArg(req, "carry", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	entry, err := t.svc.SaveBagEntry(player.BagEntry{
		Club:  req.GetString("club", ""),
		Label: req.GetString("label", ""),
		Carry: carry,
		Note:  req.GetString("note", ""),
	})
	if err != nil {
		return userError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Saved %s (`%s`): %d yds.", entry.Label, entry.Club, entry.Carry)), nil
}

// BagDeleteTool handles the caddie_bag_delete MCP tool.
type BagDeleteTool struct {
	svc *caddie.Service
}

// NewBagDeleteTool creates a BagDeleteTool.
func NewBagDeleteTool(svc *caddie.Service) *BagDeleteTool {
	return &BagDeleteTool{svc: svc}
}

// Definition returns the MCP tool definition for registration.
func (t *BagDeleteTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_bag_delete",
		mcp.WithDescription("Remove a club from the player's bag."),
		mcp.WithString("club",
			mcp.Required(),
			mcp.Description("Club id to remove."),
		),
	)
}

// Handle processes the caddie_bag_delete tool call.
func (t *BagDeleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	club := req.GetString("club", "")
	if !t.svc.DeleteBagEntry(club) {
		return mcp.NewToolResultError(fmt.Sprintf("Club %q is not in the bag.", club)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Removed `%s` from the bag.", player.NormalizeClubID(club))), nil
}

// BagListTool handles the caddie_bag_list MCP tool.
type BagListTool struct {
	svc      *caddie.Service
	renderer *templates.Renderer
}

// NewBagListTool creates a BagListTool.
func NewBagListTool(svc *caddie.Service, renderer *templates.Renderer) *BagListTool {
	return &BagListTool{svc: svc, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *BagListTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_bag_list",
		mcp.WithDescription("List the player's clubs and carries, longest club first."),
	)
}

// Handle processes the caddie_bag_list tool call.
func (t *BagListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := t.renderer.Render(templates.Bag, templates.BagData{Entries: t.svc.ListBag()})
	if err != nil {
		return nil, fmt.Errorf("rendering bag: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}
