package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/caddie-iq/internal/advice"
	"github.com/HendryAvila/caddie-iq/internal/caddie"
	"github.com/HendryAvila/caddie-iq/internal/templates"
)

// AdviceTool handles the caddie_advice MCP tool.
type AdviceTool struct {
	svc      *caddie.Service
	renderer *templates.Renderer
}

// NewAdviceTool creates an AdviceTool.
func NewAdviceTool(svc *caddie.Service, renderer *templates.Renderer) *AdviceTool {
	return &AdviceTool{svc: svc, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *AdviceTool) Definition() mcp.Tool {
	return mcp.NewTool("caddie_advice",
		mcp.WithDescription(
			"Get caddie advice for the next shot: club choice adjusted for wind, "+
				"a strategy for the hazards around the target, conditions for the lie, "+
				"and a mental cue. Saved hole notes, the player's bag and profile are "+
				"folded in automatically when `course_id` and `hole` are given.",
		),
		mcp.WithString("distance",
			mcp.Required(),
			mcp.Description("Distance to the target in yards, e.g. \"152\" or \"152 yds\"."),
		),
		mcp.WithString("course_id",
			mcp.Description("Course id from caddie_courses. Optional."),
		),
		mcp.WithNumber("hole",
			mcp.Description("Hole number 1-18, used to look up saved notes."),
		),
		mcp.WithNumber("par",
			mcp.Description("Par of the hole. Defaults to the course's par for the hole."),
		),
		mcp.WithString("lie",
			mcp.Description("Ball lie."),
			mcp.Enum("fairway", "rough", "sand", "other"),
		),
		mcp.WithString("wind_strength",
			mcp.Description("Wind strength."),
			mcp.Enum("none", "light", "medium", "strong"),
		),
		mcp.WithString("wind_direction",
			mcp.Description("Wind direction relative to the target line."),
			mcp.Enum("none", "into", "with", "cross-left", "cross-right"),
		),
		mcp.WithBoolean("hazard_left", mcp.Description("Trouble left of the target.")),
		mcp.WithBoolean("hazard_right", mcp.Description("Trouble right of the target.")),
		mcp.WithBoolean("hazard_short", mcp.Description("Trouble short of the target.")),
		mcp.WithBoolean("hazard_long", mcp.Description("Trouble long of the target.")),
	)
}

// Handle processes the caddie_advice tool call.
func (t *AdviceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	shot, errResult := shotFromRequest(req)
	if errResult != nil {
		return errResult, nil
	}

	courseID := req.GetString("course_id", "")
	hole, err := intArg(req, "hole", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a := t.svc.BuildRecommendation(shot, courseID, hole)
	if a.NeedsInput() {
		return mcp.NewToolResultError(a.Prompt), nil
	}

	c, ok := t.svc.Course(courseID)
	data := templates.AdviceData{
		HoleSummary: holeSummary(c, ok, hole),
		Advice:      a,
	}
	if ok {
		data.CourseName = c.Name
	}
	out, err := t.renderer.Render(templates.Advice, data)
	if err != nil {
		return nil, fmt.Errorf("rendering advice: %w", err)
	}
	return mcp.NewToolResultText(out), nil
}

// shotFromRequest builds the shot context, validating the enum inputs.
// A missing or unusable distance is left at zero so the engine prompts
// for it.
func shotFromRequest(req mcp.CallToolRequest) (advice.ShotContext, *mcp.CallToolResult) {
	par, err := intArg(req, "par", 0)
	if err != nil {
		return advice.ShotContext{}, mcp.NewToolResultError(err.Error())
	}
	shot := advice.ShotContext{
		Par:           par,
		Lie:           advice.Lie(req.GetString("lie", "")),
		WindStrength:  advice.WindStrength(req.GetString("wind_strength", "")),
		WindDirection: advice.WindDirection(req.GetString("wind_direction", "")),
		Hazards: advice.Hazards{
			Left:  boolArg(req, "hazard_left", false),
			Right: boolArg(req, "hazard_right", false),
			Short: boolArg(req, "hazard_short", false),
			Long:  boolArg(req, "hazard_long", false),
		},
	}

	switch v := req.GetArguments()["distance"].(type) {
	case float64:
		shot.Distance = v
	case string:
		if d, ok := advice.ParseDistance(v); ok {
			shot.Distance = d
		}
	}

	if err := advice.ValidateLie(shot.Lie); err != nil {
		return shot, mcp.NewToolResultError(err.Error())
	}
	if err := advice.ValidateWind(shot.WindStrength, shot.WindDirection); err != nil {
		return shot, mcp.NewToolResultError(err.Error())
	}
	return shot, nil
}
