// Package prompts implements MCP prompt handlers for Caddie IQ.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// PreshotPrompt handles the caddie-preshot MCP prompt.
// It walks the AI through collecting a shot and asking for advice.
type PreshotPrompt struct{}

// NewPreshotPrompt creates a PreshotPrompt.
func NewPreshotPrompt() *PreshotPrompt {
	return &PreshotPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *PreshotPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("caddie-preshot",
		mcp.WithPromptDescription(
			"Get ready for the next shot. The caddie asks for whatever is missing "+
				"(distance, lie, wind, trouble) and then gives club and target advice.",
		),
		mcp.WithArgument("course_id",
			mcp.ArgumentDescription("Course you are playing (see caddie_courses)"),
		),
		mcp.WithArgument("hole",
			mcp.ArgumentDescription("Hole number 1-18"),
		),
		mcp.WithArgument("distance",
			mcp.ArgumentDescription("Distance to the target in yards, if you already know it"),
		),
	)
}

// Handle processes the caddie-preshot prompt request.
func (p *PreshotPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments
	courseID := strings.TrimSpace(args["course_id"])
	hole := strings.TrimSpace(args["hole"])
	distance := strings.TrimSpace(args["distance"])

	var known strings.Builder
	if courseID != "" {
		fmt.Fprintf(&known, "- Course: `%s`\n", courseID)
	}
	if hole != "" {
		fmt.Fprintf(&known, "- Hole: %s\n", hole)
	}
	if distance != "" {
		fmt.Fprintf(&known, "- Distance: %s yards\n", distance)
	}
	if known.Len() == 0 {
		known.WriteString("- Nothing yet.\n")
	}

	courseStep := "1. Confirm the course and hole. If I haven't said, run `caddie_courses` and ask me.\n"
	if courseID != "" && hole != "" {
		courseStep = "1. Run `caddie_hole_note_get` for this hole so you know what I've learned before.\n"
	}

	return &mcp.GetPromptResult{
		Description: "Pre-shot routine",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Caddie me through my next shot.\n\n" +
						"What I've told you so far:\n" + known.String() + "\n" +
						"Please:\n" +
						courseStep +
						"2. Ask only for what's missing: distance, lie (fairway, rough, sand, other), " +
						"wind strength and direction, and any trouble left, right, short or long\n" +
						"3. Run `caddie_advice` with everything you have\n" +
						"4. Give me the club and target in one or two sentences, then the mental cue\n" +
						"5. After the hole, offer to log it with `caddie_record_outcome`",
				),
			},
		},
	}, nil
}
