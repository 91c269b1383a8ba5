package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// RoundReviewPrompt handles the caddie-round-review MCP prompt.
// It asks the AI to summarize recent rounds and suggest practice.
type RoundReviewPrompt struct{}

// NewRoundReviewPrompt creates a RoundReviewPrompt.
func NewRoundReviewPrompt() *RoundReviewPrompt {
	return &RoundReviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *RoundReviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("caddie-round-review",
		mcp.WithPromptDescription(
			"Review your active and recent rounds: fairways, greens, putting, "+
				"and what to practice next.",
		),
	)
}

// Handle processes the caddie-round-review prompt request.
func (p *RoundReviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Round review",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `caddie_round_status` to load my rounds.\n\n" +
						"Then:\n" +
						"1. Summarize the active round, if there is one, hole count first\n" +
						"2. Compare fairway %, GIR % and average putts across my recent rounds\n" +
						"3. Point out the single weakest area and one drill for it\n" +
						"4. If a round was left unfinished, ask whether I want to end the active one",
				),
			},
		},
	}, nil
}
