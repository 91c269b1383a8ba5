// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it opens the store, builds the caddie
// service and injects it into the tools, prompts and resources. No golf
// logic lives here, only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/HendryAvila/caddie-iq/internal/config"
	"github.com/HendryAvila/caddie-iq/internal/prompts"
	"github.com/HendryAvila/caddie-iq/internal/resources"
	"github.com/HendryAvila/caddie-iq/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered.
//
// The returned cleanup function closes the store and must be called on
// shutdown (typically via defer). It is always non-nil.
func New(cfg *config.Config, log *logrus.Logger) (*server.MCPServer, func(), error) {
	app, cleanup, err := Bootstrap(cfg, log)
	if err != nil {
		return nil, cleanup, err
	}
	return NewWithApp(app), cleanup, nil
}

// NewWithApp builds the MCP server over an already bootstrapped App.
func NewWithApp(app *App) *server.MCPServer {
	s := server.NewMCPServer(
		"caddie-iq",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	svc, renderer := app.Service, app.Renderer

	// --- Shot advice ---

	adviceTool := tools.NewAdviceTool(svc, renderer)
	s.AddTool(adviceTool.Definition(), adviceTool.Handle)

	coursesTool := tools.NewCoursesTool(svc, renderer)
	s.AddTool(coursesTool.Definition(), coursesTool.Handle)

	// --- Outcomes, stats and rounds ---

	outcomeTool := tools.NewRecordOutcomeTool(svc, renderer)
	s.AddTool(outcomeTool.Definition(), outcomeTool.Handle)

	statsTool := tools.NewStatsTool(svc, renderer)
	s.AddTool(statsTool.Definition(), statsTool.Handle)

	statsResetTool := tools.NewStatsResetTool(svc)
	s.AddTool(statsResetTool.Definition(), statsResetTool.Handle)

	roundStartTool := tools.NewRoundStartTool(svc)
	s.AddTool(roundStartTool.Definition(), roundStartTool.Handle)

	roundEndTool := tools.NewRoundEndTool(svc, renderer)
	s.AddTool(roundEndTool.Definition(), roundEndTool.Handle)

	roundStatusTool := tools.NewRoundStatusTool(svc, renderer)
	s.AddTool(roundStatusTool.Definition(), roundStatusTool.Handle)

	// --- Player data ---

	noteSaveTool := tools.NewHoleNoteSaveTool(svc)
	s.AddTool(noteSaveTool.Definition(), noteSaveTool.Handle)

	noteGetTool := tools.NewHoleNoteGetTool(svc, renderer)
	s.AddTool(noteGetTool.Definition(), noteGetTool.Handle)

	noteDeleteTool := tools.NewHoleNoteDeleteTool(svc)
	s.AddTool(noteDeleteTool.Definition(), noteDeleteTool.Handle)

	bagSaveTool := tools.NewBagSaveTool(svc)
	s.AddTool(bagSaveTool.Definition(), bagSaveTool.Handle)

	bagDeleteTool := tools.NewBagDeleteTool(svc)
	s.AddTool(bagDeleteTool.Definition(), bagDeleteTool.Handle)

	bagListTool := tools.NewBagListTool(svc, renderer)
	s.AddTool(bagListTool.Definition(), bagListTool.Handle)

	profileSaveTool := tools.NewProfileSaveTool(svc, renderer)
	s.AddTool(profileSaveTool.Definition(), profileSaveTool.Handle)

	profileGetTool := tools.NewProfileGetTool(svc, renderer)
	s.AddTool(profileGetTool.Definition(), profileGetTool.Handle)

	// --- Prompts ---

	preshotPrompt := prompts.NewPreshotPrompt()
	s.AddPrompt(preshotPrompt.Definition(), preshotPrompt.Handle)

	reviewPrompt := prompts.NewRoundReviewPrompt()
	s.AddPrompt(reviewPrompt.Definition(), reviewPrompt.Handle)

	// --- Resources ---

	resourceHandler := resources.NewHandler(svc)
	s.AddResource(resourceHandler.CoursesResource(), resourceHandler.HandleCourses)
	s.AddResource(resourceHandler.RoundStatusResource(), resourceHandler.HandleRoundStatus)

	app.Log.WithField("version", Version).Debug("mcp server configured")
	return s
}

// serverInstructions returns the system-level instructions that tell
// the AI how the caddie tools fit together.
func serverInstructions() string {
	return `You are Caddie IQ, an on-course golf caddie.

## Giving advice

Call caddie_advice whenever the player describes a shot. A distance is the
only required input; everything else sharpens the answer:
- course_id and hole pull in the par and the player's saved notes for the hole
- lie, wind_strength and wind_direction adjust the club
- hazard_left/right/short/long shape the strategy

The advice already folds in the player's bag (caddie_bag_save) and profile
(caddie_profile_save). Relay it in a calm caddie voice. Do not invent yardages
or club choices the tool did not give.

If the player has not said which course they are on, call caddie_courses and
ask. Course ids are stable strings such as "salt-creek-retreat-in".

## Tracking a round

1. caddie_round_start with the course_id when the player tees off.
2. caddie_record_outcome after each hole: tee (fairway/left/right/...),
   gir (yes/no) and putts. Any subset is fine; an empty outcome is ignored.
   Outcomes always update the course's daily stats and, when a round on the
   same course is active, that round too.
3. caddie_round_end when they finish. Starting a new round while one is
   active abandons the old one; warn the player before doing that.

caddie_round_status and caddie_stats show progress. caddie_stats_reset erases
a course's stats and needs explicit confirmation from the player.

## Remembering the course

Use caddie_hole_note_save when the player tells you something worth keeping
about a hole: preferred club, usual miss, safe target, danger, a mental cue.
Save notes only when asked or when the player clearly wants it remembered.
caddie_hole_note_get shows a hole's notes; caddie_hole_note_delete forgets
them when the player says a note no longer applies.

## Prompts and resources

- caddie-preshot: a pre-shot routine for a given hole and distance
- caddie-round-review: a post-round debrief built from round status
- caddie://courses and caddie://rounds/status: JSON snapshots for context`
}
