package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/caddie-iq/internal/caddie"
	"github.com/HendryAvila/caddie-iq/internal/course"
	"github.com/HendryAvila/caddie-iq/internal/store"
	"github.com/HendryAvila/caddie-iq/internal/templates"
)

const (
	saltCreek = "salt-creek-retreat-in"
	brickyard = "brickyard-crossing-in"
)

// --- Test helpers ---

// setupService builds a service over an in-memory store.
func setupService(t *testing.T) (*caddie.Service, *templates.Renderer) {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("setup: renderer: %v", err)
	}
	svc := caddie.New(store.New(store.NewMemoryBackend(), nil), course.Builtin(), caddie.Options{})
	return svc, renderer
}

// isErrorResult checks if the result is a tool error.
func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

type handler interface {
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

func call(t *testing.T, h handler, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := h.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	return result
}

func mustSucceed(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}
	return getResultText(result)
}

func mustFail(t *testing.T, result *mcp.CallToolResult, want string) {
	t.Helper()
	if !isErrorResult(result) {
		t.Fatalf("expected error result, got: %s", getResultText(result))
	}
	if want != "" && !strings.Contains(getResultText(result), want) {
		t.Errorf("error should mention %q, got: %s", want, getResultText(result))
	}
}

// --- Definitions ---

func TestDefinitions_Names(t *testing.T) {
	svc, r := setupService(t)
	defs := map[string]mcp.Tool{
		"caddie_advice":           NewAdviceTool(svc, r).Definition(),
		"caddie_record_outcome":   NewRecordOutcomeTool(svc, r).Definition(),
		"caddie_round_start":      NewRoundStartTool(svc).Definition(),
		"caddie_round_end":        NewRoundEndTool(svc, r).Definition(),
		"caddie_round_status":     NewRoundStatusTool(svc, r).Definition(),
		"caddie_stats":            NewStatsTool(svc, r).Definition(),
		"caddie_stats_reset":      NewStatsResetTool(svc).Definition(),
		"caddie_hole_note_save":   NewHoleNoteSaveTool(svc).Definition(),
		"caddie_hole_note_get":    NewHoleNoteGetTool(svc, r).Definition(),
		"caddie_hole_note_delete": NewHoleNoteDeleteTool(svc).Definition(),
		"caddie_bag_save":         NewBagSaveTool(svc).Definition(),
		"caddie_bag_delete":       NewBagDeleteTool(svc).Definition(),
		"caddie_bag_list":         NewBagListTool(svc, r).Definition(),
		"caddie_profile_save":     NewProfileSaveTool(svc, r).Definition(),
		"caddie_profile_get":      NewProfileGetTool(svc, r).Definition(),
		"caddie_courses":          NewCoursesTool(svc, r).Definition(),
	}
	for name, def := range defs {
		if def.Name != name {
			t.Errorf("tool name = %s, want %s", def.Name, name)
		}
		if def.Description == "" {
			t.Errorf("%s has no description", name)
		}
	}
}

// --- AdviceTool ---

func TestAdviceTool_Success(t *testing.T) {
	svc, r := setupService(t)
	tool := NewAdviceTool(svc, r)

	text := mustSucceed(t, call(t, tool, map[string]interface{}{
		"distance":       "140 yds",
		"course_id":      saltCreek,
		"hole":           float64(3),
		"wind_strength":  "medium",
		"wind_direction": "into",
		"hazard_left":    true,
	}))

	for _, want := range []string{
		"Salt Creek Golf Retreat",
		"Hole 3 · Par 3",
		"Suggested club: 8 iron for about 154 yards.",
		"Medium headwind",
		"Favor the right half",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("advice missing %q:\n%s", want, text)
		}
	}
}

func TestAdviceTool_NumericDistance(t *testing.T) {
	svc, r := setupService(t)
	text := mustSucceed(t, call(t, NewAdviceTool(svc, r), map[string]interface{}{
		"distance": float64(250),
	}))
	if !strings.Contains(text, "Driver or strong 3 wood") {
		t.Errorf("unexpected advice: %s", text)
	}
}

func TestAdviceTool_MissingDistancePrompts(t *testing.T) {
	svc, r := setupService(t)
	tool := NewAdviceTool(svc, r)

	for _, d := range []interface{}{nil, "", "abc", "-20", float64(0)} {
		args := map[string]interface{}{}
		if d != nil {
			args["distance"] = d
		}
		mustFail(t, call(t, tool, args), "distance")
	}
}

func TestAdviceTool_InvalidEnums(t *testing.T) {
	svc, r := setupService(t)
	tool := NewAdviceTool(svc, r)

	mustFail(t, call(t, tool, map[string]interface{}{"distance": "150", "lie": "cart path"}), "invalid lie")
	mustFail(t, call(t, tool, map[string]interface{}{"distance": "150", "wind_strength": "gale"}), "wind strength")
	mustFail(t, call(t, tool, map[string]interface{}{"distance": "150", "wind_direction": "up"}), "wind direction")
}

// --- RecordOutcomeTool ---

func TestRecordOutcomeTool_RecordsAndReportsStats(t *testing.T) {
	svc, r := setupService(t)
	tool := NewRecordOutcomeTool(svc, r)

	for i := 0; i < 3; i++ {
		mustSucceed(t, call(t, tool, map[string]interface{}{
			"course_id": saltCreek, "tee": "fairway", "gir": "yes", "putts": float64(3),
		}))
	}
	text := mustSucceed(t, call(t, NewStatsTool(svc, r), map[string]interface{}{"course_id": saltCreek}))
	for _, want := range []string{"**3**", "**100%**", "**3.0**"} {
		if !strings.Contains(text, want) {
			t.Errorf("stats missing %q:\n%s", want, text)
		}
	}
}

func TestRecordOutcomeTool_EmptyOutcome(t *testing.T) {
	svc, r := setupService(t)
	text := mustSucceed(t, call(t, NewRecordOutcomeTool(svc, r), map[string]interface{}{
		"course_id": saltCreek, "putts": float64(0),
	}))
	if !strings.Contains(text, "Nothing recorded") {
		t.Errorf("got: %s", text)
	}
	if _, ok := svc.CourseStats(saltCreek); ok {
		t.Error("empty outcome must not create stats")
	}
}

func TestRecordOutcomeTool_Errors(t *testing.T) {
	svc, r := setupService(t)
	tool := NewRecordOutcomeTool(svc, r)

	mustFail(t, call(t, tool, map[string]interface{}{"tee": "fairway"}), "Pick a course first")
	mustFail(t, call(t, tool, map[string]interface{}{"course_id": "augusta", "tee": "fairway"}), "caddie_courses")
	mustFail(t, call(t, tool, map[string]interface{}{"course_id": saltCreek, "putts": float64(2.5)}), "whole number")
	if _, ok := svc.CourseStats(saltCreek); ok {
		t.Error("a rejected outcome must not record stats")
	}
}

func TestRecordOutcomeTool_NegativePuttsKeepTeeResult(t *testing.T) {
	svc, r := setupService(t)
	text := mustSucceed(t, call(t, NewRecordOutcomeTool(svc, r), map[string]interface{}{
		"course_id": saltCreek, "tee": "fairway", "putts": float64(-1),
	}))
	if !strings.Contains(text, "Ignored putt count -1") {
		t.Errorf("expected a note about the ignored putts, got: %s", text)
	}
	s, ok := svc.CourseStats(saltCreek)
	if !ok || s.Shots != 1 || s.Fairways != 1 || s.Putts != 0 {
		t.Errorf("stats = %+v, want 1 shot, 1 fairway, 0 putts", s)
	}
}

func TestRecordOutcomeTool_FeedsActiveRound(t *testing.T) {
	svc, r := setupService(t)
	mustSucceed(t, call(t, NewRoundStartTool(svc), map[string]interface{}{"course_id": brickyard}))

	text := mustSucceed(t, call(t, NewRecordOutcomeTool(svc, r), map[string]interface{}{
		"course_id": brickyard, "tee": "fairway",
	}))
	if !strings.Contains(text, "Added to the active round: 1 holes tracked.") {
		t.Errorf("got: %s", text)
	}
}

// --- Round tools ---

func TestRoundTools_Lifecycle(t *testing.T) {
	svc, r := setupService(t)
	start := NewRoundStartTool(svc)
	end := NewRoundEndTool(svc, r)
	status := NewRoundStatusTool(svc, r)

	mustFail(t, call(t, start, map[string]interface{}{}), "Pick a course first")

	text := mustSucceed(t, call(t, start, map[string]interface{}{"course_id": brickyard}))
	if !strings.Contains(text, "Brickyard Crossing") {
		t.Errorf("start output: %s", text)
	}

	text = mustSucceed(t, call(t, start, map[string]interface{}{"course_id": saltCreek}))
	if !strings.Contains(text, "left unfinished") {
		t.Errorf("restart should mention the abandoned round: %s", text)
	}

	text = mustSucceed(t, call(t, status, nil))
	if !strings.Contains(text, "**Active round:** Salt Creek Golf Retreat") || !strings.Contains(text, "## Abandoned rounds") {
		t.Errorf("status output: %s", text)
	}

	text = mustSucceed(t, call(t, end, nil))
	if !strings.Contains(text, "# Round finished · Salt Creek Golf Retreat") {
		t.Errorf("end output: %s", text)
	}

	text = mustSucceed(t, call(t, end, nil))
	if !strings.Contains(text, "No active round") {
		t.Errorf("second end should be a no-op: %s", text)
	}
}

// --- Stats tools ---

func TestStatsTool_Errors(t *testing.T) {
	svc, r := setupService(t)
	tool := NewStatsTool(svc, r)
	mustFail(t, call(t, tool, nil), "Pick a course first")
	mustFail(t, call(t, tool, map[string]interface{}{"course_id": "nope"}), "unknown course")

	text := mustSucceed(t, call(t, tool, map[string]interface{}{"course_id": saltCreek}))
	if !strings.Contains(text, "No stats saved yet") {
		t.Errorf("got: %s", text)
	}
}

func TestStatsResetTool(t *testing.T) {
	svc, r := setupService(t)
	reset := NewStatsResetTool(svc)
	mustSucceed(t, call(t, NewRecordOutcomeTool(svc, r), map[string]interface{}{
		"course_id": saltCreek, "gir": "yes",
	}))

	mustFail(t, call(t, reset, map[string]interface{}{"course_id": saltCreek}), "confirm")
	if _, ok := svc.CourseStats(saltCreek); !ok {
		t.Fatal("unconfirmed reset must not erase stats")
	}

	text := mustSucceed(t, call(t, reset, map[string]interface{}{"course_id": saltCreek, "confirm": true}))
	if !strings.Contains(text, "erased") {
		t.Errorf("got: %s", text)
	}
	if _, ok := svc.CourseStats(saltCreek); ok {
		t.Error("stats should be gone")
	}

	text = mustSucceed(t, call(t, reset, map[string]interface{}{"course_id": saltCreek, "confirm": true}))
	if !strings.Contains(text, "nothing to reset") {
		t.Errorf("got: %s", text)
	}
}

// --- Hole note tools ---

func TestHoleNoteTools(t *testing.T) {
	svc, r := setupService(t)
	save := NewHoleNoteSaveTool(svc)
	get := NewHoleNoteGetTool(svc, r)

	text := mustSucceed(t, call(t, save, map[string]interface{}{
		"course_id": saltCreek, "hole": float64(7), "safe_target": "center of green", "mental_cue": "commit",
	}))
	if !strings.Contains(text, "Hole 7") {
		t.Errorf("save output: %s", text)
	}

	text = mustSucceed(t, call(t, get, map[string]interface{}{"course_id": saltCreek, "hole": float64(7)}))
	if !strings.Contains(text, "- Safe target: center of green") || !strings.Contains(text, "- Mental cue: commit") {
		t.Errorf("get output: %s", text)
	}

	mustFail(t, call(t, save, map[string]interface{}{"course_id": saltCreek, "hole": float64(0)}), "Invalid hole")
	mustFail(t, call(t, get, map[string]interface{}{"course_id": saltCreek, "hole": float64(19)}), "Invalid hole")
	mustFail(t, call(t, get, map[string]interface{}{"hole": float64(1)}), "Pick a course first")
	mustFail(t, call(t, save, map[string]interface{}{"course_id": saltCreek, "hole": float64(7.4)}), "whole number")
	if svc.HoleNote(saltCreek, 7).MentalCue != "commit" {
		t.Error("a fractional hole must not overwrite hole 7")
	}
}

func TestHoleNoteDeleteTool(t *testing.T) {
	svc, r := setupService(t)
	del := NewHoleNoteDeleteTool(svc)
	mustSucceed(t, call(t, NewHoleNoteSaveTool(svc), map[string]interface{}{
		"course_id": saltCreek, "hole": float64(5), "usual_miss": "short right",
	}))

	text := mustSucceed(t, call(t, del, map[string]interface{}{"course_id": saltCreek, "hole": float64(5)}))
	if !strings.Contains(text, "Notes deleted") {
		t.Errorf("delete output: %s", text)
	}
	if !svc.HoleNote(saltCreek, 5).IsZero() {
		t.Error("note should be gone")
	}

	text = mustSucceed(t, call(t, NewHoleNoteGetTool(svc, r), map[string]interface{}{"course_id": saltCreek, "hole": float64(5)}))
	if strings.Contains(text, "short right") {
		t.Errorf("deleted note still shown: %s", text)
	}

	text = mustSucceed(t, call(t, del, map[string]interface{}{"course_id": saltCreek, "hole": float64(5)}))
	if !strings.Contains(text, "No notes saved") {
		t.Errorf("second delete output: %s", text)
	}

	mustFail(t, call(t, del, map[string]interface{}{"course_id": saltCreek, "hole": float64(19)}), "Invalid hole")
	mustFail(t, call(t, del, map[string]interface{}{"hole": float64(5)}), "Pick a course first")
	mustFail(t, call(t, del, map[string]interface{}{"course_id": saltCreek, "hole": float64(5.5)}), "whole number")
}

func TestHoleNote_FeedsAdvice(t *testing.T) {
	svc, r := setupService(t)
	mustSucceed(t, call(t, NewHoleNoteSaveTool(svc), map[string]interface{}{
		"course_id": saltCreek, "hole": float64(3), "danger_note": "pond short right",
	}))
	text := mustSucceed(t, call(t, NewAdviceTool(svc, r), map[string]interface{}{
		"distance": "160", "course_id": saltCreek, "hole": float64(3),
	}))
	if !strings.Contains(text, "Your danger reminder: pond short right") {
		t.Errorf("advice should include the saved note: %s", text)
	}
}

// --- Bag tools ---

func TestBagTools(t *testing.T) {
	svc, r := setupService(t)
	save := NewBagSaveTool(svc)
	del := NewBagDeleteTool(svc)
	list := NewBagListTool(svc, r)

	mustSucceed(t, call(t, save, map[string]interface{}{"club": "7i", "carry": float64(158), "label": "7 iron"}))
	mustSucceed(t, call(t, save, map[string]interface{}{"club": "Driver", "carry": "245"}))
	mustFail(t, call(t, save, map[string]interface{}{"club": "pw"}), "Invalid bag entry")
	mustFail(t, call(t, save, map[string]interface{}{"carry": float64(100)}), "Invalid bag entry")

	text := mustSucceed(t, call(t, list, nil))
	di := strings.Index(text, "`driver`")
	ii := strings.Index(text, "`7i`")
	if di < 0 || ii < 0 || di > ii {
		t.Errorf("bag should list driver before 7i:\n%s", text)
	}

	mustSucceed(t, call(t, del, map[string]interface{}{"club": "driver"}))
	mustFail(t, call(t, del, map[string]interface{}{"club": "driver"}), "not in the bag")
}

// --- Profile tools ---

func TestProfileTools_PartialUpdate(t *testing.T) {
	svc, r := setupService(t)
	save := NewProfileSaveTool(svc, r)

	mustSucceed(t, call(t, save, map[string]interface{}{"name": "Alex Morgan", "shape": "draw"}))
	mustSucceed(t, call(t, save, map[string]interface{}{"handicap": "12.4"}))

	p := svc.Profile()
	if p.Name != "Alex Morgan" || p.Shape != "draw" || p.Handicap != "12.4" {
		t.Errorf("profile = %+v", p)
	}

	text := mustSucceed(t, call(t, NewProfileGetTool(svc, r), nil))
	if !strings.Contains(text, "Alex Morgan [AM]") {
		t.Errorf("got: %s", text)
	}
}

// --- CoursesTool ---

func TestCoursesTool(t *testing.T) {
	svc, r := setupService(t)
	text := mustSucceed(t, call(t, NewCoursesTool(svc, r), nil))
	for _, id := range []string{saltCreek, brickyard, "home-course-generic"} {
		if !strings.Contains(text, id) {
			t.Errorf("courses missing %s", id)
		}
	}
}

// --- helpers ---

func TestOptionalIntArg(t *testing.T) {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"f": float64(3),
		"s": " 4 ",
		"x": "four",
		"b": true,
		"p": float64(2.5),
		"h": float64(7.4),
	}
	if n, ok, err := optionalIntArg(req, "f"); err != nil || !ok || n != 3 {
		t.Errorf("f = %d, %v, %v", n, ok, err)
	}
	if n, ok, err := optionalIntArg(req, "s"); err != nil || !ok || n != 4 {
		t.Errorf("s = %d, %v, %v", n, ok, err)
	}
	for _, k := range []string{"x", "b", "missing"} {
		if _, ok, err := optionalIntArg(req, k); ok || err != nil {
			t.Errorf("%s should not parse (err %v)", k, err)
		}
	}
	for _, k := range []string{"p", "h"} {
		if _, ok, err := optionalIntArg(req, k); ok || err == nil {
			t.Errorf("%s: fractional number must be rejected, not rounded", k)
		}
	}
	if n, err := intArg(req, "missing", 9); err != nil || n != 9 {
		t.Error("intArg default not used")
	}
	if _, err := intArg(req, "h", 0); err == nil || !strings.Contains(err.Error(), "`h` must be a whole number") {
		t.Errorf("intArg err = %v", err)
	}
}
