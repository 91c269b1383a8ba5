// Package tools implements the MCP tool handlers for Caddie IQ.
//
// Each tool is a struct that receives its dependencies through its
// constructor, exposes Definition() for registration and Handle() for
// calls. One file per tool. User mistakes come back as tool errors the
// agent can read; only infrastructure failures return a Go error.
package tools

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/caddie-iq/internal/caddie"
	"github.com/HendryAvila/caddie-iq/internal/course"
	"github.com/HendryAvila/caddie-iq/internal/player"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
// A number with a fractional part is an error, never rounded.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) (int, error) {
	n, ok, err := optionalIntArg(req, key)
	if err != nil || !ok {
		return defaultVal, err
	}
	return n, nil
}

// optionalIntArg reports whether the key carried a number. Numeric strings
// are accepted since some clients send every field as text.
func optionalIntArg(req mcp.CallToolRequest, key string) (int, bool, error) {
	switch v := req.GetArguments()[key].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false, nil
		}
		if v != math.Trunc(v) {
			return 0, false, fmt.Errorf("`%s` must be a whole number, got %v", key, v)
		}
		return int(v), true, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false, nil
		}
		return n, true, nil
	default:
		return 0, false, nil
	}
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// userError maps service validation errors to agent-facing text.
func userError(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, caddie.ErrNoCourseSelected):
		return mcp.NewToolResultError("Pick a course first: pass `course_id` (see `caddie_courses`).")
	case errors.Is(err, caddie.ErrUnknownCourse):
		return mcp.NewToolResultError(fmt.Sprintf("%v. Use `caddie_courses` to list course ids.", err))
	case errors.Is(err, caddie.ErrInvalidHole):
		return mcp.NewToolResultError(fmt.Sprintf("Invalid hole: %v.", err))
	case errors.Is(err, player.ErrInvalidBagEntry):
		return mcp.NewToolResultError(fmt.Sprintf("Invalid bag entry: %v.", err))
	default:
		return mcp.NewToolResultError(err.Error())
	}
}

// holeSummary describes the hole, or "" when there is no course.
func holeSummary(c course.Course, ok bool, hole int) string {
	if !ok || hole <= 0 {
		return ""
	}
	return c.HoleSummary(hole)
}
