package mcp

import (
	"context"
	"time"

	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/models"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 30 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// positionPayload evaluates a program's cursor and schedule into a compact
// summary suitable for tool output.
func (h *handlers) positionPayload(p *models.Program) map[string]any {
	payload := map[string]any{
		"program_id":     p.ID,
		"program_name":   p.Name,
		"is_active":      p.IsActive,
		"scheduled_days": p.ScheduledDays,
		"phase_index":    p.CurrentPhaseIndex,
		"week_index":     p.CurrentWeekIndex,
		"day_index":      p.CurrentDayIndex,
	}

	if phase := engine.CurrentPhase(p); phase != nil {
		payload["current_phase"] = phase.Name
	}
	if week := engine.CurrentWeek(p); week != nil {
		payload["current_week"] = week.WeekNumber
	}
	if day := engine.CurrentDay(p); day != nil {
		payload["current_day"] = day.Name
		if day.Workout != nil {
			payload["current_workout"] = day.Workout.Name
		}
	}

	payload["is_scheduled_today"] = h.engine.IsScheduledToday(p)
	if next := h.engine.NextScheduledDate(p); next != nil {
		payload["next_scheduled_date"] = next.Format("2006-01-02")
	}
	if p.PausedUntil != nil {
		payload["paused_until"] = p.PausedUntil.Format("2006-01-02")
	}

	return payload
}

// --- Tool definitions ---

var toolGetPrograms = mcp.NewTool("get_programs",
	mcp.WithDescription("List all training programs with name, description, and active status."),
)

var toolGetProgramPosition = mcp.NewTool("get_program_position",
	mcp.WithDescription("Get a program's current position: phase, week, day, today's workout, the weekly schedule, and the next scheduled training date."),
	mcp.WithString("program_id", mcp.Required(), mcp.Description("Program UUID")),
)

var toolGetSessionHistory = mcp.NewTool("get_session_history",
	mcp.WithDescription("Query workout session history. Returns session summaries with status, skip flag, rating, and timing."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
	mcp.WithString("program_id", mcp.Description("Filter to one program (UUID)")),
	mcp.WithBoolean("skipped_only", mcp.Description("When true, return only skipped-day records")),
)

var toolGetSessionDetail = mcp.NewTool("get_session_detail",
	mcp.WithDescription("Get one workout session with its full exercise group, exercise, and logged set graph."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session UUID")),
)

var toolGetExerciseCatalog = mcp.NewTool("get_exercise_catalog",
	mcp.WithDescription("List all catalog exercises with muscle group and equipment."),
)

// --- Tool handlers ---

func (h *handlers) getPrograms(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	programs, err := h.ds.ListPrograms(ctx)
	if err != nil {
		h.log.Error("mcp get_programs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(programs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgramPosition(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("program_id")
	if err != nil {
		return mcp.NewToolResultError("program_id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid program_id: " + err.Error()), nil
	}

	p, err := h.ds.GetProgram(ctx, id)
	if err != nil {
		h.log.Error("mcp get_program_position", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(h.positionPayload(p))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSessionHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	var programID *uuid.UUID
	if idStr := req.GetString("program_id", ""); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return mcp.NewToolResultError("invalid program_id: " + err.Error()), nil
		}
		programID = &id
	}

	var skippedOnly *bool
	if req.GetBool("skipped_only", false) {
		v := true
		skippedOnly = &v
	}

	sessions, err := h.ds.QuerySessions(ctx, start, end, programID, skippedOnly)
	if err != nil {
		h.log.Error("mcp get_session_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSessionDetail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid session_id: " + err.Error()), nil
	}

	session, err := h.ds.GetSession(ctx, id)
	if err != nil {
		h.log.Error("mcp get_session_detail", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(session)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseCatalog(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.ListExercises(ctx)
	if err != nil {
		h.log.Error("mcp get_exercise_catalog", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
