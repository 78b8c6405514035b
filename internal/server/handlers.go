package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/importer"
	"github.com/claude/liftplan/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// programView is the detail payload for one program: the stored graph plus
// the evaluated position and schedule.
type programView struct {
	*models.Program
	CurrentPhase      *models.Phase      `json:"current_phase,omitempty"`
	CurrentWeek       *models.Week       `json:"current_week,omitempty"`
	CurrentDay        *models.ProgramDay `json:"current_day,omitempty"`
	IsScheduledToday  bool               `json:"is_scheduled_today"`
	NextScheduledDate *time.Time         `json:"next_scheduled_date,omitempty"`
}

func (s *Server) view(p *models.Program) programView {
	return programView{
		Program:           p,
		CurrentPhase:      engine.CurrentPhase(p),
		CurrentWeek:       engine.CurrentWeek(p),
		CurrentDay:        engine.CurrentDay(p),
		IsScheduledToday:  s.engine.IsScheduledToday(p),
		NextScheduledDate: s.engine.NextScheduledDate(p),
	}
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := s.db.ListPrograms(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, programs)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProgram(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.view(p))
}

func (s *Server) handleImportProgram(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	doc, err := importer.Parse(data)
	if err != nil {
		writeImportError(w, err)
		return
	}

	program, err := importer.Build(r.Context(), doc, func(ctx context.Context, name string) (uuid.UUID, error) {
		ex, err := s.db.GetExerciseByName(ctx, name)
		if err != nil {
			return uuid.Nil, err
		}
		return ex.ID, nil
	})
	if err != nil {
		writeImportError(w, err)
		return
	}
	program.CreatedAt = time.Now()
	program.UpdatedAt = program.CreatedAt

	if err := s.db.SaveProgram(r.Context(), program); err != nil {
		s.log.Error("saving imported program", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, s.view(program))
}

func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program ID"})
		return
	}
	if err := s.db.DeleteProgram(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProgram(w, r)
	if !ok {
		return
	}

	var req struct {
		PhaseIndex    int   `json:"phase_index"`
		WeekIndex     int   `json:"week_index"`
		DayIndex      int   `json:"day_index"`
		ScheduledDays []int `json:"scheduled_days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	days := make([]time.Weekday, len(req.ScheduledDays))
	for i, d := range req.ScheduledDays {
		days[i] = time.Weekday(d)
	}

	s.engine.Activate(p, req.PhaseIndex, req.WeekIndex, req.DayIndex, days)
	s.saveState(w, r, p)
}

func (s *Server) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProgram(w, r)
	if !ok {
		return
	}
	s.engine.Deactivate(p)
	s.saveState(w, r, p)
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProgram(w, r)
	if !ok {
		return
	}

	var req struct {
		Until      time.Time `json:"until"`
		ResumeMode *string   `json:"resume_mode,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	var mode *models.ResumeMode
	if req.ResumeMode != nil {
		m, err := models.ParseResumeMode(*req.ResumeMode)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		mode = &m
	}

	s.engine.Pause(p, req.Until, mode)
	s.saveState(w, r, p)
}

func (s *Server) handleExtendPause(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProgram(w, r)
	if !ok {
		return
	}

	var req struct {
		Until time.Time `json:"until"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	s.engine.ExtendPause(p, req.Until)
	s.saveState(w, r, p)
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProgram(w, r)
	if !ok {
		return
	}
	s.engine.Resume(p)
	s.saveState(w, r, p)
}

// handleSkip records the current day as skipped and advances the cursor.
// Exactly one history record is written per call; with an unresolvable cursor
// nothing is written and the program is returned unchanged.
func (s *Server) handleSkip(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProgram(w, r)
	if !ok {
		return
	}

	session := s.engine.SkipWorkout(p)
	if session != nil {
		if err := s.db.InsertSession(r.Context(), session); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
	}
	s.saveState(w, r, p)
}

// handleStartSession materializes a working session from the program's current
// day template. The session owns its full graph; only catalog exercise IDs are
// shared with the template.
func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProgram(w, r)
	if !ok {
		return
	}

	session := s.engine.MaterializeSession(p, engine.CurrentDay(p))
	if session == nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "no workout at the current position"})
		return
	}

	if err := s.db.InsertSession(r.Context(), session); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleUpdateSet(w http.ResponseWriter, r *http.Request) {
	setID, err := uuid.Parse(chi.URLParam(r, "setID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid set ID"})
		return
	}

	var req struct {
		IsCompleted bool     `json:"is_completed"`
		Weight      *float64 `json:"weight,omitempty"`
		Reps        *int     `json:"reps,omitempty"`
		TimeSeconds *int     `json:"time_seconds,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	set := models.LoggedSet{
		ID:          setID,
		IsCompleted: req.IsCompleted,
		Weight:      req.Weight,
		Reps:        req.Reps,
		TimeSeconds: req.TimeSeconds,
	}
	if err := s.db.UpdateLoggedSet(r.Context(), &set); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// handleFinishSession stamps the session's terminal state. Completing a
// session that belongs to the active program also advances its cursor.
func (s *Server) handleFinishSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return
	}

	var req struct {
		Status string `json:"status"`
		Rating *int   `json:"rating,omitempty"`
		Notes  string `json:"notes,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	status, err := models.ParseSessionStatus(req.Status)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	session, err := s.db.GetSession(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}

	if status == models.SessionCompleted && session.ProgramID != nil {
		p, err := s.db.GetProgram(r.Context(), *session.ProgramID)
		if err == nil {
			s.engine.CompleteWorkout(p, session)
			if err := s.db.UpdateProgramState(r.Context(), p); err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
		}
	}

	if err := s.db.FinalizeSession(r.Context(), id, status, time.Now(), req.Rating, req.Notes, session.ProgramDayID); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	session.Status = status
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleQuerySessions(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var programID *uuid.UUID
	if raw := r.URL.Query().Get("program"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program ID"})
			return
		}
		programID = &id
	}

	var skippedOnly *bool
	if raw := r.URL.Query().Get("skipped"); raw != "" {
		v := raw == "true"
		skippedOnly = &v
	}

	sessions, err := s.db.QuerySessions(r.Context(), start, end, programID, skippedOnly)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return
	}
	session, err := s.db.GetSession(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.db.ListExercises(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleImportLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := s.db.QueryImportLogs(r.Context(), 100)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// loadProgram resolves the {id} route parameter to a stored program graph.
func (s *Server) loadProgram(w http.ResponseWriter, r *http.Request) (*models.Program, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program ID"})
		return nil, false
	}
	p, err := s.db.GetProgram(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return nil, false
	}
	return p, true
}

// saveState persists the program's mutable position fields and responds with
// the refreshed view.
func (s *Server) saveState(w http.ResponseWriter, r *http.Request, p *models.Program) {
	if err := s.db.UpdateProgramState(r.Context(), p); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.view(p))
}

// writeImportError maps the import error taxonomy onto HTTP statuses: every
// kind is a client problem except file IO, which cannot occur on this path.
func writeImportError(w http.ResponseWriter, err error) {
	var impErr *importer.ImportError
	if errors.As(err, &impErr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": impErr.Error(),
			"kind":  impErr.Kind,
			"path":  impErr.Path,
		})
		return
	}
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		// Default: last 30 days
		end = time.Now()
		start = end.AddDate(0, 0, -30)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}
	return
}
