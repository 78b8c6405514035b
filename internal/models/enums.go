package models

import "fmt"

// DayType classifies a ProgramDay. Only DayTraining days carry a workout and
// participate in cursor indexing; the other types are skipped by advancement.
type DayType string

const (
	DayTraining       DayType = "training"
	DayRest           DayType = "rest"
	DayActiveRecovery DayType = "active_recovery"
	DayDeload         DayType = "deload"
)

// ParseDayType validates a raw day type string.
func ParseDayType(s string) (DayType, error) {
	switch DayType(s) {
	case DayTraining, DayRest, DayActiveRecovery, DayDeload:
		return DayType(s), nil
	}
	return "", fmt.Errorf("unknown day type %q", s)
}

// GroupType describes how the exercises inside an ExerciseGroup are performed.
type GroupType string

const (
	GroupSingle   GroupType = "single"
	GroupSuperset GroupType = "superset"
	GroupTriset   GroupType = "triset"
	GroupCircuit  GroupType = "circuit"
	GroupZone     GroupType = "zone"
)

// ParseGroupType validates a raw group type string.
func ParseGroupType(s string) (GroupType, error) {
	switch GroupType(s) {
	case GroupSingle, GroupSuperset, GroupTriset, GroupCircuit, GroupZone:
		return GroupType(s), nil
	}
	return "", fmt.Errorf("unknown group type %q", s)
}

// SetType distinguishes warmup sets from working sets.
type SetType string

const (
	SetWarmup  SetType = "warmup"
	SetWorking SetType = "working"
)

// ParseSetType validates a raw set type string.
func ParseSetType(s string) (SetType, error) {
	switch SetType(s) {
	case SetWarmup, SetWorking:
		return SetType(s), nil
	}
	return "", fmt.Errorf("unknown set type %q", s)
}

// SessionStatus is the lifecycle state of a WorkoutSession.
type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionCancelled  SessionStatus = "cancelled"
)

// ParseSessionStatus validates a raw session status string.
func ParseSessionStatus(s string) (SessionStatus, error) {
	switch SessionStatus(s) {
	case SessionInProgress, SessionCompleted, SessionCancelled:
		return SessionStatus(s), nil
	}
	return "", fmt.Errorf("unknown session status %q", s)
}

// ResumeMode selects where the cursor lands when a paused program resumes.
type ResumeMode string

const (
	ResumeContinue    ResumeMode = "continue_where_left"
	ResumeRestartWeek ResumeMode = "restart_current_week"
	ResumeBackOneWeek ResumeMode = "go_back_one_week"
)

// ParseResumeMode validates a raw resume mode string.
func ParseResumeMode(s string) (ResumeMode, error) {
	switch ResumeMode(s) {
	case ResumeContinue, ResumeRestartWeek, ResumeBackOneWeek:
		return ResumeMode(s), nil
	}
	return "", fmt.Errorf("unknown resume mode %q", s)
}
